// Package pipeline chains the transforms of package cipher into a single
// reversible operation.
//
// # Ordering contract
//
// The transforms do not commute, so the order in which they run is fixed.
// Encryption always applies the enabled stages in [EncryptOrder]:
//
//	vigenere → substitution → multiplicative → affine → obfuscation →
//	transposition → caesar → reverse
//
// and decryption applies the inverse of each in the mirrored
// [DecryptOrder].  The order in which a caller lists its stages is
// irrelevant; only which stages are enabled, and with which keys, matters.
//
// # Quick start
//
//	p, err := pipeline.New([]pipeline.Stage{
//	    {Name: pipeline.Vigenere, Key: "LEMON", Enabled: true},
//	    {Name: pipeline.Transposition, Key: "8", Enabled: true},
//	    {Name: pipeline.Reverse, Enabled: true},
//	})
//	if err != nil { log.Fatal(err) }
//
//	enc := p.Encrypt("Attack at dawn!")
//	dec := p.Decrypt(enc) // "Attack at dawn!"
//
// # Keys and errors
//
// Every stage carries its key as a string, exactly as a command-line flag or
// a YAML file would supply it.  The factory registered for the stage's name in
// a [Registry] parses and validates the key.  [New] stops at the first stage
// whose key is rejected; the returned error wraps the cipher sentinel, so
// errors.Is(err, cipher.ErrConfiguration) holds.
//
// # Specification files
//
// [LoadSpec] reads a YAML list of stages:
//
//	stages:
//	  - name: vigenere
//	    key: "LEMON"
//	  - name: transposition
//	    key: "8"
//	  - name: reverse
//	    enabled: false
//
// # Fingerprints
//
// [Pipeline.Fingerprint] hashes the enabled stages and their normalised keys
// in encryption order with BLAKE2b-256, so Caesar "3" and "29" or Vigenère
// "lemon" and "LEMON" hash alike.  Two pipelines that undo each other
// report the same fingerprint however their stages were listed.
package pipeline
