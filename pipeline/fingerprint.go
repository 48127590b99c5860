package pipeline

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-classic-ciphers/alphabet"
	"github.com/hasbyte1/go-classic-ciphers/cipher"
	"github.com/hasbyte1/go-classic-ciphers/modmath"
)

// Fingerprint returns the hex-encoded BLAKE2b-256 digest of the enabled
// stages and their normalised keys, one "name=key" line per stage in
// encryption order.  Keys that select the same transform, such as Caesar
// shifts 3 and 29, produce the same line.
func (p *Pipeline) Fingerprint() string {
	var buf bytes.Buffer
	for _, s := range p.steps {
		buf.WriteString(string(s.name))
		buf.WriteByte('=')
		buf.WriteString(canonicalKey(s))
		buf.WriteByte('\n')
	}
	sum := blake2b.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

func canonicalKey(s step) string {
	switch t := s.transform.(type) {
	case *cipher.Caesar:
		return strconv.Itoa(t.Shift())
	case *cipher.Multiplicative:
		return strconv.Itoa(t.Key())
	case *cipher.Transposition:
		return strconv.Itoa(t.Columns())
	case *cipher.Affine:
		m := alphabet.Symbols.Len()
		a, b := t.KeyParts()
		return strconv.Itoa(modmath.Mod(a, m)*m + b)
	case *cipher.Substitution:
		return t.Key()
	case *cipher.Vigenere:
		return shortestPeriod(t.Key())
	case cipher.Obfuscator, cipher.Reverse:
		return ""
	default:
		return strings.TrimSpace(s.key)
	}
}

// shortestPeriod returns the shortest prefix of key that repeats to form it:
// "LEMONLEMON" becomes "LEMON".
func shortestPeriod(key string) string {
	n := len(key)
	for p := 1; p < n; p++ {
		if n%p == 0 && key[p:] == key[:n-p] {
			return key[:p]
		}
	}
	return key
}
