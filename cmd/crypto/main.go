// Command crypto chains classical ciphers over a piece of text.
//
// Usage:
//
//	# Vigenère, then columnar transposition, then reverse
//	crypto -e "Attack at dawn!" --vig LEMON --tra 8 --rev
//
//	# Undo it with the same flags
//	crypto -d "<ciphertext>" --vig LEMON --tra 8 --rev
//
//	# Read the stages from a YAML file, overriding one key
//	crypto -e "Attack at dawn!" --config pipeline.yaml --cae 5
//
//	# Show the stage order and fingerprint of a pipeline
//	crypto inspect --vig LEMON --tra 8 --rev
//
// Whatever order the flags are given in, encryption always runs the stages
// vigenere, substitution, multiplicative, affine, obfuscation, transposition,
// caesar, reverse, and decryption runs them backwards.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
