// Package cipher implements a fixed family of classical text transforms.
// None of them offers real confidentiality; they are the textbook ciphers
// used to teach modular arithmetic and permutation.
//
// # Transforms
//
//   - [Reverse]: reverses rune order; self-inverse.
//   - [Caesar]: additive shift over A–Z.
//   - [Transposition]: columnar transposition with a fixed column count.
//   - [Obfuscator]: leetspeak substitution (O→0, E→3, L→1, T→7, S→5).
//   - [Multiplicative]: multiplies letter positions by a key coprime with 26.
//   - [Affine]: multiply-and-add over the 95 printable ASCII symbols.
//   - [Substitution]: full permutation of A–Z.
//   - [Vigenere]: polyalphabetic shift driven by a repeating keyword.
//
// All of them implement [Transform].  Keys are validated once, by the
// constructor, so a transform that was built successfully cannot fail later:
//
//	c := cipher.NewCaesar(3)
//	c.Encrypt("HELLO") // "KHOOR"
//
//	m, err := cipher.NewMultiplicative(4)
//	errors.Is(err, cipher.ErrConfiguration) // true: 4 has no inverse mod 26
//
// [Apply] dispatches on a [Mode] for callers that carry the direction as a
// value rather than choosing the method themselves.
//
// # Pass-through
//
// A rune outside a transform's alphabet is copied to the output unchanged.
// This is a lookup miss, not an error.
//
// # Case folding
//
// [Caesar], [Multiplicative], [Substitution] and [Obfuscator] upper-case their
// input before transforming it, so they round-trip only text that is already
// upper case.  The obfuscator additionally cannot tell a plaintext '0' from an
// obfuscated 'O'.  These transforms implement [CaseFolder].
//
// # Concurrency
//
// Transforms are immutable after construction and safe for concurrent use.
package cipher
