package cipher

import (
	"fmt"

	"github.com/hasbyte1/go-classic-ciphers/alphabet"
	"github.com/hasbyte1/go-classic-ciphers/modmath"
)

// Affine maps every printable ASCII symbol at position p to
// (p*a + b) mod 95.  Runes outside the symbol set pass through; case is not
// folded.
//
// The caller supplies one integer key; the two sub-keys are derived from it as
// a = key / 95 and b = key % 95.
type Affine struct {
	keyA, keyB int
	mulA       int
	inverse    int
}

// NewAffine returns an Affine transform for the composite key.  The key must
// be non-negative and key/95 must be coprime with 95, so keys below 95
// (a == 0) are always rejected.
//
// Possible errors: [ErrInvalidKey], [ErrNotInvertible].
func NewAffine(key int) (*Affine, error) {
	if key < 0 {
		return nil, fmt.Errorf("%w: affine key must not be negative, got %d", ErrInvalidKey, key)
	}
	a, b := AffineKeyParts(key)
	m := alphabet.Symbols.Len()
	inv, err := modmath.ModInverse(a, m)
	if err != nil {
		return nil, fmt.Errorf("%w: affine key %d (a=%d): %w", ErrNotInvertible, key, a, err)
	}
	return &Affine{keyA: a, keyB: b, mulA: modmath.Mod(a, m), inverse: inv}, nil
}

// AffineKeyParts splits a composite affine key into its multiplier and
// offset using the size of the symbol alphabet.
func AffineKeyParts(key int) (a, b int) {
	m := alphabet.Symbols.Len()
	return modmath.FloorDiv(key, m), modmath.Mod(key, m)
}

// Name returns "affine".
func (t *Affine) Name() string { return "affine" }

// KeyParts returns the multiplier and offset derived from the composite key.
func (t *Affine) KeyParts() (a, b int) { return t.keyA, t.keyB }

// Encrypt maps symbol position p to (p*a + b) mod 95.
func (t *Affine) Encrypt(text string) string {
	return mapPositions(text, alphabet.Symbols, func(p int) int { return p*t.mulA + t.keyB })
}

// Decrypt maps symbol position p to (p - b) * inverse(a) mod 95.
func (t *Affine) Decrypt(text string) string {
	return mapPositions(text, alphabet.Symbols, func(p int) int { return (p - t.keyB) * t.inverse })
}
