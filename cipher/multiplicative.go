package cipher

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-classic-ciphers/alphabet"
	"github.com/hasbyte1/go-classic-ciphers/modmath"
)

// Multiplicative multiplies each letter position by a key modulo 26.  Input
// is upper-cased first; other runes pass through.
type Multiplicative struct {
	key     int
	inverse int
}

// NewMultiplicative returns a Multiplicative transform.  key is reduced
// modulo 26 and must be coprime with 26 (odd and not a multiple of 13).
//
// Possible errors: [ErrNotInvertible].
func NewMultiplicative(key int) (*Multiplicative, error) {
	m := alphabet.Letters.Len()
	k := modmath.Mod(key, m)
	inv, err := modmath.ModInverse(k, m)
	if err != nil {
		return nil, fmt.Errorf("%w: multiplicative key %d: %w", ErrNotInvertible, key, err)
	}
	return &Multiplicative{key: k, inverse: inv}, nil
}

// Name returns "multiplicative".
func (m *Multiplicative) Name() string { return "multiplicative" }

// Key returns the normalised multiplier in [0, 26).
func (m *Multiplicative) Key() int { return m.key }

// FoldsCase reports true; see [CaseFolder].
func (m *Multiplicative) FoldsCase() bool { return true }

// Encrypt maps letter position p to p*key mod 26.
func (m *Multiplicative) Encrypt(text string) string {
	return mapPositions(strings.ToUpper(text), alphabet.Letters, func(p int) int { return p * m.key })
}

// Decrypt maps letter position p to p*inverse(key) mod 26.
func (m *Multiplicative) Decrypt(text string) string {
	return mapPositions(strings.ToUpper(text), alphabet.Letters, func(p int) int { return p * m.inverse })
}
