package cipher

import (
	"strings"

	"github.com/hasbyte1/go-classic-ciphers/alphabet"
	"github.com/hasbyte1/go-classic-ciphers/modmath"
)

// Caesar shifts every letter a fixed number of positions along A–Z.  Input is
// upper-cased first; other runes pass through.
type Caesar struct {
	shift int
}

// NewCaesar returns a Caesar transform.  Any integer is a valid shift; it is
// reduced modulo 26, so a shift of 29 behaves like 3 and -1 like 25.
func NewCaesar(shift int) *Caesar {
	return &Caesar{shift: modmath.Mod(shift, alphabet.Letters.Len())}
}

// Name returns "caesar".
func (c *Caesar) Name() string { return "caesar" }

// Shift returns the normalised shift in [0, 26).
func (c *Caesar) Shift() int { return c.shift }

// FoldsCase reports true; see [CaseFolder].
func (c *Caesar) FoldsCase() bool { return true }

// Encrypt maps letter position p to (p + shift) mod 26.
func (c *Caesar) Encrypt(text string) string {
	return mapPositions(strings.ToUpper(text), alphabet.Letters, func(p int) int { return p + c.shift })
}

// Decrypt maps letter position p to (p - shift) mod 26.
func (c *Caesar) Decrypt(text string) string {
	return mapPositions(strings.ToUpper(text), alphabet.Letters, func(p int) int { return p - c.shift })
}
