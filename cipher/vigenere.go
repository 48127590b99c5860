package cipher

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-classic-ciphers/alphabet"
	"github.com/hasbyte1/go-classic-ciphers/modmath"
)

// Vigenere shifts each letter by the position of the next keyword letter.
// The keyword cycles over letters only: spaces, digits and punctuation pass
// through without consuming a key letter.  The case of every input letter is
// preserved.
type Vigenere struct {
	key    string
	shifts []int
}

// NewVigenere returns a Vigenere transform for keyword, which must be a
// non-empty string of letters.  The keyword is case-insensitive.
//
// Possible errors: [ErrEmptyKey], [ErrInvalidKey].
func NewVigenere(keyword string) (*Vigenere, error) {
	if keyword == "" {
		return nil, ErrEmptyKey
	}
	upper := strings.ToUpper(keyword)
	shifts := make([]int, 0, len(upper))
	for _, r := range upper {
		pos, ok := alphabet.Letters.IndexOf(r)
		if !ok {
			return nil, fmt.Errorf("%w: vigenere key may only contain letters, found %q", ErrInvalidKey, r)
		}
		shifts = append(shifts, pos)
	}
	return &Vigenere{key: upper, shifts: shifts}, nil
}

// Name returns "vigenere".
func (v *Vigenere) Name() string { return "vigenere" }

// Key returns the upper-cased keyword.
func (v *Vigenere) Key() string { return v.key }

// Encrypt maps letter position p to (p + keyPos) mod 26.
func (v *Vigenere) Encrypt(text string) string { return v.shift(text, 1) }

// Decrypt maps letter position p to (p - keyPos) mod 26.
func (v *Vigenere) Decrypt(text string) string { return v.shift(text, -1) }

func (v *Vigenere) shift(text string, sign int) string {
	var b strings.Builder
	b.Grow(len(text))
	cursor := 0
	for _, r := range text {
		lower := r >= 'a' && r <= 'z'
		upper := r
		if lower {
			upper = r - 'a' + 'A'
		}
		pos, ok := alphabet.Letters.IndexOf(upper)
		if !ok {
			b.WriteRune(r)
			continue
		}
		out := alphabet.Letters.At(modmath.Mod(pos+sign*v.shifts[cursor], alphabet.Letters.Len()))
		if lower {
			out += 'a' - 'A'
		}
		b.WriteRune(out)
		cursor = (cursor + 1) % len(v.shifts)
	}
	return b.String()
}
