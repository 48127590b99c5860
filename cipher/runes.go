package cipher

import (
	"strings"

	"github.com/hasbyte1/go-classic-ciphers/alphabet"
	"github.com/hasbyte1/go-classic-ciphers/modmath"
)

// mapPositions replaces every rune of text found in a by a.At(fn(pos)).
// fn's result is reduced modulo a.Len().  Other runes are copied verbatim.
func mapPositions(text string, a *alphabet.Alphabet, fn func(pos int) int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		pos, ok := a.IndexOf(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(a.At(modmath.Mod(fn(pos), a.Len())))
	}
	return b.String()
}
