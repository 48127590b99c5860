package cipher_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hasbyte1/go-classic-ciphers/cipher"
)

// FuzzCaseless checks that the transforms which never fold case round-trip
// any valid UTF-8 text.
//
// Run with: go test -fuzz=FuzzCaseless ./cipher/
func FuzzCaseless(f *testing.F) {
	f.Add("HELLO WORLD", 3)
	f.Add("Attack at dawn!", 8)
	f.Add("", 1)
	f.Add("日本語 ~{|}", 40)

	vig := must(cipher.NewVigenere("LEMON"))
	aff := must(cipher.NewAffine(7*95 + 13))

	f.Fuzz(func(t *testing.T, text string, columns int) {
		if !utf8.ValidString(text) {
			t.Skip()
		}
		if columns < 1 || columns > 1<<10 {
			columns = 1 + (columns&0x3ff)%64
		}
		tr := must(cipher.NewTransposition(columns))
		for _, x := range []cipher.Transform{cipher.NewReverse(), tr, vig, aff} {
			if got := x.Decrypt(x.Encrypt(text)); got != text {
				t.Fatalf("%s: round trip of %q = %q", x.Name(), text, got)
			}
		}
	})
}

// FuzzUppercase checks the case-folding letter transforms on upper-case text.
func FuzzUppercase(f *testing.F) {
	f.Add("HELLO, WORLD", 3)
	f.Add("ATTACK AT DAWN", -17)

	sub := must(cipher.NewSubstitution("QWERTYUIOPASDFGHJKLZXCVBNM"))

	f.Fuzz(func(t *testing.T, text string, shift int) {
		if !utf8.ValidString(text) {
			t.Skip()
		}
		text = strings.ToUpper(text)
		if strings.ToUpper(text) != text {
			t.Skip()
		}
		mul, err := cipher.NewMultiplicative(shift)
		if err != nil {
			mul = must(cipher.NewMultiplicative(7))
		}
		for _, x := range []cipher.Transform{cipher.NewCaesar(shift), mul, sub} {
			if got := x.Decrypt(x.Encrypt(text)); got != text {
				t.Fatalf("%s: round trip of %q = %q", x.Name(), text, got)
			}
		}
	})
}
