package cipher

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hasbyte1/go-classic-ciphers/alphabet"
)

// Substitution replaces every letter with the letter at the same position in
// a 26-letter key.  Input is upper-cased first; other runes pass through.
type Substitution struct {
	key *alphabet.Alphabet
}

// NewSubstitution returns a Substitution for key, which must contain each of
// A–Z exactly once.  Lowercase keys are accepted and upper-cased.
//
// Possible errors: [ErrKeyLength], [ErrNotPermutation].
func NewSubstitution(key string) (*Substitution, error) {
	want := alphabet.Letters.Len()
	if n := utf8.RuneCountInString(key); n != want {
		return nil, fmt.Errorf("%w: substitution key must be %d letters long, got %d", ErrKeyLength, want, n)
	}
	upper := strings.ToUpper(key)
	for _, r := range upper {
		if !alphabet.Letters.Contains(r) {
			return nil, fmt.Errorf("%w: %q is not a letter", ErrNotPermutation, r)
		}
	}
	a, err := alphabet.New(upper)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPermutation, err)
	}
	return &Substitution{key: a}, nil
}

// Name returns "substitution".
func (s *Substitution) Name() string { return "substitution" }

// Key returns the upper-cased key.
func (s *Substitution) Key() string { return s.key.String() }

// FoldsCase reports true; see [CaseFolder].
func (s *Substitution) FoldsCase() bool { return true }

// Encrypt maps the letter at alphabet position p to key[p].
func (s *Substitution) Encrypt(text string) string {
	return translate(strings.ToUpper(text), alphabet.Letters, s.key)
}

// Decrypt maps the letter at key position p back to alphabet[p].
func (s *Substitution) Decrypt(text string) string {
	return translate(strings.ToUpper(text), s.key, alphabet.Letters)
}

func translate(text string, from, to *alphabet.Alphabet) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if pos, ok := from.IndexOf(r); ok {
			r = to.At(pos)
		}
		b.WriteRune(r)
	}
	return b.String()
}
