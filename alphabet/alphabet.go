package alphabet

import "fmt"

// Alphabet is an ordered set of unique runes.  The zero value is an empty
// alphabet; use [New] or one of the package tables.
//
// An Alphabet is never mutated after construction and is safe for concurrent
// use.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

var (
	// Letters is the 26-letter uppercase Latin alphabet in natural order.
	Letters = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

	// Symbols holds every printable ASCII character from space through tilde.
	Symbols = MustNew(printableASCII())
)

// New builds an Alphabet from the runes of chars, in order.
//
// Possible errors: [ErrEmpty], [ErrDuplicateSymbol].
func New(chars string) (*Alphabet, error) {
	if chars == "" {
		return nil, ErrEmpty
	}
	runes := []rune(chars)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if prev, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateSymbol, r, prev, i)
		}
		index[r] = i
	}
	return &Alphabet{runes: runes, index: index}, nil
}

// MustNew is like [New] but panics on error.  It is intended for package
// level tables whose contents are known at compile time.
func MustNew(chars string) *Alphabet {
	a, err := New(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of runes in the alphabet.  It is the modulus used by
// every transform that operates over a.
func (a *Alphabet) Len() int { return len(a.runes) }

// IndexOf returns the 0-based position of r.  The second return value is
// false when r is not part of the alphabet.
func (a *Alphabet) IndexOf(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether r is part of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// At returns the rune at position i.  It panics when i is out of range, like
// a slice index would.
func (a *Alphabet) At(i int) rune { return a.runes[i] }

// String returns the alphabet's runes in order.
func (a *Alphabet) String() string { return string(a.runes) }

func printableASCII() string {
	b := make([]byte, 0, '~'-' '+1)
	for c := byte(' '); c <= '~'; c++ {
		b = append(b, c)
	}
	return string(b)
}
