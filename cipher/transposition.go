package cipher

import (
	"fmt"
	"strings"
)

// Transposition is a columnar transposition cipher.  Encryption deals the
// runes of the text into a fixed number of columns, top to bottom, and then
// reads the columns out one after the other.  Case is preserved and every rune
// takes part; there is no alphabet restriction.
type Transposition struct {
	columns int
}

// NewTransposition returns a Transposition with the given column count.
//
// Possible errors: [ErrInvalidKey] when columns < 1.
func NewTransposition(columns int) (*Transposition, error) {
	if columns < 1 {
		return nil, fmt.Errorf("%w: transposition needs at least one column, got %d", ErrInvalidKey, columns)
	}
	return &Transposition{columns: columns}, nil
}

// Name returns "transposition".
func (t *Transposition) Name() string { return "transposition" }

// Columns returns the column count.
func (t *Transposition) Columns() int { return t.columns }

// Encrypt concatenates column 0 (runes 0, k, 2k, …), then column 1
// (runes 1, k+1, …) and so on, where k is the column count.
func (t *Transposition) Encrypt(text string) string {
	runes := []rune(text)
	n := len(runes)
	var b strings.Builder
	b.Grow(len(text))
	for col := 0; col < min(t.columns, n); col++ {
		for i := col; ; i += t.columns {
			b.WriteRune(runes[i])
			if n-i <= t.columns {
				break
			}
		}
	}
	return b.String()
}

// Decrypt rebuilds the grid that Encrypt read out.
//
// Each encrypted column becomes one row of length ceil(n/k).  When n is not a
// multiple of k the last (cols*k - n) rows are one rune short, so once the row
// index reaches k - short the final cell of each row is skipped.
func (t *Transposition) Decrypt(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}

	rows := t.columns
	cols := n / rows
	if n%rows != 0 {
		cols++
	}
	short := cols*rows - n

	out := make([][]rune, cols)
	col, row := 0, 0
	for _, r := range runes {
		out[col] = append(out[col], r)
		col++
		if col == cols || (col == cols-1 && row >= rows-short) {
			col = 0
			row++
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, c := range out {
		b.WriteString(string(c))
	}
	return b.String()
}
