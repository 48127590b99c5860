package cipher

import "strings"

// obfuscationTable is built once and never mutated.
type obfuscationTable struct {
	forward map[rune]rune
	inverse map[rune]rune
}

var leetspeak = newObfuscationTable(map[rune]rune{
	'O': '0',
	'E': '3',
	'L': '1',
	'T': '7',
	'S': '5',
})

func newObfuscationTable(forward map[rune]rune) obfuscationTable {
	inverse := make(map[rune]rune, len(forward))
	for k, v := range forward {
		inverse[v] = k
	}
	return obfuscationTable{forward: forward, inverse: inverse}
}

// Obfuscator replaces a handful of letters with look-alike digits.  It takes
// no key.  Input is upper-cased first.
//
// A digit already present in the plaintext is indistinguishable from an
// obfuscated letter, so "L0L" decrypts to "LOL".
type Obfuscator struct {
	table *obfuscationTable
}

// NewObfuscator returns an Obfuscator backed by the shared leetspeak table.
func NewObfuscator() Obfuscator { return Obfuscator{table: &leetspeak} }

// Name returns "obfuscation".
func (Obfuscator) Name() string { return "obfuscation" }

// FoldsCase reports true; see [CaseFolder].
func (Obfuscator) FoldsCase() bool { return true }

// Encrypt substitutes O→0, E→3, L→1, T→7 and S→5.
func (o Obfuscator) Encrypt(text string) string { return substitute(text, o.table.forward) }

// Decrypt substitutes 0→O, 3→E, 1→L, 7→T and 5→S.
func (o Obfuscator) Decrypt(text string) string { return substitute(text, o.table.inverse) }

func substitute(text string, table map[rune]rune) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := table[r]; ok {
			return sub
		}
		return r
	}, strings.ToUpper(text))
}
