package alphabet

import "errors"

// Sentinel errors returned by [New].
var (
	// ErrEmpty is returned when an alphabet is built from an empty string.
	ErrEmpty = errors.New("alphabet: must contain at least one symbol")

	// ErrDuplicateSymbol is returned when the same rune appears twice, which
	// would make the position of that rune ambiguous.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")
)
