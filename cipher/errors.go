package cipher

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the umbrella for every key that violates a transform's
// precondition.  Each of the more specific errors below wraps it, so
//
//	errors.Is(err, cipher.ErrConfiguration)
//
// matches all of them.
var ErrConfiguration = errors.New("cipher: invalid configuration")

// Sentinel errors returned by the transform constructors and [Apply].
var (
	// ErrKeyLength is returned when a substitution key is not exactly as long
	// as the letter alphabet.
	ErrKeyLength = fmt.Errorf("%w: key has the wrong length", ErrConfiguration)

	// ErrNotPermutation is returned when a substitution key repeats a letter or
	// contains a rune outside A–Z.
	ErrNotPermutation = fmt.Errorf("%w: key is not a permutation of the alphabet", ErrConfiguration)

	// ErrNotInvertible is returned when a multiplier has no modular inverse,
	// which would make decryption impossible.
	ErrNotInvertible = fmt.Errorf("%w: multiplier is not coprime with the alphabet size", ErrConfiguration)

	// ErrEmptyKey is returned when a keyword transform is given an empty key.
	ErrEmptyKey = fmt.Errorf("%w: key must not be empty", ErrConfiguration)

	// ErrInvalidKey is returned for any other out-of-range key, such as a
	// non-positive column count or a negative affine key.
	ErrInvalidKey = fmt.Errorf("%w: key out of range", ErrConfiguration)

	// ErrUnknownMode is returned by [Apply] and [ParseMode] for a mode other
	// than [Encrypt] or [Decrypt].
	ErrUnknownMode = errors.New("cipher: unknown mode")
)
