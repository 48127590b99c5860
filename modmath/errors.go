package modmath

import "errors"

// Sentinel errors returned by [ModInverse].
var (
	// ErrNoInverse is returned when a and m are not relatively prime, so no
	// multiplicative inverse of a modulo m exists.
	ErrNoInverse = errors.New("modmath: no modular inverse")

	// ErrInvalidModulus is returned for a modulus smaller than 1.
	ErrInvalidModulus = errors.New("modmath: modulus must be positive")
)
