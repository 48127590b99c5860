// Package modmath implements the integer helpers needed to invert the
// multiplicative ciphers: Euclid's algorithm, the extended-Euclid modular
// inverse, and remainder/division variants that round toward negative
// infinity.
package modmath

import "fmt"

// GCD returns the greatest common divisor of a and b.  The result is never
// negative; GCD(0, 0) is 0.
func GCD(a, b int) int {
	for a != 0 {
		a, b = b%a, a
	}
	if b < 0 {
		return -b
	}
	return b
}

// Coprime reports whether a and m share no factor other than 1.
func Coprime(a, m int) bool { return GCD(a, m) == 1 }

// ModInverse returns the unique x in [0, m) such that (a*x) mod m == 1.
//
// Possible errors: [ErrInvalidModulus], [ErrNoInverse].
func ModInverse(a, m int) (int, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidModulus, m)
	}
	a = Mod(a, m)
	if !Coprime(a, m) {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, m, GCD(a, m))
	}
	if m == 1 {
		return 0, nil
	}

	u1, u3 := 1, a
	v1, v3 := 0, m
	for v3 != 0 {
		q := u3 / v3
		u1, v1 = v1, u1-q*v1
		u3, v3 = v3, u3-q*v3
	}
	return Mod(u1, m), nil
}

// Mod returns a modulo m with the sign of m, so Mod(-1, 26) is 25.  Go's %
// operator keeps the sign of the dividend instead.
func Mod(a, m int) int {
	r := a % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// FloorDiv returns a divided by m, rounded toward negative infinity.
func FloorDiv(a, m int) int {
	q := a / m
	if (a%m != 0) && ((a < 0) != (m < 0)) {
		q--
	}
	return q
}
