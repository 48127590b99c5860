package pipeline

// Name identifies a transform within a pipeline.
type Name string

// Built-in transform names.
const (
	Vigenere       Name = "vigenere"
	Substitution   Name = "substitution"
	Multiplicative Name = "multiplicative"
	Affine         Name = "affine"
	Obfuscation    Name = "obfuscation"
	Transposition  Name = "transposition"
	Caesar         Name = "caesar"
	Reverse        Name = "reverse"
)

var encryptOrder = [...]Name{
	Vigenere,
	Substitution,
	Multiplicative,
	Affine,
	Obfuscation,
	Transposition,
	Caesar,
	Reverse,
}

var rank = func() map[Name]int {
	m := make(map[Name]int, len(encryptOrder))
	for i, n := range encryptOrder {
		m[n] = i
	}
	return m
}()

// EncryptOrder returns the order in which enabled stages are applied when
// encrypting.  The returned slice is a fresh copy.
func EncryptOrder() []Name {
	out := make([]Name, len(encryptOrder))
	copy(out, encryptOrder[:])
	return out
}

// DecryptOrder returns the mirror of [EncryptOrder].
func DecryptOrder() []Name {
	out := make([]Name, len(encryptOrder))
	for i, n := range encryptOrder {
		out[len(out)-1-i] = n
	}
	return out
}

// position returns n's index in the encryption order.  Names outside the
// built-in order sort after every built-in one.
func position(n Name) int {
	if i, ok := rank[n]; ok {
		return i
	}
	return len(encryptOrder)
}
