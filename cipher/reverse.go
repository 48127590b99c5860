package cipher

// Reverse reverses the rune order of its input.  It takes no key and is its
// own inverse.
type Reverse struct{}

// NewReverse returns a Reverse transform.
func NewReverse() Reverse { return Reverse{} }

// Name returns "reverse".
func (Reverse) Name() string { return "reverse" }

// Encrypt returns text with its runes in reverse order.
func (Reverse) Encrypt(text string) string { return reverseRunes(text) }

// Decrypt is identical to Encrypt.
func (Reverse) Decrypt(text string) string { return reverseRunes(text) }

func reverseRunes(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
