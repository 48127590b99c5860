package cipher

import (
	"fmt"
	"strings"
)

// Mode selects the direction of a transform.
type Mode int8

const (
	// Encrypt applies the forward rule.
	Encrypt Mode = iota
	// Decrypt applies the inverse rule.
	Decrypt
)

// String returns "encrypt" or "decrypt".
func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int8(m))
	}
}

// ParseMode converts "encrypt" or "decrypt" (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Apply runs t over text in the given direction.  It fails only when mode is
// neither [Encrypt] nor [Decrypt]; key errors were already reported by the
// constructor that built t.
func Apply(t Transform, mode Mode, text string) (string, error) {
	switch mode {
	case Encrypt:
		return t.Encrypt(text), nil
	case Decrypt:
		return t.Decrypt(text), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}
