package cipher

// Transform is the interface satisfied by every cipher in this package.
//
// For every valid key and every text in the transform's domain,
// Decrypt(Encrypt(text)) == text.  Implementations must be safe for
// concurrent use.
type Transform interface {
	// Name returns the lowercase identifier of the transform, e.g. "caesar".
	Name() string

	// Encrypt applies the forward rule to text and returns a new string.
	Encrypt(text string) string

	// Decrypt applies the inverse rule to text and returns a new string.
	Decrypt(text string) string
}

// CaseFolder is an optional interface for transforms that upper-case their
// input.  Lowercase letters produced by an earlier transform do not survive
// such a stage.
type CaseFolder interface {
	// FoldsCase reports whether the transform upper-cases its input.
	FoldsCase() bool
}
