package pipeline

import "errors"

// Sentinel errors returned by pipeline operations.
//
// Key errors are not listed here: they come from package cipher and are
// wrapped with the name of the offending stage.
var (
	// ErrUnknownTransform is returned when a stage names a transform that is
	// not registered.
	ErrUnknownTransform = errors.New("pipeline: unknown transform")

	// ErrDuplicateStage is returned when the same transform is listed twice.
	ErrDuplicateStage = errors.New("pipeline: transform listed more than once")

	// ErrEmptyName is returned by [Registry.Register] for an empty name.
	ErrEmptyName = errors.New("pipeline: transform name must not be empty")

	// ErrNilFactory is returned by [Registry.Register] for a nil factory.
	ErrNilFactory = errors.New("pipeline: factory must not be nil")

	// ErrNotReversible is returned by [Pipeline.Verify] when decrypting the
	// encrypted text does not reproduce it.
	ErrNotReversible = errors.New("pipeline: text does not survive the round trip")

	// ErrInvalidSpec is returned when a specification file cannot be parsed.
	ErrInvalidSpec = errors.New("pipeline: invalid specification")
)
