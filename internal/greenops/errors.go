package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for equivalency calculations, comparable with errors.Is.
var (
	// ErrInvalidUnit indicates an unrecognized emissions unit.
	ErrInvalidUnit = constError("invalid emissions unit")

	// ErrNegativeValue indicates negative avoided emissions. An increase in
	// emissions has no meaningful real-world equivalency.
	ErrNegativeValue = constError("negative emissions value")

	// ErrCalculationOverflow indicates a NaN or infinite value.
	ErrCalculationOverflow = constError("calculation overflow")
)
