package interaction

import "github.com/pkg/errors"

// Contract violations are surfaced as errors wrapping one of these kinds, so
// callers can tell them apart with errors.Is or errors.Cause. Detection never
// returns an error: finding nothing is a normal outcome.
var (
	// A move or detach without a matching detection in the same gesture, or a
	// detach of a corner whose coordinate is unset.
	ErrPreconditionViolation = errors.New("precondition violation")

	// Angle validation without a corner snapshot from detection.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// A validator refused a proposed move.
	ErrRejected = errors.New("move rejected")
)

func preconditionf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrPreconditionViolation, format, args...)
}

func rejectedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrRejected, format, args...)
}
