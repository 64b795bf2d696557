package rngcompat

import "errors"

const (
	// Unknown is a code used when no code could be extracted from the original error.
	Unknown uint32 = 3222222222
	// OSError0 is a code used when the original platform code was 0.
	OSError0 uint32 = 3222222223
)

var (
	ErrNoGeneration = errors.New("at least one generation must be enabled")
	ErrBadMode      = errors.New("unknown error mode")
)

// FatalError describes a source failure behind an interface without error channel.
// It is never returned, only passed to panic.
type FatalError struct {
	// Generation of the interface the failed call was made through.
	Generation Generation
	// Err is the original error of the source.
	Err error
}

func (e *FatalError) Error() string {
	return "rng failure behind " + e.Generation.String() + " infallible method: " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
