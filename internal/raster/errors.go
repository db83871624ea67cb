package raster

import (
	"errors"
	"fmt"
)

// LoadFailureMessage is the fixed diagnostic every host binding reports when
// the source image cannot be decoded.
const LoadFailureMessage = "File could not be loaded"

var (
	// ErrDecode matches any *DecodeError via errors.Is.
	ErrDecode = errors.New("decode failed")

	// ErrUnsupportedFormat is returned when the destination extension has no
	// registered encoder.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// DecodeError reports that the source image could not be opened or decoded.
// It is the only failure that stops a blur before anything is written.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", LoadFailureMessage, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
