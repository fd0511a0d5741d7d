package koppen

import (
	"errors"
	"fmt"
)

// Validation errors returned by FindNearest. Each one matches ErrInvalidArgument
// through errors.Is, so callers can check for the class or for the exact cause.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrCoordinatesNotNumbers = errors.New("Latitude and longitude must be numbers")
	ErrInvalidLatitude       = errors.New("Latitude must be between -90 and 90 degrees")
	ErrInvalidLongitude      = errors.New("Longitude must be between -180 and 180 degrees")
	ErrInvalidMaxDistance    = errors.New("maxDistance must be positive")
)

// InvalidArgumentError is returned when a query fails validation.
// Error() is the fixed message of the violated constraint.
type InvalidArgumentError struct {
	reason error
}

func (e *InvalidArgumentError) Error() string {
	return e.reason.Error()
}

// Is reports a match for the argument class and for the specific reason.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument || target == e.reason
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.reason
}

func invalidArgument(reason error) error {
	return &InvalidArgumentError{reason: reason}
}

// LoadError reports that the reference dataset could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to initialize koppen lookup: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
