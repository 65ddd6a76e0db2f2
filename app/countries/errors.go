package countries

import (
	"errors"
	"fmt"

	"github.com/joefazee/atlas/models"
)

// TransportError is any failed call to the country source: network, status or decode.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("countries: %s: upstream status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("countries: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == models.ErrUpstream }

// NotFoundError means the source has no country for Code.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("countries: no country with code %q", e.Code)
}

func (e *NotFoundError) Is(target error) bool { return target == models.ErrRecordNotFound }

// ValidationError rejects an argument before any call is made.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("countries: invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err came from argument validation.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
