package domain

import "errors"

var (
	ErrPassengerNotFound = errors.New("not a valid passenger")
	ErrFlightNotFound    = errors.New("not a valid flight")
	ErrNeverFlown        = errors.New("this passenger has never taken this flight")
	ErrAlreadyReviewed   = errors.New("this passenger has already reviewed this flight")
	ErrFlightFull        = errors.New("flight is full")
)

// ValidationError is returned when input fails a local check. No statement has been
// issued when it is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
