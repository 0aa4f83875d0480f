package services

import "errors"

var (
	// ErrDateOutOfRange indicates a Western year or date before the earliest supported era.
	ErrDateOutOfRange = errors.New("conversion: date out of range")
	// ErrUnknownEra indicates an era alias that matches no table entry.
	ErrUnknownEra = errors.New("conversion: unknown era")
	// ErrMalformedInput indicates input that does not fit the expected era+year shape.
	ErrMalformedInput = errors.New("conversion: malformed input")
)

// ConversionError pairs an error kind with the human-readable message shown to
// callers. Kind classification stays intact through errors.Is while Error()
// carries the client-facing text.
type ConversionError struct {
	kind    error
	message string
}

func newConversionError(kind error, message string) error {
	return &ConversionError{kind: kind, message: message}
}

func (e *ConversionError) Error() string { return e.message }

// Unwrap exposes the sentinel kind for errors.Is classification.
func (e *ConversionError) Unwrap() error { return e.kind }
