package color

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a conversion failure.
type ErrorKind int

const (
	// UnrecognizedFormat means the input matches none of the notations.
	UnrecognizedFormat ErrorKind = iota + 1
	// MalformedHex means a wrong digit count or an invalid hex digit.
	MalformedHex
	// MalformedRgb means a wrong field count or a non-numeric field.
	MalformedRgb
	// MalformedPercent means a wrong field count or a non-numeric field.
	MalformedPercent
	// OutOfRange means a numeric value falls outside the channel domain.
	OutOfRange
)

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrUnrecognizedFormat = errors.New("unrecognized color format")
	ErrMalformedHex       = errors.New("malformed hex color")
	ErrMalformedRgb       = errors.New("malformed rgb color")
	ErrMalformedPercent   = errors.New("malformed percent color")
	ErrOutOfRange         = errors.New("value out of range")
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedFormat:
		return "unrecognized_format"
	case MalformedHex:
		return "malformed_hex"
	case MalformedRgb:
		return "malformed_rgb"
	case MalformedPercent:
		return "malformed_percent"
	case OutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case UnrecognizedFormat:
		return ErrUnrecognizedFormat
	case MalformedHex:
		return ErrMalformedHex
	case MalformedRgb:
		return ErrMalformedRgb
	case MalformedPercent:
		return ErrMalformedPercent
	case OutOfRange:
		return ErrOutOfRange
	default:
		return nil
	}
}

// ConversionError is returned by every parser and by Convert.
type ConversionError struct {
	Kind  ErrorKind
	Input string
	// Field names the offending channel ("r", "g", "b", "a"), if any.
	Field  string
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("color: %s", e.Kind.sentinel())
	if e.Field != "" {
		msg += fmt.Sprintf(" (field %s)", e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" in %q", e.Input)
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ConversionError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the kind of a conversion error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

func newError(kind ErrorKind, input, field, reason string, cause error) *ConversionError {
	return &ConversionError{
		Kind:   kind,
		Input:  input,
		Field:  field,
		Reason: reason,
		Err:    cause,
	}
}
