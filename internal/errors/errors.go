package apperrors

import (
	"fmt"
)

// ParseError represents malformed textual input, such as a numeral containing
// characters outside the radix alphabet or an empty string. It indicates that
// no value could be constructed from the given text.
type ParseError struct {
	// Input is the text that failed to parse.
	Input string
	// Base is the radix the text was parsed in.
	Base int
}

// Error returns a formatted message describing the parse failure.
func (e ParseError) Error() string {
	return fmt.Sprintf("malformed input %q for base %d", e.Input, e.Base)
}

// NewParseError creates a new ParseError for the given input and base.
func NewParseError(input string, base int) error {
	return ParseError{Input: input, Base: base}
}

// DivisionByZeroError indicates a division or modulo operation with a zero
// divisor.
type DivisionByZeroError struct{}

// Error returns the error message for a DivisionByZeroError.
func (e DivisionByZeroError) Error() string { return "division by zero" }

// ExponentError represents an invalid exponent passed to an exponentiation
// operation. Exponents must be non-negative whole numbers.
type ExponentError struct {
	// Exponent is the offending value, rendered as text since it may exceed
	// any native range.
	Exponent string
}

// Error returns a formatted message describing the invalid exponent.
func (e ExponentError) Error() string {
	return fmt.Sprintf("invalid exponent %s: must be a non-negative integer", e.Exponent)
}

// BaseError represents a radix outside the supported range [2, 36].
type BaseError struct {
	// Base is the rejected radix.
	Base int
}

// Error returns a formatted message describing the invalid radix.
func (e BaseError) Error() string {
	return fmt.Sprintf("invalid base %d: must be in [2, 36]", e.Base)
}

// WitnessCountError represents an invalid Miller-Rabin witness round count.
// The count must be a positive whole number.
type WitnessCountError struct {
	// Count is the rejected round count.
	Count int
}

// Error returns a formatted message describing the invalid count.
func (e WitnessCountError) Error() string {
	return fmt.Sprintf("invalid witness count %d: must be positive", e.Count)
}

// RangeError indicates that a value does not fit the native numeric type it
// was converted to. No truncated result is produced.
type RangeError struct {
	// Value is the decimal rendering of the value that overflowed.
	Value string
	// Target names the native type the conversion aimed at.
	Target string
}

// Error returns a formatted message describing the overflow.
func (e RangeError) Error() string {
	return fmt.Sprintf("value %s does not fit in %s", e.Value, e.Target)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
