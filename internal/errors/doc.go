// Package apperrors defines the structured error types of the bignum library,
// one per failure condition of the arithmetic contract (malformed input,
// division by zero, invalid exponent, invalid radix, invalid witness count,
// native range overflow).
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Callers discriminate error kinds with errors.As(); an operation either fully
// succeeds with a canonical value or fails with one of these types, never both.
package apperrors
