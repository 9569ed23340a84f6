// Package bigint implements exact arithmetic on integers of unbounded
// magnitude: canonical digit-group representation, long addition and
// complement subtraction, schoolbook multiplication, trial-digit long
// division, iterative plain and modular exponentiation, a Miller-Rabin
// probabilistic primality test, and a radix codec for bases 2-36.
//
// Values are immutable: every operation returns a newly built Int and never
// mutates an operand. The package holds no shared mutable state, so values
// may be used freely across goroutines.
package bigint
