package bigint

import (
	apperrors "github.com/agbru/bignum/internal/errors"
)

// DivMod returns the quotient and remainder of x divided by y in a single
// pass. The quotient truncates the magnitude ratio and carries the XOR of the
// operand signs; the remainder is always |x| mod |y|, in [0, |y|), the same
// convention on every path. Fails with apperrors.DivisionByZeroError when y
// is zero.
func (x Int) DivMod(y Int) (Int, Int, error) {
	if y.IsZero() {
		return Int{}, Int{}, apperrors.DivisionByZeroError{}
	}
	q, r := divModMag(x.mag, y.mag)
	return makeInt(x.neg != y.neg, q), makeInt(false, r), nil
}

// Div returns the quotient of x divided by y. Fails with
// apperrors.DivisionByZeroError when y is zero.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns |x| mod |y|, in [0, |y|). Fails with
// apperrors.DivisionByZeroError when y is zero.
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// divModMag divides two magnitudes. Dispatches between the fast paths and
// the general trial-digit long division; every path leaves both operands
// untouched.
func divModMag(u, v []uint64) (q, r []uint64) {
	if cmpMag(u, v) < 0 {
		return nil, u
	}
	if len(u) <= 3 {
		// The whole dividend is below Base³ and fits the accumulator.
		a, b := magToUint64(u), magToUint64(v)
		return magFromUint64(a / b), magFromUint64(a % b)
	}
	if len(v) <= 2 {
		// Divisor below Base²: single-pass short division.
		quot, rem := shortDivMag(u, magToUint64(v))
		return quot, magFromUint64(rem)
	}
	return longDivMag(u, v)
}

// shortDivMag divides a magnitude by a native divisor below Base², carrying
// a running remainder from the most significant group down. Each step value
// rem*Base + group stays below Base³, inside the accumulator range.
func shortDivMag(u []uint64, d uint64) (q []uint64, rem uint64) {
	q = make([]uint64, len(u))
	for i := len(u) - 1; i >= 0; i-- {
		cur := rem*Base + u[i]
		q[i] = cur / d
		rem = cur % d
	}
	return trimMag(q), rem
}

// longDivMag is the general long division for u >= v with a divisor of at
// least three groups. Each round estimates one quotient digit from the two
// leading super-digits of the working dividend and of the divisor, widening
// to three dividend digits when the two-digit ratio cannot produce a valid
// digit, verifies the estimate against the full product, and subtracts.
func longDivMag(u, v []uint64) (q, r []uint64) {
	m := len(v)
	v2 := v[m-1]*Base + v[m-2] // leading divisor super-digit pair, constant for the run
	q = make([]uint64, len(u)-m+1)
	rem := append([]uint64(nil), u...) // working dividend; the operand is never mutated

	for cmpMag(rem, v) >= 0 {
		k := len(rem)
		u2 := rem[k-1]*Base + rem[k-2]
		pos := k - m
		var qt uint64
		var prod []uint64
		if u2 >= v2 {
			qt = u2 / v2
			qt, prod = correctTrial(rem, v, qt, pos)
		}
		if u2 < v2 || qt == 0 {
			// The two-digit ratio is zero or the corrected digit vanished:
			// the quotient digit lands one position lower, estimated from
			// three dividend super-digits against the same divisor pair.
			// rem > v rules out equal lengths here, so a third group exists.
			pos--
			qt = (u2*Base + rem[k-3]) / v2
			qt, prod = correctTrial(rem, v, qt, pos)
		}
		rem = subMag(rem, prod)
		q[pos] = qt
	}
	return trimMag(q), rem
}

// correctTrial verifies a trial digit by computing the full shifted product
// qt * v * Base^pos and decrementing while the product exceeds the working
// dividend. The two- and three-digit estimates never overshoot by more than
// one, so the loop body runs at most once.
func correctTrial(rem, v []uint64, qt uint64, pos int) (uint64, []uint64) {
	prod := mulDigit(v, qt, pos)
	for cmpMag(prod, rem) > 0 {
		qt--
		prod = mulDigit(v, qt, pos)
	}
	return qt, prod
}
