package bigint

import (
	"strconv"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// Pow returns x raised to a native non-negative exponent, by iterative
// square-and-multiply: an odd exponent multiplies the accumulator and
// decrements, an even one squares the running base and halves. Pow(x, 0) is
// one for every x. Fails with apperrors.ExponentError on a negative
// exponent.
func (x Int) Pow(exp int64) (Int, error) {
	if exp < 0 {
		return Int{}, apperrors.ExponentError{Exponent: strconv.FormatInt(exp, 10)}
	}
	result := intOne
	base := x
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
			exp--
		} else {
			base = base.Mul(base)
			exp >>= 1
		}
	}
	return result, nil
}

// ModPow returns x^exp mod m, reducing after every multiplication so that
// intermediate magnitudes never exceed m². The result is the least
// non-negative residue in [0, |m|); a negative base with an odd exponent is
// folded back into that range. Fails with apperrors.ExponentError on a
// negative exponent and apperrors.DivisionByZeroError on a zero modulus.
func (x Int) ModPow(exp, m Int) (Int, error) {
	if exp.neg {
		return Int{}, apperrors.ExponentError{Exponent: exp.String()}
	}
	if m.IsZero() {
		return Int{}, apperrors.DivisionByZeroError{}
	}
	mod := m.Abs()
	base, _ := x.Abs().Mod(mod)
	result := intOne
	e := exp
	for !e.IsZero() {
		if !e.IsEven() {
			result, _ = result.Mul(base).Mod(mod)
		}
		base, _ = base.Mul(base).Mod(mod)
		e = e.half()
	}
	result, _ = result.Mod(mod) // exp == 0 with mod == 1 still lands in range
	if x.neg && !exp.IsEven() && !result.IsZero() {
		result = mod.Sub(result)
	}
	return result, nil
}

// half returns floor(x/2) of a non-negative value via short division.
func (x Int) half() Int {
	if x.IsZero() {
		return Int{}
	}
	q, _ := shortDivMag(x.mag, 2)
	return makeInt(false, q)
}
