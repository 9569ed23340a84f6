package bigint

import (
	"math"

	"fortio.org/safecast"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// Int is an immutable arbitrary-precision signed integer.
//
// The magnitude is stored little-endian in base-Base digit groups: mag[0] is
// the least significant group. The representation is canonical: no trailing
// (most significant) zero group, an empty slice for zero, and neg is never
// set on zero. str caches the decimal rendering for values built from
// decimal text; it is an optimization and takes no part in identity.
type Int struct {
	neg bool
	mag []uint64
	str string
}

// makeInt builds a canonical Int from a sign flag and a little-endian
// magnitude. The magnitude is re-sliced to drop trailing zero groups, and the
// sign is cleared for zero.
func makeInt(neg bool, mag []uint64) Int {
	mag = trimMag(mag)
	if len(mag) == 0 {
		return Int{}
	}
	return Int{neg: neg, mag: mag}
}

// trimMag re-slices mag so that it carries no trailing (most significant)
// zero groups. The backing array is shared, never rewritten.
func trimMag(mag []uint64) []uint64 {
	n := len(mag)
	for n > 0 && mag[n-1] == 0 {
		n--
	}
	return mag[:n]
}

// FromInt64 constructs the value of a native integer by repeated division by
// Base.
func FromInt64(n int64) Int {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u // two's-complement negate, correct for MinInt64 as well
	}
	return Int{neg: neg, mag: magFromUint64(u)}
}

// FromString constructs a value from a decimal string with an optional
// leading minus sign. It fails with apperrors.ParseError if the remainder is
// empty or contains non-digit characters. A zero numeral yields canonical
// zero regardless of any leading sign.
func FromString(s string) (Int, error) {
	return parseDecimal(s)
}

// magFromUint64 converts a native magnitude to little-endian digit groups.
func magFromUint64(u uint64) []uint64 {
	var mag []uint64
	for u > 0 {
		mag = append(mag, u%Base)
		u /= Base
	}
	return mag
}

// magToUint64 folds a magnitude of at most three groups into a uint64.
// Three groups stay below Base³ = 1e18, inside the accumulator range.
func magToUint64(mag []uint64) uint64 {
	var u uint64
	for i := len(mag) - 1; i >= 0; i-- {
		u = u*Base + mag[i]
	}
	return u
}

// IsZero reports whether x is zero, i.e. the digit sequence is empty.
func (x Int) IsZero() bool { return len(x.mag) == 0 }

// IsEven reports whether x is even. Zero is even; otherwise the parity of the
// least significant group decides, since Base itself is even.
func (x Int) IsEven() bool { return len(x.mag) == 0 || x.mag[0]%2 == 0 }

// Sign returns -1, 0, or +1 for negative, zero, and positive values.
func (x Int) Sign() int {
	if len(x.mag) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	if !x.neg {
		return x
	}
	return Int{mag: x.mag}
}

// Neg returns -x. Negating zero yields canonical zero.
func (x Int) Neg() Int {
	if x.IsZero() {
		return Int{}
	}
	return Int{neg: !x.neg, mag: x.mag}
}

// Cmp compares x and y and returns -1, 0, or +1. The sign decides first,
// then the magnitudes (length, then group by group from the most significant
// end).
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(x.mag, y.mag)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares the magnitudes of x and y, ignoring signs.
func (x Int) CmpAbs(y Int) int { return cmpMag(x.mag, y.mag) }

// Equal reports whether x and y denote the same value. The cached decimal
// text takes no part in the comparison.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// cmpMag compares two canonical magnitudes: longer wins, equal lengths are
// decided group by group from the most significant end.
func cmpMag(a, b []uint64) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Int64 converts x to a native int64. It fails with apperrors.RangeError when
// the value lies outside the int64 range; no truncated result is returned.
func (x Int) Int64() (int64, error) {
	if len(x.mag) > 4 {
		return 0, apperrors.RangeError{Value: x.String(), Target: "int64"}
	}
	var u uint64
	for i := len(x.mag) - 1; i >= 0; i-- {
		if u > (math.MaxUint64-x.mag[i])/Base {
			return 0, apperrors.RangeError{Value: x.String(), Target: "int64"}
		}
		u = u*Base + x.mag[i]
	}
	if x.neg {
		if u > 1<<63 {
			return 0, apperrors.RangeError{Value: x.String(), Target: "int64"}
		}
		if u == 1<<63 {
			return math.MinInt64, nil
		}
		return -int64(u), nil
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, apperrors.RangeError{Value: x.String(), Target: "int64"}
	}
	return v, nil
}

// String renders x in decimal. It implements fmt.Stringer.
func (x Int) String() string { return x.decimalString() }
