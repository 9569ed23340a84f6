package bigint

// Add returns the sum x + y.
//
// Same-sign operands run long addition over the magnitudes. Opposite signs
// delegate to Sub so that complement subtraction remains the single
// subtraction algorithm in the package.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, addMag(x.mag, y.mag))
	}
	return x.Sub(y.Neg())
}

// Sub returns the difference x - y.
//
// Opposite-sign operands reduce to long addition of the magnitudes. Same-sign
// operands complement-subtract the smaller magnitude from the larger, and the
// result is negated when |x| < |y|.
func (x Int) Sub(y Int) Int {
	if x.neg != y.neg {
		return makeInt(x.neg, addMag(x.mag, y.mag))
	}
	switch cmpMag(x.mag, y.mag) {
	case 0:
		return Int{}
	case 1:
		return makeInt(x.neg, subMag(x.mag, y.mag))
	default:
		return makeInt(!x.neg, subMag(y.mag, x.mag))
	}
}

// addMag returns the long-addition sum of two magnitudes, propagating the
// carry group by group and emitting a final carry group when non-zero.
func addMag(a, b []uint64) []uint64 {
	n := max(len(a), len(b))
	sum := make([]uint64, 0, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		t := carry
		if i < len(a) {
			t += a[i]
		}
		if i < len(b) {
			t += b[i]
		}
		sum = append(sum, t%Base)
		carry = t / Base
	}
	if carry > 0 {
		sum = append(sum, carry)
	}
	return sum
}

// subMag returns m - s for magnitudes with m >= s, by (Base-1)'s-complement
// subtraction: complement s digit-wise over s's own length, add to m, add
// one, then remove the Base^len(s) the complement introduced by decrementing
// the group at position len(s).
func subMag(m, s []uint64) []uint64 {
	c := make([]uint64, len(s))
	for i, d := range s {
		c[i] = Base - 1 - d
	}
	t := addMag(m, c)
	t = addMag(t, magOne) // now t = m - s + Base^len(s), so len(t) > len(s)
	for i := len(s); ; i++ {
		if t[i] > 0 {
			t[i]--
			break
		}
		t[i] = Base - 1
	}
	return trimMag(t)
}
