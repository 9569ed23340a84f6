package bigint

// Mul returns the product x * y by schoolbook multiplication: for every group
// of y, the single-group product of x shifted into place, accumulated through
// magnitude addition. The result sign is the XOR of the operand signs;
// canonical zero is never negative.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	var acc []uint64
	for i, d := range y.mag {
		if d == 0 {
			continue
		}
		acc = addMag(acc, mulDigit(x.mag, d, i))
	}
	return makeInt(x.neg != y.neg, acc)
}

// mulDigit returns m * d shifted left by shift digit groups. For each group
// the partial value is d*group + carry; the low group is emitted and the rest
// carried forward, with a final carry group appended when non-zero. The carry
// stays below Base and d*group below Base², so every step fits the uint64
// accumulator.
func mulDigit(m []uint64, d uint64, shift int) []uint64 {
	if d == 0 {
		return nil
	}
	out := make([]uint64, shift, shift+len(m)+1)
	var carry uint64
	for _, g := range m {
		t := d*g + carry
		out = append(out, t%Base)
		carry = t / Base
	}
	if carry > 0 {
		out = append(out, carry)
	}
	return out
}
