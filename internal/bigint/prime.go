package bigint

import (
	apperrors "github.com/agbru/bignum/internal/errors"
)

//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/agbru/bignum/internal/bigint Source

// Source supplies the randomness the primality tester and Random consume.
// It must be statistically uniform; cryptographic unguessability is the
// caller's concern, not this package's. *math/rand/v2.Rand satisfies it.
type Source interface {
	// Int64N returns a uniformly distributed value in [0, n). n must be
	// positive.
	Int64N(n int64) int64
}

// Random returns a uniformly distributed value in [0, limit), drawing every
// digit group from src and rejecting draws at or above the limit. The most
// significant group is drawn from the smallest power-of-ten span covering it,
// which keeps the acceptance rate at one in ten or better. A non-positive
// limit yields zero.
func Random(limit Int, src Source) Int {
	if limit.Sign() <= 0 {
		return Int{}
	}
	k := len(limit.mag)
	span := decimalSpan(limit.mag[k-1])
	for {
		mag := make([]uint64, k)
		for i := 0; i < k-1; i++ {
			mag[i] = uint64(src.Int64N(Base))
		}
		mag[k-1] = uint64(src.Int64N(span))
		if n := makeInt(false, mag); cmpMag(n.mag, limit.mag) < 0 {
			return n
		}
	}
}

// decimalSpan returns the smallest power of ten strictly greater than d.
func decimalSpan(d uint64) int64 {
	span := int64(10)
	for int64(d) >= span {
		span *= 10
	}
	return span
}

// ProbablyPrime applies rounds independent Miller-Rabin witness tests to x,
// drawing witnesses uniformly from [2, x-2] through src. A false return is
// definitive (a witness proved compositeness or a cheap filter fired); a true
// return is wrong with probability at most 4^-rounds. Fails with
// apperrors.WitnessCountError unless rounds is positive.
func (x Int) ProbablyPrime(src Source, rounds int) (bool, error) {
	if rounds < 1 {
		return false, apperrors.WitnessCountError{Count: rounds}
	}
	if x.neg || x.Cmp(intOne) <= 0 {
		return false, nil
	}
	if x.Cmp(intTwo) == 0 || x.Cmp(intThree) == 0 || x.Cmp(intFive) == 0 {
		return true, nil
	}
	// Cheap pre-filters. The group-mod-5 test relies on Base being a power
	// of ten, as every higher group then contributes a multiple of ten.
	if x.IsEven() {
		return false, nil
	}
	if r, _ := x.Mod(intThree); r.IsZero() {
		return false, nil
	}
	if x.mag[0]%5 == 0 {
		return false, nil
	}

	// Factor x-1 = d * 2^count by repeated halving.
	nm1 := x.Sub(intOne)
	d := nm1
	count := 0
	for d.IsEven() {
		d = d.half()
		count++
	}

	limit := x.Sub(intThree) // witness = draw over [0, x-3) shifted by 2
	for i := 0; i < rounds; i++ {
		a := Random(limit, src).Add(intTwo)
		w, err := a.ModPow(d, x)
		if err != nil {
			return false, err
		}
		if w.Cmp(intOne) == 0 || w.Cmp(nm1) == 0 {
			continue
		}
		passed := false
		for j := 0; j < count-1; j++ {
			w, _ = w.Mul(w).Mod(x)
			if w.Cmp(nm1) == 0 {
				passed = true
				break
			}
			if w.Cmp(intOne) == 0 {
				// A non-trivial square root of 1 exists: definitely composite.
				return false, nil
			}
		}
		if !passed {
			return false, nil
		}
	}
	return true, nil
}
