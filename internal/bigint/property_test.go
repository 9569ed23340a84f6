package bigint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// fromParts builds arbitrary multi-group values from three native components,
// so the magnitudes routinely exceed what any native type can hold.
func fromParts(a, b, c int64) Int {
	return FromInt64(a).Mul(FromInt64(b)).Add(FromInt64(c))
}

func TestAlgebraicProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.SetSeed(1789)
	properties := gopter.NewProperties(parameters)

	full := gen.Int64()
	small := gen.Int64Range(-1_000_000_000, 1_000_000_000)

	properties.Property("addition commutes", prop.ForAll(
		func(a1, a2, a3, b1, b2, b3 int64) bool {
			x, y := fromParts(a1, a2, a3), fromParts(b1, b2, b3)
			return x.Add(y).Equal(y.Add(x))
		}, full, full, full, full, full, full))

	properties.Property("subtraction inverts addition", prop.ForAll(
		func(a1, a2, a3, b1, b2, b3 int64) bool {
			x, y := fromParts(a1, a2, a3), fromParts(b1, b2, b3)
			return x.Add(y).Sub(y).Equal(x)
		}, full, full, full, full, full, full))

	properties.Property("additive identity and inverse", prop.ForAll(
		func(a1, a2, a3 int64) bool {
			x := fromParts(a1, a2, a3)
			return x.Add(Zero()).Equal(x) && x.Add(x.Neg()).IsZero()
		}, full, full, full))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a1, a2, b1, b2 int64) bool {
			x, y := fromParts(a1, a2, 0), fromParts(b1, b2, 0)
			return x.Mul(y).Equal(y.Mul(x))
		}, full, full, full, full))

	properties.Property("multiplicative identity and annihilator", prop.ForAll(
		func(a1, a2, a3 int64) bool {
			x := fromParts(a1, a2, a3)
			return x.Mul(One()).Equal(x) && x.Mul(Zero()).IsZero()
		}, full, full, full))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b1, b2, c1, c2 int64) bool {
			x, y, z := FromInt64(a), fromParts(b1, b2, 0), fromParts(c1, c2, 0)
			return x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z)))
		}, small, full, full, full, full))

	properties.Property("comparison is antisymmetric and agrees with subtraction", prop.ForAll(
		func(a1, a2, a3, b1, b2, b3 int64) bool {
			x, y := fromParts(a1, a2, a3), fromParts(b1, b2, b3)
			return x.Cmp(y) == -y.Cmp(x) && x.Cmp(y) == x.Sub(y).Sign()
		}, full, full, full, full, full, full))

	properties.TestingRun(t)
}

func TestDivisionProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.SetSeed(1848)
	properties := gopter.NewProperties(parameters)

	full := gen.Int64()

	properties.Property("quotient and remainder reconstruct the dividend", prop.ForAll(
		func(a1, a2, a3, b1, b2, b3 int64) bool {
			x, y := fromParts(a1, a2, a3), fromParts(b1, b2, b3)
			if y.IsZero() {
				y = One()
			}
			q, r, err := x.DivMod(y)
			if err != nil {
				return false
			}
			if r.Sign() < 0 || r.CmpAbs(y) >= 0 {
				return false
			}
			return y.Abs().Mul(q.Abs()).Add(r).Equal(x.Abs())
		}, full, full, full, full, full, full))

	properties.Property("quotient sign is the sign product", prop.ForAll(
		func(a1, a2, b1 int64) bool {
			x, y := fromParts(a1, a2, 1), FromInt64(b1)
			if y.IsZero() {
				y = One()
			}
			q, err := x.Div(y)
			if err != nil || q.IsZero() {
				return err == nil
			}
			return q.Sign() == x.Sign()*y.Sign()
		}, full, full, full))

	properties.Property("exact multiples divide without remainder", prop.ForAll(
		func(a1, a2, b1, b2 int64) bool {
			y := fromParts(b1, b2, 0)
			if y.IsZero() {
				y = One()
			}
			x := y.Mul(fromParts(a1, a2, 0))
			q, r, err := x.DivMod(y)
			if err != nil {
				return false
			}
			return r.IsZero() && q.Mul(y).Equal(x)
		}, full, full, full, full))

	properties.TestingRun(t)
}

func TestCodecProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.SetSeed(1871)
	properties := gopter.NewProperties(parameters)

	full := gen.Int64()

	properties.Property("decimal text round trips", prop.ForAll(
		func(a1, a2, a3 int64) bool {
			x := fromParts(a1, a2, a3)
			back, err := FromString(x.String())
			return err == nil && back.Equal(x)
		}, full, full, full))

	properties.Property("every radix round trips", prop.ForAll(
		func(a1, a2, a3 int64, base int) bool {
			x := fromParts(a1, a2, a3)
			text, err := x.Text(base)
			if err != nil {
				return false
			}
			back, err := Parse(text, base)
			return err == nil && back.Equal(x)
		}, full, full, full, gen.IntRange(2, 36)))

	properties.TestingRun(t)
}
