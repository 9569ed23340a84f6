package bigint

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/bignum/internal/errors"
)

func TestPow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		base string
		exp  int64
		want string
	}{
		{"zero exponent", "12345678901234567890", 0, "1"},
		{"zero to the zero", "0", 0, "1"},
		{"zero base", "0", 5, "0"},
		{"identity", "123456789", 1, "123456789"},
		{"small", "2", 10, "1024"},
		{"crosses native range", "2", 64, "18446744073709551616"},
		{"power of ten", "10", 30, "1000000000000000000000000000000"},
		{"negative base odd exponent", "-3", 3, "-27"},
		{"negative base even exponent", "-2", 4, "16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := mustParse(t, tt.base).Pow(tt.exp)
			if err != nil {
				t.Fatalf("Pow(%s, %d) failed: %v", tt.base, tt.exp, err)
			}
			if got.String() != tt.want {
				t.Errorf("Pow(%s, %d) = %s, want %s", tt.base, tt.exp, got.String(), tt.want)
			}
		})
	}
}

func TestPow_NegativeExponent(t *testing.T) {
	t.Parallel()
	_, err := FromInt64(2).Pow(-1)
	var expErr apperrors.ExponentError
	if !errors.As(err, &expErr) {
		t.Fatalf("Pow with negative exponent: error = %v, want ExponentError", err)
	}
}

func TestModPow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		base, exp, mod string
		want           string
	}{
		{"small", "3", "5", "7", "5"},
		{"zero exponent", "5", "0", "7", "1"},
		{"zero exponent mod one", "5", "0", "1", "0"},
		{"modulus one", "12345", "678", "1", "0"},
		{"exact power of modulus", "2", "10", "1024", "0"},
		{"large exponent", "1234", "100", "5675", "2976"},
		{"negative base odd exponent", "-2", "3", "5", "2"},
		{"negative base even exponent", "-2", "4", "5", "1"},
		{"negative modulus", "2", "3", "-5", "3"},
		{"negative base and modulus", "-2", "3", "-5", "2"},
		{"fermat little theorem", "2", "104658", "104659", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			base := mustParse(t, tt.base)
			got, err := base.ModPow(mustParse(t, tt.exp), mustParse(t, tt.mod))
			if err != nil {
				t.Fatalf("ModPow(%s, %s, %s) failed: %v", tt.base, tt.exp, tt.mod, err)
			}
			if got.String() != tt.want {
				t.Errorf("ModPow(%s, %s, %s) = %s, want %s", tt.base, tt.exp, tt.mod, got.String(), tt.want)
			}
		})
	}
}

func TestModPow_Errors(t *testing.T) {
	t.Parallel()
	base := FromInt64(2)

	var expErr apperrors.ExponentError
	if _, err := base.ModPow(MinusOne(), FromInt64(5)); !errors.As(err, &expErr) {
		t.Errorf("ModPow with negative exponent: error = %v, want ExponentError", err)
	}

	var divErr apperrors.DivisionByZeroError
	if _, err := base.ModPow(FromInt64(3), Zero()); !errors.As(err, &divErr) {
		t.Errorf("ModPow with zero modulus: error = %v, want DivisionByZeroError", err)
	}
}

// TestModPowMatchesPow cross-checks the modular loop against the plain power
// followed by a reduction, over a grid small enough for Pow to stay cheap.
func TestModPowMatchesPow(t *testing.T) {
	t.Parallel()
	moduli := []string{"2", "7", "997", "1000003", "999999999989"}
	for _, base := range []int64{-9, -2, 0, 1, 2, 3, 10, 999999} {
		for exp := int64(0); exp <= 12; exp++ {
			for _, ms := range moduli {
				m := mustParse(t, ms)
				p, err := FromInt64(base).Pow(exp)
				if err != nil {
					t.Fatal(err)
				}
				var want Int
				if p.Sign() < 0 {
					r, _ := p.Abs().Mod(m)
					if !r.IsZero() {
						r = m.Abs().Sub(r)
					}
					want = r
				} else {
					want, _ = p.Mod(m)
				}
				got, err := FromInt64(base).ModPow(FromInt64(exp), m)
				if err != nil {
					t.Fatal(err)
				}
				if !got.Equal(want) {
					t.Fatalf("ModPow(%d, %d, %s) = %s, want %s", base, exp, ms, got.String(), want.String())
				}
			}
		}
	}
}
