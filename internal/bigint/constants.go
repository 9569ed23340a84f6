package bigint

// ─────────────────────────────────────────────────────────────────────────────
// Representation Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// Base is the radix of the internal digit-group representation. Each
	// group holds one value in [0, Base).
	//
	// The choice is bounded by the uint64 accumulator: schoolbook
	// multiplication needs Base² to fit (1e12), and the short-division fast
	// path carries a running remainder below Base², so its per-step value
	// remainder*Base + group must fit as well, which caps Base³ at 1e18.
	// 1e6 satisfies both with headroom; 1e9 would overflow the second bound.
	//
	// Base must remain a power of ten: the decimal codec chunks text into
	// BaseDigits-wide groups, and the primality pre-filter inspects the
	// least significant group modulo 5, which is only sound when every
	// higher group contributes a multiple of 10 to the value.
	Base = 1_000_000

	// BaseDigits is the number of decimal digits held by one digit group,
	// log10(Base).
	BaseDigits = 6

	// DefaultWitnessRounds is the default number of Miller-Rabin witness
	// rounds. The false-positive probability after k rounds is at most 4^-k,
	// so five rounds bound it by about 1e-3; callers needing stronger
	// guarantees pass a higher count.
	DefaultWitnessRounds = 5
)

// ─────────────────────────────────────────────────────────────────────────────
// Shared Constant Values
// ─────────────────────────────────────────────────────────────────────────────
//
// Initialized once before first use and never mutated; the exported accessors
// return copies of the value header, and the backing digit slices are never
// written to by any operation.

var (
	intZero     = Int{}
	intOne      = Int{mag: []uint64{1}}
	intTwo      = Int{mag: []uint64{2}}
	intThree    = Int{mag: []uint64{3}}
	intFive     = Int{mag: []uint64{5}}
	intTen      = Int{mag: []uint64{10}}
	intMinusOne = Int{neg: true, mag: []uint64{1}}

	magOne = []uint64{1}
)

// Zero returns the canonical zero value.
func Zero() Int { return intZero }

// One returns the value 1.
func One() Int { return intOne }

// Two returns the value 2.
func Two() Int { return intTwo }

// Three returns the value 3.
func Three() Int { return intThree }

// Ten returns the value 10.
func Ten() Int { return intTen }

// MinusOne returns the value -1.
func MinusOne() Int { return intMinusOne }
