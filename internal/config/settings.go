// Package config resolves library settings from defaults and environment
// variables. Priority: caller-supplied values > environment > adaptive
// defaults.
package config

import (
	"runtime"

	"github.com/agbru/bignum/internal/bigint"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "BIGNUM_"

// Settings carries the tunable knobs of the primality components.
type Settings struct {
	// WitnessRounds is the number of Miller-Rabin rounds per candidate.
	WitnessRounds int
	// Workers bounds the number of candidates tested concurrently.
	Workers int
	// Verbose enables debug-level logging of per-candidate progress.
	Verbose bool
}

// Default returns the baseline settings before any override.
func Default() Settings {
	return Settings{
		WitnessRounds: bigint.DefaultWitnessRounds,
		Workers:       EstimateWorkers(),
		Verbose:       false,
	}
}

// Load resolves settings from the defaults and the BIGNUM_ environment
// variables.
//
// Supported environment variables (all prefixed with BIGNUM_):
//   - WITNESS_ROUNDS, WORKERS, VERBOSE
func Load() Settings {
	cfg := Default()
	applyEnvOverrides(&cfg)
	return cfg.Normalize()
}

// Normalize clamps out-of-range values back to usable ones.
func (s Settings) Normalize() Settings {
	if s.WitnessRounds < 1 {
		s.WitnessRounds = bigint.DefaultWitnessRounds
	}
	if s.Workers < 1 {
		s.Workers = EstimateWorkers()
	}
	return s
}

// EstimateWorkers picks a concurrency level from the hardware. Witness
// exponentiation is CPU-bound with no shared state, so one worker per core is
// right on small machines; very high core counts see diminishing returns from
// memory bandwidth, so the estimate tops out.
func EstimateWorkers() int {
	numCPU := runtime.NumCPU()
	switch {
	case numCPU <= 1:
		return 1
	case numCPU <= 32:
		return numCPU
	default:
		return 32
	}
}
