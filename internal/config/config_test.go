package config

import (
	"testing"

	"github.com/agbru/bignum/internal/bigint"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.WitnessRounds != bigint.DefaultWitnessRounds {
		t.Errorf("WitnessRounds = %d", cfg.WitnessRounds)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BIGNUM_WITNESS_ROUNDS", "12")
	t.Setenv("BIGNUM_WORKERS", "3")
	t.Setenv("BIGNUM_VERBOSE", "yes")

	cfg := Load()
	if cfg.WitnessRounds != 12 {
		t.Errorf("WitnessRounds = %d, want 12", cfg.WitnessRounds)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be overridden to true")
	}
}

func TestLoad_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("BIGNUM_WITNESS_ROUNDS", "lots")
	t.Setenv("BIGNUM_WORKERS", "-4")
	t.Setenv("BIGNUM_VERBOSE", "maybe")

	want := Default()
	cfg := Load()
	if cfg.WitnessRounds != want.WitnessRounds {
		t.Errorf("WitnessRounds = %d, want default %d", cfg.WitnessRounds, want.WitnessRounds)
	}
	// Negative worker counts are clamped back to the hardware estimate.
	if cfg.Workers != want.Workers {
		t.Errorf("Workers = %d, want default %d", cfg.Workers, want.Workers)
	}
	if cfg.Verbose != want.Verbose {
		t.Errorf("Verbose = %v, want default %v", cfg.Verbose, want.Verbose)
	}
}

func TestNormalize(t *testing.T) {
	cfg := Settings{WitnessRounds: 0, Workers: 0}.Normalize()
	if cfg.WitnessRounds != bigint.DefaultWitnessRounds {
		t.Errorf("WitnessRounds = %d", cfg.WitnessRounds)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"garbage", true, true},
		{"garbage", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}

func TestEstimateWorkers(t *testing.T) {
	n := EstimateWorkers()
	if n < 1 || n > 32 {
		t.Errorf("EstimateWorkers() = %d, want within [1, 32]", n)
	}
}
