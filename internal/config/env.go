// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// parseIntEnv parses a signed integer environment variable value, guarding
// the narrowing to the platform int. Returns defaultVal if the value is not
// parsable.
func parseIntEnv(val string, defaultVal int) int {
	if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
		if converted, err := safecast.Conv[int](parsed); err == nil {
			return converted
		}
	}
	return defaultVal
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive). Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// envOverride declares a single environment variable override, mapping an env
// key (without the BIGNUM_ prefix) to a function that applies the value.
type envOverride struct {
	envKey string
	apply  func(*Settings, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"WITNESS_ROUNDS", func(c *Settings, v string) {
		c.WitnessRounds = parseIntEnv(v, c.WitnessRounds)
	}},
	{"WORKERS", func(c *Settings, v string) {
		c.Workers = parseIntEnv(v, c.Workers)
	}},
	{"VERBOSE", func(c *Settings, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
}

// applyEnvOverrides applies environment variable values on top of the
// defaults already present in the settings.
func applyEnvOverrides(cfg *Settings) {
	for _, o := range envOverrides {
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
