// SPDX-License-Identifier: MIT
// Environment variable overrides for flags that were not set explicitly.

package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment variable read by sparsemat.
const EnvPrefix = "SPARSEMAT_"

// getEnvString returns the value of EnvPrefix+key, or defaultVal if unset.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvUint64 returns EnvPrefix+key parsed as uint64, or defaultVal if unset or invalid.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt returns EnvPrefix+key parsed as int, or defaultVal if unset or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvFloat returns EnvPrefix+key parsed as float64, or defaultVal if unset or invalid.
func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool accepts "true", "1", "yes" and "false", "0", "no" (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// isFlagSet reports whether the flag was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies SPARSEMAT_* values for every flag not set on the
// command line.
//
// Supported environment variables:
//   - SPARSEMAT_CONFIG: path to a YAML config file
//   - SPARSEMAT_SEED: random seed (uint64)
//   - SPARSEMAT_SIZE: order of the random matrices (int)
//   - SPARSEMAT_FILL_FACTOR: nonzero percentage (float)
//   - SPARSEMAT_MIN_VALUE, SPARSEMAT_MAX_VALUE: value bounds (float)
//   - SPARSEMAT_KINDS: comma-separated kinds
//   - SPARSEMAT_NO_COLOR: disable colors (bool)
//   - SPARSEMAT_LOG_LEVEL: zerolog level name
func applyEnvOverrides(cfg *Config, fs *flag.FlagSet) {
	if !isFlagSet(fs, "seed") {
		cfg.Seed = getEnvUint64("SEED", cfg.Seed)
	}
	if !isFlagSet(fs, "size") {
		cfg.Size = getEnvInt("SIZE", cfg.Size)
	}
	if !isFlagSet(fs, "fill") {
		cfg.FillFactor = getEnvFloat("FILL_FACTOR", cfg.FillFactor)
	}
	if !isFlagSet(fs, "min") {
		cfg.MinValue = getEnvFloat("MIN_VALUE", cfg.MinValue)
	}
	if !isFlagSet(fs, "max") {
		cfg.MaxValue = getEnvFloat("MAX_VALUE", cfg.MaxValue)
	}
	if !isFlagSet(fs, "kinds") {
		if val := getEnvString("KINDS", ""); val != "" {
			cfg.Kinds = splitList(val)
		}
	}
	if !isFlagSet(fs, "no-color") {
		cfg.NoColor = getEnvBool("NO_COLOR", cfg.NoColor)
	}
	if !isFlagSet(fs, "log-level") {
		cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	}
}
