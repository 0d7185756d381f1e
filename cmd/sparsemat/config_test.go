// SPDX-License-Identifier: MIT
package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeConfig writes body to a temporary YAML file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sparsemat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	kinds, err := cfg.ParsedKinds()
	require.NoError(t, err)
	require.Len(t, kinds, 2)
}

func TestLoad(t *testing.T) {
	t.Setenv("SPARSEMAT_TEST_SEED", "77")
	path := writeConfig(t, `
seed: ${SPARSEMAT_TEST_SEED}
size: 5
fill_factor: 60
kinds: [tridiagonal]
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(77), cfg.Seed)
	require.Equal(t, 5, cfg.Size)
	require.Equal(t, 60.0, cfg.FillFactor)
	require.Equal(t, []string{"tridiagonal"}, cfg.Kinds)
	require.Equal(t, "debug", cfg.LogLevel)
	// untouched keys keep their defaults
	require.Equal(t, Default().MinValue, cfg.MinValue)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "colour: true\n", "parsing config"},
		{"bad yaml", "size: [\n", "parsing config"},
		{"invalid value", "size: 0\n", "validating config"},
		{"unknown kind", "kinds: [dense]\n", "unknown storage kind"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			require.ErrorContains(t, err, tc.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading config file")
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"size zero", func(c *Config) { c.Size = 0 }, false},
		{"size too large", func(c *Config) { c.Size = maxSize + 1 }, false},
		{"fill negative", func(c *Config) { c.FillFactor = -1 }, false},
		{"fill over 100", func(c *Config) { c.FillFactor = 100.5 }, false},
		{"inverted range", func(c *Config) { c.MinValue, c.MaxValue = 3, 1 }, false},
		{"only zero", func(c *Config) { c.MinValue, c.MaxValue = -0.5, 0.5 }, false},
		{"no integer", func(c *Config) { c.MinValue, c.MaxValue = 1.2, 1.8 }, false},
		{"one sided", func(c *Config) { c.MinValue, c.MaxValue = 0, 1 }, true},
		{"no kinds", func(c *Config) { c.Kinds = nil }, false},
		{"bad kind", func(c *Config) { c.Kinds = []string{"sparse", "banded"} }, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if tc.ok {
				require.NoError(t, cfg.Validate())
			} else {
				require.Error(t, cfg.Validate())
			}
		})
	}
}

// TestParseArgs_Precedence checks flags > environment > file > defaults.
func TestParseArgs_Precedence(t *testing.T) {
	path := writeConfig(t, "size: 8\nseed: 3\nfill_factor: 10\n")
	t.Setenv("SPARSEMAT_CONFIG", path)
	t.Setenv("SPARSEMAT_SIZE", "10")
	t.Setenv("SPARSEMAT_KINDS", "sparse")
	t.Setenv("SPARSEMAT_SEED", "not-a-number")

	cfg, err := ParseArgs(nil, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Size)         // env over file
	require.Equal(t, uint64(3), cfg.Seed)  // invalid env ignored, file kept
	require.Equal(t, 10.0, cfg.FillFactor) // file over default
	require.Equal(t, []string{"sparse"}, cfg.Kinds)

	cfg, err = ParseArgs([]string{"-size", "12", "-kinds", "tridiagonal, sparse", "-no-color"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Size)
	require.Equal(t, []string{"tridiagonal", "sparse"}, cfg.Kinds)
	require.True(t, cfg.NoColor)
}

func TestParseArgs_Errors(t *testing.T) {
	_, err := ParseArgs([]string{"-h"}, io.Discard)
	require.ErrorIs(t, err, flag.ErrHelp)

	_, err = ParseArgs([]string{"-size", "0"}, io.Discard)
	require.ErrorContains(t, err, "size must be")

	_, err = ParseArgs([]string{"extra"}, io.Discard)
	require.ErrorContains(t, err, "unexpected arguments")

	_, err = ParseArgs([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, io.Discard)
	require.ErrorContains(t, err, "loading config")
}

func TestGetEnvBool(t *testing.T) {
	for val, want := range map[string]bool{"yes": true, "1": true, "TRUE": true, "no": false, "0": false} {
		t.Setenv(EnvPrefix+"FLAG", val)
		require.Equal(t, want, getEnvBool("FLAG", !want), val)
	}
	t.Setenv(EnvPrefix+"FLAG", "maybe")
	require.True(t, getEnvBool("FLAG", true))
}
