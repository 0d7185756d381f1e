// SPDX-License-Identifier: MIT
// Configuration for the sparsemat walkthrough: defaults, optional YAML file,
// SPARSEMAT_* environment overrides and command-line flags, in increasing
// priority.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rubynetix/sparse-matrix/matrix"
	"gopkg.in/yaml.v3"
)

// maxSize bounds the random matrices so the printed output stays readable.
const maxSize = 64

// Config describes one demo run. It is not a matrix serialization format.
type Config struct {
	Seed       uint64   `yaml:"seed"`
	Size       int      `yaml:"size"`
	FillFactor float64  `yaml:"fill_factor"`
	MinValue   float64  `yaml:"min_value"`
	MaxValue   float64  `yaml:"max_value"`
	Kinds      []string `yaml:"kinds"`
	NoColor    bool     `yaml:"no_color"`
	LogLevel   string   `yaml:"log_level"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Seed:       1,
		Size:       6,
		FillFactor: 40,
		MinValue:   -9,
		MaxValue:   9,
		Kinds:      []string{matrix.KindSparse.String(), matrix.KindTridiagonal.String()},
		LogLevel:   zerolog.InfoLevel.String(),
	}
}

// Load reads a YAML config from path on top of Default, expanding ${VAR}
// references first. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(strings.NewReader(expandEnvVars(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with environment variable values.
func expandEnvVars(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envRef.FindStringSubmatch(match)[1])
	})
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.Size < 1 || c.Size > maxSize {
		return fmt.Errorf("size must be in [1,%d], got %d", maxSize, c.Size)
	}
	if c.FillFactor < 0 || c.FillFactor > 100 {
		return fmt.Errorf("fill_factor must be in [0,100], got %g", c.FillFactor)
	}
	lo, hi := math.Ceil(c.MinValue), math.Floor(c.MaxValue)
	if lo > hi || (lo == 0 && hi == 0) {
		return fmt.Errorf("value range [%g,%g] holds no nonzero integer", c.MinValue, c.MaxValue)
	}
	if len(c.Kinds) == 0 {
		return errors.New("kinds must not be empty")
	}
	if _, err := c.ParsedKinds(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

// ParsedKinds maps the configured kind names onto matrix.Kind.
func (c *Config) ParsedKinds() ([]matrix.Kind, error) {
	kinds := make([]matrix.Kind, 0, len(c.Kinds))
	for _, name := range c.Kinds {
		k, err := matrix.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("kinds: %w", err)
		}
		kinds = append(kinds, k)
	}

	return kinds, nil
}

// ParseArgs builds the run configuration from args (without the program name).
// It returns flag.ErrHelp when -h is given.
func ParseArgs(args []string, stderr io.Writer) (*Config, error) {
	def := Default()
	fs := flag.NewFlagSet("sparsemat", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a YAML config file")
	seed := fs.Uint64("seed", def.Seed, "seed for the random matrices")
	size := fs.Int("size", def.Size, "order of the random matrices")
	fill := fs.Float64("fill", def.FillFactor, "percentage of addressable cells that are nonzero")
	lo := fs.Float64("min", def.MinValue, "lower bound of random values")
	hi := fs.Float64("max", def.MaxValue, "upper bound of random values")
	kinds := fs.String("kinds", strings.Join(def.Kinds, ","), "comma-separated storage kinds")
	noColor := fs.Bool("no-color", def.NoColor, "disable colored output")
	logLevel := fs.String("log-level", def.LogLevel, "zerolog level (debug, info, warn, ...)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	path := *configPath
	if !isFlagSet(fs, "config") {
		path = getEnvString("CONFIG", path)
	}
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg = *loaded
	}

	applyEnvOverrides(&cfg, fs)

	// Explicit flags win over both the file and the environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "size":
			cfg.Size = *size
		case "fill":
			cfg.FillFactor = *fill
		case "min":
			cfg.MinValue = *lo
		case "max":
			cfg.MaxValue = *hi
		case "kinds":
			cfg.Kinds = splitList(*kinds)
		case "no-color":
			cfg.NoColor = *noColor
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// splitList splits a comma-separated list and drops empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
