// Package config holds the startup options for hashperf: flag defaults,
// optional TOML file loading, and validation.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultSecret is the fixed 16-character string hashed when the operator
// has not supplied one. Benchmarking only needs a stable, representative
// input; the value itself carries no secret.
const DefaultSecret = "j77*h&DEDYpLpZs3"

// Options are the initial session settings. Secret, DurationInMillis and
// PrintHash seed mutable session state; Color and LogLevel are fixed for
// the lifetime of the process.
type Options struct {
	Secret           string `toml:"secret"`
	DurationInMillis bool   `toml:"millis"`
	PrintHash        bool   `toml:"print_hash"`
	Color            bool   `toml:"color"`
	LogLevel         string `toml:"log_level"`
}

// Default returns the options used when no flags or config file are given.
func Default() Options {
	return Options{
		Secret:           DefaultSecret,
		DurationInMillis: false,
		PrintHash:        false,
		Color:            true,
		LogLevel:         "warn",
	}
}

// Load reads a TOML file over the defaults. Keys not recognised by
// Options are an error so a typo in the file cannot silently fall back
// to a default.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	opts := Default()
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return Options{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Options{}, fmt.Errorf("parsing config file %s: unknown key %q", path, undecoded[0].String())
	}

	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("validating config file %s: %w", path, err)
	}
	return opts, nil
}

// Validate normalises the options. An empty secret reverts to
// DefaultSecret; the session invariant is that the secret is never empty.
func (o *Options) Validate() error {
	if o.Secret == "" {
		o.Secret = DefaultSecret
	}
	switch strings.ToLower(o.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", o.LogLevel)
	}
	return nil
}
