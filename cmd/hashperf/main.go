// hashperf interactively measures the wall-clock cost of bcrypt at
// operator-chosen work factors, for picking a cost that balances
// authentication latency against brute-force resistance.
// Usage:
//
//	hashperf
//	hashperf -m -p
//	hashperf -s 'my secret' -c
//	hashperf -config hashperf.toml
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hashperf/hashperf/internal/config"
	"github.com/hashperf/hashperf/internal/console"
	"github.com/hashperf/hashperf/internal/hashing"
	"github.com/hashperf/hashperf/internal/logging"
	"github.com/hashperf/hashperf/internal/render"
	"github.com/hashperf/hashperf/internal/repl"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hashperf", flag.ContinueOnError)

	var (
		secret     string
		millis     bool
		printHash  bool
		noColor    bool
		configPath string
		logLevel   string
	)
	fs.StringVar(&secret, "s", config.DefaultSecret, "string used for the hash-function (default: a hardcoded 16-character string)")
	fs.StringVar(&secret, "string", config.DefaultSecret, "long form of -s")
	fs.BoolVar(&millis, "m", false, "output durations in milliseconds instead of ISO-8601")
	fs.BoolVar(&millis, "millis", false, "long form of -m")
	fs.BoolVar(&printHash, "p", false, "print the resulting hash to the console")
	fs.BoolVar(&printHash, "print", false, "long form of -p")
	fs.BoolVar(&noColor, "c", false, "disable colorized output")
	fs.BoolVar(&noColor, "color", false, "long form of -c")
	fs.StringVar(&configPath, "config", "", "path to an optional TOML configuration file")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// flag has already printed the usage and the parse error.
		return 2
	}

	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashperf: %v\n", err)
			return 1
		}
		opts = loaded
	}

	// Explicitly set flags win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s", "string":
			opts.Secret = secret
		case "m", "millis":
			opts.DurationInMillis = millis
		case "p", "print":
			opts.PrintHash = printHash
		case "c", "color":
			opts.Color = !noColor
		case "log-level":
			opts.LogLevel = logLevel
		}
	})
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "hashperf: %v\n", err)
		return 1
	}

	logger := logging.Setup(opts.LogLevel, os.Stderr)

	reader := console.NewTerminal(os.Stdin, os.Stdout)
	renderer := render.New(render.NewPalette(opts.Color))
	loop := repl.New(reader, hashing.Bcrypt{}, renderer, os.Stdout, logger, opts)

	if err := loop.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hashperf: %v\n", err)
		return 1
	}
	return 0
}
