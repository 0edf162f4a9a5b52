// Package repl drives the interactive read-classify-act loop and owns all
// mutable session state: the active secret and the two display toggles.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashperf/hashperf/internal/config"
	"github.com/hashperf/hashperf/internal/console"
	"github.com/hashperf/hashperf/internal/hashing"
	"github.com/hashperf/hashperf/internal/render"
	"github.com/hashperf/hashperf/internal/timing"
)

// Loop reads one command at a time and executes it to completion before
// the next read. Strictly sequential: nothing runs alongside a hash
// computation, so the measurement is never skewed by contention.
type Loop struct {
	reader console.LineReader
	hasher hashing.Hasher
	render *render.Renderer
	out    io.Writer
	log    *slog.Logger

	secret           string
	durationInMillis bool
	printHash        bool
}

// New builds a Loop seeded from opts. The colour setting is baked into
// the renderer's palette and cannot change at runtime.
func New(reader console.LineReader, hasher hashing.Hasher, renderer *render.Renderer, out io.Writer, log *slog.Logger, opts config.Options) *Loop {
	if log == nil {
		log = slog.Default()
	}
	return &Loop{
		reader:           reader,
		hasher:           hasher,
		render:           renderer,
		out:              out,
		log:              log,
		secret:           opts.Secret,
		durationInMillis: opts.DurationInMillis,
		printHash:        opts.PrintHash,
	}
}

// Run prints the startup banner and blocks on the loop until the operator
// quits or input ends. End-of-input is a clean exit, identical to an
// explicit quit. Only an unexpected read failure returns an error.
func (l *Loop) Run() error {
	fmt.Fprintln(l.out, l.render.Banner())
	fmt.Fprintln(l.out, l.render.Description())
	fmt.Fprintln(l.out, l.render.RuntimeHelp(true))

	for {
		fmt.Fprint(l.out, l.render.Prompt())
		line, err := l.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(l.out)
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		cmd := Classify(line)
		switch cmd.Kind {
		case KindQuit:
			return nil
		case KindHelp:
			fmt.Fprintln(l.out, l.render.RuntimeHelp(false))
		case KindToggleDurationFormat:
			l.durationInMillis = !l.durationInMillis
			fmt.Fprintln(l.out, l.render.DurationToggled(l.durationInMillis))
		case KindToggleHashVisibility:
			l.printHash = !l.printHash
			fmt.Fprintln(l.out, l.render.HashPrintingToggled(l.printHash))
		case KindChangeSecret:
			l.changeSecret()
		case KindClearScreen:
			l.reader.ClearScreen()
		case KindHashRequest:
			l.hashRequest(cmd.Rounds)
		case KindInvalid:
			if cmd.Raw == "" {
				fmt.Fprintln(l.out, l.render.RangeReminder())
			} else {
				fmt.Fprintln(l.out, l.render.NotANumber(cmd.Raw))
			}
		}
	}
}

// changeSecret reads the replacement value with echo suppressed. Empty
// input resets to the default secret, keeping the invariant that the
// secret is never empty. The new value is stored verbatim, no trimming.
func (l *Loop) changeSecret() {
	fmt.Fprintln(l.out, l.render.SecretChangeInfo())
	fmt.Fprint(l.out, l.render.SecretPrompt())

	secret, err := l.reader.ReadSecret()
	if err != nil {
		fmt.Fprintln(l.out, l.render.ErrorLine(err))
		return
	}
	if secret != "" {
		l.secret = secret
		fmt.Fprintln(l.out, l.render.SecretChanged(len(l.secret)))
	} else {
		l.secret = config.DefaultSecret
		fmt.Fprintln(l.out, l.render.SecretReset(len(l.secret)))
	}
}

// hashRequest validates the range, then measures exactly one hash call.
// A primitive failure is rendered and the loop continues; it never ends
// the session.
func (l *Loop) hashRequest(rounds int) {
	if rounds < hashing.MinRounds || rounds > hashing.MaxRounds {
		fmt.Fprintln(l.out, l.render.RangeReminder())
		return
	}

	hash, elapsed, err := timing.Measure(func() (string, error) {
		return l.hasher.Hash(l.secret, rounds)
	})
	if err != nil {
		l.log.Error("hash computation failed", "rounds", rounds, "error", err)
		fmt.Fprintln(l.out, l.render.ErrorLine(err))
		return
	}
	l.log.Debug("hash computed", "rounds", rounds, "elapsed", elapsed)

	if l.printHash {
		fmt.Fprintln(l.out, l.render.HashLine(hash))
	}
	fmt.Fprintln(l.out, l.render.DurationLine(timing.Format(elapsed, l.durationInMillis), rounds))
}
