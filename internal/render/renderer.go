// Package render turns loop events into the exact console text, applying
// or suppressing ANSI colour based on a palette fixed at startup. All
// methods are pure formatting; they perform no I/O and cannot fail.
package render

import (
	"fmt"

	"github.com/hashperf/hashperf/internal/hashing"
)

// Renderer formats every message the tool prints.
type Renderer struct {
	pal Palette
}

// New returns a Renderer over the given palette.
func New(pal Palette) *Renderer {
	return &Renderer{pal: pal}
}

// Banner is the title line printed once at startup.
func (r *Renderer) Banner() string {
	return fmt.Sprintf("%s<<< Hash Performance Testing Tool (bcrypt) >>>%s", r.pal.Bold, r.pal.Reset)
}

// Description explains the log2 work-factor input once at startup.
func (r *Renderer) Description() string {
	return fmt.Sprintf(
		"\n%sPlease enter the log2 of the number of rounds of hashing to apply. Start with"+
			"\nlower numbers (e.g. 10), since the work factor and therefore the duration of"+
			"\nthe hashing increases exponentially (2^x).%s",
		r.pal.Bold, r.pal.Reset)
}

// RuntimeHelp lists the interactive commands. The startup variant also
// points at the command-line help flag.
func (r *Renderer) RuntimeHelp(withFlagHint bool) string {
	hint := ""
	atRuntime := ""
	if withFlagHint {
		hint = "Use the '-h','--help' command-line option for information about optional parameters.\n\n"
		atRuntime = " (at runtime)"
	}
	return fmt.Sprintf(
		"\n%s%s"+
			"Type%s\n - 'q', 'quit' or 'exit' to leave this application, "+
			"\n - 'h' or 'help' to show this help for parameters at runtime,"+
			"\n - 'm' to switch between duration output in milliseconds or ISO-8601 representation,"+
			"\n - 'p' to enable or disable printing of the resulting hash to the console,"+
			"\n - 's' to change the string used for hashing,"+
			"\n - 'cls' to clear the screen."+
			"%s\n",
		r.pal.Notice, hint, atRuntime, r.pal.Reset)
}

// Prompt is printed before every read.
func (r *Renderer) Prompt() string {
	return fmt.Sprintf("%slog2>%s ", r.pal.Prompt, r.pal.Reset)
}

// SecretPrompt is printed before the masked secret read.
func (r *Renderer) SecretPrompt() string {
	return fmt.Sprintf("%spassword>%s ", r.pal.Prompt, r.pal.Reset)
}

// SecretChangeInfo announces the masked read and the empty-input reset rule.
func (r *Renderer) SecretChangeInfo() string {
	return fmt.Sprintf(
		"%sPlease enter the new password to be used for the hash-function (input is masked)."+
			"\nNo input will reset to the default string.%s",
		r.pal.Info, r.pal.Reset)
}

// SecretChanged confirms a newly set secret by length only; the value is
// never echoed.
func (r *Renderer) SecretChanged(length int) string {
	return fmt.Sprintf("%sNew password-string set (length: %d). Please continue...%s",
		r.pal.Success, length, r.pal.Reset)
}

// SecretReset confirms the fall-back to the default secret.
func (r *Renderer) SecretReset(length int) string {
	return fmt.Sprintf("%sPassword-string set to default (length: %d).%s",
		r.pal.Success, length, r.pal.Reset)
}

// DurationToggled confirms the active duration display format.
func (r *Renderer) DurationToggled(millis bool) string {
	format := "ISO-8601"
	if millis {
		format = "milliseconds"
	}
	return fmt.Sprintf("%sDuration output format changed to %s%s", r.pal.Success, format, r.pal.Reset)
}

// HashPrintingToggled confirms the hash-visibility state.
func (r *Renderer) HashPrintingToggled(on bool) string {
	state := "deactivated"
	if on {
		state = "activated"
	}
	return fmt.Sprintf("%sPrinting of the resulting hash %s%s", r.pal.Success, state, r.pal.Reset)
}

// HashLine renders the resulting hash when printing is enabled.
func (r *Renderer) HashLine(hash string) string {
	return fmt.Sprintf("Hash: %s%s%s", r.pal.Hash, hash, r.pal.Reset)
}

// DurationLine renders the measured result. formatted comes from
// timing.Format.
func (r *Renderer) DurationLine(formatted string, rounds int) string {
	return fmt.Sprintf("Duration: %s%s%s (2^%d rounds)", r.pal.Duration, formatted, r.pal.Reset, rounds)
}

// RangeReminder names the accepted work-factor range. Used both for
// out-of-range numbers and for empty input.
func (r *Renderer) RangeReminder() string {
	return fmt.Sprintf("%s%s%s", r.pal.Info, rangeText(), r.pal.Reset)
}

// NotANumber renders the hint for non-numeric, non-command input.
func (r *Renderer) NotANumber(line string) string {
	return fmt.Sprintf("%s'%s' is not a number. %s.%s", r.pal.Warning, line, rangeText(), r.pal.Reset)
}

// ErrorLine renders a recoverable failure, e.g. from the hash primitive.
func (r *Renderer) ErrorLine(err error) string {
	return fmt.Sprintf("%sError: %v%s", r.pal.Error, err, r.pal.Reset)
}

func rangeText() string {
	return fmt.Sprintf("Please enter a valid integer value [%d-%d]", hashing.MinRounds, hashing.MaxRounds)
}
