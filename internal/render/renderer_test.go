package render

import (
	"errors"
	"strings"
	"testing"
)

func TestPlainOutputHasNoEscapes(t *testing.T) {
	r := New(NewPalette(false))

	outputs := []string{
		r.Banner(),
		r.Description(),
		r.RuntimeHelp(true),
		r.RuntimeHelp(false),
		r.Prompt(),
		r.SecretPrompt(),
		r.SecretChangeInfo(),
		r.SecretChanged(8),
		r.SecretReset(16),
		r.DurationToggled(true),
		r.HashPrintingToggled(false),
		r.HashLine("$2a$10$abc"),
		r.DurationLine("PT0.245S", 10),
		r.RangeReminder(),
		r.NotANumber("abc"),
		r.ErrorLine(errors.New("boom")),
	}
	for _, out := range outputs {
		if strings.ContainsRune(out, '\x1b') {
			t.Errorf("colour-disabled output contains escape bytes: %q", out)
		}
	}
}

func TestColouredOutputWrapsSegments(t *testing.T) {
	r := New(NewPalette(true))

	tests := []struct {
		name string
		out  string
		want string
	}{
		{"banner bold", r.Banner(), "\x1b[1m<<< Hash Performance Testing Tool (bcrypt) >>>\x1b[0m"},
		{"prompt cyan", r.Prompt(), "\x1b[36mlog2>\x1b[0m "},
		{"duration green", r.DurationLine("245ms", 12), "Duration: \x1b[32m245ms\x1b[0m (2^12 rounds)"},
		{"hash yellow", r.HashLine("$2a$04$x"), "Hash: \x1b[33m$2a$04$x\x1b[0m"},
		{"error red", r.ErrorLine(errors.New("boom")), "\x1b[31mError: boom\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.out != tt.want {
				t.Errorf("got %q, want %q", tt.out, tt.want)
			}
		})
	}
}

func TestRangeMessages(t *testing.T) {
	r := New(NewPalette(false))

	if got := r.RangeReminder(); got != "Please enter a valid integer value [4-30]" {
		t.Errorf("RangeReminder = %q", got)
	}
	got := r.NotANumber("abc")
	if got != "'abc' is not a number. Please enter a valid integer value [4-30]." {
		t.Errorf("NotANumber = %q", got)
	}
}

func TestToggleConfirmations(t *testing.T) {
	r := New(NewPalette(false))

	if got := r.DurationToggled(true); !strings.Contains(got, "milliseconds") {
		t.Errorf("DurationToggled(true) = %q, want milliseconds", got)
	}
	if got := r.DurationToggled(false); !strings.Contains(got, "ISO-8601") {
		t.Errorf("DurationToggled(false) = %q, want ISO-8601", got)
	}
	if got := r.HashPrintingToggled(true); !strings.Contains(got, "activated") {
		t.Errorf("HashPrintingToggled(true) = %q, want activated", got)
	}
	if got := r.HashPrintingToggled(false); !strings.Contains(got, "deactivated") {
		t.Errorf("HashPrintingToggled(false) = %q, want deactivated", got)
	}
}

func TestSecretConfirmationsNeverEchoValue(t *testing.T) {
	r := New(NewPalette(false))
	if got := r.SecretChanged(7); !strings.Contains(got, "length: 7") {
		t.Errorf("SecretChanged = %q, want length 7", got)
	}
	if got := r.SecretReset(16); !strings.Contains(got, "default (length: 16)") {
		t.Errorf("SecretReset = %q, want default length 16", got)
	}
}
