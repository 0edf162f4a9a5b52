package repl

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Kind
	}{
		{"quit short", "q", KindQuit},
		{"quit long", "quit", KindQuit},
		{"exit", "exit", KindQuit},
		{"quit uppercase", "QUIT", KindQuit},
		{"quit padded", "  q  ", KindQuit},
		{"help short", "h", KindHelp},
		{"help long", "Help", KindHelp},
		{"millis short", "m", KindToggleDurationFormat},
		{"millis long", "MILLIS", KindToggleDurationFormat},
		{"print short", "p", KindToggleHashVisibility},
		{"print long", "print", KindToggleHashVisibility},
		{"secret short", "s", KindChangeSecret},
		{"secret long", "string", KindChangeSecret},
		{"clear screen", "cls", KindClearScreen},
		{"clear screen uppercase", "CLS", KindClearScreen},
		{"number", "10", KindHashRequest},
		{"number padded", " 12 ", KindHashRequest},
		{"negative number", "-3", KindHashRequest},
		{"out of range still a request", "99", KindHashRequest},
		{"garbage", "abc", KindInvalid},
		{"float", "10.5", KindInvalid},
		{"empty", "", KindInvalid},
		{"whitespace only", "   ", KindInvalid},
		{"number with suffix", "10x", KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			if got.Kind != tt.want {
				t.Errorf("Classify(%q).Kind = %v, want %v", tt.line, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyRounds(t *testing.T) {
	for _, tt := range []struct {
		line string
		want int
	}{
		{"4", 4}, {"30", 30}, {"10", 10}, {"-5", -5}, {"031", 31},
	} {
		got := Classify(tt.line)
		if got.Kind != KindHashRequest || got.Rounds != tt.want {
			t.Errorf("Classify(%q) = %+v, want HashRequest rounds=%d", tt.line, got, tt.want)
		}
	}
}

func TestClassifyKeepsRawForInvalid(t *testing.T) {
	if got := Classify("  abc  "); got.Raw != "abc" {
		t.Errorf("Raw = %q, want trimmed original", got.Raw)
	}
	if got := Classify("   "); got.Raw != "" {
		t.Errorf("Raw = %q, want empty for blank input", got.Raw)
	}
}
