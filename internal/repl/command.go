package repl

import (
	"strconv"
	"strings"
)

// Kind enumerates the closed set of things one line of input can mean.
type Kind int

const (
	KindInvalid Kind = iota
	KindQuit
	KindHelp
	KindToggleDurationFormat
	KindToggleHashVisibility
	KindChangeSecret
	KindClearScreen
	KindHashRequest
)

// Command is the classified form of one input line. Rounds is set for
// KindHashRequest; Raw keeps the trimmed original text so invalid input
// can be worded differently for empty vs non-numeric lines.
type Command struct {
	Kind   Kind
	Rounds int
	Raw    string
}

// tokens maps every accepted command word, lower-cased, to its Kind. Each
// command accepts the short and long spellings of the matching startup
// flag; the token set is data, not code paths.
var tokens = map[string]Kind{
	"q":      KindQuit,
	"quit":   KindQuit,
	"exit":   KindQuit,
	"s":      KindChangeSecret,
	"string": KindChangeSecret,
	"h":      KindHelp,
	"help":   KindHelp,
	"m":      KindToggleDurationFormat,
	"millis": KindToggleDurationFormat,
	"p":      KindToggleHashVisibility,
	"print":  KindToggleHashVisibility,
	"cls":    KindClearScreen,
}

// Classify maps one line of input to exactly one Command. Matching is
// case-insensitive on the trimmed line; anything that is neither a known
// token nor an integer is KindInvalid.
func Classify(line string) Command {
	trimmed := strings.TrimSpace(line)
	if kind, ok := tokens[strings.ToLower(trimmed)]; ok {
		return Command{Kind: kind, Raw: trimmed}
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return Command{Kind: KindHashRequest, Rounds: n, Raw: trimmed}
	}
	return Command{Kind: KindInvalid, Raw: trimmed}
}
