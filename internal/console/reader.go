// Package console provides line input for the interactive loop: plain
// reads, echo-suppressed reads for secret entry, and screen clearing.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// LineReader is the input capability the dispatch loop depends on. Tests
// substitute a scripted implementation.
type LineReader interface {
	// ReadLine blocks for one line of input, without the trailing
	// newline. Returns io.EOF when the stream ends.
	ReadLine() (string, error)

	// ReadSecret reads one line with echo suppressed when the input is a
	// terminal. End of stream counts as empty input, not an error.
	ReadSecret() (string, error)

	// ClearScreen clears the display when one is attached; otherwise a
	// no-op.
	ClearScreen()
}

// Terminal reads from an *os.File (normally stdin) and writes control
// sequences to out (normally stdout).
type Terminal struct {
	in  *os.File
	out io.Writer
	buf *bufio.Reader
}

// NewTerminal returns a Terminal over in and out.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, buf: bufio.NewReader(in)}
}

// ReadLine reads up to the next newline. A final line without a trailing
// newline is still delivered; io.EOF only surfaces once no input is left.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.buf.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// ReadSecret suppresses echo via term.ReadPassword when stdin is a
// terminal. Piped input falls back to a plain read so the tool stays
// scriptable.
func (t *Terminal) ReadSecret() (string, error) {
	if term.IsTerminal(int(t.in.Fd())) {
		secret, err := term.ReadPassword(int(t.in.Fd()))
		fmt.Fprintln(t.out)
		if err != nil {
			if err == io.EOF {
				return "", nil
			}
			return "", fmt.Errorf("reading masked input: %w", err)
		}
		return string(secret), nil
	}

	line, err := t.ReadLine()
	if err != nil {
		if err == io.EOF {
			return "", nil
		}
		return "", err
	}
	return line, nil
}

// ClearScreen homes the cursor and wipes the display on a real terminal.
func (t *Terminal) ClearScreen() {
	if f, ok := t.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(t.out, "\x1b[2J\x1b[H")
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
