package render

// ANSI escape sequences used by the palette.
const (
	ansiReset   = "\x1b[0m"
	ansiBold    = "\x1b[1m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiMagenta = "\x1b[35m"
	ansiCyan    = "\x1b[36m"
)

// Palette carries one escape sequence per semantic role. With colour
// disabled every field is the empty string, so formatted output is
// byte-identical up to the escapes and formatting code never branches on
// the colour setting.
type Palette struct {
	Success  string
	Info     string
	Notice   string
	Warning  string
	Error    string
	Hash     string
	Duration string
	Prompt   string
	Bold     string
	Reset    string
}

// NewPalette returns the ANSI palette, or an all-empty palette when
// colour is disabled.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{}
	}
	return Palette{
		Success:  ansiGreen,
		Info:     ansiYellow,
		Notice:   ansiMagenta,
		Warning:  ansiRed,
		Error:    ansiRed,
		Hash:     ansiYellow,
		Duration: ansiGreen,
		Prompt:   ansiCyan,
		Bold:     ansiBold,
		Reset:    ansiReset,
	}
}
