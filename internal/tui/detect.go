package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how much terminal capability a command may use.
type OutputMode int

const (
	// OutputModePlain is uncolored text for pipes, files and CI logs.
	OutputModePlain OutputMode = iota

	// OutputModeStyled is colored lipgloss output without interaction.
	OutputModeStyled

	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

// String returns the lowercase mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	case OutputModePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the richest mode stdout supports. forcePlain and
// noColor come from flags; ciMode is true when running under CI. NO_COLOR and
// TERM=dumb force plain output.
func DetectOutputMode(forcePlain, noColor, ciMode bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, ciMode, IsTerminal(os.Stdout), os.Getenv)
}

func detectOutputMode(forcePlain, noColor, ciMode, tty bool, getenv func(string) string) OutputMode {
	if forcePlain || noColor || getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !tty {
		return OutputModePlain
	}
	if ciMode || getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of f, or fallback when it is not a terminal.
func TerminalWidth(f *os.File, fallback int) int {
	if !IsTerminal(f) {
		return fallback
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
