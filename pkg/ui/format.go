package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks terminal or text from the destination writer
	FormatAuto Format = iota
	// FormatTerminal renders lipgloss styles and glamour markdown
	FormatTerminal
	// FormatText renders plain text, suitable for pipes and logs
	FormatText
	// FormatJSON renders results as indented JSON
	FormatJSON
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// String returns the name accepted by ParseFormat
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat parses the value of a --format flag
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatAuto, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatAuto, fmt.Errorf("unknown format: %s (want auto, term, text or json)", s)
}

// fdWriter is a writer backed by a file descriptor, such as *os.File
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// DetectFormat chooses terminal output only for a colour-capable terminal.
// Writers without a file descriptor (buffers, cobra test outputs) get text.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	f, ok := w.(fdWriter)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(w).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
