// Package ui writes packsmith results and messages in terminal, text or JSON form.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/packsmith/pkg/ui/json"
	"github.com/arthur-debert/packsmith/pkg/ui/terminal"
	"github.com/arthur-debert/packsmith/pkg/ui/text"
)

// Renderer is implemented by every output format.
type Renderer interface {
	// RenderResult renders a command result (*types.ProvisionResult, *types.ListResult)
	RenderResult(result interface{}) error

	// RenderError renders a failed command
	RenderError(err error) error

	// RenderMessage renders a one-line status message
	RenderMessage(msg string) error

	// RenderMarkdown renders a block of markdown guidance text
	RenderMarkdown(md string) error
}

// NewRenderer creates a renderer writing to output. FormatAuto is resolved
// against output with DetectFormat.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = DetectFormat(output)
	}

	switch format {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
