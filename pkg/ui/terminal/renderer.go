// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/packsmith/pkg/ui/output/styles"
	"github.com/arthur-debert/packsmith/pkg/ui/text"
	"github.com/charmbracelet/glamour"
)

const wordWrap = 80

// Renderer provides rich terminal output using lipgloss styles and glamour
type Renderer struct {
	*text.Renderer
	output   io.Writer
	markdown *glamour.TermRenderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	base, err := text.NewStyled(w, styles.Render)
	if err != nil {
		return nil, err
	}

	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return &Renderer{
		Renderer: base,
		output:   w,
		markdown: md,
	}, nil
}

// RenderMarkdown renders markdown through glamour
func (r *Renderer) RenderMarkdown(md string) error {
	out, err := r.markdown.Render(md)
	if err != nil {
		// Fall back to the raw source rather than losing the guidance
		return r.Renderer.RenderMarkdown(md)
	}
	_, err = io.WriteString(r.output, out)
	return err
}
