// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/packsmith/pkg/types"
)

// Styler decorates s according to the semantic style name
type Styler func(style, s string) string

func plain(_ string, s string) string { return s }

// Renderer provides plain text output without colors or styling.
// The terminal renderer reuses its layout with a colouring Styler.
type Renderer struct {
	output io.Writer
	style  Styler
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return NewStyled(output, nil)
}

// NewStyled creates a text renderer whose labels are passed through style
func NewStyled(output io.Writer, style Styler) (*Renderer, error) {
	if style == nil {
		style = plain
	}
	return &Renderer{
		output: output,
		style:  style,
	}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.ProvisionResult:
		return r.renderProvision(v)
	case *types.ListResult:
		return r.renderList(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %v\n", r.style("Error", "Error:"), err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// RenderMarkdown prints markdown source as-is
func (r *Renderer) RenderMarkdown(md string) error {
	_, err := fmt.Fprintln(r.output, strings.TrimRight(md, "\n"))
	return err
}

func (r *Renderer) renderProvision(res *types.ProvisionResult) error {
	var b strings.Builder
	if res.DryRun {
		b.WriteString(r.style("DryRunBanner", "Dry run: no files were written"))
		b.WriteString("\n")
	}

	verb := "Wrote"
	if res.DryRun {
		verb = "Would write"
	}
	fmt.Fprintf(&b, "%s %d pack config(s) under %s\n",
		verb, len(res.FilesWritten), r.style("FilePath", res.ContentRoot))
	for _, f := range res.FilesWritten {
		fmt.Fprintf(&b, "  %s %s\n", r.style("Success", "✓"), r.style("FilePath", f))
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderList(res *types.ListResult) error {
	var b strings.Builder
	if len(res.Packs) == 0 {
		fmt.Fprintf(&b, "%s\n", r.style("Muted", "No content packs found in "+res.ContentRoot))
		_, err := io.WriteString(r.output, b.String())
		return err
	}

	fmt.Fprintf(&b, "%s\n", r.style("Header", fmt.Sprintf("Content packs in %s", res.ContentRoot)))
	for _, category := range res.Categories() {
		fmt.Fprintf(&b, "\n%s\n", r.style("CategoryHeader", category))
		for _, p := range res.Packs {
			if p.Config.Category != category {
				continue
			}
			name := p.Config.Subcategory
			if !p.HasConfig {
				name += " " + r.style("Warning", "(no pack_config.json)")
			}
			fmt.Fprintf(&b, "  %s  %s\n", r.style("PackName", name), r.style("Muted", p.Key))
			fmt.Fprintf(&b, "    quotes: %d  videos: %d  audio: %d\n", p.Quotes, p.Videos, p.Audio)
			if p.Config.Description != "" {
				fmt.Fprintf(&b, "    %s\n", p.Config.Description)
			}
		}
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}
