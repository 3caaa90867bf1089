// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/packsmith/pkg/errors"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}, nil
}

type errorDoc struct {
	Error    string                 `json:"error"`
	Code     errors.ErrorCode       `json:"code"`
	ExitCode int                    `json:"exitCode"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

type messageDoc struct {
	Message  string `json:"message,omitempty"`
	Markdown string `json:"markdown,omitempty"`
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error with its code, exit status and details
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorDoc{
		Error:    err.Error(),
		Code:     errors.GetErrorCode(err),
		ExitCode: errors.ExitCode(err),
		Details:  errors.GetErrorDetails(err),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(messageDoc{Message: msg})
}

// RenderMarkdown keeps markdown guidance as source text
func (r *Renderer) RenderMarkdown(md string) error {
	return r.encoder.Encode(messageDoc{Markdown: md})
}
