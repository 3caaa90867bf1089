package packs

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/types"
)

// Marshal renders a pack config as two-space indented JSON with a trailing
// newline. Key order follows the PackConfig field order.
func Marshal(cfg types.PackConfig) ([]byte, error) {
	// Clone turns nil slices into empty ones so they render as []
	cfg = cfg.Clone()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrPackEncode, "failed to encode pack config").
			WithDetail("pack", cfg.PackName)
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a pack_config.json document
func Unmarshal(data []byte) (types.PackConfig, error) {
	var cfg types.PackConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return types.PackConfig{}, errors.Wrap(err, errors.ErrPackInvalid, "invalid pack config")
	}
	return cfg, nil
}
