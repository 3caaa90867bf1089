// Package showconfig renders the effective configuration.
package showconfig

import (
	"github.com/arthur-debert/packsmith/pkg/config"
	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/logging"
	"github.com/pelletier/go-toml/v2"
)

// ShowConfigOptions defines the options for the ShowConfig command.
type ShowConfigOptions struct {
	Config *config.Config
}

// ShowConfig returns the configuration encoded as TOML.
func ShowConfig(opts ShowConfigOptions) (string, error) {
	log := logging.GetLogger("commands.showconfig")

	if opts.Config == nil {
		return "", errors.New(errors.ErrInvalidInput, "no configuration to show")
	}

	data, err := toml.Marshal(opts.Config)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}

	log.Debug().Int("bytes", len(data)).Msg("Encoded configuration")
	return string(data), nil
}
