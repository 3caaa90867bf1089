package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "PACKSMITH_"

	// ProjectConfigFile is looked up in the working directory
	ProjectConfigFile = "packsmith.toml"

	// UserConfigFile is looked up in the user config directory
	UserConfigFile = "config.toml"

	appDirName = "packsmith"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config path; it must exist when set
	ConfigFile string
	// WorkingDir is searched for packsmith.toml when ConfigFile is empty
	WorkingDir string
	// UserConfigDir overrides $XDG_CONFIG_HOME/packsmith
	UserConfigDir string
	// Overrides are dotted keys ("content.root") applied after every other source
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	userDir := opts.UserConfigDir
	if userDir == "" {
		userDir = filepath.Join(xdg.ConfigHome, appDirName)
	}
	if err := loadIfExists(k, filepath.Join(userDir, UserConfigFile)); err != nil {
		return nil, err
	}

	// 3. Project config
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "config file not found").
				WithDetail("path", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
	} else {
		workDir := opts.WorkingDir
		if workDir == "" {
			workDir = "."
		}
		if err := loadIfExists(k, filepath.Join(workDir, ProjectConfigFile)); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 5. Command line
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply command line overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("contentRoot", cfg.Content.Root).
		Strs("interpreters", cfg.Launcher.Interpreters).
		Str("entryPoint", cfg.Launcher.EntryPoint).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks the fields every command relies on
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Content.Root) == "" {
		return errors.New(errors.ErrConfigParse, "content.root must not be empty")
	}
	if len(c.Launcher.Interpreters) == 0 {
		return errors.New(errors.ErrConfigParse, "launcher.interpreters must list at least one interpreter")
	}
	if strings.TrimSpace(c.Launcher.EntryPoint) == "" {
		return errors.New(errors.ErrConfigParse, "launcher.entry_point must not be empty")
	}
	return nil
}

// envKey maps PACKSMITH_LAUNCHER__ENTRY_POINT to launcher.entry_point
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func loadIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return loadFile(k, path)
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}
