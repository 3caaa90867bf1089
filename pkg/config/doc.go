// Package config handles configuration management for packsmith.
// It layers the embedded defaults, an optional user config in the XDG config
// directory, an optional project packsmith.toml and PACKSMITH_ environment
// variables, in that order of precedence.
package config
