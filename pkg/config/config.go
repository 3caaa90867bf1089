package config

// Config is the effective packsmith configuration
type Config struct {
	Content  Content  `koanf:"content" toml:"content"`
	Launcher Launcher `koanf:"launcher" toml:"launcher"`
}

// Content configures where content packs live
type Content struct {
	Root string `koanf:"root" toml:"root"`
}

// Launcher configures the GUI application launcher
type Launcher struct {
	Interpreters []string `koanf:"interpreters" toml:"interpreters"`
	VersionFlag  string   `koanf:"version_flag" toml:"version_flag"`
	EntryPoint   string   `koanf:"entry_point" toml:"entry_point"`
	WorkingDir   string   `koanf:"working_dir" toml:"working_dir"`
	PauseOnError bool     `koanf:"pause_on_error" toml:"pause_on_error"`
}
