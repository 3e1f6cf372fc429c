// Package config resolves CLI settings from defaults, an optional .acf.yaml
// file, ACF_* environment variables and command flags, in that order of
// precedence.
package config

// Config is the resolved CLI configuration.
type Config struct {
	Source   string       `koanf:"source"   validate:"required"`
	Format   string       `koanf:"format"   validate:"oneof=json yaml yml php"`
	Output   string       `koanf:"output"`
	Split    bool         `koanf:"split"`
	Sanitize bool         `koanf:"sanitize"`
	Preset   string       `koanf:"preset"`
	Groups   []string     `koanf:"groups"`
	Log      LogConfig    `koanf:"log"`
	Schema   SchemaConfig `koanf:"schema"`
	PHP      PHPConfig    `koanf:"php"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"`
}

// SchemaConfig controls the OpenAPI document envelope.
type SchemaConfig struct {
	Title     string `koanf:"title"`
	Version   string `koanf:"version"`
	BasePath  string `koanf:"base_path"`
	ServerURL string `koanf:"server_url" validate:"omitempty,url"`
}

// PHPConfig controls the PHP include file.
type PHPConfig struct {
	TemplateDir string `koanf:"template_dir"`
	Hook        string `koanf:"hook" validate:"required"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source:   "acf",
		Format:   "json",
		Sanitize: true,
		Groups:   []string{},
		Log: LogConfig{
			Level: "info",
		},
		Schema: SchemaConfig{
			Title:    "Field groups",
			Version:  "1.0.0",
			BasePath: "/acf/v3/groups",
		},
		PHP: PHPConfig{
			Hook: "acf/include_fields",
		},
	}
}
