package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is read from the working directory when no file is given.
	DefaultFile = ".acf.yaml"
	EnvPrefix   = "ACF_"
)

// FlagPaths maps CLI flag names to configuration paths.
var FlagPaths = map[string]string{
	"source":       "source",
	"format":       "format",
	"output":       "output",
	"split":        "split",
	"sanitize":     "sanitize",
	"preset":       "preset",
	"group":        "groups",
	"log-level":    "log.level",
	"log-json":     "log.json",
	"title":        "schema.title",
	"api-version":  "schema.version",
	"base-path":    "schema.base_path",
	"server-url":   "schema.server_url",
	"template-dir": "php.template_dir",
	"php-hook":     "php.hook",
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// File is the configuration file. Empty reads DefaultFile when present;
	// an explicit file must exist.
	File string

	// FS resolves File. Defaults to the working directory.
	FS fs.FS

	// Environ returns the environment. Defaults to os.Environ.
	Environ func() []string

	// Flags holds the flags the user set, keyed by flag name.
	Flags map[string]any
}

// Load resolves the configuration and validates it.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	data, err := readFile(opts)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := k.Load(rawMap(data), nil); err != nil {
			return nil, fmt.Errorf("config: apply file: %w", err)
		}
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
		EnvironFunc:   environ,
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	flags := make(map[string]any, len(opts.Flags))
	for name, value := range opts.Flags {
		path, ok := FlagPaths[name]
		if !ok {
			continue
		}
		flags[path] = value
	}
	if len(flags) > 0 {
		for path, value := range flags {
			if err := k.Set(path, value); err != nil {
				return nil, fmt.Errorf("config: apply flag %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: configuration is nil")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}
	return nil
}

func readFile(opts LoadOptions) (map[string]any, error) {
	path := opts.File
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = os.DirFS(".")
	}

	raw, err := fs.ReadFile(fsys, strings.TrimPrefix(path, "./"))
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return filterNilValues(data), nil
}

// transformEnvKey maps ACF_LOG_LEVEL to log.level and ACF_SCHEMA_BASE_PATH to
// schema.base_path. Unknown top-level keys are dropped.
func transformEnvKey(key, value string) (string, any) {
	parts := strings.FieldsFunc(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), func(r rune) bool {
		return r == '_'
	})
	if len(parts) == 0 {
		return "", nil
	}
	switch parts[0] {
	case "log", "schema", "php":
		if len(parts) == 1 {
			return "", nil
		}
		return parts[0] + "." + strings.Join(parts[1:], "_"), value
	}
	return strings.Join(parts, "_"), value
}

// filterNilValues drops null entries so they do not override defaults.
func filterNilValues(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			if filtered := filterNilValues(nested); len(filtered) > 0 {
				result[k] = filtered
			}
			continue
		}
		result[k] = v
	}
	return result
}

// rawMap adapts a decoded map to koanf.Provider.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) {
	return r, nil
}

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: ReadBytes not implemented")
}
