package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func environ(vars ...string) func() []string {
	return func() []string { return vars }
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(LoadOptions{FS: fstest.MapFS{}, Environ: environ()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPrecedence(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{DefaultFile: {Data: []byte(`
source: definitions
format: yaml
output: build/acf
log:
  level: debug
schema:
  title: Site fields
  server_url: null
php:
  template_dir: acf-templates
`)}}

	cfg, err := Load(LoadOptions{
		FS: fsys,
		Environ: environ(
			"ACF_FORMAT=php",
			"ACF_LOG_JSON=true",
			"ACF_SCHEMA_BASE_PATH=/wp-json/acf",
			"ACF_GROUPS=hero,footer",
			"ACF_PHP_HOOK=acf/init",
			"HOME=/root",
		),
		Flags: map[string]any{"format": "json", "split": true, "unknown": "x"},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Source = "definitions"
	want.Format = "json"
	want.Output = "build/acf"
	want.Split = true
	want.Groups = []string{"hero", "footer"}
	want.Log = LogConfig{Level: "debug", JSON: true}
	want.Schema.Title = "Site fields"
	want.Schema.BasePath = "/wp-json/acf"
	want.PHP = PHPConfig{TemplateDir: "acf-templates", Hook: "acf/init"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts LoadOptions
		want string
	}{
		{
			name: "explicit file missing",
			opts: LoadOptions{File: "missing.yaml", FS: fstest.MapFS{}},
			want: "read missing.yaml",
		},
		{
			name: "malformed file",
			opts: LoadOptions{FS: fstest.MapFS{DefaultFile: {Data: []byte("format: [")}}},
			want: "parse .acf.yaml",
		},
		{
			name: "invalid format",
			opts: LoadOptions{FS: fstest.MapFS{}, Flags: map[string]any{"format": "xml"}},
			want: "validation failed",
		},
		{
			name: "invalid log level",
			opts: LoadOptions{FS: fstest.MapFS{}, Environ: environ("ACF_LOG_LEVEL=loud")},
			want: "validation failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.opts.Environ == nil {
				tt.opts.Environ = environ()
			}
			_, err := Load(tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q, got %v", tt.want, err)
			}
		})
	}
}

func TestTransformEnvKey(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"ACF_SOURCE":            "source",
		"ACF_LOG_LEVEL":         "log.level",
		"ACF_SCHEMA_SERVER_URL": "schema.server_url",
		"ACF_PHP_TEMPLATE_DIR":  "php.template_dir",
		"ACF_LOG":               "",
		"ACF_":                  "",
	}
	for in, want := range tests {
		if got, _ := transformEnvKey(in, "v"); got != want {
			t.Errorf("transformEnvKey(%q) = %q, want %q", in, got, want)
		}
	}
}
