// Package export encodes resolved field groups into the formats the host
// plugin can load: local JSON, YAML and a PHP include file.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPHP  Format = "php"
)

// Encoder writes resolved groups to w.
type Encoder interface {
	Encode(w io.Writer, groups []map[string]any) error
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(w io.Writer, groups []map[string]any) error

func (fn EncoderFunc) Encode(w io.Writer, groups []map[string]any) error {
	return fn(w, groups)
}

var encoders = map[Format]Encoder{
	FormatJSON: EncoderFunc(encodeJSON),
	FormatYAML: EncoderFunc(encodeYAML),
	FormatPHP:  EncoderFunc(encodePHP),
}

// New returns the encoder for format. "yml" is accepted as an alias of yaml.
func New(format string) (Encoder, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(format)))
	if normalized == "yml" {
		normalized = FormatYAML
	}
	encoder, ok := encoders[normalized]
	if !ok {
		return nil, fmt.Errorf("export: unsupported format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	return encoder, nil
}

// Formats lists the supported format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for format := range encoders {
		out = append(out, string(format))
	}
	sort.Strings(out)
	return out
}

// Extension returns the file extension for format, including the dot.
func Extension(format Format) string {
	switch format {
	case FormatYAML:
		return ".yaml"
	case FormatPHP:
		return ".php"
	default:
		return ".json"
	}
}

// encodeJSON writes the groups as an indented array, the layout of the host's
// acf-json sync files.
func encodeJSON(w io.Writer, groups []map[string]any) error {
	if groups == nil {
		groups = []map[string]any{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(groups); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, groups []map[string]any) error {
	if groups == nil {
		groups = []map[string]any{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(groups); err != nil {
		return fmt.Errorf("export: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: encode yaml: %w", err)
	}
	return nil
}
