package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/schrittweiter/extended-acf/pkg/testsupport"
)

func heroGroups() []map[string]any {
	return []map[string]any{{
		"key":        "group_hero",
		"title":      "Hero",
		"menu_order": 0,
		"active":     true,
		"fields": []map[string]any{{
			"key":          "field_3c6de1b7dd914",
			"label":        "Call to action",
			"name":         "cta",
			"type":         "acfe_button",
			"button_value": "Don't wait",
			"required":     true,
			"wrapper":      map[string]any{"width": "50", "class": "", "id": ""},
		}},
		"location": [][]map[string]any{{
			{"param": "post_type", "operator": "==", "value": "page"},
		}},
	}}
}

func encode(t *testing.T, format string, groups []map[string]any) []byte {
	t.Helper()

	encoder, err := New(format)
	if err != nil {
		t.Fatalf("New(%q): %v", format, err)
	}
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, groups); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return buf.Bytes()
}

func TestNewUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := New("xml")
	if err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "json, php, yaml") {
		t.Fatalf("error should list formats, got %v", err)
	}
	if _, err := New(" YML "); err != nil {
		t.Fatalf("yml alias: %v", err)
	}
}

func TestEncodeJSON(t *testing.T) {
	t.Parallel()

	out := encode(t, "json", heroGroups())
	if !gjson.ValidBytes(out) {
		t.Fatalf("invalid json:\n%s", out)
	}
	if !bytes.HasSuffix(out, []byte("]\n")) {
		t.Fatalf("expected array with trailing newline, got %q", out[len(out)-4:])
	}

	checks := map[string]string{
		"0.key":                    "group_hero",
		"0.fields.0.key":           "field_3c6de1b7dd914",
		"0.fields.0.button_value":  "Don't wait",
		"0.fields.0.wrapper.width": "50",
		"0.location.0.0.param":     "post_type",
	}
	for path, want := range checks {
		if got := gjson.GetBytes(out, path).String(); got != want {
			t.Errorf("%s: want %q, got %q", path, want, got)
		}
	}
	if !gjson.GetBytes(out, "0.fields.0.required").Bool() {
		t.Errorf("required should be true")
	}
}

func TestEncodeJSONEmpty(t *testing.T) {
	t.Parallel()

	out := encode(t, "json", nil)
	if string(out) != "[]\n" {
		t.Fatalf("expected empty array, got %q", out)
	}
}

func TestEncodeYAML(t *testing.T) {
	t.Parallel()

	out := encode(t, "yaml", heroGroups())

	var decoded []map[string]any
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected one group, got %d", len(decoded))
	}
	fields, ok := decoded[0]["fields"].([]any)
	if !ok || len(fields) != 1 {
		t.Fatalf("unexpected fields %#v", decoded[0]["fields"])
	}
	want := map[string]any{"width": "50", "class": "", "id": ""}
	if diff := cmp.Diff(want, fields[0].(map[string]any)["wrapper"]); diff != "" {
		t.Fatalf("wrapper mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodePHPGolden(t *testing.T) {
	t.Parallel()

	out := encode(t, "php", heroGroups())
	golden := filepath.Join("testdata", "hero.php.golden")
	if testsupport.WriteMaybeGolden(t, golden, out) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("php mismatch (-want +got):\n%s", diff)
	}
}

func TestPHPEncoderOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	custom := "<?php\n// {{ hook }}\n{% for group in groups %}return {{ group.key|php|safe }};\n{% endfor %}"
	if err := os.WriteFile(filepath.Join(dir, "php.tpl"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	tests := []struct {
		name string
		opts PHPOptions
		want []string
	}{
		{
			name: "hook only",
			opts: PHPOptions{Hook: "init"},
			want: []string{"add_action('init', function () {", "acf_add_local_field_group(array("},
		},
		{
			name: "template dir",
			opts: PHPOptions{TemplateDir: dir, Hook: "acf/init"},
			want: []string{"// acf/init\n", "return 'group_hero';\n"},
		},
		{
			name: "default hook",
			opts: PHPOptions{TemplateDir: dir},
			want: []string{"// " + DefaultPHPHook + "\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			enc, err := NewPHPEncoder(tt.opts)
			if err != nil {
				t.Fatalf("new encoder: %v", err)
			}
			var buf bytes.Buffer
			if err := enc.Encode(&buf, heroGroups()); err != nil {
				t.Fatalf("encode: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Fatalf("expected %q in output:\n%s", want, buf.String())
				}
			}
		})
	}

	if _, err := NewPHPEncoder(PHPOptions{TemplateDir: filepath.Join(dir, "missing")}); err == nil {
		t.Fatalf("expected an error for a missing template dir")
	}
}

func TestPHPLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		depth int
		want  string
	}{
		{name: "null", value: nil, want: "NULL"},
		{name: "bool", value: false, want: "false"},
		{name: "int", value: 4, want: "4"},
		{name: "integral float", value: float64(12), want: "12"},
		{name: "float", value: 0.5, want: "0.5"},
		{name: "escaped string", value: `it's a \ path`, want: `'it\'s a \\ path'`},
		{name: "empty map", value: map[string]any{}, want: "array()"},
		{name: "empty list", value: []string{}, want: "array()"},
		{
			name:  "list",
			value: []string{"Today", "Yesterday"},
			want:  "array(\n    'Today',\n    'Yesterday',\n)",
		},
		{
			name:  "leading keys first",
			value: map[string]any{"b": 1, "type": "text", "a": 2, "key": "k"},
			want:  "array(\n    'key' => 'k',\n    'type' => 'text',\n    'a' => 2,\n    'b' => 1,\n)",
		},
		{
			name:  "nested with depth",
			value: map[string]any{"wrapper": map[string]any{"id": "x"}},
			depth: 1,
			want:  "array(\n        'wrapper' => array(\n            'id' => 'x',\n        ),\n    )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, PHPLiteral(tt.value, tt.depth)); diff != "" {
				t.Fatalf("literal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	groups := []map[string]any{{
		"key": "group_x",
		"fields": []map[string]any{{
			"instructions":  `<strong>Pick</strong><script>alert(1)</script>`,
			"button_before": `<a href="javascript:alert(1)" onclick="x()">go</a>`,
			"label":         `<em>kept</em>`,
			"layouts": []any{
				map[string]any{"instructions": `<img src=x onerror=alert(1)>`},
			},
		}},
	}}

	clean := Sanitize(groups)
	field := clean[0]["fields"].([]map[string]any)[0]

	if got := field["instructions"]; got != "<strong>Pick</strong>" {
		t.Errorf("instructions: got %q", got)
	}
	before := field["button_before"].(string)
	if strings.Contains(before, "javascript") || strings.Contains(before, "onclick") {
		t.Errorf("button_before kept unsafe markup: %q", before)
	}
	if got := field["label"]; got != `<em>kept</em>` {
		t.Errorf("label should not be sanitized, got %q", got)
	}
	nested := field["layouts"].([]any)[0].(map[string]any)["instructions"].(string)
	if strings.Contains(nested, "onerror") {
		t.Errorf("nested instructions kept handler: %q", nested)
	}

	original := groups[0]["fields"].([]map[string]any)[0]["instructions"]
	if !strings.Contains(original.(string), "<script>") {
		t.Errorf("input was modified")
	}
}
