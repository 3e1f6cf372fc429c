package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"github.com/schrittweiter/extended-acf/internal/prompt"
	"github.com/schrittweiter/extended-acf/internal/scaffold"
	"github.com/schrittweiter/extended-acf/pkg/definition"
)

const siteYAML = `groups:
  - title: Hero
    location:
      - - param: post_type
          value: page
    fields:
      - type: acfe_countries
        name: region
      - type: table
        label: Notes
        options:
          instructions: "<em>Rows</em><script>alert(1)</script>"
          conditional_logic:
            - - field: region
                operator: "=="
                value: de
  - title: Footer
    fields:
      - type: table
        label: Links
`

// project writes the given files below a fresh directory and returns it.
func project(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func testApp(answers ...any) (*app, *prompt.Script) {
	script := &prompt.Script{Answers: answers}
	a := newApp()
	a.environ = func() []string { return nil }
	a.driver = script
	return a, script
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "disabled"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExportStdout(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"acf/site.yaml": siteYAML})
	a, _ := testApp()
	out, err := execute(t, a, "export", "--source", filepath.Join(dir, "acf"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	checks := map[string]string{
		"#":                       "2",
		"0.key":                   "group_hero",
		"0.fields.1.name":         "notes",
		"0.fields.1.instructions": "<em>Rows</em>",
		"1.fields.0.name":         "links",
		"0.location.0.0.value":    "page",
		"0.fields.1.conditional_logic.0.0.operator": "==",
	}
	for path, want := range checks {
		if got := gjson.Get(out, path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}
}

func TestExportConfigFile(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"acf/site.yaml": siteYAML})
	config := "source: " + filepath.Join(dir, "acf") + "\nformat: php\ngroups: [footer]\n"
	if err := os.WriteFile(filepath.Join(dir, "site.acf.yaml"), []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	a, _ := testApp()
	out, err := execute(t, a, "export", "--config", filepath.Join(dir, "site.acf.yaml"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out, "<?php") {
		t.Fatalf("expected PHP output, got:\n%s", out)
	}
	if !strings.Contains(out, "'key' => 'group_footer'") || strings.Contains(out, "group_hero") {
		t.Fatalf("expected only the footer group:\n%s", out)
	}
}

func TestExportFlagsOverrideEnvironment(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"acf/site.yaml": siteYAML})
	a, _ := testApp()
	a.environ = func() []string { return []string{"ACF_FORMAT=php", "ACF_SOURCE=" + filepath.Join(dir, "acf")} }
	out, err := execute(t, a, "export", "--format", "yaml", "--group", "group_hero")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out, "- ") || !strings.Contains(out, "key: group_hero") {
		t.Fatalf("expected YAML for the hero group, got:\n%s", out)
	}
}

func TestExportPHPTemplateDir(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{
		"acf/site.yaml":  siteYAML,
		"tpl/php.tpl":    "<?php // {{ hook }}\n{% for group in groups %}{{ group.key }}\n{% endfor %}",
		"tpl/ignored.md": "x",
	})
	a, _ := testApp()
	out, err := execute(t, a, "export",
		"--source", filepath.Join(dir, "acf"),
		"--format", "php",
		"--template-dir", filepath.Join(dir, "tpl"),
		"--php-hook", "acf/init",
	)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "<?php // acf/init\ngroup_hero\ngroup_footer\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	a, _ = testApp()
	_, err = execute(t, a, "export",
		"--source", filepath.Join(dir, "acf"),
		"--format", "php",
		"--template-dir", filepath.Join(dir, "missing"),
	)
	if err == nil || !strings.Contains(err.Error(), "template dir") {
		t.Fatalf("expected a template dir error, got %v", err)
	}
}

func TestExportSplit(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"acf/site.yaml": siteYAML})
	target := filepath.Join(dir, "acf-json")
	a, _ := testApp()
	out, err := execute(t, a, "export", "--source", filepath.Join(dir, "acf"), "--split", "--output", target)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := filepath.Join(target, "group_hero.json") + "\n" + filepath.Join(target, "group_footer.json") + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("written paths mismatch (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(filepath.Join(target, "group_footer.json"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if got := gjson.GetBytes(data, "0.key").String(); got != "group_footer" {
		t.Fatalf("unexpected footer export:\n%s", data)
	}
}

func TestExportSplitNeedsOutput(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"acf/site.yaml": siteYAML})
	a, _ := testApp()
	if _, err := execute(t, a, "export", "--source", filepath.Join(dir, "acf"), "--split"); err == nil {
		t.Fatalf("expected an error without --output")
	}
}

func TestExportInvalidFormat(t *testing.T) {
	t.Parallel()

	a, _ := testApp()
	_, err := execute(t, a, "export", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestSchemaCommand(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"acf/site.yaml": siteYAML})
	target := filepath.Join(dir, "openapi.json")
	a, _ := testApp()
	_, err := execute(t, a, "schema", "--source", filepath.Join(dir, "acf"), "--output", target, "--title", "Site")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if got := gjson.GetBytes(data, "info.title").String(); got != "Site" {
		t.Fatalf("title = %q", got)
	}
	if !gjson.GetBytes(data, "components.schemas.group_hero").Exists() {
		t.Fatalf("missing hero schema:\n%s", data)
	}
}

func TestLintCommand(t *testing.T) {
	t.Parallel()

	clean := project(t, map[string]string{"acf/site.yaml": siteYAML})
	a, _ := testApp()
	out, err := execute(t, a, "lint", "--source", filepath.Join(clean, "acf"))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if strings.TrimSpace(out) != "no issues found" {
		t.Fatalf("unexpected output %q", out)
	}

	broken := project(t, map[string]string{
		"acf/bad.yaml": "groups:\n  - title: Bad\n    fields:\n      - type: nope\n        label: X\n",
	})
	a, _ = testApp()
	out, err = execute(t, a, "lint", "--source", filepath.Join(broken, "acf"))
	if err == nil || err.Error() != "lint: 1 issue" {
		t.Fatalf("expected one issue, got %v", err)
	}
	if !strings.Contains(out, "bad.yaml") {
		t.Fatalf("issue does not name the file: %q", out)
	}
}

func TestTypesCommand(t *testing.T) {
	t.Parallel()

	a, _ := testApp()
	out, err := execute(t, a, "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	for _, want := range []string{"TYPE", "repeater", "sub_fields", "flexible_content", "layouts", "acfe_countries"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestPreviewCommand(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{
		"acf/site.yaml": siteYAML,
		"values.json":   `{"region": "de"}`,
		"other.yaml":    "region: fr\n",
	})
	tests := []struct {
		name   string
		values string
		want   string
	}{
		{name: "condition met", values: "values.json", want: "region\nnotes\n"},
		{name: "condition not met", values: "other.yaml", want: "region\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, _ := testApp()
			out, err := execute(t, a, "preview", "hero", "--source", filepath.Join(dir, "acf"), "--values", filepath.Join(dir, tt.values))
			if err != nil {
				t.Fatalf("preview: %v", err)
			}
			if diff := cmp.Diff(tt.want, out); diff != "" {
				t.Fatalf("visible mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "acf", "landing.yaml")
	probe, _ := testApp()
	tableIdx := -1
	for i, name := range scaffold.New(nil, probe.registry).Types() {
		if name == "table" {
			tableIdx = i
		}
	}
	if tableIdx < 0 {
		t.Fatalf("table type not offered")
	}

	a, script := testApp("Landing", "", true, tableIdx, "Rows", false, false)
	if _, err := execute(t, a, "new", "--output", target); err != nil {
		t.Fatalf("new: %v", err)
	}
	if len(script.Infos) != 1 {
		t.Fatalf("expected a closing hint, got %v", script.Infos)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read scaffold: %v", err)
	}
	groups, err := definition.NewLoader().Parse(data, "landing.yaml")
	if err != nil {
		t.Fatalf("scaffold does not load: %v\n%s", err, data)
	}
	doc, err := groups[0].Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if doc["key"] != "group_landing" {
		t.Fatalf("unexpected key %v", doc["key"])
	}

	// a second run against the same file asks before overwriting
	again, _ := testApp(false)
	_, err = execute(t, again, "new", "--output", target)
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
