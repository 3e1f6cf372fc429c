package definition

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"github.com/schrittweiter/extended-acf/pkg/fields"
	"github.com/schrittweiter/extended-acf/pkg/group"
	"github.com/schrittweiter/extended-acf/pkg/registry"
)

func resolveJSON(t *testing.T, g *group.Group) gjson.Result {
	t.Helper()
	doc, err := g.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return gjson.ParseBytes(data)
}

func TestLoadFSSite(t *testing.T) {
	t.Parallel()

	store, err := LoadFS(os.DirFS("testdata/site"))
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", store.Len())
	}

	var keys []string
	for _, g := range store.Groups() {
		keys = append(keys, g.ResolvedKey())
	}
	if diff := cmp.Diff([]string{"group_page_blocks", "group_hero"}, keys); diff != "" {
		t.Fatalf("group order mismatch (-want +got):\n%s", diff)
	}
	if got := store.Source("group_hero"); got != "hero.yaml" {
		t.Fatalf("source = %q", got)
	}

	hero, ok := store.Group("group_hero")
	if !ok {
		t.Fatalf("group_hero not found")
	}
	doc := resolveJSON(t, hero)

	checks := map[string]string{
		"position":                             "acf_after_title",
		"hide_on_screen.0":                     "the_content",
		"location.0.0.operator":                "==",
		"fields.0.button_type":                 "submit",
		"fields.0.button_value":                "Submit",
		"fields.0.wrapper.class":               "cta",
		"fields.1.field_type":                  "select",
		"fields.1.button_value.2":              "ch",
		"fields.1.conditional_logic.0.0.field": doc.Get("fields.0.key").String(),
		"fields.2.collapsed":                   doc.Get("fields.2.sub_fields.0.key").String(),
		"fields.2.sub_fields.0.mime_types":     "jpg,png",
		"fields.2.sub_fields.1.layers.0":       fields.DefaultMapLayer,
		"fields.2.sub_fields.1.type":           fields.TypeOpenStreetMap,
	}
	for path, want := range checks {
		if got := doc.Get(path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}
	if !doc.Get("fields.0.button_ajax").Bool() || !doc.Get("fields.1.ajax").Bool() {
		t.Errorf("expected flag options to be applied")
	}
	if got := doc.Get("fields.2.sub_fields.1.center_lat").Float(); got != 52.52 {
		t.Errorf("center_lat = %v", got)
	}
	if got := doc.Get("fields.2.rows_per_page").Int(); got != 5 {
		t.Errorf("rows_per_page = %d", got)
	}
}

func TestLoadJSONKeepsOptionOrder(t *testing.T) {
	t.Parallel()

	store, err := LoadFS(os.DirFS("testdata/site"))
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	blocks, _ := store.Group("group_page_blocks")
	doc := resolveJSON(t, blocks)

	if got := doc.Get("fields.0.layouts.0.sub_fields.0.mode").String(); got != "text/x-scss" {
		t.Fatalf("expected the later duplicate option to win, got %q", got)
	}
	if got := doc.Get("fields.0.acfe_flexible_modal.acfe_flexible_modal_col").Int(); got != 3 {
		t.Fatalf("modal columns = %d", got)
	}
	if got := doc.Get("fields.0.acfe_flexible_modal.acfe_flexible_modal_size").String(); got != "full" {
		t.Fatalf("modal size = %q", got)
	}
	if got := doc.Get("fields.0.layouts.0.acfe_layout_col").Int(); got != 6 {
		t.Fatalf("default column = %d", got)
	}
	if doc.Get("fields.0.layouts.0.type").Exists() {
		t.Fatalf("layouts must not carry a type")
	}
}

func TestYAMLOptionOrder(t *testing.T) {
	t.Parallel()

	src := `
groups:
  - title: Map
    fields:
      - type: image_mapping
        label: Hotspots
        options:
          default_image: fallback.jpg
          image_field: cover
`
	groups, err := NewLoader().Parse([]byte(src), "map.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	builder := groups[0].FieldBuilders()[0]
	if got := builder.Settings()["image_field_label"]; got != "cover" {
		t.Fatalf("image_field_label = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		files  fstest.MapFS
		option string
		expect string
	}{
		{
			name:   "unknown type",
			files:  fstest.MapFS{"a.yaml": {Data: []byte("groups:\n  - title: A\n    fields:\n      - type: wysiwyg\n        label: Body\n")}},
			expect: `unknown field type "wysiwyg"`,
		},
		{
			name:   "unknown option",
			files:  fstest.MapFS{"a.yaml": {Data: []byte("groups:\n  - title: A\n    fields:\n      - type: table\n        label: Prices\n        options:\n          rows: 3\n")}},
			option: "rows",
			expect: "no Rows setter",
		},
		{
			name:   "getter is not an option",
			files:  fstest.MapFS{"a.yaml": {Data: []byte("groups:\n  - title: A\n    fields:\n      - type: table\n        label: Prices\n        options:\n          label: Other\n")}},
			option: "label",
			expect: "no Label setter",
		},
		{
			name:   "bad argument",
			files:  fstest.MapFS{"a.yaml": {Data: []byte("groups:\n  - title: A\n    fields:\n      - type: repeater\n        label: Rows\n        options:\n          pagination: many\n")}},
			option: "pagination",
		},
		{
			name:   "sub fields on plain field",
			files:  fstest.MapFS{"a.yaml": {Data: []byte("groups:\n  - title: A\n    fields:\n      - type: table\n        label: Prices\n        fields:\n          - type: image\n            label: Logo\n")}},
			option: "fields",
			expect: "does not accept sub fields",
		},
		{
			name:   "missing label and name",
			files:  fstest.MapFS{"a.yaml": {Data: []byte("groups:\n  - title: A\n    fields:\n      - type: table\n")}},
			expect: "label or name is required",
		},
		{
			name: "duplicate group key",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("groups:\n  - title: Hero\n")},
				"b.json": {Data: []byte(`{"groups": [{"title": "Other", "key": "hero"}]}`)},
			},
			expect: `duplicate group key "group_hero"`,
		},
		{
			name:   "empty file",
			files:  fstest.MapFS{"a.yml": {Data: []byte("  \n")}},
			expect: "is empty",
		},
		{
			name:   "unknown document key",
			files:  fstest.MapFS{"a.yaml": {Data: []byte("groups:\n  - title: A\n    feilds: []\n")}},
			expect: "feilds",
		},
		{
			name:   "broken json",
			files:  fstest.MapFS{"a.json": {Data: []byte(`{"groups": [`)}},
			expect: "parse a.json",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadFS(tc.files)
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected LoadError, got %v", err)
			}
			if loadErr.Option != tc.option {
				t.Fatalf("option = %q, want %q (%v)", loadErr.Option, tc.option, err)
			}
			if tc.expect != "" && !strings.Contains(err.Error(), tc.expect) {
				t.Fatalf("error %q does not mention %q", err, tc.expect)
			}
		})
	}
}

func TestLoadSurfacesInvalidArgument(t *testing.T) {
	t.Parallel()

	src := "groups:\n  - title: A\n    fields:\n      - type: countries\n        name: region\n        options:\n          appearance: dropdown\n"
	_, err := NewLoader().Parse([]byte(src), "a.yaml")

	var invalid *fields.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
	if invalid.Value != "dropdown" {
		t.Fatalf("rejected value = %q", invalid.Value)
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Field != "region" || loadErr.Group != "A" {
		t.Fatalf("expected field context, got %v", err)
	}
}

func TestCustomRegistry(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	if err := reg.Alias("link", fields.TypeAdvancedLink); err != nil {
		t.Fatalf("Alias: %v", err)
	}
	src := "groups:\n  - key: links\n    fields:\n      - type: link\n        name: read_more\n        options:\n          post_types: [post, page]\n"
	groups, err := NewLoader(WithRegistry(reg)).Parse([]byte(src), "links.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := groups[0].Title(); got != "Links" {
		t.Fatalf("derived title = %q", got)
	}
	builder := groups[0].FieldBuilders()[0]
	if builder.Label() != "Read More" {
		t.Fatalf("derived label = %q", builder.Label())
	}
	if diff := cmp.Diff([]string{"post", "page"}, builder.Settings()["post_type"]); diff != "" {
		t.Fatalf("post types mismatch (-want +got):\n%s", diff)
	}
}

func TestNilFSIsEmpty(t *testing.T) {
	t.Parallel()

	store, err := LoadFS(nil)
	if err != nil || store.Len() != 0 {
		t.Fatalf("expected empty store, got %d groups, err %v", store.Len(), err)
	}
}
