package fields

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConstructorsSeedOnlyDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		builder Builder
		typ     string
		want    Settings
	}{
		{"advanced link", NewAdvancedLink("Link"), TypeAdvancedLink, Settings{}},
		{"button", NewButton("Send"), TypeButton, Settings{
			"button_value": "Submit",
			"button_type":  "button",
			"button_class": "button button-secondary",
		}},
		{"checkbox", NewCheckbox("Options"), TypeCheckbox, Settings{}},
		{"clone", NewClone("Hero"), TypeClone, Settings{"acfe_clone_modal_button": "Edit"}},
		{"code editor", NewCodeEditor("Snippet"), TypeCodeEditor, Settings{
			"mode":        "text/html",
			"indent_unit": 4,
			"rows":        4,
		}},
		{"columns", NewColumns("Column"), TypeColumns, Settings{}},
		{"countries", NewCountries("Region"), TypeCountries, Settings{}},
		{"date range picker", NewDateRangePicker("Period"), TypeDateRangePicker, Settings{
			"custom_ranges": []string{"Today", "Yesterday", "Last 7 Days", "Last 30 Days", "This Month", "Last Month"},
		}},
		{"file", NewFile("Attachment"), TypeFile, Settings{}},
		{"flexible content", NewFlexibleContent("Blocks"), TypeFlexibleContent, Settings{"acfe_flexible_advanced": true}},
		{"focus point", NewFocusPoint("Focus"), TypeFocusPoint, Settings{}},
		{"gallery", NewGallery("Photos"), TypeGallery, Settings{}},
		{"image", NewImage("Cover"), TypeImage, Settings{"uploader": "default"}},
		{"image mapping", NewImageMapping("Hotspots"), TypeImageMapping, Settings{}},
		{"image selector", NewImageSelector("Style"), TypeImageSelector, Settings{}},
		{"layout", NewLayout("Teaser"), TypeLayout, Settings{"acfe_flexible_modal_edit_size": ""}},
		{"open street map", NewOpenStreetMap("Map"), TypeOpenStreetMap, Settings{}},
		{"post object", NewPostObject("Related"), TypePostObject, Settings{}},
		{"repeater", NewRepeater("Rows"), TypeRepeater, Settings{}},
		{"svg icon", NewSVGIcon("Icon"), TypeSVGIcon, Settings{}},
		{"table", NewTable("Prices"), TypeTable, Settings{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.builder.Type(); got != tc.typ {
				t.Fatalf("type = %q, want %q", got, tc.typ)
			}
			if diff := cmp.Diff(tc.want, tc.builder.Settings()); diff != "" {
				t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
			}
			if err := tc.builder.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConstructorKeepsLabelAndName(t *testing.T) {
	t.Parallel()

	implicit := NewTable("Opening Hours")
	if implicit.Name() != "" {
		t.Fatalf("expected empty name, got %q", implicit.Name())
	}
	if got := implicit.ResolvedName(); got != "opening_hours" {
		t.Fatalf("resolved name = %q", got)
	}

	explicit := NewTable("Opening Hours", "hours")
	if explicit.Label() != "Opening Hours" || explicit.Name() != "hours" {
		t.Fatalf("unexpected label/name %q/%q", explicit.Label(), explicit.Name())
	}
}
