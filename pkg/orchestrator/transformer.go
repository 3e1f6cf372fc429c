package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	json "github.com/goccy/go-json"
)

// Transformer mutates resolved groups before they are sanitised and encoded.
// Implementations can patch settings or add fields.
type Transformer interface {
	Transform(ctx context.Context, groups []map[string]any) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, groups []map[string]any) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, groups []map[string]any) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, groups)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON file.
// Groups are addressed by key and fields by dotted name path through sub
// fields and layouts:
//
//	{
//	  "groups": {
//	    "group_hero": {
//	      "settings": {"menu_order": 2},
//	      "fields": {
//	        "slides.picture": {"label": "Photo", "settings": {"preview_size": "large"}}
//	      }
//	    }
//	  }
//	}
type JSONPresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Groups map[string]groupPatch `json:"groups"`
}

type groupPatch struct {
	Settings map[string]any        `json:"settings"`
	Fields   map[string]fieldPatch `json:"fields"`
}

type fieldPatch struct {
	Label        string         `json:"label"`
	Instructions string         `json:"instructions"`
	Settings     map[string]any `json:"settings"`
}

// reserved keys are derived during resolution and cannot be patched.
var reserved = map[string]struct{}{"key": {}, "name": {}, "type": {}, "fields": {}, "sub_fields": {}, "layouts": {}}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document presetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	for key, patch := range document.Groups {
		if err := checkReserved(patch.Settings); err != nil {
			return nil, fmt.Errorf("json preset transformer: group %q: %w", key, err)
		}
		for path, field := range patch.Fields {
			if err := checkReserved(field.Settings); err != nil {
				return nil, fmt.Errorf("json preset transformer: field %q: %w", path, err)
			}
		}
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the patches. Patches for groups that are not part of the
// export are ignored; unknown field paths are an error.
func (t *JSONPresetTransformer) Transform(ctx context.Context, groups []map[string]any) error {
	for _, doc := range groups {
		if err := ctx.Err(); err != nil {
			return err
		}
		key, _ := doc["key"].(string)
		patch, ok := t.document.Groups[key]
		if !ok {
			continue
		}
		for name, value := range patch.Settings {
			doc[name] = value
		}
		for path, fp := range patch.Fields {
			fields, _ := doc["fields"].([]map[string]any)
			field := findFieldByPath(fields, strings.Split(path, "."))
			if field == nil {
				return fmt.Errorf("json preset transformer: group %q: field %q not found", key, path)
			}
			applyFieldPatch(field, fp)
		}
	}
	return nil
}

func checkReserved(settings map[string]any) error {
	for name := range settings {
		if _, ok := reserved[name]; ok {
			return fmt.Errorf("setting %q cannot be overridden", name)
		}
	}
	return nil
}

func applyFieldPatch(field map[string]any, patch fieldPatch) {
	if patch.Label != "" {
		field["label"] = patch.Label
	}
	if patch.Instructions != "" {
		field["instructions"] = patch.Instructions
	}
	for name, value := range patch.Settings {
		field[name] = value
	}
}

func findFieldByPath(fields []map[string]any, segments []string) map[string]any {
	if len(segments) == 0 {
		return nil
	}
	for _, field := range fields {
		if field["name"] != segments[0] {
			continue
		}
		if len(segments) == 1 {
			return field
		}
		for _, childKey := range []string{"sub_fields", "layouts"} {
			children, _ := field[childKey].([]map[string]any)
			if found := findFieldByPath(children, segments[1:]); found != nil {
				return found
			}
		}
		return nil
	}
	return nil
}
