package fields

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/mohae/deepcopy"

	"github.com/schrittweiter/extended-acf/internal/argument"
)

// InvalidArgumentError is recorded by setters that only accept a closed set of
// values. Inspect it with errors.As on Builder.Err or Resolve errors.
type InvalidArgumentError = argument.InvalidArgumentError

// Settings maps option names to values in the shape the host runtime reads:
// string, number, bool, []string, []map[string]any or map[string]any.
type Settings map[string]any

// Builder is implemented by every field type in this package.
type Builder interface {
	Type() string
	Label() string
	Name() string
	Settings() Settings
	Err() error
	Resolve(parentKey string) (map[string]any, error)
}

const (
	prefixField  = "field"
	prefixLayout = "layout"

	keySubFields        = "sub_fields"
	keyLayouts          = "layouts"
	keyConditionalLogic = "conditional_logic"
)

// Field is the state shared by all builders: the type tag, label, optional
// name and the settings mapping. Concrete builders embed *Field.
type Field struct {
	typ      string
	label    string
	name     string
	prefix   string
	settings Settings
	children map[string][]Builder
	order    []string
	err      error
}

func newField(typ, label string, name []string) *Field {
	f := &Field{
		typ:      typ,
		label:    label,
		prefix:   prefixField,
		settings: make(Settings),
	}
	if len(name) > 0 {
		f.name = strings.TrimSpace(name[0])
	}
	return f
}

// Type returns the type tag fixed at construction.
func (f *Field) Type() string { return f.typ }

// Label returns the display label.
func (f *Field) Label() string { return f.label }

// Name returns the machine name passed at construction, or "" when the name
// is derived from the label during resolution.
func (f *Field) Name() string { return f.name }

// ResolvedName returns the explicit name or the label slug joined with
// underscores.
func (f *Field) ResolvedName() string {
	if f.name != "" {
		return f.name
	}
	return strings.ReplaceAll(slug.Make(f.label), "-", "_")
}

// Settings returns a deep copy of the settings mapping. Sub fields and
// layouts are not part of it; they only appear in Resolve output.
func (f *Field) Settings() Settings {
	if len(f.settings) == 0 {
		return Settings{}
	}
	return deepcopy.Copy(f.settings).(Settings)
}

// Setting returns a single value from the settings mapping.
func (f *Field) Setting(key string) (any, bool) {
	value, ok := f.settings[key]
	return value, ok
}

// Err returns the first error recorded by a validated setter.
func (f *Field) Err() error { return f.err }

func (f *Field) set(key string, value any) {
	f.settings[key] = value
}

func (f *Field) fail(err error) {
	if err != nil && f.err == nil {
		f.err = err
	}
}

func (f *Field) setChildren(key string, children []Builder) {
	if f.children == nil {
		f.children = make(map[string][]Builder)
	}
	if _, exists := f.children[key]; !exists {
		f.order = append(f.order, key)
	}
	f.children[key] = append([]Builder(nil), children...)
}

// Children returns the nested builders stored under key (sub_fields or
// layouts).
func (f *Field) Children(key string) []Builder {
	return append([]Builder(nil), f.children[key]...)
}

// Key returns the key this field resolves to below parentKey.
func (f *Field) Key(parentKey string) string {
	return GenerateKey(f.prefix, parentKey, f.ResolvedName())
}

// Resolve returns the host-ready mapping: settings plus key, name, label and
// type, with conditional logic and nested builders resolved under the
// field's key.
func (f *Field) Resolve(parentKey string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	name := f.ResolvedName()
	if name == "" {
		return nil, fmt.Errorf("fields: %s field has neither name nor label", f.typ)
	}
	key := GenerateKey(f.prefix, parentKey, name)

	out := make(map[string]any, len(f.settings)+4)
	for k, v := range f.Settings() {
		out[k] = v
	}
	if raw, ok := out[keyConditionalLogic]; ok {
		out[keyConditionalLogic] = resolveConditions(parentKey, raw)
	}
	for _, childKey := range f.order {
		resolved := make([]map[string]any, 0, len(f.children[childKey]))
		for _, child := range f.children[childKey] {
			entry, err := child.Resolve(key)
			if err != nil {
				return nil, fmt.Errorf("fields: %s %q: %w", f.typ, name, err)
			}
			resolved = append(resolved, entry)
		}
		out[childKey] = resolved
	}

	out["key"] = key
	out["name"] = name
	out["label"] = f.label
	if f.prefix == prefixField {
		out["type"] = f.typ
	}
	return out, nil
}

// resolveConditions swaps sibling field names for their generated keys.
func resolveConditions(parentKey string, raw any) any {
	groups, ok := raw.([][]map[string]any)
	if !ok {
		return raw
	}
	for _, group := range groups {
		for _, rule := range group {
			if name, ok := rule["field"].(string); ok && name != "" && !isGeneratedKey(prefixField, name) {
				rule["field"] = GenerateKey(prefixField, parentKey, name)
			}
		}
	}
	return groups
}
