// Package registry maps field type names to builder constructors so
// declarative definitions can create builders by name.
package registry

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/schrittweiter/extended-acf/pkg/fields"
)

// Child containers a builder can accept.
const (
	ContainerNone      = ""
	ContainerSubFields = "sub_fields"
	ContainerLayouts   = "layouts"
)

// Constructor creates a builder; name may be empty.
type Constructor func(label, name string) fields.Builder

// Entry describes one registered field type.
type Entry struct {
	Type      string
	New       Constructor
	Container string
}

// Registry resolves type names and aliases to entries. The latest
// registration of a name wins. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	aliases map[string]string
}

// New constructs a registry with every built-in field type registered.
func New() *Registry {
	reg := &Registry{
		entries: make(map[string]Entry),
		aliases: make(map[string]string),
	}
	reg.registerBuiltins()
	return reg
}

// Register adds or replaces a field type.
func (r *Registry) Register(entry Entry) error {
	if r == nil {
		return errors.New("registry: nil registry")
	}
	entry.Type = strings.TrimSpace(entry.Type)
	if entry.Type == "" {
		return errors.New("registry: type is required")
	}
	if entry.New == nil {
		return errors.New("registry: constructor is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.Type] = entry
	return nil
}

// Alias lets definitions refer to a registered type by a shorter name.
func (r *Registry) Alias(alias, typ string) error {
	if r == nil {
		return errors.New("registry: nil registry")
	}
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return errors.New("registry: alias is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[typ]; !ok {
		return errors.New("registry: alias " + alias + " targets unknown type " + typ)
	}
	r.aliases[alias] = typ
	return nil
}

// Lookup resolves a type name or alias.
func (r *Registry) Lookup(name string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	name = strings.TrimSpace(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, ok := r.entries[name]; ok {
		return entry, true
	}
	if target, ok := r.aliases[name]; ok {
		entry, ok := r.entries[target]
		return entry, ok
	}
	return Entry{}, false
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Aliases returns alias -> type pairs.
func (r *Registry) Aliases() map[string]string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.aliases))
	for alias, typ := range r.aliases {
		out[alias] = typ
	}
	return out
}

func named(name string) []string {
	if name == "" {
		return nil
	}
	return []string{name}
}

func (r *Registry) registerBuiltins() {
	builtins := []struct {
		entry Entry
		alias string
	}{
		{Entry{Type: fields.TypeAdvancedLink, New: func(l, n string) fields.Builder { return fields.NewAdvancedLink(l, named(n)...) }}, "advanced_link"},
		{Entry{Type: fields.TypeButton, New: func(l, n string) fields.Builder { return fields.NewButton(l, named(n)...) }}, "button"},
		{Entry{Type: fields.TypeCheckbox, New: func(l, n string) fields.Builder { return fields.NewCheckbox(l, named(n)...) }}, ""},
		{Entry{Type: fields.TypeClone, New: func(l, n string) fields.Builder { return fields.NewClone(l, named(n)...) }}, ""},
		{Entry{Type: fields.TypeCodeEditor, New: func(l, n string) fields.Builder { return fields.NewCodeEditor(l, named(n)...) }}, "code_editor"},
		{Entry{Type: fields.TypeColumns, New: func(l, n string) fields.Builder { return fields.NewColumns(l, named(n)...) }}, "columns"},
		{Entry{Type: fields.TypeCountries, New: func(l, n string) fields.Builder { return fields.NewCountries(l, named(n)...) }}, "countries"},
		{Entry{Type: fields.TypeDateRangePicker, New: func(l, n string) fields.Builder { return fields.NewDateRangePicker(l, named(n)...) }}, "date_range_picker"},
		{Entry{Type: fields.TypeFile, New: func(l, n string) fields.Builder { return fields.NewFile(l, named(n)...) }}, ""},
		{Entry{Type: fields.TypeFlexibleContent, New: func(l, n string) fields.Builder { return fields.NewFlexibleContent(l, named(n)...) }, Container: ContainerLayouts}, ""},
		{Entry{Type: fields.TypeFocusPoint, New: func(l, n string) fields.Builder { return fields.NewFocusPoint(l, named(n)...) }}, "focus_point"},
		{Entry{Type: fields.TypeGallery, New: func(l, n string) fields.Builder { return fields.NewGallery(l, named(n)...) }}, ""},
		{Entry{Type: fields.TypeImage, New: func(l, n string) fields.Builder { return fields.NewImage(l, named(n)...) }}, ""},
		{Entry{Type: fields.TypeImageMapping, New: func(l, n string) fields.Builder { return fields.NewImageMapping(l, named(n)...) }}, ""},
		{Entry{Type: fields.TypeImageSelector, New: func(l, n string) fields.Builder { return fields.NewImageSelector(l, named(n)...) }}, "image_selector"},
		{Entry{Type: fields.TypeLayout, New: func(l, n string) fields.Builder { return fields.NewLayout(l, named(n)...) }, Container: ContainerSubFields}, ""},
		{Entry{Type: fields.TypeOpenStreetMap, New: func(l, n string) fields.Builder { return fields.NewOpenStreetMap(l, named(n)...) }}, "map"},
		{Entry{Type: fields.TypePostObject, New: func(l, n string) fields.Builder { return fields.NewPostObject(l, named(n)...) }}, ""},
		{Entry{Type: fields.TypeRepeater, New: func(l, n string) fields.Builder { return fields.NewRepeater(l, named(n)...) }, Container: ContainerSubFields}, ""},
		{Entry{Type: fields.TypeSVGIcon, New: func(l, n string) fields.Builder { return fields.NewSVGIcon(l, named(n)...) }}, ""},
		{Entry{Type: fields.TypeTable, New: func(l, n string) fields.Builder { return fields.NewTable(l, named(n)...) }}, ""},
	}
	for _, builtin := range builtins {
		_ = r.Register(builtin.entry)
		if builtin.alias != "" {
			_ = r.Alias(builtin.alias, builtin.entry.Type)
		}
	}
}
