// Package definition loads field groups from YAML or JSON documents. Each
// field names a registered type and lists its options by setter:
//
//	groups:
//	  - title: Contact
//	    location: [[{param: post_type, value: page}]]
//	    fields:
//	      - type: button
//	        label: Send
//	        options:
//	          button_type: submit
//	          button_ajax: true
//
// Options are applied in the order they appear, so later options overwrite
// earlier ones writing the same key.
package definition

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/schrittweiter/extended-acf/pkg/fields"
	"github.com/schrittweiter/extended-acf/pkg/group"
	"github.com/schrittweiter/extended-acf/pkg/location"
	"github.com/schrittweiter/extended-acf/pkg/logger"
	"github.com/schrittweiter/extended-acf/pkg/registry"
)

// Loader turns definition documents into field groups.
type Loader struct {
	registry *registry.Registry
	logger   logger.Logger
	labeler  func(string) string
}

type Option func(*Loader)

// WithRegistry swaps the type registry, e.g. to add custom field types.
func WithRegistry(reg *registry.Registry) Option {
	return func(l *Loader) {
		if reg != nil {
			l.registry = reg
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// WithLabeler replaces the function deriving missing labels from names.
func WithLabeler(fn func(string) string) Option {
	return func(l *Loader) {
		if fn != nil {
			l.labeler = fn
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		registry: registry.New(),
		logger:   logger.Nop(),
		labeler:  DefaultLabeler,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Store holds the loaded groups in load order.
type Store struct {
	groups  []*group.Group
	sources map[string]string
}

// Groups returns the loaded groups in file then document order.
func (s *Store) Groups() []*group.Group {
	if s == nil {
		return nil
	}
	return append([]*group.Group(nil), s.groups...)
}

// Group returns the group with the given key.
func (s *Store) Group(key string) (*group.Group, bool) {
	if s == nil {
		return nil, false
	}
	for _, g := range s.groups {
		if g.ResolvedKey() == key {
			return g, true
		}
	}
	return nil, false
}

// Source returns the file a group was loaded from.
func (s *Store) Source(key string) string {
	if s == nil {
		return ""
	}
	return s.sources[key]
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.groups)
}

func (s *Store) add(g *group.Group, path string) error {
	key := g.ResolvedKey()
	if previous, exists := s.sources[key]; exists {
		return &LoadError{Path: path, Group: g.Title(), Err: fmt.Errorf("duplicate group key %q (first defined in %s)", key, previous)}
	}
	s.groups = append(s.groups, g)
	s.sources[key] = path
	return nil
}

// LoadFS is shorthand for NewLoader(opts...).LoadFS(fsys).
func LoadFS(fsys fs.FS, opts ...Option) (*Store, error) {
	return NewLoader(opts...).LoadFS(fsys)
}

// LoadFS walks fsys and loads every .json, .yaml and .yml file. A nil fsys
// yields an empty store.
func (l *Loader) LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{sources: make(map[string]string)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}
		groups, err := l.Parse(data, path)
		if err != nil {
			return err
		}
		for _, g := range groups {
			if err := store.add(g, path); err != nil {
				return err
			}
		}
		l.logger.Debug("loaded definition", "path", path, "groups", len(groups))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse loads the groups of a single document. source names the document in
// errors and selects JSON parsing when it ends in .json.
func (l *Loader) Parse(data []byte, source string) ([]*group.Group, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, &LoadError{Path: source, Err: err}
	}
	if len(doc.Groups) == 0 {
		l.logger.Warn("definition declares no groups", "path", source)
	}

	groups := make([]*group.Group, 0, len(doc.Groups))
	seen := make(map[string]struct{}, len(doc.Groups))
	for idx, raw := range doc.Groups {
		g, err := l.buildGroup(raw, source, idx)
		if err != nil {
			return nil, err
		}
		key := g.ResolvedKey()
		if _, dup := seen[key]; dup {
			return nil, &LoadError{Path: source, Group: g.Title(), Err: fmt.Errorf("duplicate group key %q", key)}
		}
		seen[key] = struct{}{}
		groups = append(groups, g)
	}
	return groups, nil
}

func (l *Loader) buildGroup(raw groupFile, source string, idx int) (*group.Group, error) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = l.labeler(strings.TrimPrefix(raw.Key, "group_"))
	}
	if title == "" {
		return nil, &LoadError{Path: source, Err: fmt.Errorf("group %d needs a title or key", idx)}
	}
	fail := func(option string, err error) error {
		return &LoadError{Path: source, Group: title, Option: option, Err: err}
	}

	g := group.New(title)
	if raw.Key != "" {
		g.Key(raw.Key)
	}
	if raw.Location.Kind != 0 {
		var rules any
		if err := raw.Location.Decode(&rules); err != nil {
			return nil, fail("location", err)
		}
		locations, err := location.Parse(rules)
		if err != nil {
			return nil, fail("location", err)
		}
		g.Location(locations...)
	}
	if err := applyOptions(g, &raw.Options); err != nil {
		return nil, fail(optionName(err), err)
	}

	builders := make([]fields.Builder, 0, len(raw.Fields))
	for _, rawField := range raw.Fields {
		builder, err := l.buildField(rawField, "", source, title)
		if err != nil {
			return nil, err
		}
		builders = append(builders, builder)
	}
	g.Fields(builders...)

	if err := g.Err(); err != nil {
		return nil, fail("", err)
	}
	return g, nil
}

func (l *Loader) buildField(raw fieldFile, defaultType, source, groupTitle string) (fields.Builder, error) {
	ident := raw.Name
	if ident == "" {
		ident = raw.Label
	}
	fail := func(option string, err error) error {
		return &LoadError{Path: source, Group: groupTitle, Field: ident, Option: option, Err: err}
	}

	typ := strings.TrimSpace(raw.Type)
	if typ == "" {
		typ = defaultType
	}
	if typ == "" {
		return nil, fail("", errors.New("type is required"))
	}
	entry, ok := l.registry.Lookup(typ)
	if !ok {
		return nil, fail("", fmt.Errorf("unknown field type %q", typ))
	}

	label := strings.TrimSpace(raw.Label)
	if label == "" {
		label = l.labeler(raw.Name)
	}
	if label == "" {
		return nil, fail("", errors.New("label or name is required"))
	}

	builder := entry.New(label, strings.TrimSpace(raw.Name))
	if err := applyOptions(builder, &raw.Options); err != nil {
		return nil, fail(optionName(err), err)
	}

	if len(raw.Fields) > 0 {
		if entry.Container != registry.ContainerSubFields {
			return nil, fail("fields", fmt.Errorf("%s does not accept sub fields", entry.Type))
		}
		if err := l.attach(builder, "Fields", raw.Fields, "", source, groupTitle); err != nil {
			return nil, err
		}
	}
	if len(raw.Layouts) > 0 {
		if entry.Container != registry.ContainerLayouts {
			return nil, fail("layouts", fmt.Errorf("%s does not accept layouts", entry.Type))
		}
		if err := l.attach(builder, "Layouts", raw.Layouts, fields.TypeLayout, source, groupTitle); err != nil {
			return nil, err
		}
	}

	if err := builder.Err(); err != nil {
		return nil, fail("", err)
	}
	return builder, nil
}

// attach builds the children and hands them to the parent's variadic
// container setter.
func (l *Loader) attach(parent fields.Builder, setter string, children []fieldFile, defaultType, source, groupTitle string) error {
	method := reflect.ValueOf(parent).MethodByName(setter)
	if !method.IsValid() || !method.Type().IsVariadic() {
		return &LoadError{Path: source, Group: groupTitle, Field: parent.Label(), Err: fmt.Errorf("%s has no %s setter", parent.Type(), setter)}
	}
	elem := method.Type().In(0).Elem()

	args := make([]reflect.Value, 0, len(children))
	for _, raw := range children {
		child, err := l.buildField(raw, defaultType, source, groupTitle)
		if err != nil {
			return err
		}
		value := reflect.ValueOf(child)
		if !value.Type().AssignableTo(elem) {
			return &LoadError{
				Path:  source,
				Group: groupTitle,
				Field: parent.Label(),
				Err:   fmt.Errorf("%s cannot hold a %s", parent.Type(), child.Type()),
			}
		}
		args = append(args, value)
	}
	method.Call(args)
	return nil
}

func optionName(err error) string {
	var optErr *optionError
	if errors.As(err, &optErr) {
		return optErr.option
	}
	return ""
}
