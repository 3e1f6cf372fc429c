// Package scaffold builds a starter definition document by asking questions
// through a prompt.Driver.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schrittweiter/extended-acf/internal/prompt"
	"github.com/schrittweiter/extended-acf/pkg/fields"
	"github.com/schrittweiter/extended-acf/pkg/registry"
)

// maxDepth bounds sub field nesting offered by the flow.
const maxDepth = 3

// Document mirrors the definition file layout.
type Document struct {
	Groups []Group `yaml:"groups"`
}

type Group struct {
	Title    string           `yaml:"title"`
	Location [][]LocationRule `yaml:"location,omitempty"`
	Fields   []Field          `yaml:"fields"`
}

type LocationRule struct {
	Param string `yaml:"param"`
	Value string `yaml:"value"`
}

type Field struct {
	Type    string         `yaml:"type,omitempty"`
	Label   string         `yaml:"label"`
	Options map[string]any `yaml:"options,omitempty"`
	Fields  []Field        `yaml:"fields,omitempty"`
	Layouts []Field        `yaml:"layouts,omitempty"`
}

// Scaffolder runs the question flow.
type Scaffolder struct {
	driver   prompt.Driver
	registry *registry.Registry
	types    []string
}

// New returns a Scaffolder offering every registered type except layout,
// which is only offered inside flexible content.
func New(driver prompt.Driver, reg *registry.Registry) *Scaffolder {
	if reg == nil {
		reg = registry.New()
	}
	var types []string
	for _, name := range reg.Names() {
		if name != fields.TypeLayout {
			types = append(types, name)
		}
	}
	return &Scaffolder{driver: driver, registry: reg, types: types}
}

// Types lists the field types offered, in prompt order.
func (s *Scaffolder) Types() []string {
	return append([]string(nil), s.types...)
}

// Run asks for one group and its fields.
func (s *Scaffolder) Run(ctx context.Context) (Document, error) {
	if s.driver == nil {
		return Document{}, errors.New("scaffold: prompt driver is required")
	}

	title, err := s.driver.Input(ctx, prompt.InputConfig{
		Message:   "Group title",
		Validator: required("title"),
	})
	if err != nil {
		return Document{}, err
	}
	postType, err := s.driver.Input(ctx, prompt.InputConfig{
		Message: "Show on post type",
		Default: "post",
		Help:    "Leave empty to skip the location rule.",
	})
	if err != nil {
		return Document{}, err
	}

	g := Group{Title: strings.TrimSpace(title)}
	if postType = strings.TrimSpace(postType); postType != "" {
		g.Location = [][]LocationRule{{{Param: "post_type", Value: postType}}}
	}
	g.Fields, err = s.fields(ctx, "", 0)
	if err != nil {
		return Document{}, err
	}
	return Document{Groups: []Group{g}}, nil
}

func (s *Scaffolder) fields(ctx context.Context, parent string, depth int) ([]Field, error) {
	var out []Field
	for {
		message := "Add a field?"
		if parent != "" {
			message = fmt.Sprintf("Add a field to %s?", parent)
		}
		more, err := s.driver.Confirm(ctx, prompt.ConfirmConfig{Message: message, Default: len(out) == 0})
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}
		field, err := s.field(ctx, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, field)
	}
}

func (s *Scaffolder) field(ctx context.Context, depth int) (Field, error) {
	idx, err := s.driver.Select(ctx, prompt.SelectConfig{
		Message:  "Field type",
		Options:  s.types,
		PageSize: 12,
	})
	if err != nil {
		return Field{}, err
	}
	if idx < 0 || idx >= len(s.types) {
		return Field{}, fmt.Errorf("scaffold: no field type at %d", idx)
	}
	entry, _ := s.registry.Lookup(s.types[idx])

	label, err := s.driver.Input(ctx, prompt.InputConfig{Message: "Label", Validator: required("label")})
	if err != nil {
		return Field{}, err
	}
	field := Field{Type: entry.Type, Label: strings.TrimSpace(label)}

	if hasSetter(entry, "Required") {
		yes, err := s.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Required?"})
		if err != nil {
			return Field{}, err
		}
		if yes {
			field.Options = map[string]any{"required": true}
		}
	}

	if depth+1 >= maxDepth {
		return field, nil
	}
	switch entry.Container {
	case registry.ContainerSubFields:
		field.Fields, err = s.fields(ctx, field.Label, depth+1)
	case registry.ContainerLayouts:
		field.Layouts, err = s.layouts(ctx, field.Label, depth+1)
	}
	if err != nil {
		return Field{}, err
	}
	return field, nil
}

func (s *Scaffolder) layouts(ctx context.Context, parent string, depth int) ([]Field, error) {
	var out []Field
	for {
		more, err := s.driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: fmt.Sprintf("Add a layout to %s?", parent),
			Default: len(out) == 0,
		})
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}
		label, err := s.driver.Input(ctx, prompt.InputConfig{Message: "Layout label", Validator: required("label")})
		if err != nil {
			return nil, err
		}
		layout := Field{Label: strings.TrimSpace(label)}
		if layout.Fields, err = s.fields(ctx, layout.Label, depth); err != nil {
			return nil, err
		}
		out = append(out, layout)
	}
}

// Write encodes doc as YAML.
func Write(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("scaffold: encode: %w", err)
	}
	return enc.Close()
}

func hasSetter(entry registry.Entry, name string) bool {
	return reflect.ValueOf(entry.New("probe", "")).MethodByName(name).IsValid()
}

func required(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
