// Package group assembles fields into the local field group document the host
// plugin registers.
package group

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/schrittweiter/extended-acf/internal/argument"
	"github.com/schrittweiter/extended-acf/pkg/fields"
	"github.com/schrittweiter/extended-acf/pkg/location"
)

// Screen positions of a field group.
const (
	PositionNormal     = "normal"
	PositionSide       = "side"
	PositionAfterTitle = "acf_after_title"
)

// Group is a titled set of fields attached to edit screens via location
// rules.
type Group struct {
	title     string
	key       string
	fields    []fields.Builder
	locations [][]map[string]any
	settings  map[string]any
	err       error
}

// New starts a field group. The key defaults to group_<title slug>.
func New(title string) *Group {
	return &Group{
		title:    title,
		settings: make(map[string]any),
	}
}

func (g *Group) Title() string { return g.title }

// Key overrides the generated group key. Keys without the group_ prefix get
// it added.
func (g *Group) Key(key string) *Group {
	key = strings.TrimSpace(key)
	if key != "" && !strings.HasPrefix(key, "group_") {
		key = "group_" + key
	}
	g.key = key
	return g
}

// ResolvedKey returns the explicit key or the one derived from the title.
func (g *Group) ResolvedKey() string {
	if g.key != "" {
		return g.key
	}
	return "group_" + strings.ReplaceAll(slug.Make(g.title), "-", "_")
}

// Fields replaces the group's fields.
func (g *Group) Fields(builders ...fields.Builder) *Group {
	g.fields = append([]fields.Builder(nil), builders...)
	return g
}

// FieldBuilders returns the group's fields in order.
func (g *Group) FieldBuilders() []fields.Builder {
	return append([]fields.Builder(nil), g.fields...)
}

// Location replaces the location rule groups; any one of them matching shows
// the field group.
func (g *Group) Location(groups ...*location.Group) *Group {
	rules, err := location.Build(groups...)
	if err != nil {
		g.fail(err)
		return g
	}
	g.locations = rules
	return g
}

// Position is one of normal, side or acf_after_title.
func (g *Group) Position(position string) *Group {
	if err := argument.OneOf("position", position, PositionNormal, PositionSide, PositionAfterTitle); err != nil {
		g.fail(err)
		return g
	}
	g.settings["position"] = position
	return g
}

// Style is default or seamless.
func (g *Group) Style(style string) *Group {
	g.settings["style"] = style
	return g
}

// LabelPlacement is top or left.
func (g *Group) LabelPlacement(placement string) *Group {
	g.settings["label_placement"] = placement
	return g
}

// InstructionPlacement is label or field.
func (g *Group) InstructionPlacement(placement string) *Group {
	g.settings["instruction_placement"] = placement
	return g
}

// HideOnScreen hides core edit screen elements such as the_content.
func (g *Group) HideOnScreen(items ...string) *Group {
	g.settings["hide_on_screen"] = append([]string{}, items...)
	return g
}

func (g *Group) MenuOrder(order int) *Group {
	g.settings["menu_order"] = order
	return g
}

func (g *Group) Description(text string) *Group {
	g.settings["description"] = text
	return g
}

// Inactive registers the group without showing it.
func (g *Group) Inactive() *Group {
	g.settings["active"] = false
	return g
}

// GraphQL exposes the group under the given GraphQL field name.
func (g *Group) GraphQL(fieldName string) *Group {
	g.settings["show_in_graphql"] = true
	g.settings["graphql_field_name"] = fieldName
	return g
}

// Err returns the first invalid argument recorded on the group.
func (g *Group) Err() error { return g.err }

func (g *Group) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}

// Resolve returns the local field group document with every field resolved
// below the group key.
func (g *Group) Resolve() (map[string]any, error) {
	if g.err != nil {
		return nil, fmt.Errorf("group %q: %w", g.title, g.err)
	}
	if strings.TrimSpace(g.title) == "" {
		return nil, errors.New("group: title is required")
	}
	key := g.ResolvedKey()

	resolved := make([]map[string]any, 0, len(g.fields))
	seen := make(map[string]string, len(g.fields))
	for _, builder := range g.fields {
		entry, err := builder.Resolve(key)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.title, err)
		}
		name, _ := entry["name"].(string)
		if previous, ok := seen[name]; ok {
			return nil, fmt.Errorf("group %q: field name %q used by %q and %q", g.title, name, previous, builder.Label())
		}
		seen[name] = builder.Label()
		resolved = append(resolved, entry)
	}

	locations := g.locations
	if locations == nil {
		locations = [][]map[string]any{}
	}

	out := map[string]any{
		"key":                   key,
		"title":                 g.title,
		"fields":                resolved,
		"location":              locations,
		"menu_order":            0,
		"position":              PositionNormal,
		"style":                 "default",
		"label_placement":       "top",
		"instruction_placement": "label",
		"hide_on_screen":        []string{},
		"active":                true,
		"description":           "",
	}
	for k, v := range g.settings {
		out[k] = v
	}
	return out, nil
}
