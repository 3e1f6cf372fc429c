// Package location builds the location rules that attach field groups (and
// flexible content layouts) to edit screens.
package location

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/schrittweiter/extended-acf/internal/argument"
)

const (
	OperatorEqual    = "=="
	OperatorNotEqual = "!="
)

// Rule matches a screen parameter such as post_type or page_template.
type Rule struct {
	Param    string `mapstructure:"param" json:"param" yaml:"param"`
	Operator string `mapstructure:"operator" json:"operator" yaml:"operator"`
	Value    string `mapstructure:"value" json:"value" yaml:"value"`
}

// Group is an AND-combined set of location rules. A list of groups is
// OR-combined by the host.
type Group struct {
	rules []Rule
	err   error
}

// Where starts a location group.
func Where(param, operator, value string) *Group {
	return (&Group{}).And(param, operator, value)
}

// Is is shorthand for Where(param, "==", value).
func Is(param, value string) *Group {
	return Where(param, OperatorEqual, value)
}

// And appends a rule; unknown operators are recorded and the rule dropped.
func (g *Group) And(param, operator, value string) *Group {
	if err := argument.OneOf("location operator", operator, OperatorEqual, OperatorNotEqual); err != nil {
		if g.err == nil {
			g.err = err
		}
		return g
	}
	g.rules = append(g.rules, Rule{Param: param, Operator: operator, Value: value})
	return g
}

// Err returns the first invalid operator recorded on the group.
func (g *Group) Err() error {
	if g == nil {
		return errors.New("location: nil rule group")
	}
	return g.err
}

// Rules returns a copy of the group's rules.
func (g *Group) Rules() []Rule {
	if g == nil {
		return nil
	}
	return append([]Rule(nil), g.rules...)
}

// Get returns the group in its settings shape.
func (g *Group) Get() []map[string]any {
	if g == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(g.rules))
	for _, rule := range g.rules {
		out = append(out, map[string]any{
			"param":    rule.Param,
			"operator": rule.Operator,
			"value":    rule.Value,
		})
	}
	return out
}

// Build validates the groups and returns their settings shape.
func Build(groups ...*Group) ([][]map[string]any, error) {
	out := make([][]map[string]any, 0, len(groups))
	for _, group := range groups {
		if err := group.Err(); err != nil {
			return nil, err
		}
		out = append(out, group.Get())
	}
	return out, nil
}

// Parse converts decoded rule groups ([][]{param, operator, value}) into
// validated Groups.
func Parse(raw any) ([]*Group, error) {
	if raw == nil {
		return nil, nil
	}
	var decoded [][]Rule
	if err := mapstructure.Decode(raw, &decoded); err != nil {
		return nil, fmt.Errorf("location: decode rules: %w", err)
	}
	groups := make([]*Group, 0, len(decoded))
	for idx, rules := range decoded {
		if len(rules) == 0 {
			return nil, fmt.Errorf("location: group %d has no rules", idx)
		}
		group := &Group{}
		for _, rule := range rules {
			operator := rule.Operator
			if operator == "" {
				operator = OperatorEqual
			}
			group.And(rule.Param, operator, rule.Value)
		}
		if err := group.Err(); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}
