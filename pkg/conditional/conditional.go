// Package conditional builds the conditional-logic rule groups that decide
// whether a field is shown. A field carries a list of groups; the field is
// visible when every rule of at least one group matches.
package conditional

import (
	"errors"

	"github.com/schrittweiter/extended-acf/internal/argument"
)

// Operators understood by the host runtime.
const (
	OperatorEqual       = "=="
	OperatorNotEqual    = "!="
	OperatorPattern     = "==pattern"
	OperatorContains    = "==contains"
	OperatorEmpty       = "==empty"
	OperatorNotEmpty    = "!=empty"
	OperatorGreaterThan = ">"
	OperatorLessThan    = "<"
)

// Operators lists every accepted operator in declaration order.
var Operators = []string{
	OperatorEqual,
	OperatorNotEqual,
	OperatorPattern,
	OperatorContains,
	OperatorEmpty,
	OperatorNotEmpty,
	OperatorGreaterThan,
	OperatorLessThan,
}

// Rule compares the value of a sibling field, referenced by name, against
// Value using Operator.
type Rule struct {
	Field    string `mapstructure:"field" json:"field" yaml:"field"`
	Operator string `mapstructure:"operator" json:"operator" yaml:"operator"`
	Value    any    `mapstructure:"value" json:"value,omitempty" yaml:"value,omitempty"`
}

// Group is an AND-combined set of rules.
type Group struct {
	rules []Rule
	err   error
}

// Where starts a rule group. A nil value is omitted from the rule, which is
// what the emptiness operators expect.
func Where(field, operator string, value any) *Group {
	return (&Group{}).And(field, operator, value)
}

// And appends a rule to the group. An unknown operator is recorded on the
// group and the rule is dropped.
func (g *Group) And(field, operator string, value any) *Group {
	if err := argument.OneOf("conditional logic operator", operator, Operators...); err != nil {
		if g.err == nil {
			g.err = err
		}
		return g
	}
	g.rules = append(g.rules, Rule{Field: field, Operator: operator, Value: value})
	return g
}

// Err returns the first invalid operator passed to Where or And.
func (g *Group) Err() error {
	if g == nil {
		return errors.New("conditional: nil rule group")
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

// Get returns the rules in the shape the host runtime stores them.
func (g *Group) Get() []map[string]any {
	if g == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(g.rules))
	for _, rule := range g.rules {
		out = append(out, rule.Map())
	}
	return out
}

// Map converts a rule into its settings shape.
func (r Rule) Map() map[string]any {
	entry := map[string]any{
		"field":    r.Field,
		"operator": r.Operator,
	}
	if r.Value != nil {
		entry["value"] = r.Value
	}
	return entry
}

// Build validates the groups and returns the settings value stored under
// conditional_logic. The first group error wins.
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
