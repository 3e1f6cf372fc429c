package conditional

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode reads conditional logic from its settings shape (as built by Build or
// as decoded from JSON/YAML) back into rule groups.
func Decode(raw any) ([][]Rule, error) {
	if raw == nil {
		return nil, nil
	}
	var groups [][]Rule
	if err := mapstructure.Decode(raw, &groups); err != nil {
		return nil, fmt.Errorf("conditional: decode rules: %w", err)
	}
	return groups, nil
}

// Parse converts decoded rule groups into validated Groups, as used by
// declarative definitions.
func Parse(raw any) ([]*Group, error) {
	decoded, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	groups := make([]*Group, 0, len(decoded))
	for idx, rules := range decoded {
		if len(rules) == 0 {
			return nil, fmt.Errorf("conditional: group %d has no rules", idx)
		}
		group := &Group{}
		for _, rule := range rules {
			group.And(rule.Field, rule.Operator, rule.Value)
		}
		if err := group.Err(); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}
