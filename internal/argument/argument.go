// Package argument holds the error shared by every setter that only accepts a
// closed set of values.
package argument

import (
	"fmt"
	"slices"
	"strings"
)

// InvalidArgumentError reports a value rejected by a validated setter. The
// rejected value is kept verbatim so callers can surface it unchanged.
type InvalidArgumentError struct {
	Setter  string
	Value   string
	Allowed []string
}

func (e *InvalidArgumentError) Error() string {
	if e == nil {
		return "invalid argument"
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid argument %s [%s]", e.Setter, e.Value)
	}
	return fmt.Sprintf("invalid argument %s [%s]: expected one of %s", e.Setter, e.Value, strings.Join(e.Allowed, ", "))
}

// OneOf returns nil when value is part of allowed, otherwise an
// *InvalidArgumentError naming the setter.
func OneOf(setter, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return &InvalidArgumentError{
		Setter:  setter,
		Value:   value,
		Allowed: append([]string(nil), allowed...),
	}
}
