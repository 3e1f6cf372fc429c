// Package rules evaluates conditional logic with the operator semantics of
// the host runtime.
package rules

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/spf13/cast"

	"github.com/schrittweiter/extended-acf/pkg/conditional"
	"github.com/schrittweiter/extended-acf/pkg/visibility"
)

// Evaluator implements visibility.Evaluator. Compiled ==pattern expressions
// are cached, so share one Evaluator across calls.
type Evaluator struct {
	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
}

func New() *Evaluator {
	return &Evaluator{patterns: make(map[string]*regexp.Regexp)}
}

// Eval reports true when there is no logic or any rule group fully matches.
// The result depends on ctx alone; callers add the field path to errors.
func (e *Evaluator) Eval(_ string, logic [][]conditional.Rule, ctx visibility.Context) (bool, error) {
	if len(logic) == 0 {
		return true, nil
	}
	for _, group := range logic {
		matched, err := e.matchGroup(group, ctx)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func (e *Evaluator) matchGroup(group []conditional.Rule, ctx visibility.Context) (bool, error) {
	if len(group) == 0 {
		return false, nil
	}
	for _, rule := range group {
		ok, err := e.match(rule, ctx)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (e *Evaluator) match(rule conditional.Rule, ctx visibility.Context) (bool, error) {
	value, _ := lookup(ctx, rule.Field)

	switch rule.Operator {
	case conditional.OperatorEqual:
		return equals(value, rule.Value), nil
	case conditional.OperatorNotEqual:
		return !equals(value, rule.Value), nil
	case conditional.OperatorEmpty:
		return !truthy(value), nil
	case conditional.OperatorNotEmpty:
		return truthy(value), nil
	case conditional.OperatorContains:
		needle := cast.ToString(rule.Value)
		for _, item := range items(value) {
			if strings.Contains(cast.ToString(item), needle) {
				return true, nil
			}
		}
		return false, nil
	case conditional.OperatorPattern:
		re, err := e.compile(cast.ToString(rule.Value))
		if err != nil {
			return false, err
		}
		for _, item := range items(value) {
			if re.MatchString(cast.ToString(item)) {
				return true, nil
			}
		}
		return false, nil
	case conditional.OperatorGreaterThan, conditional.OperatorLessThan:
		got, errGot := cast.ToFloat64E(value)
		want, errWant := cast.ToFloat64E(rule.Value)
		if value == nil || errGot != nil || errWant != nil {
			return false, nil
		}
		if rule.Operator == conditional.OperatorGreaterThan {
			return got > want, nil
		}
		return got < want, nil
	default:
		return false, fmt.Errorf("rules: unsupported operator %q", rule.Operator)
	}
}

func (e *Evaluator) compile(pattern string) (*regexp.Regexp, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if re, ok := e.patterns[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rules: invalid pattern %q: %w", pattern, err)
	}
	e.patterns[pattern] = re
	return re, nil
}

// equals matches scalars by their string form; for sequences (checkbox
// values) it tests membership.
func equals(value, want any) bool {
	if b, ok := want.(bool); ok {
		return truthy(value) == b
	}
	target := cast.ToString(want)
	if isSequence(value) {
		for _, item := range items(value) {
			if cast.ToString(item) == target {
				return true
			}
		}
		return false
	}
	if b, ok := value.(bool); ok {
		switch target {
		case "1", "true":
			return b
		case "0", "false", "":
			return !b
		}
		return false
	}
	return cast.ToString(value) == target
}

func isSequence(value any) bool {
	if value == nil {
		return false
	}
	kind := reflect.TypeOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func items(value any) []any {
	if value == nil {
		return nil
	}
	if !isSequence(value) {
		return []any{value}
	}
	rv := reflect.ValueOf(value)
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, rv.Index(i).Interface())
	}
	return out
}

func truthy(value any) bool {
	if value == nil {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	case map[string]any:
		return len(v) > 0
	}
	if isSequence(value) {
		return reflect.ValueOf(value).Len() > 0
	}
	if f, err := cast.ToFloat64E(value); err == nil {
		return f != 0
	}
	return true
}

func lookup(ctx visibility.Context, key string) (any, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	if strings.HasPrefix(strings.ToLower(key), "extras.") {
		return lookupMap(ctx.Extras, key[len("extras."):])
	}
	return lookupMap(ctx.Values, key)
}

// lookupMap prefers an exact key, then walks dotted paths.
func lookupMap(values map[string]any, path string) (any, bool) {
	if len(values) == 0 || path == "" {
		return nil, false
	}
	if v, ok := values[path]; ok {
		return v, true
	}
	var current any = values
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[part]; !ok {
			return nil, false
		}
	}
	return current, true
}
