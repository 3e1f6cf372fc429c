// Package visibility previews conditional logic: given sample values it
// reports which fields of a resolved field group an editor would see.
package visibility

import (
	"fmt"

	"github.com/schrittweiter/extended-acf/pkg/conditional"
)

// Evaluator decides whether a field is visible under its conditional logic.
// Rule groups are OR-combined, rules inside a group AND-combined.
type Evaluator interface {
	Eval(fieldPath string, logic [][]conditional.Rule, ctx Context) (bool, error)
}

// Context provides the sample values, keyed by field name. Extras carries
// values addressed with the extras. prefix.
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(fieldPath string, logic [][]conditional.Rule, ctx Context) (bool, error)

func (fn EvaluatorFunc) Eval(fieldPath string, logic [][]conditional.Rule, ctx Context) (bool, error) {
	return fn(fieldPath, logic, ctx)
}

// Visible returns the dotted names of the visible fields of a resolved group
// (group.Group.Resolve output). Hidden fields hide their sub fields; sub
// fields are evaluated against the nested map stored under their parent.
func Visible(doc map[string]any, ctx Context, eval Evaluator) ([]string, error) {
	if eval == nil {
		return nil, fmt.Errorf("visibility: evaluator is required")
	}
	return visible(fieldList(doc["fields"]), ctx, eval, "")
}

func visible(entries []map[string]any, ctx Context, eval Evaluator, prefix string) ([]string, error) {
	names := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, _ := entry["key"].(string)
		name, _ := entry["name"].(string)
		names[key] = name
	}

	var out []string
	for _, entry := range entries {
		name, _ := entry["name"].(string)
		path := prefix + name

		logic, err := decodeLogic(entry["conditional_logic"], names)
		if err != nil {
			return nil, fmt.Errorf("visibility: field %s: %w", path, err)
		}
		ok, err := eval.Eval(path, logic, ctx)
		if err != nil {
			return nil, fmt.Errorf("visibility: field %s: %w", path, err)
		}
		if !ok {
			continue
		}
		out = append(out, path)

		children := fieldList(entry["sub_fields"])
		nested, isMap := ctx.Values[name].(map[string]any)
		if len(children) == 0 || !isMap {
			continue
		}
		sub, err := visible(children, Context{Values: nested, Extras: ctx.Extras}, eval, path+".")
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

// decodeLogic reads conditional logic and swaps sibling keys for names. The
// host stores "no logic" as 0 or false.
func decodeLogic(raw any, names map[string]string) ([][]conditional.Rule, error) {
	switch raw.(type) {
	case nil, bool, int, int64, float64, string:
		return nil, nil
	}
	logic, err := conditional.Decode(raw)
	if err != nil {
		return nil, err
	}
	for _, group := range logic {
		for idx := range group {
			if name, ok := names[group[idx].Field]; ok {
				group[idx].Field = name
			}
		}
	}
	return logic, nil
}

func fieldList(raw any) []map[string]any {
	switch typed := raw.(type) {
	case []map[string]any:
		return typed
	case []any:
		out := make([]map[string]any, 0, len(typed))
		for _, item := range typed {
			if entry, ok := item.(map[string]any); ok {
				out = append(out, entry)
			}
		}
		return out
	default:
		return nil
	}
}
