package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/schrittweiter/extended-acf/pkg/definition"
	"github.com/schrittweiter/extended-acf/pkg/group"
)

// Issue is a problem found by Lint.
type Issue struct {
	Source string
	Group  string
	Err    error
}

func (i Issue) Error() string {
	switch {
	case i.Source != "" && i.Group != "":
		return fmt.Sprintf("%s: %s: %v", i.Source, i.Group, i.Err)
	case i.Group != "":
		return fmt.Sprintf("%s: %v", i.Group, i.Err)
	case i.Source != "":
		return fmt.Sprintf("%s: %v", i.Source, i.Err)
	}
	return i.Err.Error()
}

func (i Issue) Unwrap() error { return i.Err }

// Lint loads and resolves every group and reports all problems instead of
// stopping at the first one. Definition errors stop loading, so they are
// reported as a single issue. The returned error is reserved for context
// cancellation and missing input.
func (o *Orchestrator) Lint(ctx context.Context, req Request) ([]Issue, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Source == nil && len(req.Groups) == 0 {
		return nil, errors.New("orchestrator: source or groups are required")
	}

	var (
		groups []*group.Group
		source = map[*group.Group]string{}
	)
	if req.Source != nil {
		store, err := o.loader.LoadFS(req.Source)
		if err != nil {
			var loadErr *definition.LoadError
			if errors.As(err, &loadErr) {
				return []Issue{{Source: loadErr.Path, Group: loadErr.Group, Err: loadErr.Err}}, nil
			}
			return []Issue{{Err: err}}, nil
		}
		for _, g := range store.Groups() {
			source[g] = store.Source(g.ResolvedKey())
			groups = append(groups, g)
		}
	}
	groups = append(groups, req.Groups...)

	var issues []Issue
	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return issues, err
		}
		doc, err := g.Resolve()
		if err != nil {
			issues = append(issues, Issue{Source: source[g], Group: g.ResolvedKey(), Err: err})
			continue
		}
		fields, _ := doc["fields"].([]map[string]any)
		for _, err := range danglingConditions(fields, "") {
			issues = append(issues, Issue{Source: source[g], Group: g.ResolvedKey(), Err: err})
		}
	}
	o.logger.Debug("lint finished", "groups", len(groups), "issues", len(issues))
	return issues, nil
}

// danglingConditions reports conditional logic rules pointing at keys that
// are not siblings of the field.
func danglingConditions(fields []map[string]any, path string) []error {
	siblings := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if key, ok := field["key"].(string); ok {
			siblings[key] = struct{}{}
		}
	}

	var errs []error
	for _, field := range fields {
		name, _ := field["name"].(string)
		fieldPath := name
		if path != "" {
			fieldPath = path + "." + name
		}
		if groups, ok := field["conditional_logic"].([][]map[string]any); ok {
			for _, rules := range groups {
				for _, rule := range rules {
					ref, _ := rule["field"].(string)
					if _, ok := siblings[ref]; !ok {
						errs = append(errs, fmt.Errorf("field %q: conditional logic references unknown field %q", fieldPath, ref))
					}
				}
			}
		}
		for _, childKey := range []string{"sub_fields", "layouts"} {
			if children, ok := field[childKey].([]map[string]any); ok {
				errs = append(errs, danglingConditions(children, fieldPath)...)
			}
		}
	}
	return errs
}
