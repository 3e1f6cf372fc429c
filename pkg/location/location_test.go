package location

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/schrittweiter/extended-acf/internal/argument"
)

func TestBuildLocationGroups(t *testing.T) {
	t.Parallel()

	got, err := Build(
		Is("post_type", "page").And("page_template", OperatorNotEqual, "default"),
		Where("options_page", OperatorEqual, "settings"),
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := [][]map[string]any{
		{
			{"param": "post_type", "operator": "==", "value": "page"},
			{"param": "page_template", "operator": "!=", "value": "default"},
		},
		{
			{"param": "options_page", "operator": "==", "value": "settings"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("location mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidLocationOperator(t *testing.T) {
	t.Parallel()

	group := Where("post_type", "contains", "page")
	var invalid *argument.InvalidArgumentError
	if !errors.As(group.Err(), &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %v", group.Err())
	}
	if len(group.Rules()) != 0 {
		t.Fatalf("expected rejected rule to be dropped")
	}
}

func TestParseDefaultsOperator(t *testing.T) {
	t.Parallel()

	groups, err := Parse([]any{
		[]any{map[string]any{"param": "post_type", "value": "post"}},
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	want := []Rule{{Param: "post_type", Operator: "==", Value: "post"}}
	if diff := cmp.Diff(want, groups[0].Rules()); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}
