package conditional

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/schrittweiter/extended-acf/internal/argument"
)

func TestWhereAndBuildsRuleGroup(t *testing.T) {
	t.Parallel()

	group := Where("type", OperatorEqual, "video").And("autoplay", OperatorNotEmpty, nil)
	if err := group.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []map[string]any{
		{"field": "type", "operator": "==", "value": "video"},
		{"field": "autoplay", "operator": "!=empty"},
	}
	if diff := cmp.Diff(want, group.Get()); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidOperatorIsRecorded(t *testing.T) {
	t.Parallel()

	group := Where("type", "===", "video").And("autoplay", OperatorEqual, "1")

	var invalid *argument.InvalidArgumentError
	if !errors.As(group.Err(), &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %v", group.Err())
	}
	if invalid.Value != "===" {
		t.Fatalf("expected rejected operator to be kept, got %q", invalid.Value)
	}
	if _, err := Build(group); err == nil {
		t.Fatalf("expected Build to surface the group error")
	}
}

func TestBuildAndParseRoundTrip(t *testing.T) {
	t.Parallel()

	built, err := Build(
		Where("mode", OperatorEqual, "video"),
		Where("mode", OperatorEqual, "image").And("size", OperatorGreaterThan, 3),
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	decoded := []any{
		[]any{map[string]any{"field": "mode", "operator": "==", "value": "video"}},
		[]any{
			map[string]any{"field": "mode", "operator": "==", "value": "image"},
			map[string]any{"field": "size", "operator": ">", "value": 3},
		},
	}
	groups, err := Parse(decoded)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rebuilt, err := Build(groups...)
	if err != nil {
		t.Fatalf("Build parsed: %v", err)
	}
	if diff := cmp.Diff(built, rebuilt); diff != "" {
		t.Fatalf("parsed rules mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsEmptyGroup(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]any{[]any{}}); err == nil {
		t.Fatalf("expected error for empty group")
	}
}
