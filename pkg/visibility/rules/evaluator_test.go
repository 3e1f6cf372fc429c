package rules

import (
	"strings"
	"testing"

	"github.com/schrittweiter/extended-acf/pkg/conditional"
	"github.com/schrittweiter/extended-acf/pkg/visibility"
)

func TestOperators(t *testing.T) {
	t.Parallel()

	ctx := visibility.Context{
		Values: map[string]any{
			"mode":     "video",
			"features": []any{"autoplay", "loop"},
			"count":    4,
			"title":    "Summer Sale 2026",
			"empty":    "",
			"enabled":  true,
			"settings": map[string]any{"theme": "dark"},
		},
		Extras: map[string]any{"role": "editor"},
	}

	cases := []struct {
		name string
		rule conditional.Rule
		want bool
	}{
		{"equal scalar", conditional.Rule{Field: "mode", Operator: "==", Value: "video"}, true},
		{"equal membership", conditional.Rule{Field: "features", Operator: "==", Value: "loop"}, true},
		{"not equal", conditional.Rule{Field: "mode", Operator: "!=", Value: "image"}, true},
		{"equal numeric string", conditional.Rule{Field: "count", Operator: "==", Value: "4"}, true},
		{"equal bool", conditional.Rule{Field: "enabled", Operator: "==", Value: "1"}, true},
		{"empty", conditional.Rule{Field: "empty", Operator: "==empty"}, true},
		{"missing is empty", conditional.Rule{Field: "nope", Operator: "==empty"}, true},
		{"not empty", conditional.Rule{Field: "features", Operator: "!=empty"}, true},
		{"contains", conditional.Rule{Field: "title", Operator: "==contains", Value: "Sale"}, true},
		{"contains miss", conditional.Rule{Field: "title", Operator: "==contains", Value: "Winter"}, false},
		{"pattern", conditional.Rule{Field: "title", Operator: "==pattern", Value: `\d{4}$`}, true},
		{"greater", conditional.Rule{Field: "count", Operator: ">", Value: 3}, true},
		{"less", conditional.Rule{Field: "count", Operator: "<", Value: "3"}, false},
		{"greater non numeric", conditional.Rule{Field: "mode", Operator: ">", Value: 1}, false},
		{"dotted path", conditional.Rule{Field: "settings.theme", Operator: "==", Value: "dark"}, true},
		{"extras", conditional.Rule{Field: "extras.role", Operator: "==", Value: "editor"}, true},
	}

	eval := New()
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := eval.Eval("target", [][]conditional.Rule{{tc.rule}}, ctx)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Eval = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGroupsAreOrCombined(t *testing.T) {
	t.Parallel()

	ctx := visibility.Context{Values: map[string]any{"mode": "image", "size": 2}}
	logic := [][]conditional.Rule{
		{{Field: "mode", Operator: "==", Value: "video"}},
		{{Field: "mode", Operator: "==", Value: "image"}, {Field: "size", Operator: ">", Value: 1}},
	}

	eval := New()
	if ok, err := eval.Eval("caption", logic, ctx); err != nil || !ok {
		t.Fatalf("expected second group to match, got %v (%v)", ok, err)
	}

	logic[1][1].Value = 5
	if ok, _ := eval.Eval("caption", logic, ctx); ok {
		t.Fatalf("expected AND within a group to fail")
	}
	if ok, _ := eval.Eval("caption", nil, ctx); !ok {
		t.Fatalf("fields without logic are visible")
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	eval := New()
	ctx := visibility.Context{Values: map[string]any{"title": "x"}}
	tests := []struct {
		name string
		rule conditional.Rule
		want string
	}{
		{name: "invalid pattern", rule: conditional.Rule{Field: "title", Operator: "==pattern", Value: "("}, want: `rules: invalid pattern "("`},
		{name: "unsupported operator", rule: conditional.Rule{Field: "title", Operator: "~="}, want: `rules: unsupported operator "~="`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := eval.Eval("f", [][]conditional.Rule{{tt.rule}}, ctx)
			if err == nil || !strings.HasPrefix(err.Error(), tt.want) {
				t.Fatalf("expected %q, got %v", tt.want, err)
			}
		})
	}
}
