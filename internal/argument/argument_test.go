package argument

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOneOfAcceptsListedValue(t *testing.T) {
	t.Parallel()

	if err := OneOf("appearance", "select", "checkbox", "select"); err != nil {
		t.Fatalf("OneOf returned error: %v", err)
	}
}

func TestOneOfRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	err := OneOf("return format", "slug", "array", "name", "code")
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidArgumentError, got %T", err)
	}
	want := &InvalidArgumentError{Setter: "return format", Value: "slug", Allowed: []string{"array", "name", "code"}}
	if diff := cmp.Diff(want, invalid); diff != "" {
		t.Fatalf("error mismatch (-want +got):\n%s", diff)
	}
	if got := err.Error(); got != "invalid argument return format [slug]: expected one of array, name, code" {
		t.Fatalf("unexpected message %q", got)
	}
}
