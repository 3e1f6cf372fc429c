package definition

import (
	"fmt"
	"strings"
)

// LoadError locates a failure inside a definition file.
type LoadError struct {
	Path   string
	Group  string
	Field  string
	Option string
	Err    error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "definition: load error"
	}
	var b strings.Builder
	b.WriteString("definition: ")
	b.WriteString(e.Path)
	if e.Group != "" {
		fmt.Fprintf(&b, ": group %q", e.Group)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	if e.Option != "" {
		fmt.Fprintf(&b, ": option %q", e.Option)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
