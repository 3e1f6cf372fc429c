package template

import (
	"io"
)

// Renderer executes a named template with data and writes the result to w.
// Names are looked up without their file extension.
type Renderer interface {
	RenderTemplate(name string, data map[string]any, w io.Writer) error
}

// Filter transforms a value inside a template. param is nil when the filter
// is used without an argument.
type Filter func(input any, param any) (any, error)
