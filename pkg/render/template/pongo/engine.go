// Package pongo implements template.Renderer on pongo2.
package pongo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	json "github.com/goccy/go-json"

	"github.com/schrittweiter/extended-acf/pkg/render/template"
)

// Extension is appended to template names.
const Extension = ".tpl"

// Option configures New.
type Option func(*options)

type options struct {
	dir     string
	files   fs.FS
	globals map[string]any
}

// WithDir searches dir before any WithFS source, so a directory can replace
// individual templates by name.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = strings.TrimSpace(dir) }
}

// WithFS adds an fs.FS source, typically an embed.FS.
func WithFS(files fs.FS) Option {
	return func(o *options) { o.files = files }
}

// WithGlobals makes values visible to every template. Later calls add to
// earlier ones.
func WithGlobals(values map[string]any) Option {
	return func(o *options) {
		if o.globals == nil {
			o.globals = make(map[string]any, len(values))
		}
		for key, value := range values {
			o.globals[key] = value
		}
	}
}

// Engine renders templates from its sources, caching parsed templates.
type Engine struct {
	set *pongo2.TemplateSet

	mu     sync.Mutex
	parsed map[string]*pongo2.Template
}

var _ template.Renderer = (*Engine)(nil)

func New(opts ...Option) (*Engine, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var loaders []pongo2.TemplateLoader
	if o.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(o.dir)
		if err != nil {
			return nil, fmt.Errorf("pongo: template dir %s: %w", o.dir, err)
		}
		loaders = append(loaders, local)
	}
	if o.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(o.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("pongo: no template source")
	}

	set := pongo2.NewSet("acf", loaders...)
	if len(o.globals) > 0 {
		globals, err := plain(o.globals)
		if err != nil {
			return nil, fmt.Errorf("pongo: globals: %w", err)
		}
		if set.Globals == nil {
			set.Globals = pongo2.Context{}
		}
		set.Globals.Update(globals)
	}
	return &Engine{set: set, parsed: make(map[string]*pongo2.Template)}, nil
}

// RenderTemplate executes name with data. Data values are reduced to plain
// maps, slices and scalars first, so filters see the same shapes whatever
// Go types the caller used.
func (e *Engine) RenderTemplate(name string, data map[string]any, w io.Writer) error {
	tmpl, err := e.lookup(name)
	if err != nil {
		return err
	}
	ctx, err := plain(data)
	if err != nil {
		return fmt.Errorf("pongo: data for %s: %w", name, err)
	}
	if err := tmpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("pongo: render %s: %w", name, err)
	}
	return nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.parsed[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(strings.TrimSuffix(name, Extension) + Extension)
	if err != nil {
		return nil, fmt.Errorf("pongo: load %s: %w", name, err)
	}
	e.parsed[name] = tmpl
	return tmpl, nil
}

// RegisterFilter makes fn available to every template in the process; pongo2
// keeps a single filter table. Registering a name twice fails.
func RegisterFilter(name string, fn template.Filter) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function are required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already registered", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil && !param.IsNil() {
			arg = param.Interface()
		}
		out, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(out), nil
	})
}

func plain(data map[string]any) (pongo2.Context, error) {
	if len(data) == 0 {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var ctx pongo2.Context
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}
