package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/afero"

	"github.com/schrittweiter/extended-acf/pkg/definition"
	"github.com/schrittweiter/extended-acf/pkg/export"
	"github.com/schrittweiter/extended-acf/pkg/group"
	"github.com/schrittweiter/extended-acf/pkg/logger"
	"github.com/schrittweiter/extended-acf/pkg/openapi"
	"github.com/schrittweiter/extended-acf/pkg/registry"
	"github.com/schrittweiter/extended-acf/pkg/visibility"
	"github.com/schrittweiter/extended-acf/pkg/visibility/rules"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry sets the field type registry used by the default loader.
func WithRegistry(reg *registry.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = reg
	}
}

// WithLoader injects a preconfigured definition loader. It takes precedence
// over WithRegistry.
func WithLoader(loader *definition.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

func WithLogger(log logger.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = log
	}
}

// WithEncoder registers or replaces the encoder for format.
func WithEncoder(format export.Format, encoder export.Encoder) Option {
	return func(o *Orchestrator) {
		if encoder == nil {
			return
		}
		if o.encoders == nil {
			o.encoders = make(map[export.Format]export.Encoder)
		}
		o.encoders[format] = encoder
	}
}

// WithDefaultFormat sets the format used when a request names none.
func WithDefaultFormat(format export.Format) Option {
	return func(o *Orchestrator) {
		o.defaultFormat = format
	}
}

// WithSanitize toggles markup sanitising of resolved groups. It is on by
// default.
func WithSanitize(enabled bool) Option {
	return func(o *Orchestrator) {
		o.sanitize = enabled
	}
}

// WithSanitizer replaces export.Sanitize.
func WithSanitizer(fn func([]map[string]any) []map[string]any) Option {
	return func(o *Orchestrator) {
		o.sanitizer = fn
	}
}

// WithTransformer registers a Transformer that runs on resolved groups before
// sanitising and encoding.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithEvaluator replaces the conditional logic evaluator used by Preview.
func WithEvaluator(eval visibility.Evaluator) Option {
	return func(o *Orchestrator) {
		o.evaluator = eval
	}
}

// WithOutputFS sets the filesystem ExportDir writes to.
func WithOutputFS(fsys afero.Fs) Option {
	return func(o *Orchestrator) {
		o.output = fsys
	}
}

// Orchestrator coordinates loading, resolving and encoding field groups.
type Orchestrator struct {
	registry      *registry.Registry
	loader        *definition.Loader
	logger        logger.Logger
	encoders      map[export.Format]export.Encoder
	defaultFormat export.Format
	sanitize      bool
	sanitizer     func([]map[string]any) []map[string]any
	transformer   Transformer
	evaluator     visibility.Evaluator
	output        afero.Fs
}

// New constructs an Orchestrator. Missing dependencies get the built-in
// implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultFormat: export.FormatJSON,
		sanitize:      true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = logger.Nop()
	}
	if o.registry == nil {
		o.registry = registry.New()
	}
	if o.loader == nil {
		o.loader = definition.NewLoader(
			definition.WithRegistry(o.registry),
			definition.WithLogger(o.logger),
		)
	}
	if o.sanitizer == nil {
		o.sanitizer = export.Sanitize
	}
	if o.evaluator == nil {
		o.evaluator = rules.New()
	}
	if o.output == nil {
		o.output = afero.NewOsFs()
	}
	if o.defaultFormat == "" {
		o.defaultFormat = export.FormatJSON
	}
}

// Request selects the groups a call works on.
type Request struct {
	// Source holds definition documents. Optional when Groups is set.
	Source fs.FS

	// Groups are built in code and exported after any loaded groups.
	Groups []*group.Group

	// Keys restricts the call to the named group keys, with or without the
	// group_ prefix. Empty selects every group.
	Keys []string

	// Format names the encoder. Empty uses the default format.
	Format string
}

// Load returns the requested groups without resolving them.
func (o *Orchestrator) Load(ctx context.Context, req Request) ([]*group.Group, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Source == nil && len(req.Groups) == 0 {
		return nil, errors.New("orchestrator: source or groups are required")
	}

	var groups []*group.Group
	if req.Source != nil {
		store, err := o.loader.LoadFS(req.Source)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: load definitions: %w", err)
		}
		groups = store.Groups()
	}
	groups = append(groups, req.Groups...)

	selected, err := selectGroups(groups, req.Keys)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("groups loaded", "total", len(groups), "selected", len(selected))
	return selected, nil
}

// Resolve loads the groups and returns their host-ready documents after the
// transformer and sanitiser ran.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) ([]map[string]any, error) {
	groups, err := o.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	resolved := make([]map[string]any, 0, len(groups))
	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := g.Resolve()
		if err != nil {
			return nil, fmt.Errorf("orchestrator: resolve group %q: %w", g.ResolvedKey(), err)
		}
		resolved = append(resolved, doc)
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, resolved); err != nil {
			return nil, fmt.Errorf("orchestrator: transform groups: %w", err)
		}
	}
	if o.sanitize {
		resolved = o.sanitizer(resolved)
	}
	return resolved, nil
}

// Export resolves the requested groups and writes them to w in the requested
// format.
func (o *Orchestrator) Export(ctx context.Context, req Request, w io.Writer) error {
	if w == nil {
		return errors.New("orchestrator: writer is required")
	}
	encoder, _, err := o.encoderFor(req.Format)
	if err != nil {
		return err
	}
	resolved, err := o.Resolve(ctx, req)
	if err != nil {
		return err
	}
	if err := encoder.Encode(w, resolved); err != nil {
		return fmt.Errorf("orchestrator: encode: %w", err)
	}
	o.logger.Info("groups exported", "count", len(resolved), "format", o.formatOf(req.Format))
	return nil
}

// ExportDir writes one file per group into dir, named after the group key,
// and returns the written paths.
func (o *Orchestrator) ExportDir(ctx context.Context, req Request, dir string) ([]string, error) {
	encoder, format, err := o.encoderFor(req.Format)
	if err != nil {
		return nil, err
	}
	resolved, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := o.output.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("orchestrator: create %s: %w", dir, err)
	}

	written := make([]string, 0, len(resolved))
	for _, doc := range resolved {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		key, _ := doc["key"].(string)
		target := path.Join(dir, key+export.Extension(format))
		if err := o.writeFile(target, encoder, doc); err != nil {
			return written, err
		}
		written = append(written, target)
		o.logger.Debug("group written", "key", key, "path", target)
	}
	return written, nil
}

func (o *Orchestrator) writeFile(target string, encoder export.Encoder, doc map[string]any) (err error) {
	file, err := o.output.Create(target)
	if err != nil {
		return fmt.Errorf("orchestrator: create %s: %w", target, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("orchestrator: close %s: %w", target, cerr)
		}
	}()
	if err := encoder.Encode(file, []map[string]any{doc}); err != nil {
		return fmt.Errorf("orchestrator: encode %s: %w", target, err)
	}
	return nil
}

// Schema describes the requested groups as a validated OpenAPI document.
func (o *Orchestrator) Schema(ctx context.Context, req Request, opts openapi.Options) (*openapi3.T, error) {
	resolved, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	doc, err := openapi.Build(ctx, resolved, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: schema: %w", err)
	}
	return doc, nil
}

// Preview returns the names of the fields of group key that are visible for
// the sample values. Nested names are dot separated.
func (o *Orchestrator) Preview(ctx context.Context, req Request, key string, values map[string]any) ([]string, error) {
	req.Keys = []string{key}
	resolved, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	visible, err := visibility.Visible(resolved[0], visibility.Context{Values: values}, o.evaluator)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: preview %q: %w", key, err)
	}
	return visible, nil
}

func (o *Orchestrator) encoderFor(name string) (export.Encoder, export.Format, error) {
	format := o.formatOf(name)
	if encoder, ok := o.encoders[format]; ok {
		return encoder, format, nil
	}
	encoder, err := export.New(string(format))
	if err != nil {
		return nil, "", fmt.Errorf("orchestrator: %w", err)
	}
	return encoder, format, nil
}

func (o *Orchestrator) formatOf(name string) export.Format {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return o.defaultFormat
	case "yml":
		return export.FormatYAML
	}
	return export.Format(name)
}

func selectGroups(groups []*group.Group, keys []string) ([]*group.Group, error) {
	if len(keys) == 0 {
		return groups, nil
	}
	byKey := make(map[string]*group.Group, len(groups))
	for _, g := range groups {
		byKey[g.ResolvedKey()] = g
	}
	selected := make([]*group.Group, 0, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, "group_") {
			key = "group_" + key
		}
		g, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("orchestrator: group %q not found", key)
		}
		selected = append(selected, g)
	}
	return selected, nil
}
