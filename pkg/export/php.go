package export

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cast"

	"github.com/schrittweiter/extended-acf/pkg/render/template"
	"github.com/schrittweiter/extended-acf/pkg/render/template/pongo"
)

//go:embed templates/*.tpl
var templateFS embed.FS

const phpIndent = "    "

// DefaultPHPHook is the action the generated file registers its groups on.
const DefaultPHPHook = "acf/include_fields"

// PHPOptions configures NewPHPEncoder.
type PHPOptions struct {
	// TemplateDir holds templates that replace the embedded ones by name,
	// for example a custom php.tpl.
	TemplateDir string
	// Hook is exposed to templates as "hook". Empty means DefaultPHPHook.
	Hook string
}

// pongo2 keeps one filter table per process.
var (
	filterOnce sync.Once
	filterErr  error
)

func registerPHPFilter() error {
	filterOnce.Do(func() {
		filterErr = pongo.RegisterFilter("php", func(input any, param any) (any, error) {
			return PHPLiteral(input, cast.ToInt(param)), nil
		})
	})
	return filterErr
}

type phpEncoder struct {
	renderer template.Renderer
}

// NewPHPEncoder returns a PHP encoder rendering "php.tpl" from opts.TemplateDir
// when present and from the embedded templates otherwise.
func NewPHPEncoder(opts PHPOptions) (Encoder, error) {
	if err := registerPHPFilter(); err != nil {
		return nil, fmt.Errorf("export: php filter: %w", err)
	}
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("export: php templates: %w", err)
	}
	hook := strings.TrimSpace(opts.Hook)
	if hook == "" {
		hook = DefaultPHPHook
	}
	engine, err := pongo.New(
		pongo.WithDir(opts.TemplateDir),
		pongo.WithFS(sub),
		pongo.WithGlobals(map[string]any{"hook": hook}),
	)
	if err != nil {
		return nil, fmt.Errorf("export: php engine: %w", err)
	}
	return &phpEncoder{renderer: engine}, nil
}

func (e *phpEncoder) Encode(w io.Writer, groups []map[string]any) error {
	if groups == nil {
		groups = []map[string]any{}
	}
	var buf bytes.Buffer
	if err := e.renderer.RenderTemplate("php", map[string]any{"groups": groups}, &buf); err != nil {
		return fmt.Errorf("export: render php: %w", err)
	}
	_, err := io.WriteString(w, strings.TrimRight(buf.String(), "\n")+"\n")
	return err
}

var (
	defaultPHPOnce sync.Once
	defaultPHP     Encoder
	defaultPHPErr  error
)

func encodePHP(w io.Writer, groups []map[string]any) error {
	defaultPHPOnce.Do(func() {
		defaultPHP, defaultPHPErr = NewPHPEncoder(PHPOptions{})
	})
	if defaultPHPErr != nil {
		return defaultPHPErr
	}
	return defaultPHP.Encode(w, groups)
}

// leading keys are written first in this order; the rest follow sorted.
var phpKeyOrder = map[string]int{"key": 0, "title": 1, "label": 2, "name": 3, "type": 4}

// PHPLiteral formats value as a PHP array literal. depth is the indentation
// level of the line the literal starts on.
func PHPLiteral(value any, depth int) string {
	var b strings.Builder
	writePHP(&b, value, depth)
	return b.String()
}

func writePHP(b *strings.Builder, value any, depth int) {
	switch v := value.(type) {
	case nil:
		b.WriteString("NULL")
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case string:
		b.WriteString(phpString(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		b.WriteString(cast.ToString(v))
	case float32:
		writeFloat(b, float64(v))
	case float64:
		writeFloat(b, v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			oi, iok := phpKeyOrder[keys[i]]
			oj, jok := phpKeyOrder[keys[j]]
			switch {
			case iok && jok:
				return oi < oj
			case iok != jok:
				return iok
			}
			return keys[i] < keys[j]
		})
		writeArray(b, len(keys), depth, func(i int) {
			b.WriteString(phpString(keys[i]))
			b.WriteString(" => ")
			writePHP(b, v[keys[i]], depth+1)
		})
	case []any:
		writeArray(b, len(v), depth, func(i int) { writePHP(b, v[i], depth+1) })
	case []string:
		writeArray(b, len(v), depth, func(i int) { b.WriteString(phpString(v[i])) })
	case []map[string]any:
		writeArray(b, len(v), depth, func(i int) { writePHP(b, v[i], depth+1) })
	case [][]map[string]any:
		writeArray(b, len(v), depth, func(i int) { writePHP(b, v[i], depth+1) })
	default:
		b.WriteString(phpString(cast.ToString(v)))
	}
}

func writeArray(b *strings.Builder, n, depth int, item func(i int)) {
	if n == 0 {
		b.WriteString("array()")
		return
	}
	inner := strings.Repeat(phpIndent, depth+1)
	b.WriteString("array(\n")
	for i := 0; i < n; i++ {
		b.WriteString(inner)
		item(i)
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat(phpIndent, depth))
	b.WriteString(")")
}

func writeFloat(b *strings.Builder, v float64) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		b.WriteString("NULL")
		return
	}
	b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}

func phpString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
