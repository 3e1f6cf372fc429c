package fields

import (
	"strconv"
	"strings"

	"github.com/schrittweiter/extended-acf/pkg/conditional"
)

// core links a capability to the field it writes into and to the concrete
// builder it hands back for chaining. Every capability below is a distinct
// named type over the same struct so a builder can embed several of them.
type core[T any] struct {
	field *Field
	self  T
}

func mixin[T any](field *Field, self T) core[T] {
	return core[T]{field: field, self: self}
}

func (c core[T]) set(key string, value any) T {
	c.field.set(key, value)
	return c.self
}

type graphQL[T any] core[T]

// GraphQL exposes the field in the GraphQL schema.
func (m graphQL[T]) GraphQL() T { return core[T](m).set("show_in_graphql", true) }

type required[T any] core[T]

// Required marks the field as required.
func (m required[T]) Required() T { return core[T](m).set("required", true) }

type nullable[T any] core[T]

// Nullable allows an empty value.
func (m nullable[T]) Nullable() T { return core[T](m).set("allow_null", true) }

type conditionalLogic[T any] core[T]

// ConditionalLogic shows the field when any of the rule groups matches. Rule
// groups with an invalid operator are recorded on the builder and nothing is
// written.
func (m conditionalLogic[T]) ConditionalLogic(groups ...*conditional.Group) T {
	rules, err := conditional.Build(groups...)
	if err != nil {
		m.field.fail(err)
		return m.self
	}
	return core[T](m).set(keyConditionalLogic, rules)
}

type defaultValue[T any] core[T]

// DefaultValue sets the value used for new entries.
func (m defaultValue[T]) DefaultValue(value any) T {
	return core[T](m).set("default_value", value)
}

type placeholder[T any] core[T]

// Placeholder sets the input placeholder text.
func (m placeholder[T]) Placeholder(text string) T {
	return core[T](m).set("placeholder", text)
}

type minMax[T any] core[T]

func (m minMax[T]) Min(value int) T { return core[T](m).set("min", value) }

func (m minMax[T]) Max(value int) T { return core[T](m).set("max", value) }

type multiple[T any] core[T]

// Multiple allows selecting more than one value.
func (m multiple[T]) Multiple() T { return core[T](m).set("multiple", true) }

type returnFormat[T any] core[T]

// ReturnFormat sets the shape of the value handed to templates. The value is
// not checked; the host validates it.
func (m returnFormat[T]) ReturnFormat(format string) T {
	return core[T](m).set("return_format", format)
}

// WrapperAttributes are the HTML attributes of the element wrapping a field.
type WrapperAttributes struct {
	Width string `mapstructure:"width" json:"width" yaml:"width"`
	Class string `mapstructure:"class" json:"class" yaml:"class"`
	ID    string `mapstructure:"id" json:"id" yaml:"id"`
}

func (w WrapperAttributes) settings() map[string]any {
	return map[string]any{
		"width": w.Width,
		"class": w.Class,
		"id":    w.ID,
	}
}

type wrapper[T any] core[T]

// Wrapper replaces the wrapper attributes.
func (m wrapper[T]) Wrapper(attrs WrapperAttributes) T {
	return core[T](m).set("wrapper", attrs.settings())
}

// Column sets the wrapper width in percent, keeping class and id.
func (m wrapper[T]) Column(width int) T {
	attrs := WrapperAttributes{}
	if current, ok := m.field.settings["wrapper"].(map[string]any); ok {
		attrs.Class, _ = current["class"].(string)
		attrs.ID, _ = current["id"].(string)
	}
	attrs.Width = strconv.Itoa(width)
	return core[T](m).set("wrapper", attrs.settings())
}

type instructions[T any] core[T]

// Instructions sets the help text shown to editors.
func (m instructions[T]) Instructions(text string) T {
	return core[T](m).set("instructions", text)
}

type dateTimeFormat[T any] core[T]

func (m dateTimeFormat[T]) DisplayFormat(format string) T {
	return core[T](m).set("display_format", format)
}

func (m dateTimeFormat[T]) ReturnFormat(format string) T {
	return core[T](m).set("return_format", format)
}

type writable[T any] core[T]

// ReadOnly prevents editors from changing the value.
func (m writable[T]) ReadOnly() T { return core[T](m).set("readonly", true) }

type disabled[T any] core[T]

func (m disabled[T]) Disabled() T { return core[T](m).set("disabled", true) }

type weekDay[T any] core[T]

// WeekStartsOn sets the first day of the week, 0 being Sunday.
func (m weekDay[T]) WeekStartsOn(day int) T { return core[T](m).set("first_day", day) }

func (m weekDay[T]) WeekStartsOnMonday() T { return m.WeekStartsOn(1) }

func (m weekDay[T]) WeekStartsOnSunday() T { return m.WeekStartsOn(0) }

type choices[T any] core[T]

// Choices sets the selectable options, keyed by stored value.
func (m choices[T]) Choices(options map[string]string) T {
	copied := make(map[string]any, len(options))
	for value, label := range options {
		copied[value] = label
	}
	return core[T](m).set("choices", copied)
}

type direction[T any] core[T]

// Direction lays the options out vertically or horizontally.
func (m direction[T]) Direction(layout string) T { return core[T](m).set("layout", layout) }

type layout[T any] core[T]

// Layout renders sub fields as block, row or table.
func (m layout[T]) Layout(value string) T { return core[T](m).set("layout", value) }

type mimeTypes[T any] core[T]

// MimeTypes restricts uploads to the given extensions or types.
func (m mimeTypes[T]) MimeTypes(types ...string) T {
	return core[T](m).set("mime_types", strings.Join(types, ","))
}

type library[T any] core[T]

// Library limits the media library to "all" or "uploadedTo".
func (m library[T]) Library(scope string) T { return core[T](m).set("library", scope) }

type previewSize[T any] core[T]

func (m previewSize[T]) PreviewSize(size string) T {
	return core[T](m).set("preview_size", size)
}

type fileSize[T any] core[T]

// MinSize sets the smallest accepted upload, in MB or with a unit ("500 KB").
func (m fileSize[T]) MinSize(size string) T { return core[T](m).set("min_size", size) }

func (m fileSize[T]) MaxSize(size string) T { return core[T](m).set("max_size", size) }

type dimensions[T any] core[T]

func (m dimensions[T]) MinWidth(px int) T { return core[T](m).set("min_width", px) }

func (m dimensions[T]) MaxWidth(px int) T { return core[T](m).set("max_width", px) }

func (m dimensions[T]) MinHeight(px int) T { return core[T](m).set("min_height", px) }

func (m dimensions[T]) MaxHeight(px int) T { return core[T](m).set("max_height", px) }
