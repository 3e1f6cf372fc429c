package fields

import "github.com/schrittweiter/extended-acf/internal/argument"

// Accepted Countries appearances.
const (
	AppearanceCheckbox    = "checkbox"
	AppearanceMultiSelect = "multi_select"
	AppearanceSelect      = "select"
	AppearanceRadio       = "radio"
)

// Accepted Countries return formats.
const (
	CountryFormatArray = "array"
	CountryFormatName  = "name"
	CountryFormatCode  = "code"
)

// Countries selects one or more countries.
type Countries struct {
	*Field
	graphQL[*Countries]
	required[*Countries]
	conditionalLogic[*Countries]
	wrapper[*Countries]
	instructions[*Countries]
	minMax[*Countries]
	nullable[*Countries]
	multiple[*Countries]
}

func NewCountries(label string, name ...string) *Countries {
	c := &Countries{Field: newField(TypeCountries, label, name)}
	m := mixin(c.Field, c)
	c.graphQL = graphQL[*Countries](m)
	c.required = required[*Countries](m)
	c.conditionalLogic = conditionalLogic[*Countries](m)
	c.wrapper = wrapper[*Countries](m)
	c.instructions = instructions[*Countries](m)
	c.minMax = minMax[*Countries](m)
	c.nullable = nullable[*Countries](m)
	c.multiple = multiple[*Countries](m)
	return c
}

// Appearance sets the input: checkbox, multi_select, select or radio. Any
// other value is recorded as an *InvalidArgumentError and nothing is written.
func (c *Countries) Appearance(fieldType string) *Countries {
	if err := argument.OneOf("field type", fieldType,
		AppearanceCheckbox, AppearanceMultiSelect, AppearanceSelect, AppearanceRadio); err != nil {
		c.fail(err)
		return c
	}
	c.set("field_type", fieldType)
	return c
}

// ReturnFormat is one of array, name or code; other values are rejected like
// in Appearance.
func (c *Countries) ReturnFormat(format string) *Countries {
	if err := argument.OneOf("return format", format,
		CountryFormatArray, CountryFormatName, CountryFormatCode); err != nil {
		c.fail(err)
		return c
	}
	c.set("return_format", format)
	return c
}

// Countries restricts the selectable country codes. The host reads them
// from button_value.
func (c *Countries) Countries(codes ...string) *Countries {
	c.set("button_value", append([]string{}, codes...))
	return c
}

// DisplayFormat sets the label templates used while editing, built from
// {flag}, {localized}, {native} and {code}.
func (c *Countries) DisplayFormat(formats ...string) *Countries {
	c.set("display_format", append([]string{}, formats...))
	return c
}

// Flags displays country flags.
func (c *Countries) Flags() *Countries {
	c.set("flags", true)
	return c
}

// Continents groups countries by continent.
func (c *Countries) Continents() *Countries {
	c.set("continents", true)
	return c
}

// StylisedUI enables the select2 UI, optionally loading choices over ajax.
func (c *Countries) StylisedUI(ajax bool) *Countries {
	c.set("ui", true)
	c.set("ajax", ajax)
	return c
}
