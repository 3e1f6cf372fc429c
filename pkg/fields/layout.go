package fields

import "github.com/schrittweiter/extended-acf/pkg/location"

// RenderFiles are the theme paths used to render a layout preview.
type RenderFiles struct {
	Template string `mapstructure:"template" json:"template" yaml:"template"`
	Style    string `mapstructure:"style" json:"style" yaml:"style"`
	Script   string `mapstructure:"script" json:"script" yaml:"script"`
}

// Layout is one entry of a FlexibleContent. It resolves with a layout_
// key and without a type.
type Layout struct {
	*Field
	graphQL[*Layout]
	minMax[*Layout]
}

func NewLayout(label string, name ...string) *Layout {
	l := &Layout{Field: newField(TypeLayout, label, name)}
	l.prefix = prefixLayout
	m := mixin(l.Field, l)
	l.graphQL = graphQL[*Layout](m)
	l.minMax = minMax[*Layout](m)
	return l.ModalSize("")
}

// Fields replaces the layout's sub fields.
func (l *Layout) Fields(fields ...Builder) *Layout {
	l.setChildren(keySubFields, fields)
	return l
}

// Display renders the sub fields as block, row or table.
func (l *Layout) Display(value string) *Layout {
	l.set("display", value)
	return l
}

// ModalSize sets the edit modal size; "" inherits the flexible content's.
func (l *Layout) ModalSize(size string) *Layout {
	l.set("acfe_flexible_modal_edit_size", size)
	return l
}

// SettingsClone attaches field groups as layout settings, edited in a modal
// of the given size.
func (l *Layout) SettingsClone(fieldGroups []string, size string) *Layout {
	l.set("acfe_flexible_settings_size", size)
	l.set("acfe_flexible_settings", append([]string{}, fieldGroups...))
	return l
}

func (l *Layout) Category(categories ...string) *Layout {
	l.set("acfe_flexible_category", append([]string{}, categories...))
	return l
}

// DefaultColumn is the initial grid width, 1 to 12.
func (l *Layout) DefaultColumn(size int) *Layout {
	l.set("acfe_layout_col", size)
	return l
}

func (l *Layout) AllowedColumns(sizes ...string) *Layout {
	l.set("acfe_layout_allowed_col", append([]string{}, sizes...))
	return l
}

// Locations limits the screens the layout is offered on. Invalid rule groups
// are recorded on the builder.
func (l *Layout) Locations(groups ...*location.Group) *Layout {
	rules, err := location.Build(groups...)
	if err != nil {
		l.fail(err)
		return l
	}
	l.set("acfe_layout_locations", rules)
	return l
}

func (l *Layout) Render(files RenderFiles) *Layout {
	l.set("acfe_flexible_render_template", files.Template)
	l.set("acfe_flexible_render_style", files.Style)
	l.set("acfe_flexible_render_script", files.Script)
	return l
}
