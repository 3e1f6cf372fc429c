package fields

// Modal sizes accepted by the flexible content modals.
const (
	ModalSmall  = "small"
	ModalMedium = "medium"
	ModalLarge  = "large"
	ModalXLarge = "xlarge"
	ModalFull   = "full"
)

// ModalSelection configures the layout picker modal. Zero values fall back to
// a full-size modal titled "Choose Layout" with four columns.
type ModalSelection struct {
	Size       string `mapstructure:"size" json:"size" yaml:"size"`
	Title      string `mapstructure:"title" json:"title" yaml:"title"`
	Columns    int    `mapstructure:"columns" json:"columns" yaml:"columns"`
	Categories bool   `mapstructure:"categories" json:"categories" yaml:"categories"`
}

// FlexibleContent holds a list of layouts editors can add and reorder.
type FlexibleContent struct {
	*Field
	graphQL[*FlexibleContent]
	minMax[*FlexibleContent]
	conditionalLogic[*FlexibleContent]
	instructions[*FlexibleContent]
	required[*FlexibleContent]
	wrapper[*FlexibleContent]
}

// NewFlexibleContent enables the advanced flexible content settings.
func NewFlexibleContent(label string, name ...string) *FlexibleContent {
	f := &FlexibleContent{Field: newField(TypeFlexibleContent, label, name)}
	m := mixin(f.Field, f)
	f.graphQL = graphQL[*FlexibleContent](m)
	f.minMax = minMax[*FlexibleContent](m)
	f.conditionalLogic = conditionalLogic[*FlexibleContent](m)
	f.instructions = instructions[*FlexibleContent](m)
	f.required = required[*FlexibleContent](m)
	f.wrapper = wrapper[*FlexibleContent](m)
	return f.Advanced()
}

// Layouts replaces the available layouts.
func (f *FlexibleContent) Layouts(layouts ...*Layout) *FlexibleContent {
	children := make([]Builder, 0, len(layouts))
	for _, l := range layouts {
		children = append(children, l)
	}
	f.setChildren(keyLayouts, children)
	return f
}

// ButtonLabel sets the label of the add-row button.
func (f *FlexibleContent) ButtonLabel(label string) *FlexibleContent {
	f.set("button_label", label)
	return f
}

func (f *FlexibleContent) Advanced() *FlexibleContent {
	f.set("acfe_flexible_advanced", true)
	return f
}

func (f *FlexibleContent) StylisedButton() *FlexibleContent {
	f.set("acfe_flexible_stylised_button", true)
	return f
}

// ModalEdit edits layouts in a modal of the given size; "" means full.
func (f *FlexibleContent) ModalEdit(size string) *FlexibleContent {
	if size == "" {
		size = ModalFull
	}
	f.set("acfe_flexible_modal_edit", map[string]any{
		"acfe_flexible_modal_edit_enabled": true,
		"acfe_flexible_modal_edit_size":    size,
	})
	return f
}

// ModalSelection picks new layouts from a modal instead of a dropdown.
func (f *FlexibleContent) ModalSelection(cfg ModalSelection) *FlexibleContent {
	if cfg.Size == "" {
		cfg.Size = ModalFull
	}
	if cfg.Title == "" {
		cfg.Title = "Choose Layout"
	}
	if cfg.Columns == 0 {
		cfg.Columns = 4
	}
	f.set("acfe_flexible_modal", map[string]any{
		"acfe_flexible_modal_enabled":    true,
		"acfe_flexible_modal_title":      cfg.Title,
		"acfe_flexible_modal_size":       cfg.Size,
		"acfe_flexible_modal_col":        cfg.Columns,
		"acfe_flexible_modal_categories": cfg.Categories,
	})
	return f
}

// Grid arranges layouts in a grid. An empty align or valign stands for the
// plugin defaults, center and stretch. nowrap is stored as 1 or 0, the
// shape the plugin writes for its own field groups.
func (f *FlexibleContent) Grid(align, valign string, nowrap bool) *FlexibleContent {
	if align == "" {
		align = "center"
	}
	if valign == "" {
		valign = "stretch"
	}
	wrap := 0
	if nowrap {
		wrap = 1
	}
	f.set("acfe_flexible_grid", map[string]any{
		"acfe_flexible_grid_enabled": true,
		"acfe_flexible_grid_align":   align,
		"acfe_flexible_grid_valign":  valign,
		"acfe_flexible_grid_wrap":    wrap,
	})
	return f
}

func (f *FlexibleContent) Templates() *FlexibleContent {
	f.set("acfe_flexible_layouts_templates", true)
	return f
}

// Placeholder shows a placeholder instead of the collapsed layout.
func (f *FlexibleContent) Placeholder() *FlexibleContent {
	f.set("acfe_flexible_layouts_placeholder", true)
	return f
}

func (f *FlexibleContent) Previews() *FlexibleContent {
	f.set("acfe_flexible_layouts_previews", true)
	return f
}

func (f *FlexibleContent) Thumbnails() *FlexibleContent {
	f.set("acfe_flexible_layouts_thumbnails", true)
	return f
}

// LayoutSettings enables per-layout settings modals.
func (f *FlexibleContent) LayoutSettings() *FlexibleContent {
	f.set("acfe_flexible_layouts_settings", true)
	return f
}

// Ajax loads new layouts over ajax.
func (f *FlexibleContent) Ajax() *FlexibleContent {
	f.set("acfe_flexible_layouts_ajax", true)
	return f
}

// AddActions sets the layout actions, e.g. toggle, copy or close.
func (f *FlexibleContent) AddActions(actions ...string) *FlexibleContent {
	f.set("acfe_flexible_add_actions", append([]string{}, actions...))
	return f
}

func (f *FlexibleContent) EmptyMessage(message string) *FlexibleContent {
	f.set("acfe_flexible_empty_message", message)
	return f
}

// HasLocations honours the location rules set on each layout.
func (f *FlexibleContent) HasLocations() *FlexibleContent {
	f.set("acfe_flexible_layouts_locations", true)
	return f
}
