package fields

// Type tags understood by the host runtime.
const (
	TypeAdvancedLink    = "acfe_advanced_link"
	TypeButton          = "acfe_button"
	TypeCheckbox        = "checkbox"
	TypeClone           = "clone"
	TypeCodeEditor      = "acfe_code_editor"
	TypeColumns         = "acfe_column"
	TypeCountries       = "acfe_countries"
	TypeDateRangePicker = "acfe_date_range_picker"
	TypeFile            = "file"
	TypeFlexibleContent = "flexible_content"
	TypeFocusPoint      = "focuspoint"
	TypeGallery         = "gallery"
	TypeImage           = "image"
	TypeImageMapping    = "image_mapping"
	TypeImageSelector   = "acfe_image_selector"
	TypeLayout          = "layout"
	TypeOpenStreetMap   = "open_street_map"
	TypePostObject      = "post_object"
	TypeRepeater        = "repeater"
	TypeSVGIcon         = "svg_icon"
	TypeTable           = "table"
)
