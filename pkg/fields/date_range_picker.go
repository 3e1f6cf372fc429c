package fields

// DefaultCustomRanges are the preset ranges offered by a new DateRangePicker.
var DefaultCustomRanges = []string{"Today", "Yesterday", "Last 7 Days", "Last 30 Days", "This Month", "Last Month"}

type DateRangePicker struct {
	*Field
	graphQL[*DateRangePicker]
	nullable[*DateRangePicker]
	conditionalLogic[*DateRangePicker]
	dateTimeFormat[*DateRangePicker]
	disabled[*DateRangePicker]
	instructions[*DateRangePicker]
	placeholder[*DateRangePicker]
	writable[*DateRangePicker]
	required[*DateRangePicker]
	weekDay[*DateRangePicker]
	wrapper[*DateRangePicker]
}

func NewDateRangePicker(label string, name ...string) *DateRangePicker {
	d := &DateRangePicker{Field: newField(TypeDateRangePicker, label, name)}
	m := mixin(d.Field, d)
	d.graphQL = graphQL[*DateRangePicker](m)
	d.nullable = nullable[*DateRangePicker](m)
	d.conditionalLogic = conditionalLogic[*DateRangePicker](m)
	d.dateTimeFormat = dateTimeFormat[*DateRangePicker](m)
	d.disabled = disabled[*DateRangePicker](m)
	d.instructions = instructions[*DateRangePicker](m)
	d.placeholder = placeholder[*DateRangePicker](m)
	d.writable = writable[*DateRangePicker](m)
	d.required = required[*DateRangePicker](m)
	d.weekDay = weekDay[*DateRangePicker](m)
	d.wrapper = wrapper[*DateRangePicker](m)
	return d.CustomRanges(DefaultCustomRanges...)
}

func (d *DateRangePicker) Separator(value string) *DateRangePicker {
	d.set("separator", value)
	return d
}

func (d *DateRangePicker) DefaultStart(value string) *DateRangePicker {
	d.set("default_start", value)
	return d
}

func (d *DateRangePicker) DefaultEnd(value string) *DateRangePicker {
	d.set("default_end", value)
	return d
}

// MinRange sets the shortest selectable range in days.
func (d *DateRangePicker) MinRange(days int) *DateRangePicker {
	d.set("min_days", days)
	return d
}

// MaxRange sets the longest selectable range in days.
func (d *DateRangePicker) MaxRange(days int) *DateRangePicker {
	d.set("max_days", days)
	return d
}

func (d *DateRangePicker) MinDate(value string) *DateRangePicker {
	d.set("min_date", value)
	return d
}

func (d *DateRangePicker) MaxDate(value string) *DateRangePicker {
	d.set("max_date", value)
	return d
}

// CustomRanges replaces the preset ranges. Calling it without arguments
// removes all presets.
func (d *DateRangePicker) CustomRanges(ranges ...string) *DateRangePicker {
	d.set("custom_ranges", append([]string{}, ranges...))
	return d
}

// Dropdowns shows month and year dropdowns.
func (d *DateRangePicker) Dropdowns() *DateRangePicker {
	d.set("show_dropdowns", true)
	return d
}

func (d *DateRangePicker) NoWeekends() *DateRangePicker {
	d.set("no_weekends", true)
	return d
}

// AutoClose closes the picker once a range is selected.
func (d *DateRangePicker) AutoClose() *DateRangePicker {
	d.set("auto_close", true)
	return d
}
