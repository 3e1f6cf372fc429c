package fields

// Button renders a button inside the edit screen, optionally triggering an
// ajax request.
type Button struct {
	*Field
	graphQL[*Button]
	required[*Button]
	conditionalLogic[*Button]
	wrapper[*Button]
	instructions[*Button]
}

// NewButton seeds the button value, type and classes.
func NewButton(label string, name ...string) *Button {
	b := &Button{Field: newField(TypeButton, label, name)}
	m := mixin(b.Field, b)
	b.graphQL = graphQL[*Button](m)
	b.required = required[*Button](m)
	b.conditionalLogic = conditionalLogic[*Button](m)
	b.wrapper = wrapper[*Button](m)
	b.instructions = instructions[*Button](m)

	return b.ButtonValue("Submit").
		ButtonType("button").
		ButtonClass("button button-secondary")
}

// ButtonValue sets the button text.
func (b *Button) ButtonValue(value string) *Button {
	b.set("button_value", value)
	return b
}

// ButtonType sets the HTML type attribute: button or submit.
func (b *Button) ButtonType(value string) *Button {
	b.set("button_type", value)
	return b
}

// ButtonBefore sets raw HTML printed before the button.
func (b *Button) ButtonBefore(html string) *Button {
	b.set("button_before", html)
	return b
}

// ButtonAfter sets raw HTML printed after the button.
func (b *Button) ButtonAfter(html string) *Button {
	b.set("button_after", html)
	return b
}

func (b *Button) ButtonClass(value string) *Button {
	b.set("button_class", value)
	return b
}

func (b *Button) ButtonID(value string) *Button {
	b.set("button_id", value)
	return b
}

// ButtonAjax triggers an ajax event on click.
func (b *Button) ButtonAjax() *Button {
	b.set("button_ajax", true)
	return b
}
