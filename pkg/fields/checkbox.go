package fields

type Checkbox struct {
	*Field
	graphQL[*Checkbox]
	choices[*Checkbox]
	conditionalLogic[*Checkbox]
	defaultValue[*Checkbox]
	direction[*Checkbox]
	instructions[*Checkbox]
	required[*Checkbox]
	returnFormat[*Checkbox]
	wrapper[*Checkbox]
}

func NewCheckbox(label string, name ...string) *Checkbox {
	c := &Checkbox{Field: newField(TypeCheckbox, label, name)}
	m := mixin(c.Field, c)
	c.graphQL = graphQL[*Checkbox](m)
	c.choices = choices[*Checkbox](m)
	c.conditionalLogic = conditionalLogic[*Checkbox](m)
	c.defaultValue = defaultValue[*Checkbox](m)
	c.direction = direction[*Checkbox](m)
	c.instructions = instructions[*Checkbox](m)
	c.required = required[*Checkbox](m)
	c.returnFormat = returnFormat[*Checkbox](m)
	c.wrapper = wrapper[*Checkbox](m)
	return c
}

// AllowCustom lets editors add values outside the choices.
func (c *Checkbox) AllowCustom() *Checkbox {
	c.set("allow_custom", true)
	return c
}

// SaveCustom appends custom values to the field's choices.
func (c *Checkbox) SaveCustom() *Checkbox {
	c.set("save_custom", true)
	return c
}

// Toggle prepends a "toggle all" checkbox.
func (c *Checkbox) Toggle() *Checkbox {
	c.set("toggle", true)
	return c
}
