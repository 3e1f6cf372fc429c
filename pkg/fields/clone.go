package fields

// Clone reuses existing fields or field groups, optionally edited in a modal.
type Clone struct {
	*Field
	graphQL[*Clone]
	conditionalLogic[*Clone]
	instructions[*Clone]
	required[*Clone]
	wrapper[*Clone]
	layout[*Clone]
}

// NewClone seeds the modal button label.
func NewClone(label string, name ...string) *Clone {
	c := &Clone{Field: newField(TypeClone, label, name)}
	m := mixin(c.Field, c)
	c.graphQL = graphQL[*Clone](m)
	c.conditionalLogic = conditionalLogic[*Clone](m)
	c.instructions = instructions[*Clone](m)
	c.required = required[*Clone](m)
	c.wrapper = wrapper[*Clone](m)
	c.layout = layout[*Clone](m)
	return c.ModalButton("Edit")
}

// Fields sets the keys of the fields or groups to clone.
func (c *Clone) Fields(keys ...string) *Clone {
	c.set("clone", append([]string{}, keys...))
	return c
}

// Display is either group or seamless.
func (c *Clone) Display(value string) *Clone {
	c.set("display", value)
	return c
}

// PrefixLabel displays labels as %field_label%.
func (c *Clone) PrefixLabel() *Clone {
	c.set("prefix_label", true)
	return c
}

// PrefixName stores values as %field_name%.
func (c *Clone) PrefixName() *Clone {
	c.set("prefix_name", true)
	return c
}

// Seamless removes borders and padding around the cloned fields.
func (c *Clone) Seamless() *Clone {
	c.set("acfe_seamless_style", true)
	return c
}

// Modal edits the cloned fields in a modal. The modal needs the group
// display, so Display("group") is applied first.
func (c *Clone) Modal() *Clone {
	c.Display("group")
	c.set("acfe_clone_modal", true)
	return c
}

// ModalClose enables the modal and shows its close button.
func (c *Clone) ModalClose() *Clone {
	c.Modal()
	c.set("acfe_clone_modal_close", true)
	return c
}

func (c *Clone) ModalButton(value string) *Clone {
	c.set("acfe_clone_modal_button", value)
	return c
}

// ModalSize is one of small, medium, large, xlarge or full.
func (c *Clone) ModalSize(value string) *Clone {
	c.set("acfe_clone_modal_size", value)
	return c
}
