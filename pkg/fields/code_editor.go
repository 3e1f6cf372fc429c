package fields

type CodeEditor struct {
	*Field
	graphQL[*CodeEditor]
	defaultValue[*CodeEditor]
	placeholder[*CodeEditor]
	conditionalLogic[*CodeEditor]
	instructions[*CodeEditor]
	required[*CodeEditor]
	wrapper[*CodeEditor]
}

// NewCodeEditor seeds an HTML mode with four-space indentation and four rows.
func NewCodeEditor(label string, name ...string) *CodeEditor {
	c := &CodeEditor{Field: newField(TypeCodeEditor, label, name)}
	m := mixin(c.Field, c)
	c.graphQL = graphQL[*CodeEditor](m)
	c.defaultValue = defaultValue[*CodeEditor](m)
	c.placeholder = placeholder[*CodeEditor](m)
	c.conditionalLogic = conditionalLogic[*CodeEditor](m)
	c.instructions = instructions[*CodeEditor](m)
	c.required = required[*CodeEditor](m)
	c.wrapper = wrapper[*CodeEditor](m)
	return c.Mode("text/html").IndentUnit(4).Rows(4)
}

// Mode sets the editor syntax as a MIME type, e.g. text/css or application/x-httpd-php.
func (c *CodeEditor) Mode(value string) *CodeEditor {
	c.set("mode", value)
	return c
}

// Lines shows line numbers.
func (c *CodeEditor) Lines() *CodeEditor {
	c.set("lines", true)
	return c
}

func (c *CodeEditor) IndentUnit(value int) *CodeEditor {
	c.set("indent_unit", value)
	return c
}

func (c *CodeEditor) MaxLength(value int) *CodeEditor {
	c.set("maxlength", value)
	return c
}

func (c *CodeEditor) Rows(value int) *CodeEditor {
	c.set("rows", value)
	return c
}

func (c *CodeEditor) MaxRows(value int) *CodeEditor {
	c.set("max_rows", value)
	return c
}

// ReturnEntities returns the value with HTML entities encoded.
func (c *CodeEditor) ReturnEntities() *CodeEditor {
	c.set("return_entities", true)
	return c
}
