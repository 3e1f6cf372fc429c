package fields

// Columns splits the following fields into columns until an endpoint.
type Columns struct {
	*Field
	graphQL[*Columns]
	conditionalLogic[*Columns]
}

func NewColumns(label string, name ...string) *Columns {
	c := &Columns{Field: newField(TypeColumns, label, name)}
	m := mixin(c.Field, c)
	c.graphQL = graphQL[*Columns](m)
	c.conditionalLogic = conditionalLogic[*Columns](m)
	return c
}

// Columns sets the width token: auto, fill or 1/12 through 12/12.
func (c *Columns) Columns(value string) *Columns {
	c.set("columns", value)
	return c
}

// Endpoint stops the previous columns.
func (c *Columns) Endpoint() *Columns {
	c.set("endpoint", true)
	return c
}

// Border enables the column and/or fields border.
func (c *Columns) Border(values ...string) *Columns {
	c.set("border", append([]string{}, values...))
	return c
}
