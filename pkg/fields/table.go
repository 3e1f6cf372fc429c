package fields

type Table struct {
	*Field
	graphQL[*Table]
	instructions[*Table]
	required[*Table]
	wrapper[*Table]
	conditionalLogic[*Table]
}

func NewTable(label string, name ...string) *Table {
	t := &Table{Field: newField(TypeTable, label, name)}
	m := mixin(t.Field, t)
	t.graphQL = graphQL[*Table](m)
	t.instructions = instructions[*Table](m)
	t.required = required[*Table](m)
	t.wrapper = wrapper[*Table](m)
	t.conditionalLogic = conditionalLogic[*Table](m)
	return t
}
