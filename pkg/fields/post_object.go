package fields

type PostObject struct {
	*Field
	graphQL[*PostObject]
	conditionalLogic[*PostObject]
	instructions[*PostObject]
	multiple[*PostObject]
	nullable[*PostObject]
	required[*PostObject]
	returnFormat[*PostObject]
	wrapper[*PostObject]
}

func NewPostObject(label string, name ...string) *PostObject {
	p := &PostObject{Field: newField(TypePostObject, label, name)}
	m := mixin(p.Field, p)
	p.graphQL = graphQL[*PostObject](m)
	p.conditionalLogic = conditionalLogic[*PostObject](m)
	p.instructions = instructions[*PostObject](m)
	p.multiple = multiple[*PostObject](m)
	p.nullable = nullable[*PostObject](m)
	p.required = required[*PostObject](m)
	p.returnFormat = returnFormat[*PostObject](m)
	p.wrapper = wrapper[*PostObject](m)
	return p
}

// PostTypes filters the selectable posts by post type.
func (p *PostObject) PostTypes(types ...string) *PostObject {
	p.set("post_type", append([]string{}, types...))
	return p
}

// Taxonomies filters the selectable posts by term, e.g. "category:news".
func (p *PostObject) Taxonomies(terms ...string) *PostObject {
	p.set("taxonomy", append([]string{}, terms...))
	return p
}
