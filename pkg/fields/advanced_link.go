package fields

// AdvancedLink picks a URL, a post or a term together with a link title.
type AdvancedLink struct {
	*Field
	graphQL[*AdvancedLink]
	required[*AdvancedLink]
	conditionalLogic[*AdvancedLink]
	wrapper[*AdvancedLink]
	instructions[*AdvancedLink]
}

func NewAdvancedLink(label string, name ...string) *AdvancedLink {
	a := &AdvancedLink{Field: newField(TypeAdvancedLink, label, name)}
	m := mixin(a.Field, a)
	a.graphQL = graphQL[*AdvancedLink](m)
	a.required = required[*AdvancedLink](m)
	a.conditionalLogic = conditionalLogic[*AdvancedLink](m)
	a.wrapper = wrapper[*AdvancedLink](m)
	a.instructions = instructions[*AdvancedLink](m)
	return a
}

// PostTypes limits the selectable posts.
func (a *AdvancedLink) PostTypes(types ...string) *AdvancedLink {
	a.set("post_type", append([]string{}, types...))
	return a
}

// Taxonomies limits the selectable terms.
func (a *AdvancedLink) Taxonomies(taxonomies ...string) *AdvancedLink {
	a.set("taxonomy", append([]string{}, taxonomies...))
	return a
}
