package fields

type SVGIcon struct {
	*Field
	graphQL[*SVGIcon]
	instructions[*SVGIcon]
	defaultValue[*SVGIcon]
	required[*SVGIcon]
	multiple[*SVGIcon]
	nullable[*SVGIcon]
	wrapper[*SVGIcon]
	conditionalLogic[*SVGIcon]
}

func NewSVGIcon(label string, name ...string) *SVGIcon {
	s := &SVGIcon{Field: newField(TypeSVGIcon, label, name)}
	m := mixin(s.Field, s)
	s.graphQL = graphQL[*SVGIcon](m)
	s.instructions = instructions[*SVGIcon](m)
	s.defaultValue = defaultValue[*SVGIcon](m)
	s.required = required[*SVGIcon](m)
	s.multiple = multiple[*SVGIcon](m)
	s.nullable = nullable[*SVGIcon](m)
	s.wrapper = wrapper[*SVGIcon](m)
	s.conditionalLogic = conditionalLogic[*SVGIcon](m)
	return s
}
