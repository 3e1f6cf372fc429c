package fields

type FocusPoint struct {
	*Field
	graphQL[*FocusPoint]
	instructions[*FocusPoint]
	required[*FocusPoint]
	nullable[*FocusPoint]
	wrapper[*FocusPoint]
	library[*FocusPoint]
	mimeTypes[*FocusPoint]
	previewSize[*FocusPoint]
	conditionalLogic[*FocusPoint]
}

func NewFocusPoint(label string, name ...string) *FocusPoint {
	f := &FocusPoint{Field: newField(TypeFocusPoint, label, name)}
	m := mixin(f.Field, f)
	f.graphQL = graphQL[*FocusPoint](m)
	f.instructions = instructions[*FocusPoint](m)
	f.required = required[*FocusPoint](m)
	f.nullable = nullable[*FocusPoint](m)
	f.wrapper = wrapper[*FocusPoint](m)
	f.library = library[*FocusPoint](m)
	f.mimeTypes = mimeTypes[*FocusPoint](m)
	f.previewSize = previewSize[*FocusPoint](m)
	f.conditionalLogic = conditionalLogic[*FocusPoint](m)
	return f
}
