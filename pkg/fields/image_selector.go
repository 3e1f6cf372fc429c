package fields

// ImageSelector renders its choices as selectable images.
type ImageSelector struct {
	*Field
	graphQL[*ImageSelector]
	defaultValue[*ImageSelector]
	choices[*ImageSelector]
	multiple[*ImageSelector]
	nullable[*ImageSelector]
	returnFormat[*ImageSelector]
	direction[*ImageSelector]
	conditionalLogic[*ImageSelector]
	instructions[*ImageSelector]
	required[*ImageSelector]
	wrapper[*ImageSelector]
}

func NewImageSelector(label string, name ...string) *ImageSelector {
	i := &ImageSelector{Field: newField(TypeImageSelector, label, name)}
	m := mixin(i.Field, i)
	i.graphQL = graphQL[*ImageSelector](m)
	i.defaultValue = defaultValue[*ImageSelector](m)
	i.choices = choices[*ImageSelector](m)
	i.multiple = multiple[*ImageSelector](m)
	i.nullable = nullable[*ImageSelector](m)
	i.returnFormat = returnFormat[*ImageSelector](m)
	i.direction = direction[*ImageSelector](m)
	i.conditionalLogic = conditionalLogic[*ImageSelector](m)
	i.instructions = instructions[*ImageSelector](m)
	i.required = required[*ImageSelector](m)
	i.wrapper = wrapper[*ImageSelector](m)
	return i
}

// Container sizes each image box; border is in pixels.
func (i *ImageSelector) Container(width, height string, border int) *ImageSelector {
	i.set("width", width)
	i.set("height", height)
	i.set("border", border)
	return i
}

func (i *ImageSelector) ImageSize(size string) *ImageSelector {
	i.set("image_size", size)
	return i
}
