package fields

type Image struct {
	*Field
	graphQL[*Image]
	conditionalLogic[*Image]
	dimensions[*Image]
	fileSize[*Image]
	instructions[*Image]
	library[*Image]
	mimeTypes[*Image]
	previewSize[*Image]
	required[*Image]
	returnFormat[*Image]
	wrapper[*Image]
}

// NewImage seeds the default uploader.
func NewImage(label string, name ...string) *Image {
	i := &Image{Field: newField(TypeImage, label, name)}
	m := mixin(i.Field, i)
	i.graphQL = graphQL[*Image](m)
	i.conditionalLogic = conditionalLogic[*Image](m)
	i.dimensions = dimensions[*Image](m)
	i.fileSize = fileSize[*Image](m)
	i.instructions = instructions[*Image](m)
	i.library = library[*Image](m)
	i.mimeTypes = mimeTypes[*Image](m)
	i.previewSize = previewSize[*Image](m)
	i.required = required[*Image](m)
	i.returnFormat = returnFormat[*Image](m)
	i.wrapper = wrapper[*Image](m)
	return i.Uploader("default")
}

func (i *Image) Uploader(value string) *Image {
	i.set("uploader", value)
	return i
}
