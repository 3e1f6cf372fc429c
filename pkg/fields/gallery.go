package fields

type Gallery struct {
	*Field
	graphQL[*Gallery]
	conditionalLogic[*Gallery]
	dimensions[*Gallery]
	fileSize[*Gallery]
	instructions[*Gallery]
	library[*Gallery]
	mimeTypes[*Gallery]
	minMax[*Gallery]
	previewSize[*Gallery]
	required[*Gallery]
	wrapper[*Gallery]
}

func NewGallery(label string, name ...string) *Gallery {
	g := &Gallery{Field: newField(TypeGallery, label, name)}
	m := mixin(g.Field, g)
	g.graphQL = graphQL[*Gallery](m)
	g.conditionalLogic = conditionalLogic[*Gallery](m)
	g.dimensions = dimensions[*Gallery](m)
	g.fileSize = fileSize[*Gallery](m)
	g.instructions = instructions[*Gallery](m)
	g.library = library[*Gallery](m)
	g.mimeTypes = mimeTypes[*Gallery](m)
	g.minMax = minMax[*Gallery](m)
	g.previewSize = previewSize[*Gallery](m)
	g.required = required[*Gallery](m)
	g.wrapper = wrapper[*Gallery](m)
	return g
}

// Insert places new images before (prepend) or after (append) the selection.
func (g *Gallery) Insert(value string) *Gallery {
	g.set("insert", value)
	return g
}
