package fields

type File struct {
	*Field
	graphQL[*File]
	conditionalLogic[*File]
	fileSize[*File]
	instructions[*File]
	library[*File]
	mimeTypes[*File]
	required[*File]
	returnFormat[*File]
	wrapper[*File]
}

func NewFile(label string, name ...string) *File {
	f := &File{Field: newField(TypeFile, label, name)}
	m := mixin(f.Field, f)
	f.graphQL = graphQL[*File](m)
	f.conditionalLogic = conditionalLogic[*File](m)
	f.fileSize = fileSize[*File](m)
	f.instructions = instructions[*File](m)
	f.library = library[*File](m)
	f.mimeTypes = mimeTypes[*File](m)
	f.required = required[*File](m)
	f.returnFormat = returnFormat[*File](m)
	f.wrapper = wrapper[*File](m)
	return f
}

// Uploader selects the upload UI: wp or basic.
func (f *File) Uploader(value string) *File {
	f.set("uploader", value)
	return f
}
