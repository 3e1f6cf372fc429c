package fields

// ImageMapping places hotspots on an image taken from another field.
type ImageMapping struct {
	*Field
	graphQL[*ImageMapping]
	instructions[*ImageMapping]
	required[*ImageMapping]
	nullable[*ImageMapping]
	wrapper[*ImageMapping]
	conditionalLogic[*ImageMapping]
}

func NewImageMapping(label string, name ...string) *ImageMapping {
	i := &ImageMapping{Field: newField(TypeImageMapping, label, name)}
	m := mixin(i.Field, i)
	i.graphQL = graphQL[*ImageMapping](m)
	i.instructions = instructions[*ImageMapping](m)
	i.required = required[*ImageMapping](m)
	i.nullable = nullable[*ImageMapping](m)
	i.wrapper = wrapper[*ImageMapping](m)
	i.conditionalLogic = conditionalLogic[*ImageMapping](m)
	return i
}

// ImageField names the field holding the image.
func (i *ImageMapping) ImageField(name string) *ImageMapping {
	i.set("image_field_label", name)
	return i
}

// DefaultImage shares image_field_label with ImageField; the host plugin
// reads both from the same key.
func (i *ImageMapping) DefaultImage(image string) *ImageMapping {
	i.set("image_field_label", image)
	return i
}

// PercentBased stores hotspot coordinates as percentages.
func (i *ImageMapping) PercentBased() *ImageMapping {
	i.set("percent_based", true)
	return i
}
