package fields

type Repeater struct {
	*Field
	graphQL[*Repeater]
	conditionalLogic[*Repeater]
	instructions[*Repeater]
	minMax[*Repeater]
	required[*Repeater]
	wrapper[*Repeater]
	layout[*Repeater]
}

func NewRepeater(label string, name ...string) *Repeater {
	r := &Repeater{Field: newField(TypeRepeater, label, name)}
	m := mixin(r.Field, r)
	r.graphQL = graphQL[*Repeater](m)
	r.conditionalLogic = conditionalLogic[*Repeater](m)
	r.instructions = instructions[*Repeater](m)
	r.minMax = minMax[*Repeater](m)
	r.required = required[*Repeater](m)
	r.wrapper = wrapper[*Repeater](m)
	r.layout = layout[*Repeater](m)
	return r
}

// Fields replaces the repeated sub fields.
func (r *Repeater) Fields(fields ...Builder) *Repeater {
	r.setChildren(keySubFields, fields)
	return r
}

func (r *Repeater) ButtonLabel(label string) *Repeater {
	r.set("button_label", label)
	return r
}

// Collapsed names the sub field shown while a row is collapsed. The name is
// swapped for the sub field's key on Resolve.
func (r *Repeater) Collapsed(name string) *Repeater {
	r.set("collapsed", name)
	return r
}

// Pagination loads rows in pages of the given size.
func (r *Repeater) Pagination(rows int) *Repeater {
	r.set("pagination", true)
	r.set("rows_per_page", rows)
	return r
}

func (r *Repeater) Resolve(parentKey string) (map[string]any, error) {
	out, err := r.Field.Resolve(parentKey)
	if err != nil {
		return nil, err
	}
	if name, ok := out["collapsed"].(string); ok && name != "" && !isGeneratedKey(prefixField, name) {
		out["collapsed"] = GenerateKey(prefixField, out["key"].(string), name)
	}
	return out, nil
}
