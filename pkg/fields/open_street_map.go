package fields

// DefaultMapLayer is used when Layers is called without arguments.
const DefaultMapLayer = "Stadia.OSMBright"

type OpenStreetMap struct {
	*Field
	graphQL[*OpenStreetMap]
	instructions[*OpenStreetMap]
	required[*OpenStreetMap]
	nullable[*OpenStreetMap]
	wrapper[*OpenStreetMap]
	conditionalLogic[*OpenStreetMap]
}

func NewOpenStreetMap(label string, name ...string) *OpenStreetMap {
	o := &OpenStreetMap{Field: newField(TypeOpenStreetMap, label, name)}
	m := mixin(o.Field, o)
	o.graphQL = graphQL[*OpenStreetMap](m)
	o.instructions = instructions[*OpenStreetMap](m)
	o.required = required[*OpenStreetMap](m)
	o.nullable = nullable[*OpenStreetMap](m)
	o.wrapper = wrapper[*OpenStreetMap](m)
	o.conditionalLogic = conditionalLogic[*OpenStreetMap](m)
	return o
}

// Height is a CSS length, e.g. "400".
func (o *OpenStreetMap) Height(value string) *OpenStreetMap {
	o.set("height", value)
	return o
}

// AllowMapLayers writes allow_map_layers: false. The host plugin treats the
// explicit false as "editor may switch layers".
func (o *OpenStreetMap) AllowMapLayers() *OpenStreetMap {
	o.set("allow_map_layers", false)
	return o
}

// ReturnFormat is one of raw, leaflet, osm or iframe.
func (o *OpenStreetMap) ReturnFormat(format string) *OpenStreetMap {
	o.set("return_format", format)
	return o
}

func (o *OpenStreetMap) CenterMap(lat, lng float64) *OpenStreetMap {
	o.set("center_lat", lat)
	o.set("center_lng", lng)
	return o
}

func (o *OpenStreetMap) Zoom(level int) *OpenStreetMap {
	o.set("zoom", level)
	return o
}

func (o *OpenStreetMap) MaxMarkers(count int) *OpenStreetMap {
	o.set("max_markers", count)
	return o
}

// Layers sets the tile providers, DefaultMapLayer when none are given.
func (o *OpenStreetMap) Layers(layers ...string) *OpenStreetMap {
	if len(layers) == 0 {
		layers = []string{DefaultMapLayer}
	}
	o.set("layers", append([]string{}, layers...))
	return o
}
