package openapi

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cast"
)

// FieldSchema returns the schema of the value a resolved field stores, or nil
// for presentational fields (buttons, column breaks) that store nothing.
func FieldSchema(field map[string]any) *openapi3.Schema {
	var schema *openapi3.Schema

	switch cast.ToString(field["type"]) {
	case "acfe_button", "acfe_column":
		return nil
	case "acfe_advanced_link":
		schema = openapi3.NewObjectSchema().
			WithProperty("type", openapi3.NewStringSchema().WithEnum("url", "post", "term")).
			WithProperty("title", openapi3.NewStringSchema()).
			WithProperty("url", openapi3.NewStringSchema()).
			WithProperty("target", openapi3.NewBoolSchema())
	case "checkbox":
		schema = openapi3.NewArraySchema().WithItems(choiceSchema(field))
	case "acfe_image_selector":
		schema = manyOf(field, choiceSchema(field))
	case "acfe_countries":
		item := openapi3.NewStringSchema()
		if cast.ToString(field["return_format"]) == "array" {
			item = openapi3.NewObjectSchema().
				WithProperty("code", openapi3.NewStringSchema()).
				WithProperty("name", openapi3.NewStringSchema())
		}
		schema = manyOf(field, item)
	case "acfe_date_range_picker":
		schema = openapi3.NewObjectSchema().
			WithProperty("start", openapi3.NewStringSchema()).
			WithProperty("end", openapi3.NewStringSchema())
	case "file", "image":
		schema = attachmentSchema(field)
	case "gallery":
		schema = openapi3.NewArraySchema().WithItems(attachmentSchema(field))
		itemBounds(schema, field)
	case "focuspoint":
		schema = openapi3.NewObjectSchema().
			WithProperty("id", openapi3.NewIntegerSchema()).
			WithProperty("top", openapi3.NewFloat64Schema()).
			WithProperty("left", openapi3.NewFloat64Schema())
	case "image_mapping":
		schema = openapi3.NewObjectSchema().
			WithProperty("x", openapi3.NewFloat64Schema()).
			WithProperty("y", openapi3.NewFloat64Schema())
	case "open_street_map":
		marker := openapi3.NewObjectSchema().
			WithProperty("lat", openapi3.NewFloat64Schema()).
			WithProperty("lng", openapi3.NewFloat64Schema()).
			WithProperty("label", openapi3.NewStringSchema())
		schema = openapi3.NewObjectSchema().
			WithProperty("lat", openapi3.NewFloat64Schema()).
			WithProperty("lng", openapi3.NewFloat64Schema()).
			WithProperty("zoom", openapi3.NewIntegerSchema()).
			WithProperty("markers", openapi3.NewArraySchema().WithItems(marker))
	case "post_object":
		item := openapi3.NewIntegerSchema()
		if cast.ToString(field["return_format"]) == "object" {
			item = openapi3.NewObjectSchema().
				WithProperty("ID", openapi3.NewIntegerSchema()).
				WithProperty("post_title", openapi3.NewStringSchema()).
				WithProperty("post_type", openapi3.NewStringSchema())
		}
		schema = manyOf(field, item)
	case "repeater":
		schema = openapi3.NewArraySchema().WithItems(objectOf(maps(field["sub_fields"])))
		itemBounds(schema, field)
	case "flexible_content":
		schema = flexibleSchema(field)
	case "clone", "layout":
		schema = objectOf(maps(field["sub_fields"]))
		if len(schema.Properties) == 0 {
			schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(true)}
		}
	case "table":
		cell := openapi3.NewObjectSchema().WithProperty("c", openapi3.NewStringSchema())
		schema = openapi3.NewObjectSchema().
			WithProperty("header", openapi3.NewArraySchema().WithItems(cell)).
			WithProperty("body", openapi3.NewArraySchema().WithItems(openapi3.NewArraySchema().WithItems(cell)))
	default:
		schema = manyOf(field, openapi3.NewStringSchema())
	}

	schema.Title = cast.ToString(field["label"])
	schema.Description = cast.ToString(field["instructions"])
	if cast.ToBool(field["allow_null"]) {
		schema.WithNullable()
	}
	if cast.ToBool(field["readonly"]) {
		schema.ReadOnly = true
	}
	return schema
}

// manyOf wraps item in an array when the field allows multiple values.
func manyOf(field map[string]any, item *openapi3.Schema) *openapi3.Schema {
	if !cast.ToBool(field["multiple"]) {
		return item
	}
	schema := openapi3.NewArraySchema().WithItems(item)
	itemBounds(schema, field)
	return schema
}

func choiceSchema(field map[string]any) *openapi3.Schema {
	schema := openapi3.NewStringSchema()
	choices := cast.ToStringMap(field["choices"])
	if len(choices) == 0 || cast.ToBool(field["allow_custom"]) {
		return schema
	}
	values := make([]string, 0, len(choices))
	for value := range choices {
		values = append(values, value)
	}
	sort.Strings(values)
	enum := make([]any, len(values))
	for i, value := range values {
		enum[i] = value
	}
	return schema.WithEnum(enum...)
}

func attachmentSchema(field map[string]any) *openapi3.Schema {
	switch cast.ToString(field["return_format"]) {
	case "id":
		return openapi3.NewIntegerSchema()
	case "url":
		return openapi3.NewStringSchema().WithFormat("uri")
	}
	return openapi3.NewObjectSchema().
		WithProperty("ID", openapi3.NewIntegerSchema()).
		WithProperty("url", openapi3.NewStringSchema().WithFormat("uri")).
		WithProperty("alt", openapi3.NewStringSchema()).
		WithProperty("mime_type", openapi3.NewStringSchema())
}

// flexibleSchema is an array of rows, each one of the layouts tagged by
// acf_fc_layout.
func flexibleSchema(field map[string]any) *openapi3.Schema {
	var rows openapi3.SchemaRefs
	for _, layout := range maps(field["layouts"]) {
		name := cast.ToString(layout["name"])
		row := objectOf(maps(layout["sub_fields"])).
			WithProperty("acf_fc_layout", openapi3.NewStringSchema().WithEnum(name))
		row.Title = cast.ToString(layout["label"])
		row.Required = append([]string{"acf_fc_layout"}, row.Required...)
		rows = append(rows, openapi3.NewSchemaRef("", row))
	}

	item := openapi3.NewObjectSchema()
	if len(rows) > 0 {
		item = &openapi3.Schema{OneOf: rows}
	}
	schema := openapi3.NewArraySchema().WithItems(item)
	itemBounds(schema, field)
	return schema
}

func itemBounds(schema *openapi3.Schema, field map[string]any) {
	if lo := cast.ToInt64(field["min"]); lo > 0 {
		schema.WithMinItems(lo)
	}
	if hi := cast.ToInt64(field["max"]); hi > 0 {
		schema.WithMaxItems(hi)
	}
}

// maps accepts both freshly resolved ([]map[string]any) and decoded ([]any)
// field lists.
func maps(raw any) []map[string]any {
	switch v := raw.(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}
