package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cast"
)

// Options controls the document envelope.
type Options struct {
	Title     string
	Version   string
	BasePath  string
	ServerURL string
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Title) == "" {
		o.Title = "Field groups"
	}
	if strings.TrimSpace(o.Version) == "" {
		o.Version = "1.0.0"
	}
	if strings.TrimSpace(o.BasePath) == "" {
		o.BasePath = "/acf/v3/groups"
	}
	o.BasePath = "/" + strings.Trim(o.BasePath, "/")
	return o
}

// Document builds an OpenAPI document for the resolved groups. Each group
// becomes components.schemas[<group key>] and GET <base>/<group key>.
func Document(groups []map[string]any, opts Options) (*openapi3.T, error) {
	opts = opts.withDefaults()

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   opts.Title,
			Version: opts.Version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas, len(groups)),
		},
	}
	if opts.ServerURL != "" {
		doc.Servers = openapi3.Servers{{URL: opts.ServerURL}}
	}

	for idx, group := range groups {
		key := cast.ToString(group["key"])
		if key == "" {
			return nil, fmt.Errorf("openapi: group %d has no key", idx)
		}
		if _, exists := doc.Components.Schemas[key]; exists {
			return nil, fmt.Errorf("openapi: duplicate group key %q", key)
		}
		schema := GroupSchema(group)
		doc.Components.Schemas[key] = openapi3.NewSchemaRef("", schema)

		// refs must carry their value or T.Validate reports them unresolved
		ref := &openapi3.SchemaRef{Ref: "#/components/schemas/" + key, Value: schema}
		response := openapi3.NewResponse().
			WithDescription(fmt.Sprintf("Values of %q", cast.ToString(group["title"]))).
			WithJSONSchemaRef(ref)
		doc.Paths.Set(opts.BasePath+"/"+key, &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "get_" + key,
				Summary:     cast.ToString(group["title"]),
				Description: cast.ToString(group["description"]),
				Responses: openapi3.NewResponses(
					openapi3.WithStatus(200, &openapi3.ResponseRef{Value: response}),
				),
			},
		})
	}
	return doc, nil
}

// Validate runs kin-openapi's document validation.
func Validate(ctx context.Context, doc *openapi3.T) error {
	if doc == nil {
		return errors.New("openapi: document is nil")
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("openapi: validate: %w", err)
	}
	return nil
}

// Build is Document followed by Validate.
func Build(ctx context.Context, groups []map[string]any, opts Options) (*openapi3.T, error) {
	doc, err := Document(groups, opts)
	if err != nil {
		return nil, err
	}
	if err := Validate(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GroupSchema returns the object schema of a resolved group's values.
func GroupSchema(group map[string]any) *openapi3.Schema {
	schema := objectOf(maps(group["fields"]))
	schema.Title = cast.ToString(group["title"])
	if description := cast.ToString(group["description"]); description != "" {
		schema.Description = description
	}
	return schema
}

// objectOf builds an object schema whose properties are the value-bearing
// fields, keyed by field name.
func objectOf(fields []map[string]any) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for _, field := range fields {
		name := cast.ToString(field["name"])
		property := FieldSchema(field)
		if name == "" || property == nil {
			continue
		}
		schema.WithProperty(name, property)
		if cast.ToBool(field["required"]) {
			schema.Required = append(schema.Required, name)
		}
	}
	return schema
}
