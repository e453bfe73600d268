// Package openapi derives parameter definitions from OpenAPI component
// schemas. Primitive schemas map onto the parameter type enumeration, enums
// become allowed-value sets, and array schemas become list parameters
// carrying their item enumeration.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-paramwidget/pkg/param"
)

// DefaultListDelimiter joins list values rendered as flat text when the
// schema carries no delimiter hint.
const DefaultListDelimiter = ","

const delimiterExtensionKey = "x-delimiter"

// Definitions extracts parameter definitions from the component schemas of
// an OpenAPI document, sorted by schema name. Object schemas and schemas
// without a usable primitive type are skipped.
func Definitions(ctx context.Context, data []byte) ([]param.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	definitions := make([]param.Definition, 0, len(names))
	for _, name := range names {
		def, ok := DefinitionFromSchema(name, spec.Components.Schemas[name])
		if !ok {
			continue
		}
		definitions = append(definitions, def)
	}
	if len(definitions) == 0 {
		return nil, errors.New("openapi: no renderable parameter schemas found")
	}
	return definitions, nil
}

// DefinitionFromSchema converts a single schema into a parameter definition.
// The second return is false when the schema has no form-friendly shape
// (objects, references without values, untyped schemas with no enum).
func DefinitionFromSchema(name string, ref *openapi3.SchemaRef) (param.Definition, bool) {
	if strings.TrimSpace(name) == "" || ref == nil || ref.Value == nil {
		return param.Definition{}, false
	}
	src := ref.Value

	schemaType := firstSchemaType(src.Type)
	if schemaType == "array" {
		return listDefinition(name, src)
	}
	if schemaType == "object" {
		return param.Definition{}, false
	}

	options := scalarOptions(src)
	if src.Default != nil {
		options = append(options, param.WithDefault(param.CoerceValue(src.Default)))
	}
	return param.NewDefinition(name, mapType(schemaType), options...), true
}

func listDefinition(name string, src *openapi3.Schema) (param.Definition, bool) {
	if src.Items == nil || src.Items.Value == nil {
		return param.Definition{}, false
	}
	item := src.Items.Value

	options := []param.DefinitionOption{param.AsList(delimiterFor(src))}
	options = append(options, scalarOptions(item)...)
	if src.Default != nil {
		options = append(options, param.WithDefault(param.CoerceValue(src.Default)))
	}
	return param.NewDefinition(name, mapType(firstSchemaType(item.Type)), options...), true
}

func scalarOptions(src *openapi3.Schema) []param.DefinitionOption {
	var options []param.DefinitionOption
	if len(src.Enum) > 0 {
		allowed := make([]string, 0, len(src.Enum))
		for _, entry := range src.Enum {
			allowed = append(allowed, fmt.Sprint(entry))
		}
		options = append(options, param.WithAllowedValues(allowed...))
	}
	if src.Description != "" {
		options = append(options, param.WithDescription(src.Description))
	}
	return options
}

func delimiterFor(src *openapi3.Schema) string {
	if raw, ok := src.Extensions[delimiterExtensionKey]; ok {
		if s, ok := raw.(string); ok && s != "" {
			return s
		}
	}
	return DefaultListDelimiter
}

func mapType(schemaType string) param.Type {
	switch schemaType {
	case "integer", "number":
		return param.TypeNumeric
	case "boolean":
		return param.TypeBoolean
	default:
		return param.TypeString
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
