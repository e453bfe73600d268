package param

import "strings"

// Type is the closed set of parameter kinds the widget renderer understands.
type Type string

const (
	TypeString  Type = "string"
	TypeNumeric Type = "numeric"
	TypeBoolean Type = "boolean"
)

// ParseType maps a loose type label onto the enumeration. Integer, float and
// char labels from upstream data all collapse into TypeNumeric; anything
// unrecognized falls back to TypeString so rendering degrades to a plain text
// box instead of failing.
func ParseType(raw string) Type {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "numeric", "number", "integer", "int", "float", "double", "char":
		return TypeNumeric
	case "boolean", "bool":
		return TypeBoolean
	default:
		return TypeString
	}
}

// Descriptor is the read-only view of a parameter definition consumed by
// renderers. Implementations must be safe for concurrent use; renderers never
// mutate them.
type Descriptor interface {
	Name() string
	Type() Type
	IsList() bool
	Delimiter() string
	AllowedValues() []string
	Default() Value
	Description() string
}

// Definition is the canonical Descriptor implementation. It is immutable once
// constructed; build one through NewDefinition and the DefinitionOption
// helpers, or through the explicit adapters (FromLegacy, catalog, openapi).
type Definition struct {
	name        string
	typ         Type
	isList      bool
	delimiter   string
	allowed     []string
	def         Value
	description string
}

// DefinitionOption configures optional descriptor attributes.
type DefinitionOption func(*Definition)

// AsList marks the parameter as accepting multiple values joined by the
// given delimiter when rendered as flat text.
func AsList(delimiter string) DefinitionOption {
	return func(d *Definition) {
		d.isList = true
		d.delimiter = delimiter
	}
}

// WithAllowedValues constrains the parameter to the given ordered set of
// scalar values. Empty entries are kept verbatim; order is preserved.
func WithAllowedValues(values ...string) DefinitionOption {
	return func(d *Definition) {
		d.allowed = append([]string(nil), values...)
	}
}

// WithDefault supplies the value used when no current value is provided.
func WithDefault(value Value) DefinitionOption {
	return func(d *Definition) {
		d.def = value
	}
}

// WithDescription attaches help text shown next to the rendered control.
func WithDescription(text string) DefinitionOption {
	return func(d *Definition) {
		d.description = strings.TrimSpace(text)
	}
}

// NewDefinition constructs an immutable parameter definition.
func NewDefinition(name string, typ Type, options ...DefinitionOption) Definition {
	def := Definition{
		name: strings.TrimSpace(name),
		typ:  typ,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&def)
	}
	return def
}

func (d Definition) Name() string        { return d.name }
func (d Definition) Type() Type          { return d.typ }
func (d Definition) IsList() bool        { return d.isList }
func (d Definition) Delimiter() string   { return d.delimiter }
func (d Definition) Default() Value      { return d.def }
func (d Definition) Description() string { return d.description }

// AllowedValues returns the ordered allowed-value set, or nil when the
// parameter is free-form. The returned slice is a copy.
func (d Definition) AllowedValues() []string {
	if len(d.allowed) == 0 {
		return nil
	}
	return append([]string(nil), d.allowed...)
}
