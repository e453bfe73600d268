package param

import (
	"errors"
	"fmt"
)

// Legacy key aliases accepted by FromLegacy. Older descriptor payloads used a
// handful of spellings for the same attributes.
var legacyKeyLookup = map[string]string{
	"name":      "name",
	"param":     "name",
	"type":      "type",
	"list":      "list",
	"islist":    "list",
	"delimiter": "delimiter",
	"separator": "delimiter",
	"values":    "allowed",
	"allowed":   "allowed",
	"options":   "allowed",
	"default":   "default",
	"desc":      "description",
	"help":      "description",
}

// FromLegacy converts a loose legacy descriptor map into a canonical
// Definition. Renderers only accept Descriptors; callers holding raw maps
// run them through this adapter first. A map without a usable name is the
// one unrecoverable construction failure.
func FromLegacy(raw map[string]any) (Definition, error) {
	if len(raw) == 0 {
		return Definition{}, errors.New("param: legacy descriptor is empty")
	}

	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		canonical, ok := legacyKeyLookup[normalizeKey(key)]
		if !ok {
			continue
		}
		fields[canonical] = value
	}

	name, _ := fields["name"].(string)
	if name == "" {
		return Definition{}, errors.New("param: legacy descriptor has no name")
	}

	typ := TypeString
	if rawType, ok := fields["type"].(string); ok {
		typ = ParseType(rawType)
	}

	var options []DefinitionOption
	if isList(fields["list"]) {
		delimiter, _ := fields["delimiter"].(string)
		options = append(options, AsList(delimiter))
	}
	if allowed := stringSlice(fields["allowed"]); len(allowed) > 0 {
		options = append(options, WithAllowedValues(allowed...))
	}
	if def, ok := fields["default"]; ok {
		options = append(options, WithDefault(CoerceValue(def)))
	}
	if desc, ok := fields["description"].(string); ok && desc != "" {
		options = append(options, WithDescription(desc))
	}

	return NewDefinition(name, typ, options...), nil
}

func normalizeKey(raw string) string {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		}
	}
	return string(out)
}

func isList(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1" || v == "yes"
	default:
		return false
	}
}

func stringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			out = append(out, fmt.Sprint(entry))
		}
		return out
	default:
		return nil
	}
}
