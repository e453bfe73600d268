// Package markup provides the HTML element and attribute primitives the
// widget renderers build fragments with. All attribute values and text
// content pass through html.EscapeString; callers hand over raw strings and
// receive escaped markup.
package markup

import (
	"html"
	"strings"
)

// Attr is a single element attribute. Boolean attributes (checked, selected)
// carry no value and are emitted as the bare attribute name.
type Attr struct {
	Key     string
	Value   string
	boolean bool
}

// Flag returns a value-less boolean attribute such as "checked".
func Flag(key string) Attr {
	return Attr{Key: key, boolean: true}
}

// Void renders a self-closing element: <tag key="value" />.
func Void(tag string, attrs ...Attr) string {
	var b strings.Builder
	b.Grow(len(tag) + 16*len(attrs) + 8)
	b.WriteByte('<')
	b.WriteString(tag)
	writeAttrs(&b, attrs)
	b.WriteString(" />")
	return b.String()
}

// Container renders an element wrapping pre-rendered (already escaped) body
// markup. Use Text to escape literal content first.
func Container(tag, body string, attrs ...Attr) string {
	var b strings.Builder
	b.Grow(len(tag)*2 + len(body) + 16*len(attrs) + 8)
	b.WriteByte('<')
	b.WriteString(tag)
	writeAttrs(&b, attrs)
	b.WriteByte('>')
	b.WriteString(body)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String()
}

// Text escapes a literal string for HTML text context.
func Text(raw string) string {
	return html.EscapeString(raw)
}

// Input renders a self-closing <input> with the given type, name and value.
// Extra attributes follow the fixed three in declaration order.
func Input(inputType, name, value string, extra ...Attr) string {
	attrs := make([]Attr, 0, 3+len(extra))
	attrs = append(attrs,
		Attr{Key: "type", Value: inputType},
		Attr{Key: "name", Value: name},
		Attr{Key: "value", Value: value},
	)
	attrs = append(attrs, extra...)
	return Void("input", attrs...)
}

// Checkbox renders a checkbox input bound to name, marked checked when asked.
func Checkbox(name string, checked bool, extra ...Attr) string {
	attrs := make([]Attr, 0, 3+len(extra))
	attrs = append(attrs,
		Attr{Key: "type", Value: "checkbox"},
		Attr{Key: "name", Value: name},
		Attr{Key: "value", Value: "1"},
	)
	attrs = append(attrs, extra...)
	if checked {
		attrs = append(attrs, Flag("checked"))
	}
	return Void("input", attrs...)
}

// Option renders a <option> entry. Value and label are escaped; the selected
// flag is emitted as a bare attribute.
func Option(value, label string, selected bool) string {
	attrs := []Attr{{Key: "value", Value: value}}
	if selected {
		attrs = append(attrs, Flag("selected"))
	}
	return Container("option", Text(label), attrs...)
}

func writeAttrs(b *strings.Builder, attrs []Attr) {
	for _, attr := range attrs {
		if attr.Key == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		if attr.boolean {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.Value))
		b.WriteByte('"')
	}
}
