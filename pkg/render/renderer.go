package render

import (
	"context"
	"strings"

	"github.com/goliatone/go-paramwidget/pkg/param"
)

// Request carries everything a renderer needs for one control: the parameter
// descriptor, an optional current value, and an optional submission-key
// override. Requests are plain values; rendering never mutates them, so the
// same request can be rendered any number of times.
type Request struct {
	// Descriptor is the immutable parameter definition. Required.
	Descriptor param.Descriptor
	// Value overrides the descriptor default when set. The zero Value is
	// the unset sentinel and falls back to Descriptor.Default().
	Value param.Value
	// InputName overrides the form submission key. When empty the
	// descriptor name is used. Once resolved it is used verbatim for every
	// widget variant, including the composite checkbox-group keys.
	InputName string
}

// FieldName resolves the submission key for the request.
func (r Request) FieldName() string {
	if name := strings.TrimSpace(r.InputName); name != "" {
		return name
	}
	if r.Descriptor == nil {
		return ""
	}
	return r.Descriptor.Name()
}

// EffectiveValue resolves the display value: the explicit current value when
// set, the descriptor default otherwise.
func (r Request) EffectiveValue() param.Value {
	if r.Descriptor == nil {
		return r.Value
	}
	return r.Value.Or(r.Descriptor.Default())
}

// Renderer converts a Request into a byte representation (an HTML fragment,
// a collected terminal answer, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, req Request) ([]byte, error)
}
