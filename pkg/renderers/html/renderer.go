// Package html renders a single parameter as the most appropriate HTML form
// control: a text box, a numeric box, a checkbox, a select menu, or a
// checkbox group. The output is one fragment per render call; the caller
// embeds it into a larger form.
package html

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-paramwidget/pkg/markup"
	"github.com/goliatone/go-paramwidget/pkg/render"
	"github.com/goliatone/go-paramwidget/pkg/widgets"
)

const (
	defaultNumericSize = 10
	defaultTextSize    = 50
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	numericSize int
	textSize    int
	registry    *widgets.Registry
}

// WithNumericSize overrides the size hint of the narrow numeric box.
func WithNumericSize(size int) Option {
	return func(cfg *config) {
		if size > 0 {
			cfg.numericSize = size
		}
	}
}

// WithTextSize overrides the size hint of the wide generic text box.
func WithTextSize(size int) Option {
	return func(cfg *config) {
		if size > 0 {
			cfg.textSize = size
		}
	}
}

// WithWidgetRegistry injects a custom widget-selection registry.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// Renderer emits HTML form controls for parameter descriptors. It holds no
// per-render state; a single instance serves concurrent callers.
type Renderer struct {
	numericSize int
	textSize    int
	registry    *widgets.Registry
}

// New constructs the HTML widget renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		numericSize: defaultNumericSize,
		textSize:    defaultTextSize,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = widgets.NewRegistry()
	}

	return &Renderer{
		numericSize: cfg.numericSize,
		textSize:    cfg.textSize,
		registry:    cfg.registry,
	}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the media type of rendered fragments.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render satisfies render.Renderer. Rendering is a bounded allocation-only
// computation, so the context is only consulted for early cancellation.
func (r *Renderer) Render(ctx context.Context, req render.Request) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	out, err := r.RenderControl(req)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// RenderControl renders exactly one logical form control for the request.
// It is a pure function of its inputs and never fails on a well-formed
// descriptor; descriptors with unrecognized types fall through to the
// generic text box.
func (r *Renderer) RenderControl(req render.Request) (string, error) {
	if req.Descriptor == nil {
		return "", errors.New("html: request descriptor is nil")
	}

	kind, ok := r.registry.Resolve(req.Descriptor)
	if !ok {
		kind = widgets.WidgetText
	}

	var control string
	switch kind {
	case widgets.WidgetCheckboxGroup:
		control = r.checkboxGroup(req)
	case widgets.WidgetSelect:
		control = r.selectMenu(req)
	case widgets.WidgetNumeric:
		control = r.textInput(req, r.numericSize)
	case widgets.WidgetCheckbox:
		control = r.checkbox(req)
	default:
		control = r.textInput(req, r.textSize)
	}

	if desc := req.Descriptor.Description(); desc != "" {
		control += "\n" + markup.Container("small", sanitizeDescription(desc))
	}
	return control, nil
}

// textInput renders the single-line box shared by the numeric and generic
// text widgets; the two differ only in the size hint. List values reaching
// this path are flattened with the descriptor delimiter, which is the only
// place the flatten step is exercised.
func (r *Renderer) textInput(req render.Request, size int) string {
	value := req.EffectiveValue().Flatten(req.Descriptor.Delimiter())
	return markup.Input("text", req.FieldName(), value,
		markup.Attr{Key: "size", Value: strconv.Itoa(size)},
	)
}

func (r *Renderer) checkbox(req render.Request) string {
	return markup.Checkbox(req.FieldName(), req.EffectiveValue().Truthy())
}

// selectMenu renders one option per allowed value, in order, preceded by an
// empty placeholder representing "no selection". The placeholder is never
// marked selected, so an unset or empty resolved value selects nothing.
func (r *Renderer) selectMenu(req render.Request) string {
	value := req.EffectiveValue()
	allowed := req.Descriptor.AllowedValues()

	var body strings.Builder
	body.Grow(32 * (len(allowed) + 1))
	body.WriteString(markup.Option("", "", false))
	for _, entry := range allowed {
		body.WriteString(markup.Option(entry, entry, value.Contains(entry)))
	}

	return markup.Container("select", body.String(),
		markup.Attr{Key: "name", Value: req.FieldName()},
	)
}

// checkboxGroup renders one checkbox per allowed value under a composite
// submission key, inputName[value], so each selection submits independently
// and the form consumer reassembles the selected set. Every other widget
// kind uses the plain field name; the composite encoding exists because
// native form submission has no other way to carry multiple independent
// boolean selections under one logical field.
func (r *Renderer) checkboxGroup(req render.Request) string {
	value := req.EffectiveValue()
	name := req.FieldName()
	allowed := req.Descriptor.AllowedValues()

	parts := make([]string, 0, len(allowed))
	for _, entry := range allowed {
		box := markup.Checkbox(compositeKey(name, entry), value.Contains(entry))
		label := markup.Container("code", markup.Text(entry))
		parts = append(parts, markup.Container("span", box+" "+label,
			markup.Attr{Key: "style", Value: "white-space: nowrap"},
		))
	}
	return strings.Join(parts, "\n")
}

func compositeKey(name, value string) string {
	return fmt.Sprintf("%s[%s]", name, value)
}
