// Package tui drives the same widget-selection logic as the HTML renderer
// through terminal prompts: select menus become single-select prompts,
// checkbox groups become multi-selects, booleans become confirms, and the
// text and numeric boxes become line inputs.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-paramwidget/pkg/render"
	"github.com/goliatone/go-paramwidget/pkg/widgets"
)

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	registry     *widgets.Registry
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		registry:     widgets.NewRegistry(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatFormURLEncoded {
		return "application/x-www-form-urlencoded"
	}
	return "application/json"
}

// Render prompts for the parameter and returns the collected answer in the
// configured serialization. Interrupts surface as ErrAborted.
func (r *Renderer) Render(ctx context.Context, req render.Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Descriptor == nil {
		return nil, errors.New("tui: request descriptor is nil")
	}

	kind, ok := r.registry.Resolve(req.Descriptor)
	if !ok {
		kind = widgets.WidgetText
	}

	name := req.FieldName()
	value := req.EffectiveValue()

	switch kind {
	case widgets.WidgetCheckboxGroup:
		allowed := req.Descriptor.AllowedValues()
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  name,
			Options:  allowed,
			Defaults: indicesOf(allowed, value.SelectedSet()),
			Help:     req.Descriptor.Description(),
		})
		if err != nil {
			return nil, err
		}
		selected := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(allowed) {
				selected = append(selected, allowed[idx])
			}
		}
		return r.serializeGroup(name, selected)

	case widgets.WidgetSelect:
		allowed := req.Descriptor.AllowedValues()
		defaultIdx := -1
		for _, entry := range value.SelectedSet() {
			if idx := indexOf(allowed, entry); idx >= 0 {
				defaultIdx = idx
				break
			}
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      name,
			Options:      allowed,
			DefaultIndex: defaultIdx,
			Help:         req.Descriptor.Description(),
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(allowed) {
			return r.serializeScalar(name, "")
		}
		return r.serializeScalar(name, allowed[idx])

	case widgets.WidgetCheckbox:
		answer, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: name,
			Default: value.Truthy(),
			Help:    req.Descriptor.Description(),
		})
		if err != nil {
			return nil, err
		}
		return r.serializeScalar(name, strconv.FormatBool(answer))

	case widgets.WidgetNumeric:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   name,
			Default:   value.Flatten(req.Descriptor.Delimiter()),
			Help:      req.Descriptor.Description(),
			Validator: validateNumeric,
		})
		if err != nil {
			return nil, err
		}
		return r.serializeScalar(name, answer)

	default:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message: name,
			Default: value.Flatten(req.Descriptor.Delimiter()),
			Help:    req.Descriptor.Description(),
		})
		if err != nil {
			return nil, err
		}
		return r.serializeScalar(name, answer)
	}
}

func validateNumeric(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
		return fmt.Errorf("expected a number, got %q", raw)
	}
	return nil
}

func (r *Renderer) serializeScalar(name, value string) ([]byte, error) {
	if r.outputFormat == OutputFormatFormURLEncoded {
		values := url.Values{}
		values.Set(name, value)
		return []byte(values.Encode()), nil
	}
	return json.Marshal(map[string]any{name: value})
}

// serializeGroup mirrors the composite submission keys of the HTML checkbox
// group in the urlencoded format; the JSON format carries the selected set
// as an array under the logical field name.
func (r *Renderer) serializeGroup(name string, selected []string) ([]byte, error) {
	if r.outputFormat == OutputFormatFormURLEncoded {
		values := url.Values{}
		for _, entry := range selected {
			values.Set(fmt.Sprintf("%s[%s]", name, entry), "1")
		}
		return []byte(values.Encode()), nil
	}
	return json.Marshal(map[string]any{name: selected})
}
