// Package widgets maps parameter descriptors onto widget kinds. Selection is
// a priority-ordered matcher pass; the first matching rule wins and the text
// box rule matches everything, so resolution is total.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-paramwidget/pkg/param"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetText          = "text"
	WidgetNumeric       = "numeric"
	WidgetCheckbox      = "checkbox"
	WidgetSelect        = "select"
	WidgetCheckboxGroup = "checkbox-group"
)

// Matcher decides whether a widget should handle the supplied descriptor.
type Matcher func(descriptor param.Descriptor) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widget kinds for descriptors based on registered
// matchers. Higher priority wins; ties fall back to registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence over the built-ins.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget kind for a descriptor. With the built-ins
// registered, resolution never fails: descriptors outside the known type
// enumeration land on the text box.
func (r *Registry) Resolve(descriptor param.Descriptor) (string, bool) {
	if r == nil || descriptor == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(descriptor) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetCheckboxGroup, 90, func(d param.Descriptor) bool {
		return len(d.AllowedValues()) > 0 && d.IsList()
	})

	r.Register(WidgetSelect, 80, func(d param.Descriptor) bool {
		return len(d.AllowedValues()) > 0 && !d.IsList()
	})

	r.Register(WidgetNumeric, 70, func(d param.Descriptor) bool {
		return d.Type() == param.TypeNumeric
	})

	r.Register(WidgetCheckbox, 60, func(d param.Descriptor) bool {
		return d.Type() == param.TypeBoolean
	})

	// Everything else, including list parameters without an allowed-value
	// set and descriptors with unrecognized types, is a plain text box.
	r.Register(WidgetText, 10, func(param.Descriptor) bool {
		return true
	})
}
