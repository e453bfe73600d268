package tui

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramwidget/pkg/param"
	"github.com/goliatone/go-paramwidget/pkg/render"
)

// fakeDriver records the prompt configurations it receives and replays
// scripted answers, so render logic can be exercised without a terminal.
type fakeDriver struct {
	inputCfg   *InputConfig
	confirmCfg *ConfirmConfig
	selectCfg  *SelectConfig
	multiCfg   *SelectConfig

	inputAnswer   string
	confirmAnswer bool
	selectAnswer  int
	multiAnswer   []int
	err           error
}

func (d *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.inputCfg = &cfg
	return d.inputAnswer, d.err
}

func (d *fakeDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.confirmCfg = &cfg
	return d.confirmAnswer, d.err
}

func (d *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.selectCfg = &cfg
	return d.selectAnswer, d.err
}

func (d *fakeDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	d.multiCfg = &cfg
	return d.multiAnswer, d.err
}

func (d *fakeDriver) Info(context.Context, string) error { return nil }

func newTestRenderer(t *testing.T, driver PromptDriver, options ...Option) *Renderer {
	t.Helper()
	opts := append([]Option{WithPromptDriver(driver)}, options...)
	renderer, err := New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func decodeJSON(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return out
}

func TestRenderTextPrompt(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{inputAnswer: "typed answer"}
	renderer := newTestRenderer(t, driver)

	descriptor := param.NewDefinition("title", param.TypeString,
		param.WithDefault(param.Scalar("fallback")),
		param.WithDescription("shown as help"))

	raw, err := renderer.Render(context.Background(), render.Request{Descriptor: descriptor})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if driver.inputCfg == nil {
		t.Fatal("input prompt never issued")
	}
	if driver.inputCfg.Default != "fallback" {
		t.Fatalf("prompt default = %q", driver.inputCfg.Default)
	}
	if driver.inputCfg.Help != "shown as help" {
		t.Fatalf("prompt help = %q", driver.inputCfg.Help)
	}
	if driver.inputCfg.Validator != nil {
		t.Fatal("text prompt should not carry the numeric validator")
	}

	got := decodeJSON(t, raw)
	if got["title"] != "typed answer" {
		t.Fatalf("answer = %v", got)
	}
}

func TestRenderNumericPrompt(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{inputAnswer: "42"}
	renderer := newTestRenderer(t, driver)

	descriptor := param.NewDefinition("amount", param.TypeNumeric)
	if _, err := renderer.Render(context.Background(), render.Request{
		Descriptor: descriptor,
		Value:      param.Scalar("7"),
	}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if driver.inputCfg == nil || driver.inputCfg.Validator == nil {
		t.Fatal("numeric prompt should carry a validator")
	}
	if driver.inputCfg.Default != "7" {
		t.Fatalf("prompt default = %q", driver.inputCfg.Default)
	}

	validator := driver.inputCfg.Validator
	for raw, wantErr := range map[string]bool{
		"42":    false,
		"-1.5":  false,
		" 10 ":  false,
		"":      false,
		"seven": true,
	} {
		if err := validator(raw); (err != nil) != wantErr {
			t.Fatalf("validator(%q) error = %v, want error %v", raw, err, wantErr)
		}
	}
}

func TestRenderConfirmPrompt(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{confirmAnswer: true}
	renderer := newTestRenderer(t, driver)

	descriptor := param.NewDefinition("enabled", param.TypeBoolean,
		param.WithDefault(param.Scalar("true")))

	raw, err := renderer.Render(context.Background(), render.Request{Descriptor: descriptor})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if driver.confirmCfg == nil {
		t.Fatal("confirm prompt never issued")
	}
	if !driver.confirmCfg.Default {
		t.Fatal("truthy default should preselect yes")
	}
	if got := decodeJSON(t, raw); got["enabled"] != "true" {
		t.Fatalf("answer = %v", got)
	}
}

func TestRenderSelectPrompt(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{selectAnswer: 2}
	renderer := newTestRenderer(t, driver)

	allowed := []string{"red", "green", "blue"}
	descriptor := param.NewDefinition("color", param.TypeString,
		param.WithAllowedValues(allowed...))

	raw, err := renderer.Render(context.Background(), render.Request{
		Descriptor: descriptor,
		Value:      param.Scalar("green"),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if driver.selectCfg == nil {
		t.Fatal("select prompt never issued")
	}
	if diff := cmp.Diff(allowed, driver.selectCfg.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if driver.selectCfg.DefaultIndex != 1 {
		t.Fatalf("default index = %d, want 1", driver.selectCfg.DefaultIndex)
	}
	if got := decodeJSON(t, raw); got["color"] != "blue" {
		t.Fatalf("answer = %v", got)
	}
}

func TestRenderSelectPromptNoCurrentValue(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{selectAnswer: 0}
	renderer := newTestRenderer(t, driver)

	descriptor := param.NewDefinition("color", param.TypeString,
		param.WithAllowedValues("red", "green"))

	if _, err := renderer.Render(context.Background(), render.Request{Descriptor: descriptor}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.selectCfg.DefaultIndex != -1 {
		t.Fatalf("default index = %d, want -1", driver.selectCfg.DefaultIndex)
	}
}

func TestRenderMultiSelectPrompt(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{multiAnswer: []int{0, 2}}
	renderer := newTestRenderer(t, driver)

	allowed := []string{"alpha", "beta", "gamma"}
	descriptor := param.NewDefinition("features", param.TypeString,
		param.AsList(","),
		param.WithAllowedValues(allowed...),
		param.WithDefault(param.List("beta")))

	raw, err := renderer.Render(context.Background(), render.Request{Descriptor: descriptor})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if driver.multiCfg == nil {
		t.Fatal("multi-select prompt never issued")
	}
	if diff := cmp.Diff([]int{1}, driver.multiCfg.Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	got := decodeJSON(t, raw)
	want := map[string]any{"features": []any{"alpha", "gamma"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("answer mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFormOutput(t *testing.T) {
	t.Parallel()

	t.Run("scalar", func(t *testing.T) {
		t.Parallel()
		driver := &fakeDriver{inputAnswer: "a b&c"}
		renderer := newTestRenderer(t, driver, WithOutputFormat(OutputFormatFormURLEncoded))

		descriptor := param.NewDefinition("title", param.TypeString)
		raw, err := renderer.Render(context.Background(), render.Request{Descriptor: descriptor})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if values.Get("title") != "a b&c" {
			t.Fatalf("decoded = %v", values)
		}
	})

	t.Run("group composite keys", func(t *testing.T) {
		t.Parallel()
		driver := &fakeDriver{multiAnswer: []int{0, 1}}
		renderer := newTestRenderer(t, driver, WithOutputFormat(OutputFormatFormURLEncoded))

		descriptor := param.NewDefinition("features", param.TypeString,
			param.AsList(","),
			param.WithAllowedValues("alpha", "beta"))

		raw, err := renderer.Render(context.Background(), render.Request{Descriptor: descriptor})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		for _, key := range []string{"features[alpha]", "features[beta]"} {
			if values.Get(key) != "1" {
				t.Fatalf("missing composite key %q in %v", key, values)
			}
		}
	})
}

func TestRenderAbort(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{err: ErrAborted}
	renderer := newTestRenderer(t, driver)

	descriptor := param.NewDefinition("title", param.TypeString)
	if _, err := renderer.Render(context.Background(), render.Request{Descriptor: descriptor}); !errors.Is(err, ErrAborted) {
		t.Fatalf("error = %v, want ErrAborted", err)
	}
}

func TestRenderGuards(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, &fakeDriver{})

	if _, err := renderer.Render(context.Background(), render.Request{}); err == nil {
		t.Fatal("expected error for nil descriptor")
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	descriptor := param.NewDefinition("title", param.TypeString)
	if _, err := renderer.Render(cancelled, render.Request{Descriptor: descriptor}); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()

	jsonRenderer := newTestRenderer(t, &fakeDriver{})
	if got := jsonRenderer.ContentType(); got != "application/json" {
		t.Fatalf("ContentType() = %q", got)
	}

	formRenderer := newTestRenderer(t, &fakeDriver{}, WithOutputFormat(OutputFormatFormURLEncoded))
	if got := formRenderer.ContentType(); got != "application/x-www-form-urlencoded" {
		t.Fatalf("ContentType() = %q", got)
	}
}
