package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-paramwidget/pkg/catalog"
	"github.com/goliatone/go-paramwidget/pkg/param"
	"github.com/goliatone/go-paramwidget/pkg/render"
	renderhtml "github.com/goliatone/go-paramwidget/pkg/renderers/html"
	rendertui "github.com/goliatone/go-paramwidget/pkg/renderers/tui"
)

func main() {
	definitions := flag.String("definitions", "parameters.yaml", "parameter definitions file (YAML or JSON)")
	name := flag.String("name", "", "parameter name to render")
	value := flag.String("value", "", "current value override (omit the flag to keep the default)")
	rendererName := flag.String("renderer", "html", "renderer to use (html or tui)")
	inputName := flag.String("input-name", "", "submission key override")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	if *name == "" {
		log.Fatalf("a parameter -name is required")
	}

	dir, file := filepath.Split(*definitions)
	if dir == "" {
		dir = "."
	}
	store, err := catalog.LoadFS(os.DirFS(dir))
	if err != nil {
		log.Fatalf("load definitions: %v", err)
	}
	if store.Len() == 0 {
		log.Fatalf("no parameter definitions found in %s", file)
	}

	descriptor, ok := store.Get(*name)
	if !ok {
		log.Fatalf("parameter %q not defined (known: %v)", *name, store.Names())
	}

	registry := render.NewRegistry()
	htmlRenderer, err := renderhtml.New()
	if err != nil {
		log.Fatalf("configure html renderer: %v", err)
	}
	registry.MustRegister(htmlRenderer)
	tuiRenderer, err := rendertui.New()
	if err != nil {
		log.Fatalf("configure tui renderer: %v", err)
	}
	registry.MustRegister(tuiRenderer)

	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("pick renderer: %v", err)
	}

	req := render.Request{
		Descriptor: descriptor,
		Value:      currentValue(flag.CommandLine, *value),
		InputName:  *inputName,
	}

	fragment, err := renderer.Render(ctx, req)
	if err != nil {
		log.Fatalf("render %q: %v", *name, err)
	}

	writeFragment(*output, fragment)
}

// currentValue resolves the -value flag. An omitted flag keeps the
// descriptor default; a present flag is an explicit override, including the
// empty string.
func currentValue(fs *flag.FlagSet, raw string) param.Value {
	provided := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "value" {
			provided = true
		}
	})
	if !provided {
		return param.Unset()
	}
	return param.Scalar(raw)
}

func writeFragment(output string, fragment []byte) {
	if output != "" {
		if err := os.WriteFile(output, fragment, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("control written to %s\n", output)
		return
	}
	fmt.Println(string(fragment))
}
