package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-modelview/pkg/model"
	"github.com/goliatone/go-modelview/pkg/openapi"
	"github.com/goliatone/go-modelview/pkg/renderers/html"
	"github.com/goliatone/go-modelview/pkg/renderers/tui"
	"github.com/goliatone/go-modelview/pkg/uischema"
	"github.com/goliatone/go-modelview/pkg/view"
)

func main() {
	source := flag.String("source", "", "OpenAPI document path; omit for the built-in demo schema")
	component := flag.String("component", "", "component schema to import from the document")
	renderer := flag.String("renderer", "tui", "renderer to use: tui or html")
	metadata := flag.String("metadata", "", "directory of uischema YAML/JSON overrides")
	output := flag.String("output", "", "output file for html (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	schema, err := loadSchema(ctx, *source, *component)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}
	record, err := model.NewRecord(schema)
	if err != nil {
		log.Fatalf("Failed to instantiate model: %v", err)
	}

	var options []view.Option
	if *metadata != "" {
		tree, err := uischema.LoadFS(os.DirFS(*metadata))
		if err != nil {
			log.Fatalf("Failed to load metadata: %v", err)
		}
		options = append(options, view.WithMetadataTree(tree))
	}

	form, err := view.Build(record, options...)
	if err != nil {
		log.Fatalf("Failed to build view: %v", err)
	}

	switch *renderer {
	case "tui":
		if err := tui.New().Run(ctx, form); err != nil {
			log.Fatalf("Session failed: %v", err)
		}
		encoded, err := json.MarshalIndent(record.Values(), "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode values: %v", err)
		}
		fmt.Println(string(encoded))
	case "html":
		r, err := html.New()
		if err != nil {
			log.Fatalf("Failed to build renderer: %v", err)
		}
		markup, err := r.Render(ctx, form)
		if err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		if *output != "" {
			if err := os.WriteFile(*output, markup, 0o644); err != nil {
				log.Fatalf("Failed to write output: %v", err)
			}
			fmt.Printf("Form written to %s\n", *output)
		} else {
			fmt.Println(string(markup))
		}
	default:
		log.Fatalf("Unknown renderer %q", *renderer)
	}
}

func loadSchema(ctx context.Context, source, component string) (*model.Schema, error) {
	if source == "" {
		return demoSchema(), nil
	}
	if component == "" {
		return nil, fmt.Errorf("-component is required with -source")
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	return openapi.SchemaFromDocument(ctx, data, component)
}

func demoSchema() *model.Schema {
	return model.MustNewSchema("profile",
		model.Attribute{Name: "username", Kind: model.KindString},
		model.Attribute{Name: "password", Kind: model.KindString, Tags: map[string]any{"secret": true}},
		model.Attribute{Name: "age", Kind: model.KindInt, Default: 25, Min: model.Bound(13), Max: model.Bound(120)},
		model.Attribute{Name: "newsletter", Kind: model.KindBool},
		model.Attribute{Name: "plan", Kind: model.KindEnum, Choices: []any{"free", "pro", "team"}},
	)
}
