package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/preview"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/tui"
)

func main() {
	schemaPath := flag.String("schema", "", "form schema export file (.json/.yaml)")
	openapiPath := flag.String("openapi", "", "OpenAPI document to import the form from")
	operation := flag.String("operation", "", "operation ID when importing from OpenAPI")
	output := flag.String("output", "", "output file for submitted values (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	form, err := loadForm(ctx, *schemaPath, *openapiPath, *operation)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	session, err := preview.NewSession(form)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	runner := tui.NewRunner()
	err = runner.Run(ctx, session, func(_ context.Context, values map[string]any) (preview.SubmitResult, error) {
		return preview.SubmitResult{Success: true, Data: values}, nil
	})
	if err != nil {
		log.Fatalf("Fill failed: %v", err)
	}

	payload, err := json.MarshalIndent(session.Values(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode values: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Values written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func loadForm(ctx context.Context, schemaPath, openapiPath, operation string) (schema.FormSchema, error) {
	switch {
	case schemaPath != "":
		exp, err := schema.LoadFile(schemaPath)
		if err != nil {
			return schema.FormSchema{}, err
		}
		return schema.FromExport(exp, time.Now().UTC())
	case openapiPath != "":
		if operation == "" {
			return schema.FormSchema{}, fmt.Errorf("-operation is required with -openapi")
		}
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return schema.FormSchema{}, err
		}
		return openapi.FromDocument(ctx, raw, operation)
	default:
		return schema.FormSchema{}, fmt.Errorf("one of -schema or -openapi is required")
	}
}
