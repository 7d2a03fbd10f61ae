package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBaseURL = "https://schemas.gooddata.com/api/v1/"

// EmbeddedSchemas maps model names to their bundled JSON Schema documents.
var EmbeddedSchemas = map[string]string{
	"ChatRequest":               "chat-request.json",
	"SmtpDestination":           "smtp-destination.json",
	"ExecutionResultGrandTotal": "execution-result-grand-total.json",
}

// Compile compiles the embedded JSON Schema document for a model name.
func Compile(name string) (*jsonschema.Schema, error) {
	file, ok := EmbeddedSchemas[name]
	if !ok {
		return nil, fmt.Errorf("no embedded schema for model %q", name)
	}

	data, err := schemaFS.ReadFile("schemas/" + file)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	url := schemaBaseURL + file
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", file, err)
	}
	return compiled, nil
}

// ValidateDocument validates a raw payload against the embedded JSON Schema
// for the named model.
func ValidateDocument(name string, data []byte) error {
	compiled, err := Compile(name)
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("document does not conform to %s: %w", name, err)
	}
	return nil
}
