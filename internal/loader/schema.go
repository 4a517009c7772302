package loader

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaURL is the identifier of the bundled group schema
const SchemaURL = "https://ytget.github.io/desktop-groups/desktopgroups.schema.json"

//go:embed desktopgroups.schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// groupSchema returns the compiled bundled schema.
// The result is cached after the first call.
func groupSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(SchemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("failed to add group schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(SchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile group schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// SchemaJSON returns a copy of the bundled schema document
func SchemaJSON() []byte {
	return bytes.Clone(schemaJSON)
}

// Validate checks a decoded document (as produced by encoding/json into an
// interface{}) against the bundled group schema
func Validate(doc interface{}) error {
	schema, err := groupSchema()
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}
