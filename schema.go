package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const goodSchemaURL = "https://good-importer.local/good-envelope.schema.json"

// goodEnvelopeSchema only pins down the document envelope. Individual artifact
// records are left to the mapper so one bad record cannot fail the document.
const goodEnvelopeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["artifacts"],
  "properties": {
    "format": {"const": "GOOD"},
    "version": {"type": "integer", "minimum": 1},
    "source": {"type": "string"},
    "artifacts": {"type": "array"}
  }
}`

// ErrSchema is returned by strict imports whose envelope fails validation.
var ErrSchema = errors.New("GOOD envelope does not match schema")

var (
	goodSchemaOnce sync.Once
	goodSchema     *jsonschema.Schema
	goodSchemaErr  error
)

func compiledGoodSchema() (*jsonschema.Schema, error) {
	goodSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(goodSchemaURL, strings.NewReader(goodEnvelopeSchema)); err != nil {
			goodSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		goodSchema, goodSchemaErr = compiler.Compile(goodSchemaURL)
		if goodSchemaErr != nil {
			goodSchemaErr = fmt.Errorf("compile schema: %w", goodSchemaErr)
		}
	})
	return goodSchema, goodSchemaErr
}

// validateGoodEnvelope checks raw against the GOOD envelope schema.
func validateGoodEnvelope(raw []byte) error {
	schema, err := compiledGoodSchema()
	if err != nil {
		return err
	}
	var payload any
	if err := sonic.ConfigStd.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}
