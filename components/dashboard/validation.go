package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const manifestSchemaName = "page-manifest.json"

// ManifestSchema is the JSON schema every page manifest must satisfy.
const ManifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "pages"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "enum": ["1"]},
    "name": {"type": "string"},
    "pages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "title_localized": {"type": "object", "additionalProperties": {"type": "string"}},
          "description": {"type": "string"},
          "position": {"type": "integer", "minimum": 0},
          "order": {"type": "array", "items": {"type": "string", "minLength": 1}},
          "filters": {"type": "object", "additionalProperties": {"type": "string"}},
          "notify": {"type": "boolean"}
        }
      }
    }
  }
}`

var (
	manifestSchemaOnce sync.Once
	manifestSchema     *jsonschema.Schema
	manifestSchemaErr  error
)

func compiledManifestSchema() (*jsonschema.Schema, error) {
	manifestSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(manifestSchemaName, strings.NewReader(ManifestSchema)); err != nil {
			manifestSchemaErr = fmt.Errorf("dashboard: load manifest schema: %w", err)
			return
		}
		manifestSchema, manifestSchemaErr = compiler.Compile(manifestSchemaName)
		if manifestSchemaErr != nil {
			manifestSchemaErr = fmt.Errorf("dashboard: compile manifest schema: %w", manifestSchemaErr)
		}
	})
	return manifestSchema, manifestSchemaErr
}

// ValidateManifestSchema checks the JSON form of doc against ManifestSchema.
func ValidateManifestSchema(doc *PageManifestDocument) error {
	schema, err := compiledManifestSchema()
	if err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("dashboard: marshal manifest: %w", err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("dashboard: normalize manifest: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return nil
}
