package labelfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// manifestSchema accepts either a full manifest object or a bare label
// array, mirroring the two document shapes the loader supports.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "oneOf": [
    {"$ref": "#/$defs/manifest"},
    {"$ref": "#/$defs/labelList"}
  ],
  "$defs": {
    "manifest": {
      "type": "object",
      "properties": {
        "labels": {"$ref": "#/$defs/labelList"},
        "ignore": {"type": "array", "items": {"type": "string", "minLength": 1}},
        "delete": {"type": "array", "items": {"type": "string", "minLength": 1}}
      },
      "required": ["labels"],
      "additionalProperties": false
    },
    "labelList": {
      "type": "array",
      "items": {"$ref": "#/$defs/label"}
    },
    "label": {
      "type": "object",
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "color": {"type": "string", "pattern": "^$|^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$"},
        "description": {"type": "string", "maxLength": 100},
        "aliases": {"type": "array", "items": {"type": "string", "minLength": 1}}
      },
      "required": ["name"],
      "additionalProperties": false
    }
  }
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

func schema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(manifestSchema)))
		if err != nil {
			compileSchemaError = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("labels.schema.json", doc); err != nil {
			compileSchemaError = err
			return
		}
		compiledSchema, compileSchemaError = compiler.Compile("labels.schema.json")
	})
	return compiledSchema, compileSchemaError
}

// ValidateSchema checks a decoded manifest document against the manifest
// schema. The document is round-tripped through JSON so YAML and TOML
// decodings validate identically.
func ValidateSchema(doc any) error {
	sch, err := schema()
	if err != nil {
		return fmt.Errorf("compiling manifest schema: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("manifest is not schema-checkable: %w", err)
	}
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("manifest is not schema-checkable: %w", err)
	}
	if err := sch.Validate(value); err != nil {
		return fmt.Errorf("manifest does not match schema: %w", err)
	}
	return nil
}

// Schema returns the manifest JSON schema document.
func Schema() string {
	return manifestSchema
}
