package mcq

import (
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const responseSchemaURL = "mem://quizsheet/mcq-response.schema.json"

// responseSchemaJSON describes the upload response body. Options are bounded by the
// option letters; the generation service emits fewer than four when its fallback
// extractor only recovers part of a question.
const responseSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "mcqs": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["question", "options"],
        "properties": {
          "number": { "type": "integer" },
          "question": { "type": "string" },
          "options": {
            "type": "array",
            "minItems": 2,
            "maxItems": 4,
            "items": { "type": "string" }
          }
        }
      }
    },
    "fallback_used": { "type": "boolean" }
  }
}`

var (
	schemaOnce     sync.Once
	responseSchema *jsonschema.Schema
	schemaErr      error
)

// compiledResponseSchema compiles the embedded schema once.
func compiledResponseSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(responseSchemaURL, strings.NewReader(responseSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		responseSchema, schemaErr = compiler.Compile(responseSchemaURL)
	})
	return responseSchema, schemaErr
}
