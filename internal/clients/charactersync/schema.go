package charactersync

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const loadSchemaURL = "https://dnd-character-sheet/schemas/character-load.json"

// loadResponseSchema describes the GET payload. Other top-level fields such
// as statusCode are allowed and ignored.
const loadResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["body"],
  "properties": {
    "body": {
      "type": "object",
      "required": ["attributes", "skills"],
      "properties": {
        "attributes": {
          "type": "object",
          "additionalProperties": { "type": "integer" }
        },
        "skills": {
          "type": "object",
          "additionalProperties": { "type": "integer" }
        }
      }
    }
  }
}`

var loadSchema = jsonschema.MustCompileString(loadSchemaURL, loadResponseSchema)
