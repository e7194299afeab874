package llm

import (
	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects a JSON schema for T with every definition inlined.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
