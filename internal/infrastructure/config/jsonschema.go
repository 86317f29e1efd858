package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// JSONSchema returns the JSON Schema describing config.toml, for editor completion.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/schemer/config.schema.json"
	schema.Title = "schemer configuration"
	schema.Description = "Fallback color scheme, locale, logging and database settings for schemer"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
