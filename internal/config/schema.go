package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resultTypeAdditionalProperty is the gojsonschema error type reported for unknown keys.
const resultTypeAdditionalProperty = "additional_property_not_allowed"

//go:embed schema.json
var schemaJSON string

var schema = gojsonschema.NewStringLoader(schemaJSON)

// validateDocument checks a decoded configuration document against the schema.
// Unknown keys are returned as warnings; any other violation is an error wrapping ErrConfigInvalid.
func validateDocument(doc any) ([]string, error) {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	var warnings []string
	var problems []string
	for _, re := range result.Errors() {
		if re.Type() == resultTypeAdditionalProperty {
			warnings = append(
				warnings,
				fmt.Sprintf("Unsupported key in configuration file: '%v'; ignoring", re.Details()["property"]),
			)
			continue
		}
		problems = append(problems, fmt.Sprintf("%s: %s", re.Field(), re.Description()))
	}

	if len(problems) > 0 {
		return warnings, fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(problems, "; "))
	}

	return warnings, nil
}
