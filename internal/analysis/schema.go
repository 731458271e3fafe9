package analysis

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

var scoreSchema = map[string]any{"type": []any{"number", "string", "null"}}

var competitorListSchema = map[string]any{
	"type": []any{"array", "null"},
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"company_name":   map[string]any{"type": "string", "minLength": 1},
			"company_domain": map[string]any{"type": []any{"string", "null"}},
			"company_score":  scoreSchema,
		},
		"required": []any{"company_name"},
	},
}

var payloadSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"pointAverage":       scoreSchema,
		"pointDS":            scoreSchema,
		"pointGM":            scoreSchema,
		"pointGPT":           scoreSchema,
		"competitor_listDP":  competitorListSchema,
		"competitor_listGM":  competitorListSchema,
		"competitor_listGPT": competitorListSchema,
		"checklist": map[string]any{
			"type": []any{"array", "null"},
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":     map[string]any{"type": "string", "minLength": 1},
					"category": map[string]any{"type": []any{"string", "null"}},
					"weight":   scoreSchema,
					"score":    scoreSchema,
				},
				"required": []any{"name"},
			},
		},
		"companyName":   map[string]any{"type": []any{"string", "null"}},
		"companyDomain": map[string]any{"type": []any{"string", "null"}},
	},
}

// ValidatePayload checks the known fields of a decoded payload object and
// returns one message per mismatch. Mismatches are advisory: Decode still
// reads whatever it can.
func ValidatePayload(payload map[string]any) []string {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(payloadSchema),
		gojsonschema.NewGoLoader(payload),
	)
	if err != nil {
		return []string{fmt.Sprintf("schema validation unavailable: %v", err)}
	}
	if result.Valid() {
		return nil
	}
	warnings := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		warnings = append(warnings, desc.String())
	}
	return warnings
}
