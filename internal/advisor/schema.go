package advisor

import "github.com/abhisek/minatbakat/internal/llm"

// AdviceSchema defines the JSON schema for a counselor note.
var AdviceSchema = &llm.Schema{
	Name:        "counselor-advice",
	Description: "A short career counselor note for a high-school student without a matching profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentences in casual Indonesian describing what the combination suggests",
			},
			"majors": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"maxItems":    5,
				"description": "3-5 university majors worth exploring, in Indonesian",
			},
			"next_step": map[string]any{
				"type":        "string",
				"description": "One concrete thing the student can do this week",
			},
		},
		"required":             []any{"summary", "majors", "next_step"},
		"additionalProperties": false,
	},
}
