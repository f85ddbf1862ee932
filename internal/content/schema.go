package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// QuestionsSchema describes questions.json.
var QuestionsSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":     map[string]any{"type": "integer"},
			"text":   map[string]any{"type": "string", "minLength": 1},
			"type":   map[string]any{"enum": []any{"mbti", "riasec"}},
			"contoh": map[string]any{"type": "string"},
			"positive_for": map[string]any{
				"enum": []any{"E", "I", "S", "N", "T", "F", "P", "J"},
			},
			"dimension": map[string]any{
				"enum": []any{"R", "I", "A", "S", "E", "C"},
			},
		},
		"required": []any{"id", "text", "type"},
		"allOf": []any{
			map[string]any{
				"if":   map[string]any{"properties": map[string]any{"type": map[string]any{"const": "mbti"}}},
				"then": map[string]any{"required": []any{"positive_for"}},
			},
			map[string]any{
				"if":   map[string]any{"properties": map[string]any{"type": map[string]any{"const": "riasec"}}},
				"then": map[string]any{"required": []any{"dimension"}},
			},
		},
	},
}

var recommendationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":   map[string]any{"type": "string", "minLength": 1},
		"reason": map[string]any{"type": "string"},
	},
	"required": []any{"name"},
}

// ProfilesSchema describes recommendations.json.
var ProfilesSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mbti_type":       map[string]any{"type": "string", "pattern": "^[EI][SN][TF][PJ]$"},
			"riasec_code":     map[string]any{"type": "string", "pattern": "^[RIASEC]{2,3}$"},
			"profile_title":   map[string]any{"type": "string"},
			"profile_tagline": map[string]any{"type": "string"},
			"reason_why":      map[string]any{"type": "string"},
			"what_this_means": map[string]any{"type": "string"},
			"strengths":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"weaknesses":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"recommended_majors": map[string]any{
				"type": "array", "items": recommendationSchema,
			},
			"career_recommendations": map[string]any{
				"type": "array", "items": recommendationSchema,
			},
		},
		"required": []any{"mbti_type", "riasec_code", "profile_title"},
	},
}

var compiled sync.Map // name -> *jsonschema.Schema

// validate checks raw JSON against the named schema definition.
func validate(name string, def map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compile(name, def)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compile(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := compiled.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// Round-trip so the compiler sees plain JSON values ([]any, float64).
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(defBytes, &doc); err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	compiled.Store(name, sch)
	return sch, nil
}
