package content

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/quiz"
)

// DecodeQuestions validates and decodes a questions.json payload.
func DecodeQuestions(raw []byte) (*quiz.Bank, error) {
	if err := validate("questions", QuestionsSchema, raw); err != nil {
		return nil, err
	}
	var qs []quiz.Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return quiz.NewBank(qs)
}

// DecodeProfiles validates and decodes a recommendations.json payload.
func DecodeProfiles(raw []byte) (profile.Table, error) {
	if err := validate("profiles", ProfilesSchema, raw); err != nil {
		return nil, err
	}
	var t profile.Table
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// yamlToJSON converts a YAML document to JSON so YAML content goes through
// the same schema checks.
func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	return out, nil
}
