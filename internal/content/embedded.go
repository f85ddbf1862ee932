package content

import (
	"context"
	_ "embed"

	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/quiz"
)

var (
	//go:embed data/questions.json
	embeddedQuestions []byte

	//go:embed data/recommendations.json
	embeddedProfiles []byte
)

// EmbeddedSource serves the content bundled into the binary.
type EmbeddedSource struct{}

var _ Source = EmbeddedSource{}

// Embedded returns the bundled source.
func Embedded() EmbeddedSource {
	return EmbeddedSource{}
}

func (EmbeddedSource) Questions(_ context.Context) (*quiz.Bank, error) {
	bank, err := DecodeQuestions(embeddedQuestions)
	if err != nil {
		return nil, &LoadError{What: WhatQuestions, Err: err}
	}
	return bank, nil
}

func (EmbeddedSource) Profiles(_ context.Context) (profile.Table, error) {
	t, err := DecodeProfiles(embeddedProfiles)
	if err != nil {
		return nil, &LoadError{What: WhatProfiles, Err: err}
	}
	return t, nil
}

// RawQuestions returns the bundled questions.json bytes.
func RawQuestions() []byte { return embeddedQuestions }

// RawProfiles returns the bundled recommendations.json bytes.
func RawProfiles() []byte { return embeddedProfiles }
