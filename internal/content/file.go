package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/quiz"
)

// FileSource reads content from a local directory. For each payload it
// takes the first of <base>.json, <base>.yaml, <base>.yml that exists.
type FileSource struct {
	Dir string
}

var _ Source = (*FileSource)(nil)

func (s *FileSource) Questions(_ context.Context) (*quiz.Bank, error) {
	raw, err := s.read("questions")
	if err != nil {
		return nil, &LoadError{What: WhatQuestions, Err: err}
	}
	bank, err := DecodeQuestions(raw)
	if err != nil {
		return nil, &LoadError{What: WhatQuestions, Err: err}
	}
	return bank, nil
}

func (s *FileSource) Profiles(_ context.Context) (profile.Table, error) {
	raw, err := s.read("recommendations")
	if err != nil {
		return nil, &LoadError{What: WhatProfiles, Err: err}
	}
	t, err := DecodeProfiles(raw)
	if err != nil {
		return nil, &LoadError{What: WhatProfiles, Err: err}
	}
	return t, nil
}

// read returns the payload as JSON bytes, converting YAML when needed.
func (s *FileSource) read(base string) ([]byte, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(s.Dir, base+ext)
		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if ext == ".json" {
			return raw, nil
		}
		return yamlToJSON(raw)
	}
	return nil, fmt.Errorf("no %s.{json,yaml,yml} in %s", base, s.Dir)
}
