package quiz

import (
	"errors"
	"strings"
)

// Participant is the identity captured on the user-info screen.
type Participant struct {
	Name   string `json:"name"`
	School string `json:"school"`
	Grade  string `json:"grade"`
}

// Normalize trims surrounding whitespace from every field.
func (p Participant) Normalize() Participant {
	return Participant{
		Name:   strings.TrimSpace(p.Name),
		School: strings.TrimSpace(p.School),
		Grade:  strings.TrimSpace(p.Grade),
	}
}

// Validate requires all three fields after trimming.
func (p Participant) Validate() error {
	n := p.Normalize()
	var errs []error
	if n.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if n.School == "" {
		errs = append(errs, errors.New("school is required"))
	}
	if n.Grade == "" {
		errs = append(errs, errors.New("grade is required"))
	}
	return errors.Join(errs...)
}
