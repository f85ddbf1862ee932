package profile

import (
	"fmt"
	"strings"

	"github.com/abhisek/minatbakat/internal/quiz"
)

// Recommendation is a suggested major or career with a short rationale.
type Recommendation struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// Profile is a pre-authored recommendation record keyed by an
// (MBTI type, RIASEC code) pair.
type Profile struct {
	MBTIType   string `json:"mbti_type" yaml:"mbti_type"`
	RIASECCode string `json:"riasec_code" yaml:"riasec_code"`

	Title         string `json:"profile_title" yaml:"profile_title"`
	Tagline       string `json:"profile_tagline" yaml:"profile_tagline"`
	ReasonWhy     string `json:"reason_why" yaml:"reason_why"`
	WhatThisMeans string `json:"what_this_means" yaml:"what_this_means"`

	Strengths  []string `json:"strengths" yaml:"strengths"`
	Weaknesses []string `json:"weaknesses" yaml:"weaknesses"`

	RecommendedMajors     []Recommendation `json:"recommended_majors" yaml:"recommended_majors"`
	CareerRecommendations []Recommendation `json:"career_recommendations" yaml:"career_recommendations"`
}

// MajorNames joins the recommended major names with ", ".
func (p Profile) MajorNames() string {
	names := make([]string, len(p.RecommendedMajors))
	for i, m := range p.RecommendedMajors {
		names[i] = m.Name
	}
	return strings.Join(names, ", ")
}

// Key returns "TYPE/CODE".
func (p Profile) Key() string {
	return p.MBTIType + "/" + p.RIASECCode
}

// Validate checks the lookup keys are well-formed.
func (p Profile) Validate() error {
	if err := validateMBTIType(p.MBTIType); err != nil {
		return fmt.Errorf("profile %s: %w", p.Key(), err)
	}
	if err := validateRIASECCode(p.RIASECCode); err != nil {
		return fmt.Errorf("profile %s: %w", p.Key(), err)
	}
	return nil
}

func validateMBTIType(t string) error {
	if len(t) != len(quiz.Axes) {
		return fmt.Errorf("mbti_type must have %d letters", len(quiz.Axes))
	}
	for i, ax := range quiz.Axes {
		l := quiz.Letter(t[i : i+1])
		if l != ax.First && l != ax.Second {
			return fmt.Errorf("mbti_type letter %d must be %s or %s", i+1, ax.First, ax.Second)
		}
	}
	return nil
}

func validateRIASECCode(c string) error {
	if len(c) < 2 || len(c) > 3 {
		return fmt.Errorf("riasec_code must have 2 or 3 letters")
	}
	seen := make(map[byte]bool, len(c))
	for i := 0; i < len(c); i++ {
		if !quiz.IsRIASEC(quiz.Letter(c[i : i+1])) {
			return fmt.Errorf("riasec_code letter %q is not one of RIASEC", c[i])
		}
		if seen[c[i]] {
			return fmt.Errorf("riasec_code repeats %q", c[i])
		}
		seen[c[i]] = true
	}
	return nil
}
