package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/quiz"
	"github.com/abhisek/minatbakat/internal/scoring"
)

// Section titles, as shown on the result screen.
const (
	HeadingFor        = "Laporan Minat Bakat untuk:"
	HeadingWhy        = "Kenapa Hasilmu Kayak Gini?"
	HeadingMeaning    = "Terus, Ini Artinya Apa Buat Kamu?"
	HeadingStrengths  = "Kekuatanmu"
	HeadingWeaknesses = "Potensi Kelemahanmu"
	HeadingMajors     = "Rekomendasi Jurusan Kuliah"
	HeadingCareers    = "Rekomendasi Karir"
	HeadingAnalysis   = "Analisis Jawaban Kamu"
	HeadingRIASECBars = "Skor RIASEC Kamu"
	HeadingMBTIBars   = "Preferensi MBTI Kamu"

	NotFoundTitle = "Profil Nggak Ditemukan :("
)

// Input is everything Build needs.
type Input struct {
	Participant quiz.Participant
	MBTI        scoring.MBTIResult
	RIASEC      scoring.RIASECResult
	Profile     profile.Profile
	Found       bool
}

// Report is the renderable result. It carries no behavior; the TUI, the
// score command and the HTTP endpoint each present it their own way.
type Report struct {
	Participant quiz.Participant `json:"participant"`
	MBTIType    string           `json:"mbti_type"`
	RIASECCode  string           `json:"riasec_code"`
	Found       bool             `json:"found"`

	Title         string   `json:"title,omitempty"`
	Tagline       string   `json:"tagline,omitempty"`
	ReasonWhy     string   `json:"reason_why,omitempty"`
	WhatThisMeans string   `json:"what_this_means,omitempty"`
	Strengths     []string `json:"strengths,omitempty"`
	Weaknesses    []string `json:"weaknesses,omitempty"`

	Majors  []profile.Recommendation `json:"majors,omitempty"`
	Careers []profile.Recommendation `json:"careers,omitempty"`

	// Fallback is set only when no profile matched.
	Fallback string `json:"fallback,omitempty"`

	// Advice is an optional counselor note attached after Build.
	Advice string `json:"advice,omitempty"`

	RIASECBars []Bar `json:"riasec_bars"`
	MBTIBars   []Bar `json:"mbti_bars"`
}

// Build assembles a Report. A missing profile yields the fallback message
// instead of an error.
func Build(in Input) Report {
	r := Report{
		Participant: in.Participant,
		MBTIType:    in.MBTI.Type,
		RIASECCode:  in.RIASEC.Code,
		Found:       in.Found,
		RIASECBars:  Bars(in.RIASEC.Scores),
		MBTIBars:    Bars(in.MBTI.Scores),
	}

	if !in.Found {
		r.Fallback = FallbackMessage(in.MBTI.Type, in.RIASEC.Code)
		return r
	}

	p := in.Profile
	r.Title = p.Title
	r.Tagline = p.Tagline
	r.ReasonWhy = p.ReasonWhy
	r.WhatThisMeans = p.WhatThisMeans
	r.Strengths = p.Strengths
	r.Weaknesses = p.Weaknesses
	r.Majors = p.RecommendedMajors
	r.Careers = p.CareerRecommendations
	return r
}

// FallbackMessage is the "no recommendation" text for a type/code pair.
func FallbackMessage(mbtiType, riasecCode string) string {
	return fmt.Sprintf("Duh, kayaknya belum ada rekomendasi yang pas banget buat kombinasi hasilmu (%s / %s).",
		mbtiType, riasecCode)
}

// Subtitle is the "TYPE / CODE - tagline" line under the title.
func (r Report) Subtitle() string {
	if r.Tagline == "" {
		return fmt.Sprintf("%s / %s", r.MBTIType, r.RIASECCode)
	}
	return fmt.Sprintf("%s / %s - %s", r.MBTIType, r.RIASECCode, r.Tagline)
}

// MajorNames joins the recommended major names with ", ".
func (r Report) MajorNames() string {
	names := make([]string, len(r.Majors))
	for i, m := range r.Majors {
		names[i] = m.Name
	}
	return strings.Join(names, ", ")
}
