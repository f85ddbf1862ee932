package quiz

import (
	"errors"
	"fmt"
)

// Letter is a single MBTI pole (E, I, S, N, T, F, P, J) or RIASEC
// dimension (R, I, A, S, E, C). The two alphabets overlap ("I", "S", "E"),
// so a Letter only has meaning next to the Kind of the question carrying it.
type Letter string

// Kind tells which model a question feeds.
type Kind string

const (
	KindMBTI   Kind = "mbti"
	KindRIASEC Kind = "riasec"
)

// Likert bounds. 3 is the neutral midpoint.
const (
	LikertMin     = 1
	LikertNeutral = 3
	LikertMax     = 5
)

var (
	// ErrInvalidLikert is returned when an answer falls outside 1..5.
	ErrInvalidLikert = errors.New("answer must be between 1 and 5")

	// ErrNoQuestions is returned when a bank would be empty.
	ErrNoQuestions = errors.New("question set is empty")
)

// Question is one Likert-scale statement.
type Question struct {
	// ID is unique within a bank and keys the answer map.
	ID int `json:"id" yaml:"id"`

	// Text is the statement shown to the participant.
	Text string `json:"text" yaml:"text"`

	// Kind selects the scoring model.
	Kind Kind `json:"type" yaml:"type"`

	// PositiveFor is the MBTI pole that agreement pushes toward.
	// Set only when Kind is KindMBTI.
	PositiveFor Letter `json:"positive_for,omitempty" yaml:"positive_for,omitempty"`

	// Dimension is the RIASEC dimension the answer accumulates into.
	// Set only when Kind is KindRIASEC.
	Dimension Letter `json:"dimension,omitempty" yaml:"dimension,omitempty"`

	// Example is an optional everyday illustration of the statement.
	Example string `json:"contoh,omitempty" yaml:"contoh,omitempty"`
}

// Validate checks that the question carries exactly the fields its kind needs.
func (q Question) Validate() error {
	switch q.Kind {
	case KindMBTI:
		if _, ok := Opposite(q.PositiveFor); !ok {
			return fmt.Errorf("question %d: invalid positive_for %q", q.ID, q.PositiveFor)
		}
		if q.Dimension != "" {
			return fmt.Errorf("question %d: mbti question must not set dimension", q.ID)
		}
	case KindRIASEC:
		if !IsRIASEC(q.Dimension) {
			return fmt.Errorf("question %d: invalid dimension %q", q.ID, q.Dimension)
		}
		if q.PositiveFor != "" {
			return fmt.Errorf("question %d: riasec question must not set positive_for", q.ID)
		}
	default:
		return fmt.Errorf("question %d: unknown type %q", q.ID, q.Kind)
	}
	return nil
}
