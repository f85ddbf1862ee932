package session

import (
	"github.com/abhisek/minatbakat/internal/quiz"
)

// Step reports what a Next transition did.
type Step int

const (
	StepBlocked  Step = iota // current question unanswered, index unchanged
	StepMoved                // advanced to the next question
	StepFinished             // was on the last question; time to score
)

// Navigation labels for the next button.
const (
	LabelNext   = "Lanjut"
	LabelResult = "Lihat Hasil!"
)

// State is one quiz run. Transitions take a State and return a new one;
// nothing here touches the UI, so a run can be replayed in tests.
type State struct {
	// ID correlates log lines for one run.
	ID string

	// Participant is captured on the user-info screen.
	Participant quiz.Participant

	// Questions is the loaded question set in presentation order.
	Questions []quiz.Question

	// Index points at the question on screen.
	Index int

	// Answers holds every selection so far. Treated as immutable; Select
	// copies before writing.
	Answers quiz.Answers
}

// New starts a run at the first question.
func New(id string, p quiz.Participant, bank *quiz.Bank) (State, error) {
	if bank == nil || bank.Len() == 0 {
		return State{}, quiz.ErrNoQuestions
	}
	return State{
		ID:          id,
		Participant: p.Normalize(),
		Questions:   bank.Questions(),
		Answers:     quiz.Answers{},
	}, nil
}

// Current returns the question on screen.
func (s State) Current() (quiz.Question, bool) {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return quiz.Question{}, false
	}
	return s.Questions[s.Index], true
}

// CurrentAnswer returns the recorded value for the question on screen.
func (s State) CurrentAnswer() (int, bool) {
	q, ok := s.Current()
	if !ok {
		return 0, false
	}
	return s.Answers.Get(q.ID)
}

// IsLast reports whether the question on screen is the final one.
func (s State) IsLast() bool {
	return s.Index == len(s.Questions)-1
}

// CanGoBack reports whether Prev would move.
func (s State) CanGoBack() bool {
	return s.Index > 0
}

// CanAdvance reports whether the question on screen has an answer.
func (s State) CanAdvance() bool {
	_, ok := s.CurrentAnswer()
	return ok
}

// NextLabel is the caption for the next button.
func (s State) NextLabel() string {
	if s.IsLast() {
		return LabelResult
	}
	return LabelNext
}

// Progress is (index+1)/total in 0..1.
func (s State) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Index+1) / float64(len(s.Questions))
}

// Answered counts recorded answers.
func (s State) Answered() int {
	return len(s.Answers)
}

// Unanswered lists the IDs of questions without an answer, in
// presentation order.
func (s State) Unanswered() []int {
	var ids []int
	for _, q := range s.Questions {
		if _, ok := s.Answers[q.ID]; !ok {
			ids = append(ids, q.ID)
		}
	}
	return ids
}
