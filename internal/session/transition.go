package session

import (
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/minatbakat/internal/quiz"
)

// Select records value for questionID and returns the updated state.
// The question must belong to the run.
func Select(s State, questionID, value int) (State, error) {
	found := false
	for _, q := range s.Questions {
		if q.ID == questionID {
			found = true
			break
		}
	}
	if !found {
		return s, fmt.Errorf("question %d is not part of this run", questionID)
	}

	answers := s.Answers.Clone()
	if err := answers.Set(questionID, value); err != nil {
		return s, err
	}
	s.Answers = answers
	return s, nil
}

// SelectCurrent records value for the question on screen.
func SelectCurrent(s State, value int) (State, error) {
	q, ok := s.Current()
	if !ok {
		return s, quiz.ErrNoQuestions
	}
	return Select(s, q.ID, value)
}

// Next advances one question. It refuses while the current question is
// unanswered and reports StepFinished on the last question.
func Next(s State) (State, Step) {
	if !s.CanAdvance() {
		return s, StepBlocked
	}
	if s.IsLast() {
		return s, StepFinished
	}
	s.Index++
	return s, StepMoved
}

// Prev steps back one question; no-op on the first.
func Prev(s State) State {
	if s.CanGoBack() {
		s.Index--
	}
	return s
}

var (
	// ErrIncomplete is returned by Replay when questions are left unanswered.
	ErrIncomplete = errors.New("not every question is answered")

	// ErrParticipant is returned by Replay when the participant is missing a field.
	ErrParticipant = errors.New("participant is incomplete")
)

// Replay starts a run and records every answer in question-ID order,
// stopping at the first invalid one. The result must be as complete as a
// run finished on screen: every question answered and every participant
// field filled. Used by the non-interactive surfaces.
func Replay(id string, p quiz.Participant, bank *quiz.Bank, answers map[int]int) (State, error) {
	s, err := New(id, p, bank)
	if err != nil {
		return State{}, err
	}

	ids := make([]int, 0, len(answers))
	for qid := range answers {
		ids = append(ids, qid)
	}
	sort.Ints(ids)

	for _, qid := range ids {
		if s, err = Select(s, qid, answers[qid]); err != nil {
			return State{}, fmt.Errorf("question %d: %w", qid, err)
		}
	}

	if missing := s.Unanswered(); len(missing) > 0 {
		return State{}, fmt.Errorf("%w: missing %v", ErrIncomplete, missing)
	}
	if err := s.Participant.Validate(); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrParticipant, err)
	}
	return s, nil
}
