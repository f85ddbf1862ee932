package scoring

import (
	"strings"

	"github.com/abhisek/minatbakat/internal/quiz"
)

// MBTIResult is the outcome of ComputeMBTI.
type MBTIResult struct {
	Type   string `json:"type"`
	Scores Vector `json:"scores"`
}

// ComputeMBTI scores every answered MBTI question from scratch.
//
// An answer above neutral adds (v-3) to the question's PositiveFor pole; an
// answer below neutral adds (3-v) to the opposite pole; neutral and
// unanswered questions add nothing. Each axis picks its higher pole and a
// tie goes to the first pole (E, S, T, P).
func ComputeMBTI(questions []quiz.Question, answers quiz.Answers) MBTIResult {
	scores := newVector(quiz.MBTILetters)

	for _, q := range questions {
		if q.Kind != quiz.KindMBTI {
			continue
		}
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		switch {
		case v > quiz.LikertNeutral:
			scores.add(q.PositiveFor, v-quiz.LikertNeutral)
		case v < quiz.LikertNeutral:
			if opp, ok := quiz.Opposite(q.PositiveFor); ok {
				scores.add(opp, quiz.LikertNeutral-v)
			}
		}
	}

	var b strings.Builder
	for _, ax := range quiz.Axes {
		if scores.Get(ax.First) >= scores.Get(ax.Second) {
			b.WriteString(string(ax.First))
		} else {
			b.WriteString(string(ax.Second))
		}
	}

	return MBTIResult{Type: b.String(), Scores: scores}
}
