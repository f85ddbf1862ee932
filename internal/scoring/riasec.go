package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/minatbakat/internal/quiz"
)

// CodeLength is how many top RIASEC letters form the code.
type CodeLength int

const (
	CodeLength2 CodeLength = 2
	CodeLength3 CodeLength = 3

	DefaultCodeLength = CodeLength2
)

// Validate accepts only the two supported conventions.
func (n CodeLength) Validate() error {
	if n != CodeLength2 && n != CodeLength3 {
		return fmt.Errorf("riasec code length must be 2 or 3, got %d", int(n))
	}
	return nil
}

// RIASECResult is the outcome of ComputeRIASEC.
type RIASECResult struct {
	Code    string        `json:"code"`
	Scores  Vector        `json:"scores"`
	Ranking []quiz.Letter `json:"ranking"`
}

// ComputeRIASEC sums raw answer values per dimension and ranks the six
// dimensions by descending score. Equal scores keep R,I,A,S,E,C order.
// The code is the first n letters of the ranking. Callers validate n
// upstream (config.Validate); an unsupported length panics.
func ComputeRIASEC(questions []quiz.Question, answers quiz.Answers, n CodeLength) RIASECResult {
	if err := n.Validate(); err != nil {
		panic(err)
	}

	scores := newVector(quiz.RIASECLetters)
	for _, q := range questions {
		if q.Kind != quiz.KindRIASEC {
			continue
		}
		scores.add(q.Dimension, answers[q.ID])
	}

	ranked := make(Vector, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	ranking := make([]quiz.Letter, len(ranked))
	var b strings.Builder
	for i, e := range ranked {
		ranking[i] = e.Letter
		if i < int(n) {
			b.WriteString(string(e.Letter))
		}
	}

	return RIASECResult{Code: b.String(), Scores: scores, Ranking: ranking}
}
