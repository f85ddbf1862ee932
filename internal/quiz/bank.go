package quiz

import "fmt"

// Bank is an ordered, validated, read-only question set.
type Bank struct {
	questions []Question
	byID      map[int]int
}

// NewBank validates qs and builds a bank preserving their order.
func NewBank(qs []Question) (*Bank, error) {
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}

	b := &Bank{
		questions: make([]Question, len(qs)),
		byID:      make(map[int]int, len(qs)),
	}
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		b.questions[i] = q
		b.byID[q.ID] = i
	}
	return b, nil
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// At returns the i-th question in presentation order.
func (b *Bank) At(i int) Question {
	return b.questions[i]
}

// Lookup finds a question by id.
func (b *Bank) Lookup(id int) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// Questions returns a copy of the ordered question list.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// CountByKind returns how many questions feed each model.
func (b *Bank) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, 2)
	for _, q := range b.questions {
		counts[q.Kind]++
	}
	return counts
}
