package quiz

import "fmt"

// Answers maps a question id to its Likert value.
type Answers map[int]int

// ValidLikert reports whether v is within 1..5.
func ValidLikert(v int) bool {
	return v >= LikertMin && v <= LikertMax
}

// Set records v for question id, overwriting any earlier answer.
func (a Answers) Set(id, v int) error {
	if !ValidLikert(v) {
		return fmt.Errorf("question %d: %w (got %d)", id, ErrInvalidLikert, v)
	}
	a[id] = v
	return nil
}

// Get returns the answer for id and whether one was recorded.
func (a Answers) Get(id int) (int, bool) {
	v, ok := a[id]
	return v, ok
}

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
