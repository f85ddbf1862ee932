package scoring

import "github.com/abhisek/minatbakat/internal/quiz"

// Entry is one letter's accumulated score.
type Entry struct {
	Letter quiz.Letter `json:"letter"`
	Value  int         `json:"value"`
}

// Vector is an ordered score vector. Order is fixed per model so the
// display and the RIASEC tie-break are deterministic.
type Vector []Entry

func newVector(letters []quiz.Letter) Vector {
	v := make(Vector, len(letters))
	for i, l := range letters {
		v[i] = Entry{Letter: l}
	}
	return v
}

// Get returns the score for l, or 0 if l is not part of the vector.
func (v Vector) Get(l quiz.Letter) int {
	for _, e := range v {
		if e.Letter == l {
			return e.Value
		}
	}
	return 0
}

func (v Vector) add(l quiz.Letter, n int) {
	for i := range v {
		if v[i].Letter == l {
			v[i].Value += n
			return
		}
	}
}

// Max returns the largest value, or 0 for an empty vector.
func (v Vector) Max() int {
	m := 0
	for _, e := range v {
		if e.Value > m {
			m = e.Value
		}
	}
	return m
}

// Map returns the vector as a plain letter → score map.
func (v Vector) Map() map[string]int {
	out := make(map[string]int, len(v))
	for _, e := range v {
		out[string(e.Letter)] = e.Value
	}
	return out
}
