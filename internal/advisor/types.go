package advisor

import "github.com/abhisek/minatbakat/internal/scoring"

// Input is what the counselor sees about a participant.
type Input struct {
	Grade  string
	MBTI   scoring.MBTIResult
	RIASEC scoring.RIASECResult
}

// Advice is a generated counselor note.
type Advice struct {
	Summary  string   `json:"summary"`
	Majors   []string `json:"majors"`
	NextStep string   `json:"next_step"`
}

// ranking returns the RIASEC letters in rank order, e.g. "SAERIC".
func (in Input) ranking() string {
	out := make([]byte, 0, len(in.RIASEC.Ranking))
	for _, l := range in.RIASEC.Ranking {
		out = append(out, l[0])
	}
	return string(out)
}
