package report

import "github.com/abhisek/minatbakat/internal/scoring"

// Bar is one row of a score chart.
type Bar struct {
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"` // 0..100, relative to the vector's max
}

// Bars normalizes a score vector against its largest value. When every
// value is 0 all bars are 0%.
func Bars(v scoring.Vector) []Bar {
	max := v.Max()
	out := make([]Bar, len(v))
	for i, e := range v {
		pct := 0.0
		if max > 0 {
			pct = float64(e.Value) / float64(max) * 100
		}
		out[i] = Bar{Label: string(e.Letter), Value: e.Value, Percent: pct}
	}
	return out
}
