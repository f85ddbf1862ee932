package quiz

// Axis is one MBTI dichotomy. First is the pole that wins ties.
type Axis struct {
	First  Letter
	Second Letter
}

// Axes lists the four MBTI dichotomies in type-string order.
var Axes = []Axis{
	{First: "E", Second: "I"},
	{First: "S", Second: "N"},
	{First: "T", Second: "F"},
	{First: "P", Second: "J"},
}

// MBTILetters is the display order of the MBTI score vector.
var MBTILetters = []Letter{"E", "I", "S", "N", "T", "F", "P", "J"}

// RIASECLetters is the display and tie-break order of the RIASEC vector.
var RIASECLetters = []Letter{"R", "I", "A", "S", "E", "C"}

var opposites = map[Letter]Letter{
	"E": "I", "I": "E",
	"S": "N", "N": "S",
	"T": "F", "F": "T",
	"P": "J", "J": "P",
}

// Opposite returns the other pole of l's MBTI axis.
func Opposite(l Letter) (Letter, bool) {
	o, ok := opposites[l]
	return o, ok
}

// IsMBTI reports whether l is one of the eight MBTI poles.
func IsMBTI(l Letter) bool {
	_, ok := opposites[l]
	return ok
}

// IsRIASEC reports whether l is one of the six RIASEC dimensions.
func IsRIASEC(l Letter) bool {
	for _, r := range RIASECLetters {
		if r == l {
			return true
		}
	}
	return false
}
