package session

import (
	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/report"
	"github.com/abhisek/minatbakat/internal/scoring"
)

// Outcome is a finished run: both scores and the profile lookup.
type Outcome struct {
	MBTI    scoring.MBTIResult
	RIASEC  scoring.RIASECResult
	Profile profile.Profile
	Found   bool
}

// Result scores the complete answer map and matches the profile table.
// It is recomputed from scratch on every call.
func Result(s State, table profile.Table, n scoring.CodeLength) Outcome {
	mbti := scoring.ComputeMBTI(s.Questions, s.Answers)
	riasec := scoring.ComputeRIASEC(s.Questions, s.Answers, n)
	p, found := profile.Match(table, mbti.Type, riasec.Code)
	return Outcome{MBTI: mbti, RIASEC: riasec, Profile: p, Found: found}
}

// Report assembles the display model for an outcome.
func (o Outcome) Report(s State) report.Report {
	return report.Build(report.Input{
		Participant: s.Participant,
		MBTI:        o.MBTI,
		RIASEC:      o.RIASEC,
		Profile:     o.Profile,
		Found:       o.Found,
	})
}
