package session

import (
	"errors"
	"testing"

	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/quiz"
	"github.com/abhisek/minatbakat/internal/scoring"
)

func testBank(t *testing.T) *quiz.Bank {
	t.Helper()
	b, err := quiz.NewBank([]quiz.Question{
		{ID: 1, Kind: quiz.KindMBTI, PositiveFor: "I", Text: "Aku suka menyendiri"},
		{ID: 2, Kind: quiz.KindMBTI, PositiveFor: "N", Text: "Aku suka ide abstrak"},
		{ID: 3, Kind: quiz.KindRIASEC, Dimension: "I", Text: "Aku suka eksperimen"},
		{ID: 4, Kind: quiz.KindRIASEC, Dimension: "A", Text: "Aku suka menggambar"},
	})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	return b
}

var budi = quiz.Participant{Name: "Budi", School: "SMAN 3", Grade: "11"}

func testState(t *testing.T) State {
	t.Helper()
	s, err := New("run-1", quiz.Participant{Name: " Sari ", School: "SMAN 1", Grade: "12"}, testBank(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	s := testState(t)
	if s.Index != 0 {
		t.Errorf("Index = %d, want 0", s.Index)
	}
	if s.Participant.Name != "Sari" {
		t.Errorf("participant not normalized: %q", s.Participant.Name)
	}
	if s.CanGoBack() {
		t.Error("first question cannot go back")
	}
	if s.CanAdvance() {
		t.Error("unanswered question cannot advance")
	}
	if s.NextLabel() != LabelNext {
		t.Errorf("NextLabel = %q", s.NextLabel())
	}

	if _, err := New("x", quiz.Participant{}, nil); !errors.Is(err, quiz.ErrNoQuestions) {
		t.Errorf("New(nil bank) error = %v", err)
	}
}

func TestNextBlockedUntilAnswered(t *testing.T) {
	s := testState(t)

	s2, step := Next(s)
	if step != StepBlocked || s2.Index != 0 {
		t.Fatalf("Next on unanswered = (%d, %v), want (0, StepBlocked)", s2.Index, step)
	}

	s, err := SelectCurrent(s, 4)
	if err != nil {
		t.Fatalf("SelectCurrent: %v", err)
	}
	s, step = Next(s)
	if step != StepMoved || s.Index != 1 {
		t.Errorf("Next = (%d, %v), want (1, StepMoved)", s.Index, step)
	}
}

func TestWalkToFinish(t *testing.T) {
	s := testState(t)
	values := []int{5, 2, 4, 3}

	var step Step
	for i, v := range values {
		var err error
		s, err = SelectCurrent(s, v)
		if err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		if i == len(values)-1 && s.NextLabel() != LabelResult {
			t.Errorf("last NextLabel = %q, want %q", s.NextLabel(), LabelResult)
		}
		s, step = Next(s)
	}

	if step != StepFinished {
		t.Errorf("final step = %v, want StepFinished", step)
	}
	if s.Index != 3 {
		t.Errorf("Index = %d, want 3", s.Index)
	}
	if s.Progress() != 1.0 {
		t.Errorf("Progress = %v, want 1", s.Progress())
	}
	if s.Answered() != 4 {
		t.Errorf("Answered = %d, want 4", s.Answered())
	}
}

func TestPrev(t *testing.T) {
	s := testState(t)
	s = Prev(s)
	if s.Index != 0 {
		t.Errorf("Prev at 0 moved to %d", s.Index)
	}

	s, _ = SelectCurrent(s, 3)
	s, _ = Next(s)
	s = Prev(s)
	if s.Index != 0 {
		t.Errorf("Index = %d, want 0", s.Index)
	}
	if v, ok := s.CurrentAnswer(); !ok || v != 3 {
		t.Errorf("answer lost after Prev: %d %v", v, ok)
	}
}

func TestSelectIsCopyOnWrite(t *testing.T) {
	s := testState(t)
	s1, _ := Select(s, 1, 5)
	s2, _ := Select(s1, 1, 1)

	if _, ok := s.Answers[1]; ok {
		t.Error("original state mutated")
	}
	if s1.Answers[1] != 5 {
		t.Errorf("s1 answer = %d, want 5", s1.Answers[1])
	}
	if s2.Answers[1] != 1 {
		t.Errorf("s2 answer = %d, want 1 (overwrite)", s2.Answers[1])
	}
}

func TestSelectRejects(t *testing.T) {
	s := testState(t)
	if _, err := Select(s, 99, 3); err == nil {
		t.Error("expected error for unknown question")
	}
	if _, err := Select(s, 1, 7); !errors.Is(err, quiz.ErrInvalidLikert) {
		t.Errorf("error = %v, want ErrInvalidLikert", err)
	}
}

func TestProgress(t *testing.T) {
	s := testState(t)
	if got := s.Progress(); got != 0.25 {
		t.Errorf("Progress = %v, want 0.25", got)
	}
}

func TestResult(t *testing.T) {
	s := testState(t)
	for id, v := range map[int]int{1: 5, 2: 4, 3: 5, 4: 4} {
		s, _ = Select(s, id, v)
	}

	table := profile.Table{
		{MBTIType: "INTP", RIASECCode: "IA", Title: "Pemikir Kreatif"},
	}

	out := Result(s, table, scoring.CodeLength2)
	if out.MBTI.Type != "INTP" {
		t.Errorf("MBTI = %q, want INTP", out.MBTI.Type)
	}
	if out.RIASEC.Code != "IA" {
		t.Errorf("RIASEC = %q, want IA", out.RIASEC.Code)
	}
	if !out.Found || out.Profile.Title != "Pemikir Kreatif" {
		t.Errorf("profile not matched: %+v", out)
	}

	rep := out.Report(s)
	if rep.Participant.Name != "Sari" || rep.Title != "Pemikir Kreatif" {
		t.Errorf("report = %+v", rep)
	}

	miss := Result(s, profile.Table{}, scoring.CodeLength2)
	if miss.Found {
		t.Error("empty table should not match")
	}
	if rep := miss.Report(s); rep.Fallback == "" {
		t.Error("missing profile should produce fallback text")
	}
}

func TestReplay(t *testing.T) {
	s, err := Replay("run-2", budi, testBank(t), map[int]int{4: 5, 1: 2, 3: 4, 2: 3})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if s.Answered() != 4 || s.Index != 0 {
		t.Fatalf("answered=%d index=%d, want 4/0", s.Answered(), s.Index)
	}
	out := Result(s, nil, scoring.CodeLength2)
	if out.MBTI.Type != "ESTP" {
		t.Errorf("MBTI = %s, want ESTP", out.MBTI.Type)
	}
	if out.RIASEC.Code != "AI" {
		t.Errorf("RIASEC = %s, want AI", out.RIASEC.Code)
	}
}

func TestReplayRejects(t *testing.T) {
	full := map[int]int{1: 3, 2: 3, 3: 3, 4: 3}
	tests := []struct {
		name    string
		p       quiz.Participant
		answers map[int]int
		want    error
	}{
		{"likert out of range", budi, map[int]int{1: 6, 2: 3, 3: 3, 4: 3}, quiz.ErrInvalidLikert},
		{"unknown question", budi, map[int]int{1: 3, 2: 3, 3: 3, 4: 3, 99: 3}, nil},
		{"no answers", budi, map[int]int{}, ErrIncomplete},
		{"missing question", budi, map[int]int{1: 3, 2: 3, 4: 3}, ErrIncomplete},
		{"empty participant", quiz.Participant{}, full, ErrParticipant},
		{"blank school", quiz.Participant{Name: "Budi", School: "  ", Grade: "11"}, full, ErrParticipant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Replay("x", tt.p, testBank(t), tt.answers)
			if err == nil {
				t.Fatal("Replay accepted the input")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnanswered(t *testing.T) {
	s := testState(t)
	if got := s.Unanswered(); len(got) != 4 {
		t.Fatalf("Unanswered = %v, want all four", got)
	}
	s, _ = Select(s, 1, 4)
	s, _ = Select(s, 3, 2)
	got := s.Unanswered()
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("Unanswered = %v, want [2 4]", got)
	}
}
