package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/minatbakat/internal/quiz"
)

func mbtiQ(id int, pole quiz.Letter) quiz.Question {
	return quiz.Question{ID: id, Kind: quiz.KindMBTI, PositiveFor: pole}
}

func riasecQ(id int, dim quiz.Letter) quiz.Question {
	return quiz.Question{ID: id, Kind: quiz.KindRIASEC, Dimension: dim}
}

func allMBTIQuestions() []quiz.Question {
	return []quiz.Question{
		mbtiQ(1, "E"), mbtiQ(2, "I"),
		mbtiQ(3, "S"), mbtiQ(4, "N"),
		mbtiQ(5, "T"), mbtiQ(6, "F"),
		mbtiQ(7, "P"), mbtiQ(8, "J"),
	}
}

func TestComputeMBTI_SingleStrongAgree(t *testing.T) {
	res := ComputeMBTI([]quiz.Question{mbtiQ(1, "E")}, quiz.Answers{1: 5})

	if got := res.Scores.Get("E"); got != 2 {
		t.Errorf("E = %d, want 2", got)
	}
	for _, l := range quiz.MBTILetters {
		if l != "E" && res.Scores.Get(l) != 0 {
			t.Errorf("%s = %d, want 0", l, res.Scores.Get(l))
		}
	}
	if res.Type[0] != 'E' {
		t.Errorf("Type = %q, want prefix E", res.Type)
	}
}

func TestComputeMBTI_DisagreeGoesToOpposite(t *testing.T) {
	res := ComputeMBTI([]quiz.Question{mbtiQ(1, "E"), mbtiQ(2, "T")}, quiz.Answers{1: 1, 2: 2})

	if got := res.Scores.Get("I"); got != 2 {
		t.Errorf("I = %d, want 2", got)
	}
	if got := res.Scores.Get("F"); got != 1 {
		t.Errorf("F = %d, want 1", got)
	}
	if res.Type != "ISFP" {
		t.Errorf("Type = %q, want ISFP", res.Type)
	}
}

func TestComputeMBTI_AllNeutralUsesTieBreak(t *testing.T) {
	qs := allMBTIQuestions()
	answers := quiz.Answers{}
	for _, q := range qs {
		answers[q.ID] = 3
	}

	res := ComputeMBTI(qs, answers)
	if res.Type != "ESTP" {
		t.Errorf("Type = %q, want ESTP", res.Type)
	}
	if res.Scores.Max() != 0 {
		t.Errorf("expected all-zero scores, got %v", res.Scores)
	}
}

func TestComputeMBTI_TieOnEveryAxis(t *testing.T) {
	qs := allMBTIQuestions()
	answers := quiz.Answers{1: 5, 2: 5, 3: 4, 4: 4, 5: 1, 6: 1, 7: 2, 8: 2}

	res := ComputeMBTI(qs, answers)
	if res.Type != "ESTP" {
		t.Errorf("Type = %q, want ESTP on ties", res.Type)
	}
}

func TestComputeMBTI_Unanswered(t *testing.T) {
	qs := allMBTIQuestions()
	res := ComputeMBTI(qs, quiz.Answers{4: 5, 8: 4})

	if res.Type != "ENTJ" {
		t.Errorf("Type = %q, want ENTJ", res.Type)
	}
	if res.Scores.Get("N") != 2 || res.Scores.Get("J") != 1 {
		t.Errorf("scores = %v", res.Scores)
	}
}

func TestComputeMBTI_IgnoresRIASEC(t *testing.T) {
	res := ComputeMBTI([]quiz.Question{riasecQ(1, "E")}, quiz.Answers{1: 5})
	if res.Scores.Max() != 0 {
		t.Errorf("riasec question leaked into mbti: %v", res.Scores)
	}
}

func TestComputeMBTI_ScoreOrder(t *testing.T) {
	res := ComputeMBTI(nil, nil)
	for i, e := range res.Scores {
		if e.Letter != quiz.MBTILetters[i] {
			t.Fatalf("scores[%d] = %s, want %s", i, e.Letter, quiz.MBTILetters[i])
		}
	}
}

func TestComputeRIASEC_DescendingCode(t *testing.T) {
	qs := []quiz.Question{
		riasecQ(1, "R"), riasecQ(2, "I"), riasecQ(3, "A"),
		riasecQ(4, "S"), riasecQ(5, "E"), riasecQ(6, "C"),
	}
	answers := quiz.Answers{1: 5, 2: 4, 3: 3, 4: 2, 5: 1, 6: 0}

	res := ComputeRIASEC(qs, answers, CodeLength2)
	if res.Code != "RI" {
		t.Errorf("Code = %q, want RI", res.Code)
	}

	res3 := ComputeRIASEC(qs, answers, CodeLength3)
	if res3.Code != "RIA" {
		t.Errorf("Code = %q, want RIA", res3.Code)
	}
}

func TestComputeRIASEC_SumsRawValues(t *testing.T) {
	qs := []quiz.Question{
		riasecQ(1, "S"), riasecQ(2, "S"), riasecQ(3, "S"),
		riasecQ(4, "A"), riasecQ(5, "C"),
	}
	answers := quiz.Answers{1: 5, 2: 4, 4: 2}

	res := ComputeRIASEC(qs, answers, CodeLength2)
	want := map[string]int{"R": 0, "I": 0, "A": 2, "S": 9, "E": 0, "C": 0}
	if diff := cmp.Diff(want, res.Scores.Map()); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
	if res.Code != "SA" {
		t.Errorf("Code = %q, want SA", res.Code)
	}
}

func TestComputeRIASEC_StableTieBreak(t *testing.T) {
	qs := []quiz.Question{
		riasecQ(1, "C"), riasecQ(2, "E"), riasecQ(3, "A"), riasecQ(4, "R"),
	}
	answers := quiz.Answers{1: 4, 2: 4, 3: 4, 4: 4}

	res := ComputeRIASEC(qs, answers, CodeLength3)
	if res.Code != "RAE" {
		t.Errorf("Code = %q, want RAE (insertion order on ties)", res.Code)
	}
	wantRanking := []quiz.Letter{"R", "A", "E", "C", "I", "S"}
	if diff := cmp.Diff(wantRanking, res.Ranking); diff != "" {
		t.Errorf("Ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeRIASEC_NoAnswers(t *testing.T) {
	res := ComputeRIASEC([]quiz.Question{riasecQ(1, "A")}, quiz.Answers{}, CodeLength2)
	if res.Code != "RI" {
		t.Errorf("Code = %q, want RI with all-zero scores", res.Code)
	}
}

func TestComputeRIASEC_InvalidLengthPanics(t *testing.T) {
	for _, n := range []CodeLength{0, 1, 5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ComputeRIASEC(n=%d) did not panic", n)
				}
			}()
			ComputeRIASEC(nil, nil, n)
		}()
	}
}

func TestCodeLengthValidate(t *testing.T) {
	for _, n := range []CodeLength{2, 3} {
		if err := n.Validate(); err != nil {
			t.Errorf("Validate(%d) = %v", n, err)
		}
	}
	for _, n := range []CodeLength{0, 1, 4, 6} {
		if err := n.Validate(); err == nil {
			t.Errorf("Validate(%d) should fail", n)
		}
	}
}

func TestScoringIsIdempotent(t *testing.T) {
	qs := append(allMBTIQuestions(), riasecQ(20, "I"), riasecQ(21, "A"))
	answers := quiz.Answers{1: 2, 3: 5, 6: 4, 8: 1, 20: 3, 21: 5}
	before := answers.Clone()

	m1 := ComputeMBTI(qs, answers)
	m2 := ComputeMBTI(qs, answers)
	r1 := ComputeRIASEC(qs, answers, CodeLength3)
	r2 := ComputeRIASEC(qs, answers, CodeLength3)

	if diff := cmp.Diff(m1, m2); diff != "" {
		t.Errorf("mbti differs between runs:\n%s", diff)
	}
	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Errorf("riasec differs between runs:\n%s", diff)
	}
	if !cmp.Equal(answers, before) {
		t.Error("scoring mutated the answer map")
	}
}
