package quiz

import (
	"errors"
	"testing"
)

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"mbti ok", Question{ID: 1, Kind: KindMBTI, PositiveFor: "E"}, false},
		{"mbti bad pole", Question{ID: 1, Kind: KindMBTI, PositiveFor: "R"}, true},
		{"mbti missing pole", Question{ID: 1, Kind: KindMBTI}, true},
		{"mbti with dimension", Question{ID: 1, Kind: KindMBTI, PositiveFor: "J", Dimension: "R"}, true},
		{"riasec ok", Question{ID: 2, Kind: KindRIASEC, Dimension: "C"}, false},
		{"riasec bad dimension", Question{ID: 2, Kind: KindRIASEC, Dimension: "N"}, true},
		{"riasec with pole", Question{ID: 2, Kind: KindRIASEC, Dimension: "A", PositiveFor: "E"}, true},
		{"unknown kind", Question{ID: 3, Kind: "big5"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOppositeTable(t *testing.T) {
	pairs := map[Letter]Letter{"E": "I", "S": "N", "T": "F", "P": "J"}
	for a, b := range pairs {
		if got, _ := Opposite(a); got != b {
			t.Errorf("Opposite(%s) = %s, want %s", a, got, b)
		}
		if got, _ := Opposite(b); got != a {
			t.Errorf("Opposite(%s) = %s, want %s", b, got, a)
		}
	}
	if _, ok := Opposite("R"); ok {
		t.Error("R should have no MBTI opposite")
	}
}

func TestNewBank(t *testing.T) {
	b, err := NewBank([]Question{
		{ID: 10, Kind: KindMBTI, PositiveFor: "E", Text: "first"},
		{ID: 3, Kind: KindRIASEC, Dimension: "R", Text: "second"},
	})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if b.At(0).ID != 10 || b.At(1).ID != 3 {
		t.Error("bank must preserve input order")
	}
	q, ok := b.Lookup(3)
	if !ok || q.Text != "second" {
		t.Errorf("Lookup(3) = %+v, %v", q, ok)
	}
	if _, ok := b.Lookup(99); ok {
		t.Error("Lookup(99) should miss")
	}

	counts := b.CountByKind()
	if counts[KindMBTI] != 1 || counts[KindRIASEC] != 1 {
		t.Errorf("CountByKind = %v", counts)
	}
}

func TestNewBankRejects(t *testing.T) {
	if _, err := NewBank(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("empty bank error = %v, want ErrNoQuestions", err)
	}

	_, err := NewBank([]Question{
		{ID: 1, Kind: KindMBTI, PositiveFor: "E"},
		{ID: 1, Kind: KindMBTI, PositiveFor: "I"},
	})
	if err == nil {
		t.Error("expected duplicate id error")
	}

	_, err = NewBank([]Question{{ID: 1, Kind: KindRIASEC, Dimension: "Z"}})
	if err == nil {
		t.Error("expected validation error")
	}
}

func TestAnswersSet(t *testing.T) {
	a := Answers{}
	if err := a.Set(1, 4); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := a.Set(1, 2); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _ := a.Get(1); v != 2 {
		t.Errorf("Get(1) = %d, want 2 after overwrite", v)
	}

	for _, bad := range []int{0, 6, -1} {
		if err := a.Set(2, bad); !errors.Is(err, ErrInvalidLikert) {
			t.Errorf("Set(2, %d) error = %v, want ErrInvalidLikert", bad, err)
		}
	}
	if _, ok := a.Get(2); ok {
		t.Error("rejected answer must not be stored")
	}
}

func TestAnswersClone(t *testing.T) {
	a := Answers{1: 5}
	c := a.Clone()
	c[1] = 1
	c[2] = 3
	if a[1] != 5 || len(a) != 1 {
		t.Errorf("clone mutated original: %v", a)
	}
}
