package eval

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResultScores(t *testing.T) {
	r := &Result{TP: 6, FP: 2, FN: 4}
	if !near(r.Precision(), 0.75) {
		t.Errorf("Expected precision 0.75, got %v", r.Precision())
	}
	if !near(r.Recall(), 0.6) {
		t.Errorf("Expected recall 0.6, got %v", r.Recall())
	}
	if !near(r.F1(), 2.0/3.0) {
		t.Errorf("Expected F1 2/3, got %v", r.F1())
	}
}

func TestEmptyDenominators(t *testing.T) {
	r := &Result{}
	if r.Precision() != 0 || r.Recall() != 0 || r.F1() != 0 {
		t.Error("Expected zero scores for empty result")
	}
}

func TestTaggedExcludesO(t *testing.T) {
	gold := [][]string{
		{"B-person", "O", "O"},
		{"B-geo-loc", "I-geo-loc", "O"},
	}
	test := [][]string{
		{"B-person", "B-person", "O"},
		{"B-geo-loc", "O", "O"},
	}

	labeled, err := Tagged(gold, test, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, exists := labeled.ByLabel["O"]; exists {
		t.Error("O must not be scored")
	}

	person := labeled.ByLabel["B-person"]
	if person.TP != 1 || person.FP != 1 || person.FN != 0 {
		t.Errorf("B-person: expected TP=1 FP=1 FN=0, got %+v", person)
	}

	igeo := labeled.ByLabel["I-geo-loc"]
	if igeo.TP != 0 || igeo.FP != 0 || igeo.FN != 1 {
		t.Errorf("I-geo-loc: expected TP=0 FP=0 FN=1, got %+v", igeo)
	}

	bgeo := labeled.ByLabel["B-geo-loc"]
	if bgeo.TP != 1 || bgeo.FP != 0 || bgeo.FN != 0 {
		t.Errorf("B-geo-loc: expected TP=1 FP=0 FN=0, got %+v", bgeo)
	}

	if labeled.Micro.TP != 2 || labeled.Micro.FP != 1 || labeled.Micro.FN != 1 {
		t.Errorf("Micro: expected TP=2 FP=1 FN=1, got %+v", labeled.Micro)
	}
	if !near(labeled.Micro.Precision(), 2.0/3.0) {
		t.Errorf("Expected micro precision 2/3, got %v", labeled.Micro.Precision())
	}
	if !near(labeled.Micro.Recall(), 2.0/3.0) {
		t.Errorf("Expected micro recall 2/3, got %v", labeled.Micro.Recall())
	}

	if labeled.Sentences.Population != 2 || labeled.Sentences.Exact != 0 {
		t.Errorf("Expected 2 sentences, 0 exact, got %+v", labeled.Sentences)
	}
}

func TestTaggedLabelSubset(t *testing.T) {
	gold := [][]string{{"B-person", "B-company", "O"}}
	test := [][]string{{"B-person", "O", "O"}}

	labeled, err := Tagged(gold, test, []string{"B-person"})
	if err != nil {
		t.Fatal(err)
	}
	if len(labeled.ByLabel) != 1 {
		t.Fatalf("Expected 1 scored label, got %d", len(labeled.ByLabel))
	}
	if labeled.Micro.TP != 1 || labeled.Micro.FP != 0 || labeled.Micro.FN != 0 {
		t.Errorf("Expected perfect restricted micro, got %+v", labeled.Micro)
	}
	if labeled.Sentences.Exact != 0 {
		t.Error("Sentence exact-match must see the B-company miss")
	}
}

func TestTaggedExactMatch(t *testing.T) {
	gold := [][]string{{"O", "B-person"}, {"O"}}
	test := [][]string{{"O", "B-person"}, {"B-other"}}

	labeled, err := Tagged(gold, test, nil)
	if err != nil {
		t.Fatal(err)
	}
	if labeled.Sentences.Exact != 1 || labeled.Sentences.Population != 2 {
		t.Errorf("Expected 1/2 exact, got %+v", labeled.Sentences)
	}
	if !near(labeled.Sentences.ExactMatch(), 0.5) {
		t.Errorf("Expected exact match 0.5, got %v", labeled.Sentences.ExactMatch())
	}
}

func TestTaggedMisaligned(t *testing.T) {
	if _, err := Tagged([][]string{{"O"}}, [][]string{}, nil); err == nil {
		t.Error("Expected error for corpus-level misalignment")
	}
	if _, err := Tagged([][]string{{"O", "O"}}, [][]string{{"O"}}, nil); err == nil {
		t.Error("Expected error for sequence-level misalignment")
	}
}
