package eval

import (
	"fmt"
	"sort"
)

func Precision(truePositives, testPositives int) float64 {
	if testPositives == 0 {
		return 0
	}
	return float64(truePositives) / float64(testPositives)
}

func Recall(truePositives, conditionPositives int) float64 {
	if conditionPositives == 0 {
		return 0
	}
	return float64(truePositives) / float64(conditionPositives)
}

func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2.0 * (precision * recall) / (precision + recall)
}

type Result struct {
	TP, FP, TN, FN int
}

func (r *Result) All() int {
	return r.TP + r.FP + r.TN + r.FN
}

func (r *Result) Correct() int {
	return r.TP + r.TN
}

func (r *Result) Incorrect() int {
	return r.FP + r.FN
}

func (r *Result) TestPositives() int {
	return r.TP + r.FP
}

func (r *Result) ConditionPositives() int {
	return r.TP + r.FN
}

func (r *Result) Precision() float64 {
	return Precision(r.TP, r.TestPositives())
}

func (r *Result) Recall() float64 {
	return Recall(r.TP, r.ConditionPositives())
}

func (r *Result) Accuracy() float64 {
	if r.All() == 0 {
		return 0
	}
	return float64(r.Correct()) / float64(r.All())
}

func (r *Result) F1() float64 {
	return F1(r.Precision(), r.Recall())
}

func (r *Result) Add(other *Result) {
	r.TP += other.TP
	r.FP += other.FP
	r.TN += other.TN
	r.FN += other.FN
}

// Total aggregates per-sentence results, tracking exact sentence
// matches over the population.
type Total struct {
	Result
	Exact, Population int
}

func (t *Total) AddSentence(r *Result) {
	t.Add(r)
	if r.Incorrect() == 0 {
		t.Exact += 1
	}
	t.Population += 1
}

func (t *Total) ExactMatch() float64 {
	if t.Population == 0 {
		return 0
	}
	return float64(t.Exact) / float64(t.Population)
}

// Labeled is a token-level scoring of predicted vs gold tag sequences
// over a label subset. Micro sums counts across the subset; labels
// outside the subset (conventionally O) contribute nothing.
type Labeled struct {
	ByLabel   map[string]*Result
	Micro     Result
	Sentences Total
}

// Labels returns the scored label subset, sorted.
func (l *Labeled) Labels() []string {
	labels := make([]string, 0, len(l.ByLabel))
	for label := range l.ByLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Tagged scores predicted against gold tag sequences token by token.
// A nil labels argument scores every label observed in either corpus
// except O. Shape divergence between the corpora is an invariant
// violation and returns an error, never a truncated score.
func Tagged(gold, test [][]string, labels []string) (*Labeled, error) {
	if len(gold) != len(test) {
		return nil, fmt.Errorf("corpus misaligned: %d gold sequences for %d predicted",
			len(gold), len(test))
	}
	for i, goldSeq := range gold {
		if len(goldSeq) != len(test[i]) {
			return nil, fmt.Errorf("sequence %d misaligned: %d gold tags for %d predicted",
				i, len(goldSeq), len(test[i]))
		}
	}

	if labels == nil {
		seen := make(map[string]bool)
		for _, corpus := range [][][]string{gold, test} {
			for _, seq := range corpus {
				for _, label := range seq {
					if label != "O" {
						seen[label] = true
					}
				}
			}
		}
		for label := range seen {
			labels = append(labels, label)
		}
	}

	retval := &Labeled{ByLabel: make(map[string]*Result, len(labels))}
	subset := make(map[string]bool, len(labels))
	for _, label := range labels {
		retval.ByLabel[label] = &Result{}
		subset[label] = true
	}

	for i, goldSeq := range gold {
		sentence := &Result{}
		for j, goldLabel := range goldSeq {
			testLabel := test[i][j]
			if goldLabel == testLabel {
				if subset[goldLabel] {
					retval.ByLabel[goldLabel].TP += 1
				}
				sentence.TP += 1
				continue
			}
			sentence.FN += 1
			if subset[goldLabel] {
				retval.ByLabel[goldLabel].FN += 1
			}
			if subset[testLabel] {
				retval.ByLabel[testLabel].FP += 1
			}
		}
		retval.Sentences.AddSentence(sentence)
	}

	for _, result := range retval.ByLabel {
		retval.Micro.Add(result)
	}
	return retval, nil
}
