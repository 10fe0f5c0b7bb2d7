package perceptron

import (
	"github.com/karim-Grid/named-entity-recognition/util"
)

// ChainModel is a linear-chain model over enumerated features: sparse
// per-label emission weights plus a dense label-transition matrix.
// Transitions row 0 is the sentence-boundary state; row l+1 is label l.
type ChainModel struct {
	EFeature    *util.EnumSet
	ELabel      *util.EnumSet
	Emissions   []map[int]float64
	Transitions [][]float64
}

func NewChainModel(eFeature, eLabel *util.EnumSet) *ChainModel {
	numLabels := eLabel.Len()
	emissions := make([]map[int]float64, numLabels)
	for i := range emissions {
		emissions[i] = make(map[int]float64)
	}
	transitions := make([][]float64, numLabels+1)
	for i := range transitions {
		transitions[i] = make([]float64, numLabels)
	}
	return &ChainModel{
		EFeature:    eFeature,
		ELabel:      eLabel,
		Emissions:   emissions,
		Transitions: transitions,
	}
}

func (m *ChainModel) Labels() []string {
	labels := make([]string, m.ELabel.Len())
	for i := range labels {
		labels[i] = m.ELabel.ValueOf(i)
	}
	return labels
}

func (m *ChainModel) EmissionScore(label int, feats []int) float64 {
	var score float64
	weights := m.Emissions[label]
	for _, feat := range feats {
		score += weights[feat]
	}
	return score
}

// Decode runs Viterbi over the label chain for one sentence, given the
// enumerated feature ids per position. Returns one label id per
// position.
func (m *ChainModel) Decode(feats [][]int) []int {
	numLabels := m.ELabel.Len()
	n := len(feats)
	if n == 0 || numLabels == 0 {
		return nil
	}

	scores := make([][]float64, n)
	backptr := make([][]int, n)
	for i := range scores {
		scores[i] = make([]float64, numLabels)
		backptr[i] = make([]int, numLabels)
	}

	for label := 0; label < numLabels; label++ {
		scores[0][label] = m.Transitions[0][label] + m.EmissionScore(label, feats[0])
	}
	for i := 1; i < n; i++ {
		for label := 0; label < numLabels; label++ {
			emission := m.EmissionScore(label, feats[i])
			best, bestPrev := scores[i-1][0]+m.Transitions[1][label], 0
			for prev := 1; prev < numLabels; prev++ {
				if score := scores[i-1][prev] + m.Transitions[prev+1][label]; score > best {
					best, bestPrev = score, prev
				}
			}
			scores[i][label] = best + emission
			backptr[i][label] = bestPrev
		}
	}

	best, bestLabel := scores[n-1][0], 0
	for label := 1; label < numLabels; label++ {
		if scores[n-1][label] > best {
			best, bestLabel = scores[n-1][label], label
		}
	}
	path := make([]int, n)
	path[n-1] = bestLabel
	for i := n - 1; i > 0; i-- {
		path[i-1] = backptr[i][path[i]]
	}
	return path
}

// avgSparse accumulates sparse emission weights with lazy averaging:
// totals are brought up to date only when a weight moves, stamped with
// the update counter.
type avgSparse struct {
	weights []map[int]float64
	totals  []map[int]float64
	stamps  []map[int]int
}

func newAvgSparse(numLabels int) *avgSparse {
	v := &avgSparse{
		weights: make([]map[int]float64, numLabels),
		totals:  make([]map[int]float64, numLabels),
		stamps:  make([]map[int]int, numLabels),
	}
	for i := 0; i < numLabels; i++ {
		v.weights[i] = make(map[int]float64)
		v.totals[i] = make(map[int]float64)
		v.stamps[i] = make(map[int]int)
	}
	return v
}

func (v *avgSparse) add(label, feat int, amount float64, now int) {
	v.totals[label][feat] += float64(now-v.stamps[label][feat]) * v.weights[label][feat]
	v.stamps[label][feat] = now
	v.weights[label][feat] += amount
}

func (v *avgSparse) average(now int) []map[int]float64 {
	averaged := make([]map[int]float64, len(v.weights))
	for label, weights := range v.weights {
		averaged[label] = make(map[int]float64, len(weights))
		for feat, weight := range weights {
			total := v.totals[label][feat] + float64(now-v.stamps[label][feat])*weight
			averaged[label][feat] = total / float64(now)
		}
	}
	return averaged
}

// avgDense is the dense analog of avgSparse, for the transition matrix.
type avgDense struct {
	weights [][]float64
	totals  [][]float64
	stamps  [][]int
}

func newAvgDense(rows, cols int) *avgDense {
	v := &avgDense{
		weights: make([][]float64, rows),
		totals:  make([][]float64, rows),
		stamps:  make([][]int, rows),
	}
	for i := 0; i < rows; i++ {
		v.weights[i] = make([]float64, cols)
		v.totals[i] = make([]float64, cols)
		v.stamps[i] = make([]int, cols)
	}
	return v
}

func (v *avgDense) add(row, col int, amount float64, now int) {
	v.totals[row][col] += float64(now-v.stamps[row][col]) * v.weights[row][col]
	v.stamps[row][col] = now
	v.weights[row][col] += amount
}

func (v *avgDense) average(now int) [][]float64 {
	averaged := make([][]float64, len(v.weights))
	for row, weights := range v.weights {
		averaged[row] = make([]float64, len(weights))
		for col, weight := range weights {
			total := v.totals[row][col] + float64(now-v.stamps[row][col])*weight
			averaged[row][col] = total / float64(now)
		}
	}
	return averaged
}
