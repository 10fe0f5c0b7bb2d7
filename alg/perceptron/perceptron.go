package perceptron

// Averaged structured perceptron for linear-chain sequence labeling.
// Gold and decoded label chains are compared per position; emission and
// transition weights move by +1/-1 and the returned model carries the
// averaged weights.

import (
	"fmt"
	"log"

	"github.com/karim-Grid/named-entity-recognition/nlp/features"
	"github.com/karim-Grid/named-entity-recognition/nlp/tagger"
	"github.com/karim-Grid/named-entity-recognition/util"
)

const (
	APPROX_FEATURES = 8192
	APPROX_LABELS   = 32
)

type LinearPerceptron struct {
	Iterations int
	Log        bool

	// OnIteration, when set, is called after every training iteration.
	OnIteration func(iteration int)
}

var _ tagger.Trainer = &LinearPerceptron{}
var _ tagger.Tagger = &LinearPerceptron{}

// Train enumerates features and labels from the gold corpus and runs
// averaged perceptron iterations with Viterbi decoding. Feature and tag
// sequences must be index-aligned; divergence is an invariant violation
// reported as an error.
func (p *LinearPerceptron) Train(featureSets [][]*features.FeatureSet, tags [][]string) (tagger.Model, error) {
	if len(featureSets) != len(tags) {
		return nil, fmt.Errorf("corpus misaligned: %d feature sequences for %d tag sequences",
			len(featureSets), len(tags))
	}
	if len(featureSets) == 0 {
		return nil, fmt.Errorf("empty training corpus")
	}
	for i, featSeq := range featureSets {
		if len(featSeq) != len(tags[i]) {
			return nil, fmt.Errorf("sequence %d misaligned: %d feature sets for %d tags",
				i, len(featSeq), len(tags[i]))
		}
		if len(featSeq) == 0 {
			return nil, fmt.Errorf("sequence %d is empty", i)
		}
	}

	iterations := p.Iterations
	if iterations <= 0 {
		iterations = 1
	}

	eFeature := util.NewEnumSet(APPROX_FEATURES)
	eLabel := util.NewEnumSet(APPROX_LABELS)
	enumFeats := make([][][]int, len(featureSets))
	enumTags := make([][]int, len(featureSets))
	for i, featSeq := range featureSets {
		enumFeats[i] = make([][]int, len(featSeq))
		enumTags[i] = make([]int, len(featSeq))
		for j, featureSet := range featSeq {
			feats := featureSet.Features()
			ids := make([]int, len(feats))
			for k, feat := range feats {
				ids[k], _ = eFeature.Add(feat)
			}
			enumFeats[i][j] = ids
			enumTags[i][j], _ = eLabel.Add(tags[i][j])
		}
	}
	eFeature.Frozen = true
	eLabel.Frozen = true
	numLabels := eLabel.Len()

	emissions := newAvgSparse(numLabels)
	transitions := newAvgDense(numLabels+1, numLabels)

	// the working model aliases the live (non-averaged) weights
	working := &ChainModel{
		EFeature:    eFeature,
		ELabel:      eLabel,
		Emissions:   emissions.weights,
		Transitions: transitions.weights,
	}

	var now int
	for it := 0; it < iterations; it++ {
		var mistakes int
		for i, featSeq := range enumFeats {
			now++
			gold := enumTags[i]
			decoded := working.Decode(featSeq)
			for j := range gold {
				if gold[j] != decoded[j] {
					mistakes++
					for _, feat := range featSeq[j] {
						emissions.add(gold[j], feat, 1, now)
						emissions.add(decoded[j], feat, -1, now)
					}
				}
				goldPrev, decodedPrev := 0, 0
				if j > 0 {
					goldPrev, decodedPrev = gold[j-1]+1, decoded[j-1]+1
				}
				if goldPrev != decodedPrev || gold[j] != decoded[j] {
					transitions.add(goldPrev, gold[j], 1, now)
					transitions.add(decodedPrev, decoded[j], -1, now)
				}
			}
		}
		if p.Log {
			log.Println("Iteration", it, "token mistakes", mistakes)
		}
		if p.OnIteration != nil {
			p.OnIteration(it)
		}
	}

	model := &ChainModel{
		EFeature:    eFeature,
		ELabel:      eLabel,
		Emissions:   emissions.average(now),
		Transitions: transitions.average(now),
	}
	return model, nil
}

// Tag decodes each feature sequence with the trained model. Features
// unseen at training time are skipped; output shape matches the input
// shape exactly.
func (p *LinearPerceptron) Tag(model tagger.Model, featureSets [][]*features.FeatureSet) ([][]string, error) {
	chain, ok := model.(*ChainModel)
	if !ok {
		return nil, fmt.Errorf("unsupported model type %T", model)
	}
	if chain.ELabel.Len() == 0 {
		return nil, fmt.Errorf("model has no labels")
	}

	predicted := make([][]string, len(featureSets))
	for i, featSeq := range featureSets {
		enumerated := make([][]int, len(featSeq))
		for j, featureSet := range featSeq {
			feats := featureSet.Features()
			ids := make([]int, 0, len(feats))
			for _, feat := range feats {
				if id, exists := chain.EFeature.IndexOf(feat); exists {
					ids = append(ids, id)
				}
			}
			enumerated[j] = ids
		}
		path := chain.Decode(enumerated)
		labels := make([]string, len(path))
		for j, labelID := range path {
			labels[j] = chain.ELabel.ValueOf(labelID)
		}
		predicted[i] = labels
	}
	return predicted, nil
}
