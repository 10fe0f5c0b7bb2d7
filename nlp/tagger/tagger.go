package tagger

// Package tagger is the boundary between the corpus pipeline and the
// sequence labeling engine. The reader and extractor depend only on
// these interfaces, never on a concrete engine.

import (
	"github.com/karim-Grid/named-entity-recognition/nlp/features"
)

// Model is a trained sequence labeler exposing its learned label
// vocabulary.
type Model interface {
	Labels() []string
}

// Trainer consumes index-aligned feature and tag sequences. A length
// divergence between the two is an invariant violation and must be
// reported, never truncated.
type Trainer interface {
	Train(featureSets [][]*features.FeatureSet, tags [][]string) (Model, error)
}

// Tagger predicts tag sequences of the same shape as its input feature
// sequences.
type Tagger interface {
	Tag(model Model, featureSets [][]*features.FeatureSet) ([][]string, error)
}
