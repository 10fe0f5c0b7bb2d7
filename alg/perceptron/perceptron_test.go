package perceptron

import (
	"sort"
	"strings"
	"testing"

	"github.com/karim-Grid/named-entity-recognition/nlp/features"
)

func corpus(sentences [][2]string) ([][]*features.FeatureSet, [][]string) {
	featureSets := make([][]*features.FeatureSet, len(sentences))
	tags := make([][]string, len(sentences))
	for i, sentence := range sentences {
		tokens := strings.Fields(sentence[0])
		featureSets[i] = features.Extract(tokens)
		tags[i] = strings.Fields(sentence[1])
	}
	return featureSets, tags
}

func TestTrainRecoversTrainingTags(t *testing.T) {
	featureSets, tags := corpus([][2]string{
		{"Tom lives in Berlin", "B-person O O B-geo-loc"},
		{"my friend Tom is here", "O O B-person O O"},
		{"Berlin is cold", "B-geo-loc O O"},
		{"she lives in SPACE", "O O O O"},
		{"42 days in Berlin", "O O O B-geo-loc"},
	})

	trainer := &LinearPerceptron{Iterations: 10}
	model, err := trainer.Train(featureSets, tags)
	if err != nil {
		t.Fatal(err)
	}

	predicted, err := trainer.Tag(model, featureSets)
	if err != nil {
		t.Fatal(err)
	}
	if len(predicted) != len(tags) {
		t.Fatalf("Expected %d predicted sequences, got %d", len(tags), len(predicted))
	}
	for i, goldSeq := range tags {
		if len(predicted[i]) != len(goldSeq) {
			t.Fatalf("Sequence %d: expected %d tags, got %d", i, len(goldSeq), len(predicted[i]))
		}
		for j, gold := range goldSeq {
			if predicted[i][j] != gold {
				t.Errorf("Sequence %d position %d: expected %s, got %s",
					i, j, gold, predicted[i][j])
			}
		}
	}
}

func TestModelLabels(t *testing.T) {
	featureSets, tags := corpus([][2]string{
		{"Tom met Jerry", "B-person O B-person"},
		{"in Berlin", "O B-geo-loc"},
	})
	model, err := (&LinearPerceptron{Iterations: 2}).Train(featureSets, tags)
	if err != nil {
		t.Fatal(err)
	}

	labels := model.Labels()
	sort.Strings(labels)
	expected := []string{"B-geo-loc", "B-person", "O"}
	if len(labels) != len(expected) {
		t.Fatalf("Expected labels %v, got %v", expected, labels)
	}
	for i, label := range labels {
		if label != expected[i] {
			t.Errorf("Expected label %s, got %s", expected[i], label)
		}
	}
}

func TestTrainMisalignedCorpus(t *testing.T) {
	featureSets, tags := corpus([][2]string{
		{"Tom met Jerry", "B-person O B-person"},
	})

	trainer := &LinearPerceptron{Iterations: 1}
	if _, err := trainer.Train(featureSets, nil); err == nil {
		t.Error("Expected error for corpus-level misalignment")
	}

	tags[0] = tags[0][:2]
	if _, err := trainer.Train(featureSets, tags); err == nil {
		t.Error("Expected error for sequence-level misalignment")
	}
}

func TestTagUnknownFeatures(t *testing.T) {
	featureSets, tags := corpus([][2]string{
		{"Tom lives here", "B-person O O"},
	})
	trainer := &LinearPerceptron{Iterations: 3}
	model, err := trainer.Train(featureSets, tags)
	if err != nil {
		t.Fatal(err)
	}

	unseen := features.Extract(strings.Fields("zzzqqq wibblewobble"))
	predicted, err := trainer.Tag(model, [][]*features.FeatureSet{unseen})
	if err != nil {
		t.Fatal(err)
	}
	if len(predicted[0]) != 2 {
		t.Fatalf("Expected 2 predicted tags, got %d", len(predicted[0]))
	}
}
