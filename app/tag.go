package app

import (
	"log"

	"github.com/karim-Grid/named-entity-recognition/alg/perceptron"
	"github.com/karim-Grid/named-entity-recognition/nlp/features"
	"github.com/karim-Grid/named-entity-recognition/nlp/format/twitter"
	"github.com/karim-Grid/named-entity-recognition/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func TagCorpus(cmd *commander.Command, args []string) {
	REQUIRED_FLAGS := []string{"m", "in", "oc"}
	VerifyFlags(cmd, REQUIRED_FLAGS)

	if !VerifyExists(modelFile) || !VerifyExists(input) {
		return
	}
	if allOut {
		log.Println("Found model file", modelFile, " ... loading model")
	}
	serialization := ReadModel(modelFile)
	model := serialization.Model
	tagger := &perceptron.LinearPerceptron{}

	sents, err := twitter.ReadTokensFile(input)
	if err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Read", len(sents), "tweets from", input)
		log.Println("Tagging")
	}
	featureSets := make([][]*features.FeatureSet, len(sents))
	for i, tokens := range sents {
		featureSets[i] = features.Extract(tokens)
	}
	predicted, err := tagger.Tag(model, featureSets)
	if err != nil {
		log.Fatalln(err)
	}

	tagged := make([]types.TaggedSentence, len(sents))
	for i, tokens := range sents {
		sentence := make(types.TaggedSentence, len(tokens))
		for j, token := range tokens {
			sentence[j] = types.TaggedToken{Token: token, Tag: predicted[i][j]}
		}
		tagged[i] = sentence
	}
	if err := twitter.WriteFile(outTagged, tagged); err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Wrote", len(tagged), "tagged tweets to", outTagged)
	}
}

func TagCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       TagCorpus,
		UsageLine: "tag <file options> [arguments]",
		Short:     "tags a tokenized twitter corpus",
		Long: `
tags a tokenized twitter corpus

	$ ./ner tag -m <model file> -in <tokens file> -oc <output token/tag file> [options]

`,
		Flag: *flag.NewFlagSet("tag", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "", "Model File")
	cmd.Flag.StringVar(&input, "in", "", "Input tokens File (one token per line, blank line between tweets)")
	cmd.Flag.StringVar(&outTagged, "oc", "", "Output token/tag File")
	return cmd
}
