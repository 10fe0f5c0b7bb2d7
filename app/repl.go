package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/karim-Grid/named-entity-recognition/alg/perceptron"
	"github.com/karim-Grid/named-entity-recognition/nlp/features"
	"github.com/karim-Grid/named-entity-recognition/nlp/format/twitter"

	"github.com/c-bata/go-prompt"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func replCompleter(labels []string) func(in prompt.Document) []prompt.Suggest {
	suggests := make([]prompt.Suggest, len(labels))
	for i, label := range labels {
		suggests[i] = prompt.Suggest{Text: label}
	}
	return func(in prompt.Document) []prompt.Suggest {
		if len(in.GetWordBeforeCursor()) == 0 {
			return nil
		}
		return prompt.FilterHasPrefix(suggests, in.GetWordBeforeCursor(), true)
	}
}

func ReplNER(cmd *commander.Command, args []string) {
	REQUIRED_FLAGS := []string{"m"}
	VerifyFlags(cmd, REQUIRED_FLAGS)

	if !VerifyExists(modelFile) {
		return
	}
	serialization := ReadModel(modelFile)
	model := serialization.Model
	tagger := &perceptron.LinearPerceptron{}
	log.Println("Loaded model with labels", model.Labels())
	log.Println("Type a tweet to tag it; empty line exits")

	completer := replCompleter(model.Labels())
	for {
		in := prompt.Input("ner> ", completer,
			prompt.OptionTitle("twitter ner"),
			prompt.OptionMaxSuggestion(12),
		)
		if len(strings.TrimSpace(in)) == 0 {
			return
		}
		tokens := strings.Fields(in)
		for i, token := range tokens {
			tokens[i] = twitter.NormalizeToken(token)
		}
		predicted, err := tagger.Tag(model, [][]*features.FeatureSet{features.Extract(tokens)})
		if err != nil {
			log.Println(err)
			continue
		}
		for i, token := range tokens {
			fmt.Printf("%s/%s ", token, predicted[0][i])
		}
		fmt.Println()
	}
}

func ReplCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       ReplNER,
		UsageLine: "repl <file options> [arguments]",
		Short:     "tags typed tweets interactively",
		Long: `
tags typed tweets interactively

	$ ./ner repl -m <model file> [options]

`,
		Flag: *flag.NewFlagSet("repl", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "", "Model File")
	return cmd
}
