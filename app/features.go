package app

import (
	"log"
	"os"

	"github.com/karim-Grid/named-entity-recognition/nlp/features"
	"github.com/karim-Grid/named-entity-recognition/nlp/format/twitter"

	"github.com/davecgh/go-spew/spew"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func DumpFeatures(cmd *commander.Command, args []string) {
	REQUIRED_FLAGS := []string{"in"}
	VerifyFlags(cmd, REQUIRED_FLAGS)

	if !VerifyExists(input) {
		return
	}
	sents, err := twitter.ReadFile(input)
	if err != nil {
		log.Fatalln(err)
	}
	if dumpLimit > 0 && dumpLimit < len(sents) {
		sents = sents[:dumpLimit]
	}
	log.Println("Dumping features for", len(sents), "tweets")
	for _, sentence := range sents {
		tokens := sentence.Tokens()
		spew.Fdump(os.Stdout, tokens, features.Extract(tokens))
	}
}

func FeaturesCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       DumpFeatures,
		UsageLine: "features <file options> [arguments]",
		Short:     "dumps extracted feature sets for inspection",
		Long: `
dumps extracted feature sets for inspection

	$ ./ner features -in <token/tag file> [-n <tweets>] [options]

`,
		Flag: *flag.NewFlagSet("features", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Input token/tag File")
	cmd.Flag.IntVar(&dumpLimit, "n", 0, "Limit dump to first n tweets; 0 = all")
	return cmd
}
