package app

import (
	"fmt"
	"log"

	"github.com/karim-Grid/named-entity-recognition/eval"
	"github.com/karim-Grid/named-entity-recognition/nlp/format/twitter"
	"github.com/karim-Grid/named-entity-recognition/util/conf"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

// PrintEvalReport scores predicted against gold and writes the per-label
// and micro-averaged precision/recall/F1 table. A nil label subset
// scores every label except O.
func PrintEvalReport(gold, predicted [][]string, labels []string) {
	labeled, err := eval.Tagged(gold, predicted, labels)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("%-16s %10s %10s %10s\n", "label", "precision", "recall", "f1")
	for _, label := range labeled.Labels() {
		result := labeled.ByLabel[label]
		fmt.Printf("%-16s %10.4f %10.4f %10.4f\n",
			label, result.Precision(), result.Recall(), result.F1())
	}
	fmt.Printf("%-16s %10.4f %10.4f %10.4f\n",
		"micro avg", labeled.Micro.Precision(), labeled.Micro.Recall(), labeled.Micro.F1())
	fmt.Printf("exact sentence match: %.4f (%d/%d)\n",
		labeled.Sentences.ExactMatch(), labeled.Sentences.Exact, labeled.Sentences.Population)
}

func EvalTagged(cmd *commander.Command, args []string) {
	REQUIRED_FLAGS := []string{"g", "p"}
	VerifyFlags(cmd, REQUIRED_FLAGS)

	if !VerifyExists(inputGold) || !VerifyExists(inputPred) {
		return
	}
	goldSents, err := twitter.ReadFile(inputGold)
	if err != nil {
		log.Fatalln(err)
	}
	predSents, err := twitter.ReadFile(inputPred)
	if err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Read", len(goldSents), "gold and", len(predSents), "predicted tweets")
	}

	var labels []string
	if len(labelsFile) > 0 {
		labelConf, err := conf.ReadFile(labelsFile)
		if err != nil {
			log.Println("Failed reading labels configuration file:", labelsFile)
			log.Fatalln(err)
		}
		labels = labelConf.Values
	}

	gold := make([][]string, len(goldSents))
	for i, sentence := range goldSents {
		gold[i] = sentence.Tags()
	}
	predicted := make([][]string, len(predSents))
	for i, sentence := range predSents {
		predicted[i] = sentence.Tags()
	}
	PrintEvalReport(gold, predicted, labels)
}

func EvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       EvalTagged,
		UsageLine: "eval <file options> [arguments]",
		Short:     "scores predicted against gold token/tag files",
		Long: `
scores predicted against gold token/tag files

	$ ./ner eval -g <gold token/tag file> -p <predicted token/tag file> [-l <labels conf>] [options]

`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold token/tag File")
	cmd.Flag.StringVar(&inputPred, "p", "", "Predicted token/tag File")
	cmd.Flag.StringVar(&labelsFile, "l", "", "Optional - Labels Configuration File (one label per line; default all but O)")
	return cmd
}
