package app

import (
	"fmt"
	"log"
	"os"

	"github.com/karim-Grid/named-entity-recognition/alg/perceptron"
	"github.com/karim-Grid/named-entity-recognition/nlp/features"
	"github.com/karim-Grid/named-entity-recognition/nlp/format/twitter"
	"github.com/karim-Grid/named-entity-recognition/util"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/gosuri/uiprogress"
)

func TrainConfigOut(outModelFile string) {
	log.Println("Configuration")
	log.Printf("Iterations:\t\t%d", Iterations)
	log.Printf("Model file:\t\t%s", outModelFile)
	log.Println()
	log.Println("Data")
	log.Printf("Train file (token/tag):\t%s", tTrain)
	if !VerifyExists(tTrain) {
		os.Exit(1)
	}
	if digest, err := util.MD5File(tTrain); err == nil {
		log.Printf("Train file MD5:\t\t%s", digest)
	}
	if len(tTest) > 0 {
		log.Printf("Test file  (token/tag):\t%s", tTest)
		if !VerifyExists(tTest) {
			os.Exit(1)
		}
	}
}

func TrainNER(cmd *commander.Command, args []string) {
	REQUIRED_FLAGS := []string{"tc", "m"}
	VerifyFlags(cmd, REQUIRED_FLAGS)

	outModelFile := fmt.Sprintf("%s.i%d.model", modelFile, Iterations)
	if allOut {
		TrainConfigOut(outModelFile)
		log.Println()
		log.Println("Reading training tweets from", tTrain)
	}
	sents, err := twitter.ReadFile(tTrain)
	if err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Read", len(sents), "tweets from", tTrain)
		log.Println("Extracting features")
	}
	featureSets, tags := features.ExtractCorpus(sents)

	if allOut {
		log.Println("Training", Iterations, "iteration(s)")
	}
	trainer := &perceptron.LinearPerceptron{Iterations: Iterations}

	uiprogress.Start()
	bar := uiprogress.AddBar(Iterations)
	bar.AppendCompleted()
	trainer.OnIteration = func(iteration int) {
		bar.Incr()
	}
	model, err := trainer.Train(featureSets, tags)
	uiprogress.Stop()
	if err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Done Training")
		log.Println("Learned labels:", model.Labels())
		log.Println("Writing model to", outModelFile)
	}
	WriteModel(outModelFile, &Serialization{model.(*perceptron.ChainModel)})
	if allOut {
		log.Println("Done writing model")
	}

	if len(tTest) > 0 {
		testSents, err := twitter.ReadFile(tTest)
		if err != nil {
			log.Fatalln(err)
		}
		if allOut {
			log.Println()
			log.Println("Read", len(testSents), "tweets from", tTest)
		}
		testFeats, testTags := features.ExtractCorpus(testSents)
		predicted, err := trainer.Tag(model, testFeats)
		if err != nil {
			log.Fatalln(err)
		}
		PrintEvalReport(testTags, predicted, nil)
	}
}

func TrainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       TrainNER,
		UsageLine: "train <file options> [arguments]",
		Short:     "trains a twitter NER model",
		Long: `
trains a twitter NER model

	$ ./ner train -tc <train token/tag file> -m <model prefix> [-it <iterations>] [-test <test token/tag file>] [options]

`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	cmd.Flag.IntVar(&Iterations, "it", 10, "Number of Perceptron Iterations")
	cmd.Flag.StringVar(&modelFile, "m", "model", "Prefix for model file ({m}.i{it}.model)")
	cmd.Flag.StringVar(&tTrain, "tc", "", "Training token/tag File")
	cmd.Flag.StringVar(&tTest, "test", "", "Optional - Test token/tag File (evaluated after training)")
	return cmd
}
