package app

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/karim-Grid/named-entity-recognition/alg/perceptron"

	"github.com/gonuts/commander"
)

func init() {
	gob.Register(&Serialization{})
}

var (
	allOut bool = true

	// processing options
	Iterations int

	// file names
	tTrain     string
	tTest      string
	input      string
	inputGold  string
	inputPred  string
	outTagged  string
	modelFile  string
	labelsFile string

	dumpLimit int
)

type Serialization struct {
	Model *perceptron.ChainModel
}

func WriteModel(file string, data *Serialization) {
	fObj, err := os.Create(file)
	if err != nil {
		log.Fatalln("Failed creating model file", file, err)
		return
	}
	defer fObj.Close()
	writer := gob.NewEncoder(fObj)
	if err := writer.Encode(data); err != nil {
		log.Fatalln("Failed encoding model", err)
	}
}

func ReadModel(file string) *Serialization {
	data := &Serialization{}
	fObj, err := os.Open(file)
	if err != nil {
		log.Fatalln("Failed reading model from", file, err)
		return nil
	}
	defer fObj.Close()
	reader := gob.NewDecoder(fObj)
	if err := reader.Decode(data); err != nil {
		log.Fatalln("Failed decoding model from", file, err)
	}
	return data
}

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}
