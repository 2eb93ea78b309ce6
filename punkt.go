// Package punkt implements the Kiss-Strunk algorithm for unsupervised
// sentence boundary detection. It trains a statistical model of
// abbreviations, collocations, and sentence-starting words from a corpus
// — which may be the very text to be segmented — and uses that model to
// split text into sentences without labeled data.
//
// A typical one-pass workflow trains and segments the same text:
//
//	m := punkt.NewModel()
//	tr := punkt.NewTrainer(params.Default())
//	tr.Train(text, m)
//	for s := range punkt.NewTokenizer(params.Default(), m).All(text) {
//	    fmt.Println(s)
//	}
//
// A pretrained-model workflow skips training entirely:
//
//	m, err := punkt.Load("english")
//	tz := punkt.NewTokenizer(params.Default(), m)
//	sentences := tz.Sentences(text)
package punkt

import (
	"fmt"

	"github.com/az-ai-labs/go-punkt/lang/english"
	"github.com/az-ai-labs/go-punkt/model"
	"github.com/az-ai-labs/go-punkt/params"
	"github.com/az-ai-labs/go-punkt/sentence"
	"github.com/az-ai-labs/go-punkt/train"
)

// Trainer accumulates frequency counts from training documents and
// derives a Model's abbreviation, collocation, and sentence-starter
// tables from them.
type Trainer = train.Trainer

// Tokenizer splits text into sentences using a finalized Model.
type Tokenizer = sentence.Tokenizer

// Model is the mutable training store and the finalized decision tables
// a Tokenizer reads.
type Model = model.Model

// NewModel returns an empty, writable training model.
func NewModel() *Model {
	return model.New()
}

// Load returns a finalized pretrained model for language. Only "english"
// is bundled; any other language returns an error. Load never returns a
// partially populated model: a corrupted embedded payload surfaces as a
// single wrapped error.
func Load(language string) (*Model, error) {
	switch language {
	case "english":
		return english.Load()
	default:
		return nil, fmt.Errorf("punkt: unsupported language %q", language)
	}
}

// NewTrainer returns a Trainer configured with p. Call Train one or more
// times with documents to accumulate into a Model, then Finalize (or rely
// on Train's own provisional finalize) to populate its derived sets.
func NewTrainer(p params.Params) *Trainer {
	return train.New(p)
}

// NewTokenizer returns a Tokenizer over m using parameter set p. m must
// be finalized; the Tokenizer never mutates it.
func NewTokenizer(p params.Params, m *Model) *Tokenizer {
	return sentence.New(p, m)
}
