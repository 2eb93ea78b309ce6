package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/az-ai-labs/go-punkt/model"
)

// modelFile is the on-disk shape of a trained model written by the train
// subcommand and read back by segment --model. It carries only the
// derived decision sets and orthographic context, not the raw frequency
// tables: the format is opaque to the core per its external-interface
// contract, and the CLI is free to choose any serialization.
type modelFile struct {
	Abbreviations       []string         `json:"abbreviations"`
	Collocations        [][2]string      `json:"collocations"`
	SentenceStarters    []string         `json:"sentence_starters"`
	OrthographicContext map[string]uint8 `json:"orthographic_context"`
}

func saveModel(path string, m *model.Model) error {
	var mf modelFile
	for t := range m.Abbreviations {
		mf.Abbreviations = append(mf.Abbreviations, t)
	}
	for pair := range m.Collocations {
		mf.Collocations = append(mf.Collocations, [2]string{pair.First, pair.Second})
	}
	for t := range m.SentenceStarters {
		mf.SentenceStarters = append(mf.SentenceStarters, t)
	}
	mf.OrthographicContext = make(map[string]uint8, len(m.OrthographicContext))
	for t, flag := range m.OrthographicContext {
		mf.OrthographicContext[t] = uint8(flag)
	}

	raw, err := json.MarshalIndent(mf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write model file: %w", err)
	}
	return nil
}

func loadModelFile(path string) (*model.Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	var mf modelFile
	if err := json.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("decode model file: %w", err)
	}

	abbrevs := make(map[string]bool, len(mf.Abbreviations))
	for _, a := range mf.Abbreviations {
		abbrevs[a] = true
	}
	collocations := make(map[model.Pair]bool, len(mf.Collocations))
	for _, pair := range mf.Collocations {
		collocations[model.Pair{First: pair[0], Second: pair[1]}] = true
	}
	starters := make(map[string]bool, len(mf.SentenceStarters))
	for _, s := range mf.SentenceStarters {
		starters[s] = true
	}

	m := model.New()
	for t, flag := range mf.OrthographicContext {
		m.OrthographicContext[t] = model.OrthoFlag(flag)
	}
	m.SetDerived(abbrevs, collocations, starters)
	return m, nil
}
