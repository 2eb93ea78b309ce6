// Package english embeds a pretrained Punkt model for English: a compact
// table of abbreviations, collocations, sentence starters, and
// orthographic context, carried as a go:embed JSON asset and decoded at
// load time.
package english

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/az-ai-labs/go-punkt/model"
)

//go:embed data.json
var rawData []byte

// payload mirrors the shape of data.json. OrthographicContext values are
// raw model.OrthoFlag bitsets, so the asset can be regenerated by any tool
// that writes that same bit encoding.
type payload struct {
	Abbreviations       []string         `json:"abbreviations"`
	Collocations        [][2]string      `json:"collocations"`
	SentenceStarters    []string         `json:"sentence_starters"`
	OrthographicContext map[string]uint8 `json:"orthographic_context"`
}

var (
	loadOnce sync.Once
	cached   *model.Model
	loadErr  error
)

// Load returns a finalized model.Model built from the embedded English
// language data. The returned model is decoded once and shared; callers
// must not mutate it. Load never returns a partially populated model: on
// decode failure it returns a nil model and a wrapped error.
func Load() (*model.Model, error) {
	loadOnce.Do(func() {
		cached, loadErr = decode(rawData)
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return cached, nil
}

func decode(raw []byte) (*model.Model, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("english: decode pretrained model: %w", err)
	}

	m := model.New()

	abbrevs := make(map[string]bool, len(p.Abbreviations))
	for _, a := range p.Abbreviations {
		abbrevs[a] = true
	}

	collocations := make(map[model.Pair]bool, len(p.Collocations))
	for _, pair := range p.Collocations {
		collocations[model.Pair{First: pair[0], Second: pair[1]}] = true
	}

	starters := make(map[string]bool, len(p.SentenceStarters))
	for _, s := range p.SentenceStarters {
		starters[s] = true
	}

	for typ, flag := range p.OrthographicContext {
		m.OrthographicContext[typ] = model.OrthoFlag(flag)
	}

	m.SetDerived(abbrevs, collocations, starters)
	return m, nil
}
