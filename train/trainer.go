// Package train implements the Punkt trainer: it consumes token streams to
// accumulate the frequency tables in a model.Model, and derives the three
// decision sets (abbreviations, collocations, sentence starters) from them
// via Dunning log-likelihood tests.
package train

import (
	"math"
	"strings"
	"unicode"

	"github.com/az-ai-labs/go-punkt/internal/llstat"
	"github.com/az-ai-labs/go-punkt/model"
	"github.com/az-ai-labs/go-punkt/params"
	"github.com/az-ai-labs/go-punkt/token"
)

// Trainer trains a model.Model from text under a fixed parameter set. It
// holds no mutable state of its own; all accumulated state lives in the
// model passed to Train.
type Trainer struct {
	Params params.Params
}

// New returns a Trainer configured with p.
func New(p params.Params) *Trainer {
	return &Trainer{Params: p}
}

// Train lexes text, accumulates its counts into m, and provisionally
// recomputes m's derived sets so m can be used to tokenize the same text in
// a one-pass workflow. Train is additive: calling it again with more text
// grows m's frequency tables further. An empty text is a no-op.
func (tr *Trainer) Train(text string, m *model.Model) {
	toks := token.Lex(text)
	if len(toks) == 0 {
		return
	}

	tr.countPass(toks, m)
	tr.annotatePass(toks, m)
	tr.Finalize(m)
}

// countPass implements spec §4.4.1: accumulate per-type and per-collocation
// frequencies from a single document's tokens.
func (tr *Trainer) countPass(toks []token.Token, m *model.Model) {
	for i, t := range toks {
		m.IncrementType(t.Type, t.PeriodFinal)
		if i+1 < len(toks) {
			m.IncrementCollocation(t.Type, toks[i+1].Type)
		}
	}
}

// annotatePass implements spec §4.4.3: it provisionally classifies each
// period-bearing token as an abbreviation or a sentence break using the
// abbreviation set computed from the counts accumulated so far, updates
// the orthographic-context table, and feeds sentence_starter_fdist for
// every token observed in sentence-initial position.
func (tr *Trainer) annotatePass(toks []token.Token, m *model.Model) {
	abbrevs := tr.computeAbbreviations(m)

	prevBreak := false
	for i := range toks {
		t := &toks[i]
		isInitial := t.ParagraphStart || prevBreak

		if r, ok := token.FirstCasedRune(t.Surface, tr.Params.NonPrefixChars); ok {
			upper := unicode.IsUpper(r)
			pos := model.PositionInternal
			if isInitial {
				pos = model.PositionInitial
			}
			m.UpdateOrthographicContext(t.Type, upper, pos)
			if isInitial {
				m.IncrementSentenceStarter(t.Type)
			}
		}

		broke := tr.provisionalBreak(t, toks, i, abbrevs, m)
		t.HasSentenceBreak = broke
		if broke {
			m.AddSentenceBreak()
		}
		prevBreak = broke
	}
}

// provisionalBreak decides whether token i ends a sentence for training
// purposes, per spec §4.4.3's three bullets plus the unambiguous
// single-character sentence enders ('!' and '?').
func (tr *Trainer) provisionalBreak(t *token.Token, toks []token.Token, i int, abbrevs map[string]bool, m *model.Model) bool {
	switch {
	case token.IsEllipsisShape(t.Surface):
		t.IsEllipsis = true
		if i+1 >= len(toks) {
			return false
		}
		next := toks[i+1]
		r, ok := token.FirstCasedRune(next.Surface, tr.Params.NonPrefixChars)
		return ok && unicode.IsUpper(r) && m.IsSentenceStarter(next.Type)
	case t.PeriodFinal:
		if abbrevs[t.Type] {
			t.IsAbbreviation = true
			return false
		}
		return true
	default:
		return token.IsLoneSentenceEnder(t.Surface, tr.Params.SentenceEndings)
	}
}

// Finalize recomputes m's three derived sets from its current frequency
// tables. It does not consume any document and is idempotent: calling it
// again with no intervening Train call reproduces the same sets.
func (tr *Trainer) Finalize(m *model.Model) {
	abbrevs := tr.computeAbbreviations(m)
	collocations := tr.computeCollocations(m, abbrevs)
	starters := tr.computeSentenceStarters(m)
	m.SetDerived(abbrevs, collocations, starters)
}

// computeAbbreviations implements spec §4.4.2.
func (tr *Trainer) computeAbbreviations(m *model.Model) map[string]bool {
	p := tr.Params
	out := make(map[string]bool)
	n := float64(m.TotalTokenCount())
	nDot := float64(m.PeriodTokenCount)

	for key := range m.TypeFdist {
		t, isPeriodForm := strings.CutSuffix(key, ".")
		if !isPeriodForm {
			continue
		}
		k1 := float64(m.CountWithPeriod(t))
		if k1 == 0 {
			continue
		}
		n1 := float64(m.CountTotal(t))
		k2 := nDot - k1
		n2 := n - n1

		ll := llstat.Dunning(k1, n1, k2, n2)

		runeLen := float64(len([]rune(t)))
		if p.AbbrevUpperBound > 0 && runeLen > p.AbbrevUpperBound {
			runeLen = p.AbbrevUpperBound
		}
		lengthPenalty := 1.0
		if !p.IgnoreAbbrevPenalty {
			lengthPenalty = math.Exp(-runeLen)
		}
		periodsInternalBonus := float64(strings.Count(t, ".")) + 1
		finalPeriodBonus := 1.0 / (1.0 + (n1 - k1))

		adjusted := ll * lengthPenalty * periodsInternalBonus * finalPeriodBonus
		if adjusted >= p.AbbrevLowerBound {
			out[t] = true
		}
	}
	return out
}

// computeCollocations implements spec §4.4.4's collocation half.
func (tr *Trainer) computeCollocations(m *model.Model, abbrevs map[string]bool) map[model.Pair]bool {
	p := tr.Params
	out := make(map[model.Pair]bool)
	n := float64(m.TotalTokenCount())

	for pair, rawCount := range m.CollocationFdist {
		w1, w2 := pair.First, pair.Second
		qualifies := p.IncludeAllCollocations ||
			m.CountWithPeriod(w1) > 0 ||
			(p.IncludeAbbrevCollocations && abbrevs[w1])
		if !qualifies {
			continue
		}

		colCount := float64(rawCount)
		typ1Count := float64(m.CountTotal(w1))
		typ2Count := float64(m.CountTotal(w2))
		if typ1Count <= 1 || typ2Count <= 1 {
			continue
		}
		if colCount <= p.CollocationFrequencyLowerBound {
			continue
		}
		if colCount > min(typ1Count, typ2Count) {
			continue
		}

		k1 := colCount
		n1 := typ1Count
		k2 := typ2Count - colCount
		n2 := n - typ1Count

		ll := llstat.Dunning(k1, n1, k2, n2)
		if ll >= p.CollocationLowerBound {
			out[pair] = true
		}
	}
	return out
}

// computeSentenceStarters implements spec §4.4.4's sentence-starter half.
func (tr *Trainer) computeSentenceStarters(m *model.Model) map[string]bool {
	p := tr.Params
	out := make(map[string]bool)
	n := float64(m.TotalTokenCount())
	breaks := float64(m.SentenceBreakCount)
	if breaks == 0 {
		return out
	}

	for typ, atBreak := range m.SentenceStarterFdist {
		if atBreak <= 0 {
			continue
		}
		typCount := float64(m.CountTotal(typ))
		k1 := float64(atBreak)
		if typCount < k1 {
			continue
		}

		n1 := breaks
		k2 := typCount - k1
		n2 := n - breaks

		ll := llstat.Dunning(k1, n1, k2, n2)
		if ll >= p.SentenceStarterLowerBound {
			out[typ] = true
		}
	}
	return out
}
