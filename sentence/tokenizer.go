// Package sentence implements the Punkt sentence tokenizer: it streams the
// tokens of one document, classifies every period-bearing token against a
// finalized model.Model, and yields sentence spans.
package sentence

import (
	"unicode"

	"github.com/az-ai-labs/go-punkt/model"
	"github.com/az-ai-labs/go-punkt/params"
	"github.com/az-ai-labs/go-punkt/token"
)

// Tokenizer splits text into sentences using a finalized training model. A
// Tokenizer holds only a read-only reference to Model; it never mutates it,
// so one Model may back multiple Tokenizers used concurrently from
// different goroutines.
type Tokenizer struct {
	Params params.Params
	Model  *model.Model
}

// New returns a Tokenizer over m using the given parameter set.
func New(p params.Params, m *model.Model) *Tokenizer {
	return &Tokenizer{Params: p, Model: m}
}

// Tokens returns text's tokens annotated with HasSentenceBreak,
// IsAbbreviation, and IsEllipsis after both annotation passes.
func (tz *Tokenizer) Tokens(text string) []token.Token {
	toks := token.Lex(text)
	tz.annotateFirstPass(toks)
	tz.annotateSecondPass(toks)
	return toks
}

// Sentences returns text split into sentences, each trimmed of surrounding
// whitespace. An empty text yields an empty (nil) slice; text with no
// sentence-ending punctuation yields a single sentence equal to the
// trimmed input.
func (tz *Tokenizer) Sentences(text string) []string {
	toks := tz.Tokens(text)
	if len(toks) == 0 {
		return nil
	}

	var out []string
	start := toks[0].Offset
	for i, t := range toks {
		if !t.HasSentenceBreak && i != len(toks)-1 {
			continue
		}
		end := t.End()
		out = append(out, text[start:end])
		if i+1 < len(toks) {
			start = toks[i+1].Offset
		}
	}
	return out
}

// All returns a range-over-func iterator over text's sentences. It is a
// wrapper over Sentences: the whole text is lexed, annotated, and split
// before the first sentence is yielded, so stopping early only skips the
// remaining yields, not the work on the rest of the document.
func (tz *Tokenizer) All(text string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for _, s := range tz.Sentences(text) {
			if !yield(s) {
				return
			}
		}
	}
}

// annotateFirstPass implements spec §4.5.1.
func (tz *Tokenizer) annotateFirstPass(toks []token.Token) {
	for i := range toks {
		t := &toks[i]
		switch {
		case tz.Model.IsAbbreviation(t.Type):
			t.IsAbbreviation = true
		case t.PeriodFinal:
			t.HasSentenceBreak = true
		}
		switch {
		case token.IsEllipsisShape(t.Surface):
			t.IsEllipsis = true
		case token.IsLoneSentenceEnder(t.Surface, tz.Params.SentenceEndings):
			t.HasSentenceBreak = true
		}
	}
}

// annotateSecondPass implements spec §4.5.2: for every token marked
// abbreviation or ellipsis, the decision is revisited by looking at the
// following token.
func (tz *Tokenizer) annotateSecondPass(toks []token.Token) {
	for i := range toks {
		t := &toks[i]
		if !t.IsAbbreviation && !t.IsEllipsis {
			continue
		}

		if i+1 >= len(toks) {
			if t.IsEllipsis {
				t.HasSentenceBreak = false
			}
			continue
		}
		next := toks[i+1]

		if t.IsEllipsis {
			t.HasSentenceBreak = tz.nextIsUppercaseStarter(next)
			continue
		}

		tz.applyAbbreviationHeuristics(t, &next)
	}
}

// applyAbbreviationHeuristics implements the orthographic, collocation, and
// sentence-starter heuristics of spec §4.5.2 for an abbreviation token.
func (tz *Tokenizer) applyAbbreviationHeuristics(t, next *token.Token) {
	if r, ok := token.FirstCasedRune(next.Surface, tz.Params.NonPrefixChars); ok {
		ortho := tz.Model.Ortho(next.Type)
		switch {
		case unicode.IsLower(r) && !tz.Model.IsSentenceStarter(next.Type):
			// Orthographic heuristic: leave as non-break.
		case unicode.IsUpper(r) && ortho.SeenLowercase() && !ortho.SeenUppercaseInitial():
			t.HasSentenceBreak = true
		}
	}

	if tz.Model.IsCollocation(t.Type, next.Type) {
		t.HasSentenceBreak = false
	}

	if tz.nextIsUppercaseStarter(*next) {
		t.HasSentenceBreak = true
	}
}

// nextIsUppercaseStarter reports whether next begins with an uppercase
// letter and its type is a known sentence starter.
func (tz *Tokenizer) nextIsUppercaseStarter(next token.Token) bool {
	r, ok := token.FirstCasedRune(next.Surface, tz.Params.NonPrefixChars)
	return ok && unicode.IsUpper(r) && tz.Model.IsSentenceStarter(next.Type)
}
