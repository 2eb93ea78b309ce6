// Package model implements the Punkt training model: the mutable frequency
// tables a trainer accumulates, and the three derived decision sets
// (abbreviations, collocations, sentence starters) a sentence tokenizer
// reads. A Model is either empty, mid-accumulation, or finalized; there are
// no partial-failure states.
package model

// Pair is an ordered pair of token types, the key of the collocation
// frequency table.
type Pair struct {
	First  string
	Second string
}

// OrthoFlag is a bitset summarizing how a token type has been observed
// during training: which combinations of case and sentence position have
// been seen for it.
type OrthoFlag uint8

const (
	SeenUpperInitial  OrthoFlag = 1 << iota // seen uppercase, sentence/paragraph-initial
	SeenUpperInternal                       // seen uppercase, mid-sentence
	SeenUpperUnknown                        // seen uppercase, position unknown
	SeenLowerInitial                        // seen lowercase, sentence/paragraph-initial
	SeenLowerInternal                       // seen lowercase, mid-sentence
	SeenLowerUnknown                        // seen lowercase, position unknown
)

// SeenUppercase reports whether the type has ever been observed starting
// with an uppercase letter, in any position.
func (f OrthoFlag) SeenUppercase() bool {
	return f&(SeenUpperInitial|SeenUpperInternal|SeenUpperUnknown) != 0
}

// SeenLowercase reports whether the type has ever been observed starting
// with a lowercase letter, in any position.
func (f OrthoFlag) SeenLowercase() bool {
	return f&(SeenLowerInitial|SeenLowerInternal|SeenLowerUnknown) != 0
}

// SeenUppercaseInitial reports whether the type has been observed starting
// with an uppercase letter in sentence/paragraph-initial position.
func (f OrthoFlag) SeenUppercaseInitial() bool { return f&SeenUpperInitial != 0 }

// SeenLowercaseInternal reports whether the type has been observed starting
// with a lowercase letter in a non-initial position.
func (f OrthoFlag) SeenLowercaseInternal() bool { return f&SeenLowerInternal != 0 }

// Position classifies where in a sentence a token was observed, for
// orthographic-context bookkeeping.
type Position int

const (
	PositionUnknown Position = iota
	PositionInitial
	PositionInternal
)

// Model is the trainer's mutable counts plus the tokenizer's read-only
// decision sets. The zero value is not usable; construct with New.
type Model struct {
	// TypeFdist maps a token type to its occurrence count. A period-final
	// token is counted under its type with a trailing period appended
	// (see WithPeriodKey), so CountWithPeriod and CountWithoutPeriod can
	// recover both halves for any normalized type.
	TypeFdist map[string]int
	// CollocationFdist counts adjacent (type, type) occurrences.
	CollocationFdist map[Pair]int
	// SentenceStarterFdist counts occurrences of a type in hypothesized
	// sentence-initial position during training.
	SentenceStarterFdist map[string]int
	// OrthographicContext summarizes observed casing/position per type.
	OrthographicContext map[string]OrthoFlag

	PeriodTokenCount   int
	SentenceBreakCount int

	Abbreviations    map[string]bool
	Collocations     map[Pair]bool
	SentenceStarters map[string]bool

	finalized bool
}

// New returns an empty, writable model.
func New() *Model {
	return &Model{
		TypeFdist:            make(map[string]int),
		CollocationFdist:     make(map[Pair]int),
		SentenceStarterFdist: make(map[string]int),
		OrthographicContext:  make(map[string]OrthoFlag),
		Abbreviations:        make(map[string]bool),
		Collocations:         make(map[Pair]bool),
		SentenceStarters:     make(map[string]bool),
	}
}

// WithPeriodKey returns the TypeFdist key for the with-period form of t.
func WithPeriodKey(t string) string { return t + "." }

// CountWithPeriod returns n(t.), the number of times type t was observed
// period-final.
func (m *Model) CountWithPeriod(t string) int {
	return m.TypeFdist[WithPeriodKey(t)]
}

// CountWithoutPeriod returns the number of times type t was observed
// without a trailing period.
func (m *Model) CountWithoutPeriod(t string) int {
	return m.TypeFdist[t]
}

// CountTotal returns n(t), the total occurrence count of type t with or
// without a trailing period.
func (m *Model) CountTotal(t string) int {
	return m.CountWithoutPeriod(t) + m.CountWithPeriod(t)
}

// TotalTokenCount returns N, the total number of tokens counted so far
// across all TypeFdist entries (both with- and without-period forms).
func (m *Model) TotalTokenCount() int {
	n := 0
	for _, c := range m.TypeFdist {
		n += c
	}
	return n
}

// IncrementType records one occurrence of token type t. If periodFinal,
// the occurrence is recorded under the with-period key and
// PeriodTokenCount is incremented.
func (m *Model) IncrementType(t string, periodFinal bool) {
	key := t
	if periodFinal {
		key = WithPeriodKey(t)
		m.PeriodTokenCount++
	}
	m.TypeFdist[key]++
}

// IncrementCollocation records one adjacent occurrence of (first, second).
func (m *Model) IncrementCollocation(first, second string) {
	m.CollocationFdist[Pair{First: first, Second: second}]++
}

// IncrementSentenceStarter records one occurrence of t in hypothesized
// sentence-initial position.
func (m *Model) IncrementSentenceStarter(t string) {
	m.SentenceStarterFdist[t]++
}

// AddSentenceBreak increments the total hypothesized sentence-break count.
func (m *Model) AddSentenceBreak() { m.SentenceBreakCount++ }

// UpdateOrthographicContext ORs the flag implied by (upper, pos) into the
// stored bitset for t.
func (m *Model) UpdateOrthographicContext(t string, upper bool, pos Position) {
	var flag OrthoFlag
	switch {
	case upper && pos == PositionInitial:
		flag = SeenUpperInitial
	case upper && pos == PositionInternal:
		flag = SeenUpperInternal
	case upper:
		flag = SeenUpperUnknown
	case !upper && pos == PositionInitial:
		flag = SeenLowerInitial
	case !upper && pos == PositionInternal:
		flag = SeenLowerInternal
	default:
		flag = SeenLowerUnknown
	}
	m.OrthographicContext[t] |= flag
}

// Ortho returns the orthographic context bitset recorded for t.
func (m *Model) Ortho(t string) OrthoFlag { return m.OrthographicContext[t] }

// IsAbbreviation reports whether t is in the finalized abbreviation set.
func (m *Model) IsAbbreviation(t string) bool { return m.Abbreviations[t] }

// IsCollocation reports whether (first, second) is in the finalized
// collocation set.
func (m *Model) IsCollocation(first, second string) bool {
	return m.Collocations[Pair{First: first, Second: second}]
}

// IsSentenceStarter reports whether t is in the finalized sentence-starter
// set.
func (m *Model) IsSentenceStarter(t string) bool { return m.SentenceStarters[t] }

// Finalized reports whether the derived sets have been set at least once,
// by the trainer's Finalize or directly through SetDerived.
func (m *Model) Finalized() bool { return m.finalized }

// markFinalized is called by the trainer once the derived sets have been
// recomputed.
func (m *Model) markFinalized() { m.finalized = true }

// SetDerived overwrites the three derived sets in one step. Called by the
// trainer at the end of Finalize, and directly by pretrained-language
// loaders that never run a counting pass.
func (m *Model) SetDerived(abbrevs map[string]bool, collocations map[Pair]bool, starters map[string]bool) {
	m.Abbreviations = abbrevs
	m.Collocations = collocations
	m.SentenceStarters = starters
	m.markFinalized()
}
