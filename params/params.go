// Package params carries the character classes and numeric thresholds that
// the punkt trainer and sentence tokenizer are parameterized over. The word
// lexer in package token does not take a Params; it uses fixed character
// classes equal to Default's. Callers that need a
// custom parameter set construct one with Default and override fields; the
// zero value is not meaningful on its own (its character sets are empty),
// so always start from Default.
package params

// Params bundles the character classes and thresholds from the Kiss–Strunk
// paper. It is passed by value into trainers and tokenizers rather than held
// as package-level state, so that a single process can run multiple
// independently configured pipelines concurrently. Of the character
// classes, only SentenceEndings and NonPrefixChars are read outside this
// package; the others are not consulted by the lexer.
type Params struct {
	// SentenceEndings are characters that may terminate a sentence.
	SentenceEndings map[rune]bool
	// InternalPunctuation are characters allowed inside a word token
	// without splitting it (when surrounded by letters).
	InternalPunctuation map[rune]bool
	// NonWordChars are characters that unconditionally split tokens.
	NonWordChars map[rune]bool
	// Punctuation are characters classified as non-content punctuation
	// for orthographic analysis.
	Punctuation map[rune]bool
	// NonPrefixChars do not count as a word prefix; they are skipped when
	// classifying the case of a token's first letter (opening quotes, ...).
	NonPrefixChars map[rune]bool

	// AbbrevLowerBound is the minimum Dunning log-likelihood for
	// abbreviation acceptance.
	AbbrevLowerBound float64
	// AbbrevUpperBound caps the penalty-scaling exponent.
	AbbrevUpperBound float64
	// IgnoreAbbrevPenalty drops the length penalty from the abbreviation
	// log-likelihood adjustment when true.
	IgnoreAbbrevPenalty bool
	// CollocationLowerBound is the minimum Dunning log-likelihood for
	// collocation acceptance.
	CollocationLowerBound float64
	// SentenceStarterLowerBound is the minimum Dunning log-likelihood for
	// sentence-starter acceptance.
	SentenceStarterLowerBound float64
	// IncludeAllCollocations drops the requirement that the first member
	// of a candidate collocation end in a period.
	IncludeAllCollocations bool
	// IncludeAbbrevCollocations allows already-accepted abbreviations to
	// participate as the first member of a candidate collocation.
	IncludeAbbrevCollocations bool
	// CollocationFrequencyLowerBound is the minimum relative pairwise
	// frequency a candidate collocation must clear.
	CollocationFrequencyLowerBound float64
}

// Default returns the Kiss–Strunk defaults.
func Default() Params {
	return Params{
		SentenceEndings:     runeSet('.', '!', '?'),
		InternalPunctuation: runeSet(',', ':', ';'),
		NonWordChars:        runeSet('?', '!', ')', '"', ';', '}', ']', '*', ':', '@', '\'', '(', '{', '['),
		Punctuation:         runeSet(';', ':', ',', '.', '!', '?'),
		NonPrefixChars:      runeSet('\'', '"'),

		AbbrevLowerBound:               0.3,
		AbbrevUpperBound:               8.0,
		IgnoreAbbrevPenalty:            false,
		CollocationLowerBound:          7.88,
		SentenceStarterLowerBound:      30.0,
		IncludeAllCollocations:         false,
		IncludeAbbrevCollocations:      true,
		CollocationFrequencyLowerBound: 0.8,
	}
}

func runeSet(runes ...rune) map[rune]bool {
	m := make(map[rune]bool, len(runes))
	for _, r := range runes {
		m[r] = true
	}
	return m
}

// IsSentenceEnding reports whether r may terminate a sentence.
func (p Params) IsSentenceEnding(r rune) bool { return p.SentenceEndings[r] }

// IsInternalPunctuation reports whether r is allowed inside a word token.
func (p Params) IsInternalPunctuation(r rune) bool { return p.InternalPunctuation[r] }

// IsNonWordChar reports whether r unconditionally splits tokens.
func (p Params) IsNonWordChar(r rune) bool { return p.NonWordChars[r] }

// IsPunctuation reports whether r is non-content punctuation.
func (p Params) IsPunctuation(r rune) bool { return p.Punctuation[r] }

// IsNonPrefixChar reports whether r does not count as a word prefix.
func (p Params) IsNonPrefixChar(r rune) bool { return p.NonPrefixChars[r] }
