// Package token implements the Punkt word lexer: a single-pass scan of raw
// text into candidate tokens annotated with positional and orthographic
// flags, per the Kiss–Strunk algorithm's tokenization stage. The scan is
// not lazy: Lex returns every token of the text in one slice.
package token

import (
	"regexp"
	"strings"
	"unicode"
)

// NumberSentinel is the token type assigned to purely numeric surfaces.
const NumberSentinel = "##number##"

// numberPattern matches a token whose surface, with any trailing sentence
// period already stripped, is a bare number: an optional leading '-'
// followed by digits interleaved with ',', '.', or '-'.
var numberPattern = regexp.MustCompile(`^-?\d[\d,.\-]*$`)

// Token is one word-sized slice of the input text. Offset and Length index
// into the original text; Surface is a substring of it, never a copy, so
// the text's storage must outlive any Token that references it.
type Token struct {
	Surface string // the surface form, case preserved
	Offset  int    // byte offset of Surface in the original text
	Length  int    // len(Surface) in bytes

	NewlineAfter   bool // a line break occurs in the trailing whitespace
	ParagraphStart bool // preceded by 2+ line breaks, or is the first token
	PeriodFinal    bool // surface ends in '.' and is not purely punctuation

	// Annotated later, by the trainer or the sentence tokenizer.
	HasSentenceBreak bool
	IsAbbreviation   bool
	IsEllipsis       bool

	// Type is the normalized form: lowercased, trailing sentence period
	// stripped, or NumberSentinel for purely numeric surfaces. It never
	// contains a trailing sentence-ending period.
	Type string
}

// End returns the exclusive byte offset of the token in the original text.
func (t Token) End() int { return t.Offset + t.Length }

// WithPeriod returns the token's type with a trailing period appended,
// the key used by the training model's with-period frequency counts.
func (t Token) WithPeriod() string { return t.Type + "." }

// newToken builds a Token for surface starting at byte offset start,
// computing PeriodFinal and Type from the surface alone.
func newToken(surface string, start int, paragraphStart bool) Token {
	periodFinal := strings.HasSuffix(surface, ".") && !isPurelyPunctuation(surface)
	return Token{
		Surface:        surface,
		Offset:         start,
		Length:         len(surface),
		ParagraphStart: paragraphStart,
		PeriodFinal:    periodFinal,
		Type:           normalizeType(surface, periodFinal),
	}
}

// normalizeType computes the token type for a surface form. A surface made
// only of periods and spaces (an ellipsis or a lone '.') has all of them
// stripped, leaving an empty type.
func normalizeType(surface string, periodFinal bool) string {
	core := surface
	if periodFinal {
		core = surface[:len(surface)-1]
	}
	core = strings.TrimRight(core, ". ")
	if numberPattern.MatchString(core) {
		return NumberSentinel
	}
	return strings.ToLower(core)
}

// isPurelyPunctuation reports whether every rune in s is punctuation or a
// symbol (no letters, digits, or other content).
func isPurelyPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// IsEllipsisShape reports whether surface is an ellipsis: a run of two or
// more '.' characters, optionally with single spaces interleaved.
func IsEllipsisShape(surface string) bool {
	dots := 0
	runes := []rune(surface)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.':
			dots++
		case ' ':
			// only valid between two dots
			if i == 0 || i == len(runes)-1 || runes[i-1] != '.' || runes[i+1] != '.' {
				return false
			}
		default:
			return false
		}
	}
	return dots >= 2
}

// IsLoneSentenceEnder reports whether surface is exactly one rune long and
// that rune is a member of sentenceEndings other than '.'. A standalone '!'
// or '?' unambiguously ends a sentence; '.' is handled separately since it
// is ambiguous with abbreviations and decimals.
func IsLoneSentenceEnder(surface string, sentenceEndings map[rune]bool) bool {
	runes := []rune(surface)
	if len(runes) != 1 || runes[0] == '.' {
		return false
	}
	return sentenceEndings[runes[0]]
}

// FirstCasedRune returns the first letter rune in surface that is not one
// of the leading nonPrefix characters, and reports whether one was found.
// It is used by the trainer and sentence tokenizer to classify a token's
// orthographic case while ignoring leading quotes and parentheses.
func FirstCasedRune(surface string, nonPrefix map[rune]bool) (rune, bool) {
	skipping := true
	for _, r := range surface {
		if skipping && nonPrefix[r] {
			continue
		}
		skipping = false
		if unicode.IsLetter(r) {
			return r, true
		}
	}
	return 0, false
}
