package sentence

import (
	"reflect"
	"strings"
	"testing"

	"github.com/az-ai-labs/go-punkt/model"
	"github.com/az-ai-labs/go-punkt/params"
	"github.com/az-ai-labs/go-punkt/train"
)

func TestSentencesEmptyInput(t *testing.T) {
	tz := New(params.Default(), model.New())
	got := tz.Sentences("")
	if len(got) != 0 {
		t.Errorf("Sentences(\"\") = %v, want empty", got)
	}
}

func TestSentencesNoSentenceEndingPunctuation(t *testing.T) {
	tz := New(params.Default(), model.New())
	got := tz.Sentences("just some words with no terminator")
	want := []string{"just some words with no terminator"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences(...) = %v, want %v", got, want)
	}
}

func TestSentencesLoneEndersWithUntrainedModel(t *testing.T) {
	tz := New(params.Default(), model.New())
	got := tz.Sentences("Hello World. How are you?")
	want := []string{"Hello World.", "How are you?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences(...) = %v, want %v", got, want)
	}
}

func TestSentencesDollarAmountDoesNotBreakMidNumber(t *testing.T) {
	tz := New(params.Default(), model.New())
	text := "I bought $5.50 worth of apples from the store. I gave them to my dog when I came home."
	got := tz.Sentences(text)
	want := []string{
		"I bought $5.50 worth of apples from the store.",
		"I gave them to my dog when I came home.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences(...) = %v, want %v", got, want)
	}
}

func TestSentencesTrainedOnItselfDetectsTitleAbbreviations(t *testing.T) {
	// A single-sentence corpus does not give the Dunning test enough signal
	// to clear the default threshold, so this corpus repeats the titles
	// across several sentences (see the trainer tests' drMrCorpus comment
	// and the design ledger's note on this).
	corpus := "Dr. Smith went to Washington. He saw Mr. Jones. " +
		"Dr. Smith likes coffee. Mr. Jones likes tea. " +
		"Dr. Smith and Mr. Jones met again. They left together."

	m := model.New()
	tr := train.New(params.Default())
	tr.Train(corpus, m)

	tz := New(params.Default(), m)
	got := tz.Sentences("Dr. Smith went to Washington. He saw Mr. Jones.")
	want := []string{
		"Dr. Smith went to Washington.",
		"He saw Mr. Jones.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences(...) = %v, want %v (Dr./Mr. not recognized as abbreviations: got abbreviations=%v)", got, want, m.Abbreviations)
	}
}

func TestSentencesTrainedOnItselfDetectsUSA(t *testing.T) {
	// "u.s.a" needs more repeated observations than a short title like
	// "dr" to clear the abbreviation threshold, since its length penalty
	// is steeper (see the trainer tests' usaCorpus comment).
	corpus := strings.Repeat("The U.S.A. is large. So is Canada. The U.S.A. has many states. "+
		"Canada has fewer. The U.S.A. borders Canada. ", 3)

	m := model.New()
	tr := train.New(params.Default())
	tr.Train(corpus, m)

	tz := New(params.Default(), m)
	got := tz.Sentences("The U.S.A. is large. So is Canada.")
	want := []string{
		"The U.S.A. is large.",
		"So is Canada.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences(...) = %v, want %v", got, want)
	}
}

// This literal example text has a lowercase "a" after the ellipsis, not an
// uppercase "A". Per the second-annotation-pass rule, an ellipsis only ends
// a sentence when the next token's first character is uppercase AND it is
// a known sentence starter — so this case stays two sentences regardless
// of whether "a" is a sentence starter, both with and without a pretrained
// model. The three-way split only occurs when the word genuinely starts
// with an uppercase letter (covered below).
func TestSentencesEllipsisBeforeLowercaseWordNeverSplits(t *testing.T) {
	m := model.New()
	m.SetDerived(nil, nil, map[string]bool{"a": true})

	tz := New(params.Default(), m)
	got := tz.Sentences("This is... a test. Is it?")
	want := []string{
		"This is... a test.",
		"Is it?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences(...) = %v, want %v", got, want)
	}
}

func TestSentencesEllipsisBeforeUppercaseSentenceStarterSplits(t *testing.T) {
	m := model.New()
	m.SetDerived(nil, nil, map[string]bool{"a": true})

	tz := New(params.Default(), m)
	got := tz.Sentences("This is... A test. Is it?")
	want := []string{
		"This is...",
		"A test.",
		"Is it?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences(...) = %v, want %v", got, want)
	}
}

func TestSentencesEllipsisWithUntrainedModelNeverSplits(t *testing.T) {
	tz := New(params.Default(), model.New())
	got := tz.Sentences("This is... A test. Is it?")
	want := []string{
		"This is... A test.",
		"Is it?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences(...) = %v, want %v", got, want)
	}
}

func TestAllIteratorStopsEarly(t *testing.T) {
	tz := New(params.Default(), model.New())
	var seen []string
	for s := range tz.All("One. Two. Three.") {
		seen = append(seen, s)
		if len(seen) == 2 {
			break
		}
	}
	if len(seen) != 2 {
		t.Fatalf("iterator yielded %d sentences before break, want 2", len(seen))
	}
	if seen[0] != "One." || seen[1] != "Two." {
		t.Errorf("seen = %v, want [One. Two.]", seen)
	}
}

func TestAllIteratorYieldsAllSentences(t *testing.T) {
	tz := New(params.Default(), model.New())
	var seen []string
	for s := range tz.All("One. Two. Three.") {
		seen = append(seen, s)
	}
	want := []string{"One.", "Two.", "Three."}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("seen = %v, want %v", seen, want)
	}
}

func TestSentencesReconstructInputModuloWhitespace(t *testing.T) {
	text := "Hello World.   How are you?\n\nI am fine."
	tz := New(params.Default(), model.New())
	got := tz.Sentences(text)
	if len(got) == 0 {
		t.Fatal("expected at least one sentence")
	}

	offset := 0
	for _, s := range got {
		idx := indexFrom(text, s, offset)
		if idx < 0 {
			t.Fatalf("sentence %q not found in order starting at byte %d of %q", s, offset, text)
		}
		offset = idx + len(s)
	}
}

func indexFrom(text, sub string, from int) int {
	if from > len(text) {
		return -1
	}
	rel := indexOf(text[from:], sub)
	if rel < 0 {
		return -1
	}
	return from + rel
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
