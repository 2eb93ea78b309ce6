package token

import "testing"

func TestIsEllipsisShape(t *testing.T) {
	cases := map[string]bool{
		"...":   true,
		"....":  true,
		". . .": true,
		".":     false,
		"..":    true,
		"foo":   false,
		". .":   true,
		"...a":  false,
		" ...":  false,
	}
	for in, want := range cases {
		if got := IsEllipsisShape(in); got != want {
			t.Errorf("IsEllipsisShape(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsLoneSentenceEnder(t *testing.T) {
	endings := map[rune]bool{'.': true, '!': true, '?': true}
	if !IsLoneSentenceEnder("!", endings) {
		t.Error(`IsLoneSentenceEnder("!") = false, want true`)
	}
	if !IsLoneSentenceEnder("?", endings) {
		t.Error(`IsLoneSentenceEnder("?") = false, want true`)
	}
	if IsLoneSentenceEnder(".", endings) {
		t.Error(`IsLoneSentenceEnder(".") = true, want false: '.' is handled separately`)
	}
	if IsLoneSentenceEnder("!!", endings) {
		t.Error(`IsLoneSentenceEnder("!!") = true, want false: not a single rune`)
	}
	if IsLoneSentenceEnder("a", endings) {
		t.Error(`IsLoneSentenceEnder("a") = true, want false: not a sentence ending`)
	}
}

func TestFirstCasedRune(t *testing.T) {
	nonPrefix := map[rune]bool{'\'': true, '"': true}

	r, ok := FirstCasedRune(`"Hello`, nonPrefix)
	if !ok || r != 'H' {
		t.Errorf("FirstCasedRune = %q, %v, want 'H', true", r, ok)
	}

	r, ok = FirstCasedRune("123abc", nonPrefix)
	if !ok || r != 'a' {
		t.Errorf("FirstCasedRune = %q, %v, want 'a', true", r, ok)
	}

	_, ok = FirstCasedRune("123", nonPrefix)
	if ok {
		t.Error("FirstCasedRune on all-digit surface should report false")
	}

	_, ok = FirstCasedRune("", nonPrefix)
	if ok {
		t.Error("FirstCasedRune on empty surface should report false")
	}
}

func TestNewTokenPeriodFinalExcludesPurePunctuation(t *testing.T) {
	tok := newToken("...", 0, false)
	if tok.PeriodFinal {
		t.Error("a purely-punctuation surface must not be PeriodFinal")
	}

	tok = newToken("Dr.", 0, false)
	if !tok.PeriodFinal {
		t.Error(`"Dr." should be PeriodFinal`)
	}
	if tok.Type != "dr" {
		t.Errorf("Type = %q, want %q", tok.Type, "dr")
	}
}

func TestWithPeriod(t *testing.T) {
	tok := newToken("Dr.", 0, false)
	if got := tok.WithPeriod(); got != "dr." {
		t.Errorf("WithPeriod() = %q, want %q", got, "dr.")
	}
}
