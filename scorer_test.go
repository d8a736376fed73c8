package affect

import "testing"

func newTestScorer() *scorer {
	return &scorer{lexicon: NewLexicon(), config: DefaultAnalyzerConfig()}
}

func (s *scorer) scoreText(text string, lang Language) scoreResult {
	clean := sanitizer.Replace(text)
	return s.score(clean, Tokenize(clean), lang)
}

func TestScorerPhrasePrecedence(t *testing.T) {
	s := newTestScorer()

	res := s.scoreText("I love you", English)
	if res.matches != 1 {
		t.Errorf("matches = %d, want 1 (single phrase hit, not per-word)", res.matches)
	}
	if res.whole[Passion] < 2.5 {
		t.Errorf("Passion = %.2f, want the phrase weight, not the word weight", res.whole[Passion])
	}
	if res.matchedWords != 3 {
		t.Errorf("matchedWords = %d, want 3", res.matchedWords)
	}
}

func TestScorerNegationFlips(t *testing.T) {
	s := newTestScorer()

	plain := s.scoreText("I am happy", English)
	negated := s.scoreText("I am not happy", English)

	if plain.whole[Joy] <= 0 {
		t.Fatalf("baseline Joy = %.2f, want positive", plain.whole[Joy])
	}
	if negated.whole[Joy] != 0 {
		t.Errorf("negated Joy = %.2f, want 0 (flip clamps at zero)", negated.whole[Joy])
	}
}

func TestScorerModifiers(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		stronger string
		weaker   string
		emotion  Emotion
		desc     string
	}{
		{"so happy", "happy", Joy, "Intensifier amplifies"},
		{"happy", "slightly happy", Joy, "Diminisher weakens"},
		{"happy", "maybe happy", Joy, "Uncertainty weakens"},
		{"definitely furious", "furious", Anger, "Certainty amplifies"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			a := s.scoreText(tt.stronger, English)
			b := s.scoreText(tt.weaker, English)
			if a.whole[tt.emotion] <= b.whole[tt.emotion] {
				t.Errorf("%q scored %.2f, %q scored %.2f; want first greater",
					tt.stronger, a.whole[tt.emotion], tt.weaker, b.whole[tt.emotion])
			}
		})
	}
}

func TestScorerClauseBoundaryStopsScan(t *testing.T) {
	s := newTestScorer()

	// The negation sits in the previous clause; it must not flip the match.
	across := s.scoreText("I am not tired, but happy", English)
	if across.whole[Joy] <= 0 {
		t.Errorf("Joy = %.2f, want positive (negation blocked by clause boundary)", across.whole[Joy])
	}
}

func TestScorerRecentWindow(t *testing.T) {
	s := newTestScorer()

	res := s.scoreText("I was sad and lonely all week. Today I am happy and excited!", English)

	if res.recentStart == 0 {
		t.Fatal("recentStart = 0, want a trailing window on a long two-sentence text")
	}
	if res.whole[Sadness] <= 0 {
		t.Errorf("whole Sadness = %.2f, want positive", res.whole[Sadness])
	}
	if res.recent[Sadness] != 0 {
		t.Errorf("recent Sadness = %.2f, want 0 (first sentence outside window)", res.recent[Sadness])
	}
	if res.recent[Joy] <= 0 {
		t.Errorf("recent Joy = %.2f, want positive", res.recent[Joy])
	}
}

func TestScorerShortTextUsesWholeWindow(t *testing.T) {
	s := newTestScorer()

	res := s.scoreText("so happy", English)
	if res.recentStart != 0 {
		t.Errorf("recentStart = %d, want 0 for short text", res.recentStart)
	}
	if res.recent[Joy] != res.whole[Joy] {
		t.Errorf("recent = %.2f, whole = %.2f; want equal", res.recent[Joy], res.whole[Joy])
	}
}

func TestScorerEmoticons(t *testing.T) {
	s := newTestScorer()

	plain := s.scoreText("that was great", English)
	smiley := s.scoreText("that was great :)", English)

	if smiley.whole[Joy] <= plain.whole[Joy] {
		t.Errorf("smiley Joy = %.2f, plain = %.2f; want emoticon to add weight",
			smiley.whole[Joy], plain.whole[Joy])
	}
	if smiley.matches != plain.matches+1 {
		t.Errorf("smiley matches = %d, want %d", smiley.matches, plain.matches+1)
	}
}

func TestScorerElongatedFormsStillMatch(t *testing.T) {
	s := newTestScorer()

	res := s.scoreText("I am sooooo happy", English)
	if res.whole[Joy] <= 0 {
		t.Errorf("Joy = %.2f, want positive despite elongation", res.whole[Joy])
	}
}

func TestScorerSpanishAndPortuguese(t *testing.T) {
	s := newTestScorer()

	es := s.scoreText("estoy muy feliz", Spanish)
	if es.whole[Joy] <= 0 {
		t.Errorf("Spanish Joy = %.2f, want positive", es.whole[Joy])
	}

	pt := s.scoreText("que raiva, perdi a paciência", Portuguese)
	if pt.whole[Anger] <= 0 {
		t.Errorf("Portuguese Anger = %.2f, want positive", pt.whole[Anger])
	}
}
