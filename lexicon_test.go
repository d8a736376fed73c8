package affect

import (
	"errors"
	"testing"
)

func TestLexiconMergeByMax(t *testing.T) {
	l := NewEmptyLexicon()

	if err := l.MergeWords(English, map[string]EmotionVector{"sparkly": {Joy: 1.0}}, false); err != nil {
		t.Fatalf("first merge: %v", err)
	}
	if err := l.MergeWords(English, map[string]EmotionVector{"sparkly": {Joy: 0.5, Surprise: 1.2}}, false); err != nil {
		t.Fatalf("second merge: %v", err)
	}

	v, ok := l.LookupWord(English, "sparkly")
	if !ok {
		t.Fatal("sparkly not found after merge")
	}
	if v[Joy] != 1.0 {
		t.Errorf("Joy = %.2f, want 1.0 (existing weight must not shrink)", v[Joy])
	}
	if v[Surprise] != 1.2 {
		t.Errorf("Surprise = %.2f, want 1.2", v[Surprise])
	}

	// Re-merging the same entries is a no-op on the weights.
	if err := l.MergeWords(English, map[string]EmotionVector{"sparkly": {Joy: 1.0, Surprise: 1.2}}, false); err != nil {
		t.Fatalf("idempotent merge: %v", err)
	}
	v, _ = l.LookupWord(English, "sparkly")
	if v[Joy] != 1.0 || v[Surprise] != 1.2 {
		t.Errorf("weights changed on re-merge: %v", v)
	}
}

func TestLexiconVersionBumps(t *testing.T) {
	l := NewEmptyLexicon()
	v0 := l.Version()

	if err := l.MergeWords(English, map[string]EmotionVector{"zing": {Joy: 1.0}}, false); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if l.Version() != v0+1 {
		t.Errorf("version = %d, want %d", l.Version(), v0+1)
	}
	if err := l.MergePhrases(English, map[string]EmotionVector{"full of zing": {Joy: 1.5}}); err != nil {
		t.Fatalf("merge phrases: %v", err)
	}
	if l.Version() != v0+2 {
		t.Errorf("version = %d, want %d", l.Version(), v0+2)
	}
}

func TestLexiconMorphologyExpansion(t *testing.T) {
	l := NewEmptyLexicon()
	if err := l.MergeWords(English, map[string]EmotionVector{"grumble": {Anger: 2.0}}, true); err != nil {
		t.Fatalf("merge: %v", err)
	}

	tests := []struct {
		key  string
		want float64
		desc string
	}{
		{"grumble", 2.0, "Root keeps full weight"},
		{"grumbles", 1.6, "Plural damped"},
		{"grumbling", 1.6, "Gerund with e-drop damped"},
		{"grumbled", 1.6, "Past with e-drop damped"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			v, ok := l.LookupWord(English, tt.key)
			if !ok {
				t.Fatalf("%q not found", tt.key)
			}
			if v[Anger] != tt.want {
				t.Errorf("Anger = %.2f, want %.2f", v[Anger], tt.want)
			}
		})
	}
}

func TestLexiconCuratedBeatsDerived(t *testing.T) {
	l := NewEmptyLexicon()
	err := l.MergeWords(English, map[string]EmotionVector{
		"calm":   {Joy: 2.0},
		"calmer": {Joy: 0.4},
	}, true)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	v, ok := l.LookupWord(English, "calmer")
	if !ok {
		t.Fatal("calmer not found")
	}
	if v[Joy] != 0.4 {
		t.Errorf("Joy = %.2f, want the curated 0.4 (derived form must not overwrite)", v[Joy])
	}
}

func TestLexiconIberianMorphology(t *testing.T) {
	l := NewEmptyLexicon()
	if err := l.MergeWords(Spanish, map[string]EmotionVector{"rabioso": {Anger: 2.0}}, true); err != nil {
		t.Fatalf("merge: %v", err)
	}
	for _, key := range []string{"rabiosa", "rabiosos", "rabiosas", "rabiosisimo"} {
		v, ok := l.LookupWord(Spanish, key)
		if !ok {
			t.Fatalf("%q not found", key)
		}
		if v[Anger] != 1.6 {
			t.Errorf("%q Anger = %.2f, want 1.6", key, v[Anger])
		}
	}
}

func TestLexiconReplace(t *testing.T) {
	l := NewEmptyLexicon()
	if err := l.MergeWords(English, map[string]EmotionVector{"old": {Sadness: 1.0}}, false); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if err := l.MergeWords(Spanish, map[string]EmotionVector{"viejo": {Sadness: 1.0}}, false); err != nil {
		t.Fatalf("merge es: %v", err)
	}

	if err := l.Replace(English, map[string]EmotionVector{"fresh": {Joy: 1.0}}, false); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if _, ok := l.LookupWord(English, "old"); ok {
		t.Error("old survived a wholesale replace")
	}
	if _, ok := l.LookupWord(English, "fresh"); !ok {
		t.Error("fresh missing after replace")
	}
	if _, ok := l.LookupWord(Spanish, "viejo"); !ok {
		t.Error("replace of English clobbered the Spanish table")
	}
}

func TestAddWordValidation(t *testing.T) {
	l := NewEmptyLexicon()

	tests := []struct {
		word    string
		lang    Language
		weights EmotionVector
		desc    string
	}{
		{"", English, EmotionVector{Joy: 1}, "Empty word"},
		{"ok", Language("fr"), EmotionVector{Joy: 1}, "Unsupported language"},
		{"ok", English, nil, "No weights"},
		{"ok", English, EmotionVector{Emotion("bliss"): 1}, "Unknown emotion"},
		{"ok", English, EmotionVector{Joy: -1}, "Negative weight"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			err := l.AddWord(tt.word, tt.lang, tt.weights)
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Errorf("AddWord(%q) error = %v, want InvalidInputError", tt.word, err)
			}
		})
	}
}

func TestAddAndRemoveWord(t *testing.T) {
	l := NewEmptyLexicon()

	if err := l.AddWord("zesty", English, EmotionVector{Joy: 1.5}); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	if _, ok := l.LookupWord(English, "zesty"); !ok {
		t.Fatal("zesty not found after AddWord")
	}

	// Multi-word input lands in the phrase table.
	if err := l.AddWord("full of beans", English, EmotionVector{Joy: 2.0}); err != nil {
		t.Fatalf("AddWord phrase: %v", err)
	}
	if _, ok := l.LookupPhrase(English, "full of beans"); !ok {
		t.Fatal("phrase not found after AddWord")
	}

	removed, err := l.RemoveWord("zesty", English)
	if err != nil {
		t.Fatalf("RemoveWord: %v", err)
	}
	if !removed {
		t.Error("RemoveWord reported nothing removed")
	}
	if _, ok := l.LookupWord(English, "zesty"); ok {
		t.Error("zesty still present after removal")
	}

	removed, err = l.RemoveWord("zesty", English)
	if err != nil {
		t.Fatalf("second RemoveWord: %v", err)
	}
	if removed {
		t.Error("second removal reported success")
	}
}

func TestSeededLexicon(t *testing.T) {
	l := NewLexicon()

	tests := []struct {
		lang Language
		key  string
		top  Emotion
		desc string
	}{
		{English, "happy", Joy, "English core joy word"},
		{English, "furious", Anger, "English core anger word"},
		{Spanish, "feliz", Joy, "Spanish core joy word"},
		{Portuguese, "raiva", Anger, "Portuguese core anger word"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			v, ok := l.LookupWord(tt.lang, tt.key)
			if !ok {
				t.Fatalf("%q not found in %s table", tt.key, tt.lang)
			}
			if got := v.Top()[0]; got != tt.top {
				t.Errorf("top emotion = %s, want %s", got, tt.top)
			}
		})
	}

	if _, ok := l.LookupPhrase(Portuguese, "coracao partido"); !ok {
		t.Error("Portuguese phrase table missing coracao partido")
	}
	if l.MaxPhraseTokens(English) < 3 {
		t.Errorf("MaxPhraseTokens(en) = %d, want at least 3", l.MaxPhraseTokens(English))
	}

	stats := l.Stats()
	if stats.TotalWords == 0 {
		t.Error("seeded lexicon reports zero words")
	}
	if stats.WordCount[English] == 0 || stats.WordCount[Spanish] == 0 || stats.WordCount[Portuguese] == 0 {
		t.Errorf("per-language counts incomplete: %v", stats.WordCount)
	}
}
