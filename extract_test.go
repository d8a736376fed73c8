package affect

import "testing"

func TestExtractEmotionWeights(t *testing.T) {
	tests := []struct {
		def     WordDefinition
		wantOK  bool
		wantTop Emotion
		desc    string
	}{
		{
			def: WordDefinition{
				Word: "gleeful", Language: English, Source: dictionarySourceName,
				Definitions: []string{"full of happiness and joy; delighted and cheerful"},
				Synonyms:    []string{"merry", "jubilant"},
			},
			wantOK:  true,
			wantTop: Joy,
			desc:    "Joy-heavy dictionary definition",
		},
		{
			def: WordDefinition{
				Word: "table", Language: English, Source: dictionarySourceName,
				Definitions: []string{"a piece of furniture with a flat top and legs"},
			},
			wantOK: false,
			desc:   "Neutral definition carries no signal",
		},
		{
			def: WordDefinition{
				Word: "meh", Language: English, Source: dictionarySourceName,
				Definitions: []string{"somewhat gloomy"},
			},
			wantOK: false,
			desc:   "Single weak hit stays under the confidence gate",
		},
		{
			def: WordDefinition{
				Word: "pavor", Language: Spanish, Source: dictionarySourceName,
				Definitions: []string{"miedo muy intenso; terror o pánico ante algo espantado"},
			},
			wantOK:  true,
			wantTop: Fear,
			desc:    "Spanish keywords with diacritics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			weight, ok := extractEmotionWeights(tt.def, DefaultExpansionConfig().MinConfidence)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := weight.Emotions.Top()[0]; got != tt.wantTop {
				t.Errorf("top emotion = %s, want %s", got, tt.wantTop)
			}
			if weight.Emotions[tt.wantTop] != extractTopWeight {
				t.Errorf("top weight = %.2f, want the %.1f ceiling",
					weight.Emotions[tt.wantTop], extractTopWeight)
			}
			if weight.Confidence < DefaultExpansionConfig().MinConfidence {
				t.Errorf("confidence = %.2f below the gate", weight.Confidence)
			}
		})
	}
}

func TestExtractWeightsBounded(t *testing.T) {
	def := WordDefinition{
		Word: "overloaded", Language: English, Source: dictionarySourceName,
		Definitions: []string{
			"angry furious rage mad hostile sad unhappy depressed miserable " +
				"happy joyful glad pleased scared afraid terrified",
		},
	}
	weight, ok := extractEmotionWeights(def, 0.3)
	if !ok {
		t.Fatal("dense definition rejected")
	}
	for e, w := range weight.Emotions {
		if w > extractTopWeight {
			t.Errorf("%s = %.2f exceeds the %.1f ceiling", e, w, extractTopWeight)
		}
		if w < extractMinWeight {
			t.Errorf("%s = %.2f survived below the %.1f floor", e, w, extractMinWeight)
		}
	}
}

func TestExtractSlangIndicators(t *testing.T) {
	text := "when something is fire and lit, totally bussin"

	slang := WordDefinition{
		Word: "fye", Language: English, Source: slangSourceName,
		Definitions: []string{text},
	}
	weight, ok := extractEmotionWeights(slang, 0.3)
	if !ok {
		t.Fatal("slang definition rejected")
	}
	if weight.Emotions.Top()[0] != Joy {
		t.Errorf("top = %s, want joy from slang indicators", weight.Emotions.Top()[0])
	}

	// The same text from the formal dictionary source carries no keyword
	// hits, so the indicators must not apply.
	formal := WordDefinition{
		Word: "fye", Language: English, Source: dictionarySourceName,
		Definitions: []string{text},
	}
	if _, ok := extractEmotionWeights(formal, 0.3); ok {
		t.Error("dictionary-sourced text picked up slang indicators")
	}
}

func TestExtractPopularityBoost(t *testing.T) {
	base := WordDefinition{
		Word: "gutted", Language: English, Source: slangSourceName,
		Definitions: []string{"when you are hurting and broken about something"},
	}
	popular := base
	popular.ThumbsUp = 5000

	w1, ok1 := extractEmotionWeights(base, 0)
	w2, ok2 := extractEmotionWeights(popular, 0)
	if !ok1 || !ok2 {
		t.Fatal("slang definitions rejected")
	}
	if w2.Confidence <= w1.Confidence {
		t.Errorf("popular confidence = %.2f, base = %.2f; want a boost", w2.Confidence, w1.Confidence)
	}
}

func TestHasWordWithPrefix(t *testing.T) {
	tests := []struct {
		text   string
		prefix string
		want   bool
		desc   string
	}{
		{"a frightful day", "frig", true, "Prefix at word start"},
		{"befriended", "frie", false, "Prefix mid-word does not count"},
		{"terrify", "terr", true, "Prefix at text start"},
		{"so terrifying", "terr", true, "Prefix after space"},
		{"nothing here", "zzz", false, "No occurrence"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := hasWordWithPrefix(tt.text, tt.prefix); got != tt.want {
				t.Errorf("hasWordWithPrefix(%q, %q) = %v, want %v", tt.text, tt.prefix, got, tt.want)
			}
		})
	}
}
