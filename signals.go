package affect

import "strings"

// textSignals are the scalar cues read off the surface of the text before
// any lexicon lookup: arousal (how activated the writing is) and a sarcasm
// estimate that feeds both the result metrics and the safety humor
// discount.
type textSignals struct {
	arousal       float64
	sarcasm       float64
	exclamations  int
	capsTokens    int
	elongated     int
	profanityHits int
	laughHits     int
}

// arousalBeta scales how strongly arousal amplifies each category before
// normalization. High-activation emotions ride the signal; sadness is a
// low-activation state and barely moves.
var arousalBeta = map[Emotion]float64{
	Anger:    0.50,
	Fear:     0.35,
	Surprise: 0.45,
	Joy:      0.30,
	Passion:  0.40,
	Disgust:  0.20,
	Sadness:  0.10,
}

func computeSignals(text string, tokens []Token, lang Language) textSignals {
	var sig textSignals

	for _, tok := range tokens {
		switch tok.Text {
		case "!":
			sig.exclamations++
			continue
		}
		if !isWordToken(tok.Text) {
			continue
		}
		if len(tok.Text) >= 3 && tok.Text == strings.ToUpper(tok.Text) && tok.Text != strings.ToLower(tok.Text) {
			sig.capsTokens++
		}
		lower := strings.ToLower(tok.Text)
		if collapseElongation(lower) != lower {
			sig.elongated++
		}
		key := LexiconKey(collapseElongation(tok.Text))
		if inSet(profanity, lang, key) {
			sig.profanityHits++
		}
		if _, ok := laughTokens[key]; ok {
			sig.laughHits++
		}
	}

	sig.arousal = clamp01(
		0.15*float64(sig.exclamations) +
			0.10*float64(sig.capsTokens) +
			0.10*float64(sig.elongated) +
			0.20*float64(sig.profanityHits))

	sig.sarcasm = sarcasmEstimate(text, lang, sig.laughHits)
	return sig
}

// sarcasmEstimate looks for marker phrases and for laughter co-occurring
// with negative wording. It is a heuristic probability, capped well below
// certainty.
func sarcasmEstimate(text string, lang Language, laughHits int) float64 {
	norm := NormalizePhrase(text)
	est := 0.0

	markers := 0
	for _, phrase := range sarcasmMarkers[lang] {
		if containsPhrase(norm, phrase) {
			markers++
		}
	}
	if markers > 0 {
		est += 0.4 + 0.1*float64(markers-1)
	}

	if laughHits > 0 && hasNegativeCue(norm, lang) {
		est += 0.3
	}

	if est > 0.9 {
		est = 0.9
	}
	return est
}

// hasNegativeCue is a cheap check for negative wording near laughter, the
// classic "lol i hate it here" register.
func hasNegativeCue(norm string, lang Language) bool {
	var cues []string
	switch lang {
	case English:
		cues = []string{"hate", "worst", "awful", "terrible", "dying", "dead", "done", "cry"}
	case Spanish:
		cues = []string{"odio", "peor", "horrible", "fatal", "muero", "llorar"}
	case Portuguese:
		cues = []string{"odeio", "pior", "horrivel", "morrendo", "chorar", "acabado"}
	}
	for _, cue := range cues {
		if strings.Contains(norm, cue) {
			return true
		}
	}
	return false
}

// containsPhrase reports whether phrase appears in text on word boundaries,
// so short markers like "sei" do not fire inside "seis" or "seio". Both
// strings are already normalized to folded ASCII-range words.
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for i := 0; ; {
		j := strings.Index(text[i:], phrase)
		if j < 0 {
			return false
		}
		at := i + j
		end := at + len(phrase)
		if (at == 0 || !isWordByte(text[at-1])) &&
			(end == len(text) || !isWordByte(text[end])) {
			return true
		}
		i = at + 1
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
