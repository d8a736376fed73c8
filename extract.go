package affect

import "strings"

// WordDefinition is one definition of a word as returned by an external
// source, before any emotion analysis.
type WordDefinition struct {
	Word         string
	Language     Language
	Source       string
	Definitions  []string
	Examples     []string
	Synonyms     []string
	PartOfSpeech string
	ThumbsUp     int // slang-source popularity votes
}

// EmotionWeight is the emotional reading extracted from a single definition.
type EmotionWeight struct {
	Word       string
	Language   Language
	Emotions   EmotionVector
	Confidence float64
	Source     string
}

const (
	// extractTopWeight is the ceiling the strongest extracted emotion is
	// scaled to, keeping external entries in the same range as curated ones.
	extractTopWeight = 2.5

	// extractMinWeight drops emotions that stay weak after scaling.
	extractMinWeight = 0.5

	// Full-word keyword hits count 1.0; a word-boundary prefix match of a
	// longer keyword counts half, and slang indicator hits count more.
	keywordHitWeight     = 1.0
	keywordPartialWeight = 0.5
	slangHitWeight       = 1.5

	// keywordPrefixLen is how much of a longer keyword must match at a word
	// boundary for a partial hit ("terrif" covers terrified/terrifying).
	keywordPrefixLen = 4

	// hitsForFullConfidence is the keyword hit count at which extraction
	// confidence saturates at 1.
	hitsForFullConfidence = 5.0

	// popularSlangVotes marks a slang definition as popular enough to earn a
	// confidence boost.
	popularSlangVotes    = 1000
	popularSlangBoost    = 1.2
	slangSourceName      = "slang"
	dictionarySourceName = "dictionary"
)

// foldForMatch lowercases and strips diacritics so keyword matching works
// the same way lexicon keys do.
func foldForMatch(s string) string {
	return stripDiacritics(strings.ToLower(s))
}

// extractEmotionWeights reads a definition's text for emotion keywords and
// returns the scaled weights, or ok=false when the definition carries no
// usable signal or the confidence stays below minConfidence.
func extractEmotionWeights(def WordDefinition, minConfidence float64) (EmotionWeight, bool) {
	keywords, okLang := emotionKeywords[def.Language]
	if !okLang {
		keywords = emotionKeywords[English]
	}

	var sb strings.Builder
	for _, d := range def.Definitions {
		sb.WriteString(d)
		sb.WriteByte(' ')
	}
	for _, ex := range def.Examples {
		sb.WriteString(ex)
		sb.WriteByte(' ')
	}
	for _, syn := range def.Synonyms {
		sb.WriteString(syn)
		sb.WriteByte(' ')
	}
	text := foldForMatch(sb.String())

	scores := NewEmotionVector()
	totalHits := 0.0

	for emotion, words := range keywords {
		for _, kw := range words {
			folded := foldForMatch(kw)
			switch {
			case strings.Contains(text, folded):
				scores[emotion] += keywordHitWeight
				totalHits += keywordHitWeight
			case len(folded) > keywordPrefixLen:
				if hasWordWithPrefix(text, folded[:keywordPrefixLen]) {
					scores[emotion] += keywordPartialWeight
					totalHits += keywordPartialWeight
				}
			}
		}
	}

	if def.Source == slangSourceName {
		for emotion, indicators := range slangIndicators {
			for _, ind := range indicators {
				if strings.Contains(text, foldForMatch(ind)) {
					scores[emotion] += slangHitWeight
					totalHits += slangHitWeight
				}
			}
		}
	}

	if totalHits == 0 {
		return EmotionWeight{}, false
	}

	maxScore := 0.0
	for _, w := range scores {
		if w > maxScore {
			maxScore = w
		}
	}
	scores.Scale(extractTopWeight / maxScore)

	confidence := clamp01(totalHits / hitsForFullConfidence)
	if def.Source == slangSourceName && def.ThumbsUp > popularSlangVotes {
		confidence = clamp01(confidence * popularSlangBoost)
	}
	if confidence < minConfidence {
		return EmotionWeight{}, false
	}

	filtered := make(EmotionVector, len(scores))
	for e, w := range scores {
		if w = round3(w); w >= extractMinWeight {
			filtered[e] = w
		}
	}
	if len(filtered) == 0 {
		return EmotionWeight{}, false
	}

	return EmotionWeight{
		Word:       def.Word,
		Language:   def.Language,
		Emotions:   filtered,
		Confidence: round3(confidence),
		Source:     def.Source,
	}, true
}

// hasWordWithPrefix reports whether text contains a word starting with
// prefix. Both are already folded, so a plain byte check suffices for the
// boundary test.
func hasWordWithPrefix(text, prefix string) bool {
	if prefix == "" {
		return false
	}
	for i := 0; ; {
		j := strings.Index(text[i:], prefix)
		if j < 0 {
			return false
		}
		at := i + j
		if at == 0 || !isWordByte(text[at-1]) {
			return true
		}
		i = at + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
