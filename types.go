// Package affect scores short free-form text against a fixed set of seven
// emotion categories, producing a normalized mixture, a dominant and a
// current (recency-weighted) emotional state, and a tiered self-harm risk
// assessment. Scoring is rule-based: a curated multilingual lexicon of words
// and phrases, morphology expansion, and contextual modifiers.
package affect

import "sort"

// Language identifies a supported input language.
type Language string

const (
	English    Language = "en"
	Spanish    Language = "es"
	Portuguese Language = "pt"
)

// SupportedLanguages returns the languages the engine ships lexicons for.
func SupportedLanguages() []Language {
	return []Language{English, Spanish, Portuguese}
}

// Supported reports whether l is one of the shipped languages.
func (l Language) Supported() bool {
	switch l {
	case English, Spanish, Portuguese:
		return true
	}
	return false
}

// Emotion is one of the seven fixed categories every result reports on.
type Emotion string

const (
	Anger    Emotion = "anger"
	Disgust  Emotion = "disgust"
	Fear     Emotion = "fear"
	Joy      Emotion = "joy"
	Sadness  Emotion = "sadness"
	Passion  Emotion = "passion"
	Surprise Emotion = "surprise"
)

// emotionOrder is the canonical category order. It doubles as the tie-break
// priority: when two categories carry the same percentage, the one listed
// earlier wins, so repeated runs over the same input always agree.
var emotionOrder = [...]Emotion{Anger, Disgust, Fear, Joy, Sadness, Passion, Surprise}

// Emotions returns the seven categories in canonical order.
func Emotions() []Emotion {
	out := make([]Emotion, len(emotionOrder))
	copy(out, emotionOrder[:])
	return out
}

// Valid reports whether e names one of the seven categories.
func (e Emotion) Valid() bool {
	for _, known := range emotionOrder {
		if e == known {
			return true
		}
	}
	return false
}

// EmotionVector maps each category to a non-negative weight. Vectors are the
// common currency between the lexicon, the scorer, and the expansion
// pipeline; a missing key reads as zero.
type EmotionVector map[Emotion]float64

// NewEmotionVector returns a vector with every category present at zero.
func NewEmotionVector() EmotionVector {
	v := make(EmotionVector, len(emotionOrder))
	for _, e := range emotionOrder {
		v[e] = 0
	}
	return v
}

// Clone returns an independent copy of v.
func (v EmotionVector) Clone() EmotionVector {
	out := make(EmotionVector, len(v))
	for e, w := range v {
		out[e] = w
	}
	return out
}

// Add accumulates other into v, scaled by factor. Negative contributions
// (from negation flips) are clamped at zero so weights stay non-negative.
func (v EmotionVector) Add(other EmotionVector, factor float64) {
	for e, w := range other {
		next := v[e] + w*factor
		if next < 0 {
			next = 0
		}
		v[e] = next
	}
}

// MergeMax folds other into v keeping, per category, the larger weight.
// Merging the same vector twice is a no-op, which is what makes repeated
// lexicon expansion runs safe.
func (v EmotionVector) MergeMax(other EmotionVector) {
	for e, w := range other {
		if w > v[e] {
			v[e] = w
		}
	}
}

// Scale multiplies every weight by factor.
func (v EmotionVector) Scale(factor float64) {
	for e := range v {
		v[e] *= factor
	}
}

// Total returns the sum of all weights.
func (v EmotionVector) Total() float64 {
	var total float64
	for _, w := range v {
		total += w
	}
	return total
}

// IsZero reports whether every weight is zero.
func (v EmotionVector) IsZero() bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}

// Top returns the categories ordered by descending weight, ties broken by
// canonical order.
func (v EmotionVector) Top() []Emotion {
	out := Emotions()
	rank := make(map[Emotion]int, len(emotionOrder))
	for i, e := range emotionOrder {
		rank[e] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := v[out[i]], v[out[j]]
		if wi != wj {
			return wi > wj
		}
		return rank[out[i]] < rank[out[j]]
	})
	return out
}

// RiskLevel is the tiered outcome of the self-harm safety assessment.
type RiskLevel string

const (
	RiskNone     RiskLevel = "none"
	RiskPossible RiskLevel = "possible"
	RiskLikely   RiskLevel = "likely"
	RiskSevere   RiskLevel = "severe"
)

var riskRank = map[RiskLevel]int{
	RiskNone:     0,
	RiskPossible: 1,
	RiskLikely:   2,
	RiskSevere:   3,
}

// AtLeast reports whether r is the same tier as other or a higher one.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return riskRank[r] >= riskRank[other]
}

// Token is a surface form plus its byte offset in the normalized text.
type Token struct {
	Text  string
	Start int
}

// EmotionScore is one row of the per-category breakdown in a result.
type EmotionScore struct {
	Emotion   Emotion `json:"emotion"`
	Label     string  `json:"label"`
	Localized string  `json:"labelLocalized"`
	Score     float64 `json:"score"`
	Percent   float64 `json:"percent"`
}

// EmotionBlock describes a single headline emotion: the dominant state over
// the whole text, or the current state over the recent window. On a
// no-signal result Emotion is empty and Percent is zero.
type EmotionBlock struct {
	Emotion   Emotion `json:"emotion"`
	Label     string  `json:"label"`
	Localized string  `json:"labelLocalized"`
	Percent   float64 `json:"percent"`
	Intensity string  `json:"intensity"`
	Nuanced   string  `json:"nuancedLabel"`
}

// ResultMetrics carries the scalar signals alongside the mixture.
type ResultMetrics struct {
	Confidence float64 `json:"confidence"`
	Arousal    float64 `json:"arousal"`
	Sarcasm    float64 `json:"sarcasm"`
	NoSignal   bool    `json:"noSignal"`
}

// RiskBlock reports the safety tier and, above none, a region support
// resource.
type RiskBlock struct {
	Level    RiskLevel        `json:"level"`
	Resource *SupportResource `json:"resource"`
}

// ResultMeta holds bookkeeping about how the text was read.
type ResultMeta struct {
	WordCount     int                  `json:"wordCount"`
	MatchCount    int                  `json:"matchCount"`
	RecentStart   int                  `json:"recentStart"`
	Language      Language             `json:"language"`
	LanguageGuess map[Language]float64 `json:"languageGuess"`
}

// AnalysisResult is the fixed-schema outcome of Analyze. Every category
// appears in Mixture and Scores on every result; percentages across Mixture
// sum to 100 unless Metrics.NoSignal is set, in which case they are all zero.
type AnalysisResult struct {
	Mixture  map[Emotion]float64 `json:"mixture"`
	Scores   []EmotionScore      `json:"scores"`
	Dominant EmotionBlock        `json:"dominant"`
	Current  EmotionBlock        `json:"current"`
	Metrics  ResultMetrics       `json:"metrics"`
	Risk     RiskBlock           `json:"risk"`
	Meta     ResultMeta          `json:"meta"`
}

// AnalyzerConfig tunes the scoring walk.
type AnalyzerConfig struct {
	MaxWords        int     // inputs above this word count are rejected
	NegationWindow  int     // words to scan back for negation and modifiers
	RecentFraction  float64 // share of trailing tokens in the recent window
	MinRecentTokens int     // below this the whole text is the recent window
	BlendMargin     float64 // percentage-point gap treated as a near-tie
}

// DefaultAnalyzerConfig returns standard configuration.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxWords:        250,
		NegationWindow:  3,
		RecentFraction:  0.2,
		MinRecentTokens: 6,
		BlendMargin:     8.0,
	}
}
