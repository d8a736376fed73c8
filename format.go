package affect

import (
	"math"
	"strings"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/floats"
)

// blendBias resolves near-ties between commonly co-occurring categories in
// the current (recency-weighted) block. When the top two are within the
// configured margin, the pair's preferred reading wins.
var blendBias = map[[2]Emotion]Emotion{
	{Anger, Sadness}: Sadness,
	{Anger, Disgust}: Anger,
	{Joy, Passion}:   Passion,
	{Fear, Surprise}: Fear,
	{Joy, Surprise}:  Joy,
}

// formatResult turns raw accumulators and surface signals into the fixed
// result schema: normalized percentages, dominant and current blocks,
// metrics, and the risk block.
func formatResult(
	cfg AnalyzerConfig,
	text string,
	lang Language,
	locale Language,
	region string,
	sc scoreResult,
	sig textSignals,
	risk RiskLevel,
	wordCount int,
	guess map[Language]float64,
) *AnalysisResult {
	wholePct, wholeScores := normalizeVector(sc.whole, sig.arousal)
	recentPct, _ := normalizeVector(sc.recent, sig.arousal)

	noSignal := sc.matches == 0 || sc.whole.IsZero()
	if noSignal {
		// Everything stays at zero; the flag tells the caller why.
		recentPct = wholePct
	} else if sc.recent.IsZero() {
		// No matches landed in the recent window; the whole text stands in.
		recentPct = wholePct
	}

	res := &AnalysisResult{
		Mixture: make(map[Emotion]float64, len(emotionOrder)),
		Scores:  make([]EmotionScore, 0, len(emotionOrder)),
		Metrics: ResultMetrics{
			Confidence: confidence(cfg, text, lang, sc, sig, wordCount),
			Arousal:    round3(sig.arousal),
			Sarcasm:    round3(sig.sarcasm),
			NoSignal:   noSignal,
		},
		Risk: RiskBlock{Level: risk},
		Meta: ResultMeta{
			WordCount:     wordCount,
			MatchCount:    sc.matches,
			RecentStart:   sc.recentStart,
			Language:      lang,
			LanguageGuess: guess,
		},
	}

	for _, e := range emotionOrder {
		res.Mixture[e] = round3(wholePct[e])
		en, local := labelFor(e, locale)
		res.Scores = append(res.Scores, EmotionScore{
			Emotion:   e,
			Label:     en,
			Localized: local,
			Score:     round3(wholeScores[e]),
			Percent:   round3(wholePct[e]),
		})
	}

	if !noSignal {
		res.Dominant = headlineBlock(pickTop(wholePct, cfg.BlendMargin, false), wholePct, locale)
		res.Current = headlineBlock(pickTop(recentPct, cfg.BlendMargin, true), recentPct, locale)
	}

	if risk != RiskNone {
		res.Risk.Resource = ResourceForRegion(region, locale)
	}

	return res
}

// normalizeVector applies the arousal boost and scales to percentages that
// sum to 100. A zero vector stays all zero.
func normalizeVector(v EmotionVector, arousal float64) (EmotionVector, EmotionVector) {
	boosted := NewEmotionVector()
	for _, e := range emotionOrder {
		boosted[e] = v[e] * (1 + arousalBeta[e]*arousal)
	}

	vals := make([]float64, len(emotionOrder))
	for i, e := range emotionOrder {
		vals[i] = boosted[e]
	}
	total := floats.Sum(vals)

	pct := NewEmotionVector()
	if total <= 0 {
		return pct, boosted
	}
	floats.Scale(100/total, vals)
	for i, e := range emotionOrder {
		pct[e] = vals[i]
	}
	return pct, boosted
}

// pickTop chooses the headline category: highest percentage, ties broken by
// canonical order. For the current block a near-tie between a known pair is
// resolved by the blend-bias table instead.
func pickTop(pct EmotionVector, margin float64, applyBlend bool) Emotion {
	ranked := pct.Top()
	top, second := ranked[0], ranked[1]

	if applyBlend && pct[top]-pct[second] < margin {
		if biased, ok := blendBias[[2]Emotion{top, second}]; ok {
			return biased
		}
		if biased, ok := blendBias[[2]Emotion{second, top}]; ok {
			return biased
		}
	}
	return top
}

func headlineBlock(e Emotion, pct EmotionVector, locale Language) EmotionBlock {
	en, local := labelFor(e, locale)
	p := pct[e]
	return EmotionBlock{
		Emotion:   e,
		Label:     en,
		Localized: local,
		Percent:   round3(p),
		Intensity: intensityBucket(p),
		Nuanced:   nuancedLabelFor(e, p, locale),
	}
}

// confidence blends text length, lexical coverage over content words,
// accumulated signal strength, and the sarcasm discount. No matches means
// no confidence.
func confidence(cfg AnalyzerConfig, text string, lang Language, sc scoreResult, sig textSignals, wordCount int) float64 {
	if sc.matches == 0 {
		return 0
	}

	lengthFactor := clamp01(float64(wordCount) / 12)

	contentWords := len(strings.Fields(stopwords.CleanString(text, string(lang), false)))
	if contentWords == 0 {
		contentWords = wordCount
	}
	coverage := clamp01(float64(sc.matchedWords) / float64(contentWords))

	strength := 1 - math.Exp(-sc.whole.Total()/8)

	c := 0.3*lengthFactor + 0.3*coverage + 0.2*strength + 0.2*(1-sig.sarcasm)
	return round3(clamp01(c))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
