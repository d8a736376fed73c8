package affect

// Intensity buckets for a headline emotion, keyed off its percentage share.
const (
	IntensityVeryLow  = "very_low"
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
	IntensityVeryHigh = "very_high"
)

func intensityBucket(percent float64) string {
	switch {
	case percent >= 80:
		return IntensityVeryHigh
	case percent >= 55:
		return IntensityHigh
	case percent >= 30:
		return IntensityModerate
	case percent >= 10:
		return IntensityLow
	}
	return IntensityVeryLow
}

var emotionLabels = map[Language]map[Emotion]string{
	English: {
		Anger: "Anger", Disgust: "Disgust", Fear: "Fear", Joy: "Joy",
		Sadness: "Sadness", Passion: "Passion", Surprise: "Surprise",
	},
	Spanish: {
		Anger: "Ira", Disgust: "Asco", Fear: "Miedo", Joy: "Alegría",
		Sadness: "Tristeza", Passion: "Pasión", Surprise: "Sorpresa",
	},
	Portuguese: {
		Anger: "Raiva", Disgust: "Nojo", Fear: "Medo", Joy: "Alegria",
		Sadness: "Tristeza", Passion: "Paixão", Surprise: "Surpresa",
	},
}

// nuancedLabels refine the headline label by intensity bucket, per locale.
var nuancedLabels = map[Language]map[Emotion]map[string]string{
	English: {
		Anger: {
			IntensityVeryLow: "Slightly annoyed", IntensityLow: "Frustrated",
			IntensityModerate: "Angry", IntensityHigh: "Very angry",
			IntensityVeryHigh: "Furious",
		},
		Sadness: {
			IntensityVeryLow: "Slightly down", IntensityLow: "Down",
			IntensityModerate: "Sad", IntensityHigh: "Very sad",
			IntensityVeryHigh: "Devastated",
		},
		Joy: {
			IntensityVeryLow: "Slightly pleased", IntensityLow: "Content",
			IntensityModerate: "Happy", IntensityHigh: "Very happy",
			IntensityVeryHigh: "Overjoyed",
		},
		Fear: {
			IntensityVeryLow: "Slightly uneasy", IntensityLow: "Nervous",
			IntensityModerate: "Anxious", IntensityHigh: "Very anxious",
			IntensityVeryHigh: "Panicked",
		},
		Passion: {
			IntensityVeryLow: "Warm affection", IntensityLow: "Affectionate",
			IntensityModerate: "Loving", IntensityHigh: "Very loving",
			IntensityVeryHigh: "Deeply in love",
		},
		Disgust: {
			IntensityVeryLow: "Mild discomfort", IntensityLow: "Uncomfortable",
			IntensityModerate: "Displeased", IntensityHigh: "Disgusted",
			IntensityVeryHigh: "Repulsed",
		},
		Surprise: {
			IntensityVeryLow: "Slightly surprised", IntensityLow: "Surprised",
			IntensityModerate: "Very surprised", IntensityHigh: "Shocked",
			IntensityVeryHigh: "Stunned",
		},
	},
	Spanish: {
		Anger: {
			IntensityVeryLow: "Levemente molesto", IntensityLow: "Molesto",
			IntensityModerate: "Enojado", IntensityHigh: "Muy enojado",
			IntensityVeryHigh: "Furioso",
		},
		Sadness: {
			IntensityVeryLow: "Levemente desanimado", IntensityLow: "Desanimado",
			IntensityModerate: "Triste", IntensityHigh: "Muy triste",
			IntensityVeryHigh: "Devastado",
		},
		Joy: {
			IntensityVeryLow: "Levemente contento", IntensityLow: "Contento",
			IntensityModerate: "Feliz", IntensityHigh: "Muy feliz",
			IntensityVeryHigh: "Eufórico",
		},
		Fear: {
			IntensityVeryLow: "Levemente inquieto", IntensityLow: "Nervioso",
			IntensityModerate: "Ansioso", IntensityHigh: "Muy ansioso",
			IntensityVeryHigh: "Aterrado",
		},
		Passion: {
			IntensityVeryLow: "Afecto leve", IntensityLow: "Cariñoso",
			IntensityModerate: "Amoroso", IntensityHigh: "Muy amoroso",
			IntensityVeryHigh: "Profundamente enamorado",
		},
		Disgust: {
			IntensityVeryLow: "Ligeramente incómodo", IntensityLow: "Incómodo",
			IntensityModerate: "Disgustado", IntensityHigh: "Muy disgustado",
			IntensityVeryHigh: "Repugnado",
		},
		Surprise: {
			IntensityVeryLow: "Levemente sorprendido", IntensityLow: "Sorprendido",
			IntensityModerate: "Muy sorprendido", IntensityHigh: "Impactado",
			IntensityVeryHigh: "Atónito",
		},
	},
	Portuguese: {
		Anger: {
			IntensityVeryLow: "Levemente incomodado", IntensityLow: "Incomodado",
			IntensityModerate: "Com raiva", IntensityHigh: "Muito irritado",
			IntensityVeryHigh: "Furioso",
		},
		Sadness: {
			IntensityVeryLow: "Levemente abatido", IntensityLow: "Abatido",
			IntensityModerate: "Triste", IntensityHigh: "Muito triste",
			IntensityVeryHigh: "Devastado",
		},
		Joy: {
			IntensityVeryLow: "Levemente contente", IntensityLow: "Contente",
			IntensityModerate: "Feliz", IntensityHigh: "Muito feliz",
			IntensityVeryHigh: "Radiante",
		},
		Fear: {
			IntensityVeryLow: "Levemente apreensivo", IntensityLow: "Nervoso",
			IntensityModerate: "Ansioso", IntensityHigh: "Muito ansioso",
			IntensityVeryHigh: "Apavorado",
		},
		Passion: {
			IntensityVeryLow: "Afeto leve", IntensityLow: "Carinhoso",
			IntensityModerate: "Amoroso", IntensityHigh: "Muito amoroso",
			IntensityVeryHigh: "Profundamente apaixonado",
		},
		Disgust: {
			IntensityVeryLow: "Levemente desconfortável", IntensityLow: "Desconfortável",
			IntensityModerate: "Com nojo", IntensityHigh: "Muito enojado",
			IntensityVeryHigh: "Repugnado",
		},
		Surprise: {
			IntensityVeryLow: "Levemente surpreso", IntensityLow: "Surpreso",
			IntensityModerate: "Muito surpreso", IntensityHigh: "Chocado",
			IntensityVeryHigh: "Atônito",
		},
	},
}

func labelFor(e Emotion, locale Language) (en, localized string) {
	en = emotionLabels[English][e]
	localized = emotionLabels[locale][e]
	if localized == "" {
		localized = en
	}
	return en, localized
}

func nuancedLabelFor(e Emotion, percent float64, locale Language) string {
	if e == "" || percent <= 0.01 {
		return ""
	}
	bucket := intensityBucket(percent)
	if m, ok := nuancedLabels[locale][e]; ok {
		if label, ok := m[bucket]; ok {
			return label
		}
	}
	return nuancedLabels[English][e][bucket]
}
