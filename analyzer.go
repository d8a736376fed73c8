package affect

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Analyzer ties the lexicon, safety classifier, scorer and formatter
// together behind a single Analyze call. It is safe for concurrent use:
// scoring reads immutable lexicon snapshots and the safety sets take a
// read lock.
type Analyzer struct {
	lexicon *Lexicon
	safety  *SafetyClassifier
	config  AnalyzerConfig
	log     *zap.Logger
}

// An AnalyzerOpt configures Analyzer construction.
type AnalyzerOpt func(*Analyzer)

// WithLexicon supplies a custom lexicon instead of the bundled one.
func WithLexicon(l *Lexicon) AnalyzerOpt {
	return func(a *Analyzer) {
		a.lexicon = l
	}
}

// WithSafetyClassifier supplies a custom safety classifier.
func WithSafetyClassifier(c *SafetyClassifier) AnalyzerOpt {
	return func(a *Analyzer) {
		a.safety = c
	}
}

// WithConfig overrides the default analyzer configuration.
func WithConfig(cfg AnalyzerConfig) AnalyzerOpt {
	return func(a *Analyzer) {
		a.config = cfg
	}
}

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) AnalyzerOpt {
	return func(a *Analyzer) {
		a.log = log
	}
}

// NewAnalyzer creates an analyzer according to the given options.
//
// For example,
//
//	a := affect.NewAnalyzer()
//	res, err := a.Analyze("I am so happy today!", affect.English)
func NewAnalyzer(opts ...AnalyzerOpt) *Analyzer {
	a := &Analyzer{
		config: DefaultAnalyzerConfig(),
		log:    zap.NewNop(),
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}
	if a.lexicon == nil {
		a.lexicon = NewLexicon()
	}
	if a.safety == nil {
		a.safety = NewSafetyClassifier()
	}
	return a
}

// Lexicon exposes the analyzer's lexicon for administration.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon
}

// Safety exposes the analyzer's safety classifier.
func (a *Analyzer) Safety() *SafetyClassifier {
	return a.safety
}

// analyzeOpts carries the per-call knobs.
type analyzeOpts struct {
	locale Language
	region string
}

// An AnalyzeOpt adjusts a single Analyze call.
type AnalyzeOpt func(*analyzeOpts)

// WithLocale sets the display locale (BCP 47 tag, e.g. "pt-BR") for labels
// and support-resource strings. Unrecognized locales fall back to English.
func WithLocale(locale string) AnalyzeOpt {
	return func(o *analyzeOpts) {
		o.locale = normalizeLocale(locale)
	}
}

// WithRegion sets the region code used to pick a support resource when the
// risk tier is above none.
func WithRegion(region string) AnalyzeOpt {
	return func(o *analyzeOpts) {
		o.region = region
	}
}

// Analyze scores text in the named language and returns the full result.
// Empty text, an unsupported language, or texts above the configured word
// limit are rejected with an InvalidInputError.
func (a *Analyzer) Analyze(text string, lang Language, opts ...AnalyzeOpt) (*AnalysisResult, error) {
	o := analyzeOpts{locale: English}
	for _, applyOpt := range opts {
		applyOpt(&o)
	}

	if !lang.Supported() {
		return nil, &InvalidInputError{Field: "language", Reason: "unsupported language " + string(lang)}
	}

	clean := sanitizer.Replace(text)
	tokens := Tokenize(clean)
	if len(tokens) == 0 {
		return nil, &InvalidInputError{Field: "text", Reason: "empty or whitespace-only"}
	}

	wordCount := countWords(tokens)
	if wordCount > a.config.MaxWords {
		return nil, &InvalidInputError{
			Field:  "text",
			Reason: fmt.Sprintf("%d words exceeds the %d word limit", wordCount, a.config.MaxWords),
		}
	}

	sig := computeSignals(clean, tokens, lang)
	risk := a.safety.Assess(clean, lang, sig.sarcasm)

	sc := (&scorer{lexicon: a.lexicon, config: a.config}).score(clean, tokens, lang)

	res := formatResult(a.config, clean, lang, o.locale, o.region,
		sc, sig, risk, wordCount, GuessLanguageProportions(clean))

	a.log.Debug("analyzed text",
		zap.String("language", string(lang)),
		zap.Int("words", wordCount),
		zap.Int("matches", sc.matches),
		zap.String("risk", string(risk)),
		zap.Bool("noSignal", res.Metrics.NoSignal))

	return res, nil
}

// Flag reports whether text trips any hard self-harm pattern in any
// supported language. It is the cheap boundary check for callers that only
// store or route content.
func (a *Analyzer) Flag(text string) bool {
	return a.safety.Flag(sanitizer.Replace(text))
}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.Portuguese,
})

func normalizeLocale(locale string) Language {
	if locale == "" {
		return English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return English
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return English
	}
	switch idx {
	case 1:
		return Spanish
	case 2:
		return Portuguese
	}
	return English
}
