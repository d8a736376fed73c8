package affect

import (
	"regexp"
	"strings"
	"sync"
)

// humorDiscountThreshold is the sarcasm estimate above which a single hard
// match reads as dark humor rather than acute risk.
const humorDiscountThreshold = 0.5

type safetyPattern struct {
	expr string
	re   *regexp.Regexp
}

// SafetyClassifier holds the compiled hard and soft self-harm pattern sets
// per language. The sets are append-only: patterns can be added at runtime
// (deduplicated by pattern text) but never removed, so an assessment can
// only get more sensitive over time. It is independent of the lexicon.
type SafetyClassifier struct {
	mu   sync.RWMutex
	hard map[Language][]safetyPattern
	soft map[Language][]safetyPattern
	seen map[string]struct{}
}

// NewSafetyClassifier returns a classifier seeded with the bundled hard and
// soft pattern sets for every supported language.
func NewSafetyClassifier() *SafetyClassifier {
	c := &SafetyClassifier{
		hard: make(map[Language][]safetyPattern),
		soft: make(map[Language][]safetyPattern),
		seen: make(map[string]struct{}),
	}
	for lang, exprs := range hardSafetyPatterns {
		if _, err := c.AddHardPatterns(lang, exprs); err != nil {
			panic(err)
		}
	}
	for lang, exprs := range softSafetyPatterns {
		if _, err := c.AddSoftPatterns(lang, exprs); err != nil {
			panic(err)
		}
	}
	return c
}

// AddHardPatterns compiles and appends hard patterns for lang, skipping any
// already present. It returns how many were actually added.
func (c *SafetyClassifier) AddHardPatterns(lang Language, exprs []string) (int, error) {
	return c.add(lang, exprs, true)
}

// AddSoftPatterns compiles and appends soft patterns for lang, skipping any
// already present. It returns how many were actually added.
func (c *SafetyClassifier) AddSoftPatterns(lang Language, exprs []string) (int, error) {
	return c.add(lang, exprs, false)
}

func (c *SafetyClassifier) add(lang Language, exprs []string, hard bool) (int, error) {
	if !lang.Supported() {
		return 0, &InvalidInputError{Field: "language", Reason: "unsupported language " + string(lang)}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	tier := "soft"
	if hard {
		tier = "hard"
	}
	added := 0
	for _, expr := range exprs {
		dedupKey := string(lang) + "/" + tier + "/" + expr
		if _, dup := c.seen[dedupKey]; dup {
			continue
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return added, &InvalidInputError{Field: "pattern", Reason: err.Error()}
		}
		c.seen[dedupKey] = struct{}{}
		p := safetyPattern{expr: expr, re: re}
		if hard {
			c.hard[lang] = append(c.hard[lang], p)
		} else {
			c.soft[lang] = append(c.soft[lang], p)
		}
		added++
	}
	return added, nil
}

// PatternCounts reports the number of compiled hard and soft patterns for
// lang.
func (c *SafetyClassifier) PatternCounts(lang Language) (hard, soft int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.hard[lang]), len(c.soft[lang])
}

// Assess classifies text into a risk tier. A hard match forces at least
// likely; two hard matches, or a hard plus a soft match, force severe.
// Soft-only matches cap at possible. humorDiscount (the caller's sarcasm
// estimate, 0..1) can downgrade a lone likely to possible but never clears
// a match entirely, and severe is never downgraded.
func (c *SafetyClassifier) Assess(text string, lang Language, humorDiscount float64) RiskLevel {
	norm := stripDiacritics(strings.ToLower(text))

	c.mu.RLock()
	defer c.mu.RUnlock()

	hardHits := countMatches(c.hard[lang], norm)
	softHits := countMatches(c.soft[lang], norm)

	switch {
	case hardHits >= 2 || (hardHits >= 1 && softHits >= 1):
		return RiskSevere
	case hardHits == 1:
		if humorDiscount >= humorDiscountThreshold {
			return RiskPossible
		}
		return RiskLikely
	case softHits >= 1:
		return RiskPossible
	}
	return RiskNone
}

// Flag is the coarse boundary check used when a caller only needs to know
// whether text trips any hard pattern in any language.
func (c *SafetyClassifier) Flag(text string) bool {
	norm := stripDiacritics(strings.ToLower(text))

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, lang := range SupportedLanguages() {
		for _, p := range c.hard[lang] {
			if p.re.MatchString(norm) {
				return true
			}
		}
	}
	return false
}

func countMatches(patterns []safetyPattern, text string) int {
	n := 0
	for _, p := range patterns {
		if p.re.MatchString(text) {
			n++
		}
	}
	return n
}
