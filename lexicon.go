package affect

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Lexicon is the versioned store of word and phrase vectors. Readers work
// against an immutable snapshot reached through a single atomic pointer, so
// scoring never sees a half-applied update; writers build a fresh snapshot
// copy-on-write and swap it in whole.
type Lexicon struct {
	mu   sync.Mutex // serializes writers
	snap atomic.Pointer[lexiconSnapshot]
}

type lexiconSnapshot struct {
	version      uint64
	words        map[Language]map[string]EmotionVector
	phrases      map[Language]map[string]EmotionVector
	maxPhraseLen map[Language]int
}

// LexiconStats summarizes the current snapshot.
type LexiconStats struct {
	Version     uint64           `json:"version"`
	WordCount   map[Language]int `json:"wordCount"`
	PhraseCount map[Language]int `json:"phraseCount"`
	TotalWords  int              `json:"totalWords"`
}

// NewLexicon returns a lexicon seeded with the bundled curated entries plus
// their morphology expansion.
func NewLexicon() *Lexicon {
	return NewLexiconFrom(seedWords(), seedPhrases(), true)
}

// NewEmptyLexicon returns a lexicon with empty tables for every supported
// language. Useful for tests and fully custom vocabularies.
func NewEmptyLexicon() *Lexicon {
	words := make(map[Language]map[string]EmotionVector)
	phrases := make(map[Language]map[string]EmotionVector)
	for _, lang := range SupportedLanguages() {
		words[lang] = map[string]EmotionVector{}
		phrases[lang] = map[string]EmotionVector{}
	}
	return NewLexiconFrom(words, phrases, false)
}

// NewLexiconFrom builds a lexicon from caller-supplied tables, optionally
// running morphology expansion over the word tables.
func NewLexiconFrom(words, phrases map[Language]map[string]EmotionVector, expand bool) *Lexicon {
	l := &Lexicon{}
	snap := buildSnapshot(1, words, phrases, expand)
	l.snap.Store(snap)
	return l
}

func buildSnapshot(version uint64, words, phrases map[Language]map[string]EmotionVector, expand bool) *lexiconSnapshot {
	snap := &lexiconSnapshot{
		version:      version,
		words:        make(map[Language]map[string]EmotionVector, len(words)),
		phrases:      make(map[Language]map[string]EmotionVector, len(phrases)),
		maxPhraseLen: make(map[Language]int, len(phrases)),
	}
	for _, lang := range SupportedLanguages() {
		w := make(map[string]EmotionVector, len(words[lang]))
		for key, v := range words[lang] {
			w[key] = v.Clone()
		}
		if expand {
			for key, v := range expandMorphology(lang, w) {
				if _, exists := w[key]; !exists {
					w[key] = v
				}
			}
		}
		snap.words[lang] = w

		p := make(map[string]EmotionVector, len(phrases[lang]))
		maxLen := 0
		for key, v := range phrases[lang] {
			norm := NormalizePhrase(key)
			p[norm] = v.Clone()
			if n := len(strings.Fields(norm)); n > maxLen {
				maxLen = n
			}
		}
		snap.phrases[lang] = p
		snap.maxPhraseLen[lang] = maxLen
	}
	return snap
}

// LookupWord returns the vector for a lexicon-normalized word key.
func (l *Lexicon) LookupWord(lang Language, key string) (EmotionVector, bool) {
	snap := l.snap.Load()
	v, ok := snap.words[lang][key]
	return v, ok
}

// LookupPhrase returns the vector for a phrase-normalized key.
func (l *Lexicon) LookupPhrase(lang Language, key string) (EmotionVector, bool) {
	snap := l.snap.Load()
	v, ok := snap.phrases[lang][key]
	return v, ok
}

// MaxPhraseTokens reports the longest phrase, in tokens, stored for lang.
// The scorer uses it to bound its forward matching window.
func (l *Lexicon) MaxPhraseTokens(lang Language) int {
	return l.snap.Load().maxPhraseLen[lang]
}

// Version returns the current snapshot's version. It increases by exactly
// one on every successful mutation.
func (l *Lexicon) Version() uint64 {
	return l.snap.Load().version
}

// Stats summarizes the current snapshot.
func (l *Lexicon) Stats() LexiconStats {
	snap := l.snap.Load()
	stats := LexiconStats{
		Version:     snap.version,
		WordCount:   make(map[Language]int, len(snap.words)),
		PhraseCount: make(map[Language]int, len(snap.phrases)),
	}
	for lang, table := range snap.words {
		stats.WordCount[lang] = len(table)
		stats.TotalWords += len(table)
	}
	for lang, table := range snap.phrases {
		stats.PhraseCount[lang] = len(table)
	}
	return stats
}

// mutate clones the live snapshot, applies fn to the clone, bumps the
// version, and swaps. The writer lock makes the load-modify-swap atomic;
// the CompareAndSwap is a consistency guard, not a retry loop.
func (l *Lexicon) mutate(op string, fn func(words, phrases map[Language]map[string]EmotionVector)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	old := l.snap.Load()
	words := make(map[Language]map[string]EmotionVector, len(old.words))
	for lang, table := range old.words {
		clone := make(map[string]EmotionVector, len(table))
		for k, v := range table {
			clone[k] = v.Clone()
		}
		words[lang] = clone
	}
	phrases := make(map[Language]map[string]EmotionVector, len(old.phrases))
	for lang, table := range old.phrases {
		clone := make(map[string]EmotionVector, len(table))
		for k, v := range table {
			clone[k] = v.Clone()
		}
		phrases[lang] = clone
	}

	fn(words, phrases)

	next := buildSnapshot(old.version+1, words, phrases, false)
	if !l.snap.CompareAndSwap(old, next) {
		return &ConsistencyError{Op: op, Detail: "snapshot replaced outside the writer lock"}
	}
	return nil
}

// MergeWords folds entries into lang's word table with merge-by-max
// semantics: existing weights only ever grow, and re-merging the same
// entries is a no-op. When expand is set, morphology variants of the merged
// roots are derived first and merged alongside them.
func (l *Lexicon) MergeWords(lang Language, entries map[string]EmotionVector, expand bool) error {
	if !lang.Supported() {
		return &InvalidInputError{Field: "language", Reason: "unsupported language " + string(lang)}
	}
	normalized := make(map[string]EmotionVector, len(entries))
	for word, v := range entries {
		key := LexiconKey(word)
		if key == "" {
			continue
		}
		normalized[key] = v.Clone()
	}
	if expand {
		for key, v := range expandMorphology(lang, normalized) {
			if _, exists := normalized[key]; !exists {
				normalized[key] = v
			}
		}
	}
	return l.mutate("MergeWords", func(words, _ map[Language]map[string]EmotionVector) {
		table := words[lang]
		for key, v := range normalized {
			if existing, ok := table[key]; ok {
				existing.MergeMax(v)
			} else {
				table[key] = v
			}
		}
	})
}

// MergePhrases folds entries into lang's phrase table, merge-by-max.
func (l *Lexicon) MergePhrases(lang Language, entries map[string]EmotionVector) error {
	if !lang.Supported() {
		return &InvalidInputError{Field: "language", Reason: "unsupported language " + string(lang)}
	}
	return l.mutate("MergePhrases", func(_, phrases map[Language]map[string]EmotionVector) {
		table := phrases[lang]
		for phrase, v := range entries {
			key := NormalizePhrase(phrase)
			if key == "" {
				continue
			}
			if existing, ok := table[key]; ok {
				existing.MergeMax(v)
			} else {
				table[key] = v.Clone()
			}
		}
	})
}

// Replace swaps lang's word table wholesale for the given entries. Other
// languages keep their tables; phrase tables are untouched.
func (l *Lexicon) Replace(lang Language, entries map[string]EmotionVector, expand bool) error {
	if !lang.Supported() {
		return &InvalidInputError{Field: "language", Reason: "unsupported language " + string(lang)}
	}
	normalized := make(map[string]EmotionVector, len(entries))
	for word, v := range entries {
		key := LexiconKey(word)
		if key == "" {
			continue
		}
		normalized[key] = v.Clone()
	}
	if expand {
		for key, v := range expandMorphology(lang, normalized) {
			if _, exists := normalized[key]; !exists {
				normalized[key] = v
			}
		}
	}
	return l.mutate("Replace", func(words, _ map[Language]map[string]EmotionVector) {
		words[lang] = normalized
	})
}

// AddWord inserts or strengthens a single word, validating the weights. A
// word containing spaces lands in the phrase table instead.
func (l *Lexicon) AddWord(word string, lang Language, weights EmotionVector) error {
	if strings.TrimSpace(word) == "" {
		return &InvalidInputError{Field: "word", Reason: "empty"}
	}
	if !lang.Supported() {
		return &InvalidInputError{Field: "language", Reason: "unsupported language " + string(lang)}
	}
	if len(weights) == 0 {
		return &InvalidInputError{Field: "weights", Reason: "no emotion weights given"}
	}
	for e, w := range weights {
		if !e.Valid() {
			return &InvalidInputError{Field: "weights", Reason: "unknown emotion " + string(e)}
		}
		if w < 0 {
			return &InvalidInputError{Field: "weights", Reason: "negative weight for " + string(e)}
		}
	}
	if strings.Contains(strings.TrimSpace(word), " ") {
		return l.MergePhrases(lang, map[string]EmotionVector{word: weights})
	}
	return l.MergeWords(lang, map[string]EmotionVector{word: weights}, true)
}

// RemoveWord drops a word (and any same-keyed phrase) from lang's tables.
// It reports whether anything was removed.
func (l *Lexicon) RemoveWord(word string, lang Language) (bool, error) {
	if !lang.Supported() {
		return false, &InvalidInputError{Field: "language", Reason: "unsupported language " + string(lang)}
	}
	key := LexiconKey(word)
	phraseKey := NormalizePhrase(word)
	removed := false
	err := l.mutate("RemoveWord", func(words, phrases map[Language]map[string]EmotionVector) {
		if _, ok := words[lang][key]; ok {
			delete(words[lang], key)
			removed = true
		}
		if _, ok := phrases[lang][phraseKey]; ok {
			delete(phrases[lang], phraseKey)
			removed = true
		}
	})
	return removed, err
}
