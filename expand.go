package affect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// A DefinitionFetcher retrieves definitions for a word from an external
// source. A fetcher returns an empty slice with a nil error when the source
// simply does not know the word.
type DefinitionFetcher interface {
	Fetch(ctx context.Context, word string, lang Language) ([]WordDefinition, error)
	Source() string
}

const (
	dictionaryAPIBase = "https://api.dictionaryapi.dev/api/v2/entries"
	slangAPIBase      = "https://api.urbandictionary.com/v0/define"

	// maxSlangEntries bounds how many slang definitions are read per word;
	// entries past the most popular few are mostly noise.
	maxSlangEntries = 5
)

// ExpansionConfig tunes the expansion pipeline.
type ExpansionConfig struct {
	RateDelay      time.Duration // minimum spacing between external calls
	RequestTimeout time.Duration // per-request timeout
	MinConfidence  float64       // extraction confidence gate
}

// DefaultExpansionConfig returns standard configuration.
func DefaultExpansionConfig() ExpansionConfig {
	return ExpansionConfig{
		RateDelay:      500 * time.Millisecond,
		RequestTimeout: 10 * time.Second,
		MinConfidence:  0.3,
	}
}

// DictionaryClient fetches definitions from the free dictionary API. The
// zero value is not usable; construct with NewDictionaryClient.
type DictionaryClient struct {
	base   string
	client *http.Client
}

// NewDictionaryClient returns a dictionary fetcher with the given timeout.
func NewDictionaryClient(timeout time.Duration) *DictionaryClient {
	return &DictionaryClient{
		base:   dictionaryAPIBase,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *DictionaryClient) Source() string { return dictionarySourceName }

// dictionary API wire format
type dictionaryEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string   `json:"partOfSpeech"`
		Synonyms     []string `json:"synonyms"`
		Definitions  []struct {
			Definition string   `json:"definition"`
			Example    string   `json:"example"`
			Synonyms   []string `json:"synonyms"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Fetch looks the word up in the language's dictionary endpoint. A 404 means
// the word is unknown and yields no definitions and no error.
func (c *DictionaryClient) Fetch(ctx context.Context, word string, lang Language) ([]WordDefinition, error) {
	endpoint := map[Language]string{
		English:    "en",
		Spanish:    "es",
		Portuguese: "pt-BR",
	}[lang]
	if endpoint == "" {
		return nil, fmt.Errorf("no dictionary endpoint for language %q", lang)
	}

	body, err := c.get(ctx, c.base+"/"+endpoint+"/"+url.PathEscape(word))
	if err != nil || body == nil {
		return nil, err
	}

	var entries []dictionaryEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding dictionary response: %w", err)
	}

	var defs []WordDefinition
	for _, entry := range entries {
		w := entry.Word
		if w == "" {
			w = word
		}
		for _, meaning := range entry.Meanings {
			wd := WordDefinition{
				Word:         w,
				Language:     lang,
				Source:       c.Source(),
				PartOfSpeech: meaning.PartOfSpeech,
				Synonyms:     meaning.Synonyms,
			}
			for _, d := range meaning.Definitions {
				if d.Definition != "" {
					wd.Definitions = append(wd.Definitions, d.Definition)
				}
				if d.Example != "" {
					wd.Examples = append(wd.Examples, d.Example)
				}
				wd.Synonyms = append(wd.Synonyms, d.Synonyms...)
			}
			if len(wd.Definitions) > 0 {
				defs = append(defs, wd)
			}
		}
	}
	return defs, nil
}

func (c *DictionaryClient) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "affect/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// SlangClient fetches crowd-sourced slang definitions. The source is English
// only; other languages yield no definitions.
type SlangClient struct {
	base   string
	client *http.Client
}

// NewSlangClient returns a slang fetcher with the given timeout.
func NewSlangClient(timeout time.Duration) *SlangClient {
	return &SlangClient{
		base:   slangAPIBase,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *SlangClient) Source() string { return slangSourceName }

// Fetch returns the most popular slang definitions of the word.
func (c *SlangClient) Fetch(ctx context.Context, word string, lang Language) ([]WordDefinition, error) {
	if lang != English {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?term="+url.QueryEscape(word), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "affect/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var payload struct {
		List []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
			ThumbsUp   int    `json:"thumbs_up"`
		} `json:"list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding slang response: %w", err)
	}

	var defs []WordDefinition
	for i, entry := range payload.List {
		if i == maxSlangEntries {
			break
		}
		wd := WordDefinition{
			Word:        word,
			Language:    English,
			Source:      c.Source(),
			Definitions: []string{entry.Definition},
			ThumbsUp:    entry.ThumbsUp,
		}
		if entry.Example != "" {
			wd.Examples = []string{entry.Example}
		}
		defs = append(defs, wd)
	}
	return defs, nil
}

// Expander grows a lexicon from external dictionary sources. Fetched weights
// either merge into the lexicon immediately or collect in a pending table
// for review; both paths use merge-by-max, so re-running an expansion never
// shrinks or shuffles existing entries.
type Expander struct {
	lexicon *Lexicon
	dict    DefinitionFetcher
	slang   DefinitionFetcher
	noSlang bool
	config  ExpansionConfig
	log     *zap.Logger
	limiter *rate.Limiter

	mu      sync.Mutex
	pending map[Language]map[string]EmotionVector
}

// An ExpanderOpt configures Expander construction.
type ExpanderOpt func(*Expander)

// WithDictionaryFetcher replaces the default dictionary source.
func WithDictionaryFetcher(f DefinitionFetcher) ExpanderOpt {
	return func(e *Expander) {
		e.dict = f
	}
}

// WithSlangFetcher replaces the default slang source. A nil fetcher disables
// slang lookups entirely.
func WithSlangFetcher(f DefinitionFetcher) ExpanderOpt {
	return func(e *Expander) {
		e.slang = f
		e.noSlang = f == nil
	}
}

// WithExpansionConfig overrides the default expansion configuration.
func WithExpansionConfig(cfg ExpansionConfig) ExpanderOpt {
	return func(e *Expander) {
		e.config = cfg
	}
}

// WithExpansionLogger attaches a structured logger. The default is a no-op
// logger.
func WithExpansionLogger(log *zap.Logger) ExpanderOpt {
	return func(e *Expander) {
		e.log = log
	}
}

// NewExpander creates an expander that feeds the given lexicon.
func NewExpander(lexicon *Lexicon, opts ...ExpanderOpt) *Expander {
	e := &Expander{
		lexicon: lexicon,
		config:  DefaultExpansionConfig(),
		log:     zap.NewNop(),
		pending: make(map[Language]map[string]EmotionVector),
	}
	for _, applyOpt := range opts {
		applyOpt(e)
	}
	if e.dict == nil {
		e.dict = NewDictionaryClient(e.config.RequestTimeout)
	}
	if e.slang == nil && !e.noSlang {
		e.slang = NewSlangClient(e.config.RequestTimeout)
	}
	e.limiter = rate.NewLimiter(rate.Every(e.config.RateDelay), 1)
	return e
}

// ExternalLookup is the outcome of a preview lookup: the raw definitions
// plus the emotion weights that an expansion run would merge.
type ExternalLookup struct {
	Word        string           `json:"word"`
	Language    Language         `json:"language"`
	Definitions []WordDefinition `json:"definitions"`
	Sources     []string         `json:"sources"`
	Emotions    EmotionVector    `json:"emotions,omitempty"`
	Confidence  float64          `json:"confidence"`
}

// LookupExternal fetches and analyzes a single word without touching the
// lexicon. Definitions that carry no emotional signal still appear in the
// result; Emotions is nil when none of them did.
func (e *Expander) LookupExternal(ctx context.Context, word string, lang Language) (*ExternalLookup, error) {
	if strings.TrimSpace(word) == "" {
		return nil, &InvalidInputError{Field: "word", Reason: "empty"}
	}
	if !lang.Supported() {
		return nil, &InvalidInputError{Field: "language", Reason: "unsupported language " + string(lang)}
	}

	defs, err := e.fetchDefinitions(ctx, word, lang, true)
	if len(defs) == 0 && err != nil {
		return nil, err
	}

	out := &ExternalLookup{Word: word, Language: lang, Definitions: defs}
	seen := map[string]bool{}
	for _, def := range defs {
		if !seen[def.Source] {
			seen[def.Source] = true
			out.Sources = append(out.Sources, def.Source)
		}
		weight, ok := extractEmotionWeights(def, e.config.MinConfidence)
		if !ok {
			continue
		}
		if out.Emotions == nil {
			out.Emotions = make(EmotionVector, len(weight.Emotions))
		}
		out.Emotions.MergeMax(weight.Emotions)
		if weight.Confidence > out.Confidence {
			out.Confidence = weight.Confidence
		}
	}
	return out, nil
}

// ExpandWord fetches, analyzes, and merges a single word's weights across
// all of its definitions. It returns ErrNoAssociation when the sources know
// the word but none of its definitions read as emotional.
func (e *Expander) ExpandWord(ctx context.Context, word string, lang Language, includeSlang bool) (EmotionVector, error) {
	if strings.TrimSpace(word) == "" {
		return nil, &InvalidInputError{Field: "word", Reason: "empty"}
	}
	if !lang.Supported() {
		return nil, &InvalidInputError{Field: "language", Reason: "unsupported language " + string(lang)}
	}

	defs, err := e.fetchDefinitions(ctx, word, lang, includeSlang)
	if len(defs) == 0 {
		if err != nil {
			return nil, err
		}
		return nil, ErrNoAssociation
	}

	var merged EmotionVector
	for _, def := range defs {
		weight, ok := extractEmotionWeights(def, e.config.MinConfidence)
		if !ok {
			continue
		}
		if merged == nil {
			merged = make(EmotionVector, len(weight.Emotions))
		}
		merged.MergeMax(weight.Emotions)
	}
	if merged == nil {
		return nil, ErrNoAssociation
	}
	return merged, nil
}

// fetchDefinitions gathers definitions from the configured sources, pacing
// calls through the rate limiter. One source failing does not hide the
// other's results; the error comes back alongside whatever was fetched.
func (e *Expander) fetchDefinitions(ctx context.Context, word string, lang Language, includeSlang bool) ([]WordDefinition, error) {
	var defs []WordDefinition
	var firstErr error

	fetch := func(f DefinitionFetcher) {
		if err := e.limiter.Wait(ctx); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		got, err := f.Fetch(ctx, word, lang)
		if err != nil {
			srcErr := &ExternalSourceError{Source: f.Source(), Word: word, Err: err}
			e.log.Warn("external lookup failed",
				zap.String("source", f.Source()),
				zap.String("word", word),
				zap.Error(err))
			if firstErr == nil {
				firstErr = srcErr
			}
			return
		}
		defs = append(defs, got...)
	}

	fetch(e.dict)
	if includeSlang && lang == English && e.slang != nil {
		fetch(e.slang)
	}
	return defs, firstErr
}

// ExpansionRequest names what a batch expansion run should fetch and whether
// results merge into the lexicon immediately or land in the pending table.
type ExpansionRequest struct {
	Languages         []Language // empty means all supported
	IncludeSlang      bool
	IncludeVocabulary bool
	ApplyImmediately  bool
}

// LanguageExpansionStats counts outcomes for one language of a run.
type LanguageExpansionStats struct {
	Fetched       int `json:"fetched"`
	Added         int `json:"added"`
	NoAssociation int `json:"noAssociation"`
	Failed        int `json:"failed"`
}

// ExpansionReport summarizes a batch expansion run.
type ExpansionReport struct {
	Languages map[Language]LanguageExpansionStats `json:"languages"`
	Fetched   int                                 `json:"fetched"`
	Added     int                                 `json:"added"`
	Failed    int                                 `json:"failed"`
	Applied   bool                                `json:"applied"`
}

// Expand runs a batch expansion over the curated candidate lists, skipping
// words the lexicon already knows. Individual source failures are logged and
// skipped. Cancelling the context stops the run between words; everything
// merged or staged up to that point stays valid, and the partial report
// comes back with the context's error.
func (e *Expander) Expand(ctx context.Context, req ExpansionRequest) (*ExpansionReport, error) {
	langs := req.Languages
	if len(langs) == 0 {
		langs = SupportedLanguages()
	}
	for _, lang := range langs {
		if !lang.Supported() {
			return nil, &InvalidInputError{Field: "languages", Reason: "unsupported language " + string(lang)}
		}
	}

	report := &ExpansionReport{Languages: make(map[Language]LanguageExpansionStats, len(langs))}

	for _, lang := range langs {
		stats := LanguageExpansionStats{}
		for _, word := range e.candidates(lang, req) {
			if err := ctx.Err(); err != nil {
				report.Languages[lang] = stats
				return report, fmt.Errorf("expansion aborted: %w", err)
			}

			stats.Fetched++
			report.Fetched++

			vec, err := e.ExpandWord(ctx, word, lang, req.IncludeSlang)
			switch {
			case errors.Is(err, ErrNoAssociation):
				stats.NoAssociation++
				continue
			case err != nil:
				if ctx.Err() != nil {
					report.Languages[lang] = stats
					return report, fmt.Errorf("expansion aborted: %w", ctx.Err())
				}
				stats.Failed++
				report.Failed++
				continue
			}

			if req.ApplyImmediately {
				if err := e.merge(lang, word, vec); err != nil {
					report.Languages[lang] = stats
					return report, err
				}
			} else {
				e.stage(lang, word, vec)
			}
			stats.Added++
			report.Added++
		}
		report.Languages[lang] = stats

		e.log.Info("expansion pass finished",
			zap.String("language", string(lang)),
			zap.Int("fetched", stats.Fetched),
			zap.Int("added", stats.Added),
			zap.Int("noAssociation", stats.NoAssociation),
			zap.Int("failed", stats.Failed))
	}

	report.Applied = req.ApplyImmediately
	return report, nil
}

// candidates lists the words a run should fetch for lang, in list order,
// minus anything the lexicon already carries.
func (e *Expander) candidates(lang Language, req ExpansionRequest) []string {
	var raw []string
	if lang == English && req.IncludeSlang {
		raw = append(raw, slangCandidates...)
	}
	if req.IncludeVocabulary {
		raw = append(raw, vocabularyCandidates[lang]...)
	}

	out := raw[:0]
	for _, word := range raw {
		if strings.Contains(word, " ") {
			if _, ok := e.lexicon.LookupPhrase(lang, NormalizePhrase(word)); ok {
				continue
			}
		} else if _, ok := e.lexicon.LookupWord(lang, LexiconKey(word)); ok {
			continue
		}
		out = append(out, word)
	}
	return out
}

func (e *Expander) merge(lang Language, word string, vec EmotionVector) error {
	if strings.Contains(word, " ") {
		return e.lexicon.MergePhrases(lang, map[string]EmotionVector{word: vec})
	}
	return e.lexicon.MergeWords(lang, map[string]EmotionVector{word: vec}, true)
}

func (e *Expander) stage(lang Language, word string, vec EmotionVector) {
	e.mu.Lock()
	defer e.mu.Unlock()
	table := e.pending[lang]
	if table == nil {
		table = make(map[string]EmotionVector)
		e.pending[lang] = table
	}
	if existing, ok := table[word]; ok {
		existing.MergeMax(vec)
	} else {
		table[word] = vec.Clone()
	}
}

// Pending returns a copy of the staged entries awaiting Apply.
func (e *Expander) Pending() map[Language]map[string]EmotionVector {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[Language]map[string]EmotionVector, len(e.pending))
	for lang, table := range e.pending {
		clone := make(map[string]EmotionVector, len(table))
		for word, vec := range table {
			clone[word] = vec.Clone()
		}
		out[lang] = clone
	}
	return out
}

// Apply merges every staged entry into the lexicon and clears the pending
// table. It returns how many entries were merged.
func (e *Expander) Apply() (int, error) {
	e.mu.Lock()
	staged := e.pending
	e.pending = make(map[Language]map[string]EmotionVector)
	e.mu.Unlock()

	applied := 0
	for lang, table := range staged {
		words := make(map[string]EmotionVector)
		phrases := make(map[string]EmotionVector)
		for word, vec := range table {
			if strings.Contains(word, " ") {
				phrases[word] = vec
			} else {
				words[word] = vec
			}
		}
		if len(words) > 0 {
			if err := e.lexicon.MergeWords(lang, words, true); err != nil {
				return applied, err
			}
			applied += len(words)
		}
		if len(phrases) > 0 {
			if err := e.lexicon.MergePhrases(lang, phrases); err != nil {
				return applied, err
			}
			applied += len(phrases)
		}
	}
	return applied, nil
}

// Discard drops every staged entry without touching the lexicon, returning
// how many were dropped.
func (e *Expander) Discard() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, table := range e.pending {
		n += len(table)
	}
	e.pending = make(map[Language]map[string]EmotionVector)
	return n
}
