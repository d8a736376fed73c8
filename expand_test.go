package affect

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeFetcher serves canned definitions per word. It can inject per-word
// errors and cancel a context after a set number of calls.
type fakeFetcher struct {
	source      string
	defs        map[string][]WordDefinition
	errs        map[string]error
	calls       int
	cancelAfter int
	cancel      context.CancelFunc
}

func (f *fakeFetcher) Fetch(_ context.Context, word string, _ Language) ([]WordDefinition, error) {
	f.calls++
	if f.cancelAfter > 0 && f.calls >= f.cancelAfter && f.cancel != nil {
		f.cancel()
	}
	if err := f.errs[word]; err != nil {
		return nil, err
	}
	return f.defs[word], nil
}

func (f *fakeFetcher) Source() string { return f.source }

func dictDef(word string, lang Language, text string) WordDefinition {
	return WordDefinition{
		Word: word, Language: lang, Source: dictionarySourceName,
		Definitions: []string{text},
	}
}

func slangDef(word, text string, thumbsUp int) WordDefinition {
	return WordDefinition{
		Word: word, Language: English, Source: slangSourceName,
		Definitions: []string{text},
		ThumbsUp:    thumbsUp,
	}
}

func fastExpansionConfig() ExpansionConfig {
	return ExpansionConfig{
		RateDelay:      time.Millisecond,
		RequestTimeout: time.Second,
		MinConfidence:  0.3,
	}
}

const (
	joyDefText   = "full of happiness and joy; delighted and cheerful merry jubilant"
	angerDefText = "angry furious rage mad hostile"
	slangJoyText = "when something is fire and lit, totally bussin"
)

func TestExpandWordMergesAcrossDefinitions(t *testing.T) {
	dict := &fakeFetcher{
		source: dictionarySourceName,
		defs: map[string][]WordDefinition{
			"radiant": {
				dictDef("radiant", English, joyDefText),
				dictDef("radiant", English, "shocked and amazed, astonished"),
			},
		},
	}
	lex := NewEmptyLexicon()
	e := NewExpander(lex,
		WithDictionaryFetcher(dict),
		WithSlangFetcher(nil),
		WithExpansionConfig(fastExpansionConfig()))

	before := lex.Version()
	vec, err := e.ExpandWord(context.Background(), "radiant", English, false)
	if err != nil {
		t.Fatalf("ExpandWord: %v", err)
	}
	if vec[Joy] != extractTopWeight {
		t.Errorf("Joy = %.2f, want %.1f from the first definition", vec[Joy], extractTopWeight)
	}
	if vec[Surprise] != extractTopWeight {
		t.Errorf("Surprise = %.2f, want %.1f from the second definition", vec[Surprise], extractTopWeight)
	}
	if lex.Version() != before {
		t.Error("ExpandWord mutated the lexicon")
	}
}

func TestExpandWordNoAssociation(t *testing.T) {
	dict := &fakeFetcher{
		source: dictionarySourceName,
		defs: map[string][]WordDefinition{
			"table": {dictDef("table", English, "a piece of furniture with a flat top and legs")},
		},
	}
	lex := NewEmptyLexicon()
	e := NewExpander(lex,
		WithDictionaryFetcher(dict),
		WithSlangFetcher(nil),
		WithExpansionConfig(fastExpansionConfig()))

	tests := []struct {
		word string
		desc string
	}{
		{"table", "Known word with a neutral definition"},
		{"qwxz", "Word no source knows"},
	}
	before := lex.Version()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := e.ExpandWord(context.Background(), tt.word, English, false)
			if !errors.Is(err, ErrNoAssociation) {
				t.Errorf("ExpandWord(%q) error = %v, want ErrNoAssociation", tt.word, err)
			}
		})
	}
	if lex.Version() != before {
		t.Error("failed lookups mutated the lexicon")
	}
}

func TestExpandWordSourceFailure(t *testing.T) {
	dict := &fakeFetcher{
		source: dictionarySourceName,
		errs:   map[string]error{"lagged": errors.New("connection reset")},
	}
	e := NewExpander(NewEmptyLexicon(),
		WithDictionaryFetcher(dict),
		WithSlangFetcher(nil),
		WithExpansionConfig(fastExpansionConfig()))

	_, err := e.ExpandWord(context.Background(), "lagged", English, false)
	var srcErr *ExternalSourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("error = %v, want ExternalSourceError", err)
	}
	if srcErr.Source != dictionarySourceName || srcErr.Word != "lagged" {
		t.Errorf("error carries source %q word %q", srcErr.Source, srcErr.Word)
	}
}

func TestExpandWordSurvivesOneFailedSource(t *testing.T) {
	dict := &fakeFetcher{
		source: dictionarySourceName,
		errs:   map[string]error{"lagged": errors.New("connection reset")},
	}
	slang := &fakeFetcher{
		source: slangSourceName,
		defs: map[string][]WordDefinition{
			"lagged": {slangDef("lagged", slangJoyText, 10)},
		},
	}
	e := NewExpander(NewEmptyLexicon(),
		WithDictionaryFetcher(dict),
		WithSlangFetcher(slang),
		WithExpansionConfig(fastExpansionConfig()))

	vec, err := e.ExpandWord(context.Background(), "lagged", English, true)
	if err != nil {
		t.Fatalf("ExpandWord with one healthy source: %v", err)
	}
	if vec[Joy] != extractTopWeight {
		t.Errorf("Joy = %.2f, want %.1f from the surviving source", vec[Joy], extractTopWeight)
	}
}

func TestExpandBatchApplyImmediately(t *testing.T) {
	dict := &fakeFetcher{
		source: dictionarySourceName,
		defs: map[string][]WordDefinition{
			"blissful": {dictDef("blissful", English, joyDefText)},
		},
	}
	lex := NewEmptyLexicon()
	e := NewExpander(lex,
		WithDictionaryFetcher(dict),
		WithSlangFetcher(nil),
		WithExpansionConfig(fastExpansionConfig()))

	req := ExpansionRequest{
		Languages:         []Language{English},
		IncludeVocabulary: true,
		ApplyImmediately:  true,
	}
	report, err := e.Expand(context.Background(), req)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	wantFetched := len(vocabularyCandidates[English])
	if report.Fetched != wantFetched {
		t.Errorf("fetched = %d, want %d", report.Fetched, wantFetched)
	}
	if report.Added != 1 {
		t.Errorf("added = %d, want 1", report.Added)
	}
	if !report.Applied {
		t.Error("report not marked applied")
	}
	if stats := report.Languages[English]; stats.NoAssociation != wantFetched-1 {
		t.Errorf("noAssociation = %d, want %d", stats.NoAssociation, wantFetched-1)
	}

	vec, ok := lex.LookupWord(English, LexiconKey("blissful"))
	if !ok {
		t.Fatal("expanded word missing from the lexicon")
	}
	if vec[Joy] != extractTopWeight {
		t.Errorf("merged Joy = %.2f, want %.1f", vec[Joy], extractTopWeight)
	}

	// A second run must skip everything already merged and change nothing.
	version := lex.Version()
	again, err := e.Expand(context.Background(), req)
	if err != nil {
		t.Fatalf("second Expand: %v", err)
	}
	if again.Fetched != wantFetched-1 {
		t.Errorf("second run fetched = %d, want %d", again.Fetched, wantFetched-1)
	}
	if again.Added != 0 {
		t.Errorf("second run added = %d, want 0", again.Added)
	}
	if lex.Version() != version {
		t.Error("idempotent re-run bumped the lexicon version")
	}
}

func TestExpandStagesPending(t *testing.T) {
	dict := &fakeFetcher{
		source: dictionarySourceName,
		defs: map[string][]WordDefinition{
			"blissful": {dictDef("blissful", English, joyDefText)},
		},
	}
	lex := NewEmptyLexicon()
	e := NewExpander(lex,
		WithDictionaryFetcher(dict),
		WithSlangFetcher(nil),
		WithExpansionConfig(fastExpansionConfig()))

	before := lex.Version()
	report, err := e.Expand(context.Background(), ExpansionRequest{
		Languages:         []Language{English},
		IncludeVocabulary: true,
	})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if report.Applied {
		t.Error("staged run marked applied")
	}
	if lex.Version() != before {
		t.Error("staged run mutated the lexicon")
	}

	pending := e.Pending()
	vec, ok := pending[English]["blissful"]
	if !ok {
		t.Fatal("staged entry missing from Pending")
	}
	if vec[Joy] != extractTopWeight {
		t.Errorf("pending Joy = %.2f, want %.1f", vec[Joy], extractTopWeight)
	}

	// Pending hands out copies; writing through one must not reach the table.
	vec[Joy] = 0
	if got := e.Pending()[English]["blissful"][Joy]; got != extractTopWeight {
		t.Errorf("pending Joy after caller mutation = %.2f, want %.1f", got, extractTopWeight)
	}

	applied, err := e.Apply()
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	if _, ok := lex.LookupWord(English, LexiconKey("blissful")); !ok {
		t.Error("applied word missing from the lexicon")
	}
	if len(e.Pending()) != 0 {
		t.Error("pending table not cleared by Apply")
	}
}

func TestExpandDiscard(t *testing.T) {
	dict := &fakeFetcher{
		source: dictionarySourceName,
		defs: map[string][]WordDefinition{
			"blissful": {dictDef("blissful", English, joyDefText)},
		},
	}
	lex := NewEmptyLexicon()
	e := NewExpander(lex,
		WithDictionaryFetcher(dict),
		WithSlangFetcher(nil),
		WithExpansionConfig(fastExpansionConfig()))

	if _, err := e.Expand(context.Background(), ExpansionRequest{
		Languages:         []Language{English},
		IncludeVocabulary: true,
	}); err != nil {
		t.Fatalf("Expand: %v", err)
	}

	if n := e.Discard(); n != 1 {
		t.Errorf("Discard = %d, want 1", n)
	}
	if len(e.Pending()) != 0 {
		t.Error("pending table not cleared by Discard")
	}
	if _, ok := lex.LookupWord(English, LexiconKey("blissful")); ok {
		t.Error("discarded entry reached the lexicon")
	}
}

func TestExpandCancellationKeepsPartialState(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dict := &fakeFetcher{
		source: dictionarySourceName,
		defs: map[string][]WordDefinition{
			"aggravated": {dictDef("aggravated", English, angerDefText)},
			"bitter":     {dictDef("bitter", English, angerDefText)},
		},
		cancelAfter: 3,
		cancel:      cancel,
	}
	lex := NewEmptyLexicon()
	e := NewExpander(lex,
		WithDictionaryFetcher(dict),
		WithSlangFetcher(nil),
		WithExpansionConfig(fastExpansionConfig()))

	report, err := e.Expand(ctx, ExpansionRequest{
		Languages:         []Language{English},
		IncludeVocabulary: true,
		ApplyImmediately:  true,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if report == nil {
		t.Fatal("no partial report on cancellation")
	}
	if report.Fetched != 3 {
		t.Errorf("fetched = %d, want 3 before the cancel took effect", report.Fetched)
	}
	if report.Added != 2 {
		t.Errorf("added = %d, want 2", report.Added)
	}

	// Words merged before the cancel stay merged.
	for _, word := range []string{"aggravated", "bitter"} {
		vec, ok := lex.LookupWord(English, LexiconKey(word))
		if !ok {
			t.Errorf("%q missing after partial run", word)
			continue
		}
		if vec[Anger] != extractTopWeight {
			t.Errorf("%q Anger = %.2f, want %.1f", word, vec[Anger], extractTopWeight)
		}
	}
}

func TestExpandUnsupportedLanguage(t *testing.T) {
	e := NewExpander(NewEmptyLexicon(),
		WithDictionaryFetcher(&fakeFetcher{source: dictionarySourceName}),
		WithSlangFetcher(nil),
		WithExpansionConfig(fastExpansionConfig()))

	_, err := e.Expand(context.Background(), ExpansionRequest{Languages: []Language{"fr"}})
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want InvalidInputError", err)
	}
}

func TestLookupExternal(t *testing.T) {
	dict := &fakeFetcher{
		source: dictionarySourceName,
		defs: map[string][]WordDefinition{
			"radiant": {dictDef("radiant", English, joyDefText)},
		},
	}
	slang := &fakeFetcher{
		source: slangSourceName,
		defs: map[string][]WordDefinition{
			"radiant": {slangDef("radiant", slangJoyText, 2000)},
		},
	}
	lex := NewEmptyLexicon()
	e := NewExpander(lex,
		WithDictionaryFetcher(dict),
		WithSlangFetcher(slang),
		WithExpansionConfig(fastExpansionConfig()))

	before := lex.Version()
	got, err := e.LookupExternal(context.Background(), "radiant", English)
	if err != nil {
		t.Fatalf("LookupExternal: %v", err)
	}

	if len(got.Definitions) != 2 {
		t.Errorf("definitions = %d, want one per source", len(got.Definitions))
	}
	if len(got.Sources) != 2 {
		t.Errorf("sources = %v, want both", got.Sources)
	}
	if got.Emotions[Joy] != extractTopWeight {
		t.Errorf("Joy = %.2f, want %.1f", got.Emotions[Joy], extractTopWeight)
	}
	if got.Confidence <= 0 {
		t.Errorf("confidence = %.2f, want positive", got.Confidence)
	}
	if lex.Version() != before {
		t.Error("preview lookup mutated the lexicon")
	}

	if _, err := e.LookupExternal(context.Background(), "   ", English); err == nil {
		t.Error("blank word accepted")
	}
}
