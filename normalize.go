package affect

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// sanitizer unifies typographic quotes before tokenization.
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

// tokenRE captures words (including accented Latin letters, digits,
// apostrophes and underscores) or any single non-space, non-word rune.
var tokenRE = regexp.MustCompile(`[0-9A-Za-zÀ-ÖØ-öø-ÿ_']+|[^\w\s]`)

// diacriticStripper removes combining marks after NFD decomposition, so
// "coração" and "coracao" share a lexicon key.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Tokenize splits text into surface tokens with byte offsets. Whitespace-only
// input yields an empty stream.
func Tokenize(text string) []Token {
	clean := sanitizer.Replace(text)
	matches := tokenRE.FindAllStringIndex(clean, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{Text: clean[m[0]:m[1]], Start: m[0]})
	}
	return tokens
}

// LexiconKey canonicalizes a single token for word-table lookup: leading
// hashtag and mention sigils dropped, lowercased, diacritics stripped, inner
// whitespace collapsed to underscores.
func LexiconKey(token string) string {
	t := strings.TrimSpace(token)
	t = strings.TrimLeft(t, "#@")
	t = strings.ToLower(t)
	t = stripDiacritics(t)
	return strings.Join(strings.Fields(t), "_")
}

// NormalizePhrase canonicalizes multi-word text for phrase-table lookup:
// lowercased, diacritics stripped, whitespace collapsed to single spaces.
func NormalizePhrase(phrase string) string {
	p := strings.ToLower(strings.TrimSpace(phrase))
	p = stripDiacritics(p)
	return strings.Join(strings.Fields(p), " ")
}

// isWordToken reports whether the token carries at least one letter.
func isWordToken(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// countWords counts word tokens, the unit the input limit is expressed in.
func countWords(tokens []Token) int {
	n := 0
	for _, tok := range tokens {
		if isWordToken(tok.Text) {
			n++
		}
	}
	return n
}

// collapseElongation caps runs of the same letter at two ("soooo" -> "soo")
// so elongated forms still hit the lexicon. The elongation itself is kept as
// an arousal signal elsewhere. Non-letter runs ("!!!", "...") pass through.
func collapseElongation(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	var prev rune
	run := 0
	for _, r := range word {
		if r == prev && unicode.IsLetter(r) {
			run++
			if run > 2 {
				continue
			}
		} else {
			prev = r
			run = 1
		}
		b.WriteRune(r)
	}
	return b.String()
}

var sentenceSegmenter = func() *sentences.DefaultSentenceTokenizer {
	t, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil
	}
	return t
}()

// lastSentenceOffset returns the byte offset where the final sentence of
// text begins, or 0 when segmentation finds a single sentence. The trained
// segmenter is English; for Spanish and Portuguese its punctuation-driven
// boundaries are still close enough for a recency window.
func lastSentenceOffset(text string) int {
	if sentenceSegmenter == nil {
		return 0
	}
	sents := sentenceSegmenter.Tokenize(text)
	if len(sents) < 2 {
		return 0
	}
	last := strings.TrimSpace(sents[len(sents)-1].Text)
	if last == "" {
		return 0
	}
	if idx := strings.LastIndex(text, last); idx >= 0 {
		return idx
	}
	return 0
}
