package affect

import "strings"

// scoreResult is the raw outcome of a scoring walk: two accumulators (whole
// text and recent window) plus match bookkeeping for confidence.
type scoreResult struct {
	whole        EmotionVector
	recent       EmotionVector
	matches      int
	matchedWords int
	recentStart  int // token index where the recent window begins
	recentByte   int // byte offset of that token
}

// scorer runs the lexicon walk. Phrases win over words, and among phrases
// the longest match at a position wins.
type scorer struct {
	lexicon *Lexicon
	config  AnalyzerConfig
}

func (s *scorer) score(text string, tokens []Token, lang Language) scoreResult {
	res := scoreResult{
		whole:  NewEmotionVector(),
		recent: NewEmotionVector(),
	}
	if len(tokens) == 0 {
		return res
	}

	res.recentStart = s.recentWindowStart(text, tokens)
	res.recentByte = tokens[res.recentStart].Start

	// Lexicon keys per token, empty for punctuation.
	keys := make([]string, len(tokens))
	for i, tok := range tokens {
		if isWordToken(tok.Text) {
			keys[i] = LexiconKey(collapseElongation(tok.Text))
		}
	}

	maxPhrase := s.lexicon.MaxPhraseTokens(lang)
	i := 0
	for i < len(tokens) {
		if keys[i] == "" {
			i++
			continue
		}

		// Longest phrase first.
		if n, vec := s.matchPhrase(keys, i, maxPhrase, lang); n > 0 {
			factor := s.contextFactor(keys, i, lang)
			res.whole.Add(vec, factor)
			if i+n-1 >= res.recentStart {
				res.recent.Add(vec, factor)
			}
			res.matches++
			res.matchedWords += n
			i += n
			continue
		}

		if vec, ok := s.lexicon.LookupWord(lang, keys[i]); ok {
			factor := s.contextFactor(keys, i, lang)
			res.whole.Add(vec, factor)
			if i >= res.recentStart {
				res.recent.Add(vec, factor)
			}
			res.matches++
			res.matchedWords++
		}
		i++
	}

	// Emoticons contribute independently of the token walk.
	for _, em := range emoticonVectors {
		for _, loc := range em.re.FindAllStringIndex(text, -1) {
			res.whole.Add(em.vec, 1)
			if loc[0] >= res.recentByte {
				res.recent.Add(em.vec, 1)
			}
			res.matches++
		}
	}

	return res
}

// matchPhrase tries windows of decreasing length starting at i and returns
// the token count and vector of the longest phrase hit, or 0.
func (s *scorer) matchPhrase(keys []string, i, maxPhrase int, lang Language) (int, EmotionVector) {
	limit := maxPhrase
	if rest := len(keys) - i; rest < limit {
		limit = rest
	}
	for n := limit; n >= 2; n-- {
		window := keys[i : i+n]
		ok := true
		for _, k := range window {
			if k == "" {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if vec, found := s.lexicon.LookupPhrase(lang, strings.Join(window, " ")); found {
			return n, vec
		}
	}
	return 0, nil
}

// contextFactor inspects the tokens before position i for negation,
// intensity and certainty markers. The scan stops at a clause boundary.
// A negated match flips to a damped subtraction.
func (s *scorer) contextFactor(keys []string, i int, lang Language) float64 {
	alpha := 1.0
	negated := false

	seen := 0
	for j := i - 1; j >= 0 && seen < s.config.NegationWindow; j-- {
		key := keys[j]
		if key == "" {
			// Punctuation token; raw boundaries all normalize to "".
			break
		}
		if _, boundary := clauseBoundaries[key]; boundary {
			break
		}
		seen++

		switch {
		case inSet(negations, lang, key):
			negated = true
		case inSet(intensifiers, lang, key):
			alpha += intensifierBoost
		case inSet(diminishers, lang, key):
			alpha -= diminisherCut
		case inSet(uncertaintyMarkers, lang, key):
			alpha -= uncertaintyCut
		case inSet(certaintyMarkers, lang, key):
			alpha += certaintyBoost
		case inSet(profanity, lang, key):
			alpha += profanityBoost
		}
	}

	if alpha < modifierFloor {
		alpha = modifierFloor
	}
	if negated {
		return alpha * negationFlip
	}
	return alpha
}

// recentWindowStart picks the earlier of the last-sentence boundary and the
// trailing token fraction, so the recent window is the larger of the two.
// Short texts use the whole text.
func (s *scorer) recentWindowStart(text string, tokens []Token) int {
	if len(tokens) <= s.config.MinRecentTokens {
		return 0
	}

	fracStart := int(float64(len(tokens)) * (1 - s.config.RecentFraction))
	if fracStart >= len(tokens) {
		fracStart = len(tokens) - 1
	}

	sentStart := 0
	if off := lastSentenceOffset(text); off > 0 {
		for idx, tok := range tokens {
			if tok.Start >= off {
				sentStart = idx
				break
			}
		}
	}

	if sentStart > 0 && sentStart < fracStart {
		return sentStart
	}
	return fracStart
}
