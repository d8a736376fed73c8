package affect

import "strings"

// Function words and orthography hints for the language-proportion guess.
// The guess is advisory metadata: the caller still names the language that
// scoring runs in.

var langFunctionWords = map[Language]map[string]struct{}{
	English:    setOf("the", "and", "is", "am", "are", "you", "i", "my", "me", "it", "of", "to", "in"),
	Spanish:    setOf("el", "la", "los", "las", "y", "es", "soy", "eres", "estoy", "yo", "tu", "mi", "me"),
	Portuguese: setOf("o", "a", "os", "as", "e", "sou", "estou", "voce", "eu", "meu", "minha"),
}

var spanishMarks = []string{"ñ", "¿", "¡"}
var portugueseMarks = []string{"ã", "õ", "ç", "ê", "ô"}
var englishShapes = []string{"th", "ing"}

// GuessLanguageProportions estimates how much of text reads as each
// supported language, normalized to sum to 1. Empty input splits evenly.
func GuessLanguageProportions(text string) map[Language]float64 {
	tokens := Tokenize(text)
	scores := map[Language]float64{English: 0, Spanish: 0, Portuguese: 0}

	for _, tok := range tokens {
		lower := strings.ToLower(tok.Text)
		key := LexiconKey(lower)
		for lang, words := range langFunctionWords {
			if _, ok := words[key]; ok {
				scores[lang] += 1.5
			}
		}
		for _, m := range spanishMarks {
			if strings.Contains(lower, m) {
				scores[Spanish] += 1.2
				break
			}
		}
		for _, m := range portugueseMarks {
			if strings.Contains(lower, m) {
				scores[Portuguese] += 1.0
				break
			}
		}
		for _, m := range englishShapes {
			if strings.Contains(lower, m) {
				scores[English] += 0.4
				break
			}
		}
	}

	total := scores[English] + scores[Spanish] + scores[Portuguese]
	if total <= 0 {
		third := 1.0 / 3
		return map[Language]float64{English: third, Spanish: third, Portuguese: third}
	}
	for lang := range scores {
		scores[lang] = round3(scores[lang] / total)
	}
	return scores
}
