package affect

import "regexp"

// Contextual marker sets, keyed by lexicon-normalized token. These modulate
// a matched word's contribution during the scoring walk.

var intensifiers = map[Language]map[string]struct{}{
	English: setOf(
		"very", "so", "really", "extremely", "totally", "absolutely",
		"completely", "super", "incredibly", "deeply", "utterly", "insanely",
		"hella", "mad", "deadass", "fr", "literally",
	),
	Spanish: setOf(
		"muy", "tan", "demasiado", "super", "bien", "completamente",
		"totalmente", "absolutamente", "extremadamente", "re", "recontra",
		"bastante",
	),
	Portuguese: setOf(
		"muito", "tao", "demais", "super", "bem", "completamente",
		"totalmente", "absolutamente", "extremamente", "mega", "pra_caramba",
	),
}

var diminishers = map[Language]map[string]struct{}{
	English: setOf(
		"slightly", "somewhat", "a_bit", "kinda", "kind", "sorta", "barely",
		"little", "bit", "mildly", "hardly",
	),
	Spanish: setOf(
		"poco", "algo", "apenas", "ligeramente", "medio", "casi",
	),
	Portuguese: setOf(
		"pouco", "meio", "apenas", "ligeiramente", "quase", "um_pouco",
	),
}

var negations = map[Language]map[string]struct{}{
	English: setOf(
		"not", "no", "never", "n't", "dont", "don't", "cant", "can't",
		"won't", "wont", "isn't", "isnt", "aint", "ain't", "didnt", "didn't",
		"doesnt", "doesn't", "wasnt", "wasn't", "without",
	),
	Spanish: setOf(
		"no", "nunca", "jamas", "ni", "tampoco", "sin", "nada",
	),
	Portuguese: setOf(
		"nao", "nunca", "jamais", "nem", "tampouco", "sem", "nada",
	),
}

var uncertaintyMarkers = map[Language]map[string]struct{}{
	English: setOf(
		"maybe", "perhaps", "might", "possibly", "guess", "suppose",
		"probably", "idk", "dunno", "unsure",
	),
	Spanish: setOf(
		"quizas", "quiza", "talvez", "tal_vez", "posiblemente",
		"probablemente", "capaz", "supongo",
	),
	Portuguese: setOf(
		"talvez", "possivelmente", "provavelmente", "acho", "sera", "vai_ver",
	),
}

var certaintyMarkers = map[Language]map[string]struct{}{
	English: setOf(
		"definitely", "certainly", "surely", "clearly", "obviously",
		"honestly", "truly", "always", "know",
	),
	Spanish: setOf(
		"definitivamente", "seguramente", "claramente", "obviamente",
		"sinceramente", "siempre", "seguro",
	),
	Portuguese: setOf(
		"definitivamente", "certamente", "claramente", "obviamente",
		"sinceramente", "sempre", "com_certeza",
	),
}

// profanity boosts arousal and amplifies a nearby match. The lists are
// deliberately short: common high-arousal terms only.
var profanity = map[Language]map[string]struct{}{
	English: setOf(
		"fuck", "fucking", "shit", "damn", "hell", "ass", "bitch", "wtf",
		"af", "asf",
	),
	Spanish: setOf(
		"mierda", "joder", "carajo", "puta", "pinche", "cabron", "chingada",
		"cono", "verga",
	),
	Portuguese: setOf(
		"merda", "caralho", "porra", "puta", "foda", "foda-se", "bosta",
		"cacete",
	),
}

// laughTokens mark humor; together with negative words they raise the
// sarcasm estimate, which in turn discounts safety matches.
var laughTokens = map[string]struct{}{
	"lol": {}, "lmao": {}, "lmfao": {}, "rofl": {}, "haha": {}, "hahaha": {},
	"jaja": {}, "jajaja": {}, "jajajaja": {}, "jeje": {},
	"kkk": {}, "kkkk": {}, "kkkkk": {}, "rsrs": {}, "rsrsrs": {}, "hehe": {},
}

// sarcasmMarkers are phrases that flag an ironic register when they appear
// in otherwise negative text. Matched against the normalized phrase form.
var sarcasmMarkers = map[Language][]string{
	English: {
		"yeah right", "oh great", "oh wonderful", "just great", "just perfect",
		"as if", "sure jan", "thanks a lot", "love that for me", "cant wait",
		"what a surprise", "how original",
	},
	Spanish: {
		"si claro", "que sorpresa", "genial lo que me faltaba", "no me digas",
		"que bien", "lo que me faltaba", "que maravilla",
	},
	Portuguese: {
		"sei", "ta bom", "que otimo", "que maravilha", "so que nao",
		"era so o que faltava", "nossa que surpresa", "ah claro",
	},
}

// clauseBoundaries stop a backward modifier scan.
var clauseBoundaries = map[string]struct{}{
	".": {}, "!": {}, "?": {}, ",": {}, ";": {}, ":": {},
	"but": {}, "however": {}, "although": {},
	"pero": {}, "aunque": {}, "mas": {}, "porem": {}, "embora": {},
}

// emoticonVectors contribute fixed weights wherever the pattern appears in
// the raw text, independent of the token walk.
var emoticonVectors = []struct {
	re  *regexp.Regexp
	vec EmotionVector
}{
	{regexp.MustCompile(`(?::-?\)+|:-?D|=\)+|=D|\^_+\^)`), EmotionVector{Joy: 1.2}},
	{regexp.MustCompile(`(?::'-?\(|:-?\(+|=\(+)`), EmotionVector{Sadness: 1.2}},
	{regexp.MustCompile(`(?:>:-?\(|>:-?O)`), EmotionVector{Anger: 1.2}},
	{regexp.MustCompile(`(?::-?O|:-?o|O_O|o_O|O\.o)`), EmotionVector{Surprise: 1.0}},
	{regexp.MustCompile(`(?:D-?:|D=)`), EmotionVector{Fear: 1.0}},
	{regexp.MustCompile(`(?:<3)+`), EmotionVector{Passion: 1.2, Joy: 0.4}},
	{regexp.MustCompile(`(?i:xd+)`), EmotionVector{Joy: 1.0, Surprise: 0.3}},
}

// Modifier magnitudes applied during the scoring walk. The floor keeps a
// heavily diminished match from vanishing entirely.
const (
	intensifierBoost = 0.5
	diminisherCut    = 0.3
	uncertaintyCut   = 0.2
	certaintyBoost   = 0.15
	profanityBoost   = 0.4
	negationFlip     = -0.8
	modifierFloor    = 0.2
)

func setOf(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func inSet(set map[Language]map[string]struct{}, lang Language, key string) bool {
	m, ok := set[lang]
	if !ok {
		return false
	}
	_, ok = m[key]
	return ok
}
