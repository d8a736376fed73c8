package affect

// Keyword sets used to read emotional signal out of dictionary definition
// text. Matching is done over folded text (lowercased, diacritics stripped),
// so the accented forms below land on the same keys as plain ASCII input.

var emotionKeywords = map[Language]map[Emotion][]string{
	English: {
		Anger: {
			"angry", "mad", "furious", "rage", "hostile", "irritated", "annoyed",
			"resentful", "bitter", "hatred", "hate", "frustrated", "infuriated",
			"outraged", "enraged", "irate", "wrathful", "provoked", "aggravated",
			"indignant", "livid", "fuming", "seething", "antagonistic", "violent",
		},
		Disgust: {
			"disgusting", "gross", "nasty", "revolting", "repulsive", "sickening",
			"vile", "foul", "loathsome", "offensive", "repugnant", "abhorrent",
			"distasteful", "nauseating", "unpleasant", "horrible", "awful",
			"repellent", "objectionable", "obnoxious", "detestable", "yucky",
		},
		Fear: {
			"afraid", "scared", "terrified", "frightened", "anxious", "worried",
			"nervous", "panic", "dread", "horror", "alarmed", "apprehensive",
			"uneasy", "fearful", "trembling", "petrified", "spooked", "timid",
			"cowardly", "paranoid", "phobic", "terrifying", "scary", "creepy",
		},
		Joy: {
			"happy", "joyful", "glad", "pleased", "delighted", "cheerful",
			"content", "satisfied", "blissful", "elated", "ecstatic", "jubilant",
			"merry", "overjoyed", "thrilled", "euphoric", "positive", "good",
			"wonderful", "excellent", "great", "amazing", "fantastic", "awesome",
			"fun", "funny", "hilarious", "amusing", "entertaining", "laugh",
			"celebrate", "enjoyable", "pleasant", "nice", "lovely", "beautiful",
		},
		Sadness: {
			"sad", "unhappy", "depressed", "miserable", "sorrowful", "melancholy",
			"gloomy", "mournful", "grief", "heartbroken", "dejected", "despondent",
			"hopeless", "dismal", "tragic", "painful", "suffering", "anguish",
			"despair", "lonely", "forlorn", "blue", "down", "upset", "crying",
			"tears", "weeping", "loss", "death", "dying", "mourn", "bereaved",
		},
		Passion: {
			"love", "loving", "passionate", "desire", "romantic", "intimate",
			"affection", "attraction", "devoted", "adore", "cherish", "longing",
			"yearning", "infatuation", "obsession", "lust", "sensual", "erotic",
			"sexual", "hot", "sexy", "attractive", "beautiful", "gorgeous",
			"crush", "sweetheart", "beloved", "darling", "dear", "caring",
		},
		Surprise: {
			"surprised", "shocked", "amazed", "astonished", "astounded",
			"unexpected", "sudden", "startled", "stunned", "bewildered",
			"dumbfounded", "flabbergasted", "speechless", "incredible",
			"unbelievable", "remarkable", "extraordinary", "unusual", "strange",
			"weird", "odd", "peculiar", "wonder", "awe", "marvel",
		},
	},
	Spanish: {
		Anger: {
			"enojado", "enfadado", "furioso", "rabia", "ira", "hostil", "irritado",
			"resentido", "amargado", "odio", "frustrado", "indignado", "molesto",
			"agresivo", "violento", "colérico", "airado", "encolerizado", "rabioso",
		},
		Disgust: {
			"asqueroso", "repugnante", "desagradable", "repulsivo", "nauseabundo",
			"horrible", "asqueado", "ofensivo", "detestable", "odioso", "vil",
			"inmundo", "sucio", "feo", "grotesco", "abominable", "asco",
		},
		Fear: {
			"miedo", "asustado", "aterrorizado", "temeroso", "ansioso", "preocupado",
			"nervioso", "pánico", "horror", "alarmado", "aprensivo", "aterrado",
			"espantado", "cobarde", "paranoico", "fóbico", "terrorífico", "escalofriante",
		},
		Joy: {
			"feliz", "alegre", "contento", "satisfecho", "encantado", "dichoso",
			"gozoso", "jubiloso", "eufórico", "positivo", "bueno", "maravilloso",
			"excelente", "genial", "increíble", "fantástico", "divertido", "gracioso",
			"chistoso", "entretenido", "agradable", "bonito", "hermoso", "lindo",
		},
		Sadness: {
			"triste", "infeliz", "deprimido", "miserable", "melancólico", "afligido",
			"luto", "desolado", "desesperado", "doloroso", "sufrimiento", "angustia",
			"pena", "solitario", "llorando", "lágrimas", "pérdida", "muerte", "morir",
		},
		Passion: {
			"amor", "amoroso", "apasionado", "deseo", "romántico", "íntimo",
			"afecto", "atracción", "devoto", "adorar", "anhelo", "enamorado",
			"obsesión", "sensual", "erótico", "sexual", "atractivo", "hermoso",
			"querido", "cariño", "cariñoso", "amado", "amante",
		},
		Surprise: {
			"sorprendido", "impactado", "asombrado", "inesperado", "repentino",
			"atónito", "estupefacto", "boquiabierto", "increíble", "extraordinario",
			"raro", "extraño", "peculiar", "maravilla", "asombroso",
		},
	},
	Portuguese: {
		Anger: {
			"raiva", "zangado", "furioso", "irritado", "bravo", "enfurecido",
			"hostil", "resentido", "amargurado", "ódio", "frustrado", "indignado",
			"chateado", "agressivo", "violento", "colérico", "irado", "nervoso",
		},
		Disgust: {
			"nojento", "repugnante", "desagradável", "repulsivo", "nauseante",
			"horrível", "ofensivo", "detestável", "odioso", "vil", "imundo",
			"sujo", "feio", "grotesco", "abominável", "nojo", "asco",
		},
		Fear: {
			"medo", "assustado", "aterrorizado", "temeroso", "ansioso", "preocupado",
			"nervoso", "pânico", "horror", "alarmado", "apreensivo", "apavorado",
			"medroso", "covarde", "paranoico", "fóbico", "aterrorizante", "arrepiante",
		},
		Joy: {
			"feliz", "alegre", "contente", "satisfeito", "encantado", "ditoso",
			"jubiloso", "eufórico", "positivo", "bom", "maravilhoso", "excelente",
			"genial", "incrível", "fantástico", "divertido", "engraçado", "hilário",
			"agradável", "bonito", "lindo", "belo", "legal", "maneiro",
		},
		Sadness: {
			"triste", "infeliz", "deprimido", "miserável", "melancólico", "aflito",
			"luto", "desolado", "desesperado", "doloroso", "sofrimento", "angústia",
			"pena", "solitário", "chorando", "lágrimas", "perda", "morte", "morrer",
		},
		Passion: {
			"amor", "amoroso", "apaixonado", "desejo", "romântico", "íntimo",
			"afeto", "atração", "devoto", "adorar", "anseio", "gamado",
			"obsessão", "sensual", "erótico", "sexual", "atraente", "lindo",
			"querido", "carinho", "carinhoso", "amado", "amante",
		},
		Surprise: {
			"surpreso", "chocado", "espantado", "inesperado", "repentino",
			"atônito", "estupefato", "boquiaberto", "incrível", "extraordinário",
			"estranho", "esquisito", "peculiar", "maravilha", "surpreendente",
		},
	},
}

// slangIndicators catch informal register the formal keyword sets miss.
// Hits on these count more than dictionary keywords when the definition
// came from a slang source.
var slangIndicators = map[Emotion][]string{
	Anger: {
		"pissed", "salty", "triggered", "pressed", "heated", "tilted",
		"tight", "beefing", "throwing hands", "catch these hands", "toxic",
	},
	Disgust: {
		"cringe", "ick", "gross", "sketchy", "janky", "crusty", "musty",
		"basic", "trash", "garbage", "mid", "ratio",
	},
	Fear: {
		"lowkey scared", "freaked", "spooked", "shook", "paranoid",
		"sketched out", "creeped out", "big yikes", "concerning",
	},
	Joy: {
		"lit", "fire", "dope", "sick", "based", "goated", "bussin",
		"slaps", "hits different", "vibing", "living", "blessed", "ate",
		"slay", "iconic", "gas", "heat", "valid",
	},
	Sadness: {
		"down bad", "hurting", "broken", "empty", "numb", "dead inside",
		"sobbing", "gutted", "rip", "over it", "in my feels",
	},
	Passion: {
		"simp", "simping", "stan", "stanning", "shipping", "thirsty",
		"caught feelings", "crushing", "lowkey obsessed", "wifey",
		"bae", "baddie", "smitten", "whipped",
	},
	Surprise: {
		"shook", "shooketh", "mindblown", "wild", "insane", "bruh",
		"no cap", "deadass", "plot twist", "jaw dropping",
	},
}

// slangCandidates are English slang terms worth fetching from the slang
// source during a vocabulary expansion run.
var slangCandidates = []string{
	"lit", "bussin", "fire", "dope", "goated", "based", "valid", "slaps",
	"hits different", "no cap", "vibing", "vibes", "slay", "ate", "iconic",
	"banger", "clutch", "blessed", "stoked", "hyped", "pumped", "turnt",
	"gassed", "immaculate", "flawless", "legit", "wicked", "ace",
	"drip", "flex", "flexing", "finesse", "hype", "poppin", "chill",
	"yeet", "sheesh", "chuffed", "buzzing", "lush", "peng", "ripper",
	"salty", "pressed", "triggered", "tilted", "beefing", "toxic",
	"cringe", "ick", "mid", "sketchy", "janky", "wack", "trash",
	"corny", "shady", "cancelled", "ghosted", "roasted", "dragged",
	"rekt", "bodied", "cooked", "problematic", "karen",
	"down bad", "gutted", "sobbing", "heartbroken", "burnout",
	"numb", "drained", "lonesome", "unloved", "rejected",
	"simp", "stan", "thirsty", "smitten", "whipped", "sprung",
	"bae", "baddie", "hottie", "stunning", "dreamboat", "keeper",
	"shook", "mindblown", "gobsmacked", "flabbergasted", "speechless",
	"unhinged", "feral", "delulu", "situationship", "parasocial",
}

// vocabularyCandidates are formal emotion-adjacent words per language worth
// fetching from the general dictionary during a vocabulary expansion run.
var vocabularyCandidates = map[Language][]string{
	English: {
		"aggravated", "bitter", "contemptuous", "exasperated", "incensed",
		"indignant", "infuriated", "irate", "livid", "resentful", "seething",
		"vengeful", "wrathful", "belligerent", "disgruntled", "grouchy",
		"abhorrent", "appalling", "contemptible", "deplorable", "despicable",
		"detestable", "loathsome", "nauseating", "odious", "repulsive",
		"alarmed", "apprehensive", "aghast", "dismayed", "daunted",
		"intimidated", "perturbed", "rattled", "unnerved", "wary", "jittery",
		"panicked", "petrified", "skittish", "timorous", "tremulous",
		"blissful", "buoyant", "ebullient", "elated", "euphoric",
		"exhilarated", "exuberant", "gleeful", "jovial", "jubilant",
		"mirthful", "radiant", "rapturous", "cheery", "chipper", "perky",
		"bereft", "crestfallen", "dejected", "despairing", "disconsolate",
		"disheartened", "doleful", "downcast", "forlorn", "inconsolable",
		"melancholic", "morose", "wistful", "woebegone", "wretched",
		"amorous", "ardent", "besotted", "captivated", "devoted",
		"enamored", "entranced", "fervent", "infatuated", "smitten",
		"yearning", "zealous", "impassioned", "lovesick", "doting",
		"astounded", "bewildered", "confounded", "dumbfounded",
		"flabbergasted", "nonplussed", "staggered", "stupefied",
		"thunderstruck", "baffled", "mystified", "agog", "incredulous",
	},
	Spanish: {
		"enfurecido", "colérico", "airado", "indignado", "resentido",
		"rabioso", "iracundo", "malhumorado", "cabreado", "sulfurado",
		"exasperado", "belicoso", "gruñón", "cascarrabias", "berrinchudo",
		"asqueado", "repugnado", "nauseabundo", "vomitivo", "pútrido",
		"fétido", "hediondo", "execrable",
		"espantado", "aterrado", "pasmado", "medroso", "acobardado",
		"amedrentado", "acoquinado", "angustiado", "intranquilo",
		"desasosegado", "tembloroso", "histérico",
		"dichoso", "gozoso", "jubiloso", "radiante", "eufórico",
		"ilusionado", "esperanzado", "risueño", "exultante", "extasiado",
		"embelesado", "vivaracho",
		"afligido", "desolado", "abatido", "apenado", "desconsolado",
		"alicaído", "apesadumbrado", "acongojado", "compungido",
		"destrozado", "hundido", "dolido", "añorante",
		"enamorado", "apasionado", "cautivado", "ardiente", "afectuoso",
		"ferviente", "vehemente", "entregado", "hechizado", "embrujado",
		"atónito", "estupefacto", "perplejo", "boquiabierto", "alucinado",
		"flipado", "anonadado", "desconcertado", "sobrecogido",
		"chido", "chingón", "gacho", "agüitado", "clavado",
	},
	Portuguese: {
		"enfurecido", "colérico", "irado", "ressentido", "raivoso",
		"irascível", "ranzinza", "rabugento", "briguento", "esquentado",
		"possesso", "bolado", "revoltado",
		"enojado", "repugnado", "nauseante", "vomitivo", "pútrido",
		"fétido", "fedorento", "execrável",
		"espantado", "aterrado", "pasmado", "amedrontado", "acovardado",
		"apavorado", "aflito", "intranquilo", "desassossegado",
		"estremecido", "arrepiado", "tenso",
		"ditoso", "jubiloso", "radiante", "extasiado", "exultante",
		"empolgado", "risonho", "deslumbrado", "arrebatado", "sortudo",
		"abatido", "inconsolável", "cabisbaixo", "pesaroso", "consternado",
		"amargurado", "destroçado", "arrasado", "magoado", "saudoso",
		"choroso", "tristão",
		"apaixonado", "cativado", "ardente", "afetuoso", "fervoroso",
		"veemente", "entregue", "obcecado", "enfeitiçado", "hipnotizado",
		"gamado", "vidrado",
		"atônito", "estupefato", "perplexo", "pasmo", "boquiaberto",
		"abismado", "embasbacado", "estarrecido", "paralisado",
		"daora", "massa", "sinistro", "firmeza", "bugado",
	},
}
