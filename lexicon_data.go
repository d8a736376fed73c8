package affect

// Curated seed lexicons. Word keys are lexicon-normalized (lowercase,
// diacritics stripped, spaces as underscores); phrase keys are
// phrase-normalized (single spaces). Weights run roughly 0.9 for weak,
// context-dependent markers up to 2.4 for unambiguous core vocabulary;
// phrases go higher because a multi-word match is stronger evidence.

func addWeighted(table map[string]EmotionVector, emotion Emotion, weight float64, words ...string) {
	for _, w := range words {
		key := LexiconKey(w)
		vec, ok := table[key]
		if !ok {
			vec = EmotionVector{}
			table[key] = vec
		}
		vec[emotion] += weight
	}
}

func seedEnglishWords() map[string]EmotionVector {
	lex := make(map[string]EmotionVector, 512)

	addWeighted(lex, Anger, 2.2,
		"angry", "mad", "furious", "enraged", "irate", "livid", "fuming",
		"outraged", "incensed", "infuriated", "seething", "raging",
		"indignant", "exasperated", "aggravated", "irritated", "annoyed",
		"frustrated", "resentful", "bitter", "hostile")
	addWeighted(lex, Anger, 2.3,
		"hate", "hated", "hates", "hating", "loathe", "loathed",
		"despise", "despised", "detest", "detested", "resent", "resented")
	addWeighted(lex, Anger, 2.0,
		"pissed", "ticked", "salty", "pressed", "triggered", "tilted",
		"heated", "vexed", "miffed", "riled", "aggro")
	addWeighted(lex, Anger, 1.8,
		"ugh", "smh", "ffs", "wtf", "tf", "wth",
		"stupid", "idiot", "idiots", "idiotic", "dumb", "moron", "morons",
		"trash", "garbage", "bullshit", "clown", "clowns", "pathetic",
		"ridiculous", "absurd", "unacceptable")
	addWeighted(lex, Anger, 1.5,
		"damn", "dammit", "crap", "hell", "bloody", "freaking", "frickin",
		"frick", "heck")

	addWeighted(lex, Disgust, 2.2,
		"disgusted", "disgusting", "gross", "grossed", "nasty", "repulsed",
		"repulsive", "revolted", "revolting", "sickened", "sickening",
		"nauseated", "nauseating", "nauseous", "queasy", "appalled",
		"appalling", "vile", "foul", "putrid", "rancid")
	addWeighted(lex, Disgust, 2.0,
		"yuck", "yucky", "ew", "eww", "ewww", "ick", "icky", "bleh",
		"barf", "gag", "gagging", "puke", "puking")
	addWeighted(lex, Disgust, 1.8,
		"cringe", "cringey", "cringeworthy", "sus", "sketchy", "shady",
		"creepy", "creep", "yikes", "oof", "nope")
	addWeighted(lex, Disgust, 1.7,
		"filthy", "dirty", "grimy", "slimy", "greasy", "smelly", "stinky",
		"rank", "rotten", "moldy", "crusty", "musty", "sleazy", "trashy")

	addWeighted(lex, Fear, 2.3,
		"afraid", "scared", "frightened", "terrified", "petrified",
		"horrified", "alarmed", "panicked", "panicking", "panic",
		"fearful", "dreading", "dread", "dreaded")
	addWeighted(lex, Fear, 2.2,
		"anxious", "anxiety", "worried", "worrying", "worry",
		"nervous", "nervousness", "uneasy", "unease", "apprehensive",
		"tense", "stressed", "stressful", "stress", "stressing",
		"overwhelmed", "overwhelming", "overthinking", "spiraling")
	addWeighted(lex, Fear, 1.9,
		"paranoid", "paranoia", "freaked", "shook", "spooked",
		"jittery", "jumpy", "antsy")
	addWeighted(lex, Fear, 2.0,
		"phobia", "terror", "terrorized", "haunted", "haunting",
		"nightmare", "nightmarish", "traumatized", "traumatic", "trauma")
	addWeighted(lex, Fear, 1.5,
		"uncertain", "uncertainty", "unsure", "doubtful", "doubt",
		"hesitant", "wary", "concerned", "concerning", "troubling",
		"disturbing", "alarming")

	addWeighted(lex, Joy, 2.2,
		"happy", "happier", "happiest", "happiness", "joyful", "joyous",
		"delighted", "delightful", "pleased", "glad", "elated", "ecstatic",
		"euphoric", "thrilled", "overjoyed", "blissful", "bliss")
	addWeighted(lex, Joy, 1.8,
		"content", "contented", "satisfied", "satisfying", "fulfilled",
		"peaceful", "serene", "tranquil", "calm", "relaxed", "cozy", "comfy",
		"grateful", "thankful", "appreciative", "blessed", "fortunate",
		"lucky", "thanks", "thx")
	addWeighted(lex, Joy, 2.0,
		"excited", "exciting", "excitement", "enthusiastic", "eager",
		"pumped", "stoked", "hyped", "hype", "amped", "psyched")
	addWeighted(lex, Joy, 1.9,
		"lit", "fire", "bussin", "slaps", "vibe", "vibes", "vibing",
		"slay", "slayed", "slaying", "iconic", "goated", "legendary",
		"epic", "based", "valid")
	addWeighted(lex, Joy, 1.7,
		"lol", "lmao", "lmfao", "rofl", "haha", "hahaha", "hehe", "xd")
	addWeighted(lex, Joy, 1.8,
		"awesome", "amazing", "wonderful", "fantastic", "fabulous",
		"terrific", "excellent", "brilliant", "superb", "outstanding",
		"incredible", "magnificent", "marvelous", "phenomenal",
		"great", "good", "nice", "lovely", "beautiful", "perfect")
	addWeighted(lex, Joy, 1.6,
		"dope", "rad", "cool", "chill", "chillin", "winning", "win")
	addWeighted(lex, Joy, 0.9,
		"ok", "okay", "alright", "sure", "fine",
		"yay", "yess", "yup", "yeah", "yea", "woo", "woot", "woohoo")

	addWeighted(lex, Sadness, 2.3,
		"sad", "sadder", "saddest", "sadness", "unhappy", "sorrowful",
		"sorrow", "melancholy", "melancholic", "dejected", "despondent",
		"disheartened", "downcast", "woeful")
	addWeighted(lex, Sadness, 2.4,
		"depressed", "depressing", "depression", "hopeless", "hopelessness",
		"despair", "despairing", "desperate", "miserable", "misery",
		"wretched", "anguish", "anguished", "suffering")
	addWeighted(lex, Sadness, 2.3,
		"grief", "grieving", "mourning", "bereaved",
		"heartbroken", "heartbreak", "heartache",
		"devastated", "devastating", "shattered", "crushed")
	addWeighted(lex, Sadness, 2.1,
		"lonely", "loneliness", "alone", "isolated", "isolation",
		"abandoned", "neglected", "rejected", "unwanted", "unloved",
		"forgotten", "invisible")
	addWeighted(lex, Sadness, 2.0,
		"hurting", "aching", "crying", "sobbing", "weeping", "teary")
	addWeighted(lex, Sadness, 1.9,
		"drained", "exhausted", "depleted", "empty", "hollow", "numb",
		"broken", "spent")
	addWeighted(lex, Sadness, 1.6,
		"meh", "blah", "low", "blue", "bummed", "bummer", "disappointing",
		"disappointed", "letdown", "upset", "upsetting")

	addWeighted(lex, Passion, 2.3,
		"love", "loved", "loves", "loving", "adore", "adored", "adores",
		"adoring", "cherish", "cherished", "treasure")
	addWeighted(lex, Passion, 2.4,
		"smitten", "enamored", "infatuated", "infatuation", "devoted",
		"devotion", "enchanted", "captivated", "spellbound")
	addWeighted(lex, Passion, 2.1,
		"desire", "desired", "desires", "crave", "craved", "craving",
		"yearn", "yearning", "longing", "pining", "attracted", "attraction",
		"chemistry")
	addWeighted(lex, Passion, 1.9,
		"crush", "crushing", "simping", "simp", "stan", "stanning",
		"ship", "shipping", "otp", "goals")
	addWeighted(lex, Passion, 2.0,
		"bae", "babe", "honey", "sweetheart", "darling", "soulmate")
	addWeighted(lex, Passion, 1.7,
		"hot", "sexy", "gorgeous", "handsome", "stunning", "attractive",
		"cute", "cutie", "adorable")

	addWeighted(lex, Surprise, 2.2,
		"surprised", "surprising", "surprise", "astonished", "astonishing",
		"amazed", "astounded", "astounding", "stunned",
		"shocked", "shocking", "startled", "startling")
	addWeighted(lex, Surprise, 2.0,
		"unbelievable", "inconceivable", "mindblowing", "jawdropping",
		"breathtaking")
	addWeighted(lex, Surprise, 1.8,
		"wow", "woah", "whoa", "omg", "omfg", "huh", "seriously")
	addWeighted(lex, Surprise, 1.6,
		"unexpected", "unforeseen", "random", "suddenly", "twist")

	return lex
}

func seedSpanishWords() map[string]EmotionVector {
	lex := make(map[string]EmotionVector, 512)

	addWeighted(lex, Anger, 2.2,
		"enojado", "enojada", "enojados", "enojadas",
		"furioso", "furiosa", "furiosos", "furiosas",
		"molesto", "molesta", "molestos", "molestas",
		"irritado", "irritada", "frustrado", "frustrada",
		"indignado", "indignada", "enfadado", "enfadada",
		"rabioso", "rabiosa", "colerico", "colerica")
	addWeighted(lex, Anger, 2.3,
		"rabia", "ira", "furia", "enojo", "coraje", "colera",
		"enfado", "bronca", "berrinche")
	addWeighted(lex, Anger, 2.4,
		"odio", "odias", "odia", "odiamos", "odian",
		"odiaba", "odie", "odiaste",
		"detesto", "detestas", "detesta", "detestan",
		"aborrezco", "aborrece")
	addWeighted(lex, Anger, 2.0,
		"encabronado", "encabronada", "emputado", "emputada",
		"chingado", "chingada", "pinche", "maldito", "maldita",
		"cabreado", "cabreada", "mosqueado", "mosqueada",
		"joder", "hostia", "coño", "mierda",
		"podrido", "podrida", "arrecho", "arrecha")
	addWeighted(lex, Anger, 1.8,
		"asco", "wtf", "ptm", "alv", "nmms")

	addWeighted(lex, Disgust, 2.2,
		"asqueado", "asqueada", "repugnante", "repugnantes",
		"asqueroso", "asquerosa", "asquerosos", "asquerosas",
		"nauseabundo", "nauseabunda", "repulsivo", "repulsiva",
		"vomitivo", "asco", "repugnancia", "nausea", "nauseas",
		"guacala", "puaj", "fuchi", "iugh")
	addWeighted(lex, Disgust, 1.8,
		"cringe", "patetico", "patetica", "penoso", "penosa",
		"vergonzoso", "vergonzosa", "turbio", "turbia",
		"raro", "rara", "raros", "raras", "incomodo", "incomoda")

	addWeighted(lex, Fear, 2.3,
		"asustado", "asustada", "asustados", "asustadas",
		"aterrado", "aterrada", "atemorizado", "atemorizada",
		"espantado", "espantada", "horrorizado", "horrorizada",
		"aterrorizado", "aterrorizada", "temeroso", "temerosa",
		"miedoso", "miedosa")
	addWeighted(lex, Fear, 2.2,
		"ansioso", "ansiosa", "ansiosos", "ansiosas",
		"preocupado", "preocupada", "preocupados", "preocupadas",
		"nervioso", "nerviosa", "nerviosos", "nerviosas",
		"inquieto", "inquieta", "tenso", "tensa",
		"estresado", "estresada", "agobiado", "agobiada",
		"abrumado", "abrumada", "angustiado", "angustiada")
	addWeighted(lex, Fear, 2.1,
		"miedo", "temor", "terror", "panico", "pavor", "espanto",
		"ansiedad", "preocupacion", "nervios", "estres",
		"angustia", "inquietud")

	addWeighted(lex, Joy, 2.2,
		"feliz", "felices", "contento", "contenta", "contentos",
		"alegre", "alegres", "dichoso", "dichosa",
		"encantado", "encantada", "emocionado", "emocionada",
		"entusiasmado", "entusiasmada", "ilusionado", "ilusionada",
		"satisfecho", "satisfecha", "orgulloso", "orgullosa")
	addWeighted(lex, Joy, 2.1,
		"felicidad", "alegria", "dicha", "gozo", "jubilo",
		"entusiasmo", "emocion", "ilusion", "euforia")
	addWeighted(lex, Joy, 1.8,
		"jaja", "jajaja", "jajajaja", "jeje", "jiji", "xd", "lol")
	addWeighted(lex, Joy, 1.9,
		"chido", "chida", "chingon", "chingona", "genial", "geniales",
		"guay", "mola", "flipante", "estupendo", "estupenda",
		"brutal", "bestial", "copado", "copada", "piola",
		"chevere", "bacano", "bacana",
		"increible", "espectacular", "buenisimo", "buenisima")
	addWeighted(lex, Joy, 0.9,
		"bien", "bueno", "vale", "dale", "si", "claro", "obvio")

	addWeighted(lex, Sadness, 2.3,
		"triste", "tristes", "deprimido", "deprimida", "deprimidos",
		"desanimado", "desanimada", "decaido", "decaida",
		"abatido", "abatida", "desconsolado", "desconsolada",
		"afligido", "afligida", "melancolico", "melancolica",
		"nostalgico", "nostalgica")
	addWeighted(lex, Sadness, 2.4,
		"desesperado", "desesperada", "desolado", "desolada",
		"devastado", "devastada", "destrozado", "destrozada",
		"destruido", "destruida", "roto", "rota", "vacio", "vacia",
		"hueco", "hueca")
	addWeighted(lex, Sadness, 2.1,
		"solo", "sola", "solos", "solas", "aislado", "aislada",
		"abandonado", "abandonada", "rechazado", "rechazada",
		"ignorado", "ignorada")
	addWeighted(lex, Sadness, 2.2,
		"tristeza", "pena", "dolor", "sufrimiento",
		"melancolia", "nostalgia", "soledad",
		"desesperacion", "angustia", "depresion", "depre")
	addWeighted(lex, Sadness, 2.0,
		"llorando", "llorar", "lloro", "lloras", "llora", "llore",
		"sufrir", "sufro", "sufres", "sufre",
		"extraño", "extrañas", "extraña", "bajoneado", "bajoneada", "bajon")

	addWeighted(lex, Passion, 2.3,
		"amo", "amas", "ama", "amamos", "aman", "amaba", "ame", "amaste",
		"quiero", "quieres", "quiere", "queremos", "quieren", "queria",
		"enamorado", "enamorada", "enamorados", "enamoradas",
		"apasionado", "apasionada", "obsesionado", "obsesionada")
	addWeighted(lex, Passion, 2.2,
		"amor", "pasion", "cariño", "afecto", "ternura",
		"deseo", "atraccion", "adoracion")
	addWeighted(lex, Passion, 1.9,
		"crush", "bae", "hermoso", "hermosa", "precioso", "preciosa",
		"guapo", "guapa", "guapisimo", "guapisima", "belleza",
		"bello", "bella")

	addWeighted(lex, Surprise, 2.2,
		"sorprendido", "sorprendida", "sorprendidos",
		"impactado", "impactada", "asombrado", "asombrada",
		"atonito", "atonita", "estupefacto", "estupefacta",
		"perplejo", "perpleja", "desconcertado", "desconcertada")
	addWeighted(lex, Surprise, 2.0,
		"sorpresa", "asombro")
	addWeighted(lex, Surprise, 1.9,
		"wow", "guau", "orale", "increible", "impresionante",
		"omg", "hijole", "alucinante")
	addWeighted(lex, Surprise, 1.8,
		"neta", "flipando", "alucino")

	return lex
}

func seedPortugueseWords() map[string]EmotionVector {
	lex := make(map[string]EmotionVector, 512)

	addWeighted(lex, Anger, 2.2,
		"irritado", "irritada", "irritados", "irritadas",
		"bravo", "brava", "bravos", "bravas",
		"furioso", "furiosa", "furiosos", "furiosas",
		"enraivecido", "enraivecida", "zangado", "zangada",
		"chateado", "chateada", "frustrado", "frustrada",
		"indignado", "indignada", "revoltado", "revoltada")
	addWeighted(lex, Anger, 2.3,
		"raiva", "furia", "ira", "colera", "revolta",
		"indignacao", "frustracao")
	addWeighted(lex, Anger, 2.4,
		"odeio", "odeias", "odeia", "odiamos", "odeiam",
		"odiava", "odiei", "odiou", "odiaram",
		"detesto", "detestas", "detesta", "detestam", "abomino")
	addWeighted(lex, Anger, 2.0,
		"puto", "puta", "putos", "caralho", "porra", "merda", "cacete",
		"bosta", "fodido", "fodida", "farto", "farta", "fulo", "fula",
		"cabrao")
	addWeighted(lex, Anger, 1.8,
		"wtf", "pqp", "vsf", "vtnc")

	addWeighted(lex, Disgust, 2.2,
		"enojado", "enojada", "nauseado", "nauseada",
		"repugnante", "repugnantes",
		"nojento", "nojenta", "nojentos", "nojentas",
		"asqueroso", "asquerosa", "imundo", "imunda",
		"horrivel", "horriveis", "nojo", "repugnancia", "nausea", "ansia",
		"eca", "credo")
	addWeighted(lex, Disgust, 1.8,
		"cringe", "estranho", "estranha", "estranhos",
		"bizarro", "bizarra", "bizarros", "tosco", "tosca")

	addWeighted(lex, Fear, 2.3,
		"assustado", "assustada", "assustados", "assustadas",
		"amedrontado", "amedrontada", "aterrorizado", "aterrorizada",
		"apavorado", "apavorada", "medroso", "medrosa",
		"temeroso", "temerosa")
	addWeighted(lex, Fear, 2.2,
		"ansioso", "ansiosa", "ansiosos", "ansiosas",
		"preocupado", "preocupada", "preocupados", "preocupadas",
		"nervoso", "nervosa", "nervosos", "nervosas",
		"tenso", "tensa", "estressado", "estressada",
		"aflito", "aflita", "angustiado", "angustiada",
		"apreensivo", "apreensiva")
	addWeighted(lex, Fear, 2.1,
		"medo", "temor", "terror", "panico", "pavor",
		"ansiedade", "preocupacao", "nervosismo", "estresse",
		"angustia", "aflicao")

	addWeighted(lex, Joy, 2.2,
		"feliz", "felizes", "contente", "contentes",
		"alegre", "alegres", "animado", "animada", "animados",
		"empolgado", "empolgada", "entusiasmado", "entusiasmada",
		"radiante", "radiantes", "satisfeito", "satisfeita",
		"realizado", "realizada", "orgulhoso", "orgulhosa")
	addWeighted(lex, Joy, 2.1,
		"felicidade", "alegria", "contentamento",
		"entusiasmo", "empolgacao", "euforia")
	addWeighted(lex, Joy, 1.8,
		"kkk", "kkkk", "kkkkk", "rsrs", "rsrsrs", "haha", "hahaha",
		"hehe", "lol", "xd")
	addWeighted(lex, Joy, 1.9,
		"massa", "show", "legal", "bacana", "maneiro", "maneira",
		"top", "topzera", "irado", "irada", "sinistro", "sinistra",
		"brabo", "braba", "sensacional", "incrivel", "maravilhoso",
		"fixe", "porreiro", "porreira", "giro", "gira",
		"bestial", "espetacular", "brutal")
	addWeighted(lex, Joy, 1.8,
		"amei", "adorei", "curti", "amando", "perfeito", "perfeita")
	addWeighted(lex, Joy, 0.9,
		"beleza", "blz", "suave", "tranquilo", "tranquila",
		"sim", "ta", "opa", "eba", "uhu", "uhul")

	addWeighted(lex, Sadness, 2.3,
		"triste", "tristes", "deprimido", "deprimida", "deprimidos",
		"desanimado", "desanimada", "abatido", "abatida",
		"desconsolado", "desconsolada", "desolado", "desolada",
		"melancolico", "melancolica", "nostalgico", "nostalgica",
		"cabisbaixo", "cabisbaixa")
	addWeighted(lex, Sadness, 2.4,
		"desesperado", "desesperada", "devastado", "devastada",
		"arrasado", "arrasada", "destruido", "destruida",
		"acabado", "acabada", "vazio", "vazia", "oco", "oca")
	addWeighted(lex, Sadness, 2.1,
		"sozinho", "sozinha", "sozinhos", "sozinhas",
		"solitario", "solitaria", "isolado", "isolada",
		"abandonado", "abandonada", "rejeitado", "rejeitada")
	addWeighted(lex, Sadness, 2.2,
		"tristeza", "pena", "dor", "sofrimento",
		"melancolia", "nostalgia", "solidao",
		"desespero", "angustia", "depressao", "depre")
	addWeighted(lex, Sadness, 2.0,
		"chorando", "chorar", "choro", "chora", "chorei", "chorou",
		"sofrer", "sofro", "sofre", "saudade", "saudades")

	addWeighted(lex, Passion, 2.3,
		"amo", "amas", "ama", "amamos", "amam", "amava", "amei", "amou",
		"adoro", "adoras", "adora", "adoram",
		"quero", "queres", "quer", "queremos", "querem",
		"apaixonado", "apaixonada", "apaixonados",
		"enamorado", "enamorada", "encantado", "encantada",
		"obcecado", "obcecada")
	addWeighted(lex, Passion, 2.2,
		"amor", "paixao", "carinho", "afeto", "ternura",
		"desejo", "atracao", "adoracao")
	addWeighted(lex, Passion, 1.9,
		"crush", "mozao", "gatinho", "gatinha", "gato", "gata",
		"gostoso", "gostosa", "lindo", "linda", "lindao", "lindona")

	addWeighted(lex, Surprise, 2.2,
		"surpreso", "surpresa", "surpreendido", "surpreendida",
		"chocado", "chocada", "chocados",
		"impressionado", "impressionada", "espantado", "espantada",
		"atonito", "atonita", "perplexo", "perplexa",
		"abismado", "abismada")
	addWeighted(lex, Surprise, 2.0,
		"espanto", "choque")
	addWeighted(lex, Surprise, 1.9,
		"uau", "wow", "nossa", "caramba", "caraca",
		"eita", "vish", "vixi", "serio", "jura")
	addWeighted(lex, Surprise, 1.8,
		"mentira", "mds")

	return lex
}

func vec(pairs ...any) EmotionVector {
	v := EmotionVector{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v[pairs[i].(Emotion)] = pairs[i+1].(float64)
	}
	return v
}

func seedEnglishPhrases() map[string]EmotionVector {
	return map[string]EmotionVector{
		"on cloud nine":           vec(Joy, 3.0),
		"over the moon":           vec(Joy, 3.0),
		"on top of the world":     vec(Joy, 2.8),
		"living my best life":     vec(Joy, 2.5),
		"couldnt be happier":      vec(Joy, 2.8),
		"best day ever":           vec(Joy, 2.5),
		"this made my day":        vec(Joy, 2.3),
		"you made my day":         vec(Joy, 2.5),
		"so happy right now":      vec(Joy, 2.4),
		"i love this":             vec(Joy, 2.0, Passion, 1.0),
		"i love it":               vec(Joy, 2.0, Passion, 1.0),
		"hits different":          vec(Joy, 2.0),
		"lets go":                 vec(Joy, 1.8, Surprise, 0.8),
		"pissed off":              vec(Anger, 2.8),
		"ticked off":              vec(Anger, 2.3),
		"fed up":                  vec(Anger, 2.0, Sadness, 1.0),
		"at my wits end":          vec(Anger, 1.8, Sadness, 1.8),
		"lost my patience":        vec(Anger, 2.2),
		"losing my mind":          vec(Anger, 1.8, Fear, 1.5),
		"drives me crazy":         vec(Anger, 2.0),
		"makes my blood boil":     vec(Anger, 2.8),
		"seeing red":              vec(Anger, 2.5),
		"im so done":              vec(Anger, 2.0, Sadness, 1.0),
		"sick of this":            vec(Anger, 2.0, Disgust, 1.5),
		"tired of this":           vec(Anger, 1.8, Sadness, 1.2),
		"i hate this":             vec(Anger, 2.5),
		"i hate you":              vec(Anger, 3.0),
		"go to hell":              vec(Anger, 2.8),
		"what the hell":           vec(Anger, 2.0, Surprise, 1.0),
		"are you kidding me":      vec(Anger, 2.0, Surprise, 1.5),
		"this is ridiculous":      vec(Anger, 2.2),
		"this is bullshit":        vec(Anger, 2.5),
		"my heart hurts":          vec(Sadness, 2.8),
		"my heart aches":          vec(Sadness, 2.6),
		"feeling empty":           vec(Sadness, 2.5),
		"in a dark place":         vec(Sadness, 2.6, Fear, 1.0),
		"down in the dumps":       vec(Sadness, 2.2),
		"feeling low":             vec(Sadness, 2.0),
		"feeling down":            vec(Sadness, 2.0),
		"not okay":                vec(Sadness, 2.2),
		"im not okay":             vec(Sadness, 2.4),
		"its been hard":           vec(Sadness, 2.0),
		"struggling lately":       vec(Sadness, 2.2),
		"going through a lot":     vec(Sadness, 2.3),
		"i miss you":              vec(Sadness, 2.2, Passion, 1.8),
		"wish you were here":      vec(Sadness, 2.3, Passion, 1.5),
		"cant stop crying":        vec(Sadness, 2.8),
		"cried myself to sleep":   vec(Sadness, 3.0),
		"in my feels":             vec(Sadness, 2.0),
		"down bad":                vec(Sadness, 2.2, Passion, 1.0),
		"scared to death":         vec(Fear, 3.0),
		"freaking out":            vec(Fear, 2.5),
		"having a panic attack":   vec(Fear, 3.0),
		"cant breathe":            vec(Fear, 2.8),
		"heart is racing":         vec(Fear, 2.3),
		"on edge":                 vec(Fear, 2.0),
		"walking on eggshells":    vec(Fear, 2.2),
		"worried sick":            vec(Fear, 2.5),
		"im so scared":            vec(Fear, 2.6),
		"im terrified":            vec(Fear, 2.8),
		"gives me anxiety":        vec(Fear, 2.3),
		"stressed out":            vec(Fear, 2.2),
		"cant sleep":              vec(Fear, 1.8, Sadness, 1.5),
		"makes me sick":           vec(Disgust, 2.5),
		"sick to my stomach":      vec(Disgust, 2.8),
		"want to throw up":        vec(Disgust, 2.5),
		"grossed out":             vec(Disgust, 2.3),
		"thats disgusting":        vec(Disgust, 2.4),
		"thats nasty":             vec(Disgust, 2.2),
		"hard pass":               vec(Disgust, 1.8),
		"big yikes":               vec(Disgust, 2.0, Surprise, 1.0),
		"giving me the ick":       vec(Disgust, 2.3),
		"head over heels":         vec(Passion, 3.0),
		"falling for you":         vec(Passion, 2.8),
		"in love with you":        vec(Passion, 3.0),
		"love you so much":        vec(Passion, 3.0),
		"i love you":              vec(Passion, 2.8),
		"love of my life":         vec(Passion, 3.0),
		"my everything":           vec(Passion, 2.8),
		"cant live without you":   vec(Passion, 2.8, Fear, 1.0),
		"youre my world":          vec(Passion, 2.7),
		"crazy about you":         vec(Passion, 2.6),
		"have a crush on":         vec(Passion, 2.3),
		"couple goals":            vec(Passion, 2.2, Joy, 1.0),
		"cant believe it":         vec(Surprise, 2.5),
		"i cant believe":          vec(Surprise, 2.3),
		"no way":                  vec(Surprise, 2.2),
		"are you serious":         vec(Surprise, 2.2),
		"out of nowhere":          vec(Surprise, 2.0),
		"did not see that coming": vec(Surprise, 2.3),
		"plot twist":              vec(Surprise, 2.2),
		"mind blown":              vec(Surprise, 2.5),
		"blew my mind":            vec(Surprise, 2.4),
		"im shook":                vec(Surprise, 2.3),
		"im dead":                 vec(Surprise, 2.2, Joy, 1.0),
		"i cant even":             vec(Surprise, 2.0),
		"red flag":                vec(Fear, 1.5, Disgust, 1.5),
		"green flag":              vec(Joy, 1.8, Passion, 1.0),
	}
}

func seedSpanishPhrases() map[string]EmotionVector {
	return map[string]EmotionVector{
		"estar en las nubes":         vec(Joy, 2.8),
		"en la gloria":               vec(Joy, 2.8),
		"de maravilla":               vec(Joy, 2.5),
		"que alegria":                vec(Joy, 2.5),
		"me hace feliz":              vec(Joy, 2.5),
		"estoy muy feliz":            vec(Joy, 2.6),
		"super contento":             vec(Joy, 2.4),
		"super contenta":             vec(Joy, 2.4),
		"me encanta esto":            vec(Joy, 2.3),
		"lo mejor del mundo":         vec(Joy, 2.5),
		"me tiene harto":             vec(Anger, 2.5),
		"me tiene harta":             vec(Anger, 2.5),
		"estoy hasta la madre":       vec(Anger, 2.8),
		"estoy hasta las narices":    vec(Anger, 2.5),
		"me caga":                    vec(Anger, 2.5),
		"me da rabia":                vec(Anger, 2.4),
		"me hierve la sangre":        vec(Anger, 2.7),
		"que coraje":                 vec(Anger, 2.3),
		"me saca de quicio":          vec(Anger, 2.4),
		"perdi la paciencia":         vec(Anger, 2.3),
		"no lo soporto":              vec(Anger, 2.4),
		"ya no aguanto":              vec(Anger, 2.3, Sadness, 1.0),
		"corazon roto":               vec(Sadness, 3.0),
		"me duele el corazon":        vec(Sadness, 2.8),
		"la estoy pasando mal":       vec(Sadness, 2.6),
		"me siento vacio":            vec(Sadness, 2.7),
		"me siento vacia":            vec(Sadness, 2.7),
		"no tengo ganas de nada":     vec(Sadness, 2.5),
		"todo me sale mal":           vec(Sadness, 2.4),
		"estoy en mi peor momento":   vec(Sadness, 2.6),
		"no puedo mas":               vec(Sadness, 2.8, Fear, 1.0),
		"ya no aguanto mas":          vec(Sadness, 2.8, Anger, 1.0),
		"me quiero morir":            vec(Sadness, 3.0),
		"no tiene sentido":           vec(Sadness, 2.3),
		"me da mucho miedo":          vec(Fear, 2.6),
		"me muero de miedo":          vec(Fear, 2.7),
		"me esta dando ansiedad":     vec(Fear, 2.5),
		"tengo un ataque de panico":  vec(Fear, 3.0),
		"no puedo respirar":          vec(Fear, 2.8),
		"estoy muy nervioso":         vec(Fear, 2.4),
		"estoy muy nerviosa":         vec(Fear, 2.4),
		"me preocupa mucho":          vec(Fear, 2.3),
		"me da asco":                 vec(Disgust, 2.5),
		"que asco":                   vec(Disgust, 2.4),
		"me da nauseas":              vec(Disgust, 2.6),
		"quiero vomitar":             vec(Disgust, 2.5),
		"es repugnante":              vec(Disgust, 2.5),
		"que patetico":               vec(Disgust, 2.2),
		"da verguenza ajena":         vec(Disgust, 2.3),
		"estoy enamorado":            vec(Passion, 2.8),
		"estoy enamorada":            vec(Passion, 2.8),
		"te amo con todo mi corazon": vec(Passion, 3.0),
		"eres mi vida":               vec(Passion, 2.9),
		"no puedo vivir sin ti":      vec(Passion, 2.8),
		"me vuelves loco":            vec(Passion, 2.6),
		"me vuelves loca":            vec(Passion, 2.6),
		"loco por ti":                vec(Passion, 2.7),
		"loca por ti":                vec(Passion, 2.7),
		"amor de mi vida":            vec(Passion, 2.9),
		"no lo puedo creer":          vec(Surprise, 2.5),
		"no puede ser":               vec(Surprise, 2.4),
		"me dejo sin palabras":       vec(Surprise, 2.5),
		"estoy en shock":             vec(Surprise, 2.6),
		"que locura":                 vec(Surprise, 2.2),
		"esto es increible":          vec(Surprise, 2.3),
		"en serio":                   vec(Surprise, 1.5),
		"no me jodas":                vec(Surprise, 2.2, Anger, 1.0),
	}
}

func seedPortuguesePhrases() map[string]EmotionVector {
	return map[string]EmotionVector{
		"nas nuvens":                  vec(Joy, 2.8),
		"no setimo ceu":               vec(Joy, 2.8),
		"muito feliz":                 vec(Joy, 2.5),
		"super feliz":                 vec(Joy, 2.6),
		"que alegria":                 vec(Joy, 2.5),
		"que massa":                   vec(Joy, 2.2),
		"muito bom":                   vec(Joy, 2.2),
		"bom demais":                  vec(Joy, 2.3),
		"amei isso":                   vec(Joy, 2.3),
		"to amando":                   vec(Joy, 2.4, Passion, 1.0),
		"de saco cheio":               vec(Anger, 2.5),
		"que raiva":                   vec(Anger, 2.5),
		"me irrita muito":             vec(Anger, 2.5),
		"estou puto":                  vec(Anger, 2.6),
		"estou puta":                  vec(Anger, 2.6),
		"nao aguento mais":            vec(Anger, 2.3, Sadness, 1.5),
		"perdi a paciencia":           vec(Anger, 2.4),
		"que odio":                    vec(Anger, 2.6),
		"sangue fervendo":             vec(Anger, 2.7),
		"me tira do serio":            vec(Anger, 2.4),
		"vou explodir":                vec(Anger, 2.5),
		"coracao partido":             vec(Sadness, 3.0),
		"me doi o coracao":            vec(Sadness, 2.8),
		"to muito mal":                vec(Sadness, 2.6),
		"me sinto vazio":              vec(Sadness, 2.7),
		"me sinto vazia":              vec(Sadness, 2.7),
		"sem vontade de nada":         vec(Sadness, 2.5),
		"nada faz sentido":            vec(Sadness, 2.4),
		"estou no fundo do poco":      vec(Sadness, 2.8),
		"morrendo de saudade":         vec(Sadness, 2.5, Passion, 1.5),
		"chorando muito":              vec(Sadness, 2.7),
		"nao consigo parar de chorar": vec(Sadness, 2.8),
		"quero morrer":                vec(Sadness, 3.0),
		"muito medo":                  vec(Fear, 2.6),
		"morrendo de medo":            vec(Fear, 2.7),
		"to com muita ansiedade":      vec(Fear, 2.5),
		"tendo ataque de panico":      vec(Fear, 3.0),
		"nao consigo respirar":        vec(Fear, 2.8),
		"estou tremendo":              vec(Fear, 2.4),
		"muito nervoso":               vec(Fear, 2.4),
		"muito nervosa":               vec(Fear, 2.4),
		"estou pirando":               vec(Fear, 2.5),
		"to surtando":                 vec(Fear, 2.5),
		"me da nojo":                  vec(Disgust, 2.5),
		"que nojo":                    vec(Disgust, 2.4),
		"me da ansia":                 vec(Disgust, 2.6),
		"quero vomitar":               vec(Disgust, 2.5),
		"e nojento":                   vec(Disgust, 2.5),
		"vergonha alheia":             vec(Disgust, 2.2),
		"estou apaixonado":            vec(Passion, 2.8),
		"estou apaixonada":            vec(Passion, 2.8),
		"te amo muito":                vec(Passion, 3.0),
		"te amo demais":               vec(Passion, 3.0),
		"voce e minha vida":           vec(Passion, 2.9),
		"nao vivo sem voce":           vec(Passion, 2.8),
		"louco por voce":              vec(Passion, 2.7),
		"louca por voce":              vec(Passion, 2.7),
		"amor da minha vida":          vec(Passion, 2.9),
		"nao acredito":                vec(Surprise, 2.5),
		"nao pode ser":                vec(Surprise, 2.4),
		"fiquei sem palavras":         vec(Surprise, 2.5),
		"estou em choque":             vec(Surprise, 2.6),
		"que loucura":                 vec(Surprise, 2.2),
		"isso e incrivel":             vec(Surprise, 2.3),
		"mano do ceu":                 vec(Surprise, 2.2),
	}
}

func seedWords() map[Language]map[string]EmotionVector {
	return map[Language]map[string]EmotionVector{
		English:    seedEnglishWords(),
		Spanish:    seedSpanishWords(),
		Portuguese: seedPortugueseWords(),
	}
}

func seedPhrases() map[Language]map[string]EmotionVector {
	return map[Language]map[string]EmotionVector{
		English:    seedEnglishPhrases(),
		Spanish:    seedSpanishPhrases(),
		Portuguese: seedPortuguesePhrases(),
	}
}
