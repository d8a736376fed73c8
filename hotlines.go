package affect

import "strings"

// SupportResource is a crisis line attached to risk assessments above none,
// with its display strings already resolved for the requested locale.
type SupportResource struct {
	RegionCode string `json:"regionCode"`
	RegionName string `json:"regionName"`
	Label      string `json:"label"`
	Number     string `json:"number"`
	URL        string `json:"url,omitempty"`
	Notes      string `json:"notes"`
}

type localized map[Language]string

func (l localized) pick(locale Language) string {
	if s, ok := l[locale]; ok {
		return s
	}
	return l[English]
}

type hotline struct {
	regionCode string
	regionName localized
	label      localized
	number     string
	url        string
	notes      localized
}

func (h hotline) resource(locale Language) *SupportResource {
	return &SupportResource{
		RegionCode: h.regionCode,
		RegionName: h.regionName.pick(locale),
		Label:      h.label.pick(locale),
		Number:     h.number,
		URL:        h.url,
		Notes:      h.notes.pick(locale),
	}
}

const intlRegion = "INTL"

var hotlines = map[string]hotline{
	"US": {
		regionCode: "US",
		regionName: localized{English: "United States", Spanish: "Estados Unidos", Portuguese: "Estados Unidos"},
		label: localized{
			English:    "988 Suicide & Crisis Lifeline",
			Spanish:    "Línea 988 de Suicidio y Crisis",
			Portuguese: "Linha 988 de Crise e Suicídio",
		},
		number: "988",
		url:    "https://988lifeline.org",
		notes: localized{
			English:    "Call or text 988, or use online chat if available in your area.",
			Spanish:    "Llama o envía un mensaje al 988, o usa el chat en línea si está disponible.",
			Portuguese: "Ligue ou envie mensagem para 988, ou use o chat on-line se disponível.",
		},
	},
	"CA": {
		regionCode: "CA",
		regionName: localized{English: "Canada", Spanish: "Canadá", Portuguese: "Canadá"},
		label: localized{
			English:    "988 Suicide Crisis Helpline",
			Spanish:    "Línea 988 de Crisis de Suicidio",
			Portuguese: "Linha 988 de Crise de Suicídio",
		},
		number: "988",
		notes: localized{
			English:    "Call or text 988 for support anywhere in Canada.",
			Spanish:    "Llama o envía un mensaje al 988 para apoyo en Canadá.",
			Portuguese: "Ligue ou envie mensagem para 988 em qualquer lugar do Canadá.",
		},
	},
	"BR": {
		regionCode: "BR",
		regionName: localized{English: "Brazil", Spanish: "Brasil", Portuguese: "Brasil"},
		label: localized{
			English:    "CVV 188 Emotional Support",
			Spanish:    "CVV 188 Apoyo Emocional",
			Portuguese: "CVV 188 Centro de Valorização da Vida",
		},
		number: "188",
		url:    "https://www.cvv.org.br",
		notes: localized{
			English:    "Free and confidential, available 24/7 in Portuguese.",
			Spanish:    "Gratuito y confidencial, disponible 24/7 en portugués.",
			Portuguese: "Serviço gratuito e sigiloso, disponível 24h todos os dias.",
		},
	},
	"PT": {
		regionCode: "PT",
		regionName: localized{English: "Portugal", Spanish: "Portugal", Portuguese: "Portugal"},
		label:      localized{English: "SOS Voz Amiga"},
		number:     "+351 213 544 545",
		url:        "https://www.sosvozamiga.org",
		notes: localized{
			English:    "Several numbers and schedules; check the website for details.",
			Spanish:    "Hay varios números y horarios; consulta el sitio web para más detalles.",
			Portuguese: "Existem vários números e horários; veja o site para detalhes.",
		},
	},
	"ES": {
		regionCode: "ES",
		regionName: localized{English: "Spain", Spanish: "España", Portuguese: "Espanha"},
		label: localized{
			English:    "024 Mental Health Hotline",
			Spanish:    "Línea 024 'Llama a la vida'",
			Portuguese: "Linha 024 de Saúde Mental",
		},
		number: "024",
		notes: localized{
			English:    "You can also call the general emergency number 112 in urgent situations.",
			Spanish:    "También puedes llamar al número general de emergencias 112 en casos urgentes.",
			Portuguese: "Em situações urgentes, também pode ligar para o número geral de emergência 112.",
		},
	},
	"MX": {
		regionCode: "MX",
		regionName: localized{English: "Mexico", Spanish: "México", Portuguese: "México"},
		label:      localized{English: "Línea de la Vida"},
		number:     "800 911 2000",
		notes: localized{
			English:    "Free national helpline for emotional support and crisis.",
			Spanish:    "Línea nacional gratuita para apoyo emocional y crisis.",
			Portuguese: "Linha nacional gratuita para apoio emocional e crises.",
		},
	},
	intlRegion: {
		regionCode: intlRegion,
		regionName: localized{English: "Your region", Spanish: "Tu región", Portuguese: "Sua região"},
		label: localized{
			English:    "Local suicide prevention or emergency number",
			Spanish:    "Línea local de prevención del suicidio o número de emergencias",
			Portuguese: "Linha local de prevenção ao suicídio ou número de emergência",
		},
		number: "112 / 911",
		url:    "https://www.opencounseling.com/suicide-hotlines",
		notes: localized{
			English:    "Call your local emergency number or look up a trusted hotline for your country.",
			Spanish:    "Llama a tu número local de emergencias o busca una línea confiable en tu país.",
			Portuguese: "Ligue para o número local de emergência ou procure uma linha confiável no seu país.",
		},
	},
}

// ResourceForRegion resolves a region code (ISO country code) to a support
// resource localized for locale. Unknown or empty regions fall back to the
// international entry.
func ResourceForRegion(region string, locale Language) *SupportResource {
	code := strings.ToUpper(strings.TrimSpace(region))
	h, ok := hotlines[code]
	if !ok {
		h = hotlines[intlRegion]
	}
	return h.resource(locale)
}
