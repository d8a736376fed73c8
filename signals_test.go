package affect

import "testing"

func TestSarcasmMarkerBoundaries(t *testing.T) {
	tests := []struct {
		text     string
		lang     Language
		wantZero bool
		desc     string
	}{
		{"sei la, tanto faz", Portuguese, false, "Bare marker as its own word"},
		{"ganhei seis reais hoje", Portuguese, true, "Marker silent inside a longer word"},
		{"o seio da familia", Portuguese, true, "Marker silent as a word prefix"},
		{"esta bom assim", Portuguese, true, "Phrase marker needs its own word start"},
		{"ta bom, acredito", Portuguese, false, "Phrase marker on its own words"},
		{"oh great, just perfect", English, false, "English markers still fire"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := sarcasmEstimate(tt.text, tt.lang, 0)
			if tt.wantZero && got != 0 {
				t.Errorf("sarcasmEstimate(%q) = %.2f, want 0", tt.text, got)
			}
			if !tt.wantZero && got <= 0 {
				t.Errorf("sarcasmEstimate(%q) = %.2f, want positive", tt.text, got)
			}
		})
	}
}

func TestContainsPhrase(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   bool
		desc   string
	}{
		{"sei la", "sei", true, "Word at text start"},
		{"eu sei", "sei", true, "Word at text end"},
		{"seis", "sei", false, "Prefix of a longer word"},
		{"osei", "sei", false, "Suffix of a longer word"},
		{"eu sei, claro", "sei", true, "Word before punctuation"},
		{"esta bom", "ta bom", false, "Phrase start inside a word"},
		{"", "sei", false, "Empty text"},
		{"sei", "", false, "Empty phrase"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := containsPhrase(tt.text, tt.phrase); got != tt.want {
				t.Errorf("containsPhrase(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
			}
		})
	}
}

func TestComputeSignalsSurfaceCues(t *testing.T) {
	text := "I am SOOOO happy!!!"
	sig := computeSignals(text, Tokenize(text), English)

	if sig.elongated == 0 {
		t.Error("elongated token not counted")
	}
	if sig.capsTokens == 0 {
		t.Error("all-caps token not counted")
	}
	if sig.exclamations != 3 {
		t.Errorf("exclamations = %d, want 3", sig.exclamations)
	}
	if sig.arousal <= 0 {
		t.Errorf("arousal = %.2f, want positive", sig.arousal)
	}
}
