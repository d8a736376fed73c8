package affect

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
		desc string
	}{
		{"I'm happy!", []string{"I'm", "happy", "!"}, "Apostrophe kept inside token"},
		{"hola, ¿qué tal?", []string{"hola", ",", "¿", "qué", "tal", "?"}, "Accented words and punctuation"},
		{"", nil, "Empty text"},
		{"   \t\n", nil, "Whitespace only"},
		{"#blessed @friend", []string{"#", "blessed", "@", "friend"}, "Sigils split from words"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			tokens := Tokenize(tt.text)
			if len(tokens) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d", tt.text, len(tokens), len(tt.want))
			}
			for i, tok := range tokens {
				if tok.Text != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, tok.Text, tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeOffsets(t *testing.T) {
	text := "so happy"
	tokens := Tokenize(text)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Start != 0 || tokens[1].Start != 3 {
		t.Errorf("offsets = %d, %d; want 0, 3", tokens[0].Start, tokens[1].Start)
	}
}

func TestLexiconKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
		desc string
	}{
		{"Coração", "coracao", "Diacritics stripped"},
		{"#Blessed", "blessed", "Hashtag sigil dropped"},
		{"@Amigo", "amigo", "Mention sigil dropped"},
		{"  So  Done ", "so_done", "Inner whitespace becomes underscore"},
		{"PÁNICO", "panico", "Case folded with accent"},
		{"", "", "Empty input"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := LexiconKey(tt.in); got != tt.want {
				t.Errorf("LexiconKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		in   string
		want string
		desc string
	}{
		{"  Não   Aguento  MAIS ", "nao aguento mais", "Accents, case and spacing"},
		{"i love you", "i love you", "Already normalized"},
		{"", "", "Empty phrase"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := NormalizePhrase(tt.in); got != tt.want {
				t.Errorf("NormalizePhrase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapseElongation(t *testing.T) {
	tests := []struct {
		in   string
		want string
		desc string
	}{
		{"sooooo", "soo", "Long run collapsed to two"},
		{"soo", "soo", "Double letters untouched"},
		{"happy", "happy", "No elongation"},
		{"yessss", "yess", "Trailing run"},
		{"nãooo", "nãoo", "Accented letter run"},
		{"NOOOO", "NOO", "Uppercase run"},
		{"hmm!!!", "hmm!!!", "Punctuation runs untouched"},
		{"", "", "Empty input"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := collapseElongation(tt.in); got != tt.want {
				t.Errorf("collapseElongation(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
		desc string
	}{
		{"hi there!!", 2, "Punctuation not counted"},
		{"one two three", 3, "Plain words"},
		{"!!! ...", 0, "Punctuation only"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := countWords(Tokenize(tt.text)); got != tt.want {
				t.Errorf("countWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
