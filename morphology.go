package affect

import "strings"

// morphologyDamping scales a derived form's vector so the root entry stays
// the strongest signal for its family.
const morphologyDamping = 0.8

// expandMorphology returns derived surface forms for every root in words,
// each carrying the root's vector damped by morphologyDamping. Existing
// entries are never overwritten: a curated weight beats a generated one.
func expandMorphology(lang Language, words map[string]EmotionVector) map[string]EmotionVector {
	derived := make(map[string]EmotionVector)
	for root, v := range words {
		if len(root) < 3 || strings.ContainsAny(root, "_ ") {
			continue
		}
		damped := v.Clone()
		damped.Scale(morphologyDamping)
		for _, form := range variants(lang, root) {
			if form == root {
				continue
			}
			if _, exists := words[form]; exists {
				continue
			}
			if prev, exists := derived[form]; exists {
				prev.MergeMax(damped)
				continue
			}
			derived[form] = damped.Clone()
		}
	}
	return derived
}

func variants(lang Language, root string) []string {
	switch lang {
	case English:
		return englishVariants(root)
	case Spanish, Portuguese:
		return iberianVariants(lang, root)
	}
	return nil
}

// englishVariants covers the regular inflection families: plural, past,
// progressive, comparative, superlative, and the y -> ies shift.
func englishVariants(root string) []string {
	var forms []string
	forms = append(forms, root+"s", root+"ed", root+"ing", root+"er", root+"est")
	if strings.HasSuffix(root, "e") {
		stem := root[:len(root)-1]
		forms = append(forms, stem+"ed", stem+"ing")
	}
	if strings.HasSuffix(root, "y") && len(root) > 3 {
		stem := root[:len(root)-1]
		forms = append(forms, stem+"ies", stem+"ied", stem+"ier", stem+"iest")
	}
	return forms
}

// iberianVariants covers gender and number agreement, diminutives and the
// absolute superlative shared by Spanish and Portuguese adjectives, plus a
// handful of common verb endings when the root looks like an infinitive.
func iberianVariants(lang Language, root string) []string {
	var forms []string

	switch {
	case strings.HasSuffix(root, "o"):
		stem := root[:len(root)-1]
		forms = append(forms,
			stem+"a", stem+"os", stem+"as",
			stem+"isimo", stem+"isima")
		if lang == Spanish {
			forms = append(forms, stem+"ito", stem+"ita")
		} else {
			forms = append(forms, stem+"inho", stem+"inha")
		}
	case strings.HasSuffix(root, "a"):
		stem := root[:len(root)-1]
		forms = append(forms,
			stem+"o", stem+"as", stem+"os",
			stem+"isima", stem+"isimo")
		if lang == Spanish {
			forms = append(forms, stem+"ita", stem+"ito")
		} else {
			forms = append(forms, stem+"inha", stem+"inho")
		}
	case strings.HasSuffix(root, "e"):
		forms = append(forms, root+"s")
	case strings.HasSuffix(root, "z"):
		forms = append(forms, root[:len(root)-1]+"ces")
	default:
		forms = append(forms, root+"es")
	}

	// Infinitive conjugations: first and third person present plus gerund.
	for _, end := range []string{"ar", "er", "ir"} {
		if !strings.HasSuffix(root, end) || len(root) < 4 {
			continue
		}
		stem := root[:len(root)-2]
		switch end {
		case "ar":
			forms = append(forms, stem+"o", stem+"a", stem+"an", stem+"am", stem+"ando")
		case "er":
			forms = append(forms, stem+"o", stem+"e", stem+"en", stem+"em", stem+"endo", stem+"iendo")
		case "ir":
			forms = append(forms, stem+"o", stem+"e", stem+"en", stem+"em", stem+"indo", stem+"iendo")
		}
		break
	}

	return forms
}
