package person

import "strings"

// InferNameParts splits a name (and its Latin transliteration, when
// present) into family and given parts using the script conventions the
// dataset documents. Heuristics whose preconditions fail return an
// AmbiguityError rather than guessing; curators are expected to annotate
// such names with explicit brace marking instead.
//
// The heuristics are knowingly wrong for real names with particles,
// multi-character CJK family names, or suffixes. That is the documented
// contract: fail by ambiguity, never patch by exception.
func InferNameParts(original, latin string) (*NameRef, NameRef, Script, error) {
	if original == "" {
		ref, script, err := splitTransliterated(latin)
		return nil, ref, script, err
	}

	script, err := Classify(original)
	if err != nil {
		return nil, NameRef{}, ScriptUnknown, err
	}

	switch script {
	case Latin:
		return nil, NameRef{}, ScriptUnknown, &AmbiguityError{
			Name:   original,
			Reason: "Latin name with a bracketed transliteration",
		}
	case Cyrillic:
		orig, lat, err := splitLastWord(original, latin)
		return orig, lat, script, err
	case Chinese:
		return splitChinese(original, latin)
	case Kanji, Kana:
		orig, lat, err := splitFirstWord(original, latin)
		return orig, lat, script, err
	case Hangul:
		orig, lat, err := splitLeadingRune(original, latin)
		return orig, lat, script, err
	}
	return nil, NameRef{}, ScriptUnknown, &UnsupportedScriptError{Text: original}
}

// splitTransliterated handles names with no original-script form. The last
// word is taken as the family name unless the split is ambiguous: more than
// two words with a pair of consecutive non-abbreviated words anywhere, or a
// last word that is itself an abbreviation.
func splitTransliterated(latin string) (NameRef, Script, error) {
	script, err := Classify(latin)
	if err != nil {
		return NameRef{}, ScriptUnknown, err
	}
	if script != Latin && script != Cyrillic {
		return NameRef{}, ScriptUnknown, &AmbiguityError{
			Name:   latin,
			Reason: "non-Latin name without a bracketed transliteration",
		}
	}
	words := strings.Fields(latin)
	if len(words) == 1 {
		return NameRef{Full: latin, Family: words[0]}, script, nil
	}
	last := words[len(words)-1]
	if strings.HasSuffix(last, ".") {
		return NameRef{}, ScriptUnknown, &AmbiguityError{
			Name:   latin,
			Reason: "last word is an abbreviation",
		}
	}
	if len(words) > 2 && hasAdjacentFullWords(words) {
		return NameRef{}, ScriptUnknown, &AmbiguityError{
			Name:   latin,
			Reason: "multiple candidate family-name words; mark the family name with braces",
		}
	}
	return NameRef{
		Full:   latin,
		Family: last,
		Given:  strings.Join(words[:len(words)-1], " "),
	}, script, nil
}

// hasAdjacentFullWords reports whether any two consecutive words are both
// non-abbreviated, which makes a last-word family split unsafe
// (e.g. "Jon Ove Van Pelt").
func hasAdjacentFullWords(words []string) bool {
	for i := 0; i+1 < len(words); i++ {
		if !strings.HasSuffix(words[i], ".") && !strings.HasSuffix(words[i+1], ".") {
			return true
		}
	}
	return false
}

// splitLastWord applies the Cyrillic convention: the last word on each side
// is the family name. The two sides must have the same number of words.
func splitLastWord(original, latin string) (*NameRef, NameRef, error) {
	ow, lw := strings.Fields(original), strings.Fields(latin)
	if len(ow) != len(lw) {
		return nil, NameRef{}, &AmbiguityError{
			Name:   original + " [" + latin + "]",
			Reason: "word count differs between original and transliteration",
		}
	}
	if len(ow) < 2 {
		return nil, NameRef{}, &AmbiguityError{
			Name:   original + " [" + latin + "]",
			Reason: "single-word name",
		}
	}
	return &NameRef{
			Full:   original,
			Family: ow[len(ow)-1],
			Given:  strings.Join(ow[:len(ow)-1], " "),
		}, NameRef{
			Full:   latin,
			Family: lw[len(lw)-1],
			Given:  strings.Join(lw[:len(lw)-1], " "),
		}, nil
}

// splitFirstWord applies the Japanese convention: exactly two words on each
// side, the first of which is the family name.
func splitFirstWord(original, latin string) (*NameRef, NameRef, error) {
	ow, lw := strings.Fields(original), strings.Fields(latin)
	if len(ow) != 2 || len(lw) != 2 {
		return nil, NameRef{}, &AmbiguityError{
			Name:   original + " [" + latin + "]",
			Reason: "expected exactly two words on each side",
		}
	}
	return &NameRef{Full: original, Family: ow[0], Given: ow[1]},
		NameRef{Full: latin, Family: lw[0], Given: lw[1]}, nil
}

// splitChinese handles CJK ideograph names. Two space-separated words follow
// the Japanese convention (and are reported as Kanji); a single unspaced run
// of ideographs takes its first character as the family name and requires a
// two-word transliteration with the family name first.
func splitChinese(original, latin string) (*NameRef, NameRef, Script, error) {
	ow := strings.Fields(original)
	if len(ow) == 2 {
		orig, lat, err := splitFirstWord(original, latin)
		return orig, lat, Kanji, err
	}
	if len(ow) != 1 {
		return nil, NameRef{}, ScriptUnknown, &AmbiguityError{
			Name:   original + " [" + latin + "]",
			Reason: "expected one or two words of ideographs",
		}
	}
	orig, lat, err := splitLeadingRune(original, latin)
	return orig, lat, Chinese, err
}

// refineIdeographScript applies the two-word Kanji refinement to an
// explicitly brace-marked ideograph name, matching splitChinese.
func refineIdeographScript(script Script, visible string) Script {
	if script == Chinese && len(strings.Fields(visible)) == 2 {
		return Kanji
	}
	return script
}

// splitLeadingRune takes the first character of a single unspaced original
// word as the family name, requiring a two-word transliteration with the
// family name first. Shared by the Chinese and Hangul conventions.
func splitLeadingRune(original, latin string) (*NameRef, NameRef, error) {
	full := original + " [" + latin + "]"
	if strings.ContainsRune(original, ' ') {
		return nil, NameRef{}, &AmbiguityError{Name: full, Reason: "expected a single unspaced word"}
	}
	runes := []rune(original)
	if len(runes) < 2 {
		return nil, NameRef{}, &AmbiguityError{Name: full, Reason: "single-character name"}
	}
	lw := strings.Fields(latin)
	if len(lw) != 2 {
		return nil, NameRef{}, &AmbiguityError{
			Name:   full,
			Reason: "expected exactly two words in the transliteration",
		}
	}
	return &NameRef{Full: original, Family: string(runes[0]), Given: string(runes[1:])},
		NameRef{Full: latin, Family: lw[0], Given: lw[1]}, nil
}
