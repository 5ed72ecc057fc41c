package person

import "unicode"

// Script identifies the writing system of a name string.
type Script int

const (
	// ScriptUnknown is the zero value, returned alongside classification errors.
	ScriptUnknown Script = iota
	Latin
	Cyrillic
	// Chinese covers unspaced runs of CJK ideographs.
	Chinese
	// Kanji covers space-separated CJK ideographs (Japanese convention).
	Kanji
	Kana
	Hangul
)

// String returns the script name.
func (s Script) String() string {
	switch s {
	case Latin:
		return "latin"
	case Cyrillic:
		return "cyrillic"
	case Chinese:
		return "chinese"
	case Kanji:
		return "kanji"
	case Kana:
		return "kana"
	case Hangul:
		return "hangul"
	default:
		return "unknown"
	}
}

// Classify determines the script family of a name string from the Unicode
// range membership of its letters. Non-letter runes (spaces, periods,
// hyphens, apostrophes) are ignored. Exactly one script is returned;
// a letter outside the five supported families is an UnsupportedScriptError.
//
// Mixed Japanese text containing any Kana is classified as Kana. Pure
// ideograph text is classified as Chinese; InferNameParts refines two-word
// ideograph names to Kanji.
func Classify(s string) (Script, error) {
	var hasLatin, hasCyrillic, hasHan, hasKana, hasHangul bool
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		switch {
		case unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
			hasKana = true
		case unicode.Is(unicode.Han, r):
			hasHan = true
		case unicode.Is(unicode.Hangul, r):
			hasHangul = true
		case unicode.Is(unicode.Cyrillic, r):
			hasCyrillic = true
		case unicode.Is(unicode.Latin, r):
			hasLatin = true
		default:
			return ScriptUnknown, &UnsupportedScriptError{Text: s}
		}
	}
	if !hasLetter {
		return ScriptUnknown, &UnsupportedScriptError{Text: s}
	}
	switch {
	case hasKana:
		return Kana, nil
	case hasHan:
		return Chinese, nil
	case hasHangul:
		return Hangul, nil
	case hasCyrillic:
		return Cyrillic, nil
	case hasLatin:
		return Latin, nil
	}
	return ScriptUnknown, &UnsupportedScriptError{Text: s}
}
