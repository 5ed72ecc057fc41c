package person

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	orcidRegex = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)
	emailRegex = regexp.MustCompile(`^[^@\s()\[\]|]+@[^@\s()\[\]|]+\.[A-Za-z]+$`)
)

// phrase is one side of a person token after brace extraction.
type phrase struct {
	visible string // text with brace marking stripped
	family  string // brace-marked family span, "" if unmarked
	given   string // text outside the brace span
	braced  bool
}

// ParsePerson parses a raw person token into its structured parts.
//
// The grammar is:
//
//	person := phrase (" [" phrase "]")? (" (" (orcid | email) ")")?
//
// The first phrase is the name (assumed Latin when no bracketed
// transliteration follows); the bracketed phrase is the Latin
// transliteration. Curly braces inside a phrase mark the family-name span
// and override script-heuristic inference; if one side uses braces the
// other side must too.
func ParsePerson(token string) (*Parsed, error) {
	name, latin, hasBracket, id, err := tokenize(token)
	if err != nil {
		return nil, err
	}

	if !hasBracket {
		return parseUnbracketed(name, id)
	}

	p := &Parsed{
		Title:      name.visible + " [" + latin.visible + "]",
		Identifier: id,
	}
	if name.braced {
		p.Original = braceSplit(name)
		p.Latin = *braceSplit(latin)
		script, err := Classify(name.visible)
		if err != nil {
			return nil, err
		}
		p.Script = refineIdeographScript(script, name.visible)
		return p, nil
	}

	original, latinRef, script, err := InferNameParts(name.visible, latin.visible)
	if err != nil {
		return nil, err
	}
	p.Original = original
	p.Latin = latinRef
	p.Script = script
	return p, nil
}

// ParseTitle applies the grammar without any script inference, returning
// the visible title (braces stripped) and the identifier. Registry lookup
// uses this so that curated names resolve even when their heuristic split
// would be ambiguous.
func ParseTitle(token string) (string, *Identifier, error) {
	name, latin, hasBracket, id, err := tokenize(token)
	if err != nil {
		return "", nil, err
	}
	if hasBracket {
		return name.visible + " [" + latin.visible + "]", id, nil
	}
	return name.visible, id, nil
}

// tokenize applies the person grammar, yielding the two phrases and the
// identifier with brace consistency already enforced.
func tokenize(token string) (name, latin phrase, hasBracket bool, id *Identifier, err error) {
	if token != strings.TrimSpace(token) || token == "" {
		return phrase{}, phrase{}, false, nil, &ParseError{Token: token, Reason: "empty or surrounded by whitespace"}
	}
	rest, id, err := splitIdentifier(token)
	if err != nil {
		return phrase{}, phrase{}, false, nil, err
	}
	namePart, latinPart, hasBracket, err := splitBracket(token, rest)
	if err != nil {
		return phrase{}, phrase{}, false, nil, err
	}
	name, err = parsePhrase(token, namePart)
	if err != nil {
		return phrase{}, phrase{}, false, nil, err
	}
	if !hasBracket {
		return name, phrase{}, false, id, nil
	}
	latin, err = parsePhrase(token, latinPart)
	if err != nil {
		return phrase{}, phrase{}, false, nil, err
	}
	if name.braced != latin.braced {
		return phrase{}, phrase{}, false, nil, &ParseError{
			Token:  token,
			Reason: "brace marking must be used on both the original and Latin side",
		}
	}
	return name, latin, true, id, nil
}

// parseUnbracketed handles tokens without a transliteration: the single
// phrase is the Latin name.
func parseUnbracketed(name phrase, id *Identifier) (*Parsed, error) {
	p := &Parsed{Title: name.visible, Identifier: id}
	script, err := Classify(name.visible)
	if err != nil {
		return nil, err
	}
	p.Script = refineIdeographScript(script, name.visible)
	if name.braced {
		p.Latin = *braceSplit(name)
		return p, nil
	}
	_, latinRef, script, err := InferNameParts("", name.visible)
	if err != nil {
		return nil, err
	}
	p.Latin = latinRef
	p.Script = script
	return p, nil
}

// splitIdentifier strips a trailing " (orcid)" or " (email)" suffix.
func splitIdentifier(token string) (string, *Identifier, error) {
	if !strings.HasSuffix(token, ")") {
		if strings.ContainsAny(token, "()") {
			return "", nil, &ParseError{Token: token, Reason: "parentheses are only allowed around a trailing identifier"}
		}
		return token, nil, nil
	}
	i := strings.LastIndex(token, " (")
	if i < 0 {
		return "", nil, &ParseError{Token: token, Reason: "malformed identifier suffix"}
	}
	rest, value := token[:i], token[i+2:len(token)-1]
	if strings.ContainsAny(rest, "()") {
		return "", nil, &ParseError{Token: token, Reason: "parentheses are only allowed around a trailing identifier"}
	}
	switch {
	case orcidRegex.MatchString(value):
		return rest, &Identifier{Kind: Orcid, Value: OrcidPrefix + value}, nil
	case emailRegex.MatchString(value):
		return rest, &Identifier{Kind: Email, Value: value}, nil
	}
	return "", nil, &ParseError{
		Token:  token,
		Reason: fmt.Sprintf("identifier %q is neither an ORCID nor an email", value),
	}
}

// splitBracket strips a trailing " [phrase]" transliteration.
func splitBracket(token, rest string) (name, latin string, ok bool, err error) {
	if !strings.HasSuffix(rest, "]") {
		if strings.ContainsAny(rest, "[]") {
			return "", "", false, &ParseError{Token: token, Reason: "brackets are only allowed around a trailing transliteration"}
		}
		return rest, "", false, nil
	}
	i := strings.LastIndex(rest, " [")
	if i < 0 {
		return "", "", false, &ParseError{Token: token, Reason: "malformed transliteration brackets"}
	}
	name, latin = rest[:i], rest[i+2:len(rest)-1]
	if strings.ContainsAny(name, "[]") || strings.ContainsAny(latin, "[]") {
		return "", "", false, &ParseError{Token: token, Reason: "malformed transliteration brackets"}
	}
	return name, latin, true, nil
}

// parsePhrase validates a phrase and extracts its brace-marked family span.
func parsePhrase(token, s string) (phrase, error) {
	if s == "" {
		return phrase{}, &ParseError{Token: token, Reason: "empty phrase"}
	}
	if strings.ContainsAny(s, "()[]|") {
		return phrase{}, &ParseError{Token: token, Reason: fmt.Sprintf("phrase %q contains a delimiter", s)}
	}
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return phrase{}, &ParseError{Token: token, Reason: fmt.Sprintf("phrase %q has leading or trailing whitespace", s)}
	}

	open := strings.Count(s, "{")
	closed := strings.Count(s, "}")
	if open == 0 && closed == 0 {
		return phrase{visible: s}, nil
	}
	if open != 1 || closed != 1 {
		return phrase{}, &ParseError{Token: token, Reason: fmt.Sprintf("phrase %q has unbalanced braces", s)}
	}
	i, j := strings.Index(s, "{"), strings.Index(s, "}")
	if j < i || j == i+1 {
		return phrase{}, &ParseError{Token: token, Reason: fmt.Sprintf("phrase %q has an empty or inverted brace span", s)}
	}
	// The given name is everything outside the brace span; using the span
	// positions keeps a family name intact even when it recurs as a
	// substring elsewhere in the name (e.g. "Ann {An}").
	family := s[i+1 : j]
	visible := s[:i] + family + s[j+1:]
	given := strings.Join(strings.Fields(s[:i]+" "+s[j+1:]), " ")
	return phrase{visible: visible, family: family, given: given, braced: true}, nil
}

// braceSplit builds a NameRef from an explicitly brace-marked phrase:
// the marked span is the family name, everything outside it the given name.
func braceSplit(ph phrase) *NameRef {
	return &NameRef{Full: ph.visible, Family: ph.family, Given: ph.given}
}

// ParseList parses a pipe-delimited people field, collecting an error for
// every malformed token rather than stopping at the first.
func ParseList(field string) ([]*Parsed, error) {
	tokens := SplitList(field)
	persons := make([]*Parsed, 0, len(tokens))
	c := &Collector{}
	for _, token := range tokens {
		p, err := ParsePerson(token)
		if err != nil {
			c.Add(err)
			continue
		}
		persons = append(persons, p)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return persons, nil
}
