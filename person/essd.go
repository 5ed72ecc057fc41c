package person

import (
	"sort"
	"strings"
)

// AbbreviateGivenName replaces each space- or hyphen-separated word with
// its first letter and a period, preserving the separators:
// "Jane-Doe" -> "J.-D.". Single-letter words, words already ending in a
// period, and words not in Latin or Cyrillic script pass through unchanged.
func AbbreviateGivenName(name string) string {
	script, err := Classify(name)
	abbreviable := err == nil && (script == Latin || script == Cyrillic)
	parts := strings.Split(name, " ")
	for i, part := range parts {
		words := strings.Split(part, "-")
		for j, word := range words {
			runes := []rune(word)
			if abbreviable && len(runes) > 1 && runes[len(runes)-1] != '.' {
				words[j] = string(runes[0]) + "."
			}
		}
		parts[i] = strings.Join(words, "-")
	}
	return strings.Join(parts, " ")
}

// RenderESSDName renders a name the way the ESSD journal expects:
// "{family}, {given initials}" for Latin and Cyrillic names, the full name
// unchanged otherwise.
func RenderESSDName(n NameRef) string {
	script, err := Classify(n.Full)
	if err == nil && (script == Latin || script == Cyrillic) {
		return n.Family + ", " + AbbreviateGivenName(n.Given)
	}
	return n.Full
}

// ESSDAuthor formats an author for ESSD: the Latin family/given pair for
// the bibliographic name object, and an ESSD rendering of the name the
// author is known by.
func ESSDAuthor(p *Parsed) (Name, string) {
	return Name{Family: p.Latin.Family, Given: p.Latin.Given}, RenderESSDName(p.DisplayName())
}

// ESSDAuthors formats an author list for ESSD. When any author has an
// original-script name, the second return value is the English-joined name
// list to prefix into the title; it is "" when all names are Latin-only.
func ESSDAuthors(persons []*Parsed) ([]Name, string) {
	authors := make([]Name, 0, len(persons))
	names := make([]string, 0, len(persons))
	latinOnly := true
	for _, p := range persons {
		author, rendered := ESSDAuthor(p)
		authors = append(authors, author)
		names = append(names, rendered)
		if p.Original != nil {
			latinOnly = false
		}
	}
	if latinOnly {
		return authors, ""
	}
	return authors, JoinNames(names)
}

// ESSDEditor formats an editor for ESSD: Latin family/given when the name
// is Latin-only, otherwise a literal combining the ESSD renderings of the
// Latin and original forms.
func ESSDEditor(p *Parsed) Name {
	if p.Original == nil {
		return Name{Family: p.Latin.Family, Given: p.Latin.Given}
	}
	return Name{Literal: RenderESSDName(p.Latin) + " (" + RenderESSDName(*p.Original) + ")"}
}

// JoinNames joins names into an English list: one name stands alone, two
// are joined with "and", three or more use the Oxford comma.
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}

// RenderAuthorList resolves person tokens strictly against the registry,
// deduplicates by resolved identity, sorts by diacritic-insensitive family
// and given name, and renders each author as
// "{original} [{latin with the family name uppercased}]". Errors are
// collected across the whole batch.
func RenderAuthorList(tokens []string, r *Registry) ([]string, []Warning, error) {
	type author struct {
		resolved *Resolved
		key      SortKey
	}
	var authors []author
	var warnings []Warning
	seen := make(map[string]bool)
	c := &Collector{}
	for _, token := range tokens {
		resolved, w, err := ResolveToken(token, r, true)
		if err != nil {
			c.Add(err)
			continue
		}
		warnings = append(warnings, w...)
		id := identityKey(resolved)
		if seen[id] {
			continue
		}
		seen[id] = true
		authors = append(authors, author{resolved: resolved, key: NewSortKey(resolved.Latin)})
	}
	if err := c.Err(); err != nil {
		return nil, nil, err
	}

	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].key.Less(authors[j].key)
	})

	var names []string
	rendered := make(map[string]bool)
	for _, a := range authors {
		name := renderListedName(a.resolved)
		if rendered[name] {
			continue
		}
		rendered[name] = true
		names = append(names, name)
	}
	return names, warnings, nil
}

func identityKey(r *Resolved) string {
	if r.ORCID != "" {
		return r.ORCID
	}
	return r.Latin.Full + "\x00" + r.OriginalName
}

// renderListedName renders a resolved person for an author list, with the
// family name uppercased within its position in the Latin name.
func renderListedName(r *Resolved) string {
	latin := UppercaseFamily(r.Latin)
	if r.OriginalName != "" {
		return r.OriginalName + " [" + latin + "]"
	}
	return latin
}

// UppercaseFamily uppercases the family name within the full Latin name,
// e.g. "Rune Strand Ødegård" with family "Ødegård" ->
// "Rune Strand ØDEGÅRD". The family name is matched only at word
// boundaries, so a family that also prefixes another word stays intact
// ("Ann An" with family "An" -> "Ann AN"). The registry guarantees the
// family name occurs exactly once as a whole word; if it does not occur,
// the name is returned unchanged.
func UppercaseFamily(n NameRef) string {
	if n.Family == "" {
		return n.Full
	}
	for i := 0; i <= len(n.Full)-len(n.Family); {
		k := strings.Index(n.Full[i:], n.Family)
		if k < 0 {
			break
		}
		start := i + k
		end := start + len(n.Family)
		if (start == 0 || n.Full[start-1] == ' ') && (end == len(n.Full) || n.Full[end] == ' ') {
			return n.Full[:start] + strings.ToUpper(n.Family) + n.Full[end:]
		}
		i = start + 1
	}
	return n.Full
}
