package person

import (
	"fmt"
	"sort"
	"strings"
)

// Row is one curated person record, as read from the person table or the
// datapackage contributor list.
type Row struct {
	// Title is the canonical person token, without identifier suffix.
	Title string
	// Matches lists additional title variants the person is known by.
	Matches []string
	Emails  []string
	// ORCID may be given bare or as a https://orcid.org/ URI.
	ORCID       string
	LatinFamily string
	LatinGiven  string
	// LatinFull is the Latin name as written (family position preserved,
	// e.g. "Sugiyama Shin"). Derived from Title when empty.
	LatinFull    string
	OriginalName string
}

// Entry is a curated person in the built registry.
type Entry struct {
	TitleVariants []string
	Emails        []string
	ORCID         string
	Latin         NameRef
	OriginalName  string
}

// Registry indexes curated persons by ORCID, email, and title variant.
// It is built once per run and read-only afterward, so it is safe to share
// across goroutines without locking.
type Registry struct {
	entries []*Entry
	byOrcid map[string][]*Entry
	byEmail map[string][]*Entry
	byTitle map[string][]*Entry
}

// Build constructs a registry from curated rows. Duplicate keys are not an
// error at construction time: they surface as MultipleMatches conflicts at
// resolution, and CheckUnique reports them for curation.
func Build(rows []Row) *Registry {
	r := &Registry{
		byOrcid: make(map[string][]*Entry),
		byEmail: make(map[string][]*Entry),
		byTitle: make(map[string][]*Entry),
	}
	for _, row := range rows {
		latin := NameRef{Family: row.LatinFamily, Given: row.LatinGiven, Full: row.LatinFull}
		if latin.Full == "" {
			latin.Full = latinFullFromTitle(row.Title)
		}
		if latin.Full == "" {
			latin.Full = strings.TrimSpace(latin.Given + " " + latin.Family)
		}
		e := &Entry{
			Emails:       row.Emails,
			ORCID:        normalizeORCID(row.ORCID),
			Latin:        latin,
			OriginalName: row.OriginalName,
		}
		if row.Title != "" {
			e.TitleVariants = append(e.TitleVariants, visibleTitle(row.Title))
		}
		for _, match := range row.Matches {
			e.TitleVariants = append(e.TitleVariants, visibleTitle(match))
		}
		r.entries = append(r.entries, e)
		if e.ORCID != "" {
			r.byOrcid[e.ORCID] = append(r.byOrcid[e.ORCID], e)
		}
		for _, email := range e.Emails {
			r.byEmail[email] = append(r.byEmail[email], e)
		}
		for _, title := range e.TitleVariants {
			r.byTitle[title] = append(r.byTitle[title], e)
		}
	}
	return r
}

// Len returns the number of registry entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// CheckUnique reports every title variant and email claimed by more than
// one registry entry.
func (r *Registry) CheckUnique() []error {
	var errs []error
	for _, key := range sortedKeys(r.byTitle) {
		if len(r.byTitle[key]) > 1 {
			errs = append(errs, fmt.Errorf("title variant %q claimed by %d registry entries", key, len(r.byTitle[key])))
		}
	}
	for _, key := range sortedKeys(r.byEmail) {
		if len(r.byEmail[key]) > 1 {
			errs = append(errs, fmt.Errorf("email %q claimed by %d registry entries", key, len(r.byEmail[key])))
		}
	}
	return errs
}

func sortedKeys(m map[string][]*Entry) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Resolve looks up a person by ORCID, email, and exact title variant, in
// that priority order. Zero matches returns (nil, nil, nil): the caller
// decides whether "not found" is fatal. More than one distinct matched
// entry is a MultipleMatches conflict. If the matched entry carries a
// different ORCID than the caller supplied, resolution fails with
// OrcidMismatch; if the entry has none, the caller's ORCID is adopted and
// reported as a warning.
func (r *Registry) Resolve(title, orcid, email string) (*Resolved, []Warning, error) {
	orcid = normalizeORCID(orcid)

	var matched []*Entry
	add := func(entries []*Entry) {
		for _, e := range entries {
			seen := false
			for _, m := range matched {
				if m == e {
					seen = true
					break
				}
			}
			if !seen {
				matched = append(matched, e)
			}
		}
	}
	if orcid != "" {
		add(r.byOrcid[orcid])
	}
	if email != "" {
		add(r.byEmail[email])
	}
	if title != "" {
		add(r.byTitle[title])
	}

	switch len(matched) {
	case 0:
		return nil, nil, nil
	case 1:
	default:
		return nil, nil, &ConflictError{
			Kind:    MultipleMatches,
			Title:   title,
			Details: fmt.Sprintf("%d entries match the supplied keys", len(matched)),
		}
	}

	entry := matched[0]
	resolved := &Resolved{
		Latin:        entry.Latin,
		OriginalName: entry.OriginalName,
		ORCID:        entry.ORCID,
	}
	var warnings []Warning
	if orcid != "" {
		switch entry.ORCID {
		case orcid:
		case "":
			resolved.ORCID = orcid
			warnings = append(warnings, Warning{
				Title:   title,
				Message: fmt.Sprintf("adopted ORCID %s supplied by caller", orcid),
			})
		default:
			return nil, nil, &ConflictError{
				Kind:    OrcidMismatch,
				Title:   title,
				Details: fmt.Sprintf("supplied %s but registry has %s", orcid, entry.ORCID),
			}
		}
	}
	return resolved, warnings, nil
}

// ResolveToken parses a person token and resolves it against the registry.
// When the registry has no match, strict mode fails with NotFoundError;
// otherwise the token's own parts are returned, with script inference
// applied only at this point.
func ResolveToken(token string, r *Registry, strict bool) (*Resolved, []Warning, error) {
	title, id, err := ParseTitle(token)
	if err != nil {
		return nil, nil, err
	}
	var orcid, email string
	if id != nil {
		switch id.Kind {
		case Orcid:
			orcid = id.Value
		case Email:
			email = id.Value
		}
	}
	resolved, warnings, err := r.Resolve(title, orcid, email)
	if err != nil {
		return nil, nil, err
	}
	if resolved != nil {
		return resolved, warnings, nil
	}
	if strict {
		return nil, nil, &NotFoundError{Title: title}
	}
	p, err := ParsePerson(token)
	if err != nil {
		return nil, nil, err
	}
	resolved = &Resolved{Latin: p.Latin, ORCID: orcid}
	if p.Original != nil {
		resolved.OriginalName = p.Original.Full
	}
	return resolved, nil, nil
}

// visibleTitle normalizes a curated title to the brace-stripped form that
// ParseTitle yields, so lookups match regardless of brace marking.
func visibleTitle(title string) string {
	visible, _, err := ParseTitle(title)
	if err != nil {
		return title
	}
	return visible
}

// latinFullFromTitle extracts the Latin side of a curated title: the
// bracketed transliteration when present, the whole title otherwise.
func latinFullFromTitle(title string) string {
	name, latin, hasBracket, _, err := tokenize(title)
	if err != nil {
		return ""
	}
	if hasBracket {
		return latin.visible
	}
	return name.visible
}

// normalizeORCID reduces an ORCID to canonical URI form.
func normalizeORCID(orcid string) string {
	if orcid == "" {
		return ""
	}
	return OrcidPrefix + strings.TrimPrefix(orcid, OrcidPrefix)
}
