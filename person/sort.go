package person

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/runenames"
)

// The fold is driven by Unicode character names: "LATIN CAPITAL LETTER O
// WITH STROKE" folds to the character named "LATIN CAPITAL LETTER O".
// Deliberately not NFKD decomposition, which would also touch non-Latin
// scripts that must pass through unchanged.

var (
	baseRuneOnce   sync.Once
	baseRuneByName map[string]rune
)

// baseRunes maps Unicode character names to runes for the Latin and
// Latin-supplement blocks, which hold every base character a "WITH"-named
// character folds to.
func baseRunes() map[string]rune {
	baseRuneOnce.Do(func() {
		baseRuneByName = make(map[string]rune)
		for r := rune(0x20); r <= 0x2AF; r++ {
			name := runenames.Name(r)
			if name != "" && !strings.Contains(name, " WITH ") {
				baseRuneByName[name] = r
			}
		}
	})
	return baseRuneByName
}

// StripDiacritics removes diacritics from a string for locale-independent
// comparison, e.g. "Rune Strand Ødegård" -> "Rune Strand Odegard".
// Characters whose Unicode name has no "WITH <modifier>" suffix pass
// through unchanged, so non-Latin scripts are untouched.
func StripDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(stripDiacritic(r))
	}
	return b.String()
}

func stripDiacritic(r rune) rune {
	name := runenames.Name(r)
	i := strings.Index(name, " WITH ")
	if i < 0 {
		return r
	}
	if base, ok := baseRunes()[name[:i]]; ok {
		return base
	}
	return r
}

// SortKey is the total order key for author lists: the uppercased,
// diacritic-stripped family and given names.
type SortKey struct {
	Family string
	Given  string
}

// NewSortKey builds the sort key for a Latin name.
func NewSortKey(n NameRef) SortKey {
	return SortKey{
		Family: strings.ToUpper(StripDiacritics(n.Family)),
		Given:  strings.ToUpper(StripDiacritics(n.Given)),
	}
}

// Less orders keys by family name, then given name.
func (k SortKey) Less(other SortKey) bool {
	if k.Family != other.Family {
		return k.Family < other.Family
	}
	return k.Given < other.Given
}
