// Package person parses, classifies, resolves, and renders the multi-script
// person strings used throughout the glenglat dataset, such as
// "杉山 慎 [Sugiyama Shin] (0000-0001-5323-9558)" or "Emmanuel {Le Meur}".
package person

import "strings"

// ListSeparator delimits person tokens within a people field.
const ListSeparator = " | "

// OrcidPrefix is the canonical URI prefix for ORCID identifiers.
const OrcidPrefix = "https://orcid.org/"

// NameRef is a full name together with its family/given split.
type NameRef struct {
	Full   string
	Family string
	Given  string
}

// IdentifierKind distinguishes the identifier variants the grammar accepts.
type IdentifierKind int

const (
	// Orcid identifiers are stored in canonical URI form.
	Orcid IdentifierKind = iota
	// Email identifiers are stored as written.
	Email
)

// Identifier is the parenthesized identifier suffix of a person token.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

// Parsed is a person token decomposed by the grammar and the script
// heuristics. Original is non-nil iff the token carried a bracketed Latin
// transliteration, in which case Latin holds the bracketed text.
type Parsed struct {
	// Title is the visible name with brace marking stripped,
	// e.g. "杉山 慎 [Sugiyama Shin]" or "Emmanuel Le Meur".
	Title      string
	Original   *NameRef
	Latin      NameRef
	Script     Script
	Identifier *Identifier
}

// Resolved is the result of merging a parsed person with at most one
// registry entry.
type Resolved struct {
	Latin        NameRef
	OriginalName string
	ORCID        string
}

// Warning is a non-fatal event surfaced during resolution, such as a
// registry entry adopting a caller-supplied ORCID.
type Warning struct {
	Title   string
	Message string
}

// ORCIDValue returns the token's ORCID in canonical URI form, or "".
func (p *Parsed) ORCIDValue() string {
	if p.Identifier != nil && p.Identifier.Kind == Orcid {
		return p.Identifier.Value
	}
	return ""
}

// EmailValue returns the token's email identifier, or "".
func (p *Parsed) EmailValue() string {
	if p.Identifier != nil && p.Identifier.Kind == Email {
		return p.Identifier.Value
	}
	return ""
}

// DisplayName returns the name a person is known by: the original-script
// form when present, the Latin form otherwise.
func (p *Parsed) DisplayName() NameRef {
	if p.Original != nil {
		return *p.Original
	}
	return p.Latin
}

// SplitList splits a pipe-delimited people field into person tokens.
func SplitList(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	return strings.Split(field, ListSeparator)
}
