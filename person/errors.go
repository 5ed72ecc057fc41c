package person

import (
	"fmt"
	"strings"
)

// ParseError reports a token that does not match the person grammar,
// including inconsistent brace marking between the original and Latin sides.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid person token %q: %s", e.Token, e.Reason)
}

// AmbiguityError reports a name whose family/given split cannot be
// determined under the documented script heuristics.
type AmbiguityError struct {
	Name   string
	Reason string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous name %q: %s", e.Name, e.Reason)
}

// UnsupportedScriptError reports text outside the supported Unicode ranges.
type UnsupportedScriptError struct {
	Text string
}

func (e *UnsupportedScriptError) Error() string {
	return fmt.Sprintf("unsupported script in %q", e.Text)
}

// ConflictKind distinguishes registry resolution conflicts.
type ConflictKind int

const (
	// MultipleMatches means more than one registry entry matched the
	// combined lookup keys.
	MultipleMatches ConflictKind = iota
	// OrcidMismatch means the supplied ORCID disagrees with the ORCID
	// already on the matched registry entry.
	OrcidMismatch
)

// ConflictError reports a registry resolution conflict.
type ConflictError struct {
	Kind    ConflictKind
	Title   string
	Details string
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case OrcidMismatch:
		return fmt.Sprintf("ORCID conflict for %q: %s", e.Title, e.Details)
	default:
		return fmt.Sprintf("multiple registry matches for %q: %s", e.Title, e.Details)
	}
}

// NotFoundError reports a person missing from the registry when strict
// resolution is required.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("person %q not found in registry", e.Title)
}

// BatchError aggregates per-token errors from a batch operation so curators
// can fix many records in one pass.
type BatchError struct {
	Errors []error
}

func (e *BatchError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	lines := make([]string, 0, len(e.Errors)+1)
	lines = append(lines, fmt.Sprintf("%d errors:", len(e.Errors)))
	for _, err := range e.Errors {
		lines = append(lines, "  "+err.Error())
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	return e.Errors
}
