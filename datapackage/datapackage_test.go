package datapackage

import (
	"testing"
)

const testYAML = `
name: glenglat
title: Global englacial temperature database
version: 1.0.0
keywords: [glacier, temperature]
contributors:
  - title: 杉山 慎 [Sugiyama Shin]
    path: https://orcid.org/0000-0001-5323-9558
    email: sugiyama@example.jp
    role: [author]
  - title: Lander {Van Tricht}
    organization: Vrije Universiteit Brussel
    role: [contributor]
  - title: Jane Doe
    path: https://example.org/~jdoe
`

func TestParse(t *testing.T) {
	pkg, err := Parse([]byte(testYAML))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if pkg.Name != "glenglat" {
		t.Errorf("Name = %q, want %q", pkg.Name, "glenglat")
	}
	if len(pkg.Contributors) != 3 {
		t.Fatalf("len(Contributors) = %d, want 3", len(pkg.Contributors))
	}
	c := pkg.Contributors[0]
	if !c.HasRole("author") || c.HasRole("curator") {
		t.Errorf("roles = %v, want author only", c.Roles)
	}
	if got := c.ORCID(); got != "https://orcid.org/0000-0001-5323-9558" {
		t.Errorf("ORCID() = %q, want the orcid.org path", got)
	}
	// Non-ORCID paths are not identifiers.
	if got := pkg.Contributors[2].ORCID(); got != "" {
		t.Errorf("ORCID() = %q, want empty for non-orcid path", got)
	}
}

func TestRegistryRows(t *testing.T) {
	pkg, err := Parse([]byte(testYAML))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	rows, err := pkg.RegistryRows()
	if err != nil {
		t.Fatalf("RegistryRows returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	sugiyama := rows[0]
	if sugiyama.Title != "杉山 慎 [Sugiyama Shin]" {
		t.Errorf("Title = %q, want the visible title", sugiyama.Title)
	}
	if sugiyama.LatinFamily != "Sugiyama" || sugiyama.LatinGiven != "Shin" {
		t.Errorf("Latin split = %q/%q, want Sugiyama/Shin", sugiyama.LatinFamily, sugiyama.LatinGiven)
	}
	if sugiyama.LatinFull != "Sugiyama Shin" {
		t.Errorf("LatinFull = %q, want written order preserved", sugiyama.LatinFull)
	}
	if sugiyama.OriginalName != "杉山 慎" {
		t.Errorf("OriginalName = %q, want %q", sugiyama.OriginalName, "杉山 慎")
	}
	if len(sugiyama.Emails) != 1 || sugiyama.Emails[0] != "sugiyama@example.jp" {
		t.Errorf("Emails = %v, want the contributor email", sugiyama.Emails)
	}

	vanTricht := rows[1]
	if vanTricht.Title != "Lander Van Tricht" {
		t.Errorf("Title = %q, want brace-stripped title", vanTricht.Title)
	}
	if vanTricht.LatinFamily != "Van Tricht" {
		t.Errorf("LatinFamily = %q, want %q", vanTricht.LatinFamily, "Van Tricht")
	}
}

func TestRegistryRowsCollectsErrors(t *testing.T) {
	pkg := &Package{Contributors: []Contributor{
		{Title: "Jon Ove Van Pelt"},
		{Title: "Jane Doe"},
		{Title: "John Smith (12345)"},
	}}
	if _, err := pkg.RegistryRows(); err == nil {
		t.Error("RegistryRows succeeded, want batch error for ambiguous and malformed titles")
	}
}
