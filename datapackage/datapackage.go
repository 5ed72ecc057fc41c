// Package datapackage loads the dataset's datapackage.yaml metadata:
// package identity and the curated contributor list that feeds the person
// registry.
package datapackage

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/glenglat/curator/person"
)

// Contributor is one entry of the datapackage contributor list.
type Contributor struct {
	// Title is a person token without identifier suffix,
	// e.g. "杉山 慎 [Sugiyama Shin]".
	Title string `yaml:"title"`
	// Path is the contributor's ORCID URI, when known.
	Path         string   `yaml:"path,omitempty"`
	Email        string   `yaml:"email,omitempty"`
	Organization string   `yaml:"organization,omitempty"`
	Roles        []string `yaml:"role,omitempty"`
}

// Package is the subset of datapackage.yaml the curation engine consumes.
type Package struct {
	Name         string        `yaml:"name"`
	Title        string        `yaml:"title,omitempty"`
	Description  string        `yaml:"description,omitempty"`
	Version      string        `yaml:"version,omitempty"`
	Keywords     []string      `yaml:"keywords,omitempty"`
	Contributors []Contributor `yaml:"contributors,omitempty"`
}

// Load reads and parses a datapackage.yaml file.
func Load(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading datapackage: %w", err)
	}
	return Parse(data)
}

// Parse parses datapackage YAML content.
func Parse(data []byte) (*Package, error) {
	var pkg Package
	if err := yaml.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing datapackage YAML: %w", err)
	}
	return &pkg, nil
}

// HasRole reports whether the contributor carries the given role.
func (c Contributor) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ORCID returns the contributor's ORCID URI, or "".
func (c Contributor) ORCID() string {
	if strings.Contains(c.Path, "orcid.org") {
		return c.Path
	}
	return ""
}

// RegistryRows converts the contributor list into curated person rows for
// the registry. Contributors whose titles fail the person grammar or whose
// splits are ambiguous are reported together in a single batch error.
func (p *Package) RegistryRows() ([]person.Row, error) {
	rows := make([]person.Row, 0, len(p.Contributors))
	c := &person.Collector{}
	for _, contributor := range p.Contributors {
		parsed, err := person.ParsePerson(contributor.Title)
		if err != nil {
			c.Add(err)
			continue
		}
		row := person.Row{
			Title:       parsed.Title,
			ORCID:       contributor.ORCID(),
			LatinFamily: parsed.Latin.Family,
			LatinGiven:  parsed.Latin.Given,
			LatinFull:   parsed.Latin.Full,
		}
		if contributor.Email != "" {
			row.Emails = []string{contributor.Email}
		}
		if parsed.Original != nil {
			row.OriginalName = parsed.Original.Full
		}
		rows = append(rows, row)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
