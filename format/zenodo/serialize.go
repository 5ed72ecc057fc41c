package zenodo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/glenglat/curator/datapackage"
	"github.com/glenglat/curator/format"
	"github.com/glenglat/curator/person"
	"github.com/glenglat/curator/source"
)

// Record is a Zenodo creator or contributor.
type Record struct {
	// Name is in "Family, Given" form.
	Name        string `json:"name"`
	ORCID       string `json:"orcid,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
	// Type is the Zenodo contributor type, set for contributors only.
	Type string `json:"type,omitempty"`
}

// Deposition is the Zenodo deposition metadata document.
type Deposition struct {
	UploadType      string   `json:"upload_type"`
	PublicationDate string   `json:"publication_date"`
	Title           string   `json:"title"`
	Version         string   `json:"version,omitempty"`
	Language        string   `json:"language"`
	Keywords        []string `json:"keywords,omitempty"`
	AccessRight     string   `json:"access_right"`
	License         string   `json:"license"`
	Creators        []Record `json:"creators"`
	Contributors    []Record `json:"contributors,omitempty"`
	References      []string `json:"references,omitempty"`
}

// Attribute distinguishes the two Zenodo person list attributes.
type Attribute int

const (
	Creators Attribute = iota
	Contributors
)

// Serialize writes a Zenodo deposition built from the datapackage metadata
// and the source table. Options.Package is required.
func (f *Format) Serialize(w io.Writer, sources []source.Source, opts *format.Options) error {
	if opts == nil {
		opts = format.NewOptions()
	}
	if opts.Package == nil {
		return fmt.Errorf("zenodo serialization requires datapackage metadata")
	}

	deposition, err := Metadata(opts.Package, sources, opts.FailFast)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if opts.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(deposition)
}

// Metadata builds the deposition document. Contributor and source errors
// are collected across the whole batch unless failFast is set.
func Metadata(pkg *datapackage.Package, sources []source.Source, failFast bool) (*Deposition, error) {
	d := &Deposition{
		UploadType:      "dataset",
		PublicationDate: time.Now().Format("2006-01-02"),
		Title:           pkg.Name + ": " + pkg.Title,
		Version:         pkg.Version,
		Language:        "eng",
		Keywords:        pkg.Keywords,
		AccessRight:     "open",
		License:         "cc-by-4.0",
	}

	c := &person.Collector{FailFast: failFast}
	for _, contributor := range pkg.Contributors {
		attribute := Contributors
		if contributor.HasRole("author") {
			attribute = Creators
		}
		record, err := ContributorRecord(contributor, attribute)
		if err != nil {
			if ferr := c.Add(err); ferr != nil {
				return nil, ferr
			}
			continue
		}
		if attribute == Creators {
			d.Creators = append(d.Creators, record)
		} else {
			d.Contributors = append(d.Contributors, record)
		}
	}

	for _, s := range sources {
		// Personal communications are not citable references.
		if s.Type == "personal-communication" {
			continue
		}
		reference, err := Reference(s)
		if err != nil {
			if ferr := c.Add(fmt.Errorf("source %s: %w", s.ID, err)); ferr != nil {
				return nil, ferr
			}
			continue
		}
		d.References = append(d.References, reference)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// ContributorRecord projects a datapackage contributor into a Zenodo
// creator or contributor record. The name is inverted to "Family, Given"
// from the parsed Latin form; ambiguous titles must carry brace marking in
// the datapackage.
func ContributorRecord(c datapackage.Contributor, attribute Attribute) (Record, error) {
	p, err := person.ParsePerson(c.Title)
	if err != nil {
		return Record{}, err
	}
	record := Record{
		Name:        invertedName(p.Latin),
		ORCID:       strings.TrimPrefix(c.ORCID(), person.OrcidPrefix),
		Affiliation: c.Organization,
	}
	if attribute == Contributors {
		switch {
		case c.HasRole("curator"):
			record.Type = "DataCurator"
		case c.HasRole("contributor"):
			record.Type = "DataCollector"
		}
	}
	return record, nil
}

func invertedName(n person.NameRef) string {
	if n.Given == "" {
		return n.Family
	}
	return n.Family + ", " + n.Given
}

// Reference renders a source as a Zenodo plain-text reference string:
// "{authors} ({year}): {title}. Version {version}. {container}. ..."
func Reference(s source.Source) (string, error) {
	if s.Author == "" || s.Year == "" || s.Title == "" {
		return "", fmt.Errorf("reference requires author, year, and title")
	}
	authors, err := peopleList(s.Author)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %s.", authors, s.Year, s.Title)
	if s.Version != "" {
		fmt.Fprintf(&b, " Version %s.", s.Version)
	}
	if s.ContainerTitle != "" {
		fmt.Fprintf(&b, " %s.", s.ContainerTitle)
	}
	if s.Editor != "" {
		editors, err := peopleList(s.Editor)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " %s (editors).", editors)
	}
	if s.Volume != "" || s.Issue != "" || s.Page != "" {
		if s.Volume != "" {
			fmt.Fprintf(&b, " Volume %s", s.Volume)
		}
		if s.Issue != "" {
			if s.Volume != "" {
				fmt.Fprintf(&b, " (%s)", s.Issue)
			} else {
				fmt.Fprintf(&b, " Issue %s", s.Issue)
			}
		}
		if s.Page != "" {
			if s.Volume != "" || s.Issue != "" {
				fmt.Fprintf(&b, ": %s", s.Page)
			} else {
				fmt.Fprintf(&b, " Pages %s", s.Page)
			}
		}
		b.WriteString(".")
	}
	if s.CollectionTitle != "" {
		fmt.Fprintf(&b, " %s", s.CollectionTitle)
		if s.CollectionNumber != "" {
			fmt.Fprintf(&b, " %s", s.CollectionNumber)
		}
		b.WriteString(".")
	}
	if s.Publisher != "" {
		fmt.Fprintf(&b, " %s.", s.Publisher)
	}
	if s.URL != "" {
		fmt.Fprintf(&b, " %s", s.URL)
	}
	return b.String(), nil
}

// peopleList renders a pipe-delimited people field as an English list of
// visible titles.
func peopleList(field string) (string, error) {
	persons, err := person.ParseList(field)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(persons))
	for _, p := range persons {
		names = append(names, p.Title)
	}
	return person.JoinNames(names), nil
}
