package csl

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/glenglat/curator/format"
	"github.com/glenglat/curator/person"
	"github.com/glenglat/curator/source"
)

const doiPrefix = "https://doi.org/"

// Serialize writes source records as a CSL-JSON array. Person-field errors
// are collected across every record before failing, unless FailFast is set.
func (f *Format) Serialize(w io.Writer, sources []source.Source, opts *format.Options) error {
	if opts == nil {
		opts = format.NewOptions()
	}

	items := make([]JSONItem, 0, len(sources))
	c := &person.Collector{FailFast: opts.FailFast}
	for _, s := range sources {
		item, err := f.sourceToItem(s)
		if err != nil {
			if ferr := c.Add(fmt.Errorf("source %s: %w", s.ID, err)); ferr != nil {
				return ferr
			}
			continue
		}
		items = append(items, item)
	}
	if err := c.Err(); err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if opts.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(items)
}

func (f *Format) sourceToItem(s source.Source) (JSONItem, error) {
	year, err := strconv.Atoi(s.Year)
	if err != nil {
		return JSONItem{}, fmt.Errorf("invalid year %q", s.Year)
	}

	item := JSONItem{
		ID:               s.ID,
		Issued:           &JSONDate{DateParts: [][]int{{year}}},
		Type:             s.Type,
		Title:            s.Title,
		URL:              s.URL,
		Language:         s.Language,
		ContainerTitle:   s.ContainerTitle,
		Volume:           s.Volume,
		Issue:            s.Issue,
		Page:             s.Page,
		Version:          s.Version,
		CollectionTitle:  s.CollectionTitle,
		CollectionNumber: s.CollectionNumber,
		Publisher:        s.Publisher,
	}

	if f.ESSD {
		return f.essdItem(item, s)
	}

	authors, err := person.ParseList(s.Author)
	if err != nil {
		return JSONItem{}, err
	}
	for _, p := range authors {
		item.Author = append(item.Author, nameToJSON(person.RenderBibliographyName(p, person.LiteralMode)))
	}
	editors, err := person.ParseList(s.Editor)
	if err != nil {
		return JSONItem{}, err
	}
	for _, p := range editors {
		item.Editor = append(item.Editor, nameToJSON(person.RenderBibliographyName(p, person.LiteralMode)))
	}
	return item, nil
}

// essdItem applies the ESSD submission rendering: parsed author and editor
// names, non-Latin author names prefixed into the title, DOI preferred over
// doi.org URLs, and a citation-key note.
func (f *Format) essdItem(item JSONItem, s source.Source) (JSONItem, error) {
	// ESSD's CSL dialect spells personal communications with an underscore
	// and requires a title.
	if item.Type == "personal-communication" {
		item.Type = "personal_communication"
		if item.Title == "" {
			item.Title = "Personal communication"
		}
	}

	authors, err := person.ParseList(s.Author)
	if err != nil {
		return JSONItem{}, err
	}
	names, namesInTitle := person.ESSDAuthors(authors)
	for _, n := range names {
		item.Author = append(item.Author, nameToJSON(n))
	}
	if namesInTitle != "" {
		item.Title = "(" + namesInTitle + "): " + item.Title
	}

	editors, err := person.ParseList(s.Editor)
	if err != nil {
		return JSONItem{}, err
	}
	item.Editor = nil
	for _, p := range editors {
		item.Editor = append(item.Editor, nameToJSON(person.ESSDEditor(p)))
	}

	if strings.HasPrefix(item.URL, doiPrefix) {
		item.DOI = strings.TrimPrefix(item.URL, doiPrefix)
		item.URL = ""
	}
	item.CitationKey = s.ID
	item.Note = "Citation key: " + s.ID
	return item, nil
}

func nameToJSON(n person.Name) JSONName {
	return JSONName{
		Family:  n.Family,
		Given:   n.Given,
		Literal: n.Literal,
	}
}

// JSON types for CSL-JSON output. Only truthy fields are emitted.

type JSONItem struct {
	ID               string     `json:"id"`
	CitationKey      string     `json:"citation-key,omitempty"`
	Author           []JSONName `json:"author,omitempty"`
	Issued           *JSONDate  `json:"issued,omitempty"`
	Type             string     `json:"type"`
	Title            string     `json:"title,omitempty"`
	DOI              string     `json:"DOI,omitempty"`
	URL              string     `json:"URL,omitempty"`
	Language         string     `json:"language,omitempty"`
	ContainerTitle   string     `json:"container-title,omitempty"`
	Volume           string     `json:"volume,omitempty"`
	Issue            string     `json:"issue,omitempty"`
	Page             string     `json:"page,omitempty"`
	Version          string     `json:"version,omitempty"`
	Editor           []JSONName `json:"editor,omitempty"`
	CollectionTitle  string     `json:"collection-title,omitempty"`
	CollectionNumber string     `json:"collection-number,omitempty"`
	Publisher        string     `json:"publisher,omitempty"`
	Note             string     `json:"note,omitempty"`
}

type JSONName struct {
	Family  string `json:"family,omitempty"`
	Given   string `json:"given,omitempty"`
	Literal string `json:"literal,omitempty"`
}

type JSONDate struct {
	DateParts [][]int `json:"date-parts,omitempty"`
}
