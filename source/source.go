// Package source models rows of the glenglat source table, the
// bibliographic records that people fields and citations are built from.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Source is one row of the source table. All fields are strings as stored;
// empty means absent.
type Source struct {
	ID               string
	Author           string
	Editor           string
	Year             string
	Type             string
	Title            string
	URL              string
	Language         string
	ContainerTitle   string
	Volume           string
	Issue            string
	Page             string
	Version          string
	CollectionTitle  string
	CollectionNumber string
	Publisher        string
}

// Read parses the source table from CSV. The first row is the header;
// unknown columns are ignored so dataset-internal columns can pass through.
func Read(r io.Reader) ([]Source, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing source CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	sources := make([]Source, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var s Source
		for i, value := range row {
			if i >= len(header) {
				break
			}
			setField(&s, strings.ToLower(strings.TrimSpace(header[i])), value)
		}
		sources = append(sources, s)
	}
	return sources, nil
}

func setField(s *Source, column, value string) {
	switch column {
	case "id":
		s.ID = value
	case "author":
		s.Author = value
	case "editor":
		s.Editor = value
	case "year":
		s.Year = value
	case "type":
		s.Type = value
	case "title":
		s.Title = value
	case "url":
		s.URL = value
	case "language":
		s.Language = value
	case "container_title":
		s.ContainerTitle = value
	case "volume":
		s.Volume = value
	case "issue":
		s.Issue = value
	case "page":
		s.Page = value
	case "version":
		s.Version = value
	case "collection_title":
		s.CollectionTitle = value
	case "collection_number":
		s.CollectionNumber = value
	case "publisher":
		s.Publisher = value
	}
}
