package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/glenglat/curator/person"
)

// loadRegistry reads the curated person table CSV and builds the registry.
// Recognized columns: title, matches, emails, orcid, latin_family,
// latin_given, original_name. List columns are pipe-delimited.
func loadRegistry(path string) (*person.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening person table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing person table: %w", err)
	}
	if len(rows) == 0 {
		return person.Build(nil), nil
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cell := func(row []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	personRows := make([]person.Row, 0, len(rows)-1)
	for _, row := range rows[1:] {
		personRows = append(personRows, person.Row{
			Title:        cell(row, "title"),
			Matches:      person.SplitList(cell(row, "matches")),
			Emails:       person.SplitList(cell(row, "emails")),
			ORCID:        cell(row, "orcid"),
			LatinFamily:  cell(row, "latin_family"),
			LatinGiven:   cell(row, "latin_given"),
			OriginalName: cell(row, "original_name"),
		})
	}
	return person.Build(personRows), nil
}
