package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/glenglat/curator/datapackage"
	"github.com/glenglat/curator/person"
	"github.com/glenglat/curator/source"
)

var (
	authorsInput   string
	authorsPeople  string
	authorsPackage string
	authorsField   string
	authorsJoin    bool
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Render the deduplicated, sorted author list",
	Long: `Render the dataset's deduplicated author list.

Every person token in the chosen field is resolved strictly against the
curated person registry, deduplicated by identity, sorted by
diacritic-insensitive family name, and rendered with the Latin family name
uppercased, e.g. "杉山 慎 [SUGIYAMA Shin]".

Examples:
  glenglat authors -i data/source.csv --people data/person.csv
  glenglat authors -i data/source.csv --datapackage datapackage.yaml --field editor --join`,
	RunE: runAuthors,
}

func init() {
	authorsCmd.Flags().StringVarP(&authorsInput, "input", "i", "", "Source CSV file (default: stdin)")
	authorsCmd.Flags().StringVar(&authorsPeople, "people", "", "Curated person table CSV")
	authorsCmd.Flags().StringVar(&authorsPackage, "datapackage", "", "datapackage.yaml metadata file (registry fallback)")
	authorsCmd.Flags().StringVar(&authorsField, "field", "author", "People field to list (author, editor)")
	authorsCmd.Flags().BoolVar(&authorsJoin, "join", false, "Join names into a single English list")
}

func runAuthors(cmd *cobra.Command, args []string) error {
	registry, err := authorsRegistry()
	if err != nil {
		return err
	}

	input := os.Stdin
	if authorsInput != "" {
		f, err := os.Open(authorsInput)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		input = f
	}
	sources, err := source.Read(input)
	if err != nil {
		return fmt.Errorf("reading source table: %w", err)
	}

	var tokens []string
	for _, s := range sources {
		field := s.Author
		if authorsField == "editor" {
			field = s.Editor
		}
		tokens = append(tokens, person.SplitList(field)...)
	}

	names, warnings, err := person.RenderAuthorList(tokens, registry)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w.Message, "person", w.Title)
	}

	if authorsJoin {
		fmt.Println(person.JoinNames(names))
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func authorsRegistry() (*person.Registry, error) {
	if authorsPeople != "" {
		return loadRegistry(authorsPeople)
	}
	if authorsPackage != "" {
		pkg, err := datapackage.Load(authorsPackage)
		if err != nil {
			return nil, err
		}
		rows, err := pkg.RegistryRows()
		if err != nil {
			return nil, err
		}
		return person.Build(rows), nil
	}
	return nil, fmt.Errorf("authors requires --people or --datapackage for strict resolution")
}
