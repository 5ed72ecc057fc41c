package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glenglat/curator/person"
	"github.com/glenglat/curator/source"
)

var (
	validateInput  string
	validatePeople string
	validateStrict bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate person fields and registry uniqueness",
	Long: `Validate every person token in the source table's author and editor
fields against the person grammar and the script-splitting heuristics, and
check that title variants and emails are unique across the curated person
registry.

All errors are collected and reported together so curators can fix many
records in one pass.

Examples:
  glenglat validate -i data/source.csv --people data/person.csv
  glenglat validate -i data/source.csv --strict`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Source CSV file (default: stdin)")
	validateCmd.Flags().StringVar(&validatePeople, "people", "", "Curated person table CSV")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Require every person to resolve against the registry")
}

func runValidate(cmd *cobra.Command, args []string) error {
	input := os.Stdin
	if validateInput != "" {
		f, err := os.Open(validateInput)
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

	var registry *person.Registry
	c := &person.Collector{}
	if validatePeople != "" {
		registry, err = loadRegistry(validatePeople)
		if err != nil {
			return err
		}
		for _, uerr := range registry.CheckUnique() {
			c.Add(uerr)
		}
	}

	for _, s := range sources {
		for _, field := range []string{s.Author, s.Editor} {
			for _, token := range person.SplitList(field) {
				if registry != nil {
					_, _, err := person.ResolveToken(token, registry, validateStrict)
					c.Add(wrapSourceError(s.ID, err))
					continue
				}
				_, err := person.ParsePerson(token)
				c.Add(wrapSourceError(s.ID, err))
			}
		}
	}

	if err := c.Err(); err != nil {
		var batch *person.BatchError
		if errors.As(err, &batch) {
			fmt.Fprintf(os.Stderr, "validation failed with %d errors:\n", len(batch.Errors))
			for _, e := range batch.Errors {
				fmt.Fprintf(os.Stderr, "  %v\n", e)
			}
		}
		return fmt.Errorf("validation failed")
	}
	fmt.Println("ok")
	return nil
}

func wrapSourceError(id string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("source %s: %w", id, err)
}
