package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/glenglat/curator/datapackage"
	"github.com/glenglat/curator/format"
	"github.com/glenglat/curator/source"
)

var (
	inputFile       string
	outputFile      string
	datapackageFile string
	pretty          bool
	failFast        bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <format>",
	Short: "Render the source table in an output format",
	Long: `Render the source table in an output format.

Arguments:
  format    Output format (csl, essd, zenodo)

Input defaults to stdin, output defaults to stdout.

Examples:
  # Plain CSL-JSON with literal author names
  glenglat convert csl -i data/source.csv

  # ESSD submission CSL-JSON with parsed person names
  cat data/source.csv | glenglat convert essd

  # Zenodo deposition metadata
  glenglat convert zenodo -i data/source.csv --datapackage datapackage.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Source CSV file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().StringVar(&datapackageFile, "datapackage", "", "datapackage.yaml metadata file")
	convertCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	convertCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first malformed person token")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	serializer, err := format.Get(args[0])
	if err != nil {
		return err
	}

	var input io.Reader
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
	} else {
		input = os.Stdin
	}

	var output io.Writer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	sources, err := source.Read(input)
	if err != nil {
		return fmt.Errorf("reading source table: %w", err)
	}

	opts := &format.Options{
		Pretty:   pretty,
		FailFast: failFast,
	}
	if datapackageFile != "" {
		pkg, err := datapackage.Load(datapackageFile)
		if err != nil {
			return err
		}
		opts.Package = pkg
	}

	if err := serializer.Serialize(output, sources, opts); err != nil {
		return fmt.Errorf("serializing %s: %w", serializer.Name(), err)
	}
	return nil
}
