package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glenglat/curator/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available output formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range format.List() {
			s, err := format.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s %s\n", name, s.Description())
		}
		return nil
	},
}
