package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/docforge/convertd/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the document format table",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "EXT\tCATEGORY\tCODE\tDESCRIPTION")
		for _, ext := range format.Extensions() {
			category := "output only"
			if c, err := format.Classify(ext); err == nil {
				category = c.String()
			}
			code, _ := format.OutputCode(ext)
			_, description := format.SaveTarget(ext)
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", ext, category, code, description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
