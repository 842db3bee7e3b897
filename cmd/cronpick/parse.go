package main

import (
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse EXPRESSION",
		Short: "Decode a cron expression into picker controls",
		Long: `Decode a cron expression of the configured dialect and print the
schedule it selects.

Examples:
  cronpick parse "0 18 * * 2,4"
  cronpick parse -d quartz "0 15 10 ? 1/2 FRIL *" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == outputText {
				output = outputYAML
			}
			pr, err := newPrinter(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			f, err := a.formatter()
			if err != nil {
				return err
			}

			d, err := f.Parse(args[0])
			if err != nil {
				return err
			}
			return pr.printDescriptor(d)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "Output format (yaml, json)")
	return cmd
}
