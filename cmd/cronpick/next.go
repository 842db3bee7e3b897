package main

import (
	"github.com/spf13/cobra"
)

func newNextCmd(a *app) *cobra.Command {
	var (
		output string
		count  int
	)

	cmd := &cobra.Command{
		Use:   "next EXPRESSION",
		Short: "List the next runs of a cron expression",
		Long: `List the next runs of a cron expression of the configured dialect,
in the timezone set by preview.timezone.

Quartz expressions are read the way a Quartz scheduler reads them, so
weekday numbers count from Sunday=1.

Examples:
  cronpick next "30 9 * * 1,5"
  cronpick next -d quartz "0 0 12 ? 1/1 2#1 *" -n 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := newPrinter(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Preview.Count
			}

			times, err := a.preview(args[0], count)
			if err != nil {
				return err
			}
			return pr.printTimes(times)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of runs (default preview.count)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, yaml, json)")
	return cmd
}
