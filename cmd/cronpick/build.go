package main

import (
	"fmt"
	"github.com/osmike/cronpick/internal/picker"
	"github.com/osmike/cronpick/internal/preview"
	"github.com/osmike/cronpick/internal/store"
	"time"

	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		pf       pickFlags
		output   string
		previewN int
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a cron expression from picker controls",
		Long: `Build a cron expression by setting the picker controls with flags.
Controls that are not given keep their defaults (Daily at 00:00).

Examples:
  # Every Tuesday and Thursday at 18:00
  cronpick build --type Weekly --days 2,4 --hour 18

  # Last Friday of every second month at 10:15, Quartz dialect
  cronpick build -d quartz --type Monthly --filter weekday --weekday FRI --ordinal L --every 2 --hour 10 --minute 15

  # 9 PM daily with the 12-hour clock, with the next 3 runs
  cronpick build --hour-format 12 --hour 9 --meridiem PM --preview 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := newPrinter(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			f, err := a.formatter()
			if err != nil {
				return err
			}

			p, err := picker.New(store.NewMemory(""), f,
				picker.WithHourFormat(a.cfg.HourFormat),
				picker.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			defer p.Destroy()

			if err := pf.apply(cmd, p); err != nil {
				return err
			}

			state := p.State()
			result := expressionResult{
				Dialect:    p.Dialect(),
				Expression: p.Expression(),
				Descriptor: &state,
			}
			if previewN > 0 {
				result.Next, err = a.preview(p.Expression(), previewN)
				if err != nil {
					return err
				}
			}
			return pr.printExpression(result)
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text, yaml, json)")
	cmd.Flags().IntVar(&previewN, "preview", 0, "Also list the next N runs")
	return cmd
}

// preview lists the next n runs of expr from now in the configured timezone.
func (a *app) preview(expr string, n int) ([]time.Time, error) {
	loc, err := time.LoadLocation(a.cfg.Preview.Timezone)
	if err != nil {
		return nil, fmt.Errorf("preview timezone %q: %w", a.cfg.Preview.Timezone, err)
	}
	pv, err := preview.For(a.cfg.Dialect)
	if err != nil {
		return nil, err
	}
	return pv.Next(expr, a.now().In(loc), n)
}
