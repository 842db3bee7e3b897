package main

import (
	"github.com/osmike/cronpick/internal/domain"
	"github.com/osmike/cronpick/internal/picker"

	"github.com/spf13/cobra"
)

// pickFlags mirror the picker controls. Only flags given on the command line
// are applied, so a stored schedule can be edited one control at a time.
type pickFlags struct {
	recurrence string
	hour       int
	minute     int
	meridiem   string
	days       []int
	dayNumber  int
	every      int
	filter     string
	weekday    string
	ordinal    string
}

func (f *pickFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.recurrence, "type", "t", "", "Recurrence (Daily, Weekly, Monthly)")
	cmd.Flags().IntVar(&f.hour, "hour", 0, "Hour of the run, 0-23 or 1-12 with --hour-format 12")
	cmd.Flags().IntVar(&f.minute, "minute", 0, "Minute of the run (0-59)")
	cmd.Flags().StringVar(&f.meridiem, "meridiem", "", "AM or PM with --hour-format 12")
	cmd.Flags().IntSliceVar(&f.days, "days", nil, "Weekdays of a weekly run, Monday=1 .. Sunday=7 (comma-separated)")
	cmd.Flags().IntVar(&f.dayNumber, "day", 0, "Day of the month (1-31)")
	cmd.Flags().IntVar(&f.every, "every", 0, "Run every N months (1-12)")
	cmd.Flags().StringVar(&f.filter, "filter", "", "Monthly mode (day, weekday)")
	cmd.Flags().StringVar(&f.weekday, "weekday", "", "Weekday of a monthly run by weekday (1-7 or MON..SUN)")
	cmd.Flags().StringVar(&f.ordinal, "ordinal", "", "Occurrence of --weekday in the month (#1, #2, #3, L)")

	cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(domain.Daily), string(domain.Weekly), string(domain.Monthly)}, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.RegisterFlagCompletionFunc("ordinal", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		values := make([]string, 0, len(domain.Ordinals))
		for _, o := range domain.Ordinals {
			values = append(values, string(o))
		}
		return values, cobra.ShellCompDirectiveNoFileComp
	})
}

// changed reports whether any picker control was given.
func (f *pickFlags) changed(cmd *cobra.Command) bool {
	for _, name := range []string{"type", "hour", "minute", "meridiem", "days", "day", "every", "filter", "weekday", "ordinal"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply drives p with the given flags in control order. It stops at the first
// rejected edit.
func (f *pickFlags) apply(cmd *cobra.Command, p *picker.Picker) error {
	steps := []struct {
		flag string
		fn   func() error
	}{
		{"type", func() error { return p.SetType(domain.RecurrenceType(f.recurrence)) }},
		{"days", func() error { return p.SetDaysOfWeek(f.days) }},
		{"day", func() error { return p.SetDayNumber(f.dayNumber) }},
		{"every", func() error { return p.SetMonthRepeater(f.every) }},
		{"filter", func() error { return p.SetDayFilter(domain.DayFilter(f.filter)) }},
		{"weekday", func() error { return p.SetDayOfWeek(f.weekday) }},
		{"ordinal", func() error { return p.SetOrdinal(domain.Ordinal(f.ordinal)) }},
		{"hour", func() error { return p.SetHours(f.hour) }},
		{"meridiem", func() error { return p.SetMeridiem(domain.Meridiem(f.meridiem)) }},
		{"minute", func() error { return p.SetMinutes(f.minute) }},
	}
	for _, s := range steps {
		if !cmd.Flags().Changed(s.flag) {
			continue
		}
		if err := s.fn(); err != nil {
			return err
		}
	}
	return nil
}
