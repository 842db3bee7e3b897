package formatter

import (
	"fmt"
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
)

// Standard field positions: "minute hour dom month dow [year]".
const (
	stdMinute = iota
	stdHour
	stdDom
	stdMonth
	stdDow
)

// StandardFormatter speaks the 5-field cron grammar. A sixth trailing field
// is accepted on parse and ignored; Build always emits five fields.
//
// The grammar has no way to express an ordinal weekday of the month, so a
// Monthly descriptor with DayFilterWeekday cannot be built.
type StandardFormatter struct{}

// NewStandard returns a formatter for the 5-field grammar.
func NewStandard() *StandardFormatter {
	return &StandardFormatter{}
}

func (f *StandardFormatter) Dialect() domain.Dialect {
	return domain.Standard
}

func (f *StandardFormatter) Parse(expr string) (domain.Descriptor, error) {
	d := domain.NewDescriptor()
	if err := f.ParseInto(expr, &d); err != nil {
		return domain.Descriptor{}, err
	}
	return d, nil
}

// ParseInto classifies expr and copies what it determines into d.
//
// Classification, first match wins:
//   - dom, month and dow all "*"   -> Daily.
//   - dom "*" and dow not "*"      -> Weekly, DaysOfWeek from dow.
//   - dom not "*"                  -> Monthly by day, DayNumber from dom,
//     MonthRepeater from the step of month ("*/N").
//
// Anything else (e.g. "0 0 * 1 *") is rejected with ErrInvalidExpression.
func (f *StandardFormatter) ParseInto(expr string, d *domain.Descriptor) error {
	fields, err := splitFields(expr, 5, 6)
	if err != nil {
		return err
	}

	next := d.Clone()

	if next.Minutes, err = parseNumber("minutes", fields[stdMinute], domain.MinMinute, domain.MaxMinute); err != nil {
		return err
	}
	if next.Hours, err = parseNumber("hours", fields[stdHour], domain.MinHour, domain.MaxHour); err != nil {
		return err
	}

	dom, month, dow := fields[stdDom], fields[stdMonth], fields[stdDow]
	switch {
	case dom == domain.Wildcard && month == domain.Wildcard && dow == domain.Wildcard:
		next.Type = domain.Daily

	case dom == domain.Wildcard && dow != domain.Wildcard:
		days, err := parseList("days of week", dow, domain.MinWeekday, domain.MaxWeekday)
		if err != nil {
			return err
		}
		next.Type = domain.Weekly
		next.DaysOfWeek = days

	case dom != domain.Wildcard:
		day, err := parseNumber("day number", dom, domain.MinDayNumber, domain.MaxDayNumber)
		if err != nil {
			return err
		}
		repeater, err := parseStep("month repeater", month, domain.MinMonthRepeater, domain.MaxMonthRepeater)
		if err != nil {
			return err
		}
		next.Type = domain.Monthly
		next.DayFilter = domain.DayFilterDay
		next.DayNumber = day
		next.MonthRepeater = repeater

	default:
		return errs.New(errs.ErrInvalidExpression, fmt.Sprintf("%q does not describe a daily, weekly or monthly schedule", expr))
	}

	*d = next
	return nil
}

// Build encodes d as "minute hour dom month dow".
//
//   - Daily   -> "{m} {h} * * *"
//   - Weekly  -> "{m} {h} * * {days}" with days sorted ascending; an empty set
//     leaves the last field empty.
//   - Monthly -> "{m} {h} {day} */{repeater} *"
func (f *StandardFormatter) Build(d domain.Descriptor) (string, error) {
	switch d.Type {
	case domain.Daily:
		return fmt.Sprintf("%d %d * * *", d.Minutes, d.Hours), nil
	case domain.Weekly:
		return fmt.Sprintf("%d %d * * %s", d.Minutes, d.Hours, d.JoinedDaysOfWeek()), nil
	case domain.Monthly:
		switch d.DayFilter {
		case domain.DayFilterDay:
			return fmt.Sprintf("%d %d %d */%d *", d.Minutes, d.Hours, d.DayNumber, d.MonthRepeater), nil
		case domain.DayFilterWeekday:
			return "", errs.New(errs.ErrUnsupportedCombination, "standard dialect has no ordinal weekday of month")
		}
		return "", errs.New(errs.ErrUnsupportedCombination, fmt.Sprintf("day filter %q", d.DayFilter))
	}
	return "", errs.New(errs.ErrUnsupportedCombination, fmt.Sprintf("recurrence type %q", d.Type))
}
