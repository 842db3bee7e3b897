package formatter

import (
	"fmt"
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
	"unicode"
)

// Quartz field positions: "second minute hour dom month dow year".
const (
	qzSecond = iota
	qzMinute
	qzHour
	qzDom
	qzMonth
	qzDow
	qzYear
)

// QuartzFormatter speaks the 7-field enterprise scheduler grammar.
//
// Exactly one of dom and dow carries "?" and the seconds field is always "0",
// so schedules finer than a minute cannot be expressed.
type QuartzFormatter struct{}

// NewQuartz returns a formatter for the 7-field grammar.
func NewQuartz() *QuartzFormatter {
	return &QuartzFormatter{}
}

func (f *QuartzFormatter) Dialect() domain.Dialect {
	return domain.Quartz
}

func (f *QuartzFormatter) Parse(expr string) (domain.Descriptor, error) {
	d := domain.NewDescriptor()
	if err := f.ParseInto(expr, &d); err != nil {
		return domain.Descriptor{}, err
	}
	return d, nil
}

// ParseInto classifies expr and copies what it determines into d.
// The seconds field is read but not kept.
//
// Classification, first match wins:
//   - month "*", dow "?", year "*" -> Daily.
//   - month "*", dow not "?"        -> Weekly, DaysOfWeek from dow.
//   - month not "*"                 -> Monthly, MonthRepeater from the step of
//     month ("N/M"); by day when dow is "?", otherwise by ordinal weekday
//     where dow is a weekday followed by its ordinal ("FRIL", "MON#2", "5#1").
//
// Anything else is rejected with ErrInvalidExpression.
func (f *QuartzFormatter) ParseInto(expr string, d *domain.Descriptor) error {
	fields, err := splitFields(expr, 7)
	if err != nil {
		return err
	}

	next := d.Clone()

	if next.Minutes, err = parseNumber("minutes", fields[qzMinute], domain.MinMinute, domain.MaxMinute); err != nil {
		return err
	}
	if next.Hours, err = parseNumber("hours", fields[qzHour], domain.MinHour, domain.MaxHour); err != nil {
		return err
	}

	month, dow, year := fields[qzMonth], fields[qzDow], fields[qzYear]
	switch {
	case month == domain.Wildcard && dow == domain.NoValue && year == domain.Wildcard:
		next.Type = domain.Daily

	case month == domain.Wildcard && dow != domain.NoValue:
		days, err := parseList("days of week", dow, domain.MinWeekday, domain.MaxWeekday)
		if err != nil {
			return err
		}
		next.Type = domain.Weekly
		next.DaysOfWeek = days

	case month != domain.Wildcard:
		repeater, err := parseStep("month repeater", month, domain.MinMonthRepeater, domain.MaxMonthRepeater)
		if err != nil {
			return err
		}
		next.Type = domain.Monthly
		next.MonthRepeater = repeater

		if dow == domain.NoValue {
			day, err := parseNumber("day number", fields[qzDom], domain.MinDayNumber, domain.MaxDayNumber)
			if err != nil {
				return err
			}
			next.DayFilter = domain.DayFilterDay
			next.DayNumber = day
			break
		}

		weekday, ordinal, err := splitOrdinalWeekday(dow)
		if err != nil {
			return err
		}
		next.DayFilter = domain.DayFilterWeekday
		next.DayOfWeek = weekday
		next.OrdCondition = ordinal

	default:
		return errs.New(errs.ErrInvalidExpression, fmt.Sprintf("%q does not describe a daily, weekly or monthly schedule", expr))
	}

	*d = next
	return nil
}

// splitOrdinalWeekday splits a dow field such as "FRIL" or "MON#1" into its
// weekday and ordinal parts. A leading digit is a one character weekday
// ("5#1"), anything else is a three letter token.
func splitOrdinalWeekday(field string) (string, domain.Ordinal, error) {
	n := 3
	if field != "" && unicode.IsDigit(rune(field[0])) {
		n = 1
	}
	if len(field) < n {
		return "", "", errs.New(errs.ErrInvalidExpression, fmt.Sprintf("day of week: %q", field))
	}

	weekday, ordinal := field[:n], domain.Ordinal(field[n:])
	if err := domain.ValidateWeekday(weekday); err != nil {
		return "", "", err
	}
	if err := domain.ValidateOrdinal(ordinal); err != nil {
		return "", "", err
	}
	return weekday, ordinal, nil
}

// Build encodes d as "second minute hour dom month dow year".
//
//   - Daily                -> "0 {m} {h} 1/1 * ? *"
//   - Weekly               -> "0 {m} {h} ? * {days} *" with days sorted ascending
//   - Monthly by day       -> "0 {m} {h} {day} 1/{repeater} ? *"
//   - Monthly by weekday   -> "0 {m} {h} ? 1/{repeater} {weekday}{ordinal} *"
func (f *QuartzFormatter) Build(d domain.Descriptor) (string, error) {
	switch d.Type {
	case domain.Daily:
		return fmt.Sprintf("0 %d %d 1/1 * ? *", d.Minutes, d.Hours), nil
	case domain.Weekly:
		return fmt.Sprintf("0 %d %d ? * %s *", d.Minutes, d.Hours, d.JoinedDaysOfWeek()), nil
	case domain.Monthly:
		switch d.DayFilter {
		case domain.DayFilterDay:
			return fmt.Sprintf("0 %d %d %d 1/%d ? *", d.Minutes, d.Hours, d.DayNumber, d.MonthRepeater), nil
		case domain.DayFilterWeekday:
			return fmt.Sprintf("0 %d %d ? 1/%d %s%s *", d.Minutes, d.Hours, d.MonthRepeater, d.DayOfWeek, d.OrdCondition), nil
		}
		return "", errs.New(errs.ErrUnsupportedCombination, fmt.Sprintf("day filter %q", d.DayFilter))
	}
	return "", errs.New(errs.ErrUnsupportedCombination, fmt.Sprintf("recurrence type %q", d.Type))
}
