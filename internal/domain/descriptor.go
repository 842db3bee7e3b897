package domain

import (
	"fmt"
	errs "github.com/osmike/cronpick/internal/error"
	"sort"
	"strconv"
)

// Descriptor is the in-memory representation of the schedule a user picked.
//
// It is never persisted directly; only its encoded cron expression is.
// Field groups that do not belong to Type are ignored by formatters and may
// hold stale values from an earlier selection.
type Descriptor struct {
	// Type selects which of the field groups below is meaningful.
	Type RecurrenceType `yaml:"type" json:"type"`

	// Hours is the hour of the run on a 24-hour clock (0-23).
	Hours int `yaml:"hours" json:"hours"`

	// Minutes is the minute of the run (0-59).
	Minutes int `yaml:"minutes" json:"minutes"`

	// DaysOfWeek is the set of weekdays (Monday=1 .. Sunday=7) used by Weekly.
	// Order is insignificant; formatters emit it sorted ascending.
	DaysOfWeek []int `yaml:"days_of_week" json:"days_of_week"`

	// DayNumber is the day of the month (1-31) used by Monthly with DayFilterDay.
	DayNumber int `yaml:"day_number" json:"day_number"`

	// MonthRepeater is the "every N months" stride (1-12) used by Monthly.
	MonthRepeater int `yaml:"month_repeater" json:"month_repeater"`

	// DayFilter selects the Monthly sub-mode.
	DayFilter DayFilter `yaml:"day_filter" json:"day_filter"`

	// DayOfWeek is the weekday used by Monthly with DayFilterWeekday.
	// It holds either a number "1".."7" or a Quartz weekday token such as "FRI".
	DayOfWeek string `yaml:"day_of_week" json:"day_of_week"`

	// OrdCondition selects the occurrence of DayOfWeek inside the month.
	OrdCondition Ordinal `yaml:"ord_condition" json:"ord_condition"`
}

// NewDescriptor returns a Descriptor populated with the defaults a fresh
// picker starts from: Daily at 00:00.
func NewDescriptor() Descriptor {
	return Descriptor{
		Type:          Daily,
		Hours:         0,
		Minutes:       0,
		DaysOfWeek:    []int{},
		DayNumber:     1,
		MonthRepeater: 1,
		DayFilter:     DayFilterDay,
		DayOfWeek:     "1",
		OrdCondition:  First,
	}
}

// Clone returns a deep copy of the descriptor.
func (d Descriptor) Clone() Descriptor {
	c := d
	c.DaysOfWeek = append([]int{}, d.DaysOfWeek...)
	return c
}

// SortedDaysOfWeek returns DaysOfWeek sorted ascending with duplicates removed.
// The receiver is not modified.
func (d Descriptor) SortedDaysOfWeek() []int {
	days := append([]int{}, d.DaysOfWeek...)
	sort.Ints(days)

	out := days[:0]
	for i, v := range days {
		if i > 0 && v == days[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}

// JoinedDaysOfWeek renders SortedDaysOfWeek as a comma separated list.
// An empty set renders as an empty string.
func (d Descriptor) JoinedDaysOfWeek() string {
	var s string
	for i, v := range d.SortedDaysOfWeek() {
		if i > 0 {
			s += ListSeparator
		}
		s += strconv.Itoa(v)
	}
	return s
}

// HasDayOfWeek reports whether day is part of DaysOfWeek.
func (d Descriptor) HasDayOfWeek(day int) bool {
	for _, v := range d.DaysOfWeek {
		if v == day {
			return true
		}
	}
	return false
}

// Validate checks every field that is meaningful for the descriptor's Type.
//
// Returns:
//   - nil if the descriptor can be encoded.
//   - ErrUnknownType, ErrFieldRange, ErrUnknownDayFilter, ErrUnknownOrdinal or
//     ErrInvalidWeekday wrapped with the offending value otherwise.
func (d Descriptor) Validate() error {
	if err := ValidateType(d.Type); err != nil {
		return err
	}
	if err := ValidateRange("hours", d.Hours, MinHour, MaxHour); err != nil {
		return err
	}
	if err := ValidateRange("minutes", d.Minutes, MinMinute, MaxMinute); err != nil {
		return err
	}

	switch d.Type {
	case Weekly:
		for _, day := range d.DaysOfWeek {
			if err := ValidateRange("days of week", day, MinWeekday, MaxWeekday); err != nil {
				return err
			}
		}
	case Monthly:
		if err := ValidateRange("month repeater", d.MonthRepeater, MinMonthRepeater, MaxMonthRepeater); err != nil {
			return err
		}
		switch d.DayFilter {
		case DayFilterDay:
			return ValidateRange("day number", d.DayNumber, MinDayNumber, MaxDayNumber)
		case DayFilterWeekday:
			if err := ValidateWeekday(d.DayOfWeek); err != nil {
				return err
			}
			return ValidateOrdinal(d.OrdCondition)
		default:
			return errs.New(errs.ErrUnknownDayFilter, string(d.DayFilter))
		}
	}
	return nil
}

// ValidateType returns ErrUnknownType unless t is Daily, Weekly or Monthly.
func ValidateType(t RecurrenceType) error {
	switch t {
	case Daily, Weekly, Monthly:
		return nil
	}
	return errs.New(errs.ErrUnknownType, fmt.Sprintf("%q", t))
}

// ValidateDayFilter returns ErrUnknownDayFilter unless f is day or weekday.
func ValidateDayFilter(f DayFilter) error {
	switch f {
	case DayFilterDay, DayFilterWeekday:
		return nil
	}
	return errs.New(errs.ErrUnknownDayFilter, fmt.Sprintf("%q", f))
}

// ValidateOrdinal returns ErrUnknownOrdinal unless o is one of Ordinals.
func ValidateOrdinal(o Ordinal) error {
	for _, v := range Ordinals {
		if v == o {
			return nil
		}
	}
	return errs.New(errs.ErrUnknownOrdinal, fmt.Sprintf("%q", o))
}

// ValidateWeekday accepts a weekday number "1".."7" or a three letter
// weekday token ("MON".."SUN").
func ValidateWeekday(w string) error {
	if n, err := strconv.Atoi(w); err == nil {
		if n < MinWeekday || n > MaxWeekday {
			return errs.New(errs.ErrInvalidWeekday, w)
		}
		return nil
	}
	if WeekdayNumber(w) == 0 {
		return errs.New(errs.ErrInvalidWeekday, fmt.Sprintf("%q", w))
	}
	return nil
}

// WeekdayNumber maps a weekday token to its number (Monday=1), or 0 if the
// token is unknown.
func WeekdayNumber(token string) int {
	for i := MinWeekday; i <= MaxWeekday; i++ {
		if WeekdayTokens[i] == token {
			return i
		}
	}
	return 0
}

// ValidateRange returns ErrFieldRange when v is outside [min, max].
func ValidateRange(name string, v, min, max int) error {
	if v < min || v > max {
		return errs.New(errs.ErrFieldRange, fmt.Sprintf("%s: %d not in %d-%d", name, v, min, max))
	}
	return nil
}
