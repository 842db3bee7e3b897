// Package cronpick turns a recurrence picked through UI controls into a cron
// expression a scheduler backend can consume, and back.
//
// It exposes one shared schedule model, the Descriptor, and two codecs for it:
//   - Standard: the 5-field grammar "minute hour dom month dow" (a sixth field is tolerated on parse).
//   - Quartz:   the 7-field grammar "second minute hour dom month dow year".
//
// On top of the codecs a headless Picker keeps a live Descriptor for one
// session, validates every edit, and publishes the rebuilt expression to a
// Host (memory, SQLite or Redis) and an optional change callback.
//
// Example usage:
//
//	f, _ := cronpick.NewFormatter(cronpick.Quartz)
//
//	p, _ := cronpick.NewPicker(cronpick.NewMemoryHost(""), f,
//		cronpick.WithOnChange(func(expr string) { fmt.Println(expr) }),
//	)
//
//	p.SetType(cronpick.Weekly)   // 0 0 0 ? *  *
//	p.ToggleDayOfWeek(5)         // 0 0 0 ? * 5 *
//	p.SetHours(18)               // 0 0 18 ? * 5 *
package cronpick

import (
	"github.com/osmike/cronpick/internal/domain"
	"github.com/osmike/cronpick/internal/formatter"
	"github.com/osmike/cronpick/internal/monitoring"
	"github.com/osmike/cronpick/internal/picker"
	"github.com/osmike/cronpick/internal/preview"
	"github.com/osmike/cronpick/internal/store"
)

// Descriptor is the in-memory schedule a user picked.
//
// Fields:
//   - Type: Daily, Weekly or Monthly; selects which group below is meaningful.
//   - Hours, Minutes: time of the run on a 24-hour clock.
//   - DaysOfWeek: weekdays of a Weekly schedule, Monday=1 .. Sunday=7.
//   - DayNumber: day of the month of a Monthly schedule filtered by day.
//   - MonthRepeater: "every N months" stride of a Monthly schedule.
//   - DayFilter: Monthly sub-mode, by day or by ordinal weekday.
//   - DayOfWeek, OrdCondition: weekday and ordinal of a Monthly schedule filtered by weekday.
type Descriptor = domain.Descriptor

// RecurrenceType is the recurrence class of a Descriptor.
type RecurrenceType = domain.RecurrenceType

// DayFilter is the Monthly sub-mode of a Descriptor.
type DayFilter = domain.DayFilter

// Ordinal selects the first, second, third or last occurrence of a weekday in a month.
type Ordinal = domain.Ordinal

// Dialect names a cron grammar.
type Dialect = domain.Dialect

// HourFormat is the clock a Picker presents hours with.
type HourFormat = domain.HourFormat

// Meridiem is the AM/PM marker of the 12-hour clock.
type Meridiem = domain.Meridiem

// Formatter encodes and decodes a Descriptor in one dialect.
//
// Methods:
//   - Parse(expr): decode into a fresh Descriptor.
//   - ParseInto(expr, d): decode into d, keeping fields the expression does not determine; d is untouched on error.
//   - Build(d): encode; unrepresentable descriptors yield ErrUnsupportedCombination.
type Formatter = domain.Formatter

// Host stores the current expression of a Picker.
type Host = domain.Host

// Monitoring records the expressions a Picker publishes.
type Monitoring = domain.Monitoring

// Change describes one published expression.
type Change = domain.ChangeDTO

// Picker is a headless recurrence picker bound to one Host and one dialect.
type Picker = picker.Picker

// PickerOption configures a Picker.
type PickerOption = picker.Option

// View is the renderable state of a Picker.
type View = picker.View

// Choice is one entry of a select control.
type Choice = picker.Choice

// Previewer lists upcoming fire times of an expression.
type Previewer = preview.Previewer

const (
	Daily   = domain.Daily
	Weekly  = domain.Weekly
	Monthly = domain.Monthly

	DayFilterDay     = domain.DayFilterDay
	DayFilterWeekday = domain.DayFilterWeekday

	First  = domain.First
	Second = domain.Second
	Third  = domain.Third
	Last   = domain.Last

	Standard = domain.Standard
	Quartz   = domain.Quartz

	Format24 = domain.Format24
	Format12 = domain.Format12

	AM = domain.AM
	PM = domain.PM
)

// Picker options.
var (
	WithHourFormat = picker.WithHourFormat
	WithOnChange   = picker.WithOnChange
	WithMonitoring = picker.WithMonitoring
	WithLogger     = picker.WithLogger
	WithDescriptor = picker.WithDescriptor
)

// NewDescriptor returns the default Descriptor: Daily at 00:00.
func NewDescriptor() Descriptor {
	return domain.NewDescriptor()
}

// NewFormatter returns the formatter of dialect, or ErrUnknownDialect.
func NewFormatter(dialect Dialect) (Formatter, error) {
	return formatter.New(dialect)
}

// NewStandard returns the 5-field formatter.
func NewStandard() Formatter {
	return formatter.NewStandard()
}

// NewQuartz returns the 7-field formatter.
func NewQuartz() Formatter {
	return formatter.NewQuartz()
}

// NewPicker creates a picker over host speaking f's dialect.
//
// Parameters:
//   - host: Storage of the expression; an empty value is seeded from the initial descriptor.
//   - f: Formatter of the dialect, fixed for the picker's lifetime.
//   - opts: WithHourFormat, WithOnChange, WithMonitoring, WithLogger, WithDescriptor.
//
// Returns:
//   - The picker.
//   - An error if host or f is nil, the hour format is unknown, or the host fails.
func NewPicker(host Host, f Formatter, opts ...PickerOption) (*Picker, error) {
	return picker.New(host, f, opts...)
}

// NewMemoryHost returns a Host keeping the expression in memory.
func NewMemoryHost(initial string) Host {
	return store.NewMemory(initial)
}

// NewMonitoring returns an in-memory Monitoring keeping every published change.
func NewMonitoring() *monitoring.Monitoring {
	return monitoring.New()
}

// NewPreviewer returns the previewer of dialect, or ErrUnknownDialect.
func NewPreviewer(dialect Dialect) (Previewer, error) {
	return preview.For(dialect)
}
