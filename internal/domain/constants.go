package domain

// RecurrenceType is the recurrence class selected by the user.
//
// Exactly one field group of Descriptor is meaningful for a given type:
// - Daily:   only the time of day.
// - Weekly:  the time of day and DaysOfWeek.
// - Monthly: the time of day, MonthRepeater, DayFilter and the day selector it points at.
type RecurrenceType string

const (
	// Daily runs once a day at Hours:Minutes.
	Daily RecurrenceType = "Daily"

	// Weekly runs at Hours:Minutes on every weekday listed in DaysOfWeek.
	// An empty DaysOfWeek is legal and never fires.
	Weekly RecurrenceType = "Weekly"

	// Monthly runs at Hours:Minutes every MonthRepeater months,
	// either on a fixed day of the month or on an ordinal weekday.
	Monthly RecurrenceType = "Monthly"
)

// DayFilter selects the Monthly sub-mode.
type DayFilter string

const (
	// DayFilterDay pins the run to DayNumber of the month.
	DayFilterDay DayFilter = "day"

	// DayFilterWeekday pins the run to the OrdCondition occurrence of DayOfWeek.
	DayFilterWeekday DayFilter = "weekday"
)

// Ordinal selects which occurrence of a weekday inside a month is meant.
type Ordinal string

const (
	First  Ordinal = "#1"
	Second Ordinal = "#2"
	Third  Ordinal = "#3"
	Last   Ordinal = "L"
)

// Dialect names one of the textual cron grammars.
type Dialect string

const (
	// Standard is the 5-field grammar "minute hour dom month dow".
	// A sixth trailing field is tolerated on parse and never emitted.
	Standard Dialect = "standard"

	// Quartz is the 7-field grammar "second minute hour dom month dow year".
	Quartz Dialect = "quartz"
)

// HourFormat controls how the hour of a Descriptor is presented to the user.
type HourFormat string

const (
	Format24 HourFormat = "24"
	Format12 HourFormat = "12"
)

// Meridiem is the AM/PM marker used with Format12.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// Field ranges enforced at the model boundary.
const (
	MinMinute        = 0
	MaxMinute        = 59
	MinHour          = 0
	MaxHour          = 23
	MinDayNumber     = 1
	MaxDayNumber     = 31
	MinMonthRepeater = 1
	MaxMonthRepeater = 12
	MinWeekday       = 1 // Monday
	MaxWeekday       = 7 // Sunday
)

const (
	// Wildcard matches every value of a field.
	Wildcard = "*"
	// NoValue is the Quartz placeholder for "no specific value" in dom or dow.
	NoValue = "?"
	// ListSeparator joins the values of a list field.
	ListSeparator = ","
	// StepSeparator splits "start/step" fields.
	StepSeparator = "/"
	// FieldSeparator splits an expression into fields. Splitting is done on
	// single spaces so an empty weekday list survives as an empty field.
	FieldSeparator = " "
)

// WeekdayTokens are the Quartz weekday names, indexed Monday=1 .. Sunday=7.
var WeekdayTokens = [...]string{"", "MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// Ordinals lists every supported ordinal qualifier in display order.
var Ordinals = []Ordinal{First, Second, Third, Last}
