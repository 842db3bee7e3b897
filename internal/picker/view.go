package picker

import (
	"fmt"
	"github.com/osmike/cronpick/internal/domain"
	"strconv"
)

// View is what a renderer needs to draw the picker: the active selections
// and which sections are visible.
type View struct {
	Type      domain.RecurrenceType
	DayFilter domain.DayFilter

	// ActiveDays are the weekday buttons shown as pressed, sorted ascending.
	ActiveDays []int

	Hour          int
	Meridiem      domain.Meridiem
	Minutes       int
	DayNumber     int
	MonthRepeater int
	DayOfWeek     string
	OrdCondition  domain.Ordinal

	ShowDaysOfWeek        bool // Weekly
	ShowMonthlyFilter     bool // Monthly
	ShowDayTypeFilter     bool // day filter is "day"
	ShowWeekdayTypeFilter bool // day filter is "weekday"
	ShowMeridiem          bool // 12-hour clock
}

// View returns the current view of the picker.
func (p *Picker) View() View {
	hour, meridiem := p.Clock()
	d := p.state
	return View{
		Type:                  d.Type,
		DayFilter:             d.DayFilter,
		ActiveDays:            d.SortedDaysOfWeek(),
		Hour:                  hour,
		Meridiem:              meridiem,
		Minutes:               d.Minutes,
		DayNumber:             d.DayNumber,
		MonthRepeater:         d.MonthRepeater,
		DayOfWeek:             d.DayOfWeek,
		OrdCondition:          d.OrdCondition,
		ShowDaysOfWeek:        d.Type == domain.Weekly,
		ShowMonthlyFilter:     d.Type == domain.Monthly,
		ShowDayTypeFilter:     d.DayFilter == domain.DayFilterDay,
		ShowWeekdayTypeFilter: d.DayFilter != domain.DayFilterDay,
		ShowMeridiem:          p.format == domain.Format12,
	}
}

// Choice is one entry of a select control.
type Choice struct {
	Value string
	Label string
}

// numberChoices returns count choices starting at offset, labelled with two digits.
func numberChoices(count, offset int) []Choice {
	choices := make([]Choice, count)
	for i := range choices {
		v := i + offset
		choices[i] = Choice{Value: strconv.Itoa(v), Label: fmt.Sprintf("%02d", v)}
	}
	return choices
}

// HourChoices returns 00-23 for Format24 and 01-12 for Format12.
func HourChoices(format domain.HourFormat) []Choice {
	if format == domain.Format12 {
		return numberChoices(12, 1)
	}
	return numberChoices(24, 0)
}

// MinuteChoices returns 00-59.
func MinuteChoices() []Choice {
	return numberChoices(60, 0)
}

// DayNumberChoices returns 01-31.
func DayNumberChoices() []Choice {
	return numberChoices(31, 1)
}

// MonthRepeaterChoices returns 01-12.
func MonthRepeaterChoices() []Choice {
	return numberChoices(12, 1)
}

// MeridiemChoices returns AM and PM.
func MeridiemChoices() []Choice {
	return []Choice{
		{Value: string(domain.AM), Label: string(domain.AM)},
		{Value: string(domain.PM), Label: string(domain.PM)},
	}
}

// OrdinalChoices returns the ordinal qualifiers in display order.
func OrdinalChoices() []Choice {
	return []Choice{
		{Value: string(domain.First), Label: "First"},
		{Value: string(domain.Second), Label: "Second"},
		{Value: string(domain.Third), Label: "Third"},
		{Value: string(domain.Last), Label: "Last"},
	}
}

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayChoices returns Monday=1 .. Sunday=7 for the weekday-of-month select.
func WeekdayChoices() []Choice {
	choices := make([]Choice, 0, domain.MaxWeekday)
	for i := domain.MinWeekday; i <= domain.MaxWeekday; i++ {
		choices = append(choices, Choice{Value: strconv.Itoa(i), Label: weekdayNames[i]})
	}
	return choices
}

// WeekdayButtons returns the MON..SUN toggle buttons of the weekly selection.
func WeekdayButtons() []Choice {
	choices := make([]Choice, 0, domain.MaxWeekday)
	for i := domain.MinWeekday; i <= domain.MaxWeekday; i++ {
		choices = append(choices, Choice{Value: strconv.Itoa(i), Label: domain.WeekdayTokens[i]})
	}
	return choices
}
