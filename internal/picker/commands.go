package picker

import (
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
)

// edit validates, applies fn to the live descriptor and publishes the result.
// The descriptor is restored when check fails or the result cannot be published.
func (p *Picker) edit(check error, fn func(d *domain.Descriptor)) error {
	if p.destroyed {
		return errs.ErrPickerDestroyed
	}
	if check != nil {
		return check
	}

	prev := p.state.Clone()
	fn(&p.state)
	if err := p.publish(); err != nil {
		p.state = prev
		return err
	}
	return nil
}

// SetType switches the recurrence class. Field groups of the other classes
// keep their values.
func (p *Picker) SetType(t domain.RecurrenceType) error {
	return p.edit(domain.ValidateType(t), func(d *domain.Descriptor) {
		d.Type = t
	})
}

// ToggleDayOfWeek adds day (Monday=1 .. Sunday=7) to the weekly selection, or
// removes it if it is already selected.
func (p *Picker) ToggleDayOfWeek(day int) error {
	return p.edit(domain.ValidateRange("days of week", day, domain.MinWeekday, domain.MaxWeekday), func(d *domain.Descriptor) {
		for i, v := range d.DaysOfWeek {
			if v == day {
				d.DaysOfWeek = append(d.DaysOfWeek[:i:i], d.DaysOfWeek[i+1:]...)
				return
			}
		}
		d.DaysOfWeek = append(d.DaysOfWeek, day)
	})
}

// SetDaysOfWeek replaces the weekly selection.
func (p *Picker) SetDaysOfWeek(days []int) error {
	var check error
	for _, day := range days {
		if check = domain.ValidateRange("days of week", day, domain.MinWeekday, domain.MaxWeekday); check != nil {
			break
		}
	}
	return p.edit(check, func(d *domain.Descriptor) {
		d.DaysOfWeek = append([]int{}, days...)
	})
}

// SetDayNumber sets the day of the month used by Monthly with DayFilterDay.
func (p *Picker) SetDayNumber(day int) error {
	return p.edit(domain.ValidateRange("day number", day, domain.MinDayNumber, domain.MaxDayNumber), func(d *domain.Descriptor) {
		d.DayNumber = day
	})
}

// SetMonthRepeater sets the "every N months" stride.
func (p *Picker) SetMonthRepeater(n int) error {
	return p.edit(domain.ValidateRange("month repeater", n, domain.MinMonthRepeater, domain.MaxMonthRepeater), func(d *domain.Descriptor) {
		d.MonthRepeater = n
	})
}

// SetDayFilter switches the Monthly sub-mode.
func (p *Picker) SetDayFilter(f domain.DayFilter) error {
	return p.edit(domain.ValidateDayFilter(f), func(d *domain.Descriptor) {
		d.DayFilter = f
	})
}

// SetDayOfWeek sets the weekday used by Monthly with DayFilterWeekday.
func (p *Picker) SetDayOfWeek(weekday string) error {
	return p.edit(domain.ValidateWeekday(weekday), func(d *domain.Descriptor) {
		d.DayOfWeek = weekday
	})
}

// SetOrdinal sets which occurrence of the weekday inside the month is meant.
func (p *Picker) SetOrdinal(o domain.Ordinal) error {
	return p.edit(domain.ValidateOrdinal(o), func(d *domain.Descriptor) {
		d.OrdCondition = o
	})
}

// SetMinutes sets the minute of the run.
func (p *Picker) SetMinutes(m int) error {
	return p.edit(domain.ValidateRange("minutes", m, domain.MinMinute, domain.MaxMinute), func(d *domain.Descriptor) {
		d.Minutes = m
	})
}

// SetHours sets the hour of the run as displayed by the picker.
//
// With Format24 hour is taken as is (0-23). With Format12 hour is read as
// 1-12 together with the current AM/PM marker returned by Clock.
func (p *Picker) SetHours(hour int) error {
	if p.format == domain.Format24 {
		return p.edit(domain.ValidateRange("hours", hour, domain.MinHour, domain.MaxHour), func(d *domain.Descriptor) {
			d.Hours = hour
		})
	}

	_, meridiem := p.Clock()
	return p.edit(domain.ValidateRange("hours", hour, 1, 12), func(d *domain.Descriptor) {
		d.Hours = To24(hour, meridiem)
	})
}

// SetMeridiem switches between AM and PM, keeping the displayed hour.
// It is only meaningful with Format12.
func (p *Picker) SetMeridiem(m domain.Meridiem) error {
	var check error
	switch {
	case p.format != domain.Format12:
		check = errs.New(errs.ErrUnknownMeridiem, "picker uses the 24-hour clock")
	case m != domain.AM && m != domain.PM:
		check = errs.New(errs.ErrUnknownMeridiem, string(m))
	}

	hour, _ := p.Clock()
	return p.edit(check, func(d *domain.Descriptor) {
		d.Hours = To24(hour, m)
	})
}

// Clock returns the hour as the picker displays it. With Format24 the
// marker is empty.
func (p *Picker) Clock() (int, domain.Meridiem) {
	if p.format == domain.Format24 {
		return p.state.Hours, ""
	}
	return To12(p.state.Hours)
}

// To12 converts a 24-hour clock hour to a 12-hour clock hour and marker.
func To12(hours int) (int, domain.Meridiem) {
	h := hours % 12
	if h == 0 {
		h = 12
	}
	if hours < 12 {
		return h, domain.AM
	}
	return h, domain.PM
}

// To24 converts a 12-hour clock hour and marker to a 24-hour clock hour.
func To24(hour int, m domain.Meridiem) int {
	if m == domain.PM && hour < 12 {
		return hour + 12
	}
	if m == domain.AM && hour == 12 {
		return 0
	}
	return hour
}
