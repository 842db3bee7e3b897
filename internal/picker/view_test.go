package picker

import (
	"testing"

	"github.com/osmike/cronpick/internal/domain"
	"github.com/osmike/cronpick/internal/formatter"
	"github.com/osmike/cronpick/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Weekly(t *testing.T) {
	p, _, _ := newTestPicker(t, "15 20 * * 6,2")

	v := p.View()
	assert.Equal(t, domain.Weekly, v.Type)
	assert.Equal(t, []int{2, 6}, v.ActiveDays)
	assert.Equal(t, 20, v.Hour)
	assert.Equal(t, 15, v.Minutes)
	assert.True(t, v.ShowDaysOfWeek)
	assert.False(t, v.ShowMonthlyFilter)
	assert.True(t, v.ShowDayTypeFilter)
	assert.False(t, v.ShowWeekdayTypeFilter)
	assert.False(t, v.ShowMeridiem)
}

func TestView_MonthlyWeekdayTwelveHour(t *testing.T) {
	p, err := New(store.NewMemory("0 0 13 ? 1/3 MON#2 *"), formatter.NewQuartz(), WithHourFormat(domain.Format12))
	require.NoError(t, err)

	v := p.View()
	assert.Equal(t, domain.Monthly, v.Type)
	assert.True(t, v.ShowMonthlyFilter)
	assert.False(t, v.ShowDayTypeFilter)
	assert.True(t, v.ShowWeekdayTypeFilter)
	assert.True(t, v.ShowMeridiem)
	assert.Equal(t, 1, v.Hour)
	assert.Equal(t, domain.PM, v.Meridiem)
	assert.Equal(t, "MON", v.DayOfWeek)
	assert.Equal(t, domain.Second, v.OrdCondition)
	assert.Equal(t, 3, v.MonthRepeater)
}

func TestChoices(t *testing.T) {
	hours := HourChoices(domain.Format24)
	assert.Len(t, hours, 24)
	assert.Equal(t, Choice{Value: "0", Label: "00"}, hours[0])
	assert.Equal(t, Choice{Value: "23", Label: "23"}, hours[23])

	hours = HourChoices(domain.Format12)
	assert.Len(t, hours, 12)
	assert.Equal(t, Choice{Value: "1", Label: "01"}, hours[0])
	assert.Equal(t, Choice{Value: "12", Label: "12"}, hours[11])

	assert.Len(t, MinuteChoices(), 60)
	assert.Equal(t, Choice{Value: "31", Label: "31"}, DayNumberChoices()[30])
	assert.Len(t, MonthRepeaterChoices(), 12)
	assert.Len(t, MeridiemChoices(), 2)

	assert.Equal(t, []Choice{
		{Value: "#1", Label: "First"},
		{Value: "#2", Label: "Second"},
		{Value: "#3", Label: "Third"},
		{Value: "L", Label: "Last"},
	}, OrdinalChoices())

	weekdays := WeekdayChoices()
	assert.Len(t, weekdays, 7)
	assert.Equal(t, Choice{Value: "1", Label: "Monday"}, weekdays[0])
	assert.Equal(t, Choice{Value: "7", Label: "Sunday"}, weekdays[6])

	buttons := WeekdayButtons()
	assert.Equal(t, Choice{Value: "5", Label: "FRI"}, buttons[4])
}
