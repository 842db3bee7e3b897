package formatter

import (
	"testing"

	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuartz_RoundTrip(t *testing.T) {
	f := NewQuartz()
	for _, expr := range []string{
		"0 30 9 1/1 * ? *",
		"0 0 18 ? * 2,4,6 *",
		"0 15 10 15 1/2 ? *",
		"0 0 12 ? 1/1 FRIL *",
		"0 0 12 ? 1/3 MON#2 *",
		"0 0 12 ? 1/1 5#3 *",
		"0 0 18 ? *  *",
	} {
		t.Run(expr, func(t *testing.T) {
			d, err := f.Parse(expr)
			require.NoError(t, err)

			out, err := f.Build(d)
			require.NoError(t, err)
			assert.Equal(t, expr, out)
		})
	}
}

func TestQuartz_ParseDaily(t *testing.T) {
	d, err := NewQuartz().Parse("45 30 9 1/1 * ? *")
	require.NoError(t, err)
	assert.Equal(t, domain.Daily, d.Type)
	assert.Equal(t, 9, d.Hours)
	assert.Equal(t, 30, d.Minutes)
}

func TestQuartz_ParseWeekly(t *testing.T) {
	d, err := NewQuartz().Parse("0 0 18 ? * 6,4,2 *")
	require.NoError(t, err)
	assert.Equal(t, domain.Weekly, d.Type)
	assert.ElementsMatch(t, []int{2, 4, 6}, d.DaysOfWeek)
}

func TestQuartz_ParseWeeklyEmpty(t *testing.T) {
	d, err := NewQuartz().Parse("0 0 18 ? *  *")
	require.NoError(t, err)
	assert.Equal(t, domain.Weekly, d.Type)
	assert.Empty(t, d.DaysOfWeek)
}

func TestQuartz_ParseMonthlyDay(t *testing.T) {
	d, err := NewQuartz().Parse("0 15 10 15 1/2 ? *")
	require.NoError(t, err)
	assert.Equal(t, domain.Monthly, d.Type)
	assert.Equal(t, domain.DayFilterDay, d.DayFilter)
	assert.Equal(t, 15, d.DayNumber)
	assert.Equal(t, 2, d.MonthRepeater)
	assert.Equal(t, 10, d.Hours)
	assert.Equal(t, 15, d.Minutes)
}

func TestQuartz_ParseMonthlyWeekday(t *testing.T) {
	d, err := NewQuartz().Parse("0 0 12 ? 1/1 FRIL *")
	require.NoError(t, err)
	assert.Equal(t, domain.Monthly, d.Type)
	assert.Equal(t, domain.DayFilterWeekday, d.DayFilter)
	assert.Equal(t, "FRI", d.DayOfWeek)
	assert.Equal(t, domain.Last, d.OrdCondition)
	assert.Equal(t, 1, d.MonthRepeater)
}

func TestQuartz_ParseInvalid(t *testing.T) {
	cases := map[string]error{
		"0 30 9 * * *":         errs.ErrInvalidExpression,
		"30 9 * * *":           errs.ErrInvalidExpression,
		"0 0 0 1/1 * ? 2030":   errs.ErrInvalidExpression,
		"0 0 12 ? 1/1 FRI#9 *": errs.ErrUnknownOrdinal,
		"0 0 12 ? 1/1 XYZL *":  errs.ErrInvalidWeekday,
		"0 0 12 ? 1/1 8L *":    errs.ErrInvalidWeekday,
		"0 0 12 ? 1/1 FR *":    errs.ErrInvalidExpression,
		"0 0 12 15 2 ? *":      errs.ErrInvalidExpression,
		"0 0 12 32 1/1 ? *":    errs.ErrFieldRange,
		"0 60 12 1/1 * ? *":    errs.ErrFieldRange,
		"0 0 12 ? * 0 *":       errs.ErrFieldRange,
	}
	for expr, want := range cases {
		t.Run(expr, func(t *testing.T) {
			_, err := NewQuartz().Parse(expr)
			assert.ErrorIs(t, err, want)
		})
	}
}

func TestQuartz_ParseIntoKeepsStateOnError(t *testing.T) {
	d := domain.NewDescriptor()
	d.Type = domain.Monthly
	d.DayNumber = 9
	before := d.Clone()

	err := NewQuartz().ParseInto("0 0 12 * * *", &d)
	assert.ErrorIs(t, err, errs.ErrInvalidExpression)
	assert.Equal(t, before, d)
}

func TestQuartz_BuildDaily(t *testing.T) {
	d := domain.NewDescriptor()
	d.Hours, d.Minutes = 9, 30

	out, err := NewQuartz().Build(d)
	require.NoError(t, err)
	assert.Equal(t, "0 30 9 1/1 * ? *", out)
}

func TestQuartz_BuildWeeklyEmpty(t *testing.T) {
	d := domain.NewDescriptor()
	d.Type = domain.Weekly
	d.Hours, d.Minutes = 18, 5

	out, err := NewQuartz().Build(d)
	require.NoError(t, err)
	assert.Equal(t, "0 5 18 ? *  *", out)
}

func TestQuartz_BuildSortDeterminism(t *testing.T) {
	f := NewQuartz()
	for _, days := range [][]int{{1, 7, 3}, {7, 3, 1}, {3, 1, 7}} {
		d := domain.NewDescriptor()
		d.Type = domain.Weekly
		d.DaysOfWeek = days
		out, err := f.Build(d)
		require.NoError(t, err)
		assert.Equal(t, "0 0 0 ? * 1,3,7 *", out)
	}
}

func TestQuartz_BuildMonthlyWeekdayDefaults(t *testing.T) {
	d := domain.NewDescriptor()
	d.Type = domain.Monthly
	d.DayFilter = domain.DayFilterWeekday

	out, err := NewQuartz().Build(d)
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 ? 1/1 1#1 *", out)
}

func TestQuartz_BuildUnsupported(t *testing.T) {
	d := domain.NewDescriptor()
	d.Type = ""
	_, err := NewQuartz().Build(d)
	assert.ErrorIs(t, err, errs.ErrUnsupportedCombination)

	d.Type = domain.Monthly
	d.DayFilter = "week"
	_, err = NewQuartz().Build(d)
	assert.ErrorIs(t, err, errs.ErrUnsupportedCombination)
}

func TestNew(t *testing.T) {
	f, err := New(domain.Standard)
	require.NoError(t, err)
	assert.Equal(t, domain.Standard, f.Dialect())

	f, err = New(domain.Quartz)
	require.NoError(t, err)
	assert.Equal(t, domain.Quartz, f.Dialect())

	_, err = New("unix")
	assert.ErrorIs(t, err, errs.ErrUnknownDialect)
}
