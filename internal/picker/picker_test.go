package picker

import (
	"errors"
	"testing"
	"time"

	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
	"github.com/osmike/cronpick/internal/formatter"
	"github.com/osmike/cronpick/internal/monitoring"
	"github.com/osmike/cronpick/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type failingHost struct {
	readErr  error
	writeErr error
}

func (h *failingHost) Value() (string, error) { return "", h.readErr }
func (h *failingHost) SetValue(string) error { return h.writeErr }

func newTestPicker(t *testing.T, initial string, opts ...Option) (*Picker, *store.Memory, *[]string) {
	t.Helper()
	host := store.NewMemory(initial)
	var published []string
	opts = append(opts, WithOnChange(func(expr string) { published = append(published, expr) }))
	p, err := New(host, formatter.NewStandard(), opts...)
	require.NoError(t, err)
	return p, host, &published
}

func TestNew_EmptyHostPublishesDefaults(t *testing.T) {
	p, host, published := newTestPicker(t, "")

	v, _ := host.Value()
	assert.Equal(t, "0 0 * * *", v)
	assert.Equal(t, "0 0 * * *", p.Expression())
	assert.Equal(t, []string{"0 0 * * *"}, *published)
	assert.Equal(t, domain.NewDescriptor(), p.State())
}

func TestNew_ParsesHostValue(t *testing.T) {
	p, host, published := newTestPicker(t, "0 18 * * 2,4,6")

	assert.Equal(t, domain.Weekly, p.State().Type)
	assert.Equal(t, []int{2, 4, 6}, p.State().DaysOfWeek)
	assert.Equal(t, 18, p.State().Hours)
	assert.Empty(t, *published)

	v, _ := host.Value()
	assert.Equal(t, "0 18 * * 2,4,6", v)
}

func TestNew_MalformedHostValueKeepsDefaults(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	p, err := New(store.NewMemory("* * *"), formatter.NewStandard(), WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, domain.NewDescriptor(), p.State())
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "invalid cron expression, skip parsing", entry.Message)
	assert.Equal(t, "* * *", entry.ContextMap()["expression"])
	assert.Equal(t, "standard", entry.ContextMap()["dialect"])
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, formatter.NewStandard())
	assert.ErrorIs(t, err, errs.ErrNilHost)

	_, err = New(store.NewMemory(""), nil)
	assert.ErrorIs(t, err, errs.ErrNilFormatter)

	_, err = New(store.NewMemory(""), formatter.NewStandard(), WithHourFormat("36"))
	assert.ErrorIs(t, err, errs.ErrUnknownHourFormat)

	boom := errors.New("disk full")
	_, err = New(&failingHost{readErr: boom}, formatter.NewStandard())
	assert.ErrorIs(t, err, boom)

	_, err = New(&failingHost{writeErr: boom}, formatter.NewStandard())
	assert.ErrorIs(t, err, boom)
}

func TestSetExpression_InvalidLeavesState(t *testing.T) {
	p, _, _ := newTestPicker(t, "30 9 * * *")
	before := p.State()

	err := p.SetExpression("* * *")
	assert.ErrorIs(t, err, errs.ErrInvalidExpression)
	assert.True(t, IsMalformed(err))
	assert.Equal(t, before, p.State())
	assert.Equal(t, "30 9 * * *", p.Expression())
}

func TestSetExpression_KeepsStaleGroups(t *testing.T) {
	p, _, _ := newTestPicker(t, "0 18 * * 2,4")

	require.NoError(t, p.SetExpression("30 9 * * *"))
	assert.Equal(t, domain.Daily, p.State().Type)
	assert.Equal(t, []int{2, 4}, p.State().DaysOfWeek)
}

func TestSetType(t *testing.T) {
	p, host, published := newTestPicker(t, "")

	require.NoError(t, p.SetType(domain.Monthly))
	v, _ := host.Value()
	assert.Equal(t, "0 0 1 */1 *", v)
	assert.Equal(t, "0 0 1 */1 *", (*published)[len(*published)-1])

	err := p.SetType("Yearly")
	assert.ErrorIs(t, err, errs.ErrUnknownType)
	assert.Equal(t, domain.Monthly, p.State().Type)
}

func TestToggleDayOfWeek(t *testing.T) {
	p, host, _ := newTestPicker(t, "")
	require.NoError(t, p.SetType(domain.Weekly))

	require.NoError(t, p.ToggleDayOfWeek(6))
	require.NoError(t, p.ToggleDayOfWeek(2))
	require.NoError(t, p.ToggleDayOfWeek(4))
	v, _ := host.Value()
	assert.Equal(t, "0 0 * * 2,4,6", v)

	require.NoError(t, p.ToggleDayOfWeek(4))
	v, _ = host.Value()
	assert.Equal(t, "0 0 * * 2,6", v)

	require.NoError(t, p.ToggleDayOfWeek(2))
	require.NoError(t, p.ToggleDayOfWeek(6))
	v, _ = host.Value()
	assert.Equal(t, "0 0 * * ", v)

	assert.ErrorIs(t, p.ToggleDayOfWeek(8), errs.ErrFieldRange)
}

func TestSetDaysOfWeek(t *testing.T) {
	p, host, _ := newTestPicker(t, "0 0 * * 1")

	require.NoError(t, p.SetDaysOfWeek([]int{5, 3}))
	v, _ := host.Value()
	assert.Equal(t, "0 0 * * 3,5", v)

	assert.ErrorIs(t, p.SetDaysOfWeek([]int{1, 0}), errs.ErrFieldRange)
	assert.Equal(t, []int{5, 3}, p.State().DaysOfWeek)
}

func TestMonthlySetters(t *testing.T) {
	p, err := New(store.NewMemory(""), formatter.NewQuartz())
	require.NoError(t, err)

	require.NoError(t, p.SetType(domain.Monthly))
	require.NoError(t, p.SetDayNumber(15))
	require.NoError(t, p.SetMonthRepeater(2))
	require.NoError(t, p.SetHours(10))
	require.NoError(t, p.SetMinutes(15))
	assert.Equal(t, "0 15 10 15 1/2 ? *", p.Expression())

	require.NoError(t, p.SetDayFilter(domain.DayFilterWeekday))
	require.NoError(t, p.SetDayOfWeek("FRI"))
	require.NoError(t, p.SetOrdinal(domain.Last))
	assert.Equal(t, "0 15 10 ? 1/2 FRIL *", p.Expression())

	assert.ErrorIs(t, p.SetDayNumber(32), errs.ErrFieldRange)
	assert.ErrorIs(t, p.SetMonthRepeater(0), errs.ErrFieldRange)
	assert.ErrorIs(t, p.SetDayFilter("week"), errs.ErrUnknownDayFilter)
	assert.ErrorIs(t, p.SetDayOfWeek("FUN"), errs.ErrInvalidWeekday)
	assert.ErrorIs(t, p.SetOrdinal("#5"), errs.ErrUnknownOrdinal)
	assert.ErrorIs(t, p.SetMinutes(60), errs.ErrFieldRange)
	assert.ErrorIs(t, p.SetHours(24), errs.ErrFieldRange)
	assert.Equal(t, "0 15 10 ? 1/2 FRIL *", p.Expression())
}

func TestStandardWeekdayFilterUnsupported(t *testing.T) {
	p, host, published := newTestPicker(t, "0 0 15 */1 *")
	n := len(*published)

	err := p.SetDayFilter(domain.DayFilterWeekday)
	assert.ErrorIs(t, err, errs.ErrUnsupportedCombination)

	v, _ := host.Value()
	assert.Equal(t, "0 0 15 */1 *", v)
	assert.Len(t, *published, n)
}

func TestTwelveHourClock(t *testing.T) {
	p, host, _ := newTestPicker(t, "", WithHourFormat(domain.Format12))

	hour, m := p.Clock()
	assert.Equal(t, 12, hour)
	assert.Equal(t, domain.AM, m)

	require.NoError(t, p.SetHours(9))
	v, _ := host.Value()
	assert.Equal(t, "0 9 * * *", v)

	require.NoError(t, p.SetMeridiem(domain.PM))
	v, _ = host.Value()
	assert.Equal(t, "0 21 * * *", v)

	require.NoError(t, p.SetHours(12))
	v, _ = host.Value()
	assert.Equal(t, "0 12 * * *", v)

	require.NoError(t, p.SetMeridiem(domain.AM))
	v, _ = host.Value()
	assert.Equal(t, "0 0 * * *", v)

	assert.ErrorIs(t, p.SetHours(0), errs.ErrFieldRange)
	assert.ErrorIs(t, p.SetMeridiem("XM"), errs.ErrUnknownMeridiem)
}

func TestSetMeridiem_24HourClock(t *testing.T) {
	p, _, _ := newTestPicker(t, "")
	assert.ErrorIs(t, p.SetMeridiem(domain.PM), errs.ErrUnknownMeridiem)

	hour, m := p.Clock()
	assert.Equal(t, 0, hour)
	assert.Equal(t, domain.Meridiem(""), m)
}

func TestClockConversion(t *testing.T) {
	cases := []struct {
		h24 int
		h12 int
		m   domain.Meridiem
	}{
		{0, 12, domain.AM},
		{1, 1, domain.AM},
		{11, 11, domain.AM},
		{12, 12, domain.PM},
		{13, 1, domain.PM},
		{23, 11, domain.PM},
	}
	for _, c := range cases {
		h, m := To12(c.h24)
		assert.Equal(t, c.h12, h)
		assert.Equal(t, c.m, m)
		assert.Equal(t, c.h24, To24(c.h12, c.m))
	}
}

func TestMonitoringRecordsChanges(t *testing.T) {
	mon := monitoring.New()
	at := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	p, err := New(store.NewMemory(""), formatter.NewStandard(),
		WithMonitoring(mon),
		WithNow(func() time.Time { return at }),
	)
	require.NoError(t, err)
	require.NoError(t, p.SetMinutes(30))

	changes := mon.GetChanges()
	require.Len(t, changes, 2)
	assert.Equal(t, domain.ChangeDTO{Expression: "30 0 * * *", Dialect: domain.Standard, Type: domain.Daily, At: at}, changes[1])
}

func TestDestroy(t *testing.T) {
	p, _, published := newTestPicker(t, "")
	n := len(*published)

	p.Destroy()
	assert.ErrorIs(t, p.SetMinutes(5), errs.ErrPickerDestroyed)
	assert.ErrorIs(t, p.SetExpression("0 0 * * *"), errs.ErrPickerDestroyed)
	assert.Len(t, *published, n)
}

func TestWithDescriptor(t *testing.T) {
	d := domain.NewDescriptor()
	d.Type = domain.Weekly
	d.DaysOfWeek = []int{7, 1}
	d.Hours = 6

	p, host, _ := newTestPicker(t, "", WithDescriptor(d))
	v, _ := host.Value()
	assert.Equal(t, "0 6 * * 1,7", v)
	assert.Equal(t, domain.Standard, p.Dialect())
	assert.Equal(t, domain.Format24, p.HourFormat())
}

func TestFailedPublishRestoresState(t *testing.T) {
	p, _, _ := newTestPicker(t, "0 0 15 */1 *")

	err := p.SetDayFilter(domain.DayFilterWeekday)
	assert.ErrorIs(t, err, errs.ErrUnsupportedCombination)
	assert.Equal(t, domain.DayFilterDay, p.State().DayFilter)
}
