// Package preview computes upcoming fire times of a built cron expression so
// a user can check what a schedule means before it is persisted.
package preview

import (
	"fmt"
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
	"strings"
	"time"

	"github.com/reugn/go-quartz/quartz"
	cronlib "github.com/robfig/cron/v3"
)

// Previewer lists the next fire times of an expression in one dialect.
type Previewer interface {
	// Next returns up to n fire times strictly after from, in from's location.
	// An expression that never fires (an empty weekday list) yields no times.
	Next(expr string, from time.Time, n int) ([]time.Time, error)
}

// For returns the previewer of dialect.
func For(dialect domain.Dialect) (Previewer, error) {
	switch dialect {
	case domain.Standard:
		return Standard{}, nil
	case domain.Quartz:
		return Quartz{}, nil
	}
	return nil, errs.New(errs.ErrUnknownDialect, string(dialect))
}

// standardParser accepts the 5-field grammar without descriptors.
var standardParser = cronlib.NewParser(
	cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow,
)

// Standard previews 5/6-field expressions with robfig/cron.
type Standard struct{}

func (Standard) Next(expr string, from time.Time, n int) ([]time.Time, error) {
	fields := strings.Split(expr, domain.FieldSeparator)
	if len(fields) != 5 && len(fields) != 6 {
		return nil, errs.New(errs.ErrInvalidExpression, expr)
	}
	fields = fields[:5]
	if fields[4] == "" {
		return nil, nil
	}
	fields[4] = sundayToZero(fields[4])

	sched, err := standardParser.Parse(strings.Join(fields, domain.FieldSeparator))
	if err != nil {
		return nil, errs.New(errs.ErrInvalidExpression, fmt.Sprintf("%q: %v", expr, err))
	}

	times := make([]time.Time, 0, n)
	next := from
	for i := 0; i < n; i++ {
		next = sched.Next(next)
		if next.IsZero() {
			break
		}
		times = append(times, next)
	}
	return times, nil
}

// sundayToZero rewrites weekday 7 to 0; the pickers count Monday=1 .. Sunday=7
// while the parser only knows 0-6. A range ending on 7 is cut at 6 and
// Sunday is listed on its own ("5-7" -> "5-6,0").
func sundayToZero(dow string) string {
	items := strings.Split(dow, domain.ListSeparator)
	for i, item := range items {
		start, end, isRange := strings.Cut(item, "-")
		switch {
		case item == "7":
			items[i] = "0"
		case isRange && end == "7" && start == "7":
			items[i] = "0"
		case isRange && end == "7" && start == "6":
			items[i] = "6,0"
		case isRange && end == "7":
			items[i] = start + "-6,0"
		}
	}
	return strings.Join(items, domain.ListSeparator)
}

// Quartz previews 7-field expressions with go-quartz.
//
// Weekday numbers follow Quartz (SUN=1 .. SAT=7), which is how a Quartz
// scheduler will read the expression.
type Quartz struct{}

func (Quartz) Next(expr string, from time.Time, n int) ([]time.Time, error) {
	fields := strings.Split(expr, domain.FieldSeparator)
	if len(fields) != 7 {
		return nil, errs.New(errs.ErrInvalidExpression, expr)
	}
	if fields[5] == "" {
		return nil, nil
	}

	trigger, err := quartz.NewCronTriggerWithLoc(expr, from.Location())
	if err != nil {
		return nil, errs.New(errs.ErrInvalidExpression, fmt.Sprintf("%q: %v", expr, err))
	}

	times := make([]time.Time, 0, n)
	prev := from.UnixNano()
	for i := 0; i < n; i++ {
		next, err := trigger.NextFireTime(prev)
		if err != nil {
			if len(times) > 0 {
				break
			}
			return nil, fmt.Errorf("next fire time of %q: %w", expr, err)
		}
		times = append(times, time.Unix(0, next).In(from.Location()))
		prev = next
	}
	return times, nil
}
