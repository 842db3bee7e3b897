package error

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidExpression      = errors.New("invalid cron expression")
	ErrFieldRange             = errors.New("cron field out of range")
	ErrUnsupportedCombination = errors.New("descriptor cannot be represented in this dialect")
)

var (
	ErrUnknownDialect    = errors.New("unknown cron dialect")
	ErrUnknownType       = errors.New("unknown recurrence type")
	ErrUnknownDayFilter  = errors.New("unknown day filter")
	ErrUnknownOrdinal    = errors.New("unknown ordinal qualifier")
	ErrInvalidWeekday    = errors.New("invalid weekday")
	ErrUnknownHourFormat = errors.New("unknown hour format")
	ErrUnknownMeridiem   = errors.New("unknown meridiem")
)

var (
	ErrNilHost         = errors.New("host is nil")
	ErrNilFormatter    = errors.New("formatter is nil")
	ErrPickerDestroyed = errors.New("picker is destroyed")
)

var (
	ErrExpressionNotFound = errors.New("expression not found")
	ErrEmptyKey           = errors.New("empty key")
	ErrUnknownStore       = errors.New("unknown store driver")
	ErrDialectMismatch    = errors.New("expression stored in another dialect")
)

func New(err error, str string) error {
	return fmt.Errorf("%w: %s", err, str)
}
