package cronpick

import errs "github.com/osmike/cronpick/internal/error"

var (
	ErrInvalidExpression      = errs.ErrInvalidExpression
	ErrFieldRange             = errs.ErrFieldRange
	ErrUnsupportedCombination = errs.ErrUnsupportedCombination
	ErrUnknownDialect         = errs.ErrUnknownDialect
	ErrUnknownType            = errs.ErrUnknownType
	ErrUnknownDayFilter       = errs.ErrUnknownDayFilter
	ErrUnknownOrdinal         = errs.ErrUnknownOrdinal
	ErrInvalidWeekday         = errs.ErrInvalidWeekday
	ErrUnknownHourFormat      = errs.ErrUnknownHourFormat
	ErrUnknownMeridiem        = errs.ErrUnknownMeridiem
	ErrNilHost                = errs.ErrNilHost
	ErrNilFormatter           = errs.ErrNilFormatter
	ErrPickerDestroyed        = errs.ErrPickerDestroyed
	ErrExpressionNotFound     = errs.ErrExpressionNotFound
	ErrEmptyKey               = errs.ErrEmptyKey
	ErrUnknownStore           = errs.ErrUnknownStore
	ErrDialectMismatch        = errs.ErrDialectMismatch
)
