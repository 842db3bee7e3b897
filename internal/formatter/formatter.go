// Package formatter encodes and decodes recurrence descriptors as cron
// expressions in the Standard and Quartz dialects.
package formatter

import (
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
)

var (
	_ domain.Formatter = (*StandardFormatter)(nil)
	_ domain.Formatter = (*QuartzFormatter)(nil)
)

// New returns the formatter for dialect.
//
// Returns:
//   - The formatter.
//   - ErrUnknownDialect if dialect is neither Standard nor Quartz.
func New(dialect domain.Dialect) (domain.Formatter, error) {
	switch dialect {
	case domain.Standard:
		return NewStandard(), nil
	case domain.Quartz:
		return NewQuartz(), nil
	}
	return nil, errs.New(errs.ErrUnknownDialect, string(dialect))
}
