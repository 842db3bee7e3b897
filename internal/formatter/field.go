package formatter

import (
	"fmt"
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
	"strconv"
	"strings"
)

// splitFields splits a cron expression on single spaces and checks the
// resulting field count against the counts the dialect accepts.
//
// Splitting on single spaces (not on runs of whitespace) keeps an empty
// weekday list as an empty field, so "0 18 * * " still has five fields.
//
// Parameters:
//   - expr: The raw cron expression.
//   - counts: Accepted field counts.
//
// Returns:
//   - The fields of the expression.
//   - ErrInvalidExpression if the field count is not accepted.
func splitFields(expr string, counts ...int) ([]string, error) {
	fields := strings.Split(expr, domain.FieldSeparator)
	for _, c := range counts {
		if len(fields) == c {
			return fields, nil
		}
	}
	return nil, errs.New(errs.ErrInvalidExpression, fmt.Sprintf("%q has %d fields, want %s", expr, len(fields), joinCounts(counts)))
}

func joinCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, " or ")
}

// parseNumber parses a single numeric field and checks it against [min, max].
//
// Returns:
//   - The parsed value.
//   - ErrInvalidExpression if the field is not a plain number.
//   - ErrFieldRange if the number lies outside the range.
func parseNumber(name, field string, min, max int) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, errs.New(errs.ErrInvalidExpression, fmt.Sprintf("%s: invalid value %q", name, field))
	}
	if err := domain.ValidateRange(name, v, min, max); err != nil {
		return 0, err
	}
	return v, nil
}

// parseList parses a list field and returns the values it selects.
//
// Supported syntax:
//   - "" (empty): selects nothing.
//   - "X,Y,Z" (list): selects the listed values.
//   - "X-Y" (range): selects all values from X to Y inclusive; may be a list item.
//
// Parameters:
//   - name: Field name used in error messages.
//   - field: The cron field string (e.g., "1,3,5", "1-5").
//   - min, max: The allowed range for this field.
//
// Returns:
//   - A slice of the selected values in input order.
//   - An error if the syntax is invalid or a value is out of range.
func parseList(name, field string, min, max int) ([]int, error) {
	values := []int{}
	if field == "" {
		return values, nil
	}

	for _, part := range strings.Split(field, domain.ListSeparator) {
		if strings.Contains(part, "-") {
			rangeParts := strings.Split(part, "-")
			if len(rangeParts) != 2 {
				return nil, errs.New(errs.ErrInvalidExpression, fmt.Sprintf("%s: invalid range %q", name, part))
			}
			start, err := parseNumber(name, rangeParts[0], min, max)
			if err != nil {
				return nil, err
			}
			end, err := parseNumber(name, rangeParts[1], min, max)
			if err != nil {
				return nil, err
			}
			if start > end {
				return nil, errs.New(errs.ErrInvalidExpression, fmt.Sprintf("%s: invalid range %q", name, part))
			}
			for i := start; i <= end; i++ {
				values = append(values, i)
			}
			continue
		}

		v, err := parseNumber(name, part, min, max)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// parseStep returns the step of a "start/step" field ("*/2", "1/3").
// The start is not interpreted. A field without a step is rejected.
func parseStep(name, field string, min, max int) (int, error) {
	_, step, ok := strings.Cut(field, domain.StepSeparator)
	if !ok {
		return 0, errs.New(errs.ErrInvalidExpression, fmt.Sprintf("%s: %q has no step", name, field))
	}
	return parseNumber(name, step, min, max)
}
