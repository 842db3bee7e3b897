package domain

// Host holds the current expression string of a picker.
//
// It replaces the hidden form control the expression used to be written to:
// the picker seeds itself from Value on construction and calls SetValue with
// every freshly built expression.
type Host interface {
	// Value returns the stored expression, or "" when nothing is stored yet.
	Value() (string, error)

	// SetValue replaces the stored expression.
	SetValue(expr string) error
}
