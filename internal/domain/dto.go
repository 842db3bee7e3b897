package domain

import (
	"time"
)

// ChangeDTO describes one expression published by a picker.
type ChangeDTO struct {
	// Expression is the freshly built cron expression.
	Expression string

	// Dialect is the grammar the expression is written in.
	Dialect Dialect

	// Type is the recurrence class of the descriptor at build time.
	Type RecurrenceType

	// At is the time the expression was published.
	At time.Time
}
