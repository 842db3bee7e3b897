package domain

// Formatter translates between a Descriptor and one cron dialect.
//
// Implementations are pure: they keep no state between calls and never retain
// the descriptor or the expression they were given.
type Formatter interface {
	// Dialect returns the grammar this formatter speaks.
	Dialect() Dialect

	// Parse decodes expr into a new Descriptor. Fields the expression does not
	// determine keep the values of NewDescriptor.
	Parse(expr string) (Descriptor, error)

	// ParseInto decodes expr and overwrites only the fields of d the expression
	// determines. On error d is left untouched.
	ParseInto(expr string, d *Descriptor) error

	// Build encodes d. Field ranges are not checked; a descriptor the dialect
	// cannot represent yields ErrUnsupportedCombination.
	Build(d Descriptor) (string, error)
}
