package domain

// Monitoring collects the expressions a picker publishes.
//
// Implementations can keep them in memory for debugging, log them, or forward
// them to an audit trail.
type Monitoring interface {
	// SaveChange records a published expression.
	//
	// Parameters:
	//   - dto: ChangeDTO describing the expression and when it was built.
	SaveChange(dto ChangeDTO)
}
