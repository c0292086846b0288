package orchestrate

import "fmt"

// InternalError signals an unexpected invariant break: something the
// lower layers should have already ruled out. It should never surface
// for a request that passed validate.Validate.
type InternalError struct {
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("orchestrate: internal: %s", e.Detail)
}

// LowConfidenceError signals that the estimator accepted zero samples
// before exhausting its budget or deadline, and propagation produced no
// guarantees either, leaving nothing usable to return (spec 7:
// LowConfidence "surfaces an error if no propagation-level guarantees
// exist").
type LowConfidenceError struct {
	AttemptedBudget int
}

func (e *LowConfidenceError) Error() string {
	return fmt.Sprintf("orchestrate: low confidence: zero accepted samples after budget %d and no propagation-level guarantees", e.AttemptedBudget)
}
