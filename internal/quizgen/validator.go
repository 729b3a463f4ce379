package quizgen

import "fmt"

// Validator checks a parsed question of type Q.
// Implementations should be stateless and safe for concurrent use.
type Validator[Q any] interface {
	// Name returns a short identifier used in error messages,
	// e.g. "structural", "choices", "blank-marker".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Q) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// runValidators applies validators in order and stops at the first failure.
func runValidators[Q any](q *Q, validators []Validator[Q]) error {
	for _, v := range validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}
