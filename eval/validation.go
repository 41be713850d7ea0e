package eval

import (
	"fmt"

	"github.com/hscells/rankeval/trec"
)

// ValidationError indicates that the inputs to a measure are unusable. It
// is recoverable: callers decide whether to treat it as fatal.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// ValidateInputs checks a ranked list, relevant set and cutoff before
// scoring. k beyond the length of the ranked list is permitted; every
// measure simply consumes the shorter list.
func ValidateInputs(ranked []string, relevant trec.RelevantSet, k int, requireRelevant bool) error {
	if k == 0 {
		return &ValidationError{Reason: "k must be greater than 0"}
	}
	if len(ranked) == 0 {
		return &ValidationError{Reason: "ranked list cannot be empty"}
	}
	if requireRelevant && len(relevant) == 0 {
		return &ValidationError{Reason: "no relevant documents provided"}
	}
	return nil
}

// ValidatePersistence checks an RBP persistence parameter, which must lie
// strictly between 0 and 1.
func ValidatePersistence(persistence float64) error {
	if persistence <= 0 || persistence >= 1 {
		return &ValidationError{Reason: fmt.Sprintf("persistence parameter (%v) must be in (0, 1)", persistence)}
	}
	return nil
}

// ValidateBeta checks an f-measure beta parameter, which must be positive.
func ValidateBeta(beta float64) error {
	if beta <= 0 {
		return &ValidationError{Reason: fmt.Sprintf("beta parameter (%v) must be positive", beta)}
	}
	return nil
}
