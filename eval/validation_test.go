package eval_test

import (
	"testing"

	"github.com/hscells/rankeval/eval"
	"github.com/hscells/rankeval/trec"
)

func TestValidateInputs(t *testing.T) {
	ranked := []string{"doc1", "doc2"}
	relevant := trec.RelevantSet{"doc1": true}

	if err := eval.ValidateInputs(ranked, relevant, 2, true); err != nil {
		t.Errorf("expected valid inputs to pass: %v", err)
	}
	if err := eval.ValidateInputs(ranked, relevant, 0, false); err == nil {
		t.Error("expected an error for k = 0")
	}
	if err := eval.ValidateInputs(nil, relevant, 2, false); err == nil {
		t.Error("expected an error for an empty ranked list")
	}
	if err := eval.ValidateInputs(ranked, trec.RelevantSet{}, 2, true); err == nil {
		t.Error("expected an error when relevant documents are required but absent")
	}
	if err := eval.ValidateInputs(ranked, trec.RelevantSet{}, 2, false); err != nil {
		t.Errorf("expected an empty relevant set to pass when not required: %v", err)
	}
	// k beyond the list length is fine.
	if err := eval.ValidateInputs(ranked, relevant, 100, false); err != nil {
		t.Errorf("expected k beyond the list length to pass: %v", err)
	}
}

func TestValidationErrorsAreRecoverable(t *testing.T) {
	err := eval.ValidateInputs(nil, nil, 0, false)
	if !eval.IsValidation(err) {
		t.Errorf("expected a ValidationError, got %T", err)
	}
}

func TestValidatePersistence(t *testing.T) {
	for _, p := range []float64{0.01, 0.5, 0.95, 0.99} {
		if err := eval.ValidatePersistence(p); err != nil {
			t.Errorf("expected persistence %v to be valid: %v", p, err)
		}
	}
	for _, p := range []float64{-1.0, 0.0, 1.0, 2.0} {
		if err := eval.ValidatePersistence(p); err == nil {
			t.Errorf("expected persistence %v to be rejected", p)
		}
	}
}

func TestValidateBeta(t *testing.T) {
	for _, beta := range []float64{0.5, 1.0, 3.0} {
		if err := eval.ValidateBeta(beta); err != nil {
			t.Errorf("expected beta %v to be valid: %v", beta, err)
		}
	}
	for _, beta := range []float64{0.0, -1.0} {
		if err := eval.ValidateBeta(beta); err == nil {
			t.Errorf("expected beta %v to be rejected", beta)
		}
	}
}
