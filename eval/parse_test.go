package eval_test

import (
	"testing"

	"github.com/hscells/rankeval/eval"
)

func TestParseEvaluatorRoundTrips(t *testing.T) {
	for _, name := range []string{
		"precision@5",
		"precision@10",
		"recall@10",
		"ndcg@10",
		"err@10",
		"rbp@10",
		"f1@10",
		"f0.5@10",
		"success@10",
		"graded_ndcg@10",
		"mrr",
		"ap",
		"r_precision",
		"graded_map",
	} {
		evaluator, err := eval.ParseEvaluator(name)
		if err != nil {
			t.Fatalf("could not parse %q: %v", name, err)
		}
		if evaluator.Name() != name {
			t.Errorf("expected %q to round-trip, got %q", name, evaluator.Name())
		}
	}
}

func TestParseEvaluatorMapAlias(t *testing.T) {
	evaluator, err := eval.ParseEvaluator("map")
	if err != nil {
		t.Fatal(err)
	}
	if evaluator.Name() != "ap" {
		t.Errorf("expected map to alias ap, got %q", evaluator.Name())
	}
}

func TestParseEvaluatorUnknown(t *testing.T) {
	if _, err := eval.ParseEvaluator("bpref"); err == nil {
		t.Error("expected an error for an unknown measure")
	}
	if _, err := eval.ParseEvaluator("ndcg@zero"); err == nil {
		t.Error("expected an error for a malformed cutoff")
	}
	if _, err := eval.ParseEvaluator("ndcg@0"); err == nil {
		t.Error("expected an error for a zero cutoff")
	}
	if _, err := eval.ParseEvaluator("ndcg"); err == nil {
		t.Error("expected an error for a missing cutoff")
	}
	if _, err := eval.ParseEvaluator("mrr@10"); err == nil {
		t.Error("expected an error for a cutoff on mrr")
	}
}

func TestParseEvaluators(t *testing.T) {
	evaluators, err := eval.ParseEvaluators([]string{"ndcg@10", "mrr"})
	if err != nil {
		t.Fatal(err)
	}
	if len(evaluators) != 2 {
		t.Fatalf("expected 2 evaluators, got %d", len(evaluators))
	}
	if _, err := eval.ParseEvaluators([]string{"ndcg@10", "nope"}); err == nil {
		t.Error("expected an error when any name is unknown")
	}
}

func TestNewRBPValidatesPersistence(t *testing.T) {
	if _, err := eval.NewRBP(10, 0.0); err == nil {
		t.Error("expected an error for persistence 0.0")
	}
	if _, err := eval.NewRBP(10, 1.0); err == nil {
		t.Error("expected an error for persistence 1.0")
	}
	if _, err := eval.NewRBP(10, 0.8); err != nil {
		t.Errorf("expected persistence 0.8 to be accepted: %v", err)
	}
}

func TestNewFMeasureValidatesBeta(t *testing.T) {
	if _, err := eval.NewFMeasure(10, 0.0); err == nil {
		t.Error("expected an error for beta 0.0")
	}
	if _, err := eval.NewFMeasure(10, -1.0); err == nil {
		t.Error("expected an error for a negative beta")
	}
}
