package eval

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPersistence is the RBP persistence used when a measure is parsed
// from a name like "rbp@10".
const DefaultPersistence = 0.95

// ParseEvaluator resolves a measure name such as "ndcg@10", "precision@5",
// "mrr", "ap" or "f0.5@10" into a typed Evaluator. The cutoff and any
// parameter are validated here, so an unknown or malformed name is an
// error rather than something to silently skip at evaluation time.
func ParseEvaluator(name string) (Evaluator, error) {
	base := name
	k := 0
	if i := strings.Index(name, "@"); i >= 0 {
		base = name[:i]
		cutoff, err := strconv.Atoi(name[i+1:])
		if err != nil || cutoff < 1 {
			return nil, errors.Errorf("invalid cutoff in measure %q", name)
		}
		k = cutoff
	}

	switch base {
	case "precision", "p":
		if k == 0 {
			return nil, errors.Errorf("measure %q requires a cutoff", name)
		}
		return Precision{K: k}, nil
	case "recall", "r":
		if k == 0 {
			return nil, errors.Errorf("measure %q requires a cutoff", name)
		}
		return Recall{K: k}, nil
	case "ndcg":
		if k == 0 {
			return nil, errors.Errorf("measure %q requires a cutoff", name)
		}
		return NDCG{K: k}, nil
	case "err":
		if k == 0 {
			return nil, errors.Errorf("measure %q requires a cutoff", name)
		}
		return ERR{K: k}, nil
	case "rbp":
		if k == 0 {
			return nil, errors.Errorf("measure %q requires a cutoff", name)
		}
		return NewRBP(k, DefaultPersistence)
	case "success":
		if k == 0 {
			return nil, errors.Errorf("measure %q requires a cutoff", name)
		}
		return Success{K: k}, nil
	case "graded_ndcg":
		if k == 0 {
			return nil, errors.Errorf("measure %q requires a cutoff", name)
		}
		return GradedNDCG{K: k}, nil
	case "mrr":
		if k != 0 {
			return nil, errors.Errorf("measure %q does not take a cutoff", name)
		}
		return MRR, nil
	case "ap", "map":
		if k != 0 {
			return nil, errors.Errorf("measure %q does not take a cutoff", name)
		}
		return AP, nil
	case "r_precision":
		if k != 0 {
			return nil, errors.Errorf("measure %q does not take a cutoff", name)
		}
		return RPrecisionEvaluator, nil
	case "graded_map":
		if k != 0 {
			return nil, errors.Errorf("measure %q does not take a cutoff", name)
		}
		return GradedAP, nil
	}

	if strings.HasPrefix(base, "f") {
		if k == 0 {
			return nil, errors.Errorf("measure %q requires a cutoff", name)
		}
		beta, err := strconv.ParseFloat(base[1:], 64)
		if err != nil {
			return nil, errors.Errorf("invalid beta in measure %q", name)
		}
		return NewFMeasure(k, beta)
	}

	return nil, errors.Errorf("unknown measure %q", name)
}

// ParseEvaluators resolves a list of measure names, failing on the first
// unknown name.
func ParseEvaluators(names []string) ([]Evaluator, error) {
	evaluators := make([]Evaluator, len(names))
	for i, name := range names {
		evaluator, err := ParseEvaluator(name)
		if err != nil {
			return nil, err
		}
		evaluators[i] = evaluator
	}
	return evaluators, nil
}
