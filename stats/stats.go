// Package stats provides paired significance testing for comparing the
// per-query scores of two retrieval methods.
package stats

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// TTestResult is the outcome of a paired t-test.
type TTestResult struct {
	TStatistic       float64 `json:"t_statistic"`
	PValue           float64 `json:"p_value"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
	MeanDifference   float64 `json:"mean_difference"`
	StdError         float64 `json:"std_error"`
	Significant      bool    `json:"significant"`
}

// PairedTTest tests whether the mean per-query difference between two
// methods' scores is zero. The two slices must be aligned by query. The
// two-tailed p-value uses a normal approximation to the t distribution
// regardless of the degrees of freedom. With fewer than two pairs the
// result is neutral rather than an error.
func PairedTTest(methodA, methodB []float64, alpha float64) (TTestResult, error) {
	if len(methodA) != len(methodB) {
		return TTestResult{}, errors.Errorf("score vectors must have the same length (%d != %d)", len(methodA), len(methodB))
	}
	if len(methodA) < 2 {
		return TTestResult{
			TStatistic:       0.0,
			PValue:           1.0,
			DegreesOfFreedom: 0,
			MeanDifference:   0.0,
			StdError:         0.0,
			Significant:      false,
		}, nil
	}

	differences := make([]float64, len(methodA))
	for i := range methodA {
		differences[i] = methodA[i] - methodB[i]
	}

	meanDiff := stat.Mean(differences, nil)
	variance := stat.Variance(differences, nil)
	stdError := math.Sqrt(variance / float64(len(differences)))

	tStatistic := 0.0
	if stdError > 1e-10 {
		tStatistic = meanDiff / stdError
	}

	pValue := 2.0 * (1.0 - normalCDF(math.Abs(tStatistic)))

	return TTestResult{
		TStatistic:       tStatistic,
		PValue:           pValue,
		DegreesOfFreedom: len(differences) - 1,
		MeanDifference:   meanDiff,
		StdError:         stdError,
		Significant:      pValue < alpha,
	}, nil
}

// ConfidenceInterval computes a normal-approximation confidence interval
// around the mean of scores. Empty input yields (0, 0).
func ConfidenceInterval(scores []float64, confidence float64) (float64, float64) {
	if len(scores) == 0 {
		return 0.0, 0.0
	}
	mean := stat.Mean(scores, nil)
	stdDev := stat.StdDev(scores, nil)
	stdError := stdDev / math.Sqrt(float64(len(scores)))

	alpha := 1.0 - confidence
	z := normalQuantile(1.0 - alpha/2.0)
	margin := z * stdError
	return mean - margin, mean + margin
}

// CohensD computes the effect size between two methods' scores using the
// pooled standard deviation. A numerically negligible pooled deviation, or
// empty input, yields 0.
func CohensD(methodA, methodB []float64) (float64, error) {
	if len(methodA) != len(methodB) {
		return 0, errors.Errorf("score vectors must have the same length (%d != %d)", len(methodA), len(methodB))
	}
	if len(methodA) == 0 {
		return 0.0, nil
	}

	meanA := stat.Mean(methodA, nil)
	meanB := stat.Mean(methodB, nil)
	varA := stat.Variance(methodA, nil)
	varB := stat.Variance(methodB, nil)

	pooled := math.Sqrt((varA + varB) / 2.0)
	if pooled < 1e-10 {
		return 0.0, nil
	}
	return (meanA - meanB) / pooled, nil
}

func normalCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// normalQuantile approximates the standard normal inverse CDF using the
// Beasley-Springer-Moro rational approximation.
func normalQuantile(p float64) float64 {
	if p < 0.5 {
		return -normalQuantile(1.0 - p)
	}
	if p == 0.5 {
		return 0.0
	}
	t := math.Sqrt(-2.0 * math.Log(1.0-p))
	return t - (2.515517+0.802853*t+0.010328*t*t)/
		(1.0+1.432788*t+0.189269*t*t+0.001308*t*t*t)
}
