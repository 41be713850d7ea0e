// Package eval computes evaluation measures over ranked lists of documents
// and aggregates them across queries.
package eval

import (
	"math"

	"github.com/hscells/rankeval/trec"
)

// PrecisionAtK computes the fraction of the top-k documents that are
// relevant. k of 0 scores 0.
func PrecisionAtK(ranked []string, relevant trec.RelevantSet, k int) float64 {
	if k == 0 {
		return 0.0
	}
	hits := 0
	for i, doc := range ranked {
		if i >= k {
			break
		}
		if relevant[doc] {
			hits++
		}
	}
	return float64(hits) / float64(k)
}

// RecallAtK computes the fraction of the relevant documents found in the
// top-k. An empty relevant set scores 0.
func RecallAtK(ranked []string, relevant trec.RelevantSet, k int) float64 {
	if len(relevant) == 0 {
		return 0.0
	}
	hits := 0
	for i, doc := range ranked {
		if i >= k {
			break
		}
		if relevant[doc] {
			hits++
		}
	}
	return float64(hits) / float64(len(relevant))
}

// ReciprocalRank computes the reciprocal of the 1-based rank of the first
// relevant document, or 0 when none is found. Averaged across queries this
// becomes MRR.
func ReciprocalRank(ranked []string, relevant trec.RelevantSet) float64 {
	for i, doc := range ranked {
		if relevant[doc] {
			return 1.0 / float64(i+1)
		}
	}
	return 0.0
}

// DCGAtK computes discounted cumulative gain over the top-k with binary
// gains, discounting position i (0-based) by log2(i+2).
func DCGAtK(ranked []string, relevant trec.RelevantSet, k int) float64 {
	var score float64
	for i, doc := range ranked {
		if i >= k {
			break
		}
		if relevant[doc] {
			score += 1.0 / math.Log2(float64(i)+2)
		}
	}
	return score
}

// IDCGAtK computes the ideal DCG when the first min(k, numRelevant)
// positions are all relevant.
func IDCGAtK(numRelevant, k int) float64 {
	n := k
	if numRelevant < n {
		n = numRelevant
	}
	var score float64
	for i := 0; i < n; i++ {
		score += 1.0 / math.Log2(float64(i)+2)
	}
	return score
}

// NDCGAtK computes DCG@k normalised by the ideal DCG. A zero ideal scores
// 0 rather than dividing by zero.
func NDCGAtK(ranked []string, relevant trec.RelevantSet, k int) float64 {
	ideal := IDCGAtK(len(relevant), k)
	if ideal == 0 {
		return 0.0
	}
	return DCGAtK(ranked, relevant, k) / ideal
}

// AveragePrecision computes the mean of the precision at each position
// holding a relevant document, divided by the size of the relevant set.
func AveragePrecision(ranked []string, relevant trec.RelevantSet) float64 {
	if len(relevant) == 0 {
		return 0.0
	}
	var sum float64
	hits := 0
	for i, doc := range ranked {
		if relevant[doc] {
			hits++
			sum += float64(hits) / float64(i+1)
		}
	}
	return sum / float64(len(relevant))
}

// ERRAtK computes expected reciprocal rank under a cascade user model. With
// binary relevance the user always stops at the first relevant document, so
// this reduces to the reciprocal rank of the first hit within the top-k.
func ERRAtK(ranked []string, relevant trec.RelevantSet, k int) float64 {
	if len(relevant) == 0 {
		return 0.0
	}
	pContinue := 1.0
	var err float64
	for i, doc := range ranked {
		if i >= k {
			break
		}
		if relevant[doc] {
			r := 1.0
			err += pContinue * r / float64(i+1)
			pContinue *= 1.0 - r
		}
	}
	return err
}

// RBPAtK computes rank-biased precision with the given persistence. A
// persistence outside (0, 1) scores 0 rather than erroring; callers that
// want an error should use ValidatePersistence first.
func RBPAtK(ranked []string, relevant trec.RelevantSet, k int, persistence float64) float64 {
	if persistence <= 0 || persistence >= 1 {
		return 0.0
	}
	var sum float64
	power := 1.0
	for i, doc := range ranked {
		if i >= k {
			break
		}
		if relevant[doc] {
			sum += power
		}
		power *= persistence
	}
	return (1.0 - persistence) * sum
}

// FMeasureAtK computes the weighted harmonic mean of precision and recall
// at k, with beta controlling the trade-off.
func FMeasureAtK(ranked []string, relevant trec.RelevantSet, k int, beta float64) float64 {
	precision := PrecisionAtK(ranked, relevant, k)
	recall := RecallAtK(ranked, relevant, k)
	if precision == 0 && recall == 0 {
		return 0.0
	}
	betaSquared := beta * beta
	return (1 + betaSquared) * (precision * recall) / (betaSquared*precision + recall)
}

// SuccessAtK scores 1 when at least one of the top-k documents is relevant.
func SuccessAtK(ranked []string, relevant trec.RelevantSet, k int) float64 {
	for i, doc := range ranked {
		if i >= k {
			break
		}
		if relevant[doc] {
			return 1.0
		}
	}
	return 0.0
}

// RPrecision computes precision at R, where R is the size of the relevant
// set.
func RPrecision(ranked []string, relevant trec.RelevantSet) float64 {
	if len(relevant) == 0 {
		return 0.0
	}
	return PrecisionAtK(ranked, relevant, len(relevant))
}
