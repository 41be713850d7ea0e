package eval

import (
	"math"
	"sort"

	"github.com/hscells/rankeval/trec"
)

// GradedNDCGAtK computes nDCG@k using the relevance grades themselves as
// gains rather than a binary indicator. The ideal ranking places the
// positive grades in descending order. A zero ideal scores 0.
func GradedNDCGAtK(ranked []trec.ScoredDoc, judgments trec.Judgments, k int) float64 {
	idealGains := make([]int64, 0, len(judgments))
	for _, grade := range judgments {
		if grade > 0 {
			idealGains = append(idealGains, grade)
		}
	}
	sort.Slice(idealGains, func(i, j int) bool {
		return idealGains[i] > idealGains[j]
	})

	var dcg float64
	for rank, doc := range ranked {
		if rank >= k {
			break
		}
		if grade, ok := judgments[doc.DocID]; ok && grade > 0 {
			dcg += float64(grade) / math.Log2(float64(rank)+2)
		}
	}

	var idcg float64
	for rank, gain := range idealGains {
		if rank >= k {
			break
		}
		idcg += float64(gain) / math.Log2(float64(rank)+2)
	}

	if idcg == 0 {
		return 0.0
	}
	return dcg / idcg
}

// GradedAveragePrecision computes average precision over graded judgments
// by collapsing them to binary relevance, treating any positive grade as
// relevant. The denominator is the number of positively graded documents in
// the judgment map, whether retrieved or not.
func GradedAveragePrecision(ranked []trec.ScoredDoc, judgments trec.Judgments) float64 {
	numRelevant := 0
	for _, grade := range judgments {
		if grade > 0 {
			numRelevant++
		}
	}
	if numRelevant == 0 {
		return 0.0
	}

	var sum float64
	hits := 0
	for rank, doc := range ranked {
		if judgments[doc.DocID] > 0 {
			hits++
			sum += float64(hits) / float64(rank+1)
		}
	}
	if hits == 0 {
		return 0.0
	}
	return sum / float64(numRelevant)
}
