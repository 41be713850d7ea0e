package eval

import (
	"fmt"

	"github.com/hscells/rankeval/trec"
)

// Evaluator is a named evaluation measure scoring one ranked list of
// documents against the judgments for its query.
type Evaluator interface {
	Score(ranked []string, judgments trec.Judgments) float64
	Name() string
}

// Precision computes precision@K.
type Precision struct{ K int }

// Recall computes recall@K.
type Recall struct{ K int }

// NDCG computes nDCG@K with binary gains.
type NDCG struct{ K int }

// ERR computes expected reciprocal rank at K.
type ERR struct{ K int }

// RBP computes rank-biased precision at K. Construct through NewRBP or
// ParseEvaluator so the persistence is validated.
type RBP struct {
	K           int
	Persistence float64
}

// FMeasure computes f-measure at K, with beta controlling the precision
// and recall trade-off.
type FMeasure struct {
	K    int
	Beta float64
}

// Success computes success@K.
type Success struct{ K int }

// GradedNDCG computes nDCG@K using relevance grades as gains.
type GradedNDCG struct{ K int }

type mrr struct{}
type ap struct{}
type rPrecision struct{}
type gradedAP struct{}

var (
	// MRR is the reciprocal rank of the first relevant document.
	MRR = mrr{}
	// AP is average precision.
	AP = ap{}
	// RPrecisionEvaluator is precision at the size of the relevant set.
	RPrecisionEvaluator = rPrecision{}
	// GradedAP is average precision over graded judgments collapsed to
	// binary relevance.
	GradedAP = gradedAP{}
)

// NewRBP constructs an RBP evaluator, rejecting a persistence outside
// (0, 1).
func NewRBP(k int, persistence float64) (Evaluator, error) {
	if err := ValidatePersistence(persistence); err != nil {
		return nil, err
	}
	return RBP{K: k, Persistence: persistence}, nil
}

// NewFMeasure constructs an f-measure evaluator, rejecting a non-positive
// beta.
func NewFMeasure(k int, beta float64) (Evaluator, error) {
	if err := ValidateBeta(beta); err != nil {
		return nil, err
	}
	return FMeasure{K: k, Beta: beta}, nil
}

func (e Precision) Score(ranked []string, judgments trec.Judgments) float64 {
	return PrecisionAtK(ranked, judgments.RelevantSet(), e.K)
}

func (e Precision) Name() string {
	return fmt.Sprintf("precision@%d", e.K)
}

func (e Recall) Score(ranked []string, judgments trec.Judgments) float64 {
	return RecallAtK(ranked, judgments.RelevantSet(), e.K)
}

func (e Recall) Name() string {
	return fmt.Sprintf("recall@%d", e.K)
}

func (mrr) Score(ranked []string, judgments trec.Judgments) float64 {
	return ReciprocalRank(ranked, judgments.RelevantSet())
}

func (mrr) Name() string {
	return "mrr"
}

func (e NDCG) Score(ranked []string, judgments trec.Judgments) float64 {
	return NDCGAtK(ranked, judgments.RelevantSet(), e.K)
}

func (e NDCG) Name() string {
	return fmt.Sprintf("ndcg@%d", e.K)
}

func (ap) Score(ranked []string, judgments trec.Judgments) float64 {
	return AveragePrecision(ranked, judgments.RelevantSet())
}

func (ap) Name() string {
	return "ap"
}

func (e ERR) Score(ranked []string, judgments trec.Judgments) float64 {
	return ERRAtK(ranked, judgments.RelevantSet(), e.K)
}

func (e ERR) Name() string {
	return fmt.Sprintf("err@%d", e.K)
}

func (e RBP) Score(ranked []string, judgments trec.Judgments) float64 {
	return RBPAtK(ranked, judgments.RelevantSet(), e.K, e.Persistence)
}

func (e RBP) Name() string {
	return fmt.Sprintf("rbp@%d", e.K)
}

func (e FMeasure) Score(ranked []string, judgments trec.Judgments) float64 {
	return FMeasureAtK(ranked, judgments.RelevantSet(), e.K, e.Beta)
}

func (e FMeasure) Name() string {
	return fmt.Sprintf("f%v@%d", e.Beta, e.K)
}

func (e Success) Score(ranked []string, judgments trec.Judgments) float64 {
	return SuccessAtK(ranked, judgments.RelevantSet(), e.K)
}

func (e Success) Name() string {
	return fmt.Sprintf("success@%d", e.K)
}

func (rPrecision) Score(ranked []string, judgments trec.Judgments) float64 {
	return RPrecision(ranked, judgments.RelevantSet())
}

func (rPrecision) Name() string {
	return "r_precision"
}

func (e GradedNDCG) Score(ranked []string, judgments trec.Judgments) float64 {
	docs := make([]trec.ScoredDoc, len(ranked))
	for i, doc := range ranked {
		docs[i] = trec.ScoredDoc{DocID: doc}
	}
	return GradedNDCGAtK(docs, judgments, e.K)
}

func (e GradedNDCG) Name() string {
	return fmt.Sprintf("graded_ndcg@%d", e.K)
}

func (gradedAP) Score(ranked []string, judgments trec.Judgments) float64 {
	docs := make([]trec.ScoredDoc, len(ranked))
	for i, doc := range ranked {
		docs[i] = trec.ScoredDoc{DocID: doc}
	}
	return GradedAveragePrecision(docs, judgments)
}

func (gradedAP) Name() string {
	return "graded_map"
}
