package eval

import (
	"fmt"
	"sort"

	"github.com/hscells/rankeval/trec"
	"github.com/pkg/errors"
)

// QueryResult holds the measure scores computed for one query.
type QueryResult struct {
	QueryID string             `json:"query_id"`
	Metrics map[string]float64 `json:"metrics"`
}

// BatchResults holds per-query results plus the arithmetic mean of each
// measure across the queries that produced it.
type BatchResults struct {
	Queries    []QueryResult      `json:"queries"`
	Aggregated map[string]float64 `json:"aggregated"`
}

// EvaluateQuery scores a single ranked list with each evaluator.
func EvaluateQuery(ranked []string, judgments trec.Judgments, evaluators []Evaluator) map[string]float64 {
	metrics := make(map[string]float64)
	for _, evaluator := range evaluators {
		metrics[evaluator.Name()] = evaluator.Score(ranked, judgments)
	}
	return metrics
}

// Aggregate computes the mean of each measure over the queries that
// produced a value for it. A measure absent from every query has no entry.
func Aggregate(queries []QueryResult) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, query := range queries {
		for name, value := range query.Metrics {
			sums[name] += value
			counts[name]++
		}
	}
	aggregated := make(map[string]float64)
	for name, sum := range sums {
		aggregated[name] = sum / float64(counts[name])
	}
	return aggregated
}

// Evaluate scores parallel slices of ranked lists and relevant sets, one
// pair per query. Query ids are synthesised from the slice index.
func Evaluate(rankings [][]string, relevant []trec.RelevantSet, evaluators []Evaluator) (BatchResults, error) {
	if len(rankings) != len(relevant) {
		return BatchResults{}, errors.Errorf("rankings and relevant sets must have the same length (%d != %d)", len(rankings), len(relevant))
	}
	queries := make([]QueryResult, len(rankings))
	for i, ranked := range rankings {
		queries[i] = QueryResult{
			QueryID: fmt.Sprintf("query_%d", i),
			Metrics: EvaluateQuery(ranked, relevant[i].Judgments(), evaluators),
		}
	}
	return BatchResults{
		Queries:    queries,
		Aggregated: Aggregate(queries),
	}, nil
}

// FirstRunTags maps each query to the run tag first encountered for it in
// the run file, giving a deterministic choice when a file interleaves
// several methods.
func FirstRunTags(runs trec.RunList) map[string]string {
	tags := make(map[string]string)
	for _, run := range runs {
		if _, ok := tags[run.QueryID]; !ok {
			tags[run.QueryID] = run.RunTag
		}
	}
	return tags
}

// RankedDocs flattens grouped documents into the ranked list of ids the
// binary measures consume. The grouped documents are already sorted by
// score descending.
func RankedDocs(docs []trec.ScoredDoc) []string {
	ranked := make([]string, len(docs))
	for i, doc := range docs {
		ranked[i] = doc.DocID
	}
	return ranked
}

// EvaluateRuns scores TREC runs against qrels. Queries are visited in
// sorted id order; a query judged in the qrels but absent from the runs is
// skipped entirely, and only the first run tag encountered for a query is
// evaluated.
func EvaluateRuns(runs trec.RunList, qrels trec.QrelList, evaluators []Evaluator) BatchResults {
	groupedRuns := trec.GroupRuns(runs)
	groupedQrels := trec.GroupQrels(qrels)
	firstTags := FirstRunTags(runs)

	queryIDs := make([]string, 0, len(groupedQrels))
	for queryID := range groupedQrels {
		queryIDs = append(queryIDs, queryID)
	}
	sort.Strings(queryIDs)

	var queries []QueryResult
	for _, queryID := range queryIDs {
		tags, ok := groupedRuns[queryID]
		if !ok {
			continue
		}
		ranked := RankedDocs(tags[firstTags[queryID]])
		queries = append(queries, QueryResult{
			QueryID: queryID,
			Metrics: EvaluateQuery(ranked, groupedQrels[queryID], evaluators),
		})
	}

	return BatchResults{
		Queries:    queries,
		Aggregated: Aggregate(queries),
	}
}
