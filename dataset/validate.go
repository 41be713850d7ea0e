package dataset

import (
	"fmt"
	"sort"

	"github.com/hscells/rankeval/trec"
)

// ValidationStatistics summarises the size and overlap of a dataset.
type ValidationStatistics struct {
	RunsCount              int `json:"runs_count"`
	QrelsCount             int `json:"qrels_count"`
	UniqueQueriesInRuns    int `json:"unique_queries_in_runs"`
	UniqueQueriesInQrels   int `json:"unique_queries_in_qrels"`
	QueriesInBoth          int `json:"queries_in_both"`
	QueriesOnlyInRuns      int `json:"queries_only_in_runs"`
	QueriesOnlyInQrels     int `json:"queries_only_in_qrels"`
	UniqueDocumentsInRuns  int `json:"unique_documents_in_runs"`
	UniqueDocumentsInQrels int `json:"unique_documents_in_qrels"`
	DocumentsInBoth        int `json:"documents_in_both"`
}

// ValidationResult reports the consistency of a dataset. Errors make the
// dataset unusable for evaluation; warnings flag conditions evaluation
// tolerates, like duplicate entries, which grouping resolves by letting
// the last record win.
type ValidationResult struct {
	Valid      bool                 `json:"valid"`
	Errors     []string             `json:"errors"`
	Warnings   []string             `json:"warnings"`
	Statistics ValidationStatistics `json:"statistics"`
}

// Validate checks already-parsed runs and qrels for consistency.
func Validate(runs trec.RunList, qrels trec.QrelList) ValidationResult {
	var result ValidationResult

	if len(runs) == 0 {
		result.Errors = append(result.Errors, "runs are empty")
	}
	if len(qrels) == 0 {
		result.Errors = append(result.Errors, "qrels are empty")
	}

	runQueries := make([]string, len(runs))
	runDocs := make([]string, len(runs))
	for i, run := range runs {
		runQueries[i] = run.QueryID
		runDocs[i] = run.DocID
	}
	qrelQueries := make([]string, len(qrels))
	qrelDocs := make([]string, len(qrels))
	for i, qrel := range qrels {
		qrelQueries[i] = qrel.QueryID
		qrelDocs[i] = qrel.DocID
	}
	runQueries = uniq(runQueries)
	runDocs = uniq(runDocs)
	qrelQueries = uniq(qrelQueries)
	qrelDocs = uniq(qrelDocs)

	queriesInBoth := intersectionSize(runQueries, qrelQueries)
	docsInBoth := intersectionSize(runDocs, qrelDocs)

	if n := len(runQueries) - queriesInBoth; n > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d queries in runs but not in qrels (they will be skipped in evaluation)", n))
	}
	if n := len(qrelQueries) - queriesInBoth; n > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d queries in qrels but not in runs (no evaluation possible for them)", n))
	}
	if queriesInBoth == 0 && len(runs) > 0 && len(qrels) > 0 {
		result.Errors = append(result.Errors, "no queries in common between runs and qrels")
	}

	seenRuns := make(map[[3]string]bool)
	for _, run := range runs {
		key := [3]string{run.QueryID, run.DocID, run.RunTag}
		if seenRuns[key] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate run entry: query=%s, doc=%s, tag=%s", run.QueryID, run.DocID, run.RunTag))
		}
		seenRuns[key] = true
	}

	seenQrels := make(map[[2]string]bool)
	for _, qrel := range qrels {
		key := [2]string{qrel.QueryID, qrel.DocID}
		if seenQrels[key] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate qrel entry: query=%s, doc=%s (last judgment wins)", qrel.QueryID, qrel.DocID))
		}
		seenQrels[key] = true
	}

	result.Warnings = append(result.Warnings, rankWarnings(runs)...)

	result.Statistics = ValidationStatistics{
		RunsCount:              len(runs),
		QrelsCount:             len(qrels),
		UniqueQueriesInRuns:    len(runQueries),
		UniqueQueriesInQrels:   len(qrelQueries),
		QueriesInBoth:          queriesInBoth,
		QueriesOnlyInRuns:      len(runQueries) - queriesInBoth,
		QueriesOnlyInQrels:     len(qrelQueries) - queriesInBoth,
		UniqueDocumentsInRuns:  len(runDocs),
		UniqueDocumentsInQrels: len(qrelDocs),
		DocumentsInBoth:        docsInBoth,
	}
	result.Valid = len(result.Errors) == 0
	return result
}

// rankWarnings flags ranks that are not the sequence 1..n within each
// query and run tag. Evaluation orders documents by score and ignores the
// rank field, so this is only a warning.
func rankWarnings(runs trec.RunList) []string {
	byTag := make(map[[2]string][]int64)
	for _, run := range runs {
		key := [2]string{run.QueryID, run.RunTag}
		byTag[key] = append(byTag[key], run.Rank)
	}

	keys := make([][2]string, 0, len(byTag))
	for key := range byTag {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	var warnings []string
	for _, key := range keys {
		ranks := byTag[key]
		sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
		for i, rank := range ranks {
			if rank != int64(i+1) {
				warnings = append(warnings,
					fmt.Sprintf("query %s (tag %s): rank %d not sequential (expected %d)", key[0], key[1], rank, i+1))
			}
		}
	}
	return warnings
}
