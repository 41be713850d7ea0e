package dataset

import (
	"sort"

	"github.com/hscells/rankeval/trec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ComprehensiveStats bundles every statistic computed over a dataset.
type ComprehensiveStats struct {
	Runs    RunStatistics     `json:"runs"`
	Qrels   QrelStatistics    `json:"qrels"`
	Overlap OverlapStatistics `json:"overlap"`
	Quality QualityStatistics `json:"quality"`
}

// RunStatistics summarises the run entries of a dataset.
type RunStatistics struct {
	TotalEntries    int               `json:"total_entries"`
	UniqueQueries   int               `json:"unique_queries"`
	UniqueDocuments int               `json:"unique_documents"`
	UniqueRunTags   int               `json:"unique_run_tags"`
	RunTags         []string          `json:"run_tags"`
	EntriesPerRun   map[string]int    `json:"entries_per_run"`
	DocumentsPerRun map[string]int    `json:"documents_per_run"`
	AvgDocsPerQuery float64           `json:"avg_docs_per_query"`
	MaxDocsPerQuery int               `json:"max_docs_per_query"`
	MinDocsPerQuery int               `json:"min_docs_per_query"`
	Scores          ScoreDistribution `json:"score_distribution"`
}

// QrelStatistics summarises the judgments of a dataset.
type QrelStatistics struct {
	TotalEntries        int           `json:"total_entries"`
	UniqueQueries       int           `json:"unique_queries"`
	UniqueDocuments     int           `json:"unique_documents"`
	QueriesWithRelevant int           `json:"queries_with_relevant"`
	TotalRelevant       int           `json:"total_relevant"`
	AvgRelevantPerQuery float64       `json:"avg_relevant_per_query"`
	GradeHistogram      map[int64]int `json:"grade_histogram"`
}

// OverlapStatistics measures how well runs and qrels cover each other.
type OverlapStatistics struct {
	QueriesInBoth        int     `json:"queries_in_both"`
	QueriesOnlyInRuns    int     `json:"queries_only_in_runs"`
	QueriesOnlyInQrels   int     `json:"queries_only_in_qrels"`
	DocumentsInBoth      int     `json:"documents_in_both"`
	DocumentsOnlyInRuns  int     `json:"documents_only_in_runs"`
	DocumentsOnlyInQrels int     `json:"documents_only_in_qrels"`
	QueryOverlapRatio    float64 `json:"query_overlap_ratio"`
	DocumentOverlapRatio float64 `json:"document_overlap_ratio"`
}

// QualityStatistics reports how many queries carry more than one method's
// output, which a rank fusion experiment would need.
type QualityStatistics struct {
	QueriesWithMultipleRuns int     `json:"queries_with_multiple_runs"`
	QueriesWithSingleRun    int     `json:"queries_with_single_run"`
	FusionReadinessRatio    float64 `json:"fusion_readiness_ratio"`
	AvgRunsPerQuery         float64 `json:"avg_runs_per_query"`
}

// ScoreDistribution summarises the retrieval scores of a run file.
type ScoreDistribution struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	P25    float64 `json:"p25"`
	P50    float64 `json:"p50"`
	P75    float64 `json:"p75"`
	P90    float64 `json:"p90"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
}

// Stats computes comprehensive statistics for already-parsed runs and
// qrels.
func Stats(runs trec.RunList, qrels trec.QrelList) ComprehensiveStats {
	return ComprehensiveStats{
		Runs:    runStatistics(runs),
		Qrels:   qrelStatistics(qrels),
		Overlap: overlapStatistics(runs, qrels),
		Quality: qualityStatistics(runs),
	}
}

func runStatistics(runs trec.RunList) RunStatistics {
	if len(runs) == 0 {
		return RunStatistics{
			EntriesPerRun:   map[string]int{},
			DocumentsPerRun: map[string]int{},
		}
	}

	queries := make([]string, len(runs))
	docs := make([]string, len(runs))
	tags := make([]string, len(runs))
	scores := make([]float64, len(runs))
	entriesPerRun := make(map[string]int)
	docsPerQuery := make(map[string]int)
	docsPerRun := make(map[string]map[string]bool)
	for i, run := range runs {
		queries[i] = run.QueryID
		docs[i] = run.DocID
		tags[i] = run.RunTag
		scores[i] = float64(run.Score)
		entriesPerRun[run.RunTag]++
		docsPerQuery[run.QueryID]++
		if _, ok := docsPerRun[run.RunTag]; !ok {
			docsPerRun[run.RunTag] = make(map[string]bool)
		}
		docsPerRun[run.RunTag][run.DocID] = true
	}

	documentsPerRun := make(map[string]int, len(docsPerRun))
	for tag, perRun := range docsPerRun {
		documentsPerRun[tag] = len(perRun)
	}

	totalDocs := 0
	maxDocs := 0
	minDocs := len(runs)
	for _, n := range docsPerQuery {
		totalDocs += n
		if n > maxDocs {
			maxDocs = n
		}
		if n < minDocs {
			minDocs = n
		}
	}

	queries = uniq(queries)
	docs = uniq(docs)
	tags = uniq(tags)

	return RunStatistics{
		TotalEntries:    len(runs),
		UniqueQueries:   len(queries),
		UniqueDocuments: len(docs),
		UniqueRunTags:   len(tags),
		RunTags:         tags,
		EntriesPerRun:   entriesPerRun,
		DocumentsPerRun: documentsPerRun,
		AvgDocsPerQuery: float64(totalDocs) / float64(len(docsPerQuery)),
		MaxDocsPerQuery: maxDocs,
		MinDocsPerQuery: minDocs,
		Scores:          scoreDistribution(scores),
	}
}

func scoreDistribution(scores []float64) ScoreDistribution {
	if len(scores) == 0 {
		return ScoreDistribution{}
	}
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	quantile := func(p float64) float64 {
		return stat.Quantile(p, stat.Empirical, sorted, nil)
	}

	return ScoreDistribution{
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: quantile(0.5),
		StdDev: stat.StdDev(sorted, nil),
		P25:    quantile(0.25),
		P50:    quantile(0.5),
		P75:    quantile(0.75),
		P90:    quantile(0.9),
		P95:    quantile(0.95),
		P99:    quantile(0.99),
	}
}

func qrelStatistics(qrels trec.QrelList) QrelStatistics {
	if len(qrels) == 0 {
		return QrelStatistics{GradeHistogram: map[int64]int{}}
	}

	queries := make([]string, len(qrels))
	docs := make([]string, len(qrels))
	histogram := make(map[int64]int)
	withRelevant := make(map[string]bool)
	totalRelevant := 0
	for i, qrel := range qrels {
		queries[i] = qrel.QueryID
		docs[i] = qrel.DocID
		histogram[qrel.Relevance]++
		if qrel.Relevance > 0 {
			withRelevant[qrel.QueryID] = true
			totalRelevant++
		}
	}

	queries = uniq(queries)
	docs = uniq(docs)

	return QrelStatistics{
		TotalEntries:        len(qrels),
		UniqueQueries:       len(queries),
		UniqueDocuments:     len(docs),
		QueriesWithRelevant: len(withRelevant),
		TotalRelevant:       totalRelevant,
		AvgRelevantPerQuery: float64(totalRelevant) / float64(len(queries)),
		GradeHistogram:      histogram,
	}
}

func overlapStatistics(runs trec.RunList, qrels trec.QrelList) OverlapStatistics {
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

	queryRatio := 0.0
	if len(qrelQueries) > 0 {
		queryRatio = float64(queriesInBoth) / float64(len(qrelQueries))
	}
	docRatio := 0.0
	if len(qrelDocs) > 0 {
		docRatio = float64(docsInBoth) / float64(len(qrelDocs))
	}

	return OverlapStatistics{
		QueriesInBoth:        queriesInBoth,
		QueriesOnlyInRuns:    len(runQueries) - queriesInBoth,
		QueriesOnlyInQrels:   len(qrelQueries) - queriesInBoth,
		DocumentsInBoth:      docsInBoth,
		DocumentsOnlyInRuns:  len(runDocs) - docsInBoth,
		DocumentsOnlyInQrels: len(qrelDocs) - docsInBoth,
		QueryOverlapRatio:    queryRatio,
		DocumentOverlapRatio: docRatio,
	}
}

func qualityStatistics(runs trec.RunList) QualityStatistics {
	if len(runs) == 0 {
		return QualityStatistics{}
	}

	tagsPerQuery := make(map[string]map[string]bool)
	for _, run := range runs {
		if _, ok := tagsPerQuery[run.QueryID]; !ok {
			tagsPerQuery[run.QueryID] = make(map[string]bool)
		}
		tagsPerQuery[run.QueryID][run.RunTag] = true
	}

	multiple := 0
	totalTags := 0
	for _, tags := range tagsPerQuery {
		totalTags += len(tags)
		if len(tags) > 1 {
			multiple++
		}
	}

	return QualityStatistics{
		QueriesWithMultipleRuns: multiple,
		QueriesWithSingleRun:    len(tagsPerQuery) - multiple,
		FusionReadinessRatio:    float64(multiple) / float64(len(tagsPerQuery)),
		AvgRunsPerQuery:         float64(totalTags) / float64(len(tagsPerQuery)),
	}
}
