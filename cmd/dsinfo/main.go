package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/alexflint/go-arg"
	"github.com/hscells/rankeval/dataset"
	"github.com/hscells/rankeval/trec"
)

var (
	name    = "dsinfo"
	version = "30.Aug.2026"
	author  = "Harry Scells"
)

type args struct {
	Stats     bool   `help:"Also print dataset statistics" arg:"-t"`
	QrelsFile string `help:"Path to qrels file" arg:"required,positional"`
	RunFile   string `help:"Path to run file" arg:"required,positional"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

func main() {
	var args args
	arg.MustParse(&args)

	runs, err := trec.LoadRuns(args.RunFile)
	if err != nil {
		log.Fatalln(err)
	}
	qrels, err := trec.LoadQrels(args.QrelsFile)
	if err != nil {
		log.Fatalln(err)
	}

	result := dataset.Validate(runs, qrels)
	printValidation(result)

	if args.Stats {
		printStats(dataset.Stats(runs, qrels))
	}
}

func printValidation(result dataset.ValidationResult) {
	status := "VALID"
	if !result.Valid {
		status = "INVALID"
	}
	fmt.Printf("status: %s\n", status)

	if len(result.Errors) > 0 {
		fmt.Println("\nerrors:")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\nwarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	s := result.Statistics
	fmt.Println("\nstatistics:")
	fmt.Printf("  runs:      %d entries\n", s.RunsCount)
	fmt.Printf("  qrels:     %d entries\n", s.QrelsCount)
	fmt.Printf("  queries:   %d in runs, %d in qrels, %d in both\n",
		s.UniqueQueriesInRuns, s.UniqueQueriesInQrels, s.QueriesInBoth)
	fmt.Printf("  documents: %d in runs, %d in qrels, %d in both\n",
		s.UniqueDocumentsInRuns, s.UniqueDocumentsInQrels, s.DocumentsInBoth)
}

func printStats(stats dataset.ComprehensiveStats) {
	fmt.Println("\nrun statistics:")
	fmt.Printf("  entries:          %d\n", stats.Runs.TotalEntries)
	fmt.Printf("  unique queries:   %d\n", stats.Runs.UniqueQueries)
	fmt.Printf("  unique documents: %d\n", stats.Runs.UniqueDocuments)
	fmt.Printf("  run tags:         %d\n", stats.Runs.UniqueRunTags)
	tags := make([]string, len(stats.Runs.RunTags))
	copy(tags, stats.Runs.RunTags)
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Printf("    %s: %d entries, %d documents\n",
			tag, stats.Runs.EntriesPerRun[tag], stats.Runs.DocumentsPerRun[tag])
	}
	fmt.Printf("  docs per query:   min %d, avg %.2f, max %d\n",
		stats.Runs.MinDocsPerQuery, stats.Runs.AvgDocsPerQuery, stats.Runs.MaxDocsPerQuery)
	d := stats.Runs.Scores
	fmt.Printf("  scores:           min %.4f, mean %.4f, max %.4f, stddev %.4f\n", d.Min, d.Mean, d.Max, d.StdDev)
	fmt.Printf("  percentiles:      p25 %.4f, p50 %.4f, p75 %.4f, p90 %.4f, p95 %.4f, p99 %.4f\n",
		d.P25, d.P50, d.P75, d.P90, d.P95, d.P99)

	fmt.Println("\nqrel statistics:")
	fmt.Printf("  entries:               %d\n", stats.Qrels.TotalEntries)
	fmt.Printf("  unique queries:        %d\n", stats.Qrels.UniqueQueries)
	fmt.Printf("  unique documents:      %d\n", stats.Qrels.UniqueDocuments)
	fmt.Printf("  queries with relevant: %d\n", stats.Qrels.QueriesWithRelevant)
	fmt.Printf("  relevant per query:    %.2f\n", stats.Qrels.AvgRelevantPerQuery)
	grades := make([]int64, 0, len(stats.Qrels.GradeHistogram))
	for grade := range stats.Qrels.GradeHistogram {
		grades = append(grades, grade)
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i] < grades[j] })
	for _, grade := range grades {
		fmt.Printf("    grade %d: %d judgments\n", grade, stats.Qrels.GradeHistogram[grade])
	}

	fmt.Println("\noverlap:")
	fmt.Printf("  queries:   %d in both (%.0f%% of qrels)\n",
		stats.Overlap.QueriesInBoth, stats.Overlap.QueryOverlapRatio*100)
	fmt.Printf("  documents: %d in both (%.0f%% of qrels)\n",
		stats.Overlap.DocumentsInBoth, stats.Overlap.DocumentOverlapRatio*100)

	fmt.Println("\nquality:")
	fmt.Printf("  queries with multiple runs: %d\n", stats.Quality.QueriesWithMultipleRuns)
	fmt.Printf("  queries with a single run:  %d\n", stats.Quality.QueriesWithSingleRun)
	fmt.Printf("  avg runs per query:         %.2f\n", stats.Quality.AvgRunsPerQuery)
	fmt.Printf("  fusion readiness:           %.0f%%\n", stats.Quality.FusionReadinessRatio*100)
}
