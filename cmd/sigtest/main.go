package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/alexflint/go-arg"
	"github.com/go-errors/errors"
	"github.com/hscells/rankeval/eval"
	"github.com/hscells/rankeval/stats"
	"github.com/hscells/rankeval/trec"
)

var (
	name    = "sigtest"
	version = "30.Aug.2026"
	author  = "Harry Scells"
)

type args struct {
	Evaluation string  `help:"Evaluation measure to compare methods with" arg:"-e"`
	Alpha      float64 `help:"Significance level for the paired t-test" arg:"-a"`
	Confidence float64 `help:"Confidence level for the per-method intervals" arg:"-c"`
	Output     string  `help:"File to write the report to (default stdout)" arg:"-o"`
	QrelsFile  string  `help:"Path to qrels file" arg:"required,positional"`
	RunFileA   string  `help:"Path to the first run file" arg:"required,positional"`
	RunFileB   string  `help:"Path to the second run file" arg:"required,positional"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

type interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type report struct {
	Measure    string            `json:"measure"`
	NumQueries int               `json:"num_queries"`
	MeanA      float64           `json:"mean_a"`
	MeanB      float64           `json:"mean_b"`
	IntervalA  interval          `json:"confidence_interval_a"`
	IntervalB  interval          `json:"confidence_interval_b"`
	TTest      stats.TTestResult `json:"ttest"`
	CohensD    float64           `json:"cohens_d"`
	Alpha      float64           `json:"alpha"`
	Confidence float64           `json:"confidence"`
}

// perQueryScores maps each evaluated query to its score for one run file.
func perQueryScores(runs trec.RunList, qrels trec.QrelList, evaluator eval.Evaluator) map[string]float64 {
	results := eval.EvaluateRuns(runs, qrels, []eval.Evaluator{evaluator})
	scores := make(map[string]float64, len(results.Queries))
	for _, query := range results.Queries {
		scores[query.QueryID] = query.Metrics[evaluator.Name()]
	}
	return scores
}

func main() {
	args := args{
		Evaluation: "ndcg@10",
		Alpha:      0.05,
		Confidence: 0.95,
	}
	arg.MustParse(&args)

	evaluator, err := eval.ParseEvaluator(args.Evaluation)
	if err != nil {
		log.Fatalln(err)
	}

	qrels, err := trec.LoadQrels(args.QrelsFile)
	if err != nil {
		log.Fatalln(err)
	}
	runsA, err := trec.LoadRuns(args.RunFileA)
	if err != nil {
		log.Fatalln(err)
	}
	runsB, err := trec.LoadRuns(args.RunFileB)
	if err != nil {
		log.Fatalln(err)
	}

	scoresA := perQueryScores(runsA, qrels, evaluator)
	scoresB := perQueryScores(runsB, qrels, evaluator)

	// Align the two methods on the queries both of them retrieved for.
	var queryIDs []string
	for queryID := range scoresA {
		if _, ok := scoresB[queryID]; ok {
			queryIDs = append(queryIDs, queryID)
		}
	}
	sort.Strings(queryIDs)
	if len(queryIDs) == 0 {
		log.Fatalln("no queries in common between the two run files")
	}

	a := make([]float64, len(queryIDs))
	b := make([]float64, len(queryIDs))
	for i, queryID := range queryIDs {
		a[i] = scoresA[queryID]
		b[i] = scoresB[queryID]
	}

	ttest, err := stats.PairedTTest(a, b, args.Alpha)
	if err != nil {
		log.Fatalln(errors.Wrap(err, 0).ErrorStack())
	}
	d, err := stats.CohensD(a, b)
	if err != nil {
		log.Fatalln(errors.Wrap(err, 0).ErrorStack())
	}
	lowerA, upperA := stats.ConfidenceInterval(a, args.Confidence)
	lowerB, upperB := stats.ConfidenceInterval(b, args.Confidence)

	r := report{
		Measure:    evaluator.Name(),
		NumQueries: len(queryIDs),
		MeanA:      mean(a),
		MeanB:      mean(b),
		IntervalA:  interval{Lower: lowerA, Upper: upperA},
		IntervalB:  interval{Lower: lowerB, Upper: upperB},
		TTest:      ttest,
		CohensD:    d,
		Alpha:      args.Alpha,
		Confidence: args.Confidence,
	}

	v, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		log.Fatalln(err)
	}

	w := os.Stdout
	if len(args.Output) > 0 {
		w, err = os.OpenFile(args.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
		if err != nil {
			log.Fatalln(err)
		}
		defer w.Close()
	}
	if _, err := w.Write(v); err != nil {
		log.Fatalln(err)
	}
}

func mean(scores []float64) float64 {
	var sum float64
	for _, score := range scores {
		sum += score
	}
	return sum / float64(len(scores))
}
