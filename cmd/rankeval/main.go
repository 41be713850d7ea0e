package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/alexflint/go-arg"
	"github.com/hscells/rankeval/eval"
	"github.com/hscells/rankeval/output"
	"github.com/hscells/rankeval/trec"
	"gopkg.in/cheggaaa/pb.v1"
)

var (
	name    = "rankeval"
	version = "30.Aug.2026"
	author  = "Harry Scells"
)

type args struct {
	Evaluation []string `help:"Which evaluation measures to use" arg:"-e,separate"`
	Output     string   `help:"File to write results to (default stdout)" arg:"-o"`
	Format     string   `help:"Output format (json/csv)" arg:"-f"`
	Summary    bool     `help:"Only output summary information" arg:"-s"`
	QrelsFile  string   `help:"Path to qrels file" arg:"required,positional"`
	RunFile    string   `help:"Path to run file" arg:"required,positional"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

type config struct {
	Measures []string `toml:"measures"`
	Format   string   `toml:"format"`
}

func loadConfig() (config, error) {
	var c config
	dir, err := os.UserHomeDir()
	if err != nil {
		return c, err
	}
	f, err := os.OpenFile(path.Join(dir, "."+name), os.O_RDWR|os.O_CREATE, 0664)
	if err != nil {
		return c, err
	}
	defer f.Close()
	_, err = toml.DecodeReader(f, &c)
	return c, err
}

func main() {
	var args args
	arg.MustParse(&args)

	c, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}

	measures := args.Evaluation
	if len(measures) == 0 {
		measures = c.Measures
	}
	if len(measures) == 0 {
		log.Fatalln("nothing to do, quitting")
	}
	format := args.Format
	if len(format) == 0 {
		format = c.Format
	}
	if len(format) == 0 {
		format = "json"
	}

	evaluators, err := eval.ParseEvaluators(measures)
	if err != nil {
		log.Fatalln(err)
	}

	runs, err := trec.LoadRuns(args.RunFile)
	if err != nil {
		log.Fatalln(err)
	}
	qrels, err := trec.LoadQrels(args.QrelsFile)
	if err != nil {
		log.Fatalln(err)
	}

	groupedRuns := trec.GroupRuns(runs)
	groupedQrels := trec.GroupQrels(qrels)
	firstTags := eval.FirstRunTags(runs)

	queryIDs := make([]string, 0, len(groupedQrels))
	for queryID := range groupedQrels {
		queryIDs = append(queryIDs, queryID)
	}
	sort.Strings(queryIDs)

	bar := pb.New(len(queryIDs))
	bar.Start()
	var queries []eval.QueryResult
	for _, queryID := range queryIDs {
		tags, ok := groupedRuns[queryID]
		if !ok {
			bar.Increment()
			continue
		}
		ranked := eval.RankedDocs(tags[firstTags[queryID]])
		queries = append(queries, eval.QueryResult{
			QueryID: queryID,
			Metrics: eval.EvaluateQuery(ranked, groupedQrels[queryID], evaluators),
		})
		bar.Increment()
	}
	bar.Finish()

	results := eval.BatchResults{
		Queries:    queries,
		Aggregated: eval.Aggregate(queries),
	}

	var rendered string
	if args.Summary {
		summary := make(map[string]float64, len(results.Aggregated)+1)
		for measure, mean := range results.Aggregated {
			summary[measure] = mean
		}
		summary["NumQ"] = float64(len(results.Queries))
		var v []byte
		v, err = json.Marshal(summary)
		rendered = string(v)
	} else {
		switch format {
		case "json":
			rendered, err = output.JsonEvaluationFormatter(results)
		case "csv":
			rendered, err = output.CsvEvaluationFormatter(results)
		default:
			log.Fatalf("unknown output format %q", format)
		}
	}
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
	if _, err := w.WriteString(rendered); err != nil {
		log.Fatalln(err)
	}
}
