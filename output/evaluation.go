// Package output provides different formats of output for evaluation
// results.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hscells/rankeval/eval"
)

// EvaluationFormatter renders batch evaluation results in some textual
// format.
type EvaluationFormatter func(results eval.BatchResults) (string, error)

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(results eval.BatchResults) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvEvaluationFormatter outputs one row per query followed by a blank
// line and a row of per-measure means. Measure columns appear in sorted
// order so the output is deterministic. Empty results produce no output.
func CsvEvaluationFormatter(results eval.BatchResults) (string, error) {
	if len(results.Queries) == 0 {
		return "", nil
	}

	metrics := make([]string, 0, len(results.Queries[0].Metrics))
	for name := range results.Queries[0].Metrics {
		metrics = append(metrics, name)
	}
	sort.Strings(metrics)

	var b strings.Builder
	b.WriteString("query_id")
	for _, name := range metrics {
		b.WriteString(",")
		b.WriteString(name)
	}
	b.WriteString("\n")

	for _, query := range results.Queries {
		b.WriteString(query.QueryID)
		for _, name := range metrics {
			fmt.Fprintf(&b, ",%.6f", query.Metrics[name])
		}
		b.WriteString("\n")
	}

	b.WriteString("\nmean")
	for _, name := range metrics {
		fmt.Fprintf(&b, ",%.6f", results.Aggregated[name])
	}
	b.WriteString("\n")

	return b.String(), nil
}
