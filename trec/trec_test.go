package trec_test

import (
	"os"
	"strings"
	"testing"

	"github.com/hscells/rankeval/trec"
)

func TestParseRunsFromFile(t *testing.T) {
	f, err := os.Open("testdata/sample.run")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	runs, err := trec.ParseRuns(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 5 {
		t.Fatalf("expected 5 runs, got %d", len(runs))
	}
	if runs[0].QueryID != "1" || runs[0].DocID != "doc1" || runs[0].Rank != 1 || runs[0].RunTag != "r1" {
		t.Errorf("unexpected first run: %+v", runs[0])
	}
	if runs[0].Score != 0.9 {
		t.Errorf("expected score 0.9, got %v", runs[0].Score)
	}
}

func TestParseQrelsFromFile(t *testing.T) {
	f, err := os.Open("testdata/sample.qrels")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	qrels, err := trec.ParseQrels(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(qrels) != 5 {
		t.Fatalf("expected 5 qrels, got %d", len(qrels))
	}
	if qrels[0].QueryID != "1" || qrels[0].DocID != "doc1" || qrels[0].Relevance != 2 {
		t.Errorf("unexpected first qrel: %+v", qrels[0])
	}
}

func TestParseRunsTagWithSpaces(t *testing.T) {
	runs, err := trec.ParseRuns(strings.NewReader("1 Q0 doc1 1 0.9 my run tag\n"))
	if err != nil {
		t.Fatal(err)
	}
	if runs[0].RunTag != "my run tag" {
		t.Errorf("expected run tag to be rejoined, got %q", runs[0].RunTag)
	}
}

func TestParseRunsMissingQ0(t *testing.T) {
	_, err := trec.ParseRuns(strings.NewReader("1 doc1 1 0.9 run1\n"))
	if err == nil {
		t.Fatal("expected an error for a line missing the Q0 field")
	}
	if !strings.Contains(err.Error(), "Q0") {
		t.Errorf("expected error to mention Q0, got %v", err)
	}
}

func TestParseRunsTooFewFields(t *testing.T) {
	_, err := trec.ParseRuns(strings.NewReader("1 Q0 doc1 1\n"))
	if err == nil {
		t.Fatal("expected an error for a short line")
	}
}

func TestParseRunsNonFiniteScore(t *testing.T) {
	for _, score := range []string{"NaN", "Inf", "-Inf"} {
		_, err := trec.ParseRuns(strings.NewReader("1 Q0 doc1 1 " + score + " run1\n"))
		if err == nil {
			t.Errorf("expected an error for score %s", score)
		}
	}
}

func TestParseRunsNegativeRank(t *testing.T) {
	_, err := trec.ParseRuns(strings.NewReader("1 Q0 doc1 -1 0.9 run1\n"))
	if err == nil {
		t.Fatal("expected an error for a negative rank")
	}
}

func TestParseRunsErrorCarriesLineNumber(t *testing.T) {
	_, err := trec.ParseRuns(strings.NewReader("1 Q0 doc1 1 0.9 run1\n\n# comment\n1 Q0 doc2 bad 0.8 run1\n"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("expected error to carry line number 4, got %v", err)
	}
}

func TestParseQrelsWrongIteration(t *testing.T) {
	_, err := trec.ParseQrels(strings.NewReader("1 Q0 doc1 2\n"))
	if err == nil {
		t.Fatal("expected an error for a qrel line with the wrong second field")
	}
}

func TestParseQrelsNegativeRelevance(t *testing.T) {
	_, err := trec.ParseQrels(strings.NewReader("1 0 doc1 -2\n"))
	if err == nil {
		t.Fatal("expected an error for a negative relevance")
	}
}

func TestGroupRoundTrip(t *testing.T) {
	runs, err := trec.ParseRuns(strings.NewReader("1 Q0 doc1 1 0.9 r1\n"))
	if err != nil {
		t.Fatal(err)
	}
	qrels, err := trec.ParseQrels(strings.NewReader("1 0 doc1 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	groupedRuns := trec.GroupRuns(runs)
	groupedQrels := trec.GroupQrels(qrels)
	docs := groupedRuns["1"]["r1"]
	if len(docs) != 1 || docs[0].DocID != "doc1" || docs[0].Score != 0.9 {
		t.Errorf("unexpected grouped runs: %+v", docs)
	}
	if groupedQrels["1"]["doc1"] != 2 {
		t.Errorf("expected judgment 2, got %d", groupedQrels["1"]["doc1"])
	}
}

func TestGroupRunsSortsByScore(t *testing.T) {
	runs := trec.RunList{
		{QueryID: "1", DocID: "doc1", Rank: 1, Score: 0.1, RunTag: "r1"},
		{QueryID: "1", DocID: "doc2", Rank: 2, Score: 0.9, RunTag: "r1"},
		{QueryID: "1", DocID: "doc3", Rank: 3, Score: 0.5, RunTag: "r1"},
	}
	docs := trec.GroupRuns(runs)["1"]["r1"]
	if docs[0].DocID != "doc2" || docs[1].DocID != "doc3" || docs[2].DocID != "doc1" {
		t.Errorf("expected docs sorted by score descending, got %+v", docs)
	}
}

func TestGroupRunsStableOnTies(t *testing.T) {
	runs := trec.RunList{
		{QueryID: "1", DocID: "doc1", Rank: 1, Score: 0.5, RunTag: "r1"},
		{QueryID: "1", DocID: "doc2", Rank: 2, Score: 0.5, RunTag: "r1"},
	}
	docs := trec.GroupRuns(runs)["1"]["r1"]
	if docs[0].DocID != "doc1" || docs[1].DocID != "doc2" {
		t.Errorf("expected tied docs to keep input order, got %+v", docs)
	}
}

func TestGroupQrelsLastWriteWins(t *testing.T) {
	qrels := trec.QrelList{
		{QueryID: "1", DocID: "doc1", Relevance: 1},
		{QueryID: "1", DocID: "doc1", Relevance: 2},
	}
	grouped := trec.GroupQrels(qrels)
	if grouped["1"]["doc1"] != 2 {
		t.Errorf("expected later judgment to win, got %d", grouped["1"]["doc1"])
	}
}

func TestJudgmentsRelevantSet(t *testing.T) {
	judgments := trec.Judgments{"doc1": 2, "doc2": 0, "doc3": 1}
	relevant := judgments.RelevantSet()
	if len(relevant) != 2 || !relevant["doc1"] || !relevant["doc3"] {
		t.Errorf("unexpected relevant set: %+v", relevant)
	}
}

func TestLoadRunsMissingFile(t *testing.T) {
	_, err := trec.LoadRuns("testdata/does_not_exist.run")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "does_not_exist.run") {
		t.Errorf("expected error to carry the path, got %v", err)
	}
}
