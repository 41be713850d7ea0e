package dataset_test

import (
	"testing"

	"github.com/hscells/rankeval/dataset"
)

func TestFindQrels(t *testing.T) {
	p, err := dataset.FindQrels("testdata/msmarco-dev")
	if err != nil {
		t.Fatal(err)
	}
	if p != "testdata/msmarco-dev/qrels.txt" {
		t.Errorf("unexpected qrels path: %s", p)
	}
	if _, err := dataset.FindQrels("testdata/notadataset"); err == nil {
		t.Error("expected an error when no qrels candidate exists")
	}
}

func TestLoadRunsDir(t *testing.T) {
	runs, err := dataset.LoadRunsDir("testdata/msmarco-dev", "bm25.run")
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
	if _, err := dataset.LoadRunsDir("testdata/msmarco-dev", "missing.run"); err == nil {
		t.Error("expected an error for a missing run file")
	}
}

func TestLoadQrelsDir(t *testing.T) {
	qrels, err := dataset.LoadQrelsDir("testdata/msmarco-dev")
	if err != nil {
		t.Fatal(err)
	}
	if len(qrels) != 2 {
		t.Errorf("expected 2 qrels, got %d", len(qrels))
	}
}

func TestIsDataset(t *testing.T) {
	if !dataset.IsDataset("testdata/msmarco-dev") {
		t.Error("expected msmarco-dev to be a dataset")
	}
	if dataset.IsDataset("testdata/notadataset") {
		t.Error("expected notadataset to be rejected")
	}
}

func TestList(t *testing.T) {
	datasets, err := dataset.List("testdata")
	if err != nil {
		t.Fatal(err)
	}
	if len(datasets) != 1 || datasets[0] != "msmarco-dev" {
		t.Errorf("unexpected datasets: %v", datasets)
	}
}
