// Package dataset loads, validates and summarises locally stored
// evaluation datasets consisting of TREC run and qrels files.
package dataset

import (
	"io/ioutil"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/hscells/rankeval/trec"
	"github.com/pkg/errors"
	"github.com/xtgo/set"
)

// QrelCandidates are the file names tried, in order, when looking for the
// judgments of a dataset directory.
var QrelCandidates = []string{
	"qrels.txt",
	"qrels",
	"qrels.dev.txt",
	"qrels.test.txt",
}

// FindQrels locates the qrels file of a dataset directory.
func FindQrels(dir string) (string, error) {
	for _, name := range QrelCandidates {
		p := path.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.Errorf("no qrels file found in %s (tried %s)", dir, strings.Join(QrelCandidates, ", "))
}

// LoadQrelsDir parses the qrels file of a dataset directory.
func LoadQrelsDir(dir string) (trec.QrelList, error) {
	p, err := FindQrels(dir)
	if err != nil {
		return nil, err
	}
	return trec.LoadQrels(p)
}

// LoadRunsDir parses and concatenates the named run files inside dir.
func LoadRunsDir(dir string, files ...string) (trec.RunList, error) {
	var all trec.RunList
	for _, file := range files {
		runs, err := trec.LoadRuns(path.Join(dir, file))
		if err != nil {
			return nil, err
		}
		all = append(all, runs...)
	}
	return all, nil
}

// IsDataset reports whether dir looks like a dataset directory: it must
// contain a qrels file under one of the candidate names and at least one
// .run file.
func IsDataset(dir string) bool {
	if _, err := FindQrels(dir); err != nil {
		return false
	}
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".run") {
			return true
		}
	}
	return false
}

// List returns the names of the dataset directories directly under root,
// sorted.
func List(root string) ([]string, error) {
	entries, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "could not list datasets in %s", root)
	}
	var datasets []string
	for _, entry := range entries {
		if entry.IsDir() && IsDataset(path.Join(root, entry.Name())) {
			datasets = append(datasets, entry.Name())
		}
	}
	sort.Strings(datasets)
	return datasets, nil
}

// uniq sorts s and removes duplicates in place, returning the shortened
// slice.
func uniq(s []string) []string {
	sort.Strings(s)
	n := set.Uniq(sort.StringSlice(s))
	return s[:n]
}

// intersectionSize returns the number of elements common to two sets. Both
// inputs must be sorted and duplicate-free.
func intersectionSize(a, b []string) int {
	data := make([]string, 0, len(a)+len(b))
	data = append(data, a...)
	data = append(data, b...)
	return set.Inter(sort.StringSlice(data), len(a))
}
