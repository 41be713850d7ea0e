// Package trec reads TREC-format run and qrels files and groups their
// records for evaluation.
package trec

import (
	"sort"
)

// Run is a single line of a run file: one document retrieved for one query
// by the method identified by RunTag.
type Run struct {
	QueryID string
	DocID   string
	Rank    int64
	Score   float32
	RunTag  string
}

// Qrel is a single relevance judgment. A relevance of 0 means not relevant;
// any positive value means relevant, and larger values mean more relevant.
type Qrel struct {
	QueryID   string
	DocID     string
	Relevance int64
}

// RunList is the parsed contents of a run file, in file order.
type RunList []Run

// QrelList is the parsed contents of a qrels file, in file order.
type QrelList []Qrel

// ScoredDoc is a document with the retrieval score it was ranked by.
type ScoredDoc struct {
	DocID string
	Score float32
}

// Judgments maps document ids to relevance grades for a single query.
type Judgments map[string]int64

// RelevantSet is the set of documents considered relevant for a query.
type RelevantSet map[string]bool

// RunsByQuery maps query id to run tag to the documents that run retrieved,
// sorted by score descending.
type RunsByQuery map[string]map[string][]ScoredDoc

// QrelsByQuery maps query id to the judgments for that query.
type QrelsByQuery map[string]Judgments

// RelevantSet collapses graded judgments into a binary relevant set,
// keeping only documents with a positive grade.
func (j Judgments) RelevantSet() RelevantSet {
	relevant := make(RelevantSet)
	for doc, grade := range j {
		if grade > 0 {
			relevant[doc] = true
		}
	}
	return relevant
}

// Judgments converts a binary relevant set into graded judgments where
// every member has grade 1.
func (s RelevantSet) Judgments() Judgments {
	judgments := make(Judgments)
	for doc := range s {
		judgments[doc] = 1
	}
	return judgments
}

// GroupRuns groups runs by query id and run tag. Each inner document list
// is sorted by score descending; the sort is stable, so documents with tied
// scores keep their file order. Scores are guaranteed finite by the parser,
// which makes the comparison total.
func GroupRuns(runs RunList) RunsByQuery {
	grouped := make(RunsByQuery)
	for _, run := range runs {
		if _, ok := grouped[run.QueryID]; !ok {
			grouped[run.QueryID] = make(map[string][]ScoredDoc)
		}
		grouped[run.QueryID][run.RunTag] = append(grouped[run.QueryID][run.RunTag], ScoredDoc{
			DocID: run.DocID,
			Score: run.Score,
		})
	}
	for _, tags := range grouped {
		for _, docs := range tags {
			sort.SliceStable(docs, func(i, j int) bool {
				return docs[i].Score > docs[j].Score
			})
		}
	}
	return grouped
}

// GroupQrels groups qrels by query id. If the same (query, document) pair
// is judged more than once, the last record wins.
func GroupQrels(qrels QrelList) QrelsByQuery {
	grouped := make(QrelsByQuery)
	for _, qrel := range qrels {
		if _, ok := grouped[qrel.QueryID]; !ok {
			grouped[qrel.QueryID] = make(Judgments)
		}
		grouped[qrel.QueryID][qrel.DocID] = qrel.Relevance
	}
	return grouped
}
