package trec

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseError describes a malformed line in a run or qrels file. The whole
// parse fails on the first malformed line; no partial results are returned.
type ParseError struct {
	Line int64
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Text)
}

// ParseRuns reads run records from r. Each line has the form
//
//	query_id Q0 doc_id rank score run_tag
//
// Blank lines and lines starting with # are skipped. A run tag containing
// spaces is supported: everything after the score is joined back together.
func ParseRuns(r io.Reader) (RunList, error) {
	var runs RunList
	scanner := bufio.NewScanner(r)
	var lineNum int64
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 6 {
			if len(parts) == 5 && parts[1] != "Q0" {
				return nil, &ParseError{Line: lineNum, Text: line, Err: errors.Errorf("expected Q0 as second field, found %q", parts[1])}
			}
			return nil, &ParseError{Line: lineNum, Text: line, Err: errors.Errorf("expected 6 fields, found %d", len(parts))}
		}
		if parts[1] != "Q0" {
			return nil, &ParseError{Line: lineNum, Text: line, Err: errors.Errorf("expected Q0 as second field, found %q", parts[1])}
		}

		rank, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil || rank < 0 {
			return nil, &ParseError{Line: lineNum, Text: line, Err: errors.Errorf("invalid rank %q", parts[3])}
		}
		score, err := strconv.ParseFloat(parts[4], 32)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: errors.Errorf("invalid score %q", parts[4])}
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, &ParseError{Line: lineNum, Text: line, Err: errors.Errorf("score %q is not finite", parts[4])}
		}

		runTag := parts[5]
		if len(parts) > 6 {
			runTag = strings.Join(parts[5:], " ")
		}

		runs = append(runs, Run{
			QueryID: parts[0],
			DocID:   parts[2],
			Rank:    rank,
			Score:   float32(score),
			RunTag:  runTag,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ParseQrels reads judgment records from r. Each line has the form
//
//	query_id 0 doc_id relevance
//
// Blank lines and lines starting with # are skipped. Tokens beyond the
// fourth are ignored.
func ParseQrels(r io.Reader) (QrelList, error) {
	var qrels QrelList
	scanner := bufio.NewScanner(r)
	var lineNum int64
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 4 {
			return nil, &ParseError{Line: lineNum, Text: line, Err: errors.Errorf("expected 4 fields, found %d", len(parts))}
		}
		if parts[1] != "0" {
			return nil, &ParseError{Line: lineNum, Text: line, Err: errors.Errorf("expected 0 as second field, found %q", parts[1])}
		}

		relevance, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil || relevance < 0 {
			return nil, &ParseError{Line: lineNum, Text: line, Err: errors.Errorf("invalid relevance %q", parts[3])}
		}

		qrels = append(qrels, Qrel{
			QueryID:   parts[0],
			DocID:     parts[2],
			Relevance: relevance,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return qrels, nil
}

// LoadRuns parses the run file at path.
func LoadRuns(path string) (RunList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open run file %s", path)
	}
	defer f.Close()
	runs, err := ParseRuns(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse run file %s", path)
	}
	return runs, nil
}

// LoadQrels parses the qrels file at path.
func LoadQrels(path string) (QrelList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open qrels file %s", path)
	}
	defer f.Close()
	qrels, err := ParseQrels(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse qrels file %s", path)
	}
	return qrels, nil
}
