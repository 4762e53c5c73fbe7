package naivebayes

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Arubaruba/naivebayes/row"
)

// Record is one non-blank line of the input. Err is non-nil if the line
// failed to parse or had the wrong number of fields, in which case the record
// is skipped by both passes of every trial.
type Record struct {
	Line   int       // 1-based line number in the input
	Values []float64 // features followed by the label
	Err    error
}

// Dataset holds the parsed records in input order. Records are parsed once and
// shared read-only by all trials.
type Dataset struct {
	FieldCount int
	Records    []Record
}

// NewDataset parses lines, each holding fieldCount comma-separated numbers with
// the label last. Blank lines are dropped and do not take part in splitting.
func NewDataset(lines []string, fieldCount int) (*Dataset, error) {
	if fieldCount < 2 {
		return nil, ErrNoFeatures
	}
	d := &Dataset{FieldCount: fieldCount}
	for i, line := range lines {
		d.add(i+1, line)
	}
	return d, nil
}

// ReadDataset is like NewDataset, reading lines from r. Lines may be of any
// length; a trailing "\r" is removed.
func ReadDataset(r io.Reader, fieldCount int) (*Dataset, error) {
	if fieldCount < 2 {
		return nil, ErrNoFeatures
	}
	d := &Dataset{FieldCount: fieldCount}
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("naivebayes: reading line %d: %w", n, err)
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			d.add(n, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return d, nil
		}
	}
}

func (d *Dataset) add(line int, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	values, err := row.ParseN(text, d.FieldCount)
	d.Records = append(d.Records, Record{Line: line, Values: values, Err: err})
}

// Features returns the number of feature columns.
func (d *Dataset) Features() int {
	return d.FieldCount - 1
}

// Len returns the number of records, including invalid ones.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Invalid returns the number of records that will always be skipped.
func (d *Dataset) Invalid() int {
	var n int
	for _, rec := range d.Records {
		if rec.Err != nil {
			n++
		}
	}
	return n
}
