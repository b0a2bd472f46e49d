// dataset/dataset.go

// Package dataset reads the numbers a statistic is computed over. It owns the
// ingestion policy: at most MaxValues values are kept, and reading stops at
// the first token that is not a number.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mwiater/statcli/stats"
)

// MaxValues is the largest number of values kept from one input.
const MaxValues = 100

// ErrOpen is wrapped by Load when the input file cannot be opened.
var ErrOpen = errors.New("could not open input file")

// Report describes how an input was ingested. Truncated and Malformed are
// warnings; the values read before either condition are still returned.
type Report struct {
	// Count is the number of values kept.
	Count int
	// Truncated is set when a value beyond MaxValues was seen and dropped,
	// together with everything after it.
	Truncated bool
	// Malformed holds the first token that failed to parse, if any.
	Malformed string
}

// Warnings reports whether ingestion hit either warning condition.
func (r Report) Warnings() bool {
	return r.Truncated || r.Malformed != ""
}

// Read parses whitespace-delimited numbers from r. Only I/O errors from r are
// returned as errors.
func Read(r io.Reader) (stats.Sample, Report, error) {
	var (
		sample stats.Sample
		rep    Report
	)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			rep.Malformed = tok
			break
		}
		if len(sample) >= MaxValues {
			rep.Truncated = true
			break
		}
		sample = append(sample, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, Report{}, fmt.Errorf("could not read input: %w", err)
	}

	rep.Count = len(sample)
	return sample, rep, nil
}

// Load opens path and reads it with Read.
func Load(path string) (stats.Sample, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	defer f.Close()

	return Read(f)
}
