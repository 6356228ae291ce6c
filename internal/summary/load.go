// Package summary ingests CSV files of people (Name, Age, City, ...) and produces a report: age-range counts, and per-name and per-city counts, each with
// its percentage of all rows.
package summary

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

var (
	ErrMissingFile  = errors.New("CSV file not found")
	ErrTooFewLines  = errors.New("CSV file must have at least a header and one data row")
	ErrNoInputFiles = errors.New("no CSV files given")
)

// Record is one data row keyed by trimmed header name.
type Record map[string]string

// maxParallelReads bounds how many files Load reads at once.
const maxParallelReads = 4

// Load reads every file in paths and returns their records in path order, each file's rows in file order.
//
// It fails if any file is missing (ErrMissingFile) or has no data row (ErrTooFewLines).
func Load(ctx context.Context, paths ...string) ([]Record, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputFiles
	}

	perFile := make([][]Record, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := loadFile(path)
			if err != nil {
				return err
			}
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Record
	for _, records := range perFile {
		all = append(all, records...)
	}
	return all, nil
}

func loadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Parse reads CSV from r. The first row is the header. Header names and values are trimmed; rows shorter than the header get "" for the missing columns, and
// extra values are ignored. A bare quote inside an unquoted field is kept as text.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrTooFewLines
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(headers))
		for j, key := range headers {
			value := ""
			if j < len(row) {
				value = strings.TrimSpace(row[j])
			}
			rec[key] = value
		}
		records = append(records, rec)
	}
	return records, nil
}
