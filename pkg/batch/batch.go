// Package batch drives CSV-based dataset generation.
//
// A batch is a CSV file with columns `id` and `angle`, one row per
// requested droplet. Rows are independent jobs: each allocates its own
// buffers and writes one output file, so the pool runs them concurrently
// without locks. A bad row is reported and skipped, never fatal; a
// malformed file as a whole is.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sessilelab/dropletgen/pkg/errors"
)

// Row is one generation request from the input CSV. Line is the 1-based
// line the row came from, so failures report the original file position
// even when earlier malformed rows were dropped during parsing.
type Row struct {
	ID    int
	Angle float64
	Line  int
}

// RowError records a skipped row and why.
type RowError struct {
	Line int // 1-based line number in the input file
	ID   int // parsed id when available, 0 otherwise
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

// Parse reads the batch CSV. The header must contain `id` and `angle`
// columns (in any order, case-insensitive); a file without them is a
// ParseError. Individual malformed rows are collected as RowErrors and
// parsing continues, implementing the partial-failure contract.
func Parse(r io.Reader) ([]Row, []RowError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeParse, err, "read CSV header")
	}

	idCol, angleCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id":
			idCol = i
		case "angle":
			angleCol = i
		}
	}
	if idCol < 0 || angleCol < 0 {
		return nil, nil, errors.New(errors.ErrCodeParse, "CSV must contain 'id' and 'angle' columns, got %v", header)
	}

	var rows []Row
	var skipped []RowError
	line := 1
	for {
		line++
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: errors.Wrap(errors.ErrCodeParse, err, "malformed record")})
			continue
		}
		if len(record) <= idCol || len(record) <= angleCol {
			skipped = append(skipped, RowError{Line: line, Err: errors.New(errors.ErrCodeParse, "missing fields")})
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[idCol]))
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: errors.New(errors.ErrCodeParse, "non-numeric id %q", record[idCol])})
			continue
		}
		angle, err := strconv.ParseFloat(strings.TrimSpace(record[angleCol]), 64)
		if err != nil {
			skipped = append(skipped, RowError{Line: line, ID: id, Err: errors.New(errors.ErrCodeParse, "non-numeric angle %q", record[angleCol])})
			continue
		}

		rows = append(rows, Row{ID: id, Angle: angle, Line: line})
	}

	return rows, skipped, nil
}
