// Package record provides the CSV record file used by the score logger and
// the plotter.
//
// A record file has a "time,score" header followed by one row per
// observation. Times are local, minute resolution, formatted with TimeLayout.
package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	// TimeLayout is the layout of the time column (YYYY-MM-DD-HH-MM).
	TimeLayout = "2006-01-02-15-04"

	// Extension is appended to every record name.
	Extension = ".csv"
)

// Header is the first row of every record file.
var Header = []string{"time", "score"}

// Row is one timestamped score observation.
type Row struct {
	Time  time.Time
	Score int
}

// FormatTime formats t for the time column.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a time column value in the local time zone.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, strings.TrimSpace(s), time.Local)
}

func (r Row) fields() []string {
	return []string{FormatTime(r.Time), strconv.Itoa(r.Score)}
}

func parseRow(fields []string) (Row, error) {
	t, err := ParseTime(fields[0])
	if err != nil {
		return Row{}, fmt.Errorf("invalid time %q: %w", fields[0], err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Row{}, fmt.Errorf("invalid score %q: %w", fields[1], err)
	}
	return Row{Time: t, Score: score}, nil
}

func isHeader(fields []string) bool {
	if len(fields) != len(Header) {
		return false
	}
	for i, f := range fields {
		if strings.TrimSpace(f) != Header[i] {
			return false
		}
	}
	return true
}

// ReadRows reads a complete record: the header, then every row. Rows must
// have exactly two fields with a valid time and an integer score.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrBadHeader
	}
	if err != nil {
		return nil, rowError(err)
	}
	if !isHeader(header) {
		return nil, ErrBadHeader
	}

	var rows []Row
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rowError(err)
		}
		line, _ := cr.FieldPos(0)
		if len(fields) != len(Header) {
			return nil, &RowError{Line: line, Err: csv.ErrFieldCount}
		}
		row, err := parseRow(fields)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes the header followed by rows.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
