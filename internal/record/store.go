package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Store reads and appends record files in a single directory.
type Store struct {
	dir string
	now func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the clock used to stamp new rows.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns a Store for the record files in dir.
func NewStore(dir string, opts ...StoreOption) *Store {
	s := &Store{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the directory the store works in.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the path of the named record file.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) stamp() time.Time {
	return s.now().Truncate(time.Minute)
}

// List returns the names of the record files in the directory, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Exists reports whether the named file exists.
func (s *Store) Exists(name string) (bool, error) {
	_, err := os.Stat(s.Path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", name, err)
}

// Create writes a new record file holding the header and one row with the
// given score. It fails with an error wrapping fs.ErrExist if the file is
// already there.
func (s *Store) Create(name string, score int) (Row, error) {
	row := Row{Time: s.stamp(), Score: score}

	f, err := os.OpenFile(s.Path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return Row{}, fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := WriteRows(f, []Row{row}); err != nil {
		f.Close()
		return Row{}, fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return Row{}, fmt.Errorf("failed to close %s: %w", name, err)
	}
	return row, nil
}

// Last guards the file, then returns its final row. Only the score has to
// parse; an unreadable time leaves Row.Time zero. ErrNoRows is returned for a
// file holding only a header.
func (s *Store) Last(name string) (Row, error) {
	path := s.Path(name)
	if err := Guard(path); err != nil {
		return Row{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Row{}, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return Row{}, fmt.Errorf("%s: %w", name, ErrNoRows)
		}
		return Row{}, fmt.Errorf("%s: %w", name, rowError(err))
	}

	var last []string
	line := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Row{}, fmt.Errorf("%s: %w", name, rowError(err))
		}
		last = fields
		line, _ = cr.FieldPos(0)
	}
	if last == nil {
		return Row{}, fmt.Errorf("%s: %w", name, ErrNoRows)
	}
	if len(last) < len(Header) {
		return Row{}, fmt.Errorf("%s: %w", name, &RowError{Line: line, Err: csv.ErrFieldCount})
	}

	score, err := strconv.Atoi(strings.TrimSpace(last[1]))
	if err != nil {
		return Row{}, fmt.Errorf("%s: %w", name, &RowError{Line: line, Err: fmt.Errorf("invalid score %q: %w", last[1], err)})
	}
	row := Row{Score: score}
	if t, err := ParseTime(last[0]); err == nil {
		row.Time = t
	}
	return row, nil
}

// Append guards the file, then appends one row with the given score stamped
// with the current time. The file is opened and closed within the call.
func (s *Store) Append(name string, score int) (Row, error) {
	path := s.Path(name)
	if err := Guard(path); err != nil {
		return Row{}, err
	}

	row := Row{Time: s.stamp(), Score: score}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return Row{}, fmt.Errorf("failed to open %s: %w", name, err)
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(row.fields()); err != nil {
		f.Close()
		return Row{}, fmt.Errorf("failed to append to %s: %w", name, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return Row{}, fmt.Errorf("failed to append to %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return Row{}, fmt.Errorf("failed to close %s: %w", name, err)
	}
	return row, nil
}

// Load reads every row of the named file without modifying it.
func (s *Store) Load(name string) ([]Row, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}
