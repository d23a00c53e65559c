package session

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
)

// memStore is an in-memory Catalog.
type memStore struct {
	files     map[string][]record.Row
	now       time.Time
	failWith  error
	creations int
}

func newMemStore() *memStore {
	return &memStore{
		files: map[string][]record.Row{},
		now:   time.Date(2024, 6, 1, 20, 0, 0, 0, time.Local),
	}
}

func (m *memStore) tick() time.Time {
	t := m.now
	m.now = m.now.Add(time.Minute)
	return t
}

func (m *memStore) Exists(name string) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	_, ok := m.files[name]
	return ok, nil
}

func (m *memStore) Create(name string, score int) (record.Row, error) {
	if m.failWith != nil {
		return record.Row{}, m.failWith
	}
	if _, ok := m.files[name]; ok {
		return record.Row{}, fmt.Errorf("failed to create %s: %w", name, fs.ErrExist)
	}
	m.creations++
	row := record.Row{Time: m.tick(), Score: score}
	m.files[name] = []record.Row{row}
	return row, nil
}

func (m *memStore) Last(name string) (record.Row, error) {
	if m.failWith != nil {
		return record.Row{}, m.failWith
	}
	rows, ok := m.files[name]
	if !ok {
		return record.Row{}, fs.ErrNotExist
	}
	if len(rows) == 0 {
		return record.Row{}, fmt.Errorf("%s: %w", name, record.ErrNoRows)
	}
	return rows[len(rows)-1], nil
}

func (m *memStore) Append(name string, score int) (record.Row, error) {
	if m.failWith != nil {
		return record.Row{}, m.failWith
	}
	if _, ok := m.files[name]; !ok {
		return record.Row{}, fs.ErrNotExist
	}
	row := record.Row{Time: m.tick(), Score: score}
	m.files[name] = append(m.files[name], row)
	return row, nil
}

func (m *memStore) List() ([]string, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var names []string
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *memStore) scores(name string) []int {
	var out []int
	for _, r := range m.files[name] {
		out = append(out, r.Score)
	}
	return out
}

var errDisk = errors.New("disk on fire")
