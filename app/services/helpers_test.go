package services

import (
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kien39/mil-mang/app/events"
	"github.com/kien39/mil-mang/app/excel"
)

// memStore is an in-memory stand-in for the file-backed store.
type memStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

func newMemStore() *memStore {
	return &memStore{data: map[string]json.RawMessage{}}
}

func (m *memStore) Get(key string, v interface{}) (bool, error) {
	m.mu.Lock()
	raw, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (m *memStore) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *memStore) Delete(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

type testRow struct {
	TT   int
	Name string
	Role string
	Unit string
}

// newTestRoster writes a spreadsheet with the given rows and returns a
// loaded roster over it.
func newTestRoster(t *testing.T, store *memStore, bus *events.Bus, rows []testRow) *Roster {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	headers := []string{"TT", "Họ và tên", "Chức vụ", "Đơn vị"}
	for j, h := range headers {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, h))
	}
	for i, row := range rows {
		vals := []interface{}{row.TT, row.Name, row.Role, row.Unit}
		for j, val := range vals {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}
	path := filepath.Join(t.TempDir(), "detail.xlsx")
	require.NoError(t, f.SaveAs(path))

	reader := &excel.Reader{Path: path, SerialMin: 1, SerialMax: 50000}
	roster := NewRoster(reader, store, bus)
	require.NoError(t, roster.Load())
	return roster
}
