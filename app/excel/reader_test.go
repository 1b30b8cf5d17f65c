package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeRosterFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}
	path := filepath.Join(t.TempDir(), "detail.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReaderParsesRoster(t *testing.T) {
	path := writeRosterFile(t, [][]interface{}{
		{"TT", "Họ và tên", "Chức vụ", "Đơn vị", "Ngày sinh", "Điểm danh"},
		{1, "Nguyễn Văn An", "Tiểu đội trưởng", "a1", 36527, "x"},
		{2, "Trần Văn Bình", "Chiến sĩ", "a4", "5/3/2001", ""},
	})

	r := &Reader{Path: path, SerialMin: 1, SerialMax: 50000}
	people, err := r.Read()
	require.NoError(t, err)
	require.Len(t, people, 2)

	assert.Equal(t, 1, people[0].TT)
	assert.Equal(t, "Nguyễn Văn An", people[0].Name)
	assert.Equal(t, "Tiểu đội trưởng", people[0].Role)
	assert.Equal(t, "a1", people[0].Unit)
	assert.True(t, people[0].Attendance)
	// Unknown columns land in Extra with date serials normalized.
	assert.Equal(t, "01/01/2000", people[0].Extra["Ngày sinh"])

	assert.Equal(t, 2, people[1].TT)
	assert.False(t, people[1].Attendance)
	assert.Equal(t, "05/03/2001", people[1].Extra["Ngày sinh"])
}

func TestReaderKeepsSmallIntegersTyped(t *testing.T) {
	// TT values sit inside the serial window but must never be read as
	// dates; the same goes for the attendance flag column.
	path := writeRosterFile(t, [][]interface{}{
		{"TT", "Họ và tên", "Đơn vị", "Điểm danh"},
		{3, "Lê Văn Cường", "a7", 1},
	})

	r := &Reader{Path: path, SerialMin: 1, SerialMax: 50000}
	people, err := r.Read()
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, 3, people[0].TT)
	assert.True(t, people[0].Attendance)
}

func TestReaderSkipsRowsWithoutTT(t *testing.T) {
	path := writeRosterFile(t, [][]interface{}{
		{"TT", "Họ và tên", "Đơn vị"},
		{"", "Không có số", "a1"},
		{7, "Phạm Văn Dũng", "a2"},
	})

	r := &Reader{Path: path, SerialMin: 1, SerialMax: 50000}
	people, err := r.Read()
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, 7, people[0].TT)
}

func TestReaderMissingFile(t *testing.T) {
	r := &Reader{Path: filepath.Join(t.TempDir(), "missing.xlsx"), SerialMin: 1, SerialMax: 50000}
	_, err := r.Read()
	assert.Error(t, err)
}
