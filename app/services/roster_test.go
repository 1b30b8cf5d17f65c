package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kien39/mil-mang/app/events"
	"github.com/kien39/mil-mang/app/models"
	"github.com/kien39/mil-mang/app/storage"
)

func defaultRows() []testRow {
	return []testRow{
		{TT: 1, Name: "Nguyễn Văn An", Role: "Tiểu đội trưởng", Unit: "a1"},
		{TT: 2, Name: "Trần Văn Bình", Role: "Chiến sĩ", Unit: "a4"},
		{TT: 3, Name: "Lê Văn Cường", Role: "Chiến sĩ", Unit: "b9"},
	}
}

func TestRosterLoadDefaultsToPresent(t *testing.T) {
	roster := newTestRoster(t, newMemStore(), events.NewBus(), defaultRows())

	for _, p := range roster.People() {
		assert.False(t, p.Absent)
		assert.Empty(t, p.Reason)
	}
	total, present, absent := roster.Stats()
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, present)
	assert.Equal(t, 0, absent)
}

func TestRosterLoadMergesSavedRecords(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Set(storage.KeyAttendance, map[int]models.AttendanceRecord{
		2: {TT: 2, Present: true, Reason: "Ốm"},
	}))

	roster := newTestRoster(t, store, events.NewBus(), defaultRows())
	people := roster.People()
	assert.False(t, people[0].Absent)
	assert.True(t, people[1].Absent)
	assert.Equal(t, "Ốm", people[1].Reason)
}

func TestRosterSaveRoundTrip(t *testing.T) {
	store := newMemStore()
	bus := events.NewBus()
	saved, cancel := bus.Subscribe(events.TopicAttendanceSaved)
	defer cancel()

	roster := newTestRoster(t, store, bus, defaultRows())
	require.NoError(t, roster.SetAbsent(0, true))
	require.NoError(t, roster.SetReason(0, "Công tác"))
	require.NoError(t, roster.Save())

	select {
	case <-saved:
	default:
		t.Fatal("save did not broadcast")
	}

	// A fresh load merges the saved state back in.
	require.NoError(t, roster.Load())
	people := roster.People()
	assert.True(t, people[0].Absent)
	assert.Equal(t, "Công tác", people[0].Reason)
	assert.False(t, people[1].Absent)
}

func TestRosterUnmarkClearsReason(t *testing.T) {
	roster := newTestRoster(t, newMemStore(), events.NewBus(), defaultRows())
	require.NoError(t, roster.SetAbsent(1, true))
	require.NoError(t, roster.SetReason(1, "Ốm"))
	require.NoError(t, roster.SetAbsent(1, false))

	p := roster.People()[1]
	assert.False(t, p.Absent)
	assert.Empty(t, p.Reason)
}

func TestRosterIndexOutOfRange(t *testing.T) {
	roster := newTestRoster(t, newMemStore(), events.NewBus(), defaultRows())
	assert.Error(t, roster.SetAbsent(-1, true))
	assert.Error(t, roster.SetAbsent(3, true))
	assert.Error(t, roster.SetReason(99, "x"))
}

func TestRosterMarkByTTIgnoresUnknown(t *testing.T) {
	roster := newTestRoster(t, newMemStore(), events.NewBus(), defaultRows())
	roster.MarkByTT([]int{2, 999}, true, "Gác đêm")

	people := roster.People()
	assert.True(t, people[1].Absent)
	assert.Equal(t, "Gác đêm", people[1].Reason)
	assert.False(t, people[0].Absent)
}

func TestRosterPageKeepsCanonicalIndices(t *testing.T) {
	roster := newTestRoster(t, newMemStore(), events.NewBus(), defaultRows())

	page, err := roster.Page("trung-doi-5", 0)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	// Trần Văn Bình is the second roster row overall.
	assert.Equal(t, 1, page.Rows[0].Index)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.TotalRows)
}

func TestRosterPageFallbackBucket(t *testing.T) {
	roster := newTestRoster(t, newMemStore(), events.NewBus(), defaultRows())

	page, err := roster.Page(models.FallbackCategoryID, 0)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Lê Văn Cường", page.Rows[0].Person.Name)
}

func TestRosterPageClampsAndRejects(t *testing.T) {
	roster := newTestRoster(t, newMemStore(), events.NewBus(), defaultRows())

	page, err := roster.Page("trung-doi-4", 99)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Page)

	_, err = roster.Page("no-such-unit", 0)
	assert.Error(t, err)
}

func TestRosterPageSize(t *testing.T) {
	rows := make([]testRow, 0, 20)
	for i := 1; i <= 20; i++ {
		rows = append(rows, testRow{TT: i, Name: "Người số nhiều", Unit: "a1"})
	}
	roster := newTestRoster(t, newMemStore(), events.NewBus(), rows)

	page, err := roster.Page("trung-doi-4", 0)
	require.NoError(t, err)
	assert.Len(t, page.Rows, PageSize)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 20, page.TotalRows)

	last, err := roster.Page("trung-doi-4", 2)
	require.NoError(t, err)
	assert.Len(t, last.Rows, 20-2*PageSize)
}

func TestRosterFindByName(t *testing.T) {
	roster := newTestRoster(t, newMemStore(), events.NewBus(), defaultRows())

	assert.Len(t, roster.FindByName("văn"), 3)
	assert.Len(t, roster.FindByName("BÌNH"), 1)
	assert.Nil(t, roster.FindByName(""))
	assert.Nil(t, roster.FindByName("   "))
}

func TestRosterResolveByNameExact(t *testing.T) {
	roster := newTestRoster(t, newMemStore(), events.NewBus(), defaultRows())

	p, ok := roster.ResolveByName("Trần Văn Bình")
	require.True(t, ok)
	assert.Equal(t, 2, p.TT)

	_, ok = roster.ResolveByName("Trần Văn")
	assert.False(t, ok)
}

func TestAbsentReasonsSortedWithPlaceholder(t *testing.T) {
	people := []models.Person{
		{Absent: true, Reason: "Ốm"},
		{Absent: true, Reason: ""},
		{Absent: true, Reason: "Công tác"},
		{Absent: true, Reason: "Ốm"},
		{Absent: false, Reason: "bị bỏ qua"},
	}
	reasons := AbsentReasons(people, "(Chưa có lý do)")
	assert.Equal(t, []string{"(Chưa có lý do)", "Công tác", "Ốm"}, reasons)
}
