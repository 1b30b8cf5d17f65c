package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kien39/mil-mang/app/events"
	"github.com/kien39/mil-mang/app/models"
	"github.com/kien39/mil-mang/app/storage"
)

func TestStorageReloadsRefreshCachedState(t *testing.T) {
	store := newMemStore()
	bus := events.NewBus()
	roster := newTestRoster(t, store, bus, defaultRows())
	tasks := NewTasks(store, roster, bus)
	survey := NewSurvey(store, roster, bus)

	cancel := SubscribeStorageReloads(bus, roster, tasks, survey)
	defer cancel()

	// Another process marks TT 2 absent behind our back.
	require.NoError(t, store.Set(storage.KeyAttendance, map[int]models.AttendanceRecord{
		2: {TT: 2, Present: true, Reason: "Ốm"},
	}))
	bus.Publish(events.TopicStorageExternal, storage.KeyAttendance)
	assert.Eventually(t, func() bool {
		p := roster.People()[1]
		return p.Absent && p.Reason == "Ốm"
	}, time.Second, 10*time.Millisecond, "roster never picked up the external write")

	require.NoError(t, store.Set(storage.KeyTasks, []models.Task{
		{ID: "1717230000000", Name: "Gác đêm", Location: "Cổng", Status: models.TaskProgressing},
	}))
	bus.Publish(events.TopicStorageExternal, storage.KeyTasks)
	assert.Eventually(t, func() bool {
		list := tasks.List()
		return len(list) == 1 && list[0].Name == "Gác đêm"
	}, time.Second, 10*time.Millisecond, "task list never picked up the external write")

	require.NoError(t, store.Set(storage.KeyEvaluations, []models.ThoughtEvaluation{
		{TT: 3, Name: "Lê Văn Cường", Level: models.LevelCounseling},
	}))
	bus.Publish(events.TopicStorageExternal, storage.KeyEvaluations)
	assert.Eventually(t, func() bool {
		return len(survey.Results()) == 1
	}, time.Second, 10*time.Millisecond, "evaluations never picked up the external write")
}

func TestStorageReloadsIgnoreUnrelatedKeys(t *testing.T) {
	store := newMemStore()
	bus := events.NewBus()
	roster := newTestRoster(t, store, bus, defaultRows())
	tasks := NewTasks(store, roster, bus)
	survey := NewSurvey(store, roster, bus)

	cancel := SubscribeStorageReloads(bus, roster, tasks, survey)
	defer cancel()

	// An unrelated key followed by a related one; once the related reload is
	// observed, the unrelated key has already been drained without effect.
	bus.Publish(events.TopicStorageExternal, storage.KeyUserRole)
	require.NoError(t, store.Set(storage.KeyTasks, []models.Task{
		{ID: "1", Name: "Gác đêm", Status: models.TaskProgressing},
	}))
	bus.Publish(events.TopicStorageExternal, storage.KeyTasks)

	assert.Eventually(t, func() bool {
		return len(tasks.List()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, survey.Results())
	_, _, absent := roster.Stats()
	assert.Equal(t, 0, absent)
}

func TestTasksReloadReplacesList(t *testing.T) {
	tasks, _, store := newTestTasks(t)
	_, err := tasks.Create("Gác đêm", "Cổng chính", []int{1})
	require.NoError(t, err)

	require.NoError(t, store.Set(storage.KeyTasks, []models.Task{}))
	tasks.Reload()
	assert.Empty(t, tasks.List())
}

func TestSurveyReloadReplacesEvaluations(t *testing.T) {
	s, store := newTestSurvey(t)
	_, err := s.Submit("Nguyễn Văn An", bestResponses(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, store.Set(storage.KeyEvaluations, []models.ThoughtEvaluation{
		{TT: 2, Name: "Trần Văn Bình", Level: models.LevelSettled},
	}))
	s.Reload()
	results := s.Results()
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].TT)
}
