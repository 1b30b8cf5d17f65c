package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kien39/mil-mang/app/events"
	"github.com/kien39/mil-mang/app/models"
	"github.com/kien39/mil-mang/app/storage"
)

// ErrTaskNotFound is returned for operations on unknown task ids.
var ErrTaskNotFound = fmt.Errorf("task not found")

// ValidationError marks a user-input failure that must surface as a visible
// message rather than a silent no-op.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Tasks manages the short-lived task list. The full list is persisted
// wholesale after every mutation, newest first.
type Tasks struct {
	store  storage.Store
	roster *Roster
	bus    *events.Bus
	now    func() time.Time

	mu    sync.Mutex
	tasks []models.Task
}

func NewTasks(store storage.Store, roster *Roster, bus *events.Bus) *Tasks {
	t := &Tasks{store: store, roster: roster, bus: bus, now: time.Now}
	if _, err := store.Get(storage.KeyTasks, &t.tasks); err != nil {
		log.Printf("Loading saved tasks failed, starting empty: %v", err)
	}
	return t
}

// List returns a snapshot of the task list, newest first.
func (t *Tasks) List() []models.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

// InProgressCount counts tasks still progressing, for the badge surface.
func (t *Tasks) InProgressCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, task := range t.tasks {
		if task.Status == models.TaskProgressing {
			n++
		}
	}
	return n
}

// Create validates and prepends a new in-progress task, marking every
// referenced person absent with the task name as reason.
func (t *Tasks) Create(name, location string, selectedTT []int) (models.Task, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(location) == "" || len(selectedTT) == 0 {
		return models.Task{}, &ValidationError{
			Message: "Vui lòng nhập tên công việc, vị trí, và chọn ít nhất 1 người",
		}
	}

	now := t.now()
	task := models.Task{
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		Name:       name,
		Location:   location,
		SelectedTT: append([]int(nil), selectedTT...),
		CreatedAt:  now.UTC().Format(time.RFC3339),
		Status:     models.TaskProgressing,
	}

	t.roster.MarkByTT(selectedTT, true, name)

	t.mu.Lock()
	t.tasks = append([]models.Task{task}, t.tasks...)
	t.mu.Unlock()

	if err := t.persist(); err != nil {
		return models.Task{}, err
	}
	t.bus.Publish(events.TopicTasksUpdated, task.ID)
	return task, nil
}

// UpdateStatus transitions a task between progressing and done. Completing
// a task stamps the completion time, reverts every referenced person to
// present with an empty reason, and persists that reversion. Reopening does
// not re-apply absence.
func (t *Tasks) UpdateStatus(id, status string) (models.Task, error) {
	if status != models.TaskProgressing && status != models.TaskDone {
		return models.Task{}, &ValidationError{Message: "Invalid task status"}
	}

	t.mu.Lock()
	idx := -1
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		t.mu.Unlock()
		return models.Task{}, ErrTaskNotFound
	}
	t.tasks[idx].Status = status
	if status == models.TaskDone {
		t.tasks[idx].CompletedAt = t.now().UTC().Format(time.RFC3339)
	}
	task := t.tasks[idx]
	t.mu.Unlock()

	if status == models.TaskDone {
		t.roster.MarkByTT(task.SelectedTT, false, "")
		if err := t.roster.Save(); err != nil {
			log.Printf("Persisting attendance after task completion failed: %v", err)
		}
	}

	if err := t.persist(); err != nil {
		return models.Task{}, err
	}
	t.bus.Publish(events.TopicTasksUpdated, task.ID)
	return task, nil
}

// Delete removes a task unconditionally. Any confirmation is a UI concern.
func (t *Tasks) Delete(id string) error {
	t.mu.Lock()
	kept := t.tasks[:0]
	found := false
	for _, task := range t.tasks {
		if task.ID == id {
			found = true
			continue
		}
		kept = append(kept, task)
	}
	t.tasks = kept
	t.mu.Unlock()

	if !found {
		return ErrTaskNotFound
	}
	if err := t.persist(); err != nil {
		return err
	}
	t.bus.Publish(events.TopicTasksUpdated, id)
	return nil
}

// Reload replaces the in-memory list with whatever the store holds now.
// Used when another process has rewritten the state file.
func (t *Tasks) Reload() {
	var tasks []models.Task
	if _, err := t.store.Get(storage.KeyTasks, &tasks); err != nil {
		log.Printf("Reloading tasks failed, keeping current list: %v", err)
		return
	}
	t.mu.Lock()
	t.tasks = tasks
	t.mu.Unlock()
}

func (t *Tasks) persist() error {
	t.mu.Lock()
	snapshot := make([]models.Task, len(t.tasks))
	copy(snapshot, t.tasks)
	t.mu.Unlock()
	return t.store.Set(storage.KeyTasks, snapshot)
}
