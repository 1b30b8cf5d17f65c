package models

// Task status values. The literal strings are persisted, so they must not
// change between releases.
const (
	TaskProgressing = "progressing"
	TaskDone        = "done"
)

// Task is a short-lived work assignment referencing a subset of the roster by
// TT. Creating a task marks every referenced person absent with the task name
// as reason; completing it reverts them to present.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	SelectedTT  []int  `json:"selectedTT"`
	CreatedAt   string `json:"createdAt"`
	Status      string `json:"status"`
	CompletedAt string `json:"completedAt,omitempty"`
}
