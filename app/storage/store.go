package storage

// Well-known store keys. They match the browser-storage keys of the legacy
// client, so an exported state file stays recognizable.
const (
	KeyAttendance    = "attendance_with_reasons"
	KeyTasks         = "tasks"
	KeySurveyEnabled = "surveyEnabled"
	KeyEvaluations   = "thought_evaluations"
	KeyUserRole      = "userRole"
	KeyUserAccount   = "userAccount"
)

// Store is a single-writer key-value store with last-write-wins semantics.
// Every value is written wholesale; there is no partial update and no
// locking across processes, so two concurrent writers can silently lose one
// side's update. Callers needing multi-writer safety must not rely on it.
type Store interface {
	// Get unmarshals the value at key into v and reports whether the key
	// existed. A malformed stored value is treated as absent.
	Get(key string, v interface{}) (bool, error)
	// Set marshals v and persists it under key.
	Set(key string, v interface{}) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}
