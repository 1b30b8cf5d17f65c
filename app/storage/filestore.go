package storage

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the whole key space as one JSON document, rewritten on
// every Set. This mirrors the legacy client's storage model: a small
// single-tenant state blob with last-write-wins overwrites.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
	// hash of the last content this process wrote, used by the watcher to
	// tell its own writes apart from external ones.
	lastWritten [32]byte
}

// OpenFile loads (or creates) the store at path. A corrupt file is logged
// and treated as empty rather than failing startup.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: map[string]json.RawMessage{}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Printf("State file %s is corrupt, starting empty: %v", path, err)
		s.data = map[string]json.RawMessage{}
		return s, nil
	}
	s.lastWritten = sha256.Sum256(raw)
	return s, nil
}

func (s *FileStore) Get(key string, v interface{}) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("Stored value for %q is malformed, ignoring: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *FileStore) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal value for %q: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flushLocked()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flushLocked()
}

// Reload re-reads the file and replaces the in-memory view, returning the
// keys whose values changed. Used by the watcher when another process has
// written the file.
func (s *FileStore) Reload() ([]string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		raw = []byte("{}")
	} else if err != nil {
		return nil, err
	}

	next := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &next); err != nil {
		log.Printf("State file %s is corrupt on reload, keeping current state: %v", s.path, err)
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var changed []string
	for k, v := range next {
		if prev, ok := s.data[k]; !ok || string(prev) != string(v) {
			changed = append(changed, k)
		}
	}
	for k := range s.data {
		if _, ok := next[k]; !ok {
			changed = append(changed, k)
		}
	}
	s.data = next
	s.lastWritten = sha256.Sum256(raw)
	return changed, nil
}

// WrittenByUs reports whether content matches the last write this process
// made to the file.
func (s *FileStore) WrittenByUs(content []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sha256.Sum256(content) == s.lastWritten
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	s.lastWritten = sha256.Sum256(raw)
	return nil
}
