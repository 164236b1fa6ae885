// Package store implements the named flat-JSON key-value stores the
// shell persists to: one JSON document per store, a string key mapping
// to an arbitrary JSON value, no schema versioning and no migrations.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Store file names used by the shell.
const (
	WindowStateFile          = "window-state.json"
	NotificationSettingsFile = "notification-settings.json"
	NotificationsFile        = "notifications.json"
)

// Store is a single JSON document on disk, keyed by string. Mutations
// happen in memory; Save writes the document back.
type Store struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
}

// Open loads the store at path. A missing file yields an empty store;
// a file that exists but does not parse is an error.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: map[string]json.RawMessage{},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read store %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// Get unmarshals the value at key into v. The second return is false
// when the key is absent; absence is not an error.
func (s *Store) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %q from %s: %w", key, filepath.Base(s.path), err)
	}
	return true, nil
}

// Set stores v at key in memory.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

// Clear removes every key.
func (s *Store) Clear() {
	s.mu.Lock()
	s.data = map[string]json.RawMessage{}
	s.mu.Unlock()
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	s.mu.Unlock()
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Save writes the document to disk, creating the parent directory if
// needed.
func (s *Store) Save() error {
	s.mu.Lock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode store %s: %w", filepath.Base(s.path), err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", filepath.Base(s.path), err)
	}
	return nil
}

// Raw returns a copy of the raw document, for the state inspection
// commands.
func (s *Store) Raw() map[string]json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]json.RawMessage, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
