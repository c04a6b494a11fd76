// Package prefs is the small persisted key-value store for one-time
// flags ("first launch", "tip already shown"). It is read once at
// process start; writes persist immediately.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys.
const (
	KeyFirstLaunch = "firstLaunch"
	KeyTipShown    = "tipShown"
)

const prefsFile = "prefs.json"

// defaults apply when a key has never been written.
var defaults = map[string]bool{
	KeyFirstLaunch: true,
	KeyTipShown:    false,
}

// Store holds the loaded flag map.
type Store struct {
	mu    sync.Mutex
	path  string
	flags map[string]bool
}

// Open loads prefs from dir. A missing or unreadable file degrades to
// defaults; it is not an error.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}
	s := &Store{
		path:  filepath.Join(dir, prefsFile),
		flags: make(map[string]bool),
	}
	if data, err := os.ReadFile(s.path); err == nil {
		// Corrupt files are ignored; defaults win.
		_ = json.Unmarshal(data, &s.flags)
	}
	return s, nil
}

// Bool returns the flag value, falling back to the key's default.
func (s *Store) Bool(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.flags[key]; ok {
		return v
	}
	return defaults[key]
}

// SetBool writes and persists the flag.
func (s *Store) SetBool(key string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = v
	data, err := json.MarshalIndent(s.flags, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
