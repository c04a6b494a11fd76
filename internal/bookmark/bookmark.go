// Package bookmark persists access grants for user-chosen local
// website directories, the moral equivalent of a security-scoped
// bookmark: a record that the user deliberately granted the app access
// to a path outside its own data dir.
package bookmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const grantsFile = "grants.json"

// Grant records one directory the user granted access to.
type Grant struct {
	Path      string    `json:"path"`
	GrantedAt time.Time `json:"grantedAt"`
}

// Store persists grants as a JSON file in the data dir.
type Store struct {
	mu     sync.Mutex
	path   string
	grants []Grant
}

// Open loads the grant list from dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create bookmark dir: %w", err)
	}
	s := &Store{path: filepath.Join(dir, grantsFile)}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &s.grants); err != nil {
		return nil, fmt.Errorf("decode grants: %w", err)
	}
	return s, nil
}

// Save records a grant for dir, replacing any existing grant for the
// same path. The directory must exist; failures surface to the caller.
func (s *Store) Save(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	g := Grant{Path: abs, GrantedAt: time.Now().UTC()}
	replaced := false
	for i, existing := range s.grants {
		if existing.Path == abs {
			s.grants[i] = g
			replaced = true
			break
		}
	}
	if !replaced {
		s.grants = append(s.grants, g)
	}
	return s.persistLocked()
}

// Granted reports whether a grant exists for dir.
func (s *Store) Granted(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.grants {
		if g.Path == abs {
			return true
		}
	}
	return false
}

func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.grants, "", "  ")
	if err != nil {
		return fmt.Errorf("encode grants: %w", err)
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

// HasIndex reports whether dir contains an index.html file.
func HasIndex(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "index.html"))
	return err == nil && info.Mode().IsRegular()
}
