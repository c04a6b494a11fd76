package website

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"webwall/internal/jsonutil"
)

const (
	// DataDirEnv is the env var override for the ~/.webwall base (for testing).
	DataDirEnv = "WEBWALL_DIR"
	// DefaultDataBase is the default data directory under $HOME.
	DefaultDataBase = ".webwall"
	// storeFile is the site list file inside the data dir.
	storeFile = "websites.json"
)

// ResolveDataDir returns the data directory, using WEBWALL_DIR if set,
// otherwise ~/.webwall.
func ResolveDataDir() (string, error) {
	if base := os.Getenv(DataDirEnv); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDataBase), nil
}

// Store persists the website list as a single JSON file.
type Store struct {
	path string
}

// NewStore creates a store inside dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, storeFile)}, nil
}

// Load reads the site list. A missing file yields an empty list.
func (s *Store) Load() ([]*Website, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	sites, err := jsonutil.UnmarshalArrayAllowEmpty[*Website](data, "decode website list")
	if err != nil {
		return nil, err
	}
	return sites, nil
}

// Save writes the site list atomically (temp file + rename).
func (s *Store) Save(sites []*Website) error {
	if sites == nil {
		sites = []*Website{}
	}
	data, err := json.MarshalIndent(sites, "", "  ")
	if err != nil {
		return fmt.Errorf("encode website list: %w", err)
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
