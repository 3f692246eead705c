// Package store persists the full ProjectStore document as a single
// JSON file. Every load reads the whole document; every save is a full
// rewrite. There is no locking: one invocation at a time is assumed.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tiliavir/timelogger/internal/model"
)

const fileName = ".timelogger.json"

// DefaultPath returns the default store location, ~/.timelogger.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, fileName), nil
}

// Load reads the store from path. A missing file is not an error and
// yields an empty store; an unparseable file is backed up and reported.
func Load(path string) (*model.ProjectStore, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.NewProjectStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var s model.ProjectStore
	if err := json.Unmarshal(data, &s); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return nil, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	if s.Projects == nil {
		s.Projects = map[string]*model.Project{}
	}
	return &s, nil
}

// Save writes the full store to path, replacing prior contents.
func Save(path string, s *model.ProjectStore) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("storage error creating directories: %w", err)
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
