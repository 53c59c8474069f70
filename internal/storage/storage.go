package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Tiliavir/hyprkit/internal/model"
)

// ErrCorrupt is returned when the cache file exists but cannot be decoded.
var ErrCorrupt = errors.New("corrupt prayer times cache")

// Store persists the last successfully fetched schedule.
type Store interface {
	// Load returns the cached schedule. found is false when nothing is cached.
	Load() (s model.Schedule, found bool, err error)
	// Save overwrites the cache with s.
	Save(s model.Schedule) error
}

// DefaultPath returns ~/.cache/prayer_times.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".cache", "prayer_times.json"), nil
}

// FileStore keeps the schedule in a JSON file shaped like the upstream
// API response.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the cache file. A missing file is not an error. A file that
// cannot be decoded is backed up to <path>.corrupt and ErrCorrupt is returned.
func (f *FileStore) Load() (model.Schedule, bool, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return model.Schedule{}, false, nil
	}
	if err != nil {
		return model.Schedule{}, false, fmt.Errorf("storage error reading %s: %w", f.Path, err)
	}

	var env model.TimingsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return model.Schedule{}, false, f.backup(err)
	}

	s, err := model.ScheduleFromTimings(env.Data.Timings, env.Data.Date.Readable)
	if errors.Is(err, model.ErrEmptySchedule) {
		return model.Schedule{}, false, nil
	}
	if err != nil {
		return model.Schedule{}, false, f.backup(err)
	}
	return s, true, nil
}

func (f *FileStore) backup(cause error) error {
	backupPath := f.Path + ".corrupt"
	_ = os.Rename(f.Path, backupPath)
	return fmt.Errorf("%w in %s (backed up to %s): %v", ErrCorrupt, f.Path, backupPath, cause)
}

// Save atomically overwrites the cache file.
func (f *FileStore) Save(s model.Schedule) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	var env model.TimingsEnvelope
	env.Code = 200
	env.Status = "OK"
	env.Data.Timings = s.Timings()
	env.Data.Date.Readable = s.Date

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := f.Path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store, used where no file should be touched.
type MemoryStore struct {
	mu       sync.Mutex
	schedule *model.Schedule
	// SaveErr, when set, is returned by Save.
	SaveErr error
	Saves   int
}

// NewMemoryStore returns a MemoryStore, optionally pre-seeded.
func NewMemoryStore(seed *model.Schedule) *MemoryStore {
	return &MemoryStore{schedule: seed}
}

func (m *MemoryStore) Load() (model.Schedule, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.schedule == nil {
		return model.Schedule{}, false, nil
	}
	return *m.schedule, true, nil
}

func (m *MemoryStore) Save(s model.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.schedule = &s
	return nil
}
