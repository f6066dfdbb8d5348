// Package state persists run records across invocations.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultRelPath is the store location relative to the XDG state directory.
const DefaultRelPath = "aospbuild/runs.json"

// Store implements ports.RunStore using a flat JSON file keyed by build directory.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.RunRecord
}

// DefaultPath returns the store location under the user's XDG state directory.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, DefaultRelPath)
}

// NewStore creates a RunStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	s.cache = records
	return nil
}

// read decodes the file as it is on disk now. A missing or empty file holds no records.
func (s *Store) read() (map[string]domain.RunRecord, error) {
	records := make(map[string]domain.RunRecord)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return records, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read run store"), "path", s.path)
	}

	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal run store"), "path", s.path)
	}
	return records, nil
}

// save writes the store through a temporary file so a crash never leaves it truncated.
// The caller must hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for run store")
	}

	tmp, err := os.CreateTemp(dir, ".runs-*.json")
	if err != nil {
		return zerr.Wrap(err, "failed to create run store")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write run store")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write run store")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace run store"), "path", s.path)
	}
	return nil
}

// Get returns the last record of buildDir, or nil if none was stored.
func (s *Store) Get(buildDir string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[key(buildDir)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put replaces the record of the record's build directory. Only finished runs are stored.
// Records written by other processes since the store was opened are kept.
func (s *Store) Put(record domain.RunRecord) (err error) {
	if !record.Result.IsTerminal() {
		return zerr.With(zerr.New("run record has no final result"), "result", string(record.Result))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := lockFile(s.path)
	if err != nil {
		return err
	}
	defer func() {
		if unlockErr := unlock(); unlockErr != nil && err == nil {
			err = zerr.Wrap(unlockErr, "failed to unlock run store")
		}
	}()

	records, err := s.read()
	if err != nil {
		return err
	}
	records[key(record.BuildDir)] = record
	s.cache = records
	return s.save()
}

func key(buildDir string) string {
	return filepath.Clean(buildDir)
}
