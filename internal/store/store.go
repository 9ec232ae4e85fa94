// Package store implements the file-backed user record store: an in-memory
// ordered collection, unique by username, persisted as a JSON array of flat
// attribute maps at a single well-known path.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mealmajor/accountd/internal/interfaces"
	"github.com/mealmajor/accountd/internal/models"
	"github.com/mealmajor/accountd/internal/policy"
	"github.com/mealmajor/accountd/internal/schema"
)

const dataFileMode = 0o600

// FileStore is the authoritative in-memory collection of user records backed
// by a single JSON file. One mutex serializes every operation, including the
// persistence I/O, so no caller ever observes a half-applied mutation.
type FileStore struct {
	mu       sync.Mutex
	path     string
	template *schema.Template
	records  []models.Record
	logger   interfaces.Logger
}

// NewFileStore creates a store persisting to path. The collection starts
// empty; call Load to hydrate it from disk.
func NewFileStore(path string, template *schema.Template, logger interfaces.Logger) *FileStore {
	return &FileStore{
		path:     path,
		template: template,
		records:  []models.Record{},
		logger:   logger,
	}
}

// Load reads the persisted file and replaces the in-memory collection with
// its contents, running every record through the schema template. A missing
// file is not an error: the collection starts empty. A read or parse failure
// is logged and downgraded to an empty collection as well. Calling Load
// again is a full reset from disk, discarding unsaved mutations.
func (s *FileStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []models.Record{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("No user data file yet, starting empty", "path", s.path)
			return
		}
		s.logger.Error(ErrFailedToReadFile, "path", s.path, "error", err)
		return
	}

	var records []models.Record
	if data = bytes.TrimSpace(data); len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			s.logger.Error(ErrFailedToParseFile, "path", s.path, "error", err)
			return
		}
	}

	for _, record := range records {
		if record == nil {
			continue
		}
		s.template.Migrate(record)
		s.records = append(s.records, record)
	}

	s.logger.Info("User data loaded", "path", s.path, "records", len(s.records))
}

// Save serializes the full collection and replaces the persisted file. The
// write goes to a temporary file in the same directory which is then renamed
// over the target, so a concurrent reader never observes a truncated file.
// On failure the in-memory state stays authoritative and the write is
// retried by whatever operation triggers the next Save.
func (s *FileStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save persists without taking the lock; callers must hold s.mu.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		s.logger.Error(ErrFailedToMarshal, "error", err)
		return fmt.Errorf("%s: %w", ErrFailedToMarshal, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		s.logger.Error(ErrFailedToWriteTemp, "dir", dir, "error", err)
		return fmt.Errorf("%s: %w", ErrFailedToWriteTemp, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		s.logger.Error(ErrFailedToWriteTemp, "path", tmpName, "error", err)
		return fmt.Errorf("%s: %w", ErrFailedToWriteTemp, err)
	}

	if err := os.Chmod(tmpName, dataFileMode); err != nil {
		_ = os.Remove(tmpName)
		s.logger.Error(ErrFailedToWriteTemp, "path", tmpName, "error", err)
		return fmt.Errorf("%s: %w", ErrFailedToWriteTemp, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		s.logger.Error(ErrFailedToRenameTemp, "path", s.path, "error", err)
		return fmt.Errorf("%s: %w", ErrFailedToRenameTemp, err)
	}

	s.logger.Debug("User data saved", "path", s.path, "records", len(s.records))
	return nil
}

// GetUser returns a copy of the record with the exact username. The linear
// scan is fine at this data size. Absence is a normal, non-error outcome.
func (s *FileStore) GetUser(username string) (models.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.find(username)
	if record == nil {
		return nil, false
	}
	return record.Clone(), true
}

// find returns the live record for username; callers must hold s.mu.
func (s *FileStore) find(username string) models.Record {
	for _, record := range s.records {
		if record.Username() == username {
			return record
		}
	}
	return nil
}

// AddUser appends the record after running it through the schema template.
// A record whose username is already present is silently skipped, keeping
// the first record's fields intact.
func (s *FileStore) AddUser(record models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(record.Username()) != nil {
		s.logger.Debug("Skipping duplicate user", "user", record.Username())
		return
	}

	s.template.Migrate(record)
	s.records = append(s.records, record)
}

// UpdateUser merges patch into the named record, every patch key fully
// overwriting the existing value, then re-migrates the record so template
// completeness holds even if the patch introduced nothing. Reports false
// when no such user exists.
func (s *FileStore) UpdateUser(username string, patch models.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.find(username)
	if record == nil {
		return false
	}

	record.Merge(patch)
	s.template.Migrate(record)
	return true
}

// RemoveUser deletes the record only when the username matches exactly and
// the password matches the stored hash. Anything else is a silent no-op.
func (s *FileStore) RemoveUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if record.Username() != username {
			continue
		}
		if !policy.CheckPassword(record.Password(), password) {
			return
		}
		s.records = append(s.records[:i], s.records[i+1:]...)
		s.logger.Info("User removed", "user", username)
		return
	}
}

// AddAttribute extends the schema template with a new key and default, then
// retroactively migrates every record in the collection so older records
// gain the attribute without losing existing values. The grown collection is
// persisted immediately.
func (s *FileStore) AddAttribute(key, defaultValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := s.template.AddAttribute(key, defaultValue)
	patched := 0
	for _, record := range s.records {
		if s.template.Migrate(record) {
			patched++
		}
	}
	s.logger.Info("Template attribute added", "key", key, "new", added, "patched", patched)

	return s.save()
}

// Count returns the number of records currently held.
func (s *FileStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
