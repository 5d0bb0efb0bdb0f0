// Package jsonstore provides a JSON file-based implementation of PartyRepository.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// storeData represents the JSON file structure.
type storeData struct {
	Party *domain.Snapshot `json:"party"`
	Meta  meta             `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	Revision int `json:"revision"`
}

// Store implements domain.PartyRepository using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first save.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored party.
func (s *Store) Load() (*domain.Party, error) {
	var party *domain.Party
	err := s.withLock(func(data *storeData) error {
		if data.Party == nil {
			return domain.ErrNoParty
		}
		p, err := data.Party.Restore()
		if err != nil {
			return fmt.Errorf("restore %s: %w", s.path, err)
		}
		party = p
		return nil
	})
	return party, err
}

// Save replaces the stored party.
func (s *Store) Save(p *domain.Party) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Party = domain.TakeSnapshot(p)
		data.Meta.Revision++
		return nil
	})
}

// Exists reports whether a party has been saved.
func (s *Store) Exists() (bool, error) {
	var exists bool
	err := s.withLock(func(data *storeData) error {
		exists = data.Party != nil
		return nil
	})
	if errors.Is(err, domain.ErrNoParty) {
		return false, nil
	}
	return exists, err
}

// Revision returns how many times the party was saved.
func (s *Store) Revision() (int, error) {
	var rev int
	err := s.withLock(func(data *storeData) error {
		rev = data.Meta.Revision
		return nil
	})
	if errors.Is(err, domain.ErrNoParty) {
		return 0, nil
	}
	return rev, err
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
// A missing store file starts out empty.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if errors.Is(err, domain.ErrNoParty) {
		data = &storeData{}
	} else if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoParty
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %v: %w", err, domain.ErrCorruptSession)
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements PartyRepository.
var _ domain.PartyRepository = (*Store)(nil)
