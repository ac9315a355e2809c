// Package seqstore owns the counters that survive between generation
// runs: the two-digit file sequence the bank uses to spot duplicate
// submissions, and the document-number counter each payment draws from.
// The store is an injectable dependency so tests supply a deterministic
// counter instead of touching shared persistent state.
package seqstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store hands out run counters. One generation run calls
// NextFileSequence once and ReserveDocuments once; both advance
// persistent state.
type Store interface {
	// NextFileSequence returns the next file sequence number, wrapping
	// from 99 back to 1.
	NextFileSequence() (int, error)
	// ReserveDocuments reserves n consecutive document numbers and
	// returns the first of the block.
	ReserveDocuments(n int) (int64, error)
}

// maxFileSequence is the bank's two-digit ceiling; the counter wraps to 1
// past it.
const maxFileSequence = 99

type counters struct {
	FileSequence   int   `yaml:"file_sequence"`
	DocumentNumber int64 `yaml:"document_number"`
}

// FileStore persists counters in a small YAML file next to the config.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path. The file is created on first
// increment.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NextFileSequence implements Store.
func (s *FileStore) NextFileSequence() (int, error) {
	c, err := s.load()
	if err != nil {
		return 0, err
	}
	c.FileSequence++
	if c.FileSequence > maxFileSequence {
		c.FileSequence = 1
	}
	if err := s.save(c); err != nil {
		return 0, err
	}
	return c.FileSequence, nil
}

// ReserveDocuments implements Store.
func (s *FileStore) ReserveDocuments(n int) (int64, error) {
	c, err := s.load()
	if err != nil {
		return 0, err
	}
	first := c.DocumentNumber + 1
	c.DocumentNumber += int64(n)
	if err := s.save(c); err != nil {
		return 0, err
	}
	return first, nil
}

func (s *FileStore) load() (counters, error) {
	var c counters
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading counters: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing counters: %w", err)
	}
	return c, nil
}

func (s *FileStore) save(c counters) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling counters: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing counters: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and dry runs.
type MemStore struct {
	FileSequence   int
	DocumentNumber int64
}

// NextFileSequence implements Store.
func (s *MemStore) NextFileSequence() (int, error) {
	s.FileSequence++
	if s.FileSequence > maxFileSequence {
		s.FileSequence = 1
	}
	return s.FileSequence, nil
}

// ReserveDocuments implements Store.
func (s *MemStore) ReserveDocuments(n int) (int64, error) {
	first := s.DocumentNumber + 1
	s.DocumentNumber += int64(n)
	return first, nil
}
