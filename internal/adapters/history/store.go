// Package history implements run record storage, one JSON file per target.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.RunStore using a file-per-target strategy
// under the session root's history directory. The Store itself is
// stateless; every operation takes the root explicitly.
type Store struct{}

// NewStore creates a new RunStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the last run record for a target.
func (s *Store) Get(root, target string) (*domain.RunRecord, error) {
	filename := s.getFilename(root, target)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrHistoryReadFailed.Error())
	}

	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.Wrap(err, domain.ErrHistoryReadFailed.Error())
	}

	return &record, nil
}

// Put stores the run record, replacing any previous one for the target.
func (s *Store) Put(root string, record domain.RunRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrHistoryWriteFailed.Error())
	}

	filename := s.getFilename(root, record.Target)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrHistoryWriteFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrHistoryWriteFailed.Error())
	}

	return nil
}

// getFilename hashes the target name so arbitrary target names (paths
// like "bin/app" included) map to flat, filesystem-safe filenames.
func (s *Store) getFilename(root, target string) string {
	hash := sha256.Sum256([]byte(target))
	return filepath.Join(domain.HistoryPath(root), hex.EncodeToString(hash[:])+".json")
}
