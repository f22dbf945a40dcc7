// Package state implements a file-per-target JSON StateStore, one record per
// target named by a hash of the target name, written atomically via
// temp-file-then-rename.
package state

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"wfgraph/internal/core/domain"
	"wfgraph/internal/core/ports"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Store implements ports.StateStore using a file-per-target strategy: each
// target's record lives at hex(xxhash64(name)) + ".json" under dir.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating it if necessary. Open is
// a no-op beyond this: the directory is ready for use immediately.
func NewStore(dir string) (*Store, error) {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, dirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create state store directory")
	}
	return &Store{dir: cleanDir}, nil
}

// Open satisfies ports.StateStore; the directory is already prepared by
// NewStore, so there is nothing further to acquire.
func (s *Store) Open() error { return nil }

// Close satisfies ports.StateStore; the store holds no live handle to
// release.
func (s *Store) Close() error { return nil }

// GetTargetMeta returns the persisted record for targetName, creating an
// UNKNOWN one in memory if none exists on disk yet (it is not written until
// the first Commit).
func (s *Store) GetTargetMeta(targetName string) (ports.TargetMeta, error) {
	record, err := s.read(targetName)
	if err != nil {
		return nil, err
	}
	return &targetMeta{
		store:  s,
		name:   targetName,
		record: record,
	}, nil
}

type record struct {
	TargetName string             `json:"target_name"`
	State      domain.TargetState `json:"state"`
}

func (s *Store) filename(targetName string) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], xxhash.Sum64String(targetName))
	return filepath.Join(s.dir, hex.EncodeToString(buf[:])+".json")
}

func (s *Store) read(targetName string) (record, error) {
	path := s.filename(targetName)
	//nolint:gosec // path is built from a trusted directory and hashed name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return record{TargetName: targetName, State: domain.TargetStateUnknown}, nil
		}
		return record{}, zerr.With(zerr.Wrap(err, "failed to read target state"), "target", targetName)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return record{}, zerr.With(zerr.Wrap(err, "failed to unmarshal target state"), "target", targetName)
	}
	return r, nil
}

func (s *Store) write(r record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to marshal target state"), "target", r.TargetName)
	}

	path := s.filename(r.TargetName)
	tmp, err := os.CreateTemp(s.dir, "state-*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp state file"), "target", r.TargetName)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // best-effort cleanup if rename fails below

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write temp state file"), "target", r.TargetName)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temp state file"), "target", r.TargetName)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to chmod temp state file"), "target", r.TargetName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to commit target state"), "target", r.TargetName)
	}
	return nil
}
