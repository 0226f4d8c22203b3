// Package kvstore is a small JSON key-value store over a filesystem,
// one file per key. It mirrors browser localStorage semantics: reads
// never fail the caller, writes report errors but are expected to be
// treated as fire-and-forget.
package kvstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

type Store struct {
	fs  afero.Fs
	dir string
	log *slog.Logger
}

func New(fs afero.Fs, dir string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: create data dir %q: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir, log: log}, nil
}

// Load reads the JSON blob stored under key into out. It returns false
// when the key is missing, unreadable, or holds corrupt JSON; out is
// left untouched in that case and the caller falls back to defaults.
func (s *Store) Load(key string, out any) bool {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("kvstore read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn("kvstore corrupt entry, falling back to defaults", "key", key, "err", err)
		return false
	}
	return true
}

// Save serializes v under key. Callers decide whether a failed write is
// worth surfacing; in-memory state stays authoritative either way.
func (s *Store) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("kvstore: marshal %q: %w", key, err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("kvstore: write %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry for key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	err := s.fs.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kvstore: delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
