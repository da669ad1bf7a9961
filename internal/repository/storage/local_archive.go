package storage

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// LocalArchiveStore writes backup archives to a directory and prunes the
// oldest files beyond the retention count.
type LocalArchiveStore struct {
	dir       string
	retention int
}

// NewLocalArchiveStore creates a LocalArchiveStore, creating the
// directory if needed.
func NewLocalArchiveStore(dir string, retention int) (*LocalArchiveStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalArchiveStore{dir: dir, retention: retention}, nil
}

// Store writes the archive and prunes old ones.
func (s *LocalArchiveStore) Store(_ context.Context, name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	s.prune()
	return nil
}

// prune removes the oldest backup files beyond the retention count.
// Pruning is best effort; failures are logged, not surfaced.
func (s *LocalArchiveStore) prune() {
	if s.retention <= 0 {
		return
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", s.dir).Msg("Failed to list backup directory")
		return
	}

	var backups []os.DirEntry
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "backup_") {
			continue
		}
		backups = append(backups, entry)
	}
	if len(backups) <= s.retention {
		return
	}

	type stamped struct {
		name    string
		modTime int64
	}
	var files []stamped
	for _, entry := range backups {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, stamped{name: entry.Name(), modTime: info.ModTime().UnixNano()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].modTime > files[j].modTime })

	for _, f := range files[s.retention:] {
		if err := os.Remove(filepath.Join(s.dir, f.name)); err != nil {
			log.Warn().Err(err).Str("file", f.name).Msg("Failed to remove old backup")
			continue
		}
		log.Info().Str("file", f.name).Msg("Removed old backup")
	}
}
