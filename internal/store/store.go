// Package store persists task records as flat files, one task per
// .cstf file under the store directory.
package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/constell/cst/internal/task"
)

// Store defines the interface for task record storage.
type Store interface {
	// ListTasks returns every task record beneath the store directory,
	// in traversal order. A single undecodable record fails the whole
	// listing; there are no partial results.
	ListTasks(ctx context.Context) ([]*task.Task, error)

	// SaveTask writes the task's record file, silently overwriting any
	// record with the same slug.
	SaveTask(ctx context.Context, t *task.Task) error
}

// FileStore is the flat-file Store implementation. It never creates
// the store directory; a missing directory is the caller's problem to
// surface.
type FileStore struct {
	dir string
}

// New returns a FileStore rooted at dir.
func New(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the store directory path.
func (s *FileStore) Dir() string {
	return s.dir
}

// ListTasks walks the store directory recursively and decodes every
// regular file with the .cstf suffix. The directory itself is never a
// candidate. Any record that fails to decode aborts the listing with
// a single aggregate error that does not identify the offending file.
func (s *FileStore) ListTasks(ctx context.Context) ([]*task.Task, error) {
	var tasks []*task.Task

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Minimum depth 1: the store root is never a candidate record.
		if path == s.dir {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".cstf") {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		t, err := task.Decode(string(data))
		if err != nil {
			return fmt.Errorf("unable to open tasks")
		}
		tasks = append(tasks, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// SaveTask encodes the task and writes it to <dir>/<slug>.cstf,
// creating or truncating the file.
func (s *FileStore) SaveTask(ctx context.Context, t *task.Task) error {
	path := filepath.Join(s.dir, t.Filename())
	if err := os.WriteFile(path, []byte(task.Encode(t)), 0644); err != nil {
		return fmt.Errorf("failed to write task record: %w", err)
	}
	return nil
}
