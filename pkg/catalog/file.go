package catalog

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sessilelab/dropletgen/pkg/errors"
)

// FileStore appends records to a JSONL file, one JSON object per line.
// Appends are serialized with a mutex so concurrent batch workers never
// interleave partial lines.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a JSONL-backed catalog at path, creating parent
// directories as needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeConfiguration, "catalog path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "create catalog directory")
		}
	}
	return &FileStore{path: path}, nil
}

// Append implements Store.
func (s *FileStore) Append(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "open catalog")
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write catalog record")
	}
	return nil
}

// List implements Store. A missing catalog file is an empty catalog.
func (s *FileStore) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open catalog")
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "malformed catalog line")
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read catalog")
	}
	return records, nil
}

// Close implements Store. The file is opened per operation, so there is
// nothing to release.
func (s *FileStore) Close(ctx context.Context) error {
	return nil
}
