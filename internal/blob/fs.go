package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/paperdock/librarysync/internal/errs"
)

// pdfExt is the only binary format the library stores today.
const pdfExt = ".pdf"

// FSStore keeps binaries as <id>.pdf files under a single directory.
// It relies on the filesystem's own atomicity for individual writes;
// concurrent writes to the same id are last-writer-wins, matching the
// metadata conflict policy.
type FSStore struct {
	dir string
}

var _ Store = (*FSStore)(nil)

// NewFSStore creates the storage directory if needed.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &FSStore{dir: dir}, nil
}

func (s *FSStore) path(id string) string {
	return filepath.Join(s.dir, id+pdfExt)
}

func (s *FSStore) Save(_ context.Context, id string, data []byte) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	return os.WriteFile(s.path(id), data, 0o644)
}

func (s *FSStore) Read(_ context.Context, id string) ([]byte, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *FSStore) Delete(_ context.Context, id string) (bool, error) {
	if err := ValidateID(id); err != nil {
		return false, err
	}
	err := os.Remove(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *FSStore) Exists(_ context.Context, id string) (bool, error) {
	if err := ValidateID(id); err != nil {
		return false, err
	}
	_, err := os.Stat(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *FSStore) Size(_ context.Context, id string) (int64, error) {
	if err := ValidateID(id); err != nil {
		return 0, err
	}
	fi, err := os.Stat(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return fi.Size(), nil
}
