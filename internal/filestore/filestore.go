package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Store keeps comment attachments on local disk under a single directory.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the attachment under a timestamp-prefixed name derived from the
// original one and returns the stored name and its path.
func (s *Store) Save(originalName string, r io.Reader) (name, path string, err error) {
	name = fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitize(originalName))
	path = filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("can't create file: %w", err)
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("can't write file: %w", err)
	}
	return name, path, nil
}

// Delete removes a stored attachment. Missing files are not an error.
func (s *Store) Delete(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		zap.L().Error("can't delete attachment", zap.String("path", path), zap.Error(err))
	}
}

func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
