package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("asset path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset path %q is not a directory", base)
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) Open(key string) (io.ReadCloser, error) {
	clean := filepath.Clean("/" + key) // forces the path under base
	if strings.Contains(clean, "..") {
		return nil, fmt.Errorf("invalid asset key %q", key)
	}
	path := filepath.Join(s.base, clean)
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("asset %q is not a regular file", key)
	}
	return os.Open(path)
}

func (s *FSStore) ReadText(name string) (string, error) {
	rc, err := s.Open(name)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
