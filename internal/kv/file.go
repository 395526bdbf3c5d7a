package kv

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// File stores each key as a file under Dir.
type File struct {
	Dir string
}

func NewFile(dir string) *File { return &File{Dir: dir} }

func (f *File) path(key string) string {
	// keys are fixed identifiers; sanitize anyway so a weird key can't escape Dir
	key = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, key)
	return filepath.Join(f.Dir, key+".json")
}

func (f *File) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (f *File) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(key), value, 0o600)
}

func (f *File) Delete(key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
