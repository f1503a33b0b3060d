package saved

import (
	"os"
	"path/filepath"
)

// StorageFile is the well-known name the collection is persisted under,
// inside the application data directory.
const StorageFile = "saved_projects.json"

// Adapter is the durable key-value boundary the store sits on: one string
// value under one fixed key. Read reports absence as ok=false, never as an
// error; errors are reserved for a medium that exists but cannot be used.
type Adapter interface {
	Read() (value string, ok bool, err error)
	Write(value string) error
}

// FileAdapter keeps the value in a single file, the filesystem analog of an
// origin-scoped localStorage key.
type FileAdapter struct {
	path string
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

func (a *FileAdapter) Read() (string, bool, error) {
	data, err := os.ReadFile(a.path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (a *FileAdapter) Write(value string) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(a.path, []byte(value), 0644)
}
