package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/todo/internal/codec"
	"github.com/nikbrunner/todo/internal/model"
)

// Storage defines the interface for persisting a todo list.
type Storage interface {
	Load() (*model.List, error)
	Save(list *model.List) error
}

// FileStorage implements Storage using a single .ftms file.
type FileStorage struct {
	path string
}

// NewFileStorage creates a new FileStorage with the given file path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the storage file path.
func (s *FileStorage) Path() string {
	return s.path
}

// Load reads and decodes the file.
// Decode failures wrap codec.ErrInvalid; read failures are returned as-is.
func (s *FileStorage) Load() (*model.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	list, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return list, nil
}

// Save encodes the list and writes it to the file.
// Creates the directory if it doesn't exist.
func (s *FileStorage) Save(list *model.List) error {
	data, err := codec.Encode(list)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Library resolves list names typed by the user to .ftms files in a directory.
type Library struct {
	dir string
}

// NewLibrary creates a Library rooted at dir. An empty dir means the
// working directory.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// Dir returns the library directory.
func (l *Library) Dir() string {
	return l.dir
}

// Path returns the file path for a list name: <dir>/<name>.ftms
func (l *Library) Path(name string) string {
	return filepath.Join(l.dir, strings.TrimSpace(name)+codec.Extension)
}

// Open returns the FileStorage for a list name.
func (l *Library) Open(name string) *FileStorage {
	return NewFileStorage(l.Path(name))
}

// Save writes the list under the given name.
func (l *Library) Save(name string, list *model.List) error {
	return l.Open(name).Save(list)
}

// Load reads the list stored under the given name.
func (l *Library) Load(name string) (*model.List, error) {
	return l.Open(name).Load()
}

// DefaultDir returns the default save directory: ~/.local/share/todo
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "todo"), nil
}
