package fs

import (
	iofs "io/fs"
	"path/filepath"
	"sync"
)

// MemoryFileSystem records writes in memory. Paths are stored slash-separated.
type MemoryFileSystem struct {
	mu    sync.Mutex
	Files map[string][]byte
	Dirs  map[string]bool
	// WriteErr, when set, is returned from every WriteFile call.
	WriteErr error
}

func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		Files: make(map[string][]byte),
		Dirs:  make(map[string]bool),
	}
}

func (fs *MemoryFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.WriteErr != nil {
		return fs.WriteErr
	}
	fs.Files[filepath.ToSlash(path)] = append([]byte(nil), data...)
	return nil
}

func (fs *MemoryFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.Dirs[filepath.ToSlash(path)] = true
	return nil
}
