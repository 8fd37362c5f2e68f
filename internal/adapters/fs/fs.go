package fs

import (
	iofs "io/fs"
)

// FileSystem is the write side used by the static exporter.
type FileSystem interface {
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
}
