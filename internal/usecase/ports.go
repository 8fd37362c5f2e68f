package usecase

import (
	"io"

	"github.com/3-lines-studio/welcome/internal/adapters/fs"
)

type PageRenderer interface {
	Render(w io.Writer) error
}

type AssetSource interface {
	Files() ([]string, error)
	ReadFile(name string) ([]byte, error)
}

type FileSystem = fs.FileSystem
