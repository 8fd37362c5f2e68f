package welcome

import (
	"context"

	"github.com/3-lines-studio/welcome/internal/adapters/fs"
	"github.com/3-lines-studio/welcome/internal/assets"
	"github.com/3-lines-studio/welcome/internal/usecase"
)

type assetSource struct{}

func (assetSource) Files() ([]string, error) {
	return assets.Files()
}

func (assetSource) ReadFile(name string) ([]byte, error) {
	return assets.ReadFile(name)
}

// ExportStatic renders the page once into dir/index.html and copies the
// stylesheet under dir/static. The label is resolved at export time.
func (a *App) ExportStatic(ctx context.Context, dir string) ([]string, error) {
	svc := usecase.NewExportService(fs.NewOSFileSystem(), a, assetSource{})
	out := svc.ExportStatic(ctx, usecase.ExportInput{OutDir: dir})
	return out.Files, out.Error
}
