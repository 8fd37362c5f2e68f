package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
)

const (
	IndexFile = "index.html"
	AssetDir  = "static"
)

type ExportInput struct {
	OutDir string
}

type ExportOutput struct {
	Files []string
	Error error
}

type ExportService struct {
	fs       FileSystem
	renderer PageRenderer
	assets   AssetSource
}

func NewExportService(fs FileSystem, renderer PageRenderer, assets AssetSource) *ExportService {
	return &ExportService{
		fs:       fs,
		renderer: renderer,
		assets:   assets,
	}
}

func (s *ExportService) ExportStatic(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("missing output directory")}
	}

	var files []string

	if err := s.fs.MkdirAll(input.OutDir, 0o755); err != nil {
		return ExportOutput{Error: fmt.Errorf("create %s: %w", input.OutDir, err)}
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf); err != nil {
		return ExportOutput{Error: fmt.Errorf("render page: %w", err)}
	}

	indexPath := filepath.Join(input.OutDir, IndexFile)
	if err := s.fs.WriteFile(indexPath, buf.Bytes(), 0o644); err != nil {
		return ExportOutput{Error: fmt.Errorf("write %s: %w", indexPath, err)}
	}
	files = append(files, indexPath)

	if s.assets == nil {
		return ExportOutput{Files: files}
	}

	names, err := s.assets.Files()
	if err != nil {
		return ExportOutput{Files: files, Error: fmt.Errorf("list assets: %w", err)}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return ExportOutput{Files: files, Error: err}
		}

		data, err := s.assets.ReadFile(name)
		if err != nil {
			return ExportOutput{Files: files, Error: fmt.Errorf("read asset %s: %w", name, err)}
		}

		dst := filepath.Join(input.OutDir, AssetDir, filepath.FromSlash(name))
		if err := s.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return ExportOutput{Files: files, Error: fmt.Errorf("create %s: %w", filepath.Dir(dst), err)}
		}
		if err := s.fs.WriteFile(dst, data, 0o644); err != nil {
			return ExportOutput{Files: files, Error: fmt.Errorf("write %s: %w", dst, err)}
		}
		files = append(files, dst)
	}

	return ExportOutput{Files: files}
}
