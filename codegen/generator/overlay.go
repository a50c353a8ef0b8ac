package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Overlay writes every file of overlay below outputDir. Files whose content
// did not change are left untouched.
func Overlay(ctx context.Context, logger *slog.Logger, overlay fs.FS, outputDir string) error {
	return fs.WalkDir(overlay, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if _, err := os.Stat(filepath.Join(outputDir, path)); err == nil {
				return nil
			}
			logger.Debug("creating directory", "path", path)
			return os.MkdirAll(filepath.Join(outputDir, path), 0o755)
		}

		newContent, err := fs.ReadFile(overlay, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		outPath := filepath.Join(outputDir, path)
		if oldContent, err := os.ReadFile(outPath); err == nil && bytes.Equal(oldContent, newContent) {
			logger.Info("writing", "path", outPath, "skipped", true)
			return nil
		}

		logger.Info("writing", "path", outPath)
		return os.WriteFile(outPath, newContent, 0o600)
	})
}

// Print copies a single generated file of overlay to w.
func Print(overlay fs.FS, name string, w io.Writer) error {
	content, err := fs.ReadFile(overlay, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	_, err = w.Write(content)
	return err
}
