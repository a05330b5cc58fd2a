package gatewayconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/logger"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// AtomicWriter replaces files by writing a temp file in the same directory and renaming it over the target
type AtomicWriter struct {
	fs adapter.FileSystem
}

// NewAtomicWriter creates a new atomic writer
func NewAtomicWriter(fs adapter.FileSystem) *AtomicWriter {
	return &AtomicWriter{fs: fs}
}

// WriteFile writes data to path. Readers see either the old or the new content, never a partial write.
func (w *AtomicWriter) WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := w.fs.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = tmp.Close()
		}
		if rmErr := w.fs.Remove(tmpName); rmErr != nil {
			logger.Warn("Failed to remove temp file", zap.String("path", tmpName), zap.Error(rmErr))
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = w.fs.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err = w.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	return nil
}
