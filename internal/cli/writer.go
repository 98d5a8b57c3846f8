package cli

import (
	"os"
	"path/filepath"

	"github.com/veltran/tsbridge/internal/errors"
	"github.com/veltran/tsbridge/internal/generator"
)

// Writer persists generated units under the output root
type Writer struct {
	root string
}

// NewWriter creates a writer rooted at the given output directory
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Write stores one generated unit, creating parent directories as needed,
// and returns the path written
func (w *Writer) Write(unit generator.GeneratedUnit) (string, error) {
	target := filepath.Join(w.root, filepath.FromSlash(unit.Path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", errors.WrapFileSystemError("create directory for", target, err)
	}
	if err := os.WriteFile(target, unit.Content, 0o644); err != nil {
		return "", errors.WrapFileSystemError("write", target, err)
	}
	return target, nil
}
