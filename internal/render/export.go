package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mwiater/airo/internal/layout"
	"github.com/mwiater/airo/internal/logging"
	"github.com/mwiater/airo/internal/util"
)

// Exporter delivers a finished document under a base file name and returns
// where it went.
type Exporter interface {
	Export(ctx context.Context, doc layout.Document, name string) (string, error)
}

// FileExporter renders documents into a directory.
type FileExporter struct {
	Dir      string
	Renderer Renderer
}

// NewFileExporter returns an exporter for the named format writing into dir.
func NewFileExporter(dir, format string) (*FileExporter, error) {
	r, err := ForFormat(format)
	if err != nil {
		return nil, err
	}
	return &FileExporter{Dir: dir, Renderer: r}, nil
}

// Export renders doc and writes it to <Dir>/<name>.<ext>. The context is only
// consulted before any work starts; a started export runs to completion. The
// file is replaced atomically, so a failed export leaves nothing behind.
func (e *FileExporter) Export(ctx context.Context, doc layout.Document, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if e.Renderer == nil {
		return "", errors.New("file exporter has no renderer")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("export name is empty")
	}

	id := uuid.NewString()
	path := filepath.Join(e.Dir, name+"."+e.Renderer.Extension())
	logging.LogExport("start", name, path, map[string]any{"id": id, "pages": len(doc.Pages)})

	var buf bytes.Buffer
	if err := e.Renderer.Render(&buf, doc); err != nil {
		logging.LogExport("failed", name, path, map[string]any{"id": id, "error": err.Error()})
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	if err := util.WriteFile(path, buf.Bytes()); err != nil {
		logging.LogExport("failed", name, path, map[string]any{"id": id, "error": err.Error()})
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	logging.LogExport("done", name, path, map[string]any{"id": id, "bytes": buf.Len()})
	return path, nil
}
