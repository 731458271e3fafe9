package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/mwiater/airo/internal/layout"
)

// JSON writes the document as its primitive list.
type JSON struct {
	Indent bool
}

// Extension implements Renderer.
func (JSON) Extension() string { return "json" }

// Render implements Renderer.
func (r JSON) Render(w io.Writer, doc layout.Document) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// GzipJSON writes compact JSON through a gzip stream.
type GzipJSON struct {
	// Level is a gzip compression level; zero means gzip.DefaultCompression.
	Level int
}

// Extension implements Renderer.
func (GzipJSON) Extension() string { return "json.gz" }

// Render implements Renderer.
func (r GzipJSON) Render(w io.Writer, doc layout.Document) error {
	level := r.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	zw, err := gzip.NewWriterLevel(w, level)
	if err != nil {
		return fmt.Errorf("gzip writer: %w", err)
	}
	if err := (JSON{}).Render(zw, doc); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close gzip stream: %w", err)
	}
	return nil
}
