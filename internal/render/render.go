// internal/render/render.go
// Package render turns a composed layout.Document into export bytes and
// writes them to disk.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mwiater/airo/internal/layout"
)

// ErrUnsupportedFormat is returned for an unknown export format name.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Renderer encodes a document in one file format.
type Renderer interface {
	// Extension is the file extension without the leading dot.
	Extension() string
	Render(w io.Writer, doc layout.Document) error
}

var renderers = map[string]func() Renderer{
	"html":    func() Renderer { return HTML{} },
	"json":    func() Renderer { return JSON{Indent: true} },
	"json.gz": func() Renderer { return GzipJSON{} },
}

// ForFormat returns the renderer registered under name.
func ForFormat(name string) (Renderer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	newRenderer, ok := renderers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, name, strings.Join(Formats(), ", "))
	}
	return newRenderer(), nil
}

// Formats lists the supported format names.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
