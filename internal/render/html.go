// internal/render/html.go
package render

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"

	"github.com/mwiater/airo/internal/layout"
)

// HTML writes a standalone page with one SVG per document page. The SVG
// viewBox uses document units, so the layout is reproduced exactly.
type HTML struct{}

// Extension implements Renderer.
func (HTML) Extension() string { return "html" }

type htmlDocument struct {
	Title  string
	Unit   string
	Width  string
	Height string
	Pages  []htmlPage
}

type htmlPage struct {
	Number   int
	Elements []svgElement
}

type svgElement struct {
	Kind     string
	X, Y     string
	W, H     string
	X2, Y2   string
	R        string
	Text     string
	FontSize string
	Bold     bool
	Fill     string
	Stroke   string
}

// Render implements Renderer.
func (HTML) Render(w io.Writer, doc layout.Document) error {
	title := doc.Title
	if title == "" {
		title = "Report"
	}
	unit := doc.Unit
	if unit == "" {
		unit = "mm"
	}
	view := htmlDocument{
		Title:  title,
		Unit:   unit,
		Width:  num(doc.Width),
		Height: num(doc.Height),
		Pages:  make([]htmlPage, 0, len(doc.Pages)),
	}
	for _, page := range doc.Pages {
		hp := htmlPage{Number: page.Number, Elements: make([]svgElement, 0, len(page.Primitives))}
		for _, p := range page.Primitives {
			hp.Elements = append(hp.Elements, toSVG(p, unit))
		}
		view.Pages = append(view.Pages, hp)
	}
	if err := htmlReportTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func toSVG(p layout.Primitive, unit string) svgElement {
	fill := p.Fill
	if fill == "" && p.Kind != layout.KindText && p.Kind != layout.KindLine {
		fill = "none"
	}
	size := p.FontSize
	if unit == "mm" {
		size *= layout.PointToMM
	}
	return svgElement{
		Kind:     string(p.Kind),
		X:        num(p.X),
		Y:        num(p.Y),
		W:        num(p.W),
		H:        num(p.H),
		X2:       num(p.X2),
		Y2:       num(p.Y2),
		R:        num(p.R),
		Text:     p.Text,
		FontSize: num(size),
		Bold:     p.Bold,
		Fill:     fill,
		Stroke:   p.Stroke,
	}
}

// num formats a coordinate with at most three decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

var htmlReportTemplate = template.Must(template.New("airo-report").Parse(htmlReportTemplateHTML))

const htmlReportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 24px 0; background: #e5e7eb; font-family: Helvetica, Arial, sans-serif; }
    .page { display: block; margin: 0 auto 24px; background: #ffffff; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.15); }
    @media print {
      body { padding: 0; background: none; }
      .page { margin: 0; box-shadow: none; page-break-after: always; }
    }
  </style>
</head>
<body>
{{- range .Pages}}
<svg class="page" data-page="{{.Number}}" xmlns="http://www.w3.org/2000/svg" width="{{$.Width}}{{$.Unit}}" height="{{$.Height}}{{$.Unit}}" viewBox="0 0 {{$.Width}} {{$.Height}}">
{{- range .Elements}}
{{- if eq .Kind "text"}}
  <text x="{{.X}}" y="{{.Y}}" font-size="{{.FontSize}}"{{if .Bold}} font-weight="bold"{{end}} fill="{{.Fill}}">{{.Text}}</text>
{{- else if eq .Kind "rect"}}
  <rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="{{.Fill}}"{{if .Stroke}} stroke="{{.Stroke}}"{{end}}/>
{{- else if eq .Kind "roundedRect"}}
  <rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" rx="{{.R}}" ry="{{.R}}" fill="{{.Fill}}"{{if .Stroke}} stroke="{{.Stroke}}" stroke-width="0.3"{{end}}/>
{{- else if eq .Kind "circle"}}
  <circle cx="{{.X}}" cy="{{.Y}}" r="{{.R}}" fill="{{.Fill}}"/>
{{- else if eq .Kind "line"}}
  <line x1="{{.X}}" y1="{{.Y}}" x2="{{.X2}}" y2="{{.Y2}}" stroke="{{.Stroke}}" stroke-width="0.3"/>
{{- end}}
{{- end}}
</svg>
{{- end}}
</body>
</html>
`
