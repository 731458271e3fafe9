// internal/report/assembler.go
// Package report turns one analysis record into everything a caller shows or
// ships: the view model, the paginated document and its export file name.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mwiater/airo/internal/analysis"
	"github.com/mwiater/airo/internal/appconfig"
	"github.com/mwiater/airo/internal/layout"
	"github.com/mwiater/airo/internal/render"
)

// DefaultSubject names reports whose subject is unknown.
const DefaultSubject = "Brand"

// Meta is presentation metadata supplied by the caller.
type Meta struct {
	SubjectName   string
	SubjectDomain string
	GeneratedAt   time.Time
}

// Derived holds the data computed once per record and shared by the view
// model and the document.
type Derived struct {
	Competitors []analysis.CompetitorRecord
	Groups      []analysis.CategoryGroup
}

// Report is the result of Build. Meta carries the resolved subject name and
// domain after the record fallbacks were applied.
type Report struct {
	Meta     Meta
	View     ViewModel
	Document layout.Document
	Filename string
}

// Assembler composes reports. Its fields are read-only after construction,
// so one Assembler can serve concurrent Build calls.
type Assembler struct {
	Layout     layout.Options
	Measurer   layout.Measurer
	Sources    []analysis.Model
	Title      string
	FooterText string
	Label      string
	DateLayout string
}

// NewAssembler returns an Assembler configured from cfg.
func NewAssembler(cfg appconfig.Config) *Assembler {
	return &Assembler{
		Layout:     cfg.LayoutOptions(),
		Measurer:   cfg.Measurer(),
		Sources:    cfg.Sources(),
		Title:      cfg.DocumentTitle(),
		FooterText: cfg.Footer(),
		Label:      cfg.Label(),
		DateLayout: cfg.TimeLayout(),
	}
}

// Derive computes the competitor ranking and checklist groups of rec.
func (a *Assembler) Derive(rec analysis.Record) Derived {
	return Derived{
		Competitors: analysis.AggregateCompetitors(rec.Competitors, a.Sources),
		Groups:      analysis.GroupChecklist(rec.Checklist),
	}
}

// ViewModel returns the display data for rec.
func (a *Assembler) ViewModel(rec analysis.Record) ViewModel {
	return newViewModel(rec, a.Derive(rec))
}

// Compose lays rec out as a paginated document.
func (a *Assembler) Compose(rec analysis.Record, meta Meta) layout.Document {
	return a.compose(rec, a.Derive(rec), meta)
}

// Build derives rec once and produces the view model, the document and the
// export file name from the same data.
func (a *Assembler) Build(rec analysis.Record, meta Meta) Report {
	d := a.Derive(rec)
	resolved := Meta{
		SubjectName:   subjectName(rec, meta),
		SubjectDomain: subjectDomain(rec, meta),
		GeneratedAt:   meta.GeneratedAt,
	}
	return Report{
		Meta:     resolved,
		View:     newViewModel(rec, d),
		Document: a.compose(rec, d, meta),
		Filename: Filename(resolved.SubjectName, a.Label),
	}
}

// Export hands the report's document to exp. The report is not modified, so a
// failed export can be retried with the same value.
func (a *Assembler) Export(ctx context.Context, rep Report, exp render.Exporter) (string, error) {
	path, err := exp.Export(ctx, rep.Document, rep.Filename)
	if err != nil {
		return "", fmt.Errorf("export %q: %w", rep.Filename, err)
	}
	return path, nil
}

// WithFilename returns a copy of r exported under name. The document title
// follows the file name.
func (r Report) WithFilename(name string) Report {
	r.Filename = name
	r.Document.Title = name
	return r
}

// Filename returns the export base name for subject: every rune outside
// [A-Za-z0-9 _-] becomes an underscore, followed by a space and label.
func Filename(subject, label string) string {
	if strings.TrimSpace(subject) == "" {
		subject = DefaultSubject
	}
	var b strings.Builder
	for _, r := range subject {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if label = strings.TrimSpace(label); label == "" {
		return b.String()
	}
	return b.String() + " " + label
}

func subjectName(rec analysis.Record, meta Meta) string {
	if name := strings.TrimSpace(meta.SubjectName); name != "" {
		return name
	}
	if name := strings.TrimSpace(rec.CompanyName); name != "" {
		return name
	}
	return DefaultSubject
}

func subjectDomain(rec analysis.Record, meta Meta) string {
	if domain := strings.TrimSpace(meta.SubjectDomain); domain != "" {
		return domain
	}
	return strings.TrimSpace(rec.CompanyDomain)
}
