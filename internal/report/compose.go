package report

import (
	"github.com/mwiater/airo/internal/analysis"
	"github.com/mwiater/airo/internal/layout"
)

const (
	scoresHeading      = "AI Visibility Scores"
	competitorsHeading = "Competitors (Mentions)"
	checklistHeading   = "Optimization Checklist"
	noCompetitors      = "No competitor data available."
)

// compose emits the document sections in their fixed order. The generated-at
// line comes from meta so composing the same input twice is byte-identical.
func (a *Assembler) compose(rec analysis.Record, d Derived, meta Meta) layout.Document {
	vm := newViewModel(rec, d)
	c := layout.NewComposer(a.Layout, a.Measurer)

	c.Title(a.Title)
	c.Body(subjectName(rec, meta))
	if domain := subjectDomain(rec, meta); domain != "" {
		c.Muted(domain)
	}
	if !meta.GeneratedAt.IsZero() {
		c.Body(meta.GeneratedAt.Format(a.dateLayout()))
	}
	c.Divider()

	c.Heading(scoresHeading)
	for _, chip := range vm.ScoreChips() {
		c.Chip(chip)
	}
	c.EndChips()
	c.Divider()

	c.Heading(competitorsHeading)
	if len(vm.Competitors) == 0 {
		c.Row(layout.RowSpec{Text: noCompetitors})
	}
	for _, comp := range vm.Competitors {
		c.Row(layout.RowSpec{Text: comp.Line()})
	}
	c.Divider()

	if len(vm.ChecklistByCategory) > 0 {
		c.Heading(checklistHeading)
		for _, group := range vm.ChecklistByCategory {
			c.Subheading(group.Label)
			for _, item := range group.Items {
				passed := item.Passed
				c.Row(layout.RowSpec{Text: item.Line(), Status: &passed})
			}
		}
	}

	if a.FooterText != "" {
		c.Footer(a.FooterText)
	}
	doc := c.Finish()
	doc.Title = Filename(subjectName(rec, meta), a.Label)
	return doc
}

func (a *Assembler) dateLayout() string {
	if a.DateLayout == "" {
		return "2006-01-02 15:04"
	}
	return a.DateLayout
}
