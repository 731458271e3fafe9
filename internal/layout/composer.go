package layout

import (
	"github.com/mwiater/airo/internal/util"
)

// TextStyle describes one line of flowing text.
type TextStyle struct {
	Size   float64
	Height float64
	Bold   bool
	Color  string
}

// RowSpec is one full-width card row. A non-nil Status draws a pass/fail dot
// before the text.
type RowSpec struct {
	Text   string
	Status *bool
}

// Cursor is the composer position: the page being filled and the next free
// coordinates on it.
type Cursor struct {
	Page int
	X    float64
	Y    float64
}

// baselineRatio places a text baseline inside its line box.
const baselineRatio = 0.7

// Composer lays content out page by page. A Composer belongs to a single
// composition: create one, place elements in reading order, call Finish.
// It is not safe for concurrent use.
type Composer struct {
	opts    Options
	measure Measurer

	pages []Page
	prims []Primitive
	x, y  float64
	// inLine is true while chips have been placed on the current line.
	inLine bool
}

// NewComposer starts a composition on a fresh first page.
func NewComposer(opts Options, measure Measurer) *Composer {
	if measure == nil {
		measure = RuneMeasurer{}
	}
	c := &Composer{opts: opts, measure: measure}
	c.startPage()
	return c
}

// Options returns the layout options in use.
func (c *Composer) Options() Options { return c.opts }

// Cursor reports the current position.
func (c *Composer) Cursor() Cursor {
	return Cursor{Page: len(c.pages) + 1, X: c.x, Y: c.y}
}

func (c *Composer) startPage() {
	c.prims = nil
	c.x = c.opts.MarginLeft
	c.y = c.opts.MarginTop
	c.inLine = false
	if bg := c.opts.Theme.Background; bg != "" {
		c.prims = append(c.prims, Primitive{
			Kind: KindRect, X: 0, Y: 0,
			W: c.opts.PageWidth, H: c.opts.PageHeight,
			Fill: bg,
		})
	}
}

func (c *Composer) finalizePage() {
	c.pages = append(c.pages, Page{Number: len(c.pages) + 1, Primitives: c.prims})
}

// fits reports whether an element of height h can be placed at the cursor.
// An element taller than the whole usable area fits at the top of a page,
// which keeps the layout moving forward.
func (c *Composer) fits(h float64) bool {
	if c.y+h <= c.opts.Bottom() {
		return true
	}
	return c.y <= c.opts.MarginTop
}

// ensure breaks the page when an element of height h does not fit.
func (c *Composer) ensure(h float64) {
	if c.fits(h) {
		return
	}
	c.finalizePage()
	c.startPage()
}

// endLine closes an open chip line so the next element starts at the left margin.
func (c *Composer) endLine() {
	if !c.inLine {
		return
	}
	c.y += c.opts.ChipHeight + c.opts.SectionGap
	c.x = c.opts.MarginLeft
	c.inLine = false
}

func (c *Composer) advance(h float64) {
	if h > 0 {
		c.y += h
	}
}

func (c *Composer) fit(text string, size, maxWidth float64) string {
	return util.TruncateToFit(text, maxWidth, func(s string) float64 {
		return c.measure.TextWidth(s, size)
	})
}

// Text places one line of text at the left margin.
func (c *Composer) Text(text string, style TextStyle) {
	c.endLine()
	c.ensure(style.Height)
	c.prims = append(c.prims, Primitive{
		Kind:     KindText,
		X:        c.opts.MarginLeft,
		Y:        c.y + style.Height*baselineRatio,
		Text:     c.fit(text, style.Size, c.opts.ContentWidth()),
		FontSize: style.Size,
		Bold:     style.Bold,
		Fill:     style.Color,
	})
	c.advance(style.Height)
}

// Title places the document title.
func (c *Composer) Title(text string) {
	c.Text(text, TextStyle{Size: c.opts.TitleSize, Height: c.opts.TitleHeight, Bold: true, Color: c.opts.Theme.Primary})
}

// Heading places a section heading.
func (c *Composer) Heading(text string) {
	c.Text(text, TextStyle{Size: c.opts.HeadingSize, Height: c.opts.HeadingHeight, Bold: true, Color: c.opts.Theme.Primary})
}

// Subheading places a bold body-sized label, used for checklist categories.
func (c *Composer) Subheading(text string) {
	c.Text(text, TextStyle{Size: c.opts.BodySize, Height: c.opts.LineHeight, Bold: true, Color: c.opts.Theme.Muted})
}

// Body places a regular line of text.
func (c *Composer) Body(text string) {
	c.Text(text, TextStyle{Size: c.opts.BodySize, Height: c.opts.LineHeight, Color: c.opts.Theme.Text})
}

// Muted places a de-emphasised line of text.
func (c *Composer) Muted(text string) {
	c.Text(text, TextStyle{Size: c.opts.BodySize, Height: c.opts.LineHeight, Color: c.opts.Theme.Muted})
}

// Divider draws a horizontal rule across the content width.
func (c *Composer) Divider() {
	c.endLine()
	c.ensure(c.opts.DividerSpacing)
	mid := c.y + c.opts.DividerSpacing/2
	c.prims = append(c.prims, Primitive{
		Kind:   KindLine,
		X:      c.opts.MarginLeft,
		Y:      mid,
		X2:     c.opts.Right(),
		Y2:     mid,
		Stroke: c.opts.Theme.Divider,
	})
	c.advance(c.opts.DividerSpacing)
}

// Chip places a bordered label on the current chip line. A chip that would
// cross the right margin wraps to a new line first; the page break check
// runs after the wrap.
func (c *Composer) Chip(label string) {
	o := c.opts
	maxLabel := o.ContentWidth() - 2*o.ChipPadX
	label = c.fit(label, o.BodySize, maxLabel)
	w := c.measure.TextWidth(label, o.BodySize) + 2*o.ChipPadX
	if w > o.ContentWidth() {
		w = o.ContentWidth()
	}

	if c.inLine && c.x+w > o.Right() {
		c.x = o.MarginLeft
		c.y += o.ChipHeight + o.ChipLineGap
	}
	if !c.fits(o.ChipHeight) {
		c.finalizePage()
		c.startPage()
	}

	c.prims = append(c.prims,
		Primitive{
			Kind: KindRoundedRect, X: c.x, Y: c.y, W: w, H: o.ChipHeight,
			R: o.Radius, Stroke: o.Theme.Border,
		},
		Primitive{
			Kind: KindText, X: c.x + o.ChipPadX, Y: c.y + o.ChipHeight*baselineRatio,
			Text: label, FontSize: o.BodySize, Fill: o.Theme.Text,
		},
	)
	c.x += w + o.ChipGap
	c.inLine = true
}

// EndChips closes the current chip line.
func (c *Composer) EndChips() { c.endLine() }

// Row places a full-width card row at the left margin.
func (c *Composer) Row(row RowSpec) {
	o := c.opts
	c.endLine()
	c.ensure(o.RowHeight)

	c.prims = append(c.prims, Primitive{
		Kind: KindRoundedRect, X: o.MarginLeft, Y: c.y, W: o.ContentWidth(), H: o.RowHeight,
		R: o.Radius, Stroke: o.Theme.Border,
	})

	textX := o.MarginLeft + o.RowInset
	if row.Status != nil {
		fill := o.Theme.Fail
		if *row.Status {
			fill = o.Theme.Pass
		}
		c.prims = append(c.prims, Primitive{
			Kind: KindCircle, X: textX, Y: c.y + o.RowHeight/2, R: o.DotRadius, Fill: fill,
		})
		textX += 2*o.DotRadius + o.RowInset/2
	}

	maxText := o.Right() - o.RowInset - textX
	c.prims = append(c.prims, Primitive{
		Kind: KindText, X: textX, Y: c.y + o.RowHeight*baselineRatio,
		Text: c.fit(row.Text, o.BodySize, maxText), FontSize: o.BodySize, Fill: o.Theme.Text,
	})
	c.advance(o.RowHeight + o.RowGap)
}

// Space advances the cursor by h without drawing, breaking the page if the
// gap does not fit.
func (c *Composer) Space(h float64) {
	c.endLine()
	if h <= 0 {
		return
	}
	if !c.fits(h) {
		c.finalizePage()
		c.startPage()
		return
	}
	c.advance(h)
}

// Footer draws text at a fixed offset from the bottom of the current page.
// It never moves the cursor or breaks the page.
func (c *Composer) Footer(text string) {
	o := c.opts
	c.prims = append(c.prims, Primitive{
		Kind: KindText, X: o.MarginLeft, Y: o.PageHeight - o.FooterOffset,
		Text: c.fit(text, o.FooterSize, o.ContentWidth()), FontSize: o.FooterSize, Fill: o.Theme.Primary,
	})
}

// Finish closes the last page and returns the document. The composer must
// not be used afterwards.
func (c *Composer) Finish() Document {
	c.finalizePage()
	doc := Document{
		Unit:   "mm",
		Width:  c.opts.PageWidth,
		Height: c.opts.PageHeight,
		Pages:  c.pages,
	}
	c.pages = nil
	c.prims = nil
	return doc
}
