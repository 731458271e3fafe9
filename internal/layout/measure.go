package layout

import "github.com/mattn/go-runewidth"

// PointToMM converts a font size in points to millimetres.
const PointToMM = 25.4 / 72

// Measurer reports the rendered width of a text run at a font size.
type Measurer interface {
	TextWidth(text string, fontSize float64) float64
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func(text string, fontSize float64) float64

// TextWidth calls f.
func (f MeasureFunc) TextWidth(text string, fontSize float64) float64 {
	return f(text, fontSize)
}

// RuneMeasurer approximates proportional fonts with terminal cell widths:
// every cell advances Advance em. East Asian wide runes count as two cells.
type RuneMeasurer struct {
	Advance float64
}

// DefaultAdvance is close to the mean glyph advance of Helvetica.
const DefaultAdvance = 0.5

// TextWidth returns the approximate width of text in millimetres.
func (m RuneMeasurer) TextWidth(text string, fontSize float64) float64 {
	advance := m.Advance
	if advance <= 0 {
		advance = DefaultAdvance
	}
	return float64(runewidth.StringWidth(text)) * fontSize * PointToMM * advance
}
