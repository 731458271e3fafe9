// internal/layout/primitives.go
// Package layout places report content onto fixed-size pages. It only does
// arithmetic: the output is a list of positioned drawing primitives that any
// page renderer can consume.
package layout

// Kind names a drawing primitive.
type Kind string

const (
	KindText        Kind = "text"
	KindRect        Kind = "rect"
	KindRoundedRect Kind = "roundedRect"
	KindCircle      Kind = "circle"
	KindLine        Kind = "line"
)

// Primitive is one positioned drawing instruction. Coordinates are in page
// units with the origin at the top-left corner.
//
//   - text: X,Y is the baseline start.
//   - rect, roundedRect: X,Y is the top-left corner, W,H the size, R the corner radius.
//   - circle: X,Y is the centre, R the radius.
//   - line: from X,Y to X2,Y2.
type Primitive struct {
	Kind     Kind    `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w,omitempty"`
	H        float64 `json:"h,omitempty"`
	X2       float64 `json:"x2,omitempty"`
	Y2       float64 `json:"y2,omitempty"`
	R        float64 `json:"r,omitempty"`
	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
	Bold     bool    `json:"bold,omitempty"`
	Fill     string  `json:"fill,omitempty"`
	Stroke   string  `json:"stroke,omitempty"`
}

// Bottom returns the lowest page coordinate the primitive touches.
func (p Primitive) Bottom() float64 {
	switch p.Kind {
	case KindCircle:
		return p.Y + p.R
	case KindLine:
		if p.Y2 > p.Y {
			return p.Y2
		}
		return p.Y
	case KindText:
		return p.Y
	default:
		return p.Y + p.H
	}
}

// Page is one finished page of a document.
type Page struct {
	Number     int         `json:"number"`
	Primitives []Primitive `json:"primitives"`
}

// Document is a finished, paginated layout.
type Document struct {
	Title  string  `json:"title,omitempty"`
	Unit   string  `json:"unit"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Pages  []Page  `json:"pages"`
}

// Texts returns the text runs of the page in drawing order.
func (p Page) Texts() []string {
	var out []string
	for _, prim := range p.Primitives {
		if prim.Kind == KindText {
			out = append(out, prim.Text)
		}
	}
	return out
}
