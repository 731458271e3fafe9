package layout

import (
	"errors"
	"fmt"
)

// Theme holds the colours written into primitives.
type Theme struct {
	Background string `mapstructure:"background"`
	Primary    string `mapstructure:"primary"`
	Text       string `mapstructure:"text"`
	Muted      string `mapstructure:"muted"`
	Border     string `mapstructure:"border"`
	Divider    string `mapstructure:"divider"`
	Pass       string `mapstructure:"pass"`
	Fail       string `mapstructure:"fail"`
}

// Options are the measurable layout quantities. Lengths are in millimetres,
// font sizes in points.
type Options struct {
	PageWidth    float64 `mapstructure:"pageWidth"`
	PageHeight   float64 `mapstructure:"pageHeight"`
	MarginTop    float64 `mapstructure:"marginTop"`
	MarginRight  float64 `mapstructure:"marginRight"`
	MarginBottom float64 `mapstructure:"marginBottom"`
	MarginLeft   float64 `mapstructure:"marginLeft"`

	TitleSize     float64 `mapstructure:"titleSize"`
	TitleHeight   float64 `mapstructure:"titleHeight"`
	HeadingSize   float64 `mapstructure:"headingSize"`
	HeadingHeight float64 `mapstructure:"headingHeight"`
	BodySize      float64 `mapstructure:"bodySize"`
	LineHeight    float64 `mapstructure:"lineHeight"`
	FooterSize    float64 `mapstructure:"footerSize"`
	FooterOffset  float64 `mapstructure:"footerOffset"`

	ChipHeight  float64 `mapstructure:"chipHeight"`
	ChipPadX    float64 `mapstructure:"chipPadX"`
	ChipGap     float64 `mapstructure:"chipGap"`
	ChipLineGap float64 `mapstructure:"chipLineGap"`

	RowHeight float64 `mapstructure:"rowHeight"`
	RowGap    float64 `mapstructure:"rowGap"`
	RowInset  float64 `mapstructure:"rowInset"`
	DotRadius float64 `mapstructure:"dotRadius"`
	Radius    float64 `mapstructure:"radius"`

	DividerSpacing float64 `mapstructure:"dividerSpacing"`
	SectionGap     float64 `mapstructure:"sectionGap"`

	Theme Theme `mapstructure:"theme"`
}

// DefaultOptions returns an A4 portrait layout.
func DefaultOptions() Options {
	return Options{
		PageWidth:    210,
		PageHeight:   297,
		MarginTop:    16,
		MarginRight:  16,
		MarginBottom: 16,
		MarginLeft:   16,

		TitleSize:     20,
		TitleHeight:   10,
		HeadingSize:   11,
		HeadingHeight: 8,
		BodySize:      11,
		LineHeight:    6,
		FooterSize:    10,
		FooterOffset:  8,

		ChipHeight:  12,
		ChipPadX:    4,
		ChipGap:     6,
		ChipLineGap: 6,

		RowHeight: 12,
		RowGap:    2,
		RowInset:  5,
		DotRadius: 2.2,
		Radius:    2,

		DividerSpacing: 10,
		SectionGap:     4,

		Theme: Theme{
			Background: "#F5F9FF",
			Primary:    "#1D4ED8",
			Text:       "#111111",
			Muted:      "#6B7280",
			Border:     "#DCDCDC",
			Divider:    "#EBEBEB",
			Pass:       "#22C55E",
			Fail:       "#EF4444",
		},
	}
}

// ContentWidth is the horizontal space between the side margins.
func (o Options) ContentWidth() float64 {
	return o.PageWidth - o.MarginLeft - o.MarginRight
}

// Right is the x coordinate of the right margin.
func (o Options) Right() float64 {
	return o.PageWidth - o.MarginRight
}

// Bottom is the y coordinate of the bottom margin.
func (o Options) Bottom() float64 {
	return o.PageHeight - o.MarginBottom
}

// UsableHeight is the vertical space between the top and bottom margins.
func (o Options) UsableHeight() float64 {
	return o.Bottom() - o.MarginTop
}

// Validate rejects options that leave no room for content.
func (o Options) Validate() error {
	var errs []error
	if o.PageWidth <= 0 || o.PageHeight <= 0 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %gx%g", o.PageWidth, o.PageHeight))
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"marginTop", o.MarginTop}, {"marginRight", o.MarginRight},
		{"marginBottom", o.MarginBottom}, {"marginLeft", o.MarginLeft},
		{"rowGap", o.RowGap}, {"chipGap", o.ChipGap}, {"chipLineGap", o.ChipLineGap},
	} {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", f.name, f.value))
		}
	}
	if o.ContentWidth() <= 0 {
		errs = append(errs, errors.New("margins leave no horizontal content area"))
	}
	if o.UsableHeight() <= 0 {
		errs = append(errs, errors.New("margins leave no vertical content area"))
	}
	if o.RowHeight <= 0 || o.ChipHeight <= 0 || o.LineHeight <= 0 {
		errs = append(errs, errors.New("rowHeight, chipHeight and lineHeight must be positive"))
	}
	return errors.Join(errs...)
}
