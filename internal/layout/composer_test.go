package layout

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// twoPerRune measures every rune as 2mm regardless of font size.
var twoPerRune = MeasureFunc(func(text string, _ float64) float64 {
	return 2 * float64(utf8.RuneCountInString(text))
})

func testOptions() Options {
	opts := DefaultOptions()
	opts.Theme.Background = ""
	return opts
}

func countKind(p Page, kind Kind) int {
	n := 0
	for _, prim := range p.Primitives {
		if prim.Kind == kind {
			n++
		}
	}
	return n
}

func TestRowsPaginateTwentyPerPage(t *testing.T) {
	opts := testOptions()
	// top 16, rows every 14mm: the 20th row ends at 294, the 21st would end at 308.
	opts.PageHeight = 310
	opts.MarginBottom = 16

	c := NewComposer(opts, twoPerRune)
	for i := 1; i <= 30; i++ {
		c.Row(RowSpec{Text: fmt.Sprintf("row %d", i)})
	}
	doc := c.Finish()

	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	if n := countKind(doc.Pages[0], KindRoundedRect); n != 20 {
		t.Fatalf("expected 20 rows on page 1, got %d", n)
	}
	if n := countKind(doc.Pages[1], KindRoundedRect); n != 10 {
		t.Fatalf("expected 10 rows on page 2, got %d", n)
	}

	texts := doc.Pages[0].Texts()
	if texts[0] != "row 1" || texts[19] != "row 20" {
		t.Fatalf("unexpected page 1 rows: %v", texts)
	}
	texts = doc.Pages[1].Texts()
	if texts[0] != "row 21" || texts[9] != "row 30" {
		t.Fatalf("unexpected page 2 rows: %v", texts)
	}
	if first := doc.Pages[1].Primitives[0]; first.Y != opts.MarginTop {
		t.Fatalf("page 2 must start at the top margin, got y=%v", first.Y)
	}
	if doc.Pages[0].Number != 1 || doc.Pages[1].Number != 2 {
		t.Fatalf("unexpected page numbers: %d, %d", doc.Pages[0].Number, doc.Pages[1].Number)
	}
}

func TestRowsNeverCrossBottomMargin(t *testing.T) {
	opts := testOptions()
	c := NewComposer(opts, twoPerRune)
	for i := 0; i < 100; i++ {
		c.Row(RowSpec{Text: "r"})
	}
	doc := c.Finish()
	for _, page := range doc.Pages {
		for _, prim := range page.Primitives {
			if prim.Bottom() > opts.Bottom() {
				t.Fatalf("page %d: %s reaches %v past bottom %v", page.Number, prim.Kind, prim.Bottom(), opts.Bottom())
			}
		}
	}
}

func chipRects(p Page) []Primitive {
	var out []Primitive
	for _, prim := range p.Primitives {
		if prim.Kind == KindRoundedRect {
			out = append(out, prim)
		}
	}
	return out
}

func TestChipsWrapBeforeRightMargin(t *testing.T) {
	opts := testOptions()
	opts.PageWidth = 100
	opts.MarginLeft, opts.MarginRight = 10, 10

	c := NewComposer(opts, twoPerRune)
	label := strings.Repeat("a", 16) // 32mm text + 8mm padding
	c.Chip(label)
	c.Chip(label)
	c.Chip("b")
	doc := c.Finish()

	rects := chipRects(doc.Pages[0])
	if len(rects) != 3 {
		t.Fatalf("expected 3 chips, got %d", len(rects))
	}
	if rects[0].X != 10 || rects[0].Y != opts.MarginTop || rects[0].W != 40 {
		t.Fatalf("unexpected first chip: %+v", rects[0])
	}
	wantY := opts.MarginTop + opts.ChipHeight + opts.ChipLineGap
	if rects[1].X != 10 || rects[1].Y != wantY {
		t.Fatalf("second chip must wrap to (10,%v), got (%v,%v)", wantY, rects[1].X, rects[1].Y)
	}
	if rects[2].Y != wantY || rects[2].X != 10+40+opts.ChipGap {
		t.Fatalf("third chip must follow on the same line, got (%v,%v)", rects[2].X, rects[2].Y)
	}
}

func TestChipWrapThenPageBreak(t *testing.T) {
	opts := testOptions()
	opts.PageWidth = 100
	opts.MarginLeft, opts.MarginRight = 10, 10
	opts.MarginTop, opts.MarginBottom = 10, 10
	opts.PageHeight = 45 // second chip line would end at 40 > 35

	c := NewComposer(opts, twoPerRune)
	label := strings.Repeat("a", 16)
	c.Chip(label)
	c.Chip(label)
	doc := c.Finish()

	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	second := chipRects(doc.Pages[1])
	if len(second) != 1 || second[0].X != 10 || second[0].Y != 10 {
		t.Fatalf("wrapped chip must open page 2 at the margins, got %+v", second)
	}
}

func TestOversizedChipIsClipped(t *testing.T) {
	opts := testOptions()
	opts.PageWidth = 60
	opts.MarginLeft, opts.MarginRight = 10, 10

	c := NewComposer(opts, twoPerRune)
	c.Chip(strings.Repeat("x", 100))
	doc := c.Finish()

	rects := chipRects(doc.Pages[0])
	if len(rects) != 1 || rects[0].W > opts.ContentWidth() {
		t.Fatalf("chip must be clipped to the content width, got %+v", rects)
	}
	texts := doc.Pages[0].Texts()
	if len(texts) != 1 || !strings.HasSuffix(texts[0], "…") {
		t.Fatalf("expected truncated chip label, got %v", texts)
	}
}

func TestLongRowTextIsTruncated(t *testing.T) {
	opts := testOptions()
	c := NewComposer(opts, twoPerRune)
	c.Row(RowSpec{Text: strings.Repeat("long name ", 50)})
	pass := true
	c.Row(RowSpec{Text: strings.Repeat("z", 200), Status: &pass})
	doc := c.Finish()

	for _, prim := range doc.Pages[0].Primitives {
		if prim.Kind != KindText {
			continue
		}
		if !strings.HasSuffix(prim.Text, "…") {
			t.Fatalf("expected ellipsis, got %q", prim.Text)
		}
		if end := prim.X + twoPerRune.TextWidth(prim.Text, prim.FontSize); end > opts.Right() {
			t.Fatalf("text ends at %v past right margin %v", end, opts.Right())
		}
	}
}

func TestOversizedRowsStillProgress(t *testing.T) {
	opts := testOptions()
	opts.RowHeight = opts.UsableHeight() + 50

	c := NewComposer(opts, twoPerRune)
	for i := 0; i < 3; i++ {
		c.Row(RowSpec{Text: "huge"})
	}
	doc := c.Finish()
	if len(doc.Pages) != 3 {
		t.Fatalf("expected one oversized row per page, got %d pages", len(doc.Pages))
	}
}

func TestStatusDotColours(t *testing.T) {
	opts := testOptions()
	c := NewComposer(opts, twoPerRune)
	pass, fail := true, false
	c.Row(RowSpec{Text: "ok", Status: &pass})
	c.Row(RowSpec{Text: "missing", Status: &fail})
	c.Row(RowSpec{Text: "plain"})
	doc := c.Finish()

	var fills []string
	for _, prim := range doc.Pages[0].Primitives {
		if prim.Kind == KindCircle {
			fills = append(fills, prim.Fill)
		}
	}
	if diff := cmp.Diff([]string{opts.Theme.Pass, opts.Theme.Fail}, fills); diff != "" {
		t.Fatalf("dot colours (-want +got):\n%s", diff)
	}
}

func TestCursorMonotonicWithinPage(t *testing.T) {
	opts := testOptions()
	opts.PageHeight = 120

	c := NewComposer(opts, twoPerRune)
	prev := c.Cursor()
	steps := []func(){
		func() { c.Title("Report") },
		func() { c.Body("Acme") },
		func() { c.Muted("acme.com") },
		func() { c.Divider() },
		func() { c.Heading("Scores") },
		func() { c.Chip("AIRO: 7.50") },
		func() { c.Chip("ChatGPT: 7.00") },
		func() { c.Chip("Gemini: 8.25") },
		func() { c.Chip("DeepSeek: 6.00") },
		func() { c.EndChips() },
		func() { c.Divider() },
	}
	for i := 0; i < 12; i++ {
		steps = append(steps, func() { c.Row(RowSpec{Text: "competitor"}) })
	}
	steps = append(steps, func() { c.Space(opts.SectionGap) })

	pagesSeen := 1
	for i, step := range steps {
		step()
		cur := c.Cursor()
		if cur.X < 0 || cur.Y < 0 {
			t.Fatalf("step %d: negative cursor %+v", i, cur)
		}
		if cur.Page == prev.Page && cur.Y < prev.Y {
			t.Fatalf("step %d: cursor moved up from %v to %v", i, prev.Y, cur.Y)
		}
		if cur.Page != prev.Page {
			pagesSeen++
		}
		prev = cur
	}
	doc := c.Finish()
	if pagesSeen < 2 || len(doc.Pages) != pagesSeen {
		t.Fatalf("expected the content to span several pages, saw %d, document has %d", pagesSeen, len(doc.Pages))
	}
}

func TestFooterOnLastPageOnly(t *testing.T) {
	opts := testOptions()
	c := NewComposer(opts, twoPerRune)
	for i := 0; i < 25; i++ {
		c.Row(RowSpec{Text: "row"})
	}
	before := c.Cursor()
	c.Footer("Generated via AIRO")
	if after := c.Cursor(); after != before {
		t.Fatalf("footer must not move the cursor: %+v -> %+v", before, after)
	}
	doc := c.Finish()

	found := 0
	for _, page := range doc.Pages {
		for _, prim := range page.Primitives {
			if prim.Kind == KindText && prim.Text == "Generated via AIRO" {
				found++
				if page.Number != len(doc.Pages) {
					t.Fatalf("footer drawn on page %d of %d", page.Number, len(doc.Pages))
				}
				if prim.Y != opts.PageHeight-opts.FooterOffset {
					t.Fatalf("footer baseline %v, want %v", prim.Y, opts.PageHeight-opts.FooterOffset)
				}
			}
		}
	}
	if found != 1 {
		t.Fatalf("expected exactly one footer, got %d", found)
	}
}

func TestBackgroundOnEveryPage(t *testing.T) {
	opts := DefaultOptions()
	c := NewComposer(opts, nil)
	for i := 0; i < 40; i++ {
		c.Row(RowSpec{Text: "row"})
	}
	doc := c.Finish()
	for _, page := range doc.Pages {
		bg := page.Primitives[0]
		if bg.Kind != KindRect || bg.Fill != opts.Theme.Background || bg.W != opts.PageWidth {
			t.Fatalf("page %d: expected background first, got %+v", page.Number, bg)
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	build := func() Document {
		c := NewComposer(DefaultOptions(), RuneMeasurer{})
		c.Title("AIRO Report")
		c.Chip("AIRO: 1.00")
		c.EndChips()
		for i := 0; i < 30; i++ {
			c.Row(RowSpec{Text: fmt.Sprintf("item %d", i)})
		}
		c.Footer("footer")
		return c.Finish()
	}
	if diff := cmp.Diff(build(), build()); diff != "" {
		t.Fatalf("layouts differ (-first +second):\n%s", diff)
	}
}

func TestRuneMeasurer(t *testing.T) {
	m := RuneMeasurer{}
	narrow := m.TextWidth("ab", 10)
	wide := m.TextWidth("世界", 10)
	if narrow <= 0 || wide != 2*narrow {
		t.Fatalf("expected wide runes to count double: narrow=%v wide=%v", narrow, wide)
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("default options must validate: %v", err)
	}
	bad := DefaultOptions()
	bad.MarginLeft = 200
	bad.RowHeight = 0
	err := bad.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "horizontal") || !strings.Contains(err.Error(), "rowHeight") {
		t.Fatalf("unexpected error: %v", err)
	}
}
