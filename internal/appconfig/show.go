package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	sources := make([]string, 0, len(cfg.SourceOrder))
	for _, m := range cfg.Sources() {
		sources = append(sources, string(m))
	}
	o := cfg.LayoutOptions()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:          %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:       %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Output Dir:     %s\n", cfg.OutputPath())
	fmt.Fprintf(out, "  Format:         %s\n", cfg.ExportFormat())
	fmt.Fprintf(out, "  Report Label:   %s\n", cfg.Label())
	fmt.Fprintf(out, "  Title:          %s\n", cfg.DocumentTitle())
	fmt.Fprintf(out, "  Footer:         %s\n", cfg.Footer())
	fmt.Fprintf(out, "  Date Layout:    %s\n", cfg.TimeLayout())
	fmt.Fprintf(out, "  Source Order:   %s\n", strings.Join(sources, ", "))
	fmt.Fprintf(out, "  Batch Workers:  %d\n", cfg.Workers())
	fmt.Fprintf(out, "  Glyph Advance:  %g\n", cfg.GlyphAdvance)
	fmt.Fprintf(out, "  Page:           %gx%g mm\n", o.PageWidth, o.PageHeight)
	fmt.Fprintf(out, "  Margins:        top %g, right %g, bottom %g, left %g\n", o.MarginTop, o.MarginRight, o.MarginBottom, o.MarginLeft)
	fmt.Fprintf(out, "  Rows:           height %g, gap %g\n", o.RowHeight, o.RowGap)
	fmt.Fprintf(out, "  Chips:          height %g, padding %g, gap %g\n", o.ChipHeight, o.ChipPadX, o.ChipGap)
}
