package airo

import (
	"context"

	"github.com/mwiater/airo/internal/report"
	"github.com/mwiater/airo/internal/tui"
	"github.com/spf13/cobra"
)

func runView(cmd *cobra.Command, opts reportOptions) error {
	cfg := activeConfig()
	rec, err := loadRecord(opts.inputPath)
	if err != nil {
		return err
	}
	exp, err := newExporter(cfg, opts.outputDir)
	if err != nil {
		return err
	}

	asm := report.NewAssembler(cfg)
	rep := asm.Build(rec, report.Meta{
		SubjectName:   opts.name,
		SubjectDomain: opts.domain,
		GeneratedAt:   now(),
	})

	return tui.Run(commandContext(cmd), rep, func(ctx context.Context) (string, error) {
		return asm.Export(ctx, rep, exp)
	})
}
