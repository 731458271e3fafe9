package airo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mwiater/airo/internal/analysis"
	"github.com/mwiater/airo/internal/appconfig"
	"github.com/mwiater/airo/internal/logging"
	"github.com/mwiater/airo/internal/render"
	"github.com/mwiater/airo/internal/report"
	"github.com/mwiater/airo/internal/util"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	inputPath    string
	name         string
	domain       string
	outputDir    string
	noExport     bool
	viewJSONPath string
}

// now is replaced in tests.
var now = time.Now

func runReport(cmd *cobra.Command, opts reportOptions) error {
	cfg := activeConfig()
	rec, err := loadRecord(opts.inputPath)
	if err != nil {
		return err
	}

	asm := report.NewAssembler(cfg)
	rep := asm.Build(rec, report.Meta{
		SubjectName:   opts.name,
		SubjectDomain: opts.domain,
		GeneratedAt:   now(),
	})

	report.PrintSummary(cmd.OutOrStdout(), rep)
	if cfg.Debug {
		report.DumpView(cmd.ErrOrStderr(), rep.View)
	}

	if opts.viewJSONPath != "" {
		if err := writeViewJSON(opts.viewJSONPath, rep.View); err != nil {
			return err
		}
		cmd.Printf("View model written to %s\n", opts.viewJSONPath)
	}

	if opts.noExport {
		return nil
	}
	exp, err := newExporter(cfg, opts.outputDir)
	if err != nil {
		return err
	}
	path, err := asm.Export(commandContext(cmd), rep, exp)
	if err != nil {
		return err
	}
	cmd.Printf("Report written to %s\n", path)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadRecord reads and decodes one analysis payload. Schema mismatches are
// logged as warnings; dropped entries only at debug level.
func loadRecord(path string) (analysis.Record, error) {
	if strings.TrimSpace(path) == "" {
		return analysis.Record{}, fmt.Errorf("an --input payload is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return analysis.Record{}, fmt.Errorf("unable to read payload %s: %w", path, err)
	}
	rec, diag, err := analysis.Decode(data)
	if err != nil {
		return analysis.Record{}, fmt.Errorf("decode %s: %w", path, err)
	}
	for _, w := range diag.Warnings {
		logging.LogWarn("%s: %s", path, w)
	}
	if diag.DroppedCompetitors > 0 || diag.DroppedChecklist > 0 {
		logging.LogDebug("%s: dropped %d competitor and %d checklist entries", path, diag.DroppedCompetitors, diag.DroppedChecklist)
	}
	for _, m := range []analysis.Model{analysis.ModelAverage, analysis.ModelDeepSeek, analysis.ModelGemini, analysis.ModelChatGPT} {
		if !rec.HasScore(m) {
			logging.LogDebug("%s: no %s score, reporting 0.00", path, m.Label())
		}
	}
	return rec, nil
}

func newExporter(cfg appconfig.Config, outputDir string) (*render.FileExporter, error) {
	dir := strings.TrimSpace(outputDir)
	if dir == "" {
		dir = cfg.OutputPath()
	}
	return render.NewFileExporter(dir, cfg.ExportFormat())
}

func writeViewJSON(path string, vm report.ViewModel) error {
	data, err := json.MarshalIndent(vm, "", "  ")
	if err != nil {
		return fmt.Errorf("encode view model: %w", err)
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("unable to write view model %s: %w", path, err)
	}
	return nil
}
