package airo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mwiater/airo/internal/logging"
	"github.com/mwiater/airo/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type batchOptions struct {
	dir       string
	outputDir string
	workers   int
}

type batchResult struct {
	input string
	rep   report.Report
	path  string
	err   error
}

func runBatch(cmd *cobra.Command, opts batchOptions) error {
	cfg := activeConfig()
	inputs, err := listPayloads(opts.dir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		cmd.Printf("No payloads found in %s\n", opts.dir)
		return nil
	}
	exp, err := newExporter(cfg, opts.outputDir)
	if err != nil {
		return err
	}

	workers := opts.workers
	if workers <= 0 {
		workers = cfg.Workers()
	}
	batchID := uuid.NewString()
	logging.LogEvent("batch %s: %d payload(s) from %s with %d worker(s)", batchID, len(inputs), opts.dir, workers)

	ctx := commandContext(cmd)
	asm := report.NewAssembler(cfg)
	generatedAt := now()
	results := make([]batchResult, len(inputs))

	var build errgroup.Group
	build.SetLimit(workers)
	for i, input := range inputs {
		build.Go(func() error {
			results[i] = batchResult{input: input}
			rec, err := loadRecord(input)
			if err != nil {
				results[i].err = err
				return nil
			}
			results[i].rep = asm.Build(rec, report.Meta{
				SubjectName: subjectFromFile(rec.CompanyName, input),
				GeneratedAt: generatedAt,
			})
			return nil
		})
	}
	_ = build.Wait()

	assignFilenames(results, asm.Label)

	var export errgroup.Group
	export.SetLimit(workers)
	for i := range results {
		if results[i].err != nil {
			continue
		}
		export.Go(func() error {
			results[i].path, results[i].err = asm.Export(ctx, results[i].rep, exp)
			return nil
		})
	}
	_ = export.Wait()

	var errs []error
	for _, r := range results {
		if r.err != nil {
			logging.LogWarn("batch %s: %s failed: %v", batchID, r.input, r.err)
			errs = append(errs, fmt.Errorf("%s: %w", r.input, r.err))
			cmd.Printf("Failed %s: %v\n", r.input, r.err)
			continue
		}
		cmd.Printf("Report written to %s\n", r.path)
	}
	logging.LogEvent("batch %s: %d succeeded, %d failed", batchID, len(inputs)-len(errs), len(errs))
	return errors.Join(errs...)
}

// assignFilenames gives every built report in results its own export name.
// The first report claiming a name keeps it; later ones get the input file
// stem appended, then a counter if that is taken as well. Names are compared
// case-insensitively.
func assignFilenames(results []batchResult, label string) {
	taken := make(map[string]bool, len(results))
	for i := range results {
		r := &results[i]
		if r.err != nil {
			continue
		}
		name := r.rep.Filename
		if taken[strings.ToLower(name)] {
			subject := r.rep.Meta.SubjectName + " " + fileStem(r.input)
			name = report.Filename(subject, label)
			for n := 2; taken[strings.ToLower(name)]; n++ {
				name = report.Filename(fmt.Sprintf("%s %d", subject, n), label)
			}
			logging.LogDebug("%s: export name %q already used, writing %q", r.input, r.rep.Filename, name)
			r.rep = r.rep.WithFilename(name)
		}
		taken[strings.ToLower(name)] = true
	}
}

// listPayloads returns the *.json files of dir in name order.
func listPayloads(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read payload directory %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func subjectFromFile(companyName, path string) string {
	if name := strings.TrimSpace(companyName); name != "" {
		return name
	}
	return fileStem(path)
}

func fileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
