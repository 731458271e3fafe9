package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/k0kubun/pp"
)

var (
	summaryTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	summaryHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	summaryMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	summaryChipStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1)

	passMark = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
)

// PrintSummary writes a terminal rendition of the report.
func PrintSummary(out io.Writer, rep Report) {
	vm, meta := rep.View, rep.Meta

	fmt.Fprintln(out, summaryTitleStyle.Render(strings.TrimSpace(meta.SubjectName+"  "+meta.SubjectDomain)))
	if !meta.GeneratedAt.IsZero() {
		fmt.Fprintln(out, summaryMutedStyle.Render(meta.GeneratedAt.Format("2006-01-02 15:04:05")))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, summaryHeadingStyle.Render(scoresHeading))
	chips := make([]string, 0, 4)
	for _, chip := range vm.ScoreChips() {
		chips = append(chips, summaryChipStyle.Render(chip))
	}
	fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	fmt.Fprintln(out)

	fmt.Fprintln(out, summaryHeadingStyle.Render(competitorsHeading))
	if len(vm.Competitors) == 0 {
		fmt.Fprintln(out, "  "+summaryMutedStyle.Render(noCompetitors))
	}
	for i, c := range vm.Competitors {
		fmt.Fprintf(out, "  %2d. %s\n", i+1, c.Line())
	}

	if len(vm.ChecklistByCategory) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, summaryHeadingStyle.Render(checklistHeading))
		for _, g := range vm.ChecklistByCategory {
			fmt.Fprintf(out, "  %s %s\n", g.Label, summaryMutedStyle.Render(fmt.Sprintf("(%d/%d)", g.Passed, len(g.Items))))
			for _, item := range g.Items {
				fmt.Fprintf(out, "    %s %s\n", statusMark(item.Passed), item.Line())
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, summaryMutedStyle.Render(fmt.Sprintf("%d page(s) composed as %q", len(rep.Document.Pages), rep.Filename)))
}

func statusMark(passed bool) string {
	if passed {
		return passMark("✔")
	}
	return failMark("✘")
}

// DumpView pretty-prints the view model for --debug runs.
func DumpView(out io.Writer, vm ViewModel) {
	_, _ = pp.Fprintln(out, vm)
}
