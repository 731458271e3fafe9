// internal/tui/viewer.go
// Package tui provides the interactive report viewer.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/airo/internal/logging"
	"github.com/mwiater/airo/internal/report"
	"github.com/mwiater/airo/internal/util"
)

// toastDuration is how long the export notice stays visible.
const toastDuration = 2 * time.Second

// ExportFunc delivers the report and returns the written path.
type ExportFunc func(ctx context.Context) (string, error)

var (
	headerStyle  = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	domainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginLeft(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	chipStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	toastStyle   = lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// model is the Bubble Tea model of the viewer.
type model struct {
	ctx    context.Context
	rep    report.Report
	export ExportFunc

	viewport viewport.Model
	spinner  spinner.Model

	showCompetitors bool
	showChecklist   bool
	exporting       bool
	toast           string
	toastSeq        int
	err             error
	width, height   int
}

// exportDoneMsg is sent when an export finished.
type exportDoneMsg struct{ path string }

// exportErrMsg is sent when an export failed.
type exportErrMsg struct{ error }

// toastExpiredMsg hides the toast it was scheduled for.
type toastExpiredMsg struct{ seq int }

func newModel(ctx context.Context, rep report.Report, export ExportFunc) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// k toggles the checklist, so the viewport scrolls up on the arrow key only.
	vp := viewport.New(100, 20)
	vp.KeyMap.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up"))

	m := &model{
		ctx:             ctx,
		rep:             rep,
		export:          export,
		viewport:        vp,
		spinner:         s,
		showCompetitors: true,
		showChecklist:   true,
	}
	m.refresh()
	return m
}

func exportCmd(ctx context.Context, export ExportFunc) tea.Cmd {
	return func() tea.Msg {
		path, err := export(ctx)
		if err != nil {
			return exportErrMsg{error: err}
		}
		return exportDoneMsg{path: path}
	}
}

func toastExpiry(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "c":
			m.showCompetitors = !m.showCompetitors
			m.refresh()
			return m, nil
		case "k":
			m.showChecklist = !m.showChecklist
			m.refresh()
			return m, nil
		case "e":
			if m.exporting || m.export == nil {
				return m, nil
			}
			m.exporting = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, exportCmd(m.ctx, m.export))
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight := 3
		footerHeight := 2
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-headerHeight-footerHeight)
		m.refresh()
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		m.toastSeq++
		m.toast = fmt.Sprintf("Exported %s", msg.path)
		logging.LogEvent("viewer export written to %s", msg.path)
		return m, toastExpiry(m.toastSeq)

	case exportErrMsg:
		m.exporting = false
		m.err = msg.error
		logging.LogWarn("viewer export failed: %v", msg.error)
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.exporting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *model) View() string {
	var b strings.Builder

	header := headerStyle.Render(m.rep.Meta.SubjectName)
	if m.rep.Meta.SubjectDomain != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, domainStyle.Render(m.rep.Meta.SubjectDomain))
	}
	b.WriteString(header + "\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	switch {
	case m.exporting:
		b.WriteString(m.spinner.View() + " Exporting " + m.rep.Filename + "...")
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Export failed: %v", m.err)))
	case m.toast != "":
		b.WriteString(toastStyle.Render(m.toast))
	default:
		b.WriteString(mutedStyle.Render("c competitors • k checklist • e export • ↑/↓ scroll • q quit"))
	}
	return b.String()
}

func (m *model) refresh() {
	m.viewport.SetContent(m.content())
}

// content renders the scrollable body.
func (m *model) content() string {
	vm := m.rep.View
	var b strings.Builder

	b.WriteString(sectionStyle.Render("AI Visibility Scores") + "\n")
	chips := make([]string, 0, 4)
	for _, chip := range vm.ScoreChips() {
		chips = append(chips, chipStyle.Render(chip))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n\n")

	b.WriteString(sectionTitle(fmt.Sprintf("Competitors (%d)", len(vm.Competitors)), m.showCompetitors) + "\n")
	if m.showCompetitors {
		if len(vm.Competitors) == 0 {
			b.WriteString("  " + mutedStyle.Render(m.clip("No competitor data available.", 2)) + "\n")
		}
		for i, c := range vm.Competitors {
			prefix := fmt.Sprintf("  %2d. ", i+1)
			b.WriteString(prefix + m.clip(c.Line(), len(prefix)) + "\n")
		}
	}

	if len(vm.ChecklistByCategory) > 0 {
		passed, total := 0, 0
		for _, g := range vm.ChecklistByCategory {
			passed += g.Passed
			total += len(g.Items)
		}
		b.WriteString("\n" + sectionTitle(fmt.Sprintf("Optimization Checklist (%d/%d passed)", passed, total), m.showChecklist) + "\n")
		if m.showChecklist {
			for _, g := range vm.ChecklistByCategory {
				b.WriteString("  " + m.clip(g.Label, 2) + "\n")
				for _, item := range g.Items {
					mark := failStyle.Render("●")
					if item.Passed {
						mark = passStyle.Render("●")
					}
					b.WriteString("    " + mark + " " + m.clip(item.Line(), 6) + "\n")
				}
			}
		}
	}
	return b.String()
}

// clip cuts a plain row so that, after indent cells of prefix, it fits the
// viewport width.
func (m *model) clip(text string, indent int) string {
	width := m.viewport.Width - indent
	if width <= 0 {
		return text
	}
	return util.TruncateToWidth(text, width)
}

func sectionTitle(title string, open bool) string {
	arrow := "▸"
	if open {
		arrow = "▾"
	}
	return sectionStyle.Render(arrow + " " + title)
}

// Run starts the viewer and blocks until the user quits.
func Run(ctx context.Context, rep report.Report, export ExportFunc) error {
	p := tea.NewProgram(newModel(ctx, rep, export), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
