package burnout

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	burnoutdto "technova/internal/modules/burnout/dto"
	"technova/internal/ui/theme"
)

type BurnoutPort interface {
	PlanRequest(ctx context.Context, raw []byte, deriveTimeOfDay bool) (burnoutdto.PlanOutput, error)
}

type PlannedMsg struct {
	Path string
	Out  burnoutdto.PlanOutput
	Err  error
}

// Model shows the burnout report for an activity log file. The file is
// re-read on every load so edits show up after r.
type Model struct {
	port   BurnoutPort
	path   string
	derive bool
	detail viewport.Model
	width  int
	height int
}

func New(port BurnoutPort, path string) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	vp.SetContent(theme.Muted.Render("no activity log; use :burnout:load <path>"))
	return Model{port: port, path: path, detail: vp}
}

func (m Model) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	return m.Load(m.path)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = msg.Width - 6
		m.detail.Height = msg.Height - 4

	case PlannedMsg:
		if msg.Err != nil {
			m.detail.SetContent(theme.Hot.Render(msg.Path + ": " + msg.Err.Error()))
		} else {
			m.detail.SetContent(RenderPlan(msg.Path, m.derive, msg.Out))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.Load(m.path)
		case "d":
			return m, m.ToggleDerive()
		}
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return theme.Pane.Width(m.width - 2).Height(m.height - 2).Render(m.detail.View())
}

// Path is the activity log currently shown.
func (m Model) Path() string { return m.path }

// Load switches to path and analyses it.
func (m *Model) Load(path string) tea.Cmd {
	if path == "" || m.port == nil {
		return nil
	}
	m.path = path
	port, derive := m.port, m.derive
	return func() tea.Msg {
		raw, err := os.ReadFile(path)
		if err != nil {
			return PlannedMsg{Path: path, Err: err}
		}
		out, err := port.PlanRequest(context.Background(), raw, derive)
		return PlannedMsg{Path: path, Out: out, Err: err}
	}
}

// ToggleDerive flips hour-based time-of-day derivation and reloads.
func (m *Model) ToggleDerive() tea.Cmd {
	m.derive = !m.derive
	return m.Load(m.path)
}

// RenderPlan formats a burnout report with its interventions.
func RenderPlan(path string, derive bool, out burnoutdto.PlanOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Burnout report") + "  " + theme.Muted.Render(path))
	if derive {
		sb.WriteString(theme.Muted.Render("  [derived time of day]"))
	}
	sb.WriteString("\n\n")

	risk := float64(out.BurnoutRisk)
	sb.WriteString(fmt.Sprintf("risk   %s %s\n", theme.Bar(risk, 30), theme.Risk(risk).Render(fmt.Sprintf("%3d", out.BurnoutRisk))))
	sb.WriteString(fmt.Sprintf("stress %s\n\n", theme.Risk(float64(out.StressLevel)*10).Render(fmt.Sprintf("%d/10", out.StressLevel))))

	p := out.ActivityPattern
	sb.WriteString(theme.Muted.Render("pattern") + "\n")
	sb.WriteString(fmt.Sprintf("  late-night sessions  %d\n", p.LateNightSessions))
	sb.WriteString(fmt.Sprintf("  consecutive days     %d\n", p.ConsecutiveDays))
	sb.WriteString(fmt.Sprintf("  average session      %.1f min\n", p.AverageSessionLength))
	sb.WriteString(fmt.Sprintf("  peak time            %s\n", p.PeakProductivityTime))

	if len(out.Interventions) > 0 {
		sb.WriteString("\n" + theme.Muted.Render("interventions") + "\n")
		for _, iv := range out.Interventions {
			sb.WriteString(fmt.Sprintf("  %s  %s\n    %s\n",
				theme.Hot.Render(iv.Type),
				theme.Muted.Render(iv.Scheduled.Format("Mon 02 Jan 15:04 MST")),
				iv.Message))
		}
	}
	return sb.String()
}
