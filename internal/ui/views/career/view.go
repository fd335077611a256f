package career

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	careerdto "technova/internal/modules/career/dto"
	"technova/internal/ui/theme"
)

type CareerPort interface {
	ListTracks(ctx context.Context) ([]careerdto.TrackOutput, error)
	Simulate(ctx context.Context, careerPath, comparisonPath string, numSimulations *int) (careerdto.SimulateOutput, error)
	Compare(ctx context.Context, path1, path2 string, numSimulations *int) (careerdto.CompareOutput, error)
}

type TracksLoadedMsg struct {
	Tracks []careerdto.TrackOutput
	Err    error
}

type SimulatedMsg struct {
	Track string
	Out   careerdto.SimulateOutput
	Err   error
}

type ComparedMsg struct {
	Out careerdto.CompareOutput
	Err error
}

type trackItem struct {
	track  careerdto.TrackOutput
	marked bool
}

func (i trackItem) Title() string {
	title := i.track.Name
	if i.marked {
		title = "◆ " + title
	}
	if i.track.Default {
		title += " (default)"
	}
	return title
}

func (i trackItem) Description() string {
	return fmt.Sprintf("$%.0f base · %.0f%% growth", i.track.BaseSalary, i.track.SalaryGrowthRate*100)
}

func (i trackItem) FilterValue() string { return i.track.Name }

type Model struct {
	port    CareerPort
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	marked  string
	loading bool
	busy    bool
	err     error
	width   int
	height  int
}

func New(port CareerPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Sapphire).BorderForeground(theme.Sapphire)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Subtext0).BorderForeground(theme.Sapphire)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Tracks"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	vp.SetContent(theme.Muted.Render("enter: simulate · m: mark for comparison · c: compare with marked"))

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Sapphire)

	return Model{port: port, list: l, detail: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTracksCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case TracksLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			m.detail.SetContent(theme.Hot.Render("tracks: " + msg.Err.Error()))
			return m, nil
		}
		items := make([]list.Item, len(msg.Tracks))
		for i, t := range msg.Tracks {
			items[i] = trackItem{track: t}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case SimulatedMsg:
		m.busy = false
		if msg.Err != nil {
			m.detail.SetContent(theme.Hot.Render("simulate: " + msg.Err.Error()))
		} else {
			m.detail.SetContent(RenderSimulation(msg.Track, msg.Out))
			m.detail.GotoTop()
		}

	case ComparedMsg:
		m.busy = false
		if msg.Err != nil {
			m.detail.SetContent(theme.Hot.Render("compare: " + msg.Err.Error()))
		} else {
			m.detail.SetContent(RenderComparison(msg.Out))
			m.detail.GotoTop()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			cmds = append(cmds, m.SimulateSelected())
		case "m":
			m.toggleMark()
		case "c":
			cmds = append(cmds, m.CompareSelected())
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading tracks…")
	}

	listW := m.width * 35 / 100
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())

	body := m.detail.View()
	if m.busy {
		body = m.spinner.View() + " running simulations…\n" + body
	}
	detailPane := theme.Pane.
		Width(detailW - 2).
		Height(m.height - 2).
		Render(body)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the track filter is open.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SimulateSelected runs the selected track, paired with the marked track when
// one is set.
func (m *Model) SimulateSelected() tea.Cmd {
	item, ok := m.list.SelectedItem().(trackItem)
	if !ok || m.port == nil {
		return nil
	}
	comparison := ""
	if m.marked != item.track.Name {
		comparison = m.marked
	}
	m.busy = true
	port := m.port
	name := item.track.Name
	return func() tea.Msg {
		out, err := port.Simulate(context.Background(), name, comparison, nil)
		return SimulatedMsg{Track: name, Out: out, Err: err}
	}
}

// CompareSelected compares the selected track against the marked one.
func (m *Model) CompareSelected() tea.Cmd {
	item, ok := m.list.SelectedItem().(trackItem)
	if !ok || m.port == nil {
		return nil
	}
	if m.marked == "" || m.marked == item.track.Name {
		m.detail.SetContent(theme.Muted.Render("mark a different track with m first"))
		return nil
	}
	m.busy = true
	port := m.port
	path1, path2 := m.marked, item.track.Name
	return func() tea.Msg {
		out, err := port.Compare(context.Background(), path1, path2, nil)
		return ComparedMsg{Out: out, Err: err}
	}
}

func (m *Model) toggleMark() {
	item, ok := m.list.SelectedItem().(trackItem)
	if !ok {
		return
	}
	if m.marked == item.track.Name {
		m.marked = ""
	} else {
		m.marked = item.track.Name
	}
	items := m.list.Items()
	for i, it := range items {
		ti := it.(trackItem)
		ti.marked = ti.track.Name == m.marked
		items[i] = ti
	}
	m.list.SetItems(items)
}

func (m *Model) resize() {
	listW := m.width * 35 / 100
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

// RenderSimulation formats a simulation as a projection table with risk bars.
func RenderSimulation(track string, out careerdto.SimulateOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(track) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d runs · success rate %.1f%%",
		out.Results.TotalSimulations, out.Results.SuccessRate)) + "\n\n")
	writeProjections(&sb, out.Results.YearlyProjections)
	sb.WriteString("\n")
	writeRisk(&sb, out.RiskAnalysis)

	if c := out.ComparisonResults; c != nil {
		sb.WriteString("\n" + theme.Title.Render("Comparison") + "\n")
		writeProjections(&sb, c.Results.YearlyProjections)
		sb.WriteString("\n")
		writeRisk(&sb, c.RiskAnalysis)
	}

	f := out.MarketData.EconomicFactors
	sb.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("%s · %s · inflation %.1f%% · gdp %.1f%%",
		out.MarketData.Industry, out.MarketData.Location, f.Inflation*100, f.GDPGrowth*100)))
	return sb.String()
}

// RenderComparison formats a head-to-head comparison.
func RenderComparison(out careerdto.CompareOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(out.Path1.Name+" vs "+out.Path2.Name) + "\n\n")
	for _, p := range []careerdto.PathSummary{out.Path1, out.Path2} {
		sb.WriteString(fmt.Sprintf("%-24s risk %s  reward %s  avg $%.0f  stability %.0f%%\n",
			p.Name, theme.Risk(p.RiskScore).Render(fmt.Sprintf("%5.1f", p.RiskScore)),
			theme.Grade(p.RewardScore).Render(fmt.Sprintf("%5.1f", p.RewardScore)),
			p.AvgSalary, p.Stability))
	}
	sb.WriteString("\n" + out.Recommendation + "\n")
	return sb.String()
}

func writeProjections(sb *strings.Builder, rows []careerdto.YearlyProjection) {
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-5s %10s %10s %10s %9s %7s", "year", "min", "avg", "max", "stability", "demand")) + "\n")
	for _, y := range rows {
		sb.WriteString(fmt.Sprintf("%-5d %10d %10d %10d %8.0f%% %6.0f%%\n",
			y.Year, y.SalaryMin, y.SalaryAvg, y.SalaryMax, y.JobStability, y.MarketDemand))
	}
}

func writeRisk(sb *strings.Builder, r careerdto.RiskAnalysis) {
	sb.WriteString("risk   " + theme.Bar(r.RiskScore, 20) + fmt.Sprintf(" %.1f\n", r.RiskScore))
	sb.WriteString("reward " + theme.Bar(r.RewardScore, 20) + fmt.Sprintf(" %.1f\n", r.RewardScore))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("volatility %.2f", r.Volatility)) + "\n")
	sb.WriteString(r.Recommendation + "\n")
}

func (m Model) loadTracksCmd() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return TracksLoadedMsg{}
		}
		tracks, err := m.port.ListTracks(context.Background())
		return TracksLoadedMsg{Tracks: tracks, Err: err}
	}
}
