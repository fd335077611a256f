package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	burnoutdto "technova/internal/modules/burnout/dto"
	careerdto "technova/internal/modules/career/dto"
	promptdto "technova/internal/modules/prompt/dto"
	"technova/internal/ui/components"
	"technova/internal/ui/theme"
	burnoutview "technova/internal/ui/views/burnout"
	careerview "technova/internal/ui/views/career"
	promptview "technova/internal/ui/views/prompt"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type careerPort interface {
	ListTracks(ctx context.Context) ([]careerdto.TrackOutput, error)
	Simulate(ctx context.Context, careerPath, comparisonPath string, numSimulations *int) (careerdto.SimulateOutput, error)
	Compare(ctx context.Context, path1, path2 string, numSimulations *int) (careerdto.CompareOutput, error)
}

type burnoutPort interface {
	PlanRequest(ctx context.Context, raw []byte, deriveTimeOfDay bool) (burnoutdto.PlanOutput, error)
}

type promptPort interface {
	Assess(ctx context.Context, question, userPrompt, aiOutput string) (promptdto.AssessOutput, error)
	Session(ctx context.Context, items []promptdto.AssessInput) (promptdto.SessionOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabCareer tabID = iota
	tabBurnout
	tabPrompt
	tabCount
)

var tabLabels = [tabCount]string{"Career", "Burnout", "Prompt"}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Simulate key.Binding
	Mark     key.Binding
	Compare  key.Binding
	Reload   key.Binding
	Derive   key.Binding
	Edit     key.Binding
	Session  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Simulate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "simulate / assess")),
		Mark:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark comparison")),
		Compare:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload log")),
		Derive:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "derive time of day")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit prompt")),
		Session:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "score session")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Simulate, k.Mark, k.Compare},
		{k.Reload, k.Derive, k.Edit, k.Session},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the command palette; each tab renders through its own sub-view.
type Model struct {
	careerView  careerview.Model
	burnoutView burnoutview.Model
	promptView  promptview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// NewModel builds the root model. activityLogPath may be empty, in which case
// the burnout tab waits for burnout:load.
func NewModel(career careerPort, burnout burnoutPort, prompt promptPort, activityLogPath string) Model {
	return Model{
		careerView:  careerview.New(career),
		burnoutView: burnoutview.New(burnout, activityLogPath),
		promptView:  promptview.New(prompt),
		activeTab:   tabCareer,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.careerView.Init(),
		m.burnoutView.Init(),
		m.promptView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	// Results are routed to their owning view regardless of the active tab.
	case careerview.TracksLoadedMsg, careerview.SimulatedMsg, careerview.ComparedMsg, spinner.TickMsg:
		if status := careerStatus(msg); status != "" {
			m.status = status
		}
		var cmd tea.Cmd
		m.careerView, cmd = m.careerView.Update(msg)
		return m, cmd

	case burnoutview.PlannedMsg:
		if msg.Err != nil {
			m.status = "burnout: " + msg.Err.Error()
		} else {
			m.status = "burnout: analysed " + msg.Path
		}
		var cmd tea.Cmd
		m.burnoutView, cmd = m.burnoutView.Update(msg)
		return m, cmd

	case promptview.AssessedMsg, promptview.SessionScoredMsg:
		var cmd tea.Cmd
		m.promptView, cmd = m.promptView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Yield to the sub-view while it captures text.
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabCareer:
		m.careerView, tabCmd = m.careerView.Update(msg)
	case tabBurnout:
		m.burnoutView, tabCmd = m.burnoutView.Update(msg)
	case tabPrompt:
		m.promptView, tabCmd = m.promptView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabCareer:
		return m.careerView.View()
	case tabBurnout:
		return m.burnoutView.View()
	case tabPrompt:
		return m.promptView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := theme.Title.Render("technova") + "  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  ::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).
		Render(left+strings.Repeat(" ", gap)+right)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "career:simulate":
		m.activeTab = tabCareer
		return m, m.careerView.SimulateSelected()

	case "career:compare":
		m.activeTab = tabCareer
		return m, m.careerView.CompareSelected()

	case "burnout:load":
		if len(parts) < 2 {
			m.status = "usage: burnout:load <path>"
			return m, nil
		}
		m.activeTab = tabBurnout
		path := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		m.status = "loading " + path
		return m, m.burnoutView.Load(path)

	case "burnout:derive":
		m.activeTab = tabBurnout
		if m.burnoutView.Path() == "" {
			m.status = "no activity log loaded"
			return m, nil
		}
		return m, m.burnoutView.ToggleDerive()

	case "prompt:assess":
		m.activeTab = tabPrompt
		return m, m.promptView.Assess()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab is taking free text, in
// which case global key bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabCareer:
		return m.careerView.Filtering()
	case tabPrompt:
		return m.promptView.Editing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.careerView, _ = m.careerView.Update(sz)
	m.burnoutView, _ = m.burnoutView.Update(sz)
	m.promptView, _ = m.promptView.Update(sz)
}

func careerStatus(msg tea.Msg) string {
	switch msg := msg.(type) {
	case careerview.TracksLoadedMsg:
		if msg.Err != nil {
			return "tracks: " + msg.Err.Error()
		}
		return "tracks loaded"
	case careerview.SimulatedMsg:
		if msg.Err != nil {
			return "simulate: " + msg.Err.Error()
		}
		return "simulated " + msg.Track
	case careerview.ComparedMsg:
		if msg.Err != nil {
			return "compare: " + msg.Err.Error()
		}
		return "compared " + msg.Out.Path1.Name + " and " + msg.Out.Path2.Name
	}
	return ""
}
