package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	promptdto "technova/internal/modules/prompt/dto"
	"technova/internal/ui/theme"
)

type PromptPort interface {
	Assess(ctx context.Context, question, userPrompt, aiOutput string) (promptdto.AssessOutput, error)
	Session(ctx context.Context, items []promptdto.AssessInput) (promptdto.SessionOutput, error)
}

type AssessedMsg struct {
	Input promptdto.AssessInput
	Out   promptdto.AssessOutput
	Err   error
}

type SessionScoredMsg struct {
	Out promptdto.SessionOutput
	Err error
}

const (
	fieldQuestion = iota
	fieldPrompt
	fieldOutput
	fieldCount
)

var fieldLabels = [fieldCount]string{"question", "prompt", "ai output"}

// Model is a small form for scoring prompts. Every assessed prompt joins the
// session history, and s scores the history as a whole.
type Model struct {
	port    PromptPort
	inputs  [fieldCount]textinput.Model
	focus   int
	editing bool
	history []promptdto.AssessInput
	result  viewport.Model
	width   int
	height  int
}

func New(port PromptPort) Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("%-10s ", fieldLabels[i])
		ti.PromptStyle = theme.Muted
		ti.CharLimit = 2000
		inputs[i] = ti
	}
	inputs[fieldQuestion].Placeholder = "Explain recursion"
	inputs[fieldPrompt].Placeholder = "Explain recursion with a specific example…"
	inputs[fieldOutput].Placeholder = "optional"

	vp := viewport.New(0, 0)
	vp.SetContent(theme.Muted.Render("e: edit · enter: assess · s: score session · x: clear session"))
	return Model{port: port, inputs: inputs, result: vp}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		m.result.Width = msg.Width - 6
		m.result.Height = msg.Height - fieldCount - 6
		return m, nil

	case AssessedMsg:
		if msg.Err != nil {
			m.result.SetContent(theme.Hot.Render("assess: " + msg.Err.Error()))
			return m, nil
		}
		m.history = append(m.history, msg.Input)
		m.result.SetContent(RenderAssessment(msg.Out))
		return m, nil

	case SessionScoredMsg:
		if msg.Err != nil {
			m.result.SetContent(theme.Hot.Render("session: " + msg.Err.Error()))
		} else {
			m.result.SetContent(RenderSession(msg.Out))
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case "e", "i":
			return m, m.startEditing()
		case "enter":
			return m, m.Assess()
		case "s":
			return m, m.ScoreSession()
		case "x":
			m.history = nil
			m.result.SetContent(theme.Muted.Render("session cleared"))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.result, cmd = m.result.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEditing()
		return m, nil
	case "down", "ctrl+n":
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case "up", "ctrl+p":
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		m.stopEditing()
		return m, m.Assess()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Prompt assessment"))
	if n := len(m.history); n > 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %d in session", n)))
	}
	sb.WriteString("\n\n")
	for i := range m.inputs {
		sb.WriteString(m.inputs[i].View() + "\n")
	}
	style := theme.Pane
	if m.editing {
		style = theme.PaneActive
	}
	form := style.Width(m.width - 2).Render(sb.String())
	return lipgloss.JoinVertical(lipgloss.Left, form, m.result.View())
}

// Editing reports whether a text field has focus.
func (m Model) Editing() bool { return m.editing }

// Assess scores the current form contents.
func (m *Model) Assess() tea.Cmd {
	if m.port == nil {
		return nil
	}
	input := promptdto.AssessInput{
		Question:   m.inputs[fieldQuestion].Value(),
		UserPrompt: m.inputs[fieldPrompt].Value(),
		AIOutput:   m.inputs[fieldOutput].Value(),
	}
	if strings.TrimSpace(input.UserPrompt) == "" {
		m.result.SetContent(theme.Muted.Render("enter a prompt first"))
		return nil
	}
	port := m.port
	return func() tea.Msg {
		out, err := port.Assess(context.Background(), input.Question, input.UserPrompt, input.AIOutput)
		return AssessedMsg{Input: input, Out: out, Err: err}
	}
}

// ScoreSession scores every prompt assessed so far.
func (m *Model) ScoreSession() tea.Cmd {
	if m.port == nil {
		return nil
	}
	if len(m.history) == 0 {
		m.result.SetContent(theme.Muted.Render("assess at least one prompt first"))
		return nil
	}
	port := m.port
	items := append([]promptdto.AssessInput(nil), m.history...)
	return func() tea.Msg {
		out, err := port.Session(context.Background(), items)
		return SessionScoredMsg{Out: out, Err: err}
	}
}

func (m *Model) startEditing() tea.Cmd {
	m.editing = true
	return m.setFocus(m.focus)
}

func (m *Model) stopEditing() {
	m.editing = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func RenderAssessment(out promptdto.AssessOutput) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("score %s\n\n", theme.Grade(out.Score).Render(fmt.Sprintf("%.2f", out.Score))))
	writeMetrics(&sb, out.Metrics)
	sb.WriteString("\n" + out.Feedback + "\n")
	return sb.String()
}

func RenderSession(out promptdto.SessionOutput) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("session %s over %d prompts", theme.Grade(out.OverallScore).Render(fmt.Sprintf("%.2f", out.OverallScore)), len(out.Items)))
	if out.Badge.Awarded {
		sb.WriteString("  " + theme.Hot.Render("★ "+out.Badge.Level))
	}
	sb.WriteString("\n\n")
	for i, item := range out.Items {
		sb.WriteString(fmt.Sprintf("  #%d  %6.2f\n", i+1, item.Score))
	}
	sb.WriteString("\n" + theme.Muted.Render("latest metrics") + "\n")
	writeMetrics(&sb, out.Metrics)
	return sb.String()
}

func writeMetrics(sb *strings.Builder, mt promptdto.Metrics) {
	rows := []struct {
		label string
		value float64
	}{
		{"clarity", mt.PromptClarity},
		{"context", mt.ContextAwareness},
		{"error detection", mt.ErrorDetection},
		{"iteration", mt.IterativeImprovement},
		{"productivity", mt.Productivity},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("  %-16s %s %6.2f\n", r.label, theme.Bar(r.value, 20), r.value))
	}
}
