package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"technova/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

const maxHints = 5

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle  = lipgloss.NewStyle().Foreground(theme.Subtext0)
	matchStyle = lipgloss.NewStyle().Foreground(theme.Peach).Bold(true)
)

// PaletteHints must stay in sync with the switch in app/model.go executePalette.
var PaletteHints = []string{
	"career:simulate",
	"career:compare",
	"burnout:load <path>",
	"burnout:derive",
	"prompt:assess",
}

// Palette is a command-palette overlay. Hints are ranked by fuzzy match on
// the command word and the last submitted command is recalled with up.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
	last    string
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 256
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with an empty input and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			if val != "" {
				p.last = val
			}
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "up":
			if p.last != "" {
				p.input.SetValue(p.last)
				p.input.CursorEnd()
			}
			return p, nil
		case "ctrl+n", "tab":
			if hints := MatchHints(p.input.Value()); len(hints) > 0 {
				p.input.SetValue(strings.Fields(hints[0].Str)[0] + " ")
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// MatchHints ranks PaletteHints against the first word of input. An empty
// input lists every hint in declaration order.
func MatchHints(input string) fuzzy.Matches {
	word := ""
	if fields := strings.Fields(strings.ToLower(input)); len(fields) > 0 {
		word = fields[0]
	}
	if word == "" {
		out := make(fuzzy.Matches, 0, len(PaletteHints))
		for i, h := range PaletteHints {
			out = append(out, fuzzy.Match{Str: h, Index: i})
		}
		return out
	}
	return fuzzy.Find(word, PaletteHints)
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")

	matches := MatchHints(p.input.Value())
	if len(matches) > 0 {
		sb.WriteString("\n")
		for i, m := range matches {
			if i == maxHints {
				break
			}
			sb.WriteString("  " + highlight(m) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}

func highlight(m fuzzy.Match) string {
	hit := make(map[int]bool, len(m.MatchedIndexes))
	for _, idx := range m.MatchedIndexes {
		hit[idx] = true
	}
	var sb strings.Builder
	for i, r := range m.Str {
		if hit[i] {
			sb.WriteString(matchStyle.Render(string(r)))
		} else {
			sb.WriteString(hintStyle.Render(string(r)))
		}
	}
	return sb.String()
}
