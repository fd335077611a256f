package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	burnoutdto "technova/internal/modules/burnout/dto"
	careerdto "technova/internal/modules/career/dto"
	promptdto "technova/internal/modules/prompt/dto"
	"technova/internal/ui/app"
	"technova/internal/ui/components"
	careerview "technova/internal/ui/views/career"
)

type fakeCareer struct{}

func (fakeCareer) ListTracks(context.Context) ([]careerdto.TrackOutput, error) {
	return []careerdto.TrackOutput{{Name: "Data Science"}}, nil
}
func (fakeCareer) Simulate(context.Context, string, string, *int) (careerdto.SimulateOutput, error) {
	return careerdto.SimulateOutput{}, nil
}
func (fakeCareer) Compare(context.Context, string, string, *int) (careerdto.CompareOutput, error) {
	return careerdto.CompareOutput{}, nil
}

type fakeBurnout struct{}

func (fakeBurnout) PlanRequest(context.Context, []byte, bool) (burnoutdto.PlanOutput, error) {
	return burnoutdto.PlanOutput{}, nil
}

type fakePrompt struct{}

func (fakePrompt) Assess(context.Context, string, string, string) (promptdto.AssessOutput, error) {
	return promptdto.AssessOutput{}, nil
}
func (fakePrompt) Session(context.Context, []promptdto.AssessInput) (promptdto.SessionOutput, error) {
	return promptdto.SessionOutput{}, nil
}

func newSizedModel(t *testing.T) tea.Model {
	t.Helper()
	var m tea.Model = app.NewModel(fakeCareer{}, fakeBurnout{}, fakePrompt{}, "")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return m
}

func TestPaletteReportsUnknownCommand(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t)
	m, _ = m.Update(components.PaletteSubmitMsg{Input: "nope:now"})
	if !strings.Contains(m.View(), "unknown command: nope:now") {
		t.Fatalf("status bar should report the unknown command")
	}
}

func TestPaletteBurnoutLoadNeedsPath(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t)
	m, cmd := m.Update(components.PaletteSubmitMsg{Input: "burnout:load"})
	if cmd != nil {
		t.Fatalf("no command expected without a path")
	}
	if !strings.Contains(m.View(), "usage: burnout:load <path>") {
		t.Fatalf("expected usage hint in status bar")
	}
}

func TestCareerResultsUpdateStatusFromAnyTab(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(careerview.SimulatedMsg{Track: "Data Science", Err: errors.New("boom")})
	if !strings.Contains(m.View(), "simulate: boom") {
		t.Fatalf("career errors should surface in the status bar")
	}
}

func TestQuitKey(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
