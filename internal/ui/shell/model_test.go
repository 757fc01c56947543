package shell

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"toolbox/internal/app"
	"toolbox/internal/domain"
	"toolbox/internal/infra/kvstore"
	"toolbox/internal/infra/recent"
	"toolbox/internal/infra/registry"
	"toolbox/internal/infra/tools"
)

func newTestModel(t *testing.T) (Model, *app.Workspace) {
	t.Helper()
	reg, err := registry.New(tools.Builtin(), registry.Options{})
	require.NoError(t, err)
	tracker := recent.NewTracker(kvstore.NewMemory(), recent.Options{})
	tracker.Load(context.Background())
	workspace := app.NewWorkspace(app.WorkspaceOptions{
		Registry:      reg,
		Tracker:       tracker,
		FeaturedLimit: 3,
	})
	return NewModel(Options{Workspace: workspace}), workspace
}

func update(t *testing.T, model Model, message tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, command := model.Update(message)
	return updated.(Model), command
}

func typeText(t *testing.T, model Model, text string) Model {
	t.Helper()
	for _, char := range text {
		message := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}}
		if char == ' ' {
			message = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
		model, _ = update(t, model, message)
	}
	return model
}

func itemSlugs(model Model) []string {
	out := make([]string, 0, len(model.items))
	for _, item := range model.items {
		out = append(out, item.descriptor.Slug)
	}
	return out
}

func TestModelDefaultView(t *testing.T) {
	model, _ := newTestModel(t)

	require.Equal(t, modeSearch, model.mode)
	require.Equal(t, []string{"pdf-text", "json-formatter", "word-counter"}, itemSlugs(model))
	require.Contains(t, model.View(), "Nổi bật")
}

func TestModelTruncatesRowsToWidth(t *testing.T) {
	model, _ := newTestModel(t)

	model, _ = update(t, model, tea.WindowSizeMsg{Width: 24, Height: 20})
	for _, line := range strings.Split(model.renderSearch(), "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 24)
	}
}

func TestModelTypingSearches(t *testing.T) {
	model, workspace := newTestModel(t)

	model = typeText(t, model, "qr")
	require.Equal(t, "qr", workspace.Query())
	require.NotEmpty(t, model.items)
	require.Equal(t, "qr-generator", model.items[0].descriptor.Slug)
	require.Equal(t, sectionResults, model.items[0].section)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Empty(t, workspace.Query())
	require.Equal(t, sectionFeatured, model.items[0].section)
}

func TestModelNoMatches(t *testing.T) {
	model, _ := newTestModel(t)

	model = typeText(t, model, "xyzzy plugh")
	require.Empty(t, model.items)
	require.Contains(t, model.View(), "Không tìm thấy")

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeSearch, model.mode)
}

func TestModelCursorMovement(t *testing.T) {
	model, _ := newTestModel(t)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, model.cursor)
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, model.cursor)
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 1, model.cursor)
}

func TestModelOpenAndRunTool(t *testing.T) {
	model, workspace := newTestModel(t)

	model = typeText(t, model, "base64")
	require.Equal(t, "base64-codec", model.items[0].descriptor.Slug)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeTool, model.mode)
	require.Empty(t, workspace.Query())
	require.Contains(t, model.View(), "Base64")

	model = typeText(t, model, "--mode=decode aGVsbG8=")
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, command)
	require.True(t, model.running)

	model, _ = update(t, model, command())
	require.False(t, model.running)
	require.NotNil(t, model.result)
	require.Equal(t, "hello", model.result.Text)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	require.Equal(t, modeSearch, model.mode)
	require.Equal(t, "base64-codec", model.items[0].descriptor.Slug)
	require.Equal(t, sectionRecent, model.items[0].section)
}

func TestModelRunErrorIsShown(t *testing.T) {
	model, _ := newTestModel(t)

	model = typeText(t, model, "json")
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = typeText(t, model, "{broken")
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = update(t, model, command())

	require.Error(t, model.runErr)
	code, ok := domain.CodeFrom(model.runErr)
	require.True(t, ok)
	require.Equal(t, domain.CodeInvalidArgument, code)
	require.Nil(t, model.result)
}

func TestModelDropsStaleRunResults(t *testing.T) {
	model, _ := newTestModel(t)

	model = typeText(t, model, "base64")
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	model = typeText(t, model, "first")
	model, first := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, second := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	model, _ = update(t, model, second())
	require.Equal(t, "Zmlyc3Q=", model.result.Text)

	model, _ = update(t, model, runResultMsg{seq: 1, result: domain.ToolResult{Text: "late"}})
	require.Equal(t, "Zmlyc3Q=", model.result.Text)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	model, _ = update(t, model, first())
	require.Nil(t, model.result)
	require.Equal(t, modeSearch, model.mode)
}

func TestModelClearRecent(t *testing.T) {
	model, workspace := newTestModel(t)
	require.NoError(t, workspace.Visit(context.Background(), "weather"))

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	require.Equal(t, "weather", model.items[0].descriptor.Slug)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Empty(t, workspace.Recent())
	require.Equal(t, "pdf-text", model.items[0].descriptor.Slug)
	require.Contains(t, model.View(), "đã xoá")
}

func TestModelQuit(t *testing.T) {
	model, _ := newTestModel(t)

	_, command := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, command)
	_, isQuit := command().(tea.QuitMsg)
	require.True(t, isQuit)

	model = typeText(t, model, "q")
	require.Equal(t, "q", string(model.query))
}

func TestParseForm(t *testing.T) {
	req := parseForm("  10 usd --precision=2 vnd --flag= -- --=x ")
	require.Equal(t, []string{"10", "usd", "vnd", "--", "--=x"}, req.Args)
	require.Equal(t, map[string]string{"precision": "2", "flag": ""}, req.Options)

	req = parseForm("--opt mode=decode aGVsbG8= --opt")
	require.Equal(t, []string{"aGVsbG8=", "--opt"}, req.Args)
	require.Equal(t, map[string]string{"mode": "decode"}, req.Options)

	require.Empty(t, parseForm("   ").Args)
}
