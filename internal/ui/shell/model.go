package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"toolbox/internal/app"
	"toolbox/internal/domain"
)

type mode int

const (
	modeSearch mode = iota
	modeTool
)

type section string

const (
	sectionFeatured section = "Nổi bật"
	sectionRecent   section = "Gần đây"
	sectionResults  section = "Kết quả"
)

type listItem struct {
	descriptor domain.ToolDescriptor
	section    section
}

// runResultMsg delivers the outcome of an asynchronous tool run. seq
// identifies the run; results whose seq is not the latest are dropped.
type runResultMsg struct {
	seq    uint64
	result domain.ToolResult
	err    error
}

type Options struct {
	Workspace *app.Workspace
	// Context bounds tool runs and recent-list writes.
	Context context.Context
	Keys    *KeyMap
	Theme   *Theme
}

// Model is the bubbletea model of the workspace shell.
type Model struct {
	ctx       context.Context
	workspace *app.Workspace
	keys      KeyMap
	theme     Theme

	mode   mode
	query  []rune
	items  []listItem
	cursor int

	session *app.Session
	form    []rune
	runSeq  uint64
	running bool
	result  *domain.ToolResult
	runErr  error

	status string
	width  int
	height int
}

func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	model := Model{
		ctx:       ctx,
		workspace: opts.Workspace,
		keys:      keys,
		theme:     theme,
	}
	model.workspace.Reset()
	model.refreshItems()
	return model
}

// Run starts the shell on the terminal and blocks until the user quits
// or ctx is done.
func Run(ctx context.Context, workspace *app.Workspace) error {
	model := NewModel(Options{Workspace: workspace, Context: ctx})
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case runResultMsg:
		if message.seq != model.runSeq || model.session == nil {
			return model, nil
		}
		model.running = false
		if message.err != nil {
			model.result = nil
			model.runErr = message.err
			return model, nil
		}
		result := message.result
		model.result = &result
		model.runErr = nil
		return model, nil

	case tea.KeyMsg:
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}
		if model.mode == modeTool {
			return model.handleToolKeys(message)
		}
		return model.handleSearchKeys(message)
	}
	return model, nil
}

func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.items)-1 {
			model.cursor++
		}
	case key.Matches(message, model.keys.Submit):
		model.openSelected()
	case key.Matches(message, model.keys.Back):
		model.setQuery(nil)
	case key.Matches(message, model.keys.ClearRecent):
		if err := model.workspace.ClearRecent(model.ctx); err != nil {
			model.status = fmt.Sprintf("không xoá được danh sách gần đây: %v", err)
		} else {
			model.status = "đã xoá danh sách gần đây"
		}
		model.refreshItems()
	case message.Type == tea.KeyBackspace:
		if len(model.query) > 0 {
			model.setQuery(model.query[:len(model.query)-1])
		}
	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		model.setQuery(appendRunes(model.query, message))
	}
	return model, nil
}

func (model Model) handleToolKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back):
		model.closeTool()
		return model, nil
	case key.Matches(message, model.keys.Submit):
		return model.submitForm()
	case message.Type == tea.KeyBackspace:
		if len(model.form) > 0 {
			model.form = model.form[:len(model.form)-1]
		}
	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		model.form = appendRunes(model.form, message)
	}
	return model, nil
}

func appendRunes(buffer []rune, message tea.KeyMsg) []rune {
	if message.Type == tea.KeySpace {
		return append(buffer, ' ')
	}
	return append(buffer, message.Runes...)
}

func (model *Model) setQuery(query []rune) {
	model.query = append([]rune(nil), query...)
	model.workspace.SetQuery(string(model.query))
	model.cursor = 0
	model.status = ""
	model.refreshItems()
}

func (model *Model) refreshItems() {
	view := model.workspace.Results()
	items := make([]listItem, 0, len(view.Featured)+len(view.Recent)+len(view.Matches))
	switch view.Mode {
	case app.ViewSearch:
		for _, match := range view.Matches {
			items = append(items, listItem{descriptor: match.Descriptor, section: sectionResults})
		}
	default:
		for _, descriptor := range view.Recent {
			items = append(items, listItem{descriptor: descriptor, section: sectionRecent})
		}
		for _, descriptor := range view.Featured {
			items = append(items, listItem{descriptor: descriptor, section: sectionFeatured})
		}
	}
	model.items = items
	if model.cursor >= len(items) {
		model.cursor = max(len(items)-1, 0)
	}
}

func (model *Model) openSelected() {
	if len(model.items) == 0 {
		return
	}
	slug := model.items[model.cursor].descriptor.Slug
	session, err := model.workspace.Open(model.ctx, slug)
	if err != nil {
		model.status = err.Error()
		return
	}
	model.session = session
	model.mode = modeTool
	model.form = nil
	model.result = nil
	model.runErr = nil
	model.running = false
	model.status = ""
	model.query = nil
	model.cursor = 0
}

func (model *Model) closeTool() {
	model.session = nil
	model.mode = modeSearch
	model.running = false
	model.result = nil
	model.runErr = nil
	model.form = nil
	// Bumping the sequence turns any in-flight run stale.
	model.runSeq++
	model.setQuery(nil)
}

func (model Model) submitForm() (tea.Model, tea.Cmd) {
	if model.session == nil {
		return model, nil
	}
	model.runSeq++
	model.running = true
	model.runErr = nil
	return model, runTool(model.ctx, model.session, model.runSeq, parseForm(string(model.form)))
}

func runTool(ctx context.Context, session *app.Session, seq uint64, req domain.ToolRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := session.Run(ctx, req)
		return runResultMsg{seq: seq, result: result, err: err}
	}
}

// parseForm splits the form line on whitespace. Tokens of the form
// --key=value, or --opt followed by key=value, become options; everything
// else is a positional argument.
func parseForm(line string) domain.ToolRequest {
	var req domain.ToolRequest
	setOption := func(name, value string) {
		if req.Options == nil {
			req.Options = make(map[string]string)
		}
		req.Options[name] = value
	}
	tokens := strings.Fields(line)
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if token == "--opt" && i+1 < len(tokens) {
			if name, value, ok := strings.Cut(tokens[i+1], "="); ok && name != "" {
				setOption(name, value)
				i++
				continue
			}
		}
		if rest, isFlag := strings.CutPrefix(token, "--"); isFlag {
			if name, value, ok := strings.Cut(rest, "="); ok && name != "" {
				setOption(name, value)
				continue
			}
		}
		req.Args = append(req.Args, token)
	}
	return req
}

func (model Model) View() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground).Render("toolbox")
	var body string
	var help []key.Binding
	if model.mode == modeTool && model.session != nil {
		body = model.renderTool()
		help = model.keys.toolHelp()
	} else {
		body = model.renderSearch()
		help = model.keys.searchHelp()
	}

	parts := []string{header, body}
	if model.status != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(model.status))
	}
	parts = append(parts, model.renderHelp(help))
	return strings.Join(parts, "\n\n")
}

func (model Model) renderSearch() string {
	var b strings.Builder
	b.WriteString("> ")
	b.WriteString(string(model.query))
	b.WriteString(lipgloss.NewStyle().Reverse(true).Render(" "))
	b.WriteString("\n")

	if len(model.items) == 0 {
		empty := "Không tìm thấy công cụ phù hợp"
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(empty))
		return b.String()
	}

	sectionStyle := lipgloss.NewStyle().Foreground(model.theme.SectionForeground).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	selectedStyle := lipgloss.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground)

	var current section
	for index, item := range model.items {
		if item.section != current {
			current = item.section
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(string(current)))
			b.WriteString("\n")
		}
		row := fmt.Sprintf(" %s %s", iconOf(item.descriptor), item.descriptor.Name)
		if index == model.cursor {
			row = selectedStyle.Render(row)
		} else {
			row = normalStyle.Render(row)
		}
		b.WriteString(model.fit(row + faintStyle.Render("  "+item.descriptor.ShortDesc)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (model Model) renderTool() string {
	descriptor := model.session.Descriptor()
	var b strings.Builder
	title := fmt.Sprintf("%s %s", iconOf(descriptor), descriptor.Name)
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(descriptor.ShortDesc))
	if descriptor.Usage != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(descriptor.Usage))
	}
	b.WriteString("\n\n$ ")
	b.WriteString(string(model.form))
	b.WriteString(lipgloss.NewStyle().Reverse(true).Render(" "))
	b.WriteString("\n\n")

	switch {
	case model.running:
		b.WriteString("Đang chạy...")
	case model.runErr != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(model.theme.ErrorForeground).Render(model.runErr.Error()))
	case model.result != nil:
		b.WriteString(model.result.Text)
		if len(model.result.Attachment) > 0 {
			note := fmt.Sprintf("\n[%s, %d bytes: dùng `toolbox run %s --out <file>` để lưu]",
				model.result.AttachmentName, len(model.result.Attachment), descriptor.Slug)
			b.WriteString(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(note))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// fit truncates a styled line to the terminal width once it is known.
func (model Model) fit(line string) string {
	if model.width <= 0 {
		return line
	}
	return ansi.Truncate(line, model.width, "…")
}

func (model Model) renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(strings.Join(parts, " • "))
}

func iconOf(descriptor domain.ToolDescriptor) string {
	if descriptor.Icon == "" {
		return "•"
	}
	return descriptor.Icon
}
