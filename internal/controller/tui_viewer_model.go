package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/scopegate/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	readOnlyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	prunedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// reservedLines is the header (2 lines), status (2 lines) and help (1 line).
const reservedLines = 5

type viewerKeyMap struct {
	Toggle key.Binding
	Prune  key.Binding
	Undo   key.Binding
	Redo   key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func newViewerKeyMap(pruneKeys []string) viewerKeyMap {
	return viewerKeyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		Prune:  key.NewBinding(key.WithKeys(pruneKeys...), key.WithHelp(strings.Join(pruneKeys, "/"), "prune")),
		Undo:   key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:   key.NewBinding(key.WithKeys("ctrl+r", "ctrl+y"), key.WithHelp("ctrl+r", "redo")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s", "w"), key.WithHelp("w", "save")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k viewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Prune, k.Undo, k.Redo, k.Save, k.Quit}
}

func (k viewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Simple delegate for location items.
type locationDelegate struct{}

func (d locationDelegate) Height() int  { return 1 }
func (d locationDelegate) Spacing() int { return 0 }
func (d locationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d locationDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	location, ok := item.(locationItem)
	if !ok {
		return
	}

	marker := "[ ]"
	if location.state.Selected {
		marker = "[x]"
	}

	indent := strings.Repeat("  ", location.state.Depth)
	text := indent + location.state.Path.Name()

	style := locationStyle

	switch {
	case index == lm.Index():
		style = cursorStyle
	case location.state.Pruned:
		style = prunedStyle
	case location.state.Selected:
		style = selectedStyle
	}

	suffix := ""
	if location.state.Pruned {
		suffix = labelStyle.Render("  pruned")
	}

	width := lm.Width() - lipgloss.Width(marker) - 10
	_, _ = fmt.Fprintf(w, "%s %s%s", marker, style.Render(truncateToWidth(text, width)), suffix)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// viewerModel is the interactive scene viewer.
type viewerModel struct {
	session   ViewerSession
	state     m.ViewerState
	locations list.Model
	help      help.Model
	keys      viewerKeyMap
	pruneKeys map[string]m.KeyEvent
	save      func() error
	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

// bindingName returns the bubbletea name of a configured key chord, such as
// "alt+delete" for "Option+Del", and the event the chord delivers. Chords that
// do not name a prune key deliver Delete.
func bindingName(chord string) (string, m.KeyEvent) {
	event := m.ParseKeyEvent(chord)

	var name string

	switch event.Key {
	case m.KeyDelete:
		name = "delete"
	case m.KeyBackspace:
		name = "backspace"
	case m.KeyEscape:
		name = "esc"
	case m.KeyReturn:
		name = "enter"
	default:
		name = string(event.Key)
		if len([]rune(name)) > 1 {
			name = strings.ToLower(name)
		}

		event.Key = m.KeyDelete
	}

	if event.Modifiers.Has(m.ModShift) {
		name = "shift+" + name
	}

	if event.Modifiers.Has(m.ModControl) {
		name = "ctrl+" + name
	}

	if event.Modifiers.Has(m.ModAlt) {
		name = "alt+" + name
	}

	return name, event
}

func newViewerModel(ctx context.Context, session ViewerSession, pruneKeys []string) viewerModel {
	if len(pruneKeys) == 0 {
		pruneKeys = []string{"delete", "backspace"}
	}

	names := make([]string, 0, len(pruneKeys))
	mapped := make(map[string]m.KeyEvent, len(pruneKeys))

	for _, chord := range pruneKeys {
		name, event := bindingName(chord)
		if _, exists := mapped[name]; !exists {
			names = append(names, name)
		}

		mapped[name] = event
	}

	locations := list.New([]list.Item{}, locationDelegate{}, 80, 20)
	locations.SetShowPagination(false)
	locations.SetShowFilter(true)
	locations.SetShowHelp(false)
	locations.SetShowTitle(false)
	locations.SetShowStatusBar(false)
	locations.FilterInput.Placeholder = "Filter by location…"

	vm := viewerModel{
		session:   session,
		locations: locations,
		help:      help.New(),
		keys:      newViewerKeyMap(names),
		pruneKeys: mapped,
		save:      func() error { return session.Save(ctx) },
	}
	vm.refresh()

	return vm
}

func (vm viewerModel) Init() tea.Cmd {
	return nil
}

func (vm viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vm.width = msg.Width
		vm.height = msg.Height
		vm.help.Width = msg.Width

		listHeight := msg.Height - reservedLines
		if listHeight < 1 {
			listHeight = 1
		}

		vm.locations.SetSize(msg.Width, listHeight)

		return vm, nil

	case tea.KeyMsg:
		if vm.locations.FilterState() == list.Filtering {
			break
		}

		return vm.handleKeyPress(msg)
	}

	var cmd tea.Cmd

	vm.locations, cmd = vm.locations.Update(msg)

	return vm, cmd
}

func (vm viewerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, vm.keys.Quit):
		vm.quitting = true
		return vm, tea.Quit

	case key.Matches(msg, vm.keys.Prune):
		event := vm.pruneKeys[msg.String()]
		if msg.Alt {
			event.Modifiers |= m.ModAlt
		}

		vm.press(event)

		return vm, nil

	case key.Matches(msg, vm.keys.Toggle):
		if item, ok := vm.locations.SelectedItem().(locationItem); ok {
			vm.session.Toggle(item.state.Path)
			vm.refresh()
		}

		return vm, nil

	case key.Matches(msg, vm.keys.Undo):
		vm.report(vm.session.Undo(), "undone")
		return vm, nil

	case key.Matches(msg, vm.keys.Redo):
		vm.report(vm.session.Redo(), "redone")
		return vm, nil

	case key.Matches(msg, vm.keys.Save):
		vm.report(vm.save(), "saved")
		return vm, nil
	}

	var cmd tea.Cmd

	vm.locations, cmd = vm.locations.Update(msg)

	return vm, cmd
}

func (vm *viewerModel) press(event m.KeyEvent) {
	handled, err := vm.session.Press(event)
	vm.refresh()

	switch {
	case err != nil:
		vm.status, vm.statusErr = err.Error(), true
	case !handled:
		vm.status, vm.statusErr = fmt.Sprintf("%s not handled", event.Key), true
	}
}

func (vm *viewerModel) report(err error, done string) {
	vm.refresh()

	if err != nil {
		vm.status, vm.statusErr = err.Error(), true
		return
	}

	vm.status, vm.statusErr = done, false
}

// refresh reloads the session state into the list, keeping the cursor in place.
func (vm *viewerModel) refresh() {
	vm.state = vm.session.State()
	vm.status, vm.statusErr = vm.state.Status, false

	items := make([]list.Item, 0, len(vm.state.Locations))
	for _, location := range vm.state.Locations {
		items = append(items, locationItem{state: location})
	}

	index := vm.locations.Index()
	vm.locations.SetItems(items)

	if index >= len(items) {
		index = len(items) - 1
	}

	if index >= 0 {
		vm.locations.Select(index)
	}
}

func (vm viewerModel) View() string {
	if vm.quitting {
		return ""
	}

	var b strings.Builder

	vm.renderHeader(&b)

	if len(vm.state.Locations) == 0 {
		b.WriteString(labelStyle.Render("  nothing to show") + "\n")
	} else {
		b.WriteString(vm.locations.View() + "\n")
	}

	vm.renderStatus(&b)
	b.WriteString(vm.help.View(vm.keys))

	return b.String()
}

func (vm viewerModel) renderHeader(b *strings.Builder) {
	scope := vm.state.Scope
	if scope == "" {
		scope = "none"
	}

	viewed := vm.state.Viewed
	if viewed == "" {
		viewed = "none"
	}

	title := string(vm.state.Document)
	if vm.state.Dirty {
		title += " *"
	}

	line := fmt.Sprintf("%s  %s %s  %s %s",
		titleStyle.Render(title),
		labelStyle.Render("scope"),
		valueStyle.Render(scope),
		labelStyle.Render("viewing"),
		valueStyle.Render(viewed),
	)
	if vm.state.ReadOnly {
		line += "  " + readOnlyStyle.Render("read-only")
	}

	b.WriteString(line + "\n\n")
}

func (vm viewerModel) renderStatus(b *strings.Builder) {
	b.WriteString("\n")

	switch {
	case vm.status == "":
		b.WriteString("\n")
	case vm.statusErr:
		b.WriteString(errorStyle.Render(vm.status) + "\n")
	default:
		b.WriteString(statusStyle.Render(vm.status) + "\n")
	}
}

