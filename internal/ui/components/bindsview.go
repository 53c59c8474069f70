package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Tiliavir/hyprkit/internal/binds"
	"github.com/Tiliavir/hyprkit/internal/model"
	"github.com/Tiliavir/hyprkit/internal/ui"
	"github.com/Tiliavir/hyprkit/internal/watch"
)

// BindsLoader reads and categorises a binds file.
type BindsLoader func(path string) ([]model.BindGroup, error)

type (
	bindsLoadedMsg struct {
		groups []model.BindGroup
		err    error
	}
	watchStartedMsg struct{ changes <-chan struct{} }
	watchFailedMsg  struct{ err error }
	// FileChangedMsg is sent when the watched binds file changes on disk.
	FileChangedMsg struct{}
)

// BindsView is the scrollable keybind cheat sheet.
type BindsView struct {
	ctx     context.Context
	path    string
	load    BindsLoader
	watch   bool
	changes <-chan struct{}
	logger  *zap.Logger

	theme    ui.Theme
	keys     ui.KeyMap
	viewport viewport.Model

	groups []model.BindGroup
	err    error
	status string

	Width  int
	Height int
}

// BindsOptions configures NewBindsView.
type BindsOptions struct {
	Path   string
	Load   BindsLoader
	Watch  bool
	Theme  ui.Theme
	Logger *zap.Logger
}

// NewBindsView creates the cheat sheet for opts.Path. The watcher, when
// enabled, lives until ctx is cancelled.
func NewBindsView(ctx context.Context, opts BindsOptions) BindsView {
	load := opts.Load
	if load == nil {
		load = binds.Load
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return BindsView{
		ctx:      ctx,
		path:     opts.Path,
		load:     load,
		watch:    opts.Watch,
		logger:   logger,
		theme:    opts.Theme,
		keys:     ui.DefaultKeyMap(),
		viewport: vp,
		status:   "Loading " + opts.Path,
		Width:    80,
		Height:   24,
	}
}

// Init loads the file and starts the watcher.
func (v BindsView) Init() tea.Cmd {
	if v.watch {
		return tea.Batch(v.loadCmd(), v.startWatchCmd())
	}
	return v.loadCmd()
}

func (v BindsView) loadCmd() tea.Cmd {
	path, load := v.path, v.load
	return func() tea.Msg {
		groups, err := load(path)
		return bindsLoadedMsg{groups: groups, err: err}
	}
}

func (v BindsView) startWatchCmd() tea.Cmd {
	ctx, path, logger := v.ctx, v.path, v.logger
	return func() tea.Msg {
		ch, err := watch.File(ctx, path, watch.DefaultDebounce, logger)
		if err != nil {
			return watchFailedMsg{err: err}
		}
		return watchStartedMsg{changes: ch}
	}
}

// waitForChange blocks on the watcher channel. A closed channel ends the
// chain by returning no message.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return FileChangedMsg{}
	}
}

// Update handles messages.
func (v BindsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Reload):
			v.status = "Reloading " + v.path
			return v, v.loadCmd()
		}

	case bindsLoadedMsg:
		v.applyLoad(msg.groups, msg.err)
		return v, nil

	case watchStartedMsg:
		v.changes = msg.changes
		return v, waitForChange(msg.changes)

	case watchFailedMsg:
		v.logger.Warn("live reload disabled", zap.Error(msg.err))
		return v, nil

	case FileChangedMsg:
		v.logger.Debug("binds file changed", zap.String("path", v.path))
		cmds := []tea.Cmd{v.loadCmd()}
		if v.changes != nil {
			cmds = append(cmds, waitForChange(v.changes))
		}
		return v, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *BindsView) applyLoad(groups []model.BindGroup, err error) {
	if err != nil {
		// Keep the last good sheet on screen.
		v.err = err
		v.status = fmt.Sprintf("Error loading binds: %v", err)
		if v.groups == nil {
			v.viewport.SetContent(v.theme.Error.Render("Error loading binds: " + err.Error()))
		}
		return
	}
	v.err = nil
	v.groups = groups
	count := 0
	for _, g := range groups {
		count += len(g.Binds)
	}
	v.status = fmt.Sprintf("%d binds · %s", count, v.path)
	v.viewport.SetContent(v.Content())
}

// SetSize updates the viewport dimensions.
func (v *BindsView) SetSize(width, height int) {
	v.Width = width
	v.Height = height

	// Title (2 lines) plus status and help (3 lines).
	contentHeight := height - 5
	if contentHeight < 3 {
		contentHeight = 3
	}
	contentWidth := width - 2
	if contentWidth < 20 {
		contentWidth = 20
	}
	v.viewport.Width = contentWidth
	v.viewport.Height = contentHeight
	if v.groups != nil {
		v.viewport.SetContent(v.Content())
	}
}

// Groups returns the currently displayed groups.
func (v BindsView) Groups() []model.BindGroup { return v.groups }

// Err returns the last load error, nil after a successful reload.
func (v BindsView) Err() error { return v.err }

// Status returns the status line text.
func (v BindsView) Status() string { return v.status }

// Content renders the non-empty categories as KEYBIND/DESCRIPTION tables.
func (v BindsView) Content() string {
	groups := binds.NonEmpty(v.groups)
	if len(groups) == 0 {
		return v.theme.Help.Render("No documented binds found.")
	}

	keyWidth := len("KEYBIND")
	for _, g := range groups {
		for _, b := range g.Binds {
			if w := lipgloss.Width(b.Keys); w > keyWidth {
				keyWidth = w
			}
		}
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(v.theme.Section.Render(strings.ToUpper(g.Category)))
		b.WriteString("\n")
		b.WriteString(v.theme.ColumnHead.Render(pad("KEYBIND", keyWidth)))
		b.WriteString("  ")
		b.WriteString(v.theme.ColumnHead.Render("DESCRIPTION"))
		b.WriteString("\n")
		for _, bind := range g.Binds {
			b.WriteString(v.theme.Key.Render(pad(bind.Keys, keyWidth)))
			b.WriteString("  ")
			b.WriteString(v.theme.Description.Render(bind.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// View renders the cheat sheet.
func (v BindsView) View() string {
	var b strings.Builder
	b.WriteString(v.theme.Title.Render("HyprBinds"))
	b.WriteString("\n")
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	if v.err != nil {
		b.WriteString(v.theme.Error.Render(v.status))
	} else {
		b.WriteString(v.theme.Status.Render(v.status))
	}
	b.WriteString("\n")
	b.WriteString(v.theme.Help.Render("↑/↓ scroll · r reload · q quit"))
	return v.theme.App.Render(b.String())
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
