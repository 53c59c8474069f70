package components

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/Tiliavir/hyprkit/internal/hadith"
	"github.com/Tiliavir/hyprkit/internal/ui"
)

// Messages shown in place of the hadith body.
const (
	MsgFetching        = "Fetching Hadith..."
	MsgConnectionError = "Error: Could not connect to sunnah.com. Please check your internet connection."
	MsgNotFound        = "Could not find Hadith content."
	MsgUnexpected      = "An unexpected error occurred while fetching the Hadith."
)

// HadithFetcher downloads hadith n.
type HadithFetcher interface {
	Fetch(ctx context.Context, n int) (hadith.Hadith, error)
	URL(n int) string
}

type hadithMsg struct {
	number int
	hadith hadith.Hadith
	err    error
}

// HadithView shows one hadith at a time and fetches another on demand.
type HadithView struct {
	ctx     context.Context
	fetcher HadithFetcher
	pick    func() int
	logger  *zap.Logger

	theme    ui.Theme
	keys     ui.KeyMap
	spinner  spinner.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer

	loading bool
	current *hadith.Hadith
	body    string
	status  string
	err     error

	Width  int
	Height int
}

// NewHadithView creates the viewer. pick chooses the number of every fetch.
func NewHadithView(ctx context.Context, fetcher HadithFetcher, pick func() int, theme ui.Theme, logger *zap.Logger) HadithView {
	if logger == nil {
		logger = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Title.UnsetMargins().UnsetPadding()

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	v := HadithView{
		ctx:      ctx,
		fetcher:  fetcher,
		pick:     pick,
		logger:   logger,
		theme:    theme,
		keys:     ui.DefaultKeyMap(),
		spinner:  sp,
		viewport: vp,
		loading:  true,
		body:     MsgFetching,
		status:   "Connecting to sunnah.com...",
		Width:    80,
		Height:   24,
	}
	v.renderer = newRenderer(76)
	return v
}

func newRenderer(wrap int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// Init starts the first fetch.
func (v HadithView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.fetchCmd(v.pick()))
}

func (v HadithView) fetchCmd(n int) tea.Cmd {
	ctx, fetcher := v.ctx, v.fetcher
	return func() tea.Msg {
		h, err := fetcher.Fetch(ctx, n)
		return hadithMsg{number: n, hadith: h, err: err}
	}
}

// Update handles messages.
func (v HadithView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Next):
			if v.loading {
				return v, nil
			}
			n := v.pick()
			v.loading = true
			v.err = nil
			v.status = "Fetching from " + v.fetcher.URL(n) + "..."
			return v, tea.Batch(v.spinner.Tick, v.fetchCmd(n))
		}

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case hadithMsg:
		v.loading = false
		v.applyResult(msg)
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *HadithView) applyResult(msg hadithMsg) {
	if msg.err != nil {
		v.err = msg.err
		v.logger.Warn("hadith fetch failed", zap.Int("number", msg.number), zap.Error(msg.err))
		var connErr *hadith.ConnectionError
		switch {
		case errors.As(msg.err, &connErr):
			v.body = MsgConnectionError
			v.status = fmt.Sprintf("Connection error: %v", connErr.Err)
		case errors.Is(msg.err, hadith.ErrNotFound):
			v.body = MsgNotFound
			v.status = "Failed to parse page."
		default:
			v.body = MsgUnexpected
			v.status = fmt.Sprintf("Error: %v", msg.err)
		}
		v.render()
		return
	}

	h := msg.hadith
	v.current = &h
	v.err = nil
	v.status = fmt.Sprintf("Fetched Hadith %d", msg.number)
	v.render()
}

// render shows the last fetch error if there is one, else the current hadith.
func (v *HadithView) render() {
	if v.err != nil {
		v.viewport.SetContent(v.theme.Error.Render(v.body))
		return
	}
	if v.current == nil {
		return
	}
	v.body = v.current.String()
	content := v.body
	if v.renderer != nil {
		if out, err := v.renderer.Render(v.current.Markdown()); err == nil {
			content = out
		}
	}
	v.viewport.SetContent(content)
	v.viewport.GotoTop()
}

// SetSize updates the viewport and re-wraps the current hadith.
func (v *HadithView) SetSize(width, height int) {
	v.Width = width
	v.Height = height

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
	v.renderer = newRenderer(contentWidth - 4)
	v.render()
}

// Loading reports whether a fetch is in flight.
func (v HadithView) Loading() bool { return v.loading }

// Current returns the displayed hadith, if any.
func (v HadithView) Current() (hadith.Hadith, bool) {
	if v.current == nil {
		return hadith.Hadith{}, false
	}
	return *v.current, true
}

// Body returns the plain text shown in the viewport.
func (v HadithView) Body() string { return v.body }

// Status returns the status line text.
func (v HadithView) Status() string { return v.status }

// Err returns the error of the last fetch.
func (v HadithView) Err() error { return v.err }

// View renders the viewer.
func (v HadithView) View() string {
	var b strings.Builder
	b.WriteString(v.theme.Title.Render("Sunnah"))
	b.WriteString("\n")
	if v.loading && v.current == nil {
		b.WriteString(v.spinner.View() + " " + v.theme.Description.Render(MsgFetching))
	} else {
		b.WriteString(v.viewport.View())
	}
	b.WriteString("\n")
	status := v.status
	if v.loading {
		status = v.spinner.View() + " " + status
	}
	if v.err != nil {
		b.WriteString(v.theme.Error.Render(status))
	} else {
		b.WriteString(v.theme.Status.Render(status))
	}
	b.WriteString("\n")
	b.WriteString(v.theme.Help.Render("n/enter new hadith · ↑/↓ scroll · q quit"))
	return v.theme.App.Render(b.String())
}
