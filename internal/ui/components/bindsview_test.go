package components

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiliavir/hyprkit/internal/model"
)

func sampleGroups() []model.BindGroup {
	return []model.BindGroup{
		{Category: model.CategoryWorkspaces},
		{Category: model.CategoryWindows, Binds: []model.Bind{
			{Keys: "SUPER, Q", Description: "Close window", Category: model.CategoryWindows},
		}},
		{Category: model.CategoryApps, Binds: []model.Bind{
			{Keys: "SUPER, RETURN", Description: "Launch terminal", Category: model.CategoryApps},
		}},
	}
}

type fakeLoader struct {
	calls  int
	groups []model.BindGroup
	err    error
}

func (f *fakeLoader) load(string) ([]model.BindGroup, error) {
	f.calls++
	return f.groups, f.err
}

func newTestBindsView(l *fakeLoader) BindsView {
	return NewBindsView(context.Background(), BindsOptions{
		Path:  "/tmp/binds.conf",
		Load:  l.load,
		Theme: testTheme(),
	})
}

func drive(t *testing.T, v BindsView, cmd tea.Cmd) BindsView {
	t.Helper()
	for _, msg := range collect(cmd) {
		m, _ := v.Update(msg)
		v = m.(BindsView)
	}
	return v
}

func TestBindsView_InitLoads(t *testing.T) {
	l := &fakeLoader{groups: sampleGroups()}
	v := newTestBindsView(l)
	v = drive(t, v, v.Init())

	if l.calls != 1 {
		t.Fatalf("loader called %d times, want 1", l.calls)
	}
	if len(v.Groups()) != 3 {
		t.Errorf("Groups() = %d, want 3", len(v.Groups()))
	}
	if v.Err() != nil {
		t.Errorf("Err() = %v", v.Err())
	}
	if !strings.Contains(v.Status(), "2 binds") {
		t.Errorf("Status() = %q, want bind count", v.Status())
	}
}

func TestBindsView_ContentSkipsEmptyCategories(t *testing.T) {
	l := &fakeLoader{groups: sampleGroups()}
	v := newTestBindsView(l)
	v = drive(t, v, v.Init())

	content := v.Content()
	for _, want := range []string{"WINDOW MANAGEMENT", "APPS", "KEYBIND", "DESCRIPTION", "SUPER, Q", "Close window"} {
		if !strings.Contains(content, want) {
			t.Errorf("Content() missing %q", want)
		}
	}
	if strings.Contains(content, "WORKSPACES") {
		t.Error("Content() should not render empty categories")
	}
	if strings.Index(content, "WINDOW MANAGEMENT") > strings.Index(content, "APPS") {
		t.Error("categories out of display order")
	}
}

func TestBindsView_ReloadKey(t *testing.T) {
	l := &fakeLoader{groups: sampleGroups()}
	v := newTestBindsView(l)
	v = drive(t, v, v.Init())

	l.groups = sampleGroups()[:2]
	m, cmd := v.Update(keyRune('r'))
	v = drive(t, m.(BindsView), cmd)

	if l.calls != 2 {
		t.Errorf("loader called %d times, want 2", l.calls)
	}
	if len(v.Groups()) != 2 {
		t.Errorf("Groups() = %d after reload, want 2", len(v.Groups()))
	}
}

func TestBindsView_ReloadErrorKeepsSheet(t *testing.T) {
	l := &fakeLoader{groups: sampleGroups()}
	v := newTestBindsView(l)
	v = drive(t, v, v.Init())

	l.groups, l.err = nil, errors.New("permission denied")
	m, cmd := v.Update(FileChangedMsg{})
	v = drive(t, m.(BindsView), cmd)

	if v.Err() == nil {
		t.Fatal("Err() should report the failed reload")
	}
	if len(v.Groups()) != 3 {
		t.Errorf("Groups() = %d, previous sheet should stay", len(v.Groups()))
	}
	if !strings.Contains(v.Status(), "permission denied") {
		t.Errorf("Status() = %q", v.Status())
	}
}

func TestBindsView_Quit(t *testing.T) {
	v := newTestBindsView(&fakeLoader{})
	for _, k := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyEsc}} {
		_, cmd := v.Update(k)
		if !isQuit(cmd) {
			t.Errorf("%s should quit", k.String())
		}
	}
}

func TestBindsView_WindowSize(t *testing.T) {
	v := newTestBindsView(&fakeLoader{groups: sampleGroups()})
	m, _ := v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	v = m.(BindsView)
	if v.Width != 120 || v.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", v.Width, v.Height)
	}

	// Should not panic on tiny dimensions
	m, _ = v.Update(tea.WindowSizeMsg{Width: 0, Height: 0})
	_ = m.View()
}

func TestBindsView_WatchClosedChannelEndsChain(t *testing.T) {
	ch := make(chan struct{})
	close(ch)
	if msg := waitForChange(ch)(); msg != nil {
		t.Errorf("waitForChange on closed channel = %v, want nil", msg)
	}

	ch2 := make(chan struct{}, 1)
	ch2 <- struct{}{}
	if _, ok := waitForChange(ch2)().(FileChangedMsg); !ok {
		t.Error("waitForChange should report FileChangedMsg")
	}
}
