package components

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiliavir/hyprkit/internal/hadith"
)

type fakeHadithFetcher struct {
	calls []int
	h     hadith.Hadith
	err   error
}

func (f *fakeHadithFetcher) Fetch(_ context.Context, n int) (hadith.Hadith, error) {
	f.calls = append(f.calls, n)
	h := f.h
	h.Number = n
	return h, f.err
}

func (f *fakeHadithFetcher) URL(n int) string {
	return fmt.Sprintf("https://sunnah.com/bukhari:%d", n)
}

func sequence(nums ...int) func() int {
	i := 0
	return func() int {
		n := nums[i%len(nums)]
		i++
		return n
	}
}

func newTestHadithView(f *fakeHadithFetcher, pick func() int) HadithView {
	return NewHadithView(context.Background(), f, pick, testTheme(), nil)
}

func TestHadithView_FetchSuccess(t *testing.T) {
	f := &fakeHadithFetcher{h: hadith.Hadith{
		Collection: "bukhari",
		Text:       "Actions are judged by intentions.\n",
		Reference:  "Sahih al-Bukhari 1",
	}}
	v := newTestHadithView(f, sequence(1))
	if !v.Loading() {
		t.Fatal("view should start loading")
	}

	next, _ := v.Update(hadithMsg{number: 1, hadith: hadith.Hadith{Collection: "bukhari", Number: 1, Text: f.h.Text, Reference: f.h.Reference}})
	v = next.(HadithView)

	if v.Loading() {
		t.Error("Loading() should be false after the result")
	}
	h, ok := v.Current()
	if !ok || h.Number != 1 {
		t.Fatalf("Current() = %v, %v", h, ok)
	}
	if !strings.Contains(v.Body(), "Actions are judged") || !strings.Contains(v.Body(), "Sahih al-Bukhari 1") {
		t.Errorf("Body() = %q", v.Body())
	}
	if v.Status() != "Fetched Hadith 1" {
		t.Errorf("Status() = %q", v.Status())
	}
}

func TestHadithView_InitFetchesPickedNumber(t *testing.T) {
	f := &fakeHadithFetcher{h: hadith.Hadith{Text: "x\n"}}
	v := newTestHadithView(f, sequence(7))

	for _, msg := range collect(v.Init()) {
		next, _ := v.Update(msg)
		v = next.(HadithView)
	}
	if len(f.calls) != 1 || f.calls[0] != 7 {
		t.Errorf("fetch calls = %v, want [7]", f.calls)
	}
	if h, ok := v.Current(); !ok || h.Number != 7 {
		t.Errorf("Current() = %v, %v", h, ok)
	}
}

func TestHadithView_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantBody   string
		wantStatus string
	}{
		{
			name:       "connection",
			err:        &hadith.ConnectionError{URL: "u", Err: errors.New("dial tcp: refused")},
			wantBody:   MsgConnectionError,
			wantStatus: "Connection error: dial tcp: refused",
		},
		{
			name:       "parse",
			err:        hadith.ErrNotFound,
			wantBody:   MsgNotFound,
			wantStatus: "Failed to parse page.",
		},
		{
			name:       "other",
			err:        errors.New("boom"),
			wantBody:   MsgUnexpected,
			wantStatus: "Error: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestHadithView(&fakeHadithFetcher{}, sequence(1))
			next, _ := v.Update(hadithMsg{number: 1, err: tt.err})
			v = next.(HadithView)

			if v.Body() != tt.wantBody {
				t.Errorf("Body() = %q, want %q", v.Body(), tt.wantBody)
			}
			if v.Status() != tt.wantStatus {
				t.Errorf("Status() = %q, want %q", v.Status(), tt.wantStatus)
			}
			if v.Err() == nil {
				t.Error("Err() should be set")
			}
			if v.Loading() {
				t.Error("Loading() should be false")
			}
		})
	}
}

func TestHadithView_InFlightSuppressesRefetch(t *testing.T) {
	picks := 0
	v := newTestHadithView(&fakeHadithFetcher{}, func() int { picks++; return 3 })

	_, cmd := v.Update(keyRune('n'))
	if cmd != nil {
		t.Error("refetch while loading should be ignored")
	}
	if picks != 0 {
		t.Errorf("pick called %d times while loading", picks)
	}
}

func TestHadithView_NextFetchesAgain(t *testing.T) {
	f := &fakeHadithFetcher{h: hadith.Hadith{Text: "x\n"}}
	v := newTestHadithView(f, sequence(2))
	next, _ := v.Update(hadithMsg{number: 1, hadith: hadith.Hadith{Number: 1, Text: "x\n"}})
	v = next.(HadithView)

	next, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v = next.(HadithView)
	if cmd == nil {
		t.Fatal("enter should start a fetch")
	}
	if !v.Loading() {
		t.Error("Loading() should be true during the fetch")
	}
	if !strings.HasPrefix(v.Status(), "Fetching from ") {
		t.Errorf("Status() = %q", v.Status())
	}
	for _, msg := range collect(cmd) {
		next, _ = v.Update(msg)
		v = next.(HadithView)
	}
	if len(f.calls) != 1 || f.calls[0] != 2 {
		t.Errorf("fetch calls = %v, want [2]", f.calls)
	}
}

func TestHadithView_Quit(t *testing.T) {
	v := newTestHadithView(&fakeHadithFetcher{}, sequence(1))
	_, cmd := v.Update(keyRune('q'))
	if !isQuit(cmd) {
		t.Error("q should quit")
	}
}

func TestHadithView_ResizeRerenders(t *testing.T) {
	v := newTestHadithView(&fakeHadithFetcher{}, sequence(1))
	next, _ := v.Update(hadithMsg{number: 1, hadith: hadith.Hadith{Collection: "bukhari", Number: 1, Text: "body\n"}})
	next, _ = next.(HadithView).Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	v = next.(HadithView)
	if v.Width != 60 {
		t.Errorf("Width = %d", v.Width)
	}
	if !strings.Contains(v.View(), "body") {
		t.Error("View() should contain the rendered hadith")
	}
}

func TestHadithView_ResizeKeepsError(t *testing.T) {
	v := newTestHadithView(&fakeHadithFetcher{}, sequence(1))
	next, _ := v.Update(hadithMsg{number: 1, hadith: hadith.Hadith{Collection: "bukhari", Number: 1, Text: "old body\n"}})
	next, _ = next.(HadithView).Update(hadithMsg{number: 2, err: hadith.ErrNotFound})
	next, _ = next.(HadithView).Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	v = next.(HadithView)

	if v.Body() != MsgNotFound {
		t.Errorf("Body() = %q, want %q", v.Body(), MsgNotFound)
	}
	view := v.View()
	if !strings.Contains(view, MsgNotFound) {
		t.Error("View() should still show the fetch error after a resize")
	}
	if strings.Contains(view, "old body") {
		t.Error("View() should not fall back to the previous hadith")
	}
}
