package wails

import (
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/iceinvein/bootleg-msn/internal/host"
)

// windowManager implements host.WindowManager over Wails webview
// windows. The Wails runtime serializes operations per window, so the
// label map only needs guarding against concurrent create/get from
// handler goroutines.
type windowManager struct {
	app           *application.App
	mu            sync.Mutex
	windows       map[string]*window
	onMainClosing OnMainClosing
}

func (m *windowManager) Get(label string) (host.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}

func (m *windowManager) Create(opts host.WindowOptions) (host.Window, error) {
	m.mu.Lock()
	if _, ok := m.windows[opts.Label]; ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("window %q already exists", opts.Label)
	}
	m.mu.Unlock()

	win := m.app.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:      opts.Label,
		Title:     opts.Title,
		URL:       opts.URL,
		Width:     opts.Width,
		Height:    opts.Height,
		MinWidth:  opts.MinWidth,
		MinHeight: opts.MinHeight,
	})
	if opts.Center {
		win.Center()
	}

	w := &window{label: opts.Label, win: win, mgr: m}
	m.mu.Lock()
	m.windows[opts.Label] = w
	m.mu.Unlock()

	if opts.HideOnClose {
		win.RegisterHook(events.Common.WindowClosing, func(event *application.WindowEvent) {
			if m.onMainClosing != nil && m.onMainClosing(w) {
				event.Cancel()
			}
		})
	} else {
		win.RegisterHook(events.Common.WindowClosing, func(*application.WindowEvent) {
			m.mu.Lock()
			delete(m.windows, opts.Label)
			m.mu.Unlock()
		})
	}
	return w, nil
}

// window adapts a Wails webview window to host.Window.
type window struct {
	label string
	win   *application.WebviewWindow
	mgr   *windowManager
}

func (w *window) Label() string { return w.label }

func (w *window) Show() error {
	w.win.Show()
	return nil
}

func (w *window) Hide() error {
	w.win.Hide()
	return nil
}

func (w *window) Focus() error {
	w.win.Show()
	w.win.Focus()
	return nil
}

func (w *window) Close() error {
	w.win.Close()
	return nil
}

func (w *window) IsFocused() bool   { return w.win.IsFocused() }
func (w *window) IsMaximized() bool { return w.win.IsMaximised() }
func (w *window) IsMinimized() bool { return w.win.IsMinimised() }

func (w *window) Position() (int, int) { return w.win.Position() }
func (w *window) Size() (int, int)     { return w.win.Size() }

func (w *window) SetPosition(x, y int) { w.win.SetPosition(x, y) }
func (w *window) SetSize(width, height int) {
	w.win.SetSize(width, height)
}

func (w *window) EmitEvent(name string, data ...any) {
	w.win.EmitEvent(name, data...)
}
