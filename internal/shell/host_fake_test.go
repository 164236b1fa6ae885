package shell

import (
	"fmt"
	"testing"

	"github.com/iceinvein/bootleg-msn/internal/config"
	"github.com/iceinvein/bootleg-msn/internal/host"
	"github.com/iceinvein/bootleg-msn/internal/store"
)

// fakeEvent records an EmitEvent call.
type fakeEvent struct {
	name string
	data []any
}

type fakeWindow struct {
	opts       host.WindowOptions
	hidden     bool
	destroyed  bool
	focused    bool
	maximized  bool
	minimized  bool
	x, y       int
	w, h       int
	focusCalls int
	events     []fakeEvent
	mgr        *fakeWindowManager
}

func (f *fakeWindow) Label() string { return f.opts.Label }
func (f *fakeWindow) Show() error {
	f.hidden = false
	return nil
}
func (f *fakeWindow) Hide() error {
	f.hidden = true
	return nil
}
func (f *fakeWindow) Focus() error {
	f.focused = true
	f.focusCalls++
	return nil
}
func (f *fakeWindow) IsFocused() bool        { return f.focused }
func (f *fakeWindow) IsMaximized() bool      { return f.maximized }
func (f *fakeWindow) IsMinimized() bool      { return f.minimized }
func (f *fakeWindow) Position() (int, int)   { return f.x, f.y }
func (f *fakeWindow) Size() (int, int)       { return f.w, f.h }
func (f *fakeWindow) SetPosition(x, y int)   { f.x, f.y = x, y }
func (f *fakeWindow) SetSize(w, h int)       { f.w, f.h = w, h }
func (f *fakeWindow) EmitEvent(name string, data ...any) {
	f.events = append(f.events, fakeEvent{name: name, data: data})
}

type fakeWindowManager struct {
	windows map[string]*fakeWindow
	shell   *Shell // for routing Close through OnMainWindowClosing
}

// Close mirrors the host runtime: a close request on a HideOnClose
// window goes through the closing hook, which may veto it.
func (f *fakeWindow) Close() error {
	if f.opts.HideOnClose && f.mgr != nil && f.mgr.shell != nil {
		if f.mgr.shell.OnMainWindowClosing(f) {
			return nil
		}
	}
	f.destroyed = true
	if f.mgr != nil {
		delete(f.mgr.windows, f.opts.Label)
	}
	return nil
}

func (m *fakeWindowManager) Get(label string) (host.Window, bool) {
	w, ok := m.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}

func (m *fakeWindowManager) Create(opts host.WindowOptions) (host.Window, error) {
	if _, ok := m.windows[opts.Label]; ok {
		return nil, fmt.Errorf("window %q already exists", opts.Label)
	}
	w := &fakeWindow{opts: opts, mgr: m}
	m.windows[opts.Label] = w
	return w, nil
}

type fakeTray struct {
	tooltip   string
	icon      []byte
	menu      []host.MenuItem
	leftClick func()
}

func (t *fakeTray) SetTooltip(tooltip string)      { t.tooltip = tooltip }
func (t *fakeTray) SetIcon(png []byte)             { t.icon = png }
func (t *fakeTray) SetMenu(items []host.MenuItem)  { t.menu = items }
func (t *fakeTray) OnLeftClick(fn func())          { t.leftClick = fn }

type fakeNotifier struct {
	notified []host.Notification
	state    host.PermissionState
	err      error
}

func (n *fakeNotifier) RequestPermission() (host.PermissionState, error) { return n.state, n.err }
func (n *fakeNotifier) CheckPermission() (host.PermissionState, error)   { return n.state, n.err }
func (n *fakeNotifier) Notify(notif host.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.notified = append(n.notified, notif)
	return nil
}

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) OpenURL(url string) error {
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, url)
	return nil
}

// fakeHost bundles the fakes for assertions.
type fakeHost struct {
	windows  *fakeWindowManager
	tray     *fakeTray
	notifier *fakeNotifier
	opener   *fakeOpener
	main     *fakeWindow
	quits    int
}

// newTestShell builds a Shell over fake backends and temp-dir stores,
// with the primary window pre-created in close-to-tray mode.
func newTestShell(t *testing.T) (*Shell, *fakeHost) {
	t.Helper()

	fh := &fakeHost{
		windows:  &fakeWindowManager{windows: map[string]*fakeWindow{}},
		tray:     &fakeTray{},
		notifier: &fakeNotifier{state: host.PermissionGranted},
		opener:   &fakeOpener{},
	}
	fh.main = &fakeWindow{
		opts: host.WindowOptions{Label: MainWindowLabel, HideOnClose: true},
		w:    1200, h: 800,
		mgr: fh.windows,
	}
	fh.windows.windows[MainWindowLabel] = fh.main

	provider := &host.Provider{
		Windows:  fh.windows,
		Tray:     fh.tray,
		Notifier: fh.notifier,
		Opener:   fh.opener,
		Quit:     func() { fh.quits++ },
	}

	stores, err := OpenStores(t.TempDir())
	if err != nil {
		t.Fatalf("open stores: %v", err)
	}

	sh := New(provider, stores, config.Default(), nil)
	fh.windows.shell = sh
	return sh, fh
}

// storeLen is a small helper for asserting pending-notification counts.
func storeLen(s *store.Store) int { return s.Len() }
