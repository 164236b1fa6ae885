// Package wails is the production host backend: windows, tray and
// events through the Wails v3 runtime, notifications through the
// system notifier, and URL opening through the platform opener.
package wails

import (
	"log/slog"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/iceinvein/bootleg-msn/internal/config"
	"github.com/iceinvein/bootleg-msn/internal/host"
	"github.com/iceinvein/bootleg-msn/internal/icon"
)

// App owns the Wails application and the host provider built on it.
type App struct {
	app  *application.App
	log  *slog.Logger
	wm   *windowManager
	tray *tray
}

// OnMainClosing is consulted when the primary window receives a close
// request; returning true cancels the close. Set before Run.
type OnMainClosing func(w host.Window) bool

// New builds the Wails application, the primary window and the tray
// icon, and returns the App together with its host provider.
func New(cfg *config.Config, log *slog.Logger, onMainClosing OnMainClosing) (*App, *host.Provider) {
	if log == nil {
		log = slog.Default()
	}

	appIcon, _ := icon.Render(0)

	wailsApp := application.New(application.Options{
		Name:        cfg.AppName,
		Description: "Desktop shell for the bootleg MSN Messenger chat application",
		Icon:        appIcon,
		LogLevel:    slog.LevelWarn,
		Mac: application.MacOptions{
			// Keep running in the tray when every window is closed.
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
		Windows: application.WindowsOptions{
			DisableQuitOnLastWindowClosed: true,
		},
		Linux: application.LinuxOptions{
			DisableQuitOnLastWindowClosed: true,
			ProgramName:                   "bootleg-msn",
		},
	})

	a := &App{
		app: wailsApp,
		log: log,
	}
	a.wm = &windowManager{
		app:           wailsApp,
		windows:       map[string]*window{},
		onMainClosing: onMainClosing,
	}
	a.tray = newTray(wailsApp)

	provider := &host.Provider{
		Windows:  a.wm,
		Tray:     a.tray,
		Notifier: newNotifier(cfg),
		Opener:   &opener{},
		Quit:     wailsApp.Quit,
	}
	return a, provider
}

// Geometry carries restored window geometry into CreateMainWindow.
type Geometry struct {
	Width  int
	Height int
	X      *int
	Y      *int
}

// CreateMainWindow creates the primary window in close-to-tray mode,
// restoring saved geometry when given.
func (a *App) CreateMainWindow(cfg *config.Config, saved *Geometry) host.Window {
	opts := host.WindowOptions{
		Label:       host.MainWindowLabel,
		Title:       cfg.AppName,
		URL:         cfg.FrontendURL,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		MinWidth:    cfg.Window.MinWidth,
		MinHeight:   cfg.Window.MinHeight,
		Center:      saved == nil,
		HideOnClose: true,
	}
	if saved != nil {
		opts.Width = saved.Width
		opts.Height = saved.Height
	}
	w, _ := a.wm.Create(opts)
	if saved != nil && saved.X != nil && saved.Y != nil {
		w.SetPosition(*saved.X, *saved.Y)
	}
	return w
}

// OnWindowChanged registers fn to run when the labelled window moves or
// resizes, for geometry persistence.
func (a *App) OnWindowChanged(label string, fn func()) {
	a.wm.mu.Lock()
	w, ok := a.wm.windows[label]
	a.wm.mu.Unlock()
	if !ok {
		return
	}
	w.win.RegisterHook(events.Common.WindowDidMove, func(*application.WindowEvent) { fn() })
	w.win.RegisterHook(events.Common.WindowDidResize, func(*application.WindowEvent) { fn() })
}

// Run starts the host event loop and blocks until quit.
func (a *App) Run() error {
	return a.app.Run()
}
