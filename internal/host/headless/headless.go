// Package headless is the host backend for agent-bridge mode: real
// notifications and URL opening without a window host. Window and tray
// operations report unavailability instead of erroring at startup.
package headless

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/iceinvein/bootleg-msn/internal/host"
	"github.com/iceinvein/bootleg-msn/internal/host/sysopen"
)

// NewProvider builds a headless host provider.
func NewProvider() *host.Provider {
	return &host.Provider{
		Windows:  windowManager{},
		Tray:     noopTray{},
		Notifier: notifier{},
		Opener:   opener{},
	}
}

// windowManager has no windows to offer.
type windowManager struct{}

func (windowManager) Get(string) (host.Window, bool) { return nil, false }

func (windowManager) Create(opts host.WindowOptions) (host.Window, error) {
	return nil, fmt.Errorf("window %q unavailable in headless mode", opts.Label)
}

// noopTray swallows tray updates.
type noopTray struct{}

func (noopTray) SetTooltip(string)       {}
func (noopTray) SetIcon([]byte)          {}
func (noopTray) SetMenu([]host.MenuItem) {}
func (noopTray) OnLeftClick(func())      {}

type notifier struct{}

func (notifier) RequestPermission() (host.PermissionState, error) {
	return host.PermissionGranted, nil
}

func (notifier) CheckPermission() (host.PermissionState, error) {
	return host.PermissionGranted, nil
}

func (notifier) Notify(notif host.Notification) error {
	if notif.Sound {
		return beeep.Alert(notif.Title, notif.Body, "")
	}
	return beeep.Notify(notif.Title, notif.Body, "")
}

type opener struct{}

func (opener) OpenURL(url string) error {
	return sysopen.URL(url)
}
