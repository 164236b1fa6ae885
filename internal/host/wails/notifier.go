package wails

import (
	"os"
	"path/filepath"

	"github.com/gen2brain/beeep"

	"github.com/iceinvein/bootleg-msn/internal/config"
	"github.com/iceinvein/bootleg-msn/internal/host"
	"github.com/iceinvein/bootleg-msn/internal/icon"
)

// notifier shows OS notifications through beeep. Desktop notifiers on
// the platforms beeep targets do not gate on a runtime permission
// prompt, so the permission state is granted; the four-state mapping in
// host.PermissionState is kept for backends that do prompt.
type notifier struct {
	iconPath string
}

func newNotifier(cfg *config.Config) *notifier {
	return &notifier{iconPath: ensureIconFile(cfg.DataDir)}
}

// ensureIconFile writes the application icon beside the stores so the
// system notifier can reference it by path. Failure just means
// notifications show without an icon.
func ensureIconFile(dataDir string) string {
	if dataDir == "" {
		return ""
	}
	png, err := icon.Render(0)
	if err != nil {
		return ""
	}
	path := filepath.Join(dataDir, "app-icon.png")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return ""
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return ""
	}
	return path
}

func (n *notifier) RequestPermission() (host.PermissionState, error) {
	return host.PermissionGranted, nil
}

func (n *notifier) CheckPermission() (host.PermissionState, error) {
	return host.PermissionGranted, nil
}

func (n *notifier) Notify(notif host.Notification) error {
	if notif.Sound {
		return beeep.Alert(notif.Title, notif.Body, n.iconPath)
	}
	return beeep.Notify(notif.Title, notif.Body, n.iconPath)
}
