package shell

import (
	"fmt"

	"github.com/iceinvein/bootleg-msn/internal/host"
	"github.com/iceinvein/bootleg-msn/internal/icon"
)

// TrayTooltip renders the tray tooltip for an unread count.
func (s *Shell) TrayTooltip(unread int) string {
	if unread > 0 {
		return fmt.Sprintf("%s - %d unread messages", s.cfg.AppName, unread)
	}
	return s.cfg.AppName
}

// SetUnreadCount updates the tray tooltip and the unread badge on the
// tray icon. Negative counts are rejected.
func (s *Shell) SetUnreadCount(count int) error {
	if count < 0 {
		return fmt.Errorf("unread count must be non-negative, got %d", count)
	}

	s.mu.Lock()
	s.unread = count
	s.mu.Unlock()

	s.host.Tray.SetTooltip(s.TrayTooltip(count))

	img, err := icon.Render(count)
	if err != nil {
		return fmt.Errorf("render tray icon: %v", err)
	}
	s.host.Tray.SetIcon(img)
	return nil
}

// UnreadCount returns the last count passed to SetUnreadCount.
func (s *Shell) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

// SetupTray installs the tray menu (Show / Hide / Quit), the left-click
// handler that restores the primary window, and the initial icon and
// tooltip. quit terminates the application.
func (s *Shell) SetupTray(quit func()) error {
	s.host.Tray.SetMenu(s.trayMenu(quit))
	s.host.Tray.OnLeftClick(func() {
		if err := s.RestoreFromTray(); err != nil {
			s.log.Warn("restore from tray", "error", err)
		}
	})
	return s.SetUnreadCount(0)
}

// trayMenu builds the static tray menu.
func (s *Shell) trayMenu(quit func()) []host.MenuItem {
	return []host.MenuItem{
		{Label: fmt.Sprintf("Show %s", s.cfg.AppName), OnClick: func() {
			if err := s.RestoreFromTray(); err != nil {
				s.log.Warn("restore from tray", "error", err)
			}
		}},
		host.Separator(),
		{Label: "Hide to Tray", OnClick: func() {
			if err := s.MinimizeToTray(); err != nil {
				s.log.Warn("minimize to tray", "error", err)
			}
		}},
		host.Separator(),
		{Label: "Quit", OnClick: quit},
	}
}
