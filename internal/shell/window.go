package shell

import (
	"fmt"
	"net/url"

	"github.com/iceinvein/bootleg-msn/internal/host"
)

// Chat window dimensions.
const (
	chatWindowWidth     = 600
	chatWindowHeight    = 500
	chatWindowMinWidth  = 400
	chatWindowMinHeight = 300
)

// WindowConfig is the persisted geometry of one window.
type WindowConfig struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	X         *int `json:"x,omitempty"`
	Y         *int `json:"y,omitempty"`
	Maximized bool `json:"maximized"`
	Minimized bool `json:"minimized"`
}

// ChatWindowLabel derives the host window label for a chat identifier.
// Host labels only allow [A-Za-z0-9_-]; every other character maps to
// a hyphen so create and close agree on the label for the same input.
func ChatWindowLabel(chatID string) string {
	out := make([]byte, 0, len(chatID))
	for i := 0; i < len(chatID); i++ {
		c := chatID[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
			out = append(out, c)
		default:
			out = append(out, '-')
		}
	}
	return "chat-" + string(out)
}

// CreateChatWindow opens a chat window for chatID, or focuses it if one
// with the same derived label is already open.
func (s *Shell) CreateChatWindow(chatID, contactName string) error {
	label := ChatWindowLabel(chatID)

	if w, ok := s.host.Windows.Get(label); ok {
		if err := w.Focus(); err != nil {
			return fmt.Errorf("focus chat window: %v", err)
		}
		return nil
	}

	// The renderer reads ?chat=... and window=chat to open in
	// chat-only mode.
	route := fmt.Sprintf("/?chat=%s&window=chat", url.QueryEscape(chatID))

	_, err := s.host.Windows.Create(host.WindowOptions{
		Label:     label,
		Title:     fmt.Sprintf("Chat with %s", contactName),
		URL:       route,
		Width:     chatWindowWidth,
		Height:    chatWindowHeight,
		MinWidth:  chatWindowMinWidth,
		MinHeight: chatWindowMinHeight,
		Center:    true,
	})
	if err != nil {
		return fmt.Errorf("create chat window: %v", err)
	}
	s.log.Debug("chat window created", "label", label, "contact", contactName)
	return nil
}

// CloseChatWindow closes the window for chatID, using the same label
// derivation as CreateChatWindow. A window that is not open is not an
// error.
func (s *Shell) CloseChatWindow(chatID string) error {
	label := ChatWindowLabel(chatID)
	w, ok := s.host.Windows.Get(label)
	if !ok {
		return nil
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close chat window: %v", err)
	}
	return nil
}

// MinimizeToTray hides the primary window.
func (s *Shell) MinimizeToTray() error {
	w, ok := s.mainWindow()
	if !ok {
		return fmt.Errorf("main window not available")
	}
	if err := w.Hide(); err != nil {
		return fmt.Errorf("hide main window: %v", err)
	}
	return nil
}

// RestoreFromTray shows and focuses the primary window.
func (s *Shell) RestoreFromTray() error {
	w, ok := s.mainWindow()
	if !ok {
		return fmt.Errorf("main window not available")
	}
	if err := w.Show(); err != nil {
		return fmt.Errorf("show main window: %v", err)
	}
	if err := w.Focus(); err != nil {
		return fmt.Errorf("focus main window: %v", err)
	}
	return nil
}

// OnMainWindowClosing implements close-to-tray: the primary window is
// hidden and the close is vetoed, so the process stays tray-resident.
// Returns true when the close should be cancelled.
func (s *Shell) OnMainWindowClosing(w host.Window) bool {
	if w.Label() != MainWindowLabel {
		return false
	}
	_ = w.Hide()
	return true
}

// SaveWindowState persists config under the window label.
func (s *Shell) SaveWindowState(windowLabel string, cfg WindowConfig) error {
	if err := s.stores.Windows.Set(windowLabel, cfg); err != nil {
		return err
	}
	return s.stores.Windows.Save()
}

// LoadWindowState returns the saved config for the label, or nil when
// none has been saved.
func (s *Shell) LoadWindowState(windowLabel string) (*WindowConfig, error) {
	var cfg WindowConfig
	ok, err := s.stores.Windows.Get(windowLabel, &cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &cfg, nil
}

// PersistWindowState captures the live geometry of the labelled window
// into the window-state store.
func (s *Shell) PersistWindowState(windowLabel string) error {
	w, ok := s.host.Windows.Get(windowLabel)
	if !ok {
		return fmt.Errorf("window %q not available", windowLabel)
	}
	x, y := w.Position()
	width, height := w.Size()
	cfg := WindowConfig{
		Width:     width,
		Height:    height,
		X:         &x,
		Y:         &y,
		Maximized: w.IsMaximized(),
		Minimized: w.IsMinimized(),
	}
	return s.SaveWindowState(windowLabel, cfg)
}
