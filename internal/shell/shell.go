// Package shell is the orchestration layer of the desktop host: it
// wires chat windows, the tray icon, notification gating and routing,
// and external link handling to the host runtime and the persisted
// stores. Every operation is a short host-API call with validation and
// string formatting around it.
package shell

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/iceinvein/bootleg-msn/internal/config"
	"github.com/iceinvein/bootleg-msn/internal/host"
	"github.com/iceinvein/bootleg-msn/internal/store"
)

// MainWindowLabel is the fixed label of the primary window.
const MainWindowLabel = host.MainWindowLabel

// Stores bundles the three persisted documents.
type Stores struct {
	Windows       *store.Store // window label -> WindowConfig
	Settings      *store.Store // "settings" -> NotificationSettings
	Notifications *store.Store // notification id -> action data
}

// OpenStores opens all stores under dataDir.
func OpenStores(dataDir string) (*Stores, error) {
	windows, err := store.Open(filepath.Join(dataDir, store.WindowStateFile))
	if err != nil {
		return nil, err
	}
	settings, err := store.Open(filepath.Join(dataDir, store.NotificationSettingsFile))
	if err != nil {
		return nil, err
	}
	notifications, err := store.Open(filepath.Join(dataDir, store.NotificationsFile))
	if err != nil {
		return nil, err
	}
	return &Stores{Windows: windows, Settings: settings, Notifications: notifications}, nil
}

// Shell holds the process-scoped handles every handler works against.
type Shell struct {
	host   *host.Provider
	stores *Stores
	cfg    *config.Config
	log    *slog.Logger

	// now is swapped out by quiet-hours tests.
	now func() time.Time

	mu     sync.Mutex
	unread int
}

// New builds a Shell around the given host provider and stores.
func New(provider *host.Provider, stores *Stores, cfg *config.Config, log *slog.Logger) *Shell {
	if log == nil {
		log = slog.Default()
	}
	return &Shell{
		host:   provider,
		stores: stores,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// mainWindow returns the primary window, if the host has one.
func (s *Shell) mainWindow() (host.Window, bool) {
	return s.host.Windows.Get(MainWindowLabel)
}
