// Package host defines the boundary to the GUI host runtime: windows,
// the system tray, notifications, and the external URL opener. See
// internal/host/wails for the production backend and
// internal/host/headless for the bridge-only one.
package host

// MainWindowLabel is the fixed label of the primary window.
const MainWindowLabel = "main"

// Provider bundles all host backends for the running process.
type Provider struct {
	Windows  WindowManager
	Tray     Tray
	Notifier Notifier
	Opener   Opener

	// Quit terminates the host event loop. Nil in headless mode.
	Quit func()
}

// WindowManager creates and looks up windows by label.
type WindowManager interface {
	// Get returns the window with the given label, if one exists.
	Get(label string) (Window, bool)
	// Create builds and shows a new window. Creating a label that
	// already exists is a backend error; callers should Get first.
	Create(opts WindowOptions) (Window, error)
}

// Window is a single host window identified by its label.
type Window interface {
	Label() string
	Show() error
	Hide() error
	Focus() error
	// Close destroys the window. For windows created with HideOnClose
	// the backend hides instead and the window stays retrievable.
	Close() error
	IsFocused() bool
	IsMaximized() bool
	IsMinimized() bool
	Position() (x, y int)
	Size() (width, height int)
	SetPosition(x, y int)
	SetSize(width, height int)
	// EmitEvent sends a named event to the window's UI layer.
	EmitEvent(name string, data ...any)
}

// Tray is the single process-wide tray icon.
type Tray interface {
	SetTooltip(tooltip string)
	SetIcon(png []byte)
	SetMenu(items []MenuItem)
	// OnLeftClick registers the handler for a left click on the icon.
	OnLeftClick(fn func())
}

// MenuItem is one entry of the tray menu.
type MenuItem struct {
	Label     string
	Separator bool
	OnClick   func()
}

// Separator returns a separator menu item.
func Separator() MenuItem {
	return MenuItem{Separator: true}
}

// Notifier shows OS notifications and reports permission state.
type Notifier interface {
	RequestPermission() (PermissionState, error)
	CheckPermission() (PermissionState, error)
	Notify(n Notification) error
}

// Notification is what a Notifier displays.
type Notification struct {
	Title string
	Body  string
	Sound bool
}

// Opener opens URLs in the system browser.
type Opener interface {
	OpenURL(url string) error
}
