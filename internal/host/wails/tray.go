package wails

import (
	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/iceinvein/bootleg-msn/internal/host"
)

// tray adapts the single Wails system tray icon to host.Tray. Created
// once at startup; there is no second tray icon in the process.
type tray struct {
	app *application.App
	st  *application.SystemTray
}

func newTray(app *application.App) *tray {
	return &tray{
		app: app,
		st:  app.SystemTray.New(),
	}
}

func (t *tray) SetTooltip(tooltip string) {
	t.st.SetLabel(tooltip)
}

func (t *tray) SetIcon(png []byte) {
	t.st.SetIcon(png)
}

func (t *tray) SetMenu(items []host.MenuItem) {
	menu := t.app.NewMenu()
	for _, item := range items {
		if item.Separator {
			menu.AddSeparator()
			continue
		}
		onClick := item.OnClick
		menu.Add(item.Label).OnClick(func(*application.Context) {
			if onClick != nil {
				onClick()
			}
		})
	}
	t.st.SetMenu(menu)
}

func (t *tray) OnLeftClick(fn func()) {
	t.st.OnClick(fn)
	t.st.OnRightClick(func() {
		t.st.OpenMenu()
	})
}
