package shell

import (
	"testing"
)

func TestChatWindowLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"alice", "chat-alice"},
		{"alice_b-2", "chat-alice_b-2"},
		{"alice@example.com", "chat-alice-example-com"},
		{"user name", "chat-user-name"},
		{"a/b\\c", "chat-a-b-c"},
		{"héllo", "chat-h--llo"}, // each non-ASCII byte maps to a hyphen
		{"", "chat-"},
		{"!!!", "chat----"},
	}
	for _, tt := range tests {
		if got := ChatWindowLabel(tt.input); got != tt.want {
			t.Errorf("ChatWindowLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestChatWindowLabel_CreateCloseAgree(t *testing.T) {
	sh, fh := newTestShell(t)

	const chatID = "bob@example.com"
	if err := sh.CreateChatWindow(chatID, "Bob"); err != nil {
		t.Fatal(err)
	}
	label := ChatWindowLabel(chatID)
	if _, ok := fh.windows.windows[label]; !ok {
		t.Fatalf("no window created at label %q", label)
	}

	if err := sh.CloseChatWindow(chatID); err != nil {
		t.Fatal(err)
	}
	if _, ok := fh.windows.windows[label]; ok {
		t.Errorf("window %q still open after close", label)
	}
}

func TestCreateChatWindow_Geometry(t *testing.T) {
	sh, fh := newTestShell(t)

	if err := sh.CreateChatWindow("alice", "Alice"); err != nil {
		t.Fatal(err)
	}
	w := fh.windows.windows["chat-alice"]
	if w == nil {
		t.Fatal("chat window not created")
	}
	opts := w.opts
	if opts.Width != 600 || opts.Height != 500 {
		t.Errorf("size = %dx%d, want 600x500", opts.Width, opts.Height)
	}
	if opts.MinWidth != 400 || opts.MinHeight != 300 {
		t.Errorf("min size = %dx%d, want 400x300", opts.MinWidth, opts.MinHeight)
	}
	if opts.Title != "Chat with Alice" {
		t.Errorf("title = %q, want %q", opts.Title, "Chat with Alice")
	}
	if !opts.Center {
		t.Error("window not centered")
	}
	if opts.URL != "/?chat=alice&window=chat" {
		t.Errorf("route = %q", opts.URL)
	}
}

func TestCreateChatWindow_ExistingFocuses(t *testing.T) {
	sh, fh := newTestShell(t)

	if err := sh.CreateChatWindow("alice", "Alice"); err != nil {
		t.Fatal(err)
	}
	if err := sh.CreateChatWindow("alice", "Alice"); err != nil {
		t.Fatal(err)
	}

	if len(fh.windows.windows) != 2 { // main + one chat window
		t.Fatalf("expected 2 windows, got %d", len(fh.windows.windows))
	}
	w := fh.windows.windows["chat-alice"]
	if w.focusCalls != 1 {
		t.Errorf("existing window focused %d times, want 1", w.focusCalls)
	}
}

func TestCloseChatWindow_NotOpen(t *testing.T) {
	sh, _ := newTestShell(t)
	if err := sh.CloseChatWindow("never-opened"); err != nil {
		t.Errorf("closing an unopened chat window: %v", err)
	}
}

func TestMainWindowCloseIsVetoed(t *testing.T) {
	sh, fh := newTestShell(t)

	if err := fh.main.Close(); err != nil {
		t.Fatal(err)
	}
	if fh.main.destroyed {
		t.Error("main window was destroyed on close")
	}
	if !fh.main.hidden {
		t.Error("main window was not hidden on close")
	}
	if _, ok := sh.host.Windows.Get(MainWindowLabel); !ok {
		t.Error("main window not retrievable after close")
	}
}

func TestMinimizeAndRestore(t *testing.T) {
	sh, fh := newTestShell(t)

	if err := sh.MinimizeToTray(); err != nil {
		t.Fatal(err)
	}
	if !fh.main.hidden {
		t.Error("main window not hidden after minimize")
	}

	if err := sh.RestoreFromTray(); err != nil {
		t.Fatal(err)
	}
	if fh.main.hidden {
		t.Error("main window still hidden after restore")
	}
	if !fh.main.focused {
		t.Error("main window not focused after restore")
	}
}

func TestWindowStateRoundTrip(t *testing.T) {
	sh, _ := newTestShell(t)

	x, y := 120, 45
	want := WindowConfig{
		Width:     640,
		Height:    480,
		X:         &x,
		Y:         &y,
		Maximized: false,
		Minimized: true,
	}
	if err := sh.SaveWindowState("chat-alice", want); err != nil {
		t.Fatal(err)
	}

	got, err := sh.LoadWindowState("chat-alice")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("LoadWindowState returned nil for a saved label")
	}
	if got.Width != want.Width || got.Height != want.Height ||
		got.Maximized != want.Maximized || got.Minimized != want.Minimized {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
	if got.X == nil || *got.X != x || got.Y == nil || *got.Y != y {
		t.Errorf("position round trip = (%v, %v), want (%d, %d)", got.X, got.Y, x, y)
	}
}

func TestLoadWindowState_Absent(t *testing.T) {
	sh, _ := newTestShell(t)
	got, err := sh.LoadWindowState("chat-nobody")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil for unsaved label, got %+v", got)
	}
}

func TestPersistWindowState(t *testing.T) {
	sh, fh := newTestShell(t)

	fh.main.SetPosition(10, 20)
	fh.main.SetSize(1024, 768)
	fh.main.maximized = true

	if err := sh.PersistWindowState(MainWindowLabel); err != nil {
		t.Fatal(err)
	}

	got, err := sh.LoadWindowState(MainWindowLabel)
	if err != nil || got == nil {
		t.Fatalf("load after persist: cfg=%v err=%v", got, err)
	}
	if got.Width != 1024 || got.Height != 768 || !got.Maximized {
		t.Errorf("persisted config = %+v", got)
	}
	if got.X == nil || *got.X != 10 || got.Y == nil || *got.Y != 20 {
		t.Errorf("persisted position = (%v, %v)", got.X, got.Y)
	}
}
