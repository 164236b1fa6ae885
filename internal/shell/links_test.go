package shell

import "testing"

func TestOpenURL_Valid(t *testing.T) {
	sh, fh := newTestShell(t)

	for _, u := range []string{"https://example.com", "http://example.com/path?q=1"} {
		if err := sh.OpenURL(u); err != nil {
			t.Errorf("OpenURL(%q): %v", u, err)
		}
	}
	if len(fh.opener.opened) != 2 {
		t.Fatalf("opener called %d times, want 2", len(fh.opener.opened))
	}
	if fh.opener.opened[0] != "https://example.com" {
		t.Errorf("opened %q", fh.opener.opened[0])
	}
}

func TestOpenURL_InvalidScheme(t *testing.T) {
	sh, fh := newTestShell(t)

	tests := []string{
		"ftp://example.com",
		"file:///etc/passwd",
		"javascript:alert(1)",
		"example.com",
		"",
		"://bad",
	}
	for _, u := range tests {
		err := sh.OpenURL(u)
		if err == nil {
			t.Errorf("OpenURL(%q): expected error", u)
			continue
		}
		if err.Error() != "Invalid URL scheme" {
			t.Errorf("OpenURL(%q) error = %q, want %q", u, err.Error(), "Invalid URL scheme")
		}
	}
	if len(fh.opener.opened) != 0 {
		t.Errorf("opener called for invalid URLs: %v", fh.opener.opened)
	}
}

func TestHandleDeepLink_Chat(t *testing.T) {
	sh, fh := newTestShell(t)

	if err := sh.HandleDeepLink("msn://chat/alice"); err != nil {
		t.Fatal(err)
	}
	w, ok := fh.windows.windows["chat-alice"]
	if !ok {
		t.Fatal("chat window not opened from deep link")
	}
	if w.opts.Title != "Chat with Contact" {
		t.Errorf("title = %q", w.opts.Title)
	}
}

func TestHandleDeepLink_ExistingWindowFocused(t *testing.T) {
	sh, fh := newTestShell(t)

	if err := sh.CreateChatWindow("alice", "Alice"); err != nil {
		t.Fatal(err)
	}
	if err := sh.HandleDeepLink("msn://chat/alice"); err != nil {
		t.Fatal(err)
	}
	if got := fh.windows.windows["chat-alice"].focusCalls; got != 1 {
		t.Errorf("focus calls = %d, want 1", got)
	}
}

func TestHandleDeepLink_Errors(t *testing.T) {
	sh, _ := newTestShell(t)

	tests := []string{
		"https://example.com", // wrong scheme
		"msn://chat/",         // missing id
		"msn://chat",          // missing id
		"msn://settings/x",    // unknown target
	}
	for _, u := range tests {
		if err := sh.HandleDeepLink(u); err == nil {
			t.Errorf("HandleDeepLink(%q): expected error", u)
		}
	}
}
