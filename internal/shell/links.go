package shell

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// errInvalidScheme is the one deliberately-raised domain error; the
// message is part of the request surface.
const errInvalidScheme = "Invalid URL scheme"

// deepLinkScheme is the application's registered URI scheme.
const deepLinkScheme = "msn"

// OpenURL opens rawURL in the system browser. Only http and https are
// allowed.
func (s *Shell) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.New(errInvalidScheme)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errInvalidScheme)
	}
	if err := s.host.Opener.OpenURL(rawURL); err != nil {
		return fmt.Errorf("Failed to open URL: %v", err)
	}
	return nil
}

// HandleDeepLink dispatches an msn:// URI. "msn://chat/<id>" opens or
// focuses the corresponding chat window.
func (s *Shell) HandleDeepLink(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse deep link: %v", err)
	}
	if u.Scheme != deepLinkScheme {
		return fmt.Errorf("unsupported deep link scheme: %q", u.Scheme)
	}

	switch u.Host {
	case "chat":
		chatID := strings.Trim(u.Path, "/")
		if chatID == "" {
			return fmt.Errorf("deep link missing chat id")
		}
		return s.CreateChatWindow(chatID, "Contact")
	default:
		return fmt.Errorf("unsupported deep link target: %q", u.Host)
	}
}
