package wails

import "github.com/iceinvein/bootleg-msn/internal/host/sysopen"

// opener delegates to the platform URL opener. Scheme validation
// happens in the shell before this is reached.
type opener struct{}

func (opener) OpenURL(url string) error {
	return sysopen.URL(url)
}
