// Package sysopen shells out to the platform URL opener.
package sysopen

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// URL opens url with the OS default browser handler.
func URL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("open failed: %s (%w)", strings.TrimSpace(string(out)), err)
	}
	return nil
}
