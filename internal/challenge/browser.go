package challenge

import (
	"os/exec"
	"runtime"
)

// openBrowser makes a best-effort attempt to open url in the user's
// default browser. Failures are silent. Open does not print the URL, so
// when no browser opens, the session resolves only through its timeout,
// cancellation, or an OnReady caller. OpenParams.SuppressBrowser skips
// this call.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
