package chart

import (
	"os/exec"
	"runtime"
)

func viewerCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Open shows the image at path in the platform's default viewer without
// waiting for it to close.
func Open(path string) error {
	return viewerCommand(runtime.GOOS, path).Start()
}
