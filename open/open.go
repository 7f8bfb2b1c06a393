// Package open hands a path to the platform's default file handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/vidl-cli/vidl/constant"
)

// Command returns the command that opens input on goos.
func Command(goos, input string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Start opens input without waiting for the handler to exit.
func Start(input string) error {
	cmd, err := Command(runtime.GOOS, input)
	if err != nil {
		return err
	}
	return cmd.Start()
}
