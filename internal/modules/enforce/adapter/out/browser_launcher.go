package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"grindlock/internal/modules/enforce/domain"
	enforceout "grindlock/internal/modules/enforce/port/out"
)

// BrowserLauncher opens a problem in the default browser: the NeetCode
// walkthrough first, then the LeetCode editor, so both land as adjacent
// tabs.
type BrowserLauncher struct{}

func NewBrowserLauncher() enforceout.TaskLauncher {
	return &BrowserLauncher{}
}

func (l *BrowserLauncher) Open(ctx context.Context, task domain.Task) error {
	for _, url := range []string{task.NeetCodeURL, task.LeetCodeURL} {
		if url == "" {
			continue
		}
		if err := openURL(url); err != nil {
			return err
		}
	}
	return nil
}

func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return fmt.Errorf("browser open is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
