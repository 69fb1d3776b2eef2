// Package browser opens the post-submit redirect target
package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a URL outside the terminal
type Opener interface {
	Open(ctx context.Context, url string) error
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(ctx context.Context, url string) error

func (f OpenerFunc) Open(ctx context.Context, url string) error { return f(ctx, url) }

// SystemOpener hands the URL to the platform's default handler
type SystemOpener struct {
	GOOS string // defaults to runtime.GOOS
}

// Command returns the launcher invocation for url
func (o SystemOpener) Command(url string) (string, []string) {
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func (o SystemOpener) Open(ctx context.Context, url string) error {
	name, args := o.Command(url)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	// Launchers detach; reap without blocking the caller
	go cmd.Wait()
	return nil
}
