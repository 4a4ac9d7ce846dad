// Package delivery hands rendered export artifacts to the platform:
// the system clipboard or a file on disk. Adapters report success as a
// boolean; failures never propagate into the rendering pipeline.
package delivery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/felixgeelhaar/fortify/timeout"
)

// clipboardTimeout bounds the platform clipboard call, which can hang
// on headless systems without a display server.
const clipboardTimeout = 2 * time.Second

// Adapter bundles the delivery functions behind the application
// layer's Deliverer interface.
type Adapter struct{}

func (Adapter) CopyToClipboard(content string) bool { return CopyToClipboard(content) }
func (Adapter) SaveToFile(path, content string) bool {
	return SaveToFile(path, content)
}

// CopyToClipboard writes content to the system clipboard.
func CopyToClipboard(content string) bool {
	t := timeout.New[struct{}](timeout.Config{
		DefaultTimeout: clipboardTimeout,
	})

	_, err := t.Execute(context.Background(), clipboardTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, clipboard.WriteAll(content)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "clipboard copy failed: %v\n", err)
		return false
	}
	return true
}

// SaveToFile writes content to path, creating parent directories as
// needed.
func SaveToFile(path, content string) bool {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			fmt.Fprintf(os.Stderr, "file save failed: %v\n", err)
			return false
		}
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "file save failed: %v\n", err)
		return false
	}
	return true
}
