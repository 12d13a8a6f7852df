package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUI_DEBUG"

var (
	logFile  *os.File
	mu       sync.Mutex
	resolved bool
)

// Init opens path for debug logging, replacing any previously opened log.
// An empty path disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	resolved = true
	if path == "" {
		return nil
	}
	return openLocked(path)
}

func openLocked(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("debug: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("debug: open %s: %w", path, err)
	}
	logFile = f
	return nil
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

// Enabled reports whether log lines are currently written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	resolveLocked()
	return logFile != nil
}

// resolveLocked consults TUI_DEBUG once, the first time anything is logged.
func resolveLocked() {
	if resolved {
		return
	}
	resolved = true
	if path := os.Getenv(EnvVar); path != "" {
		_ = openLocked(path)
	}
}

// Log appends one timestamped line when logging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	resolveLocked()
	if logFile != nil {
		fmt.Fprintf(logFile, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
	}
}
