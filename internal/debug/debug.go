package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "FLEX_DEBUG"

var (
	logFile *os.File
	loaded  bool
	mu      sync.Mutex
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Init opens path for debug logging, replacing any open log.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	loaded = true
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	return nil
}

// loadLocked opens the file named by FLEX_DEBUG the first time it is called.
// Caller must hold mu.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	if path := os.Getenv(EnvVar); path != "" {
		initLocked(path)
	}
}

// Enabled reports whether log messages are written anywhere. Callers use it
// to skip building expensive messages.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	return logFile != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

// Dump renders v as a multi-line, deterministic string.
func Dump(v any) string {
	return dumper.Sdump(v)
}
