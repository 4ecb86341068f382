package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging.
const EnvVar = "FLOWLAYOUT_DEBUG"

var (
	out      io.Writer
	file     *os.File
	mu       sync.Mutex
	initOnce sync.Once
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "flowlayout-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	initOnce.Do(func() {})
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "flowlayout-debug.log"
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

	if file != nil {
		file.Close()
	}
	file = f
	out = f
	return nil
}

// SetOutput redirects log output to w. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	initOnce.Do(func() {})
	out = w
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	out = nil
	if file != nil {
		err := file.Close()
		file = nil
		return err
	}
	return nil
}

// Enabled returns true if logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadEnvLocked()
	return out != nil
}

// loadEnvLocked opens the file named by EnvVar the first time any logger
// is used. Caller must hold mu.
func loadEnvLocked() {
	initOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			_ = initLocked(path)
		}
	})
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	write("", format, args...)
}

// Prepare writes a prepare-prefixed log message.
func Prepare(format string, args ...any) {
	write("[prepare] ", format, args...)
}

// Batch writes a batch-prefixed log message.
func Batch(format string, args ...any) {
	write("[batch] ", format, args...)
}

// Measure writes a measure-prefixed log message.
func Measure(format string, args ...any) {
	write("[measure] ", format, args...)
}

func write(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadEnvLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %s%s\n", timestamp, prefix, fmt.Sprintf(format, args...))
	if file != nil && out == io.Writer(file) {
		file.Sync()
	}
}
