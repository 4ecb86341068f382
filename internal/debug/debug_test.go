package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrefixedLoggers(t *testing.T) {
	type tc struct {
		log    func(string, ...any)
		prefix string
	}

	tests := map[string]tc{
		"plain":   {log: Log, prefix: "] hello 1"},
		"prepare": {log: Prepare, prefix: "] [prepare] hello 1"},
		"batch":   {log: Batch, prefix: "] [batch] hello 1"},
		"measure": {log: Measure, prefix: "] [measure] hello 1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			defer SetOutput(nil)

			tt.log("hello %d", 1)

			if !strings.Contains(buf.String(), tt.prefix) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.prefix)
			}
		})
	}
}

func TestDisabledIsNoop(t *testing.T) {
	SetOutput(nil)
	if Enabled() {
		t.Fatal("Enabled() = true after SetOutput(nil)")
	}
	Log("dropped")
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Batch("batch %s applied", "abc")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "[batch] batch abc applied") {
		t.Errorf("log file = %q", data)
	}
}
