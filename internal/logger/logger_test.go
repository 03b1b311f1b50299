package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitWritesToFile(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	if err := InitWithFileConfig("debug", DefaultFileConfig(logPath), false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}

	Info("hello from test")
	Debug("debug line")
	Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello from test") {
		t.Errorf("log file missing info line: %q", content)
	}
	if !strings.Contains(content, "debug line") {
		t.Errorf("log file missing debug line at debug level: %q", content)
	}
}

func TestLevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "filtered.log")

	if err := InitWithFileConfig("warn", DefaultFileConfig(logPath), false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}

	Info("should be filtered")
	Warn("should appear")
	Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "should be filtered") {
		t.Error("info line leaked through warn level")
	}
	if !strings.Contains(content, "should appear") {
		t.Error("warn line missing")
	}
}
