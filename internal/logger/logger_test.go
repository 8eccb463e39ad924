package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analyzer.log")

	logger, err := New(Options{JSON: true, File: path, Name: "resume-analyzer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("hidden without debug")
	logger.Info("resume parsed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single entry, got %q", data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("entry is not json: %v", err)
	}

	if entry["step"] != "resume parsed" {
		t.Fatalf("unexpected message: %v", entry["step"])
	}
	if entry["logger"] != "resume-analyzer" {
		t.Fatalf("unexpected logger name: %v", entry["logger"])
	}
	if entry["level"] != "info" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
}

func TestNewDebugLevel(t *testing.T) {
	logger, err := New(Options{Debug: true, File: filepath.Join(t.TempDir(), "debug.log")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !logger.Core().Enabled(-1) {
		t.Fatalf("expected debug level to be enabled")
	}
}

func TestNewRejectsUnwritableFile(t *testing.T) {
	if _, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")}); err == nil {
		t.Fatalf("expected error for unwritable log file")
	}
}
