package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(Options{Production: true, File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("deposit account created")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"deposit account created"`) {
		t.Fatalf("log line missing from file: %s", data)
	}
}

func TestNewWithoutFile(t *testing.T) {
	log, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log == nil {
		t.Fatalf("expected logger")
	}
}
