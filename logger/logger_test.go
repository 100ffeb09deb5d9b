package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToOutput(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })
	path := filepath.Join(t.TempDir(), "game.log")

	if err := Init("info", []string{path}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Log.Infow("round started", "round", 1)
	Log.Debug("hidden below info")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "round started") {
		t.Errorf("Expected log file to contain the info entry, got %q", data)
	}
	if strings.Contains(string(data), "hidden below info") {
		t.Error("Debug entry should be filtered at info level")
	}
}

func TestInit_BadLevel(t *testing.T) {
	before := Log
	if err := Init("loud", nil); err == nil {
		t.Fatal("Expected an error for an unknown level")
	}
	if Log != before {
		t.Error("Log should be left untouched when Init fails")
	}
}
