package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCloseLogFlushesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lutrisview.log")
	if err := openLog(path); err != nil {
		t.Fatalf("openLog failed: %v", err)
	}
	log.Printf("Fatal: boom")

	closeLog()
	closeLog()
	if logFile != nil {
		t.Error("logFile still set after closeLog")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Fatal: boom") {
		t.Errorf("log file = %q, want the fatal line", data)
	}
}

func TestLoadConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
	if cfg.Lutris.Command == "" {
		t.Error("default config has no lutris command")
	}
}

func TestLoadConfigCorrectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"exit": {"defaultAction": "hibernate"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Exit.DefaultAction != "desktop" {
		t.Errorf("defaultAction = %q, want desktop", cfg.Exit.DefaultAction)
	}
}
