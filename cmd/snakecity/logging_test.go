package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(os.Stderr)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output is %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory created without debug")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(os.Stderr)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file with debug")
	}
	defer f.Close()

	log.Println("hello")
	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(os.Stderr)

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("large log was not moved aside")
	}
	if info, err := os.Stat(path); err != nil || info.Size() > maxLogSize {
		t.Errorf("fresh log file not started: %v", err)
	}
}

func TestLoadTables(t *testing.T) {
	tables, err := loadTables("")
	if err != nil || tables != nil {
		t.Fatalf("empty path: %v, %v", tables, err)
	}
	if _, err := loadTables(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("enemies: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadTables(bad); err == nil {
		t.Fatal("table without enemies accepted")
	}
}
