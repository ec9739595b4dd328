package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestInitLevelAndFormat(t *testing.T) {
	defer Init(DefaultConfig(), nil)

	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json"}, &buf)
	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", Log.GetLevel())
	}

	Log.WithFields(logrus.Fields{"level_name": "Sunday-Gunday"}).Debug("Level loaded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["level_name"] != "Sunday-Gunday" || entry["msg"] != "Level loaded" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	defer Init(DefaultConfig(), nil)

	var buf bytes.Buffer
	Init(Config{Level: "loud", Format: "text"}, &buf)
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}

	Log.Debug("hidden")
	Log.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestOpenFileDisabledByDefault(t *testing.T) {
	f, err := OpenFile(false)
	if err != nil || f != nil {
		t.Errorf("OpenFile(false) = %v, %v; want nil, nil", f, err)
	}
}

func TestOpenFileEnabledWithDebug(t *testing.T) {
	defer os.RemoveAll(logDir)

	f, err := OpenFile(true)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	if _, err := os.Stat(filepath.Join(logDir, logFileName)); os.IsNotExist(err) {
		t.Error("Expected log file to be created")
	}
}

func TestOpenFileRotation(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	f, err := OpenFile(true)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log file is %d bytes, want a fresh file", info.Size())
	}
}

func TestRotatedName(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := rotatedName(filepath.Join("logs", "piston-shooty.log"), now)
	want := filepath.Join("logs", "piston-shooty-20240309-140507.log")
	if got != want {
		t.Errorf("rotatedName = %q, want %q", got, want)
	}
}
