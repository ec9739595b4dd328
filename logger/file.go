package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "piston-shooty.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// OpenFile opens the debug log file, rotating it when it grows past maxLogSize
// Returns nil without error when debug is off
func OpenFile(debug bool) (*os.File, error) {
	if !debug {
		return nil, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, rotatedName(logPath, time.Now())); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// rotatedName returns logs/piston-shooty-20060102-150405.log for logs/piston-shooty.log
func rotatedName(path string, now time.Time) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + "-" + now.Format("20060102-150405") + filepath.Ext(path)
}
