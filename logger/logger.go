package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger
// Discards everything until Init is called, so packages can log from tests
var Log = newDiscard()

// Config selects level and output format
type Config struct {
	Level  string `yaml:"level"`  // logrus level name, default "info"
	Format string `yaml:"format"` // "json" or "text"
}

// DefaultConfig returns info-level text logging
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text"}
}

// Init configures the global logger
// Called once from main before anything else logs
func Init(cfg Config, out io.Writer) {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		// No colours: output goes to a file, never the terminal tcell owns
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if out == nil {
		out = io.Discard
	}
	l.SetOutput(out)

	Log = l
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
