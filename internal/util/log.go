package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLogLevel accepts debug, info, warn or error. Empty means info.
func ParseLogLevel(s string) (log.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// NewLogger returns a structured logger writing to w at level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	logger := log.New(w)
	logger.SetLevel(level)
	logger.SetPrefix("[PRISONERS]")
	return logger
}
