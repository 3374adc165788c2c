// Package logx builds the structured pterm logger shared by the CLI and the checker.
package logx

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// Level names accepted by ParseLevel.
const (
	LevelTrace    = "trace"
	LevelDebug    = "debug"
	LevelInfo     = "info"
	LevelWarn     = "warn"
	LevelError    = "error"
	LevelDisabled = "disabled"
)

// ParseLevel maps a level name to a pterm log level. The empty string means warn.
func ParseLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelTrace:
		return pterm.LogLevelTrace, nil
	case LevelDebug, "dbg":
		return pterm.LogLevelDebug, nil
	case LevelInfo, "inf":
		return pterm.LogLevelInfo, nil
	case LevelWarn, "warning", "":
		return pterm.LogLevelWarn, nil
	case LevelError, "err":
		return pterm.LogLevelError, nil
	case LevelDisabled, "off", "none":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string) (*pterm.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if lvl == pterm.LogLevelDisabled {
		return Discard(), nil
	}
	return pterm.DefaultLogger.
		WithWriter(&syncWriter{w: w}).
		WithLevel(lvl), nil
}

// Discard returns a logger that drops everything.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.
		WithWriter(io.Discard).
		WithLevel(pterm.LogLevelDisabled)
}

// IsVerbose reports whether level enables debug or trace output.
func IsVerbose(level string) bool {
	lvl, err := ParseLevel(level)
	return err == nil && lvl != pterm.LogLevelDisabled && lvl <= pterm.LogLevelDebug
}

// syncWriter serializes writes from concurrent probe goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
