// Package logging provides the leveled Logger used across stepviz, with an
// optional rotating log file backed by lumberjack.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/natefinch/lumberjack"
)

// Level is the minimum severity a Logger writes.
type Level uint8

const (
	DebugLevel Level = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	CriticalLevel
	SilentLevel
)

var levelNames = [...]string{"debug", "info", "warning", "error", "critical", "silent"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}

	return fmt.Sprintf("level(%d)", uint8(l))
}

// ParseLevel maps a case-insensitive name to a Level. The empty string is
// InfoLevel.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return InfoLevel, nil
	}
	if s == "warn" {
		return WarningLevel, nil
	}
	for i, n := range levelNames {
		if n == s {
			return Level(i), nil
		}
	}

	return InfoLevel, fmt.Errorf("logging: unknown level %q", s)
}

// UnmarshalText lets a Level be read straight from TOML or JSON.
func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v

	return nil
}

// Logger provides a way for the application to log messages at different
// severities.
type Logger interface {
	// Debugf formats its arguments analogous to fmt.Printf and records the
	// text at Debug level.
	Debugf(format string, args ...interface{})

	// Infof is like Debugf, but at Info level.
	Infof(format string, args ...interface{})

	// Warningf is like Debugf, but at Warning level.
	Warningf(format string, args ...interface{})

	// Errorf is like Debugf, but at Error level.
	Errorf(format string, args ...interface{})

	// Criticalf is like Debugf, but at Critical level.
	Criticalf(format string, args ...interface{})

	// Shutdown makes sure logs are closed.
	Shutdown()
}

// LogConfig is the [logging] section of the configuration file.
type LogConfig struct {
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size" validate:"gte=0"`
	MaxAge  int    `toml:"max_log_age" validate:"gte=0"`
	Level   Level  `toml:"level"`
}

// NewLogger creates a logger that saves to a rotating log file, or to stderr
// when no log file is specified.
func (c *LogConfig) NewLogger() Logger {
	if c == nil {
		return New(os.Stderr, InfoLevel)
	}
	if c.Logfile == "" {
		return New(os.Stderr, c.Level)
	}
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
	s := New(l, c.Level).(*stdLogger)
	s.closer = l

	return s
}

type stdLogger struct {
	mu     sync.Mutex
	min    Level
	out    *log.Logger
	closer io.Closer
}

// New returns a Logger writing to w at level min and above.
func New(w io.Writer, min Level) Logger {
	return &stdLogger{min: min, out: log.New(w, "", log.LstdFlags)}
}

func (s *stdLogger) printf(l Level, tag, format string, args ...interface{}) {
	if l < s.min {
		return
	}
	s.out.Printf(tag+format, args...)
}

func (s *stdLogger) Debugf(format string, args ...interface{}) {
	s.printf(DebugLevel, " DEBUG ", format, args...)
}

func (s *stdLogger) Infof(format string, args ...interface{}) {
	s.printf(InfoLevel, " INFO ", format, args...)
}

func (s *stdLogger) Warningf(format string, args ...interface{}) {
	s.printf(WarningLevel, " WARNING ", format, args...)
}

func (s *stdLogger) Errorf(format string, args ...interface{}) {
	s.printf(ErrorLevel, " ERROR ", format, args...)
}

func (s *stdLogger) Criticalf(format string, args ...interface{}) {
	s.printf(CriticalLevel, " CRITICAL ", format, args...)
}

func (s *stdLogger) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closer != nil {
		_ = s.closer.Close()
		s.closer = nil
	}
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debugf(string, ...interface{})    {}
func (nopLogger) Infof(string, ...interface{})     {}
func (nopLogger) Warningf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{})    {}
func (nopLogger) Criticalf(string, ...interface{}) {}
func (nopLogger) Shutdown()                        {}
