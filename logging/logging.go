// Package logging configures the zerolog logger shared by the hosts and the engine.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// MaxLogSize is the size above which an existing log is rotated on startup
const MaxLogSize = 10 * 1024 * 1024

// DefaultName is the log file stem
const DefaultName = "siege"

// Options selects log destinations
type Options struct {
	Level string
	// Dir enables file output, empty disables it
	Dir string
	// Console mirrors output to stderr, unusable while a terminal screen is active
	Console bool
	Name    string
	Start   time.Time
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel maps a config level name to a zerolog level, unknown names fall back to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// FilePath builds a timestamped log file path
func FilePath(dir, name string, start time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s.log", name, start.Format("20060102_150405")))
}

// Setup builds the logger, the returned closer releases the log file
// With neither a directory nor console output the logger is a no-op
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}

	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if opts.Dir != "" {
		file, err := openLogFile(opts.Dir, opts.Name, opts.Start)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		closer = file
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}
	if opts.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(opts.Level)).
		With().Timestamp().Logger()
	return logger, closer, nil
}

// openLogFile appends to <dir>/<name>.log, rotating it first when oversized
func openLogFile(dir, name string, start time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, name+".log")
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		if err := os.Rename(path, FilePath(dir, name, start)); err != nil {
			return nil, fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
