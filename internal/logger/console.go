// Package logger provides leveled console logging for xmlfolder commands.
//
// Messages are prefixed with [HH:MM:SS] timestamps. Color output is enabled
// automatically when writing to a terminal and respects NO_COLOR through the
// color library.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level is a log severity used for filtering.
type Level int

// Log levels, from most to least verbose.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the upper-case level name used in log prefixes.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel converts a level name to a Level, case-insensitively.
// Empty or unknown names default to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// levelColors maps each level to its terminal color.
var levelColors = map[Level]*color.Color{
	LevelTrace: color.New(color.FgHiBlack),
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgBlue),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

// ConsoleLogger writes leveled, timestamped log lines to a writer.
// It is safe for concurrent use. A nil writer discards all messages.
type ConsoleLogger struct {
	writer   io.Writer
	minLevel Level
	mu       sync.Mutex
	colored  bool
}

// NewConsoleLogger creates a ConsoleLogger filtering below minLevel.
// Color is enabled only for os.Stdout/os.Stderr when they are terminals.
func NewConsoleLogger(writer io.Writer, minLevel Level) *ConsoleLogger {
	return &ConsoleLogger{
		writer:   writer,
		minLevel: minLevel,
		colored:  writerIsTerminal(writer),
	}
}

// writerIsTerminal reports whether w is a standard stream with color support.
func writerIsTerminal(w io.Writer) bool {
	if w != os.Stdout && w != os.Stderr {
		return false
	}
	// color.NoColor already accounts for TTY detection and NO_COLOR
	return !color.NoColor
}

// Tracef logs at trace level.
func (cl *ConsoleLogger) Tracef(format string, args ...any) {
	cl.logf(LevelTrace, format, args...)
}

// Debugf logs at debug level.
func (cl *ConsoleLogger) Debugf(format string, args ...any) {
	cl.logf(LevelDebug, format, args...)
}

// Infof logs at info level.
func (cl *ConsoleLogger) Infof(format string, args ...any) {
	cl.logf(LevelInfo, format, args...)
}

// Warnf logs at warn level.
func (cl *ConsoleLogger) Warnf(format string, args ...any) {
	cl.logf(LevelWarn, format, args...)
}

// Errorf logs at error level.
func (cl *ConsoleLogger) Errorf(format string, args ...any) {
	cl.logf(LevelError, format, args...)
}

// logf formats and writes one log line if the level passes the filter.
// Format: "[HH:MM:SS] [LEVEL] <message>"
func (cl *ConsoleLogger) logf(level Level, format string, args ...any) {
	if cl.writer == nil || level < cl.minLevel {
		return
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	tag := level.String()
	if cl.colored {
		tag = levelColors[level].Sprint(tag)
	}

	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), tag, fmt.Sprintf(format, args...))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}
