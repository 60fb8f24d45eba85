package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal", "critical":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

const timestampLayout = "2006-01-02 15:04:05"

type output struct {
	w       io.Writer
	colored bool
}

// sink is shared between a logger and the children derived with With.
type sink struct {
	mu       sync.Mutex
	minLevel Level
	outputs  []output
	now      func() time.Time
}

// Logger writes leveled, component-tagged lines to every registered output.
type Logger struct {
	component string
	sink      *sink
}

func NewLogger(component string, minLevel Level) *Logger {
	return &Logger{
		component: component,
		sink:      &sink{minLevel: minLevel, now: time.Now},
	}
}

// Discard returns a logger without outputs.
func Discard() *Logger {
	return NewLogger("discard", LevelFatal+1)
}

// AddOutput registers w. Colored outputs get ANSI level tags.
func (l *Logger) AddOutput(w io.Writer, colored bool) *Logger {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.outputs = append(l.sink.outputs, output{w: w, colored: colored})
	return l
}

func (l *Logger) SetMinLevel(level Level) *Logger {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.minLevel = level
	return l
}

func (l *Logger) SetClock(now func() time.Time) *Logger {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.now = now
	return l
}

// With derives a logger for another component sharing level and outputs.
func (l *Logger) With(component string) *Logger {
	return &Logger{component: component, sink: l.sink}
}

func (l *Logger) Enabled(level Level) bool {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return level >= l.sink.minLevel
}

func (l *Logger) Debug(message string, kv ...any) {
	l.log(LevelDebug, message, nil, kv)
}

func (l *Logger) Info(message string, kv ...any) {
	l.log(LevelInfo, message, nil, kv)
}

func (l *Logger) Warn(message string, kv ...any) {
	l.log(LevelWarn, message, nil, kv)
}

func (l *Logger) Error(message string, err error, kv ...any) {
	l.log(LevelError, message, err, kv)
}

// Fatal logs at the highest level. It never exits the process.
func (l *Logger) Fatal(message string, err error, kv ...any) {
	l.log(LevelFatal, message, err, kv)
}

func (l *Logger) log(level Level, message string, err error, kv []any) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if level < l.sink.minLevel {
		return
	}

	timestamp := l.sink.now().Format(timestampLayout)
	body := formatBody(l.component, message, err, kv)

	for _, out := range l.sink.outputs {
		tag := level.String()
		if out.colored {
			tag = levelColor(level).Sprint(tag)
		}
		_, _ = fmt.Fprintf(out.w, "[%s] %s %s\n", timestamp, tag, body)
	}
}

func formatBody(component, message string, err error, kv []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", component, message)

	if err == nil && len(kv) == 0 {
		return b.String()
	}

	b.WriteString(" |")
	if err != nil {
		fmt.Fprintf(&b, " error=%v", err)
	}
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 >= len(kv) {
			fmt.Fprintf(&b, " !BADKEY=%s", key)
			break
		}
		fmt.Fprintf(&b, " %s=%v", key, kv[i+1])
	}

	return b.String()
}

func levelColor(level Level) *color.Color {
	var c *color.Color
	switch level {
	case LevelDebug:
		c = color.New(color.FgHiBlack)
	case LevelInfo:
		c = color.New(color.FgCyan)
	case LevelWarn:
		c = color.New(color.FgYellow)
	case LevelError:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgHiRed, color.Bold)
	}
	c.EnableColor()
	return c
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return file, nil
}
