package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Level is a logging severity.
type Level int

// Severity levels, least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
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
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

var levelStyles = map[Level]lipgloss.Style{
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("192")),
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
}

// Logger writes leveled, styled log lines to a writer.
type Logger struct {
	mu         sync.Mutex
	out        io.Writer
	level      Level
	timestamps bool
}

// New creates a Logger writing to out at LevelInfo with timestamps enabled.
func New(out io.Writer) *Logger {
	return &Logger{out: out, level: LevelInfo, timestamps: true}
}

// SetLevel sets the minimum severity that will be written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput redirects the logger to out.
func (l *Logger) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = out
}

// SetTimestamps toggles the time prefix.
func (l *Logger) SetTimestamps(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timestamps = on
}

func (l *Logger) log(level Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	tag := levelStyles[level].Render(fmt.Sprintf("%-5s", level))
	if l.timestamps {
		fmt.Fprintf(l.out, "%s %s %s\n", time.Now().Format("15:04:05"), tag, msg)
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", tag, msg)
}

// Debug logs msg at LevelDebug.
func (l *Logger) Debug(msg string) { l.log(LevelDebug, msg) }

// Debugf logs a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, fmt.Sprintf(format, args...)) }

// Info logs msg at LevelInfo.
func (l *Logger) Info(msg string) { l.log(LevelInfo, msg) }

// Infof logs a formatted message at LevelInfo.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, fmt.Sprintf(format, args...)) }

// Warn logs msg at LevelWarn.
func (l *Logger) Warn(msg string) { l.log(LevelWarn, msg) }

// Warnf logs a formatted message at LevelWarn.
func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarn, fmt.Sprintf(format, args...)) }

// Error logs msg at LevelError.
func (l *Logger) Error(msg string) { l.log(LevelError, msg) }

// Errorf logs a formatted message at LevelError.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, fmt.Sprintf(format, args...)) }

// Default is the package-level logger, bound to stderr.
var Default = New(os.Stderr)

// Debug logs msg at LevelDebug on the default logger.
func Debug(msg string) { Default.Debug(msg) }

// Debugf logs a formatted message at LevelDebug on the default logger.
func Debugf(format string, args ...any) { Default.Debugf(format, args...) }

// Info logs msg at LevelInfo on the default logger.
func Info(msg string) { Default.Info(msg) }

// Infof logs a formatted message at LevelInfo on the default logger.
func Infof(format string, args ...any) { Default.Infof(format, args...) }

// Warn logs msg at LevelWarn on the default logger.
func Warn(msg string) { Default.Warn(msg) }

// Warnf logs a formatted message at LevelWarn on the default logger.
func Warnf(format string, args ...any) { Default.Warnf(format, args...) }

// Error logs msg at LevelError on the default logger.
func Error(msg string) { Default.Error(msg) }

// Errorf logs a formatted message at LevelError on the default logger.
func Errorf(format string, args ...any) { Default.Errorf(format, args...) }
