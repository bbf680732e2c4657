// Package logger provides the prefixed, colored logger shared by every component.
package logger

import (
	"errors"
	"io"
	"log"
)

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger writes "[PREFIX] [LEVEL] message" lines; the prefix is printed in
// the component color.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger for the named component.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", "", msg)
}

// Warning logs a message about a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", colorYellow, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", colorRed, msg)
}

func (l *Logger) write(level, levelColor, msg string) {
	if levelColor == "" {
		l.out.Printf("%s[%s]%s [%s] %s", l.color, l.prefix, colorReset, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, colorReset, levelColor, level, colorReset, msg)
}
