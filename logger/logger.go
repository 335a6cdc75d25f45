// Package logger provides the prefixed, colored console logger used by
// every wired component. Each component owns an instance with its own
// prefix and color so interleaved output stays attributable.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/micromouse-api/config"
	"github.com/beka-birhanu/micromouse-api/service/i"
)

// ConsoleLogger writes leveled, color-prefixed lines to a single writer.
// Implements i.Logger.
type ConsoleLogger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger with the given component prefix and ANSI color,
// writing to w.
func New(prefix, color string, w io.Writer) (i.Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	return &ConsoleLogger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs a routine operational message.
func (l *ConsoleLogger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a recoverable anomaly.
func (l *ConsoleLogger) Warning(msg string) {
	l.print("WARN", msg)
}

// Error logs a failure that degraded or aborted an operation.
func (l *ConsoleLogger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *ConsoleLogger) print(level, msg string) {
	l.out.Print(fmt.Sprintf("%s[%s] [%s]%s %s", l.color, l.prefix, level, config.ColorReset, msg))
}
