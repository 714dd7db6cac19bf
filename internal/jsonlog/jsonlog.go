// Package jsonlog writes one JSON object per line, the format every component of the service logs in.
package jsonlog

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Fields are extra key/value pairs attached to a log entry.
type Fields map[string]any

// Logger serialises entries to a writer. It is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
	now func() time.Time
}

// New returns a Logger writing to w with timestamps rendered in loc.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc, now: time.Now}
}

// Stdout returns a Logger writing to standard output.
func Stdout(loc *time.Location) *Logger {
	return New(os.Stdout, loc)
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return New(io.Discard, time.UTC)
}

// Info logs msg at info level.
func (l *Logger) Info(msg string, f Fields) {
	l.write("info", msg, f)
}

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string, f Fields) {
	l.write("warn", msg, f)
}

// Error logs msg at error level with err attached under "error".
func (l *Logger) Error(msg string, err error, f Fields) {
	entry := Fields{}
	for k, v := range f {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	l.write("error", msg, entry)
}

// Location returns the time zone used for timestamps.
func (l *Logger) Location() *time.Location {
	return l.loc
}

func (l *Logger) write(level, msg string, f Fields) {
	if l == nil {
		return
	}
	entry := make(map[string]any, len(f)+3)
	for k, v := range f {
		entry[k] = v
	}
	entry["ts"] = l.now().In(l.loc).Format(time.RFC3339Nano)
	entry["level"] = level
	entry["msg"] = msg

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}
