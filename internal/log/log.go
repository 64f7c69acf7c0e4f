// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
)

const tracePrefix = "TRACE: "

var traceEnabled bool

// levels maps NMCTL_LOG values to apex levels. trace is debug plus the
// Tracef lines.
var levels = map[string]log.Level{
	"trace": log.DebugLevel,
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

// letters is the one letter level column of CustomHandler.
var letters = map[log.Level]string{
	log.DebugLevel: "D",
	log.InfoLevel:  "I",
	log.WarnLevel:  "W",
	log.ErrorLevel: "E",
	log.FatalLevel: "F",
}

// InitLogger sets up Apex with a log level from the NMCTL_LOG env variable.
// NMCTL_LOG_FORMAT=json switches to one JSON object per line. Log lines go to
// stderr so they never mix with command output on stdout.
func InitLogger() {
	InitLoggerTo(os.Stderr, os.Getenv("NMCTL_LOG"))
	if strings.EqualFold(os.Getenv("NMCTL_LOG_FORMAT"), "json") {
		log.SetHandler(json.New(os.Stderr))
	}
}

// InitLoggerTo is InitLogger with an explicit writer and level spec. Unknown
// or empty specs mean error.
func InitLoggerTo(w io.Writer, spec string) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	level, ok := levels[spec]
	if !ok {
		level = log.ErrorLevel
	}
	traceEnabled = spec == "trace"

	log.SetHandler(&CustomHandler{Writer: w})
	log.SetLevel(level)
}

// CustomHandler writes "YYYY-MM-DD HH:MM:SS L message k=v..." lines.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	message, level := e.Message, letters[e.Level]
	if rest, ok := strings.CutPrefix(message, tracePrefix); ok {
		message, level = rest, "T"
	}
	if level == "" {
		level = "?"
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(" " + level + " " + message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Tracef logs below Debug. It is a no-op unless NMCTL_LOG=trace.
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug(tracePrefix + fmt.Sprintf(format, args...))
	}
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

func Debug(msg string) {
	log.Debug(msg)
}

func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// WithError returns an entry carrying err as the error field.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}

// WithField returns an entry carrying one extra field.
func WithField(key string, value interface{}) *log.Entry {
	return log.WithField(key, value)
}
