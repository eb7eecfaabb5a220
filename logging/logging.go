// Package logging holds the process-wide structured logger. By default nothing is
// written; terminal hosts must never log to stdout, so debug output goes to a file.
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
	"github.com/lixenwraith/ringdial/constant"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger replaces the active logger. nil restores the silent default
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger
func Logger() *slog.Logger { return loggerPtr.Load() }

// For returns the active logger tagged with a component name
func For(component string) *slog.Logger {
	return Logger().With("component", component)
}

// Setup configures file logging under the default log directory
func Setup(debug bool) *os.File {
	return SetupIn(constant.LogDir, debug)
}

// SetupIn enables debug logging to dir/ringdial.log, rotating a file over MaxLogSize.
// With debug off all output is discarded and nil is returned
func SetupIn(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		SetLogger(nil)
		gg.SetLogger(nil)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, constant.LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > constant.MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("ringdial-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(l)
	gg.SetLogger(l.With("component", "gg"))
	return f
}
