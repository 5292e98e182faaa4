/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package applog

import (
	"io"
	"log"
	"sync"
)

// Logger is something that can print, using Logf, a format string
type Logger interface {
	Logf(format string, v ...any)
}

// subsystemLogger handles one named subsystem out of all that share an AppLogger
type subsystemLogger struct {
	name   string
	logger *AppLogger
}

// Logf for a subsystem logger is just a wrap for the Logf of its parent, giving its subsystem name
func (s *subsystemLogger) Logf(format string, v ...any) {
	s.logger.logf(s.name, format, v...)
}

// AppLogger hands out per-subsystem loggers that all write, with a subsystem
// prefix, onto the same writer. It's safe to share amongst goroutines since it
// has an internal lock, and logging can be switched off wholesale.
type AppLogger struct {
	lock    sync.RWMutex
	loggers map[string]*log.Logger
	out     io.Writer
	enabled bool
}

// NewAppLogger creates an AppLogger writing to out, with logging initially on or off per the flag
func NewAppLogger(out io.Writer, enabled bool) *AppLogger {
	return &AppLogger{
		loggers: make(map[string]*log.Logger),
		out:     out,
		enabled: enabled,
	}
}

// Subsystem returns the Logger for the given subsystem name, creating it on first use
func (a *AppLogger) Subsystem(name string) Logger {
	a.lock.Lock()
	defer a.lock.Unlock()

	if _, ok := a.loggers[name]; !ok {
		a.loggers[name] = log.New(a.out, "["+name+"]: ", log.Ldate|log.Ltime)
	}
	return &subsystemLogger{name, a}
}

// EnableLogging enables the logging done by this logger
func (a *AppLogger) EnableLogging() {
	a.lock.Lock()
	a.enabled = true
	a.lock.Unlock()
}

// DisableLogging disables the logging done by this logger
func (a *AppLogger) DisableLogging() {
	a.lock.Lock()
	a.enabled = false
	a.lock.Unlock()
}

func (a *AppLogger) logf(name, format string, v ...any) {
	a.lock.RLock()
	enabled := a.enabled
	logger := a.loggers[name]
	a.lock.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Printf(format, v...)
}
