// Package logging holds the logger shared by the fakes.
//
// The logger is quiet by default. Tests that want to trace when callbacks are
// scheduled and dispatched can raise the level:
//
//	logging.Logger().SetLevel(logrus.DebugLevel)
package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.RWMutex
	logger = newDefault()
)

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// Logger returns the package logger
func Logger() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = newDefault()
	}
	logger = l
}

// WithOp returns an entry tagged with the operation name
func WithOp(op string) *logrus.Entry {
	return Logger().WithField("op", op)
}
