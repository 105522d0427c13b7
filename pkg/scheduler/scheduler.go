// Package scheduler defers callbacks so that they never run on the stack of
// the call that scheduled them.
//
// Two implementations are provided:
//
//   - Loop runs tasks on a single background worker in FIFO order.
//   - Manual holds tasks until the test explicitly runs them.
//
// Every task scheduled is eventually run. There is no cancellation and no
// timeout.
package scheduler

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/chadxz/waterline-fakes/pkg/logging"
)

// Scheduler defers a task to a later tick
type Scheduler interface {
	Schedule(task func())
}

var (
	defaultMu    sync.RWMutex
	defaultSched Scheduler
	defaultOnce  sync.Once
)

// Default returns the process-wide scheduler used by fakes that are not given
// one explicitly. Unless replaced with SetDefault, it is a Loop.
func Default() Scheduler {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultSched == nil {
			defaultSched = NewLoop()
		}
		defaultMu.Unlock()
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSched
}

// SetDefault replaces the process-wide scheduler and returns the previous one.
// Passing nil installs a fresh Loop.
func SetDefault(s Scheduler) Scheduler {
	prev := Default()
	if s == nil {
		s = NewLoop()
	}

	defaultMu.Lock()
	defaultSched = s
	defaultMu.Unlock()
	return prev
}

// run executes a task, recovering and logging a panic so that one bad
// callback cannot take down the worker
func run(task func(), log *logrus.Entry) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("scheduled task panicked")
		}
	}()
	task()
}

func taskLogger(kind string, id uint64) *logrus.Entry {
	return logging.WithOp("schedule").WithFields(logrus.Fields{
		"scheduler": kind,
		"task":      id,
	})
}
