// Package testing bundles helpers for tests built on the fakes: a manual
// scheduler shared by every fake, callback recorders and ready-made scenarios.
//
//	tf := fakestesting.NewTestFakes()
//	user := tf.Model(&fakes.ModelOptions{Props: map[string]any{"name": "alice"}})
//
//	rec := fakestesting.NewRecorder()
//	user.Save(rec.Result())
//	tf.Flush()
//	call := rec.WaitOne(t)
package testing

import (
	"github.com/chadxz/waterline-fakes/pkg/fakes"
	"github.com/chadxz/waterline-fakes/pkg/scheduler"
)

// TestFakes creates fakes that share one manual scheduler
type TestFakes struct {
	Scheduler *scheduler.Manual
}

// NewTestFakes creates a TestFakes with an empty queue
func NewTestFakes() *TestFakes {
	return &TestFakes{Scheduler: scheduler.NewManual()}
}

// Model creates a model fake bound to the shared scheduler unless opts names
// another one
func (tf *TestFakes) Model(opts *fakes.ModelOptions) *fakes.Model {
	var cfg fakes.ModelOptions
	if opts != nil {
		cfg = *opts
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = tf.Scheduler
	}
	return fakes.NewModel(&cfg)
}

// Chainable creates a chainable fake bound to the shared scheduler unless
// opts names another one
func (tf *TestFakes) Chainable(opts *fakes.ChainOptions) fakes.QueryFunc {
	var cfg fakes.ChainOptions
	if opts != nil {
		cfg = *opts
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = tf.Scheduler
	}
	return fakes.NewChainable(&cfg)
}

// Flush runs every pending callback and returns how many ran
func (tf *TestFakes) Flush() int {
	return tf.Scheduler.RunPending()
}

// Pending returns the number of callbacks waiting to run
func (tf *TestFakes) Pending() int {
	return tf.Scheduler.Pending()
}
