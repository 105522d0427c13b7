package fakes

import (
	"github.com/sirupsen/logrus"

	"github.com/chadxz/waterline-fakes/pkg/core"
	"github.com/chadxz/waterline-fakes/pkg/logging"
	"github.com/chadxz/waterline-fakes/pkg/scheduler"
)

// ChainOptions configures a chainable fake. Err takes precedence over Result.
type ChainOptions struct {
	Err    any
	Result any

	// Scheduler runs the callbacks. Defaults to scheduler.Default().
	Scheduler scheduler.Scheduler

	// Name labels the query in logs
	Name string
}

// QueryFunc stands in for a query-builder method such as Find. Its arguments
// are ignored.
type QueryFunc func(args ...any) *Chain

// Chain is the object a QueryFunc returns
type Chain struct {
	args []any
	cfg  chainConfig
}

var _ core.Executor = (*Chain)(nil)

type chainConfig struct {
	err    any
	result any
	sched  scheduler.Scheduler
	name   string
}

// NewChainable creates a query-builder fake. The configuration is captured
// now and shared, read-only, by every Chain the returned function creates.
func NewChainable(opts *ChainOptions) QueryFunc {
	var cfg chainConfig
	if opts != nil {
		cfg = chainConfig{
			err:    opts.Err,
			result: opts.Result,
			sched:  opts.Scheduler,
			name:   opts.Name,
		}
	}
	if cfg.sched == nil {
		cfg.sched = scheduler.Default()
	}

	return func(args ...any) *Chain {
		return &Chain{
			args: append([]any(nil), args...),
			cfg:  cfg,
		}
	}
}

// Exec schedules cb with the configured outcome: (err, nil) when an error is
// configured, otherwise the configured result, otherwise an empty []any.
func (c *Chain) Exec(cb core.ResultCallback) {
	if cb == nil {
		return
	}

	err := c.cfg.err
	var result any
	switch {
	case err != nil:
	case c.cfg.result != nil:
		result = c.cfg.result
	default:
		result = []any{}
	}

	log := logging.WithOp("exec").WithFields(logrus.Fields{
		"double": "chain",
		"name":   c.cfg.name,
	})
	log.Debug("scheduling callback")
	c.cfg.sched.Schedule(func() { cb(err, result) })
}

// Args returns the arguments the chain was created with. They never affect
// Exec.
func (c *Chain) Args() []any {
	return append([]any(nil), c.args...)
}
