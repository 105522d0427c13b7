// Package fakes provides test doubles for waterline-style models and query
// chains.
//
// Code that talks to a persistence layer through callbacks can be unit tested
// without a data store: swap the real collection method for a chainable fake
// and let it hand back model fakes whose Save and Destroy report whatever
// outcome the test configured.
//
// # Model fakes
//
//	user := fakes.NewModel(&fakes.ModelOptions{
//	    Props: map[string]any{"name": "alice"},
//	    Save:  fakes.SaveOptions{Err: errors.ErrConditionFailed},
//	})
//
//	user.Set("name", "bob")
//	user.Save(func(err, result any) {
//	    // err == errors.ErrConditionFailed, result == nil
//	})
//
// With no Save error and no Save result configured, Save reports the model
// itself, the way a real persistence layer returns the saved record.
//
// # Chainable fakes
//
//	find := fakes.NewChainable(&fakes.ChainOptions{Result: []any{user}})
//	find(map[string]any{"name": "alice"}).Exec(func(err, result any) {
//	    // err == nil, result == []any{user}
//	})
//
// The arguments passed to a chainable are ignored. Every call returns a new
// Chain sharing the configuration captured when NewChainable was called. With
// nothing configured, Exec reports an empty []any.
//
// # Timing
//
// Callbacks never run on the stack of the Destroy, Save or Exec call. They are
// handed to a scheduler.Scheduler: the process-wide scheduler.Default() unless
// the options name one. Tests that need to observe "not yet called" can use a
// scheduler.Manual and run the queue themselves.
//
// # Errors
//
// Configured errors are typed any, so a test can simulate any failure payload,
// including plain strings. A nil value means "no error".
package fakes
