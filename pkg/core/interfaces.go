// Package core defines the interfaces the waterline fakes stand in for
package core

// DestroyCallback receives the outcome of a destroy operation. err is nil on
// success, otherwise whatever value the test configured.
type DestroyCallback func(err any)

// ResultCallback receives the outcome of an operation that yields a result.
// When err is non-nil, result is nil.
type ResultCallback func(err any, result any)

// Record represents a single persisted model instance
type Record interface {
	// Destroy removes the record and reports the outcome asynchronously
	Destroy(cb DestroyCallback)

	// Save persists the record and reports the saved record asynchronously
	Save(cb ResultCallback)
}

// Executor is the terminal step of a query chain
type Executor interface {
	// Exec runs the query and reports its result asynchronously
	Exec(cb ResultCallback)
}

// Collection represents a model collection exposing query-builder methods.
// Each method returns the chain whose Exec runs the query.
type Collection interface {
	// Find selects every record matching the criteria
	Find(criteria ...any) Executor

	// FindOne selects the first record matching the criteria
	FindOne(criteria ...any) Executor

	// Create inserts new records
	Create(values ...any) Executor

	// Count counts the records matching the criteria
	Count(criteria ...any) Executor
}
