package mocks

import (
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/chadxz/waterline-fakes/pkg/core"
	"github.com/chadxz/waterline-fakes/pkg/fakes"
)

// MockCollection is a mock implementation of the core.Collection interface.
//
// Example usage:
//
//	users := new(mocks.MockCollection)
//	users.On("Find", mock.Anything).Return(fakes.NewChainable(nil))
type MockCollection struct {
	mock.Mock
}

var _ core.Collection = (*MockCollection)(nil)

// Find selects every record matching the criteria
func (m *MockCollection) Find(criteria ...any) core.Executor {
	return m.query("Find", criteria)
}

// FindOne selects the first record matching the criteria
func (m *MockCollection) FindOne(criteria ...any) core.Executor {
	return m.query("FindOne", criteria)
}

// Create inserts new records
func (m *MockCollection) Create(values ...any) core.Executor {
	return m.query("Create", values)
}

// Count counts the records matching the criteria
func (m *MockCollection) Count(criteria ...any) core.Executor {
	return m.query("Count", criteria)
}

func (m *MockCollection) query(method string, args []any) core.Executor {
	if args == nil {
		args = []any{}
	}
	ret := m.MethodCalled(method, args)

	switch v := ret.Get(0).(type) {
	case fakes.QueryFunc:
		return v(args...)
	case func(...any) *fakes.Chain:
		return v(args...)
	case core.Executor:
		return v
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("mocks: %s must return a fakes.QueryFunc or core.Executor, got %T", method, v))
	}
}

// StubQuery makes method answer every call with a fresh chain from fn, and
// returns the expectation for further tuning (Once, Times, ...)
func StubQuery(m *MockCollection, method string, fn fakes.QueryFunc) *mock.Call {
	return m.On(method, mock.Anything).Return(fn)
}
