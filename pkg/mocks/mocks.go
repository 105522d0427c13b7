// Package mocks provides testify mocks for the collection interface, designed
// to be fed with fakes.
//
// Real collections expose query-builder methods (Find, FindOne, Create,
// Count) whose chains finish with Exec. MockCollection lets a test decide per
// method which chain comes back.
//
// # Basic Usage
//
//	func TestUserService(t *testing.T) {
//	    user := fakes.NewModel(&fakes.ModelOptions{
//	        Props: map[string]any{"name": "alice"},
//	    })
//
//	    users := new(mocks.MockCollection)
//	    mocks.StubQuery(users, "FindOne", fakes.NewChainable(&fakes.ChainOptions{
//	        Result: user,
//	    }))
//
//	    service := NewUserService(users)
//	    // ...
//
//	    users.AssertExpectations(t)
//	}
//
// # Stubbing With Fakes
//
// When a method's return value is a fakes.QueryFunc, the mock calls it with
// the method arguments, so every call gets a fresh chain:
//
//	users.On("Find", mock.Anything).Return(fakes.NewChainable(nil))
//
// Any other core.Executor is returned as is.
//
// # Matching Arguments
//
// Methods are variadic; the mock records the arguments as one []any:
//
//	users.On("Find", []any{map[string]any{"name": "alice"}}).Return(find)
//
// # Tips
//
// 1. Use mock.Anything when you don't need to assert on specific arguments
// 2. Return a fakes.QueryFunc rather than a single chain
// 3. Always assert expectations were met with AssertExpectations
package mocks

// Helper type aliases for convenience
type (
	// Collection is an alias for MockCollection to allow shorter declarations
	Collection = MockCollection
)
