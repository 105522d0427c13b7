package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chadxz/waterline-fakes/pkg/errors"
)

func TestFakeError(t *testing.T) {
	err := errors.NewError("save", "user", errors.ErrConditionFailed)

	assert.Equal(t, "waterline: save user failed: condition check failed", err.Error())
	assert.True(t, errors.IsConditionFailed(err))
	assert.False(t, errors.IsNotFound(err))
	assert.Equal(t, errors.ErrConditionFailed, stderrors.Unwrap(err))

	wrapped := fmt.Errorf("service: %w", err)
	var fe *errors.FakeError
	assert.True(t, stderrors.As(wrapped, &fe))
	assert.Equal(t, "save", fe.Op)
}

func TestFakeError_NoModel(t *testing.T) {
	err := errors.NewError("find", "", errors.ErrItemNotFound)
	assert.Equal(t, "waterline: find failed: item not found", err.Error())
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.Is(err, errors.ErrItemNotFound))
}
