package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("find user: %w", NotFound("User not found"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)

	msg, ok := ClientMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "User not found", msg)
}

func TestCategoryInUseError(t *testing.T) {
	err := error(&CategoryInUseError{Name: "Desserts", Count: 3})

	assert.ErrorIs(t, err, ErrConflict)
	msg, ok := ClientMessage(err)
	assert.True(t, ok)
	assert.Contains(t, msg, "3 food item(s)")
}

func TestClientMessage_HidesUnclassified(t *testing.T) {
	_, ok := ClientMessage(errors.New("dial tcp 10.0.0.1:5432: connection refused"))
	assert.False(t, ok)

	_, ok = ClientMessage(New(ErrInternal, "boom"))
	assert.False(t, ok)

	_, ok = ClientMessage(nil)
	assert.False(t, ok)
}
