package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("submit: %w", NotFound("campaign", "c1"))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestTransientKeepsDomainErrors(t *testing.T) {
	assert.Nil(t, Transient("get campaign", nil))

	conflict := Conflict("duplicate")
	assert.Same(t, conflict, Transient("create", conflict))

	err := Transient("get campaign", context.DeadlineExceeded)
	assert.True(t, IsTransient(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
