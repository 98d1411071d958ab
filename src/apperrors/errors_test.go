package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict("already processed")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindFailedPrecondition, KindOf(FailedPrecondition("short")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
	assert.Equal(t, KindInternal, KindOf(fmt.Errorf("wrapped: %w", errors.New("inner"))))
}

func TestNewf(t *testing.T) {
	err := Newf(KindFailedPrecondition, "insufficient stock for product %s: available %d, requested %d", "X200", 10, 15)
	assert.Equal(t, "insufficient stock for product X200: available 10, requested 15", err.Error())
	assert.Equal(t, KindFailedPrecondition, err.Kind)
}

func TestIsMatchesByKind(t *testing.T) {
	err := Conflict("order has already been received")
	assert.True(t, errors.Is(err, Conflict("")))
	assert.False(t, errors.Is(err, NotFound("")))
	assert.False(t, errors.Is(err, errors.New("order has already been received")))
}
