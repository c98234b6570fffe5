package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceCursorAll(t *testing.T) {
	items, err := All(context.Background(), NewSliceCursor([]int{3, 1, 2}))
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, items)

	items, err = All(context.Background(), NewSliceCursor[int](nil))
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestAllStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := All(ctx, NewSliceCursor([]int{1, 2}))
	assert.ErrorIs(t, err, context.Canceled)
}
