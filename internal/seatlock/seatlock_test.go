package seatlock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledHolderIsNoOp(t *testing.T) {
	ctx := context.Background()

	var nilHolder *Holder
	assert.False(t, nilHolder.Enabled())

	h := New(nil)
	assert.False(t, h.Enabled())

	conflict, err := h.Hold(ctx, 3, []int{12, 13}, "user:7")
	assert.NoError(t, err)
	assert.Empty(t, conflict)

	assert.NoError(t, h.Release(ctx, 3, []int{12, 13}, "user:7"))
}

func TestHoldKeyPerRouteAndSeat(t *testing.T) {
	assert.Equal(t, "seat_hold:3:12", key(3, 12))
	assert.NotEqual(t, key(3, 12), key(4, 12))
}
