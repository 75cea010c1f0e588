package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusCancelled, false},
		{StatusRejected, StatusApproved, false},
		{StatusCancelled, StatusApproved, false},
	}

	for _, tt := range tests {
		got := CanTransition(tt.from, tt.to)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestDecide(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		to, err := Decide(StatusPending, true)
		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, to)
	})

	t.Run("reject pending", func(t *testing.T) {
		to, err := Decide(StatusPending, false)
		assert.NoError(t, err)
		assert.Equal(t, StatusRejected, to)
	})

	t.Run("deciding a terminal request fails", func(t *testing.T) {
		for _, from := range []Status{StatusApproved, StatusRejected, StatusCancelled} {
			to, err := Decide(from, true)
			assert.ErrorIs(t, err, ErrAlreadyProcessed)
			assert.Equal(t, from, to)
		}
	})
}

func TestCancel(t *testing.T) {
	t.Run("requester cancels own pending request", func(t *testing.T) {
		to, err := Cancel(StatusPending, "emp-1", "emp-1", false)
		assert.NoError(t, err)
		assert.Equal(t, StatusCancelled, to)
	})

	t.Run("someone else may not cancel", func(t *testing.T) {
		to, err := Cancel(StatusPending, "emp-1", "emp-2", false)
		assert.ErrorIs(t, err, ErrNotRequester)
		assert.Equal(t, StatusPending, to)
	})

	t.Run("admin override cancels on behalf", func(t *testing.T) {
		to, err := Cancel(StatusPending, "emp-1", "emp-2", true)
		assert.NoError(t, err)
		assert.Equal(t, StatusCancelled, to)
	})

	t.Run("terminal request cannot be cancelled even by admin", func(t *testing.T) {
		_, err := Cancel(StatusApproved, "emp-1", "emp-1", true)
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})
}
