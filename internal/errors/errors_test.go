package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("WrapNilReturnsNil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("WrapPreservesErrorChain", func(t *testing.T) {
		wrapped := Wrap(ErrNotFound, "secret not found")
		assert.True(t, Is(wrapped, ErrNotFound))
		assert.Equal(t, "secret not found: not found", wrapped.Error())
	})

	t.Run("DoubleWrapPreservesSentinel", func(t *testing.T) {
		wrapped := Wrap(Wrap(ErrUnauthorized, "inner"), "outer")
		assert.True(t, Is(wrapped, ErrUnauthorized))
	})
}

func TestWrapStorage(t *testing.T) {
	t.Run("NilReturnsNil", func(t *testing.T) {
		assert.Nil(t, WrapStorage(nil, "create secret"))
	})

	t.Run("TagsOperationAndSentinel", func(t *testing.T) {
		driverErr := New("pq: connection refused")
		err := WrapStorage(driverErr, "create secret")
		require.Error(t, err)
		assert.True(t, Is(err, ErrStorage))
		assert.True(t, Is(err, driverErr))
		assert.Contains(t, err.Error(), "create secret")
	})
}
