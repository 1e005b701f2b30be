package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError(t *testing.T) {
	base := NewBaseError()
	assert.False(t, base.HasDetails())
	assert.False(t, base.IsAllCodeEqual(MalformedCommand))

	base.AddErrorDetails(
		NewErrorDetails("quantity must be positive", InvalidQuantity, "qty"),
		NewErrorDetails("price is not an integer", MalformedCommand, "price"),
	)
	base.PrependFields("AddLimit.")

	require.True(t, base.HasDetails())
	assert.Equal(t, "AddLimit.qty", base.GetDetails()[0].Field)
	assert.True(t, base.IsAnyCodeEqual(InvalidQuantity))
	assert.False(t, base.IsAllCodeEqual(InvalidQuantity))
	assert.Contains(t, base.Error(), "code: invalid_quantity; error: quantity must be positive; field: AddLimit.qty")
}

func TestErrorCodeEquals(t *testing.T) {
	details := NewErrorDetailsWithObject("order 5 not found", OrderNotFound, "order_id", int64(5))
	wrapped := fmt.Errorf("cancel: %w", details)

	assert.True(t, ErrorCodeEquals(details, OrderNotFound))
	assert.True(t, ErrorCodeEquals(wrapped, OrderNotFound))
	assert.False(t, ErrorCodeEquals(wrapped, InvalidPrice))
	assert.False(t, ErrorCodeEquals(stderrors.New("plain"), OrderNotFound))

	base := NewBaseError(NewErrorDetails("bad side", MalformedCommand, "side"))
	assert.True(t, ErrorCodeEquals(NewCodeTracer(MalformedCommand).Wrap(base), MalformedCommand))
}

func TestErrorTracer(t *testing.T) {
	cause := stderrors.New("file not found")
	tracer := NewCodeTracer(CommandReadError).Wrap(cause)

	assert.Equal(t, "command_read_error: file not found", tracer.Error())
	assert.ErrorIs(t, tracer, cause)
	assert.NotNil(t, tracer.StackTrace())

	fromErr := TracerFromError(cause)
	assert.Equal(t, "file not found", fromErr.Error())

	assert.Equal(t, "engine_stopped", NewCodeTracer(EngineStopped).Error())
	assert.Nil(t, NewTracer("bare").StackTrace())
}
