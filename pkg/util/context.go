package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const (
	runIDKey      = key("run-id")
	instrumentKey = key("instrument")
)

// NewRunID returns a uuid-v4 string identifying one pipeline run.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID returns a context with a run id.
// A new id is generated when the provided id is empty.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = NewRunID()
	}
	return context.WithValue(ctx, runIDKey, id)
}

// GetRunID returns the run id from context, or an empty string if not present.
func GetRunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithInstrument returns a context carrying the instrument symbol.
func WithInstrument(ctx context.Context, symbol string) context.Context {
	return context.WithValue(ctx, instrumentKey, symbol)
}

// GetInstrument returns the instrument symbol from context
// will return empty string if not present
func GetInstrument(ctx context.Context) string {
	symbol, _ := ctx.Value(instrumentKey).(string)
	return symbol
}
