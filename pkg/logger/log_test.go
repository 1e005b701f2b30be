package logger

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/muhammadchandra19/limit-order-book/pkg/errors"
	"github.com/muhammadchandra19/limit-order-book/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(
		WithLoggingLevel(DebugLevel),
		WithEncoding(ConsoleEncoding),
		WithOutputPaths([]string{"stderr"}),
		WithTimeKey("ts"),
		WithLevelKey("severity"),
		WithCallerTraceSkip(1),
	)
	require.NoError(t, err)
	assert.NotNil(t, log.GetZap())
	assert.True(t, log.GetZap().Core().Enabled(zapcore.DebugLevel))
}

func TestLevelParsing(t *testing.T) {
	testCases := []struct {
		level    Level
		expected zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{Level("WARN"), zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{Level("verbose"), zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(string(tc.level), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.level.getZapLevel())
		})
	}
}

func TestLogger_ContextFields(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)

	ctx := util.WithInstrument(util.WithRunID(context.Background(), "run-1"), "LOB")
	log.InfoContext(ctx, "command processed", NewField("orderID", int64(7)))
	log.DebugContext(context.Background(), "no context fields")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "run-1", fields["run_id"])
	assert.Equal(t, "LOB", fields["instrument"])
	assert.Equal(t, int64(7), fields["orderID"])

	assert.NotContains(t, entries[1].ContextMap(), "run_id")
}

func TestLogger_ErrorCarriesStack(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	err := errors.NewCodeTracer(errors.CommandReadError).Wrap(stderrors.New("disk gone"))
	log.Error(err, Field{Key: "action", Value: "read_command"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "command_read_error: disk gone", entries[0].Message)
	assert.Equal(t, "read_command", entries[0].ContextMap()["action"])
	assert.NotEmpty(t, entries[0].Stack)
}

func TestLogger_WithFields(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	child := log.WithFields(Field{Key: "component", Value: "engine"})
	child.Warn("queue full")
	log.Debug("filtered out")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "engine", entries[0].ContextMap()["component"])
}
