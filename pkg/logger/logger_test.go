package logger

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
)

// mockLogLevel is a valid zapcore.Level value for testing.
const mockLogLevel int8 = 0 // zapcore.InfoLevel

func TestGetReturnsLoggerInstance(t *testing.T) {
	logger := Get(mockLogLevel)
	if logger == nil {
		t.Fatal("Get should return a non-nil logger")
	}
}

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	logger2 := Get(mockLogLevel)
	if logger1 != logger2 {
		t.Error("Get should return the same logger instance on subsequent calls")
	}
}

func TestWithLoggerAddsLoggerToContext(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)
	newCtx := WithLogger(ctx, logger)

	got := newCtx.Value(loggerContextKey{})
	if got == nil {
		t.Fatal("WithLogger should add logger to context")
	}
	if got != logger {
		t.Error("WithLogger should store the provided logger in context")
	}
}

func TestWithLoggerReturnsSameContextIfLoggerAlreadySet(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)
	ctxWithLogger := context.WithValue(ctx, loggerContextKey{}, logger)

	resultCtx := WithLogger(ctxWithLogger, logger)
	if resultCtx != ctxWithLogger {
		t.Error("WithLogger should return the same context if logger is already set and matches")
	}
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	Get(mockLogLevel)
	log := FromContext(context.Background())
	if log == nil {
		t.Fatal("FromContext should never return nil")
	}
}

func TestFromContextPrefersContextLogger(t *testing.T) {
	discard := logr.Discard()
	ctx := WithLogger(context.Background(), &discard)
	if FromContext(ctx) != &discard {
		t.Error("FromContext should return the logger stored in the context")
	}
}

func TestSyncDoesNotPanic(t *testing.T) {
	Get(mockLogLevel)
	Sync()
}

func TestGetNoopLogger(t *testing.T) {
	if GetNoopLogger() == nil {
		t.Fatal("GetNoopLogger should return a non-nil logger")
	}
}
