package cron

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type countingCleaner struct {
	mu    sync.Mutex
	calls []int
	err   error
}

func (c *countingCleaner) CleanupOldLogs(days int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, days)
	return 3, c.err
}

func (c *countingCleaner) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func TestStartCleanup_RunsImmediatelyAndOnTick(t *testing.T) {
	cleaner := &countingCleaner{}
	ctx, cancel := context.WithCancel(context.Background())

	done := startCleanup(ctx, cleaner, 30, 10*time.Millisecond, zap.NewNop())

	require.Eventually(t, func() bool { return cleaner.count() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup task did not stop")
	}
	assert.Equal(t, 30, cleaner.calls[0])
}

func TestStartCleanup_LogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cleaner := &countingCleaner{err: errors.New("db down")}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startCleanup(ctx, cleaner, 7, time.Hour, zap.New(core))

	require.Eventually(t, func() bool {
		return logs.FilterMessage("Failed to cleanup old notification logs").Len() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestStartCleanup_DisabledRetention(t *testing.T) {
	cleaner := &countingCleaner{}
	done := StartCleanupTask(context.Background(), cleaner, 0, zap.NewNop())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled cleanup should return at once")
	}
	assert.Zero(t, cleaner.count())
}
