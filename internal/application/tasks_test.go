package application

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAsyncRunner_DetachesAndLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	runner := NewAsyncRunner(zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	runner.Go(ctx, "ok", func(ctx context.Context) error {
		assert.NoError(t, ctx.Err())
		ran.Store(true)
		return nil
	})
	runner.Go(ctx, "fails", func(context.Context) error { return errBoom })
	runner.Go(ctx, "panics", func(context.Context) error { panic("bad") })

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	require.NoError(t, runner.Wait(waitCtx))

	assert.True(t, ran.Load())
	assert.Equal(t, 1, logs.FilterMessage("task failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("task panicked").Len())
}

func TestAsyncRunner_WaitTimeout(t *testing.T) {
	runner := NewAsyncRunner(zap.NewNop())
	release := make(chan struct{})
	defer close(release)

	runner.Go(context.Background(), "slow", func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, runner.Wait(ctx), context.DeadlineExceeded)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(ErrPhonesRequired))
	assert.Equal(t, KindValidation, KindOf(&InvalidPhoneError{Phone: "1"}))
	assert.Equal(t, KindNotFound, KindOf(ErrDocumentMismatch))
	assert.Equal(t, KindConflict, KindOf(ErrAlreadySigned))
	assert.Equal(t, KindInternal, KindOf(errBoom))
	assert.Equal(t, "Invalid phone number: 0812", (&InvalidPhoneError{Phone: "0812"}).Error())
}
