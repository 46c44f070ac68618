package process

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type countingCleaner struct {
	calls atomic.Int32
	err   error
}

func (c *countingCleaner) CleanExpired(_ context.Context, _ time.Time) (int64, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestStoryCleaner_RunsImmediatelyAndOnTick(t *testing.T) {
	cleaner := &countingCleaner{}
	s := NewStoryCleaner(cleaner)
	s.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Setup(ctx) }()

	assert.Eventually(t, func() bool { return cleaner.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestStoryCleaner_ErrorDoesNotStop(t *testing.T) {
	cleaner := &countingCleaner{err: errors.New("db down")}
	s := NewStoryCleaner(cleaner)
	s.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Setup(ctx) }()

	assert.Eventually(t, func() bool { return cleaner.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestServer_BindsNonNilProcesses(t *testing.T) {
	srv := NewServer(&SubServers{StoryCleaner: NewStoryCleaner(&countingCleaner{})})
	require.Len(t, srv.items, 1)
	assert.Equal(t, "story-cleaner", srv.items[0].Name())

	ctx, cancel := context.WithCancel(context.Background())
	eg, gctx := errgroup.WithContext(ctx)
	srv.Start(eg, gctx)
	cancel()
	assert.NoError(t, eg.Wait())
}
