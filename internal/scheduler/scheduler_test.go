package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeRebuilder struct {
	dirty    atomic.Bool
	rebuilds atomic.Int32
}

func (f *fakeRebuilder) Rebuild(ctx context.Context) bool {
	f.rebuilds.Add(1)
	f.dirty.Store(false)
	return true
}

func (f *fakeRebuilder) Dirty() bool {
	return f.dirty.Load()
}

func TestRebuildScheduler_InitialFitAndDirtyRetrigger(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	engine := &fakeRebuilder{}
	engine.dirty.Store(true)
	s := New(engine, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Initial rebuild happens regardless of ticks.
	assert.Eventually(t, func() bool {
		return engine.rebuilds.Load() == 1
	}, time.Second, time.Millisecond)

	// A clean index is left alone.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), engine.rebuilds.Load())

	// Marking dirty triggers a rebuild on the next tick.
	engine.dirty.Store(true)
	assert.Eventually(t, func() bool {
		return engine.rebuilds.Load() == 2
	}, time.Second, time.Millisecond)

	cancel()
	<-done
}
