package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAdapter struct {
	stopped atomic.Int32
	stopErr error
	block   time.Duration
}

func (s *stubAdapter) Start(ctx context.Context) error {
	return nil
}

func (s *stubAdapter) Stop(ctx context.Context) error {
	if s.block > 0 {
		select {
		case <-time.After(s.block):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.stopped.Add(1)
	return s.stopErr
}

func TestStopStopsEveryAdapter(t *testing.T) {
	var (
		a = &stubAdapter{}
		b = &stubAdapter{stopErr: errors.New("boom")}
	)
	app := New(zap.NewNop())
	app.AddAdapter(a, b)

	app.Stop(context.Background())

	require.EqualValues(t, 1, a.stopped.Load())
	require.EqualValues(t, 1, b.stopped.Load())
}

func TestStopIsBoundedByTimeout(t *testing.T) {
	slow := &stubAdapter{block: time.Minute}
	app := New(zap.NewNop())
	app.WithShutdownTimeout(20 * time.Millisecond)
	app.AddAdapter(slow)

	start := time.Now()
	app.Stop(context.Background())

	require.Less(t, time.Since(start), 5*time.Second)
	require.EqualValues(t, 0, slow.stopped.Load())
}

func TestWithShutdownTimeoutKeepsDefault(t *testing.T) {
	app := New(zap.NewNop())
	app.WithShutdownTimeout(0)
	require.Equal(t, 5*time.Second, app.shutdownTimeout)

	app.WithShutdownTimeout(time.Second)
	require.Equal(t, time.Second, app.shutdownTimeout)
}
