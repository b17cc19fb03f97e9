package storage

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct{ n int32 }

func TestLazy_ConcurrentConnectDialsOnce(t *testing.T) {
	var dials int32
	entered := make(chan struct{})
	release := make(chan struct{})

	l := NewLazy(func(ctx context.Context) (*fakeConn, error) {
		n := atomic.AddInt32(&dials, 1)
		if n == 1 {
			close(entered)
		}
		<-release
		return &fakeConn{n: n}, nil
	}, nil, Options{AutoConnect: true, ConnectTimeout: time.Second})

	const callers = 16
	results := make([]*fakeConn, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = l.Connect(context.Background())
	}()
	<-entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i], errs[i] = l.Connect(context.Background())
			} else {
				results[i], errs[i] = l.Get(context.Background())
			}
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&dials))
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

func TestLazy_ConnectAfterSuccessIsNoop(t *testing.T) {
	var dials int32
	l := NewLazy(func(ctx context.Context) (*fakeConn, error) {
		atomic.AddInt32(&dials, 1)
		return &fakeConn{}, nil
	}, nil, Options{})

	first, err := l.Connect(context.Background())
	require.NoError(t, err)
	second, err := l.Connect(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&dials))
	assert.True(t, l.Connected())
}

func TestLazy_FailureAllowsRetry(t *testing.T) {
	var dials int32
	boom := errors.New("connection refused")
	l := NewLazy(func(ctx context.Context) (*fakeConn, error) {
		if atomic.AddInt32(&dials, 1) == 1 {
			return nil, boom
		}
		return &fakeConn{}, nil
	}, nil, Options{AutoConnect: true})

	_, err := l.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, l.Connected())

	conn, err := l.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, conn)
	assert.Equal(t, int32(2), atomic.LoadInt32(&dials))
}

func TestLazy_WithoutAutoConnect(t *testing.T) {
	var dials int32
	l := NewLazy(func(ctx context.Context) (*fakeConn, error) {
		atomic.AddInt32(&dials, 1)
		return &fakeConn{}, nil
	}, nil, Options{AutoConnect: false})

	_, err := l.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, int32(0), atomic.LoadInt32(&dials))

	_, err = l.Connect(context.Background())
	require.NoError(t, err)

	_, err = l.Get(context.Background())
	assert.NoError(t, err)
}

func TestLazy_CallerCancellationDoesNotAbortDial(t *testing.T) {
	l := NewLazy(func(ctx context.Context) (*fakeConn, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return &fakeConn{}, nil
	}, nil, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Connect(ctx)
	assert.NoError(t, err)
}

func TestLazy_CloseResets(t *testing.T) {
	var dials, closes int32
	l := NewLazy(func(ctx context.Context) (*fakeConn, error) {
		atomic.AddInt32(&dials, 1)
		return &fakeConn{}, nil
	}, func(*fakeConn) error {
		atomic.AddInt32(&closes, 1)
		return nil
	}, Options{AutoConnect: true})

	require.NoError(t, l.Close())
	assert.Equal(t, int32(0), atomic.LoadInt32(&closes))

	_, err := l.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, l.Close())
	assert.Equal(t, int32(1), atomic.LoadInt32(&closes))
	assert.False(t, l.Connected())

	_, err = l.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&dials))
}

func TestLazy_CloseDuringConnectDiscardsConnection(t *testing.T) {
	var dials int32
	var closed []*fakeConn
	var closedMu sync.Mutex
	entered := make(chan struct{})
	release := make(chan struct{})

	l := NewLazy(func(ctx context.Context) (*fakeConn, error) {
		n := atomic.AddInt32(&dials, 1)
		if n == 1 {
			close(entered)
			<-release
		}
		return &fakeConn{n: n}, nil
	}, func(c *fakeConn) error {
		closedMu.Lock()
		closed = append(closed, c)
		closedMu.Unlock()
		return nil
	}, Options{AutoConnect: true, ConnectTimeout: time.Second})

	errc := make(chan error, 1)
	go func() {
		_, err := l.Connect(context.Background())
		errc <- err
	}()
	<-entered

	require.NoError(t, l.Close())
	close(release)

	err := <-errc
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, l.Connected())

	closedMu.Lock()
	require.Len(t, closed, 1)
	assert.Equal(t, int32(1), closed[0].n)
	closedMu.Unlock()

	// A fresh Connect after Close dials again instead of joining the stale dial.
	conn, err := l.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), conn.n)
	assert.True(t, l.Connected())
}
