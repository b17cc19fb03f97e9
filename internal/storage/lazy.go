package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

var (
	ErrNotConnected = errors.New("database not connected")
	// ErrClosed is returned by a Connect whose dial finished after Close.
	ErrClosed = errors.New("handle closed while connecting")
)

// DialFunc opens the underlying resource.
type DialFunc[T any] func(ctx context.Context) (T, error)

// CloseFunc releases a resource returned by a DialFunc.
type CloseFunc[T any] func(T) error

type Options struct {
	// AutoConnect makes Get dial on first use instead of failing with ErrNotConnected.
	AutoConnect bool
	// ConnectTimeout bounds a single dial. Zero means 5s.
	ConnectTimeout time.Duration
}

// Lazy is a connect-once handle to a store resource. Concurrent first-time
// connects share one dial; a failed dial leaves nothing behind so the next
// call retries.
type Lazy[T any] struct {
	dial  DialFunc[T]
	close CloseFunc[T]
	opts  Options

	group singleflight.Group

	mu    sync.RWMutex
	conn  T
	ready bool
	// epoch advances on every Close; a dial started in an older epoch is discarded.
	epoch uint64
}

func NewLazy[T any](dial DialFunc[T], closeFn CloseFunc[T], opts Options) *Lazy[T] {
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	return &Lazy[T]{dial: dial, close: closeFn, opts: opts}
}

// Connect establishes the connection, or returns the existing one.
func (l *Lazy[T]) Connect(ctx context.Context) (T, error) {
	if conn, ok := l.current(); ok {
		return conn, nil
	}

	l.mu.RLock()
	epoch := l.epoch
	l.mu.RUnlock()

	v, err, _ := l.group.Do("connect-"+strconv.FormatUint(epoch, 10), func() (interface{}, error) {
		if conn, ok := l.current(); ok {
			return conn, nil
		}

		// The dial is shared by every waiter, so one caller's cancellation must not end it.
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.opts.ConnectTimeout)
		defer cancel()

		conn, err := l.dial(dctx)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		if l.epoch != epoch {
			l.mu.Unlock()
			if l.close != nil {
				_ = l.close(conn)
			}
			return nil, ErrClosed
		}
		l.conn = conn
		l.ready = true
		l.mu.Unlock()
		return conn, nil
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("connect: %w", err)
	}
	return v.(T), nil
}

// Get returns the live connection, connecting first when AutoConnect is set.
func (l *Lazy[T]) Get(ctx context.Context) (T, error) {
	if conn, ok := l.current(); ok {
		return conn, nil
	}
	if !l.opts.AutoConnect {
		var zero T
		return zero, ErrNotConnected
	}
	return l.Connect(ctx)
}

// Connected reports whether a connection has been established.
func (l *Lazy[T]) Connected() bool {
	_, ok := l.current()
	return ok
}

// Close releases the connection if one is open. A later Connect dials again.
func (l *Lazy[T]) Close() error {
	l.mu.Lock()
	conn, ok := l.conn, l.ready
	var zero T
	l.conn = zero
	l.ready = false
	l.epoch++
	l.mu.Unlock()

	if !ok || l.close == nil {
		return nil
	}
	return l.close(conn)
}

func (l *Lazy[T]) current() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.conn, l.ready
}
