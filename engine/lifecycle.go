package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/docforge/convertd"
	"github.com/docforge/convertd/errors"
	"github.com/docforge/convertd/staging"
)

// DefaultInitTimeout bounds the wait for engine readiness during one
// initialization attempt.
const DefaultInitTimeout = 300 * time.Second

// State is the lifecycle's current phase. Transitions are monotonic except
// Failed, which the next Handle call resets by starting a fresh attempt.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadFunc acquires and prepares an engine handle. It is the injection point
// for the module acquisition side effect; Lifecycle guarantees at most one
// concurrent execution.
type LoadFunc func(ctx context.Context) (convertd.Handle, error)

// Lifecycle owns the single engine handle and the single-flight
// initialization guard around it.
type Lifecycle struct {
	load    LoadFunc
	timeout time.Duration
	logger  *zap.Logger

	mu      sync.Mutex
	state   State
	handle  convertd.Handle
	attempt *attempt
}

// attempt is one in-flight load shared by all concurrent callers.
type attempt struct {
	done   chan struct{}
	handle convertd.Handle
	err    error
}

// LifecycleOption configures a Lifecycle.
type LifecycleOption func(*Lifecycle)

// WithTimeout overrides the readiness timeout.
func WithTimeout(d time.Duration) LifecycleOption {
	return func(l *Lifecycle) { l.timeout = d }
}

// WithLifecycleLogger sets the lifecycle logger. The default is a no-op
// logger.
func WithLifecycleLogger(logger *zap.Logger) LifecycleOption {
	return func(l *Lifecycle) { l.logger = logger }
}

// NewLifecycle creates a lifecycle around load. No loading happens until the
// first Handle call.
func NewLifecycle(load LoadFunc, opts ...LifecycleOption) *Lifecycle {
	l := &Lifecycle{
		load:    load,
		timeout: DefaultInitTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Handle returns the ready engine handle, initializing it if necessary.
//
// Safe to call concurrently: if a load is in flight, the caller attaches to
// it and receives the same outcome. If the state is Uninitialized or Failed,
// the caller becomes the sole driver of a fresh attempt. A failed attempt is
// discarded, never replayed. The staging layout is guaranteed to exist by the
// time Handle returns a non-nil handle.
func (l *Lifecycle) Handle(ctx context.Context) (convertd.Handle, error) {
	l.mu.Lock()
	if l.state == StateReady {
		h := l.handle
		l.mu.Unlock()
		return h, nil
	}

	a := l.attempt
	if a == nil {
		a = &attempt{done: make(chan struct{})}
		l.attempt = a
		l.state = StateLoading
		l.logger.Info("engine initialization started")
		go l.run(a)
	}
	l.mu.Unlock()

	select {
	case <-a.done:
		return a.handle, a.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// run drives one loading attempt: module acquisition raced against the
// readiness timer, then staging layout creation.
func (l *Lifecycle) run(a *attempt) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	type outcome struct {
		handle convertd.Handle
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		h, err := l.load(ctx)
		if err == nil {
			err = staging.EnsureLayout(h.FS())
		}
		ch <- outcome{handle: h, err: err}
	}()

	var h convertd.Handle
	var err error
	select {
	case o := <-ch:
		h, err = o.handle, o.err
	case <-ctx.Done():
		err = errors.InitTimeout(l.timeout)
	}

	l.mu.Lock()
	// A timed-out attempt may still be the registered one; clear it either
	// way so the next caller starts fresh instead of replaying this outcome.
	if l.attempt == a {
		l.attempt = nil
		if err != nil {
			l.state = StateFailed
		} else {
			l.state = StateReady
			l.handle = h
		}
	}
	l.mu.Unlock()

	if err != nil {
		l.logger.Warn("engine initialization failed", zap.Error(err))
	} else {
		l.logger.Info("engine ready")
	}

	a.handle, a.err = h, err
	close(a.done)
}
