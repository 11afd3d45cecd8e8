package reactive

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration used by Feed.Run.
const DefaultDebounce = 100 * time.Millisecond

// Validator is implemented by payload types a Feed can resolve.
type Validator interface {
	Validate() error
}

// errorPusher is implemented by reactables that forward errors to their
// subscribers, such as Notifier.
type errorPusher interface {
	PushError(err error)
}

// Feed resolves a payload from a Watcher and pushes it through a Reactable.
//
// Each change is decoded with the configured Codec and validated. Valid
// values are pushed to the target; rejected ones leave the last pushed
// value current and, when the target supports it, are pushed to the
// subscribers' error callbacks.
//
// Pushes always happen on the goroutine calling Start, Process or Run.
type Feed[T Validator] struct {
	watcher        Watcher
	target         Reactable[T]
	debounce       time.Duration
	startupTimeout time.Duration
	clock          clockz.Clock
	codec          Codec
	metrics        MetricsProvider
	onStop         func(State)
	endOnStop      bool

	state     atomic.Int32
	current   atomic.Pointer[T]
	lastError atomic.Pointer[error]
	errors    *errorLog

	mu      sync.Mutex
	started bool
	running bool
	changes <-chan []byte
}

// NewFeed creates a Feed that reads watcher and pushes into target.
//
// Example:
//
//	feed := reactive.NewFeed[notify.BuildInfo](
//	    reactive.NewFileWatcher("release.yaml"),
//	    hub.BuildInfo(),
//	).Codec(reactive.YAMLCodec{})
//
//	if err := feed.Start(ctx); err != nil {
//	    return err
//	}
func NewFeed[T Validator](watcher Watcher, target Reactable[T]) *Feed[T] {
	f := &Feed[T]{
		watcher:  watcher,
		target:   target,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
		codec:    JSONCodec{},
	}
	f.state.Store(int32(StateWaiting))
	return f
}

// Debounce sets how long Run waits for changes to settle before pushing
// the latest one. Default: 100ms. Must be called before Start().
func (f *Feed[T]) Debounce(d time.Duration) *Feed[T] {
	f.debounce = d
	return f
}

// Clock sets a custom clock. Use clockz.FakeClock in tests.
// Must be called before Start().
func (f *Feed[T]) Clock(clock clockz.Clock) *Feed[T] {
	f.clock = clock
	return f
}

// Codec sets the codec used to decode raw changes. Default: JSONCodec.
// Must be called before Start().
func (f *Feed[T]) Codec(codec Codec) *Feed[T] {
	f.codec = codec
	return f
}

// StartupTimeout bounds how long Start waits for the first change.
// Default: no timeout. Must be called before Start().
func (f *Feed[T]) StartupTimeout(d time.Duration) *Feed[T] {
	f.startupTimeout = d
	return f
}

// Metrics sets a metrics provider. Must be called before Start().
func (f *Feed[T]) Metrics(provider MetricsProvider) *Feed[T] {
	f.metrics = provider
	return f
}

// OnStop sets a callback invoked with the final state when Run returns.
// Must be called before Start().
func (f *Feed[T]) OnStop(fn func(State)) *Feed[T] {
	f.onStop = fn
	return f
}

// EndOnStop makes Run end the target's notifications when it returns, so
// one-shot consumers such as Lazy release their subscriptions.
// Must be called before Start().
func (f *Feed[T]) EndOnStop() *Feed[T] {
	f.endOnStop = true
	return f
}

// ErrorHistorySize sets the number of recent errors to retain.
// Use 0 (default) to only retain the most recent error via LastError().
// Must be called before Start().
func (f *Feed[T]) ErrorHistorySize(n int) *Feed[T] {
	f.errors = newErrorLog(n)
	return f
}

// State returns the current state of the Feed.
func (f *Feed[T]) State() State {
	return State(f.state.Load())
}

// Current returns the last value pushed and true, or the zero value and
// false if nothing has been pushed.
func (f *Feed[T]) Current() (T, bool) {
	ptr := f.current.Load()
	if ptr == nil {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// LastError returns the last rejection, or nil after a successful push.
func (f *Feed[T]) LastError() error {
	ptr := f.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns rejections since the last successful push, oldest
// first. Returns nil if error history is not enabled.
func (f *Feed[T]) ErrorHistory() []error {
	return f.errors.snapshot()
}

// Start begins watching and blocks until the first change has been
// processed. A rejected first change is returned as an error; the Feed
// keeps its channel so Process or Run can pick up later changes.
//
// Start can only be called once.
func (f *Feed[T]) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.started {
		f.mu.Unlock()
		return errors.New("feed already started")
	}
	f.started = true
	f.mu.Unlock()

	capitan.Emit(ctx, FeedStarted,
		KeyDebounce.Field(f.debounce),
		KeyContentType.Field(f.codec.ContentType()),
	)

	changes, err := f.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	f.changes = changes

	startupCtx := ctx
	if f.startupTimeout > 0 {
		var cancel context.CancelFunc
		startupCtx, cancel = f.clock.WithTimeout(ctx, f.startupTimeout)
		defer cancel()
	}

	select {
	case <-startupCtx.Done():
		if f.startupTimeout > 0 && errors.Is(startupCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("startup timeout: watcher did not emit initial value within %v", f.startupTimeout)
		}
		return startupCtx.Err()
	case raw, ok := <-changes:
		if !ok {
			return errors.New("watcher closed before emitting initial value")
		}
		f.received(ctx)
		return f.process(ctx, raw)
	}
}

// Process handles the next pending change without waiting.
// It returns false if the Feed is not started, nothing is pending, or the
// watcher has closed.
func (f *Feed[T]) Process(ctx context.Context) bool {
	if f.changes == nil {
		return false
	}

	select {
	case raw, ok := <-f.changes:
		if !ok {
			return false
		}
		f.received(ctx)
		_ = f.process(ctx, raw) //nolint:errcheck // Errors stored via setError
		return true
	default:
		return false
	}
}

// Run processes changes until ctx is canceled or the watcher closes.
// Bursts of changes within the debounce window are coalesced and only the
// latest is pushed; a pending change is flushed when the watcher closes.
func (f *Feed[T]) Run(ctx context.Context) error {
	f.mu.Lock()
	switch {
	case !f.started || f.changes == nil:
		f.mu.Unlock()
		return errors.New("feed not started")
	case f.running:
		f.mu.Unlock()
		return errors.New("feed already running")
	}
	f.running = true
	f.mu.Unlock()

	defer f.stopped(ctx)

	var (
		timer      clockz.Timer
		pending    []byte
		hasPending bool
	)

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case raw, ok := <-f.changes:
			if !ok {
				if hasPending {
					_ = f.process(ctx, pending) //nolint:errcheck // Errors stored via setError
				}
				return nil
			}

			f.received(ctx)
			pending = raw
			hasPending = true

			if timer == nil {
				timer = f.clock.NewTimer(f.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(f.debounce)
			}

		case <-timerC:
			if hasPending {
				_ = f.process(ctx, pending) //nolint:errcheck // Errors stored via setError
				hasPending = false
			}
		}
	}
}

// process decodes, validates and pushes a single change.
func (f *Feed[T]) process(ctx context.Context, raw []byte) error {
	start := f.clock.Now()
	oldState := f.State()

	var value T
	if err := f.codec.Decode(raw, &value); err != nil {
		err = fmt.Errorf("decode failed: %w", err)
		f.reject(ctx, oldState, FeedDecodeFailed, "decode", start, err)
		return err
	}

	if err := value.Validate(); err != nil {
		err = fmt.Errorf("validation failed: %w", err)
		f.reject(ctx, oldState, FeedValidationFailed, "validate", start, err)
		return err
	}

	f.target.Push(value)

	f.current.Store(&value)
	f.lastError.Store(nil)
	f.errors.reset()
	f.transitionState(ctx, oldState, StateResolved)
	capitan.Emit(ctx, FeedResolved)
	if f.metrics != nil {
		f.metrics.OnResolved(f.clock.Since(start))
	}

	return nil
}

func (f *Feed[T]) reject(ctx context.Context, oldState State, signal capitan.Signal, stage string, start time.Time, err error) {
	e := err
	f.lastError.Store(&e)
	f.errors.record(err)

	newState := StateStale
	if f.current.Load() == nil {
		newState = StateUnresolved
	}
	f.transitionState(ctx, oldState, newState)

	capitan.Emit(ctx, signal, KeyError.Field(err.Error()))
	if f.metrics != nil {
		f.metrics.OnRejected(stage, f.clock.Since(start))
	}

	if ep, ok := f.target.(errorPusher); ok {
		ep.PushError(err)
	}
}

func (f *Feed[T]) transitionState(ctx context.Context, oldState, newState State) {
	if oldState == newState {
		return
	}
	f.state.Store(int32(newState))
	capitan.Emit(ctx, FeedStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
	if f.metrics != nil {
		f.metrics.OnStateChange(oldState, newState)
	}
}

func (f *Feed[T]) received(ctx context.Context) {
	capitan.Emit(ctx, FeedChangeReceived)
	if f.metrics != nil {
		f.metrics.OnChangeReceived()
	}
}

func (f *Feed[T]) stopped(ctx context.Context) {
	f.mu.Lock()
	f.running = false
	f.mu.Unlock()

	finalState := f.State()
	capitan.Emit(ctx, FeedStopped, KeyState.Field(finalState.String()))
	if f.endOnStop {
		f.target.EndNotifications()
	}
	if f.onStop != nil {
		f.onStop(finalState)
	}
}
