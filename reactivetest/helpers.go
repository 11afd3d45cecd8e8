// Package reactivetest provides test helpers for code built on reactive
// notifiers and feeds.
package reactivetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kinsondigital/reactive"
)

// TestSettings is a standard payload for testing feeds. It implements
// reactive.Validator.
type TestSettings struct {
	Owner   string `yaml:"owner" json:"owner"`
	Project string `yaml:"project" json:"project"`
	Retries int    `yaml:"retries" json:"retries"`
}

// Validate implements reactive.Validator.
func (s TestSettings) Validate() error {
	if err := reactive.RequireNotEmpty("owner", s.Owner); err != nil {
		return err
	}
	if err := reactive.RequireNotEmpty("project", s.Project); err != nil {
		return err
	}
	if s.Retries < 0 {
		return errors.New("retries must not be negative")
	}
	return nil
}

// Recorder captures everything delivered to its reactor.
type Recorder[T any] struct {
	Values    []T
	Errors    []error
	Completed int
}

// Reactor returns a reactor that appends to the recorder.
func (r *Recorder[T]) Reactor() *reactive.Reactor[T] {
	return reactive.NewReactor(
		func(v T) { r.Values = append(r.Values, v) },
		func() { r.Completed++ },
		func(err error) { r.Errors = append(r.Errors, err) },
	)
}

// Last returns the most recent value and true, or the zero value and false.
func (r *Recorder[T]) Last() (T, bool) {
	if len(r.Values) == 0 {
		var zero T
		return zero, false
	}
	return r.Values[len(r.Values)-1], true
}

// Record subscribes a new Recorder to source and fails the test if the
// subscription is rejected. The subscription is released at cleanup.
func Record[T any](t *testing.T, source reactive.Reactable[T]) *Recorder[T] {
	t.Helper()
	r := &Recorder[T]{}
	sub, err := source.Subscribe(r.Reactor())
	if err != nil {
		t.Fatalf("subscribe recorder: %v", err)
	}
	t.Cleanup(sub.Dispose)
	return r
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// RequireState fails the test immediately if the feed is not in the expected state.
func RequireState[T reactive.Validator](t *testing.T, f *reactive.Feed[T], expected reactive.State) {
	t.Helper()
	if got := f.State(); got != expected {
		t.Fatalf("expected state %s, got %s", expected, got)
	}
}

// RequireCurrent fails the test if Current() returns false or the value
// doesn't pass check.
func RequireCurrent[T reactive.Validator](t *testing.T, f *reactive.Feed[T], check func(T) bool) {
	t.Helper()
	v, ok := f.Current()
	if !ok {
		t.Fatal("expected a current value, got none")
	}
	if !check(v) {
		t.Fatalf("current value check failed: %+v", v)
	}
}

// NewTestFeed creates a feed over a sync channel watcher pushing into a
// fresh notifier. Returns the feed, the notifier, and a channel for sending
// test data.
func NewTestFeed(t *testing.T) (*reactive.Feed[TestSettings], *reactive.Notifier[TestSettings], chan<- []byte) {
	t.Helper()
	ch := make(chan []byte, 10)
	n := reactive.NewNotifier[TestSettings]("test-settings")
	t.Cleanup(n.Dispose)
	return reactive.NewFeed[TestSettings](reactive.NewSyncChannelWatcher(ch), n), n, ch
}

// StartFeed starts f and fails the test on error.
func StartFeed[T reactive.Validator](t *testing.T, f *reactive.Feed[T]) {
	t.Helper()
	if err := f.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
}
