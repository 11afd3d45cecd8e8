package reactive

import (
	"context"
	"slices"

	"github.com/zoobzio/capitan"
)

// Reactable is a typed push-notification channel. Data pushed through it is
// delivered synchronously, on the calling goroutine, to every subscribed
// Reactor, last subscriber first.
type Reactable[T any] interface {
	// Subscribe adds r to the subscriber list unless it is already present.
	// The returned Unsubscriber removes exactly that reactor.
	Subscribe(r *Reactor[T]) (*Unsubscriber[T], error)

	// Push delivers data to every current subscriber.
	Push(data T)

	// EndNotifications completes every current subscriber once.
	// Calls after the first are no-ops.
	EndNotifications()

	// UnsubscribeAll drops every subscriber.
	UnsubscribeAll()

	// Dispose drops every subscriber and marks the reactable disposed.
	Dispose()
}

// Notifier is the generic Reactable engine.
//
// A Notifier is not safe for concurrent use. Callbacks may subscribe or
// unsubscribe reactors (themselves included) while a push is in progress.
type Notifier[T any] struct {
	name     string
	reactors []*Reactor[T]
	ended    bool
	disposed bool
	metrics  MetricsProvider
	errors   *errorLog
	lastErr  error
}

// NewNotifier creates an empty Notifier. The name identifies it in events
// and metrics.
func NewNotifier[T any](name string) *Notifier[T] {
	return &Notifier[T]{name: name}
}

// Metrics sets a metrics provider. Must be called before the notifier is shared.
func (n *Notifier[T]) Metrics(provider MetricsProvider) *Notifier[T] {
	n.metrics = provider
	return n
}

// ErrorHistorySize sets the number of pushed errors to retain.
// Use 0 (default) to only retain the most recent error via LastError().
func (n *Notifier[T]) ErrorHistorySize(size int) *Notifier[T] {
	n.errors = newErrorLog(size)
	return n
}

// Name returns the notifier's name.
func (n *Notifier[T]) Name() string {
	return n.name
}

// SubscriberCount returns the number of subscribed reactors.
func (n *Notifier[T]) SubscriberCount() int {
	return len(n.reactors)
}

// Ended reports whether EndNotifications has run.
func (n *Notifier[T]) Ended() bool {
	return n.ended
}

// Disposed reports whether Dispose has run.
func (n *Notifier[T]) Disposed() bool {
	return n.disposed
}

// LastError returns the most recent error passed to PushError, or nil.
func (n *Notifier[T]) LastError() error {
	return n.lastErr
}

// ErrorHistory returns recently pushed errors, oldest first.
// Returns nil if error history is not enabled (see ErrorHistorySize).
func (n *Notifier[T]) ErrorHistory() []error {
	return n.errors.snapshot()
}

// Subscribe adds r to the subscriber list. Subscribing a reactor that is
// already present returns a new Unsubscriber for the existing entry.
// A nil reactor is rejected with an ArgumentError.
func (n *Notifier[T]) Subscribe(r *Reactor[T]) (*Unsubscriber[T], error) {
	if err := RequireNotNil("reactor", r); err != nil {
		return nil, err
	}

	if !n.contains(r) {
		n.reactors = append(n.reactors, r)
		n.countChanged(NotifierSubscribed)
	}

	return &Unsubscriber[T]{owner: n, reactor: r}, nil
}

// Push delivers data to every subscriber, last subscribed first.
//
// The walk runs over a snapshot of the list taken before the first
// callback. A reactor removed by an earlier callback in the same push is
// skipped; a reactor added during the push is not visited.
func (n *Notifier[T]) Push(data T) {
	delivered := 0
	n.each(func(r *Reactor[T]) {
		delivered++
		r.OnNext(data)
	})

	capitan.Emit(context.Background(), NotifierPushed,
		KeyNotifier.Field(n.name),
		KeyDelivered.Field(delivered),
	)
	if n.metrics != nil {
		n.metrics.OnPush(n.name, delivered)
	}
}

// PushError delivers err to every subscriber, last subscribed first, and
// records it in the error history. A nil error is ignored.
func (n *Notifier[T]) PushError(err error) {
	if err == nil {
		return
	}
	n.lastErr = err
	n.errors.record(err)

	n.each(func(r *Reactor[T]) {
		r.OnError(err)
	})

	capitan.Emit(context.Background(), NotifierErrored,
		KeyNotifier.Field(n.name),
		KeyError.Field(err.Error()),
	)
}

// EndNotifications completes every subscriber, last subscribed first.
// Only the first call has any effect; reactors subscribed afterwards are
// never completed by this notifier.
func (n *Notifier[T]) EndNotifications() {
	if n.ended {
		return
	}
	n.ended = true

	n.each(func(r *Reactor[T]) {
		r.OnCompleted()
	})

	capitan.Emit(context.Background(), NotifierEnded,
		KeyNotifier.Field(n.name),
		KeySubscribers.Field(len(n.reactors)),
	)
}

// UnsubscribeAll drops every subscriber, whatever the notifier's state.
func (n *Notifier[T]) UnsubscribeAll() {
	n.clearReactors()
	n.countChanged(NotifierCleared)
}

// Dispose drops every subscriber and marks the notifier disposed.
// Calls after the first are no-ops.
func (n *Notifier[T]) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.clearReactors()
	n.countChanged(NotifierDisposed)
}

// Shutdown disposes the notifier. It lets dependency injection containers
// release the notifier together with its owner.
func (n *Notifier[T]) Shutdown() {
	n.Dispose()
}

// each visits a snapshot of the subscribers from the highest index down,
// skipping reactors that were removed before their turn.
func (n *Notifier[T]) each(fn func(*Reactor[T])) {
	snapshot := slices.Clone(n.reactors)
	for i := len(snapshot) - 1; i >= 0; i-- {
		r := snapshot[i]
		if !n.contains(r) {
			continue
		}
		fn(r)
	}
}

func (n *Notifier[T]) contains(r *Reactor[T]) bool {
	return slices.Contains(n.reactors, r)
}

// remove deletes r from the list, keeping the order of the others.
// It reports whether r was present.
func (n *Notifier[T]) remove(r *Reactor[T]) bool {
	i := slices.Index(n.reactors, r)
	if i < 0 {
		return false
	}
	n.reactors = slices.Delete(n.reactors, i, i+1)
	return true
}

func (n *Notifier[T]) clearReactors() {
	clear(n.reactors)
	n.reactors = n.reactors[:0]
}

func (n *Notifier[T]) countChanged(signal capitan.Signal) {
	capitan.Emit(context.Background(), signal,
		KeyNotifier.Field(n.name),
		KeySubscribers.Field(len(n.reactors)),
	)
	if n.metrics != nil {
		n.metrics.OnSubscriberCount(n.name, len(n.reactors))
	}
}

// Ensure Notifier implements Reactable.
var _ Reactable[struct{}] = (*Notifier[struct{}])(nil)
