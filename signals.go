package reactive

import "github.com/zoobzio/capitan"

// Notifier lifecycle signals.
var (
	// NotifierSubscribed is emitted when a reactor joins a notifier.
	NotifierSubscribed = capitan.NewSignal(
		"reactive.notifier.subscribed",
		"Reactor subscribed",
	)

	// NotifierUnsubscribed is emitted when an Unsubscriber removes its reactor.
	NotifierUnsubscribed = capitan.NewSignal(
		"reactive.notifier.unsubscribed",
		"Reactor unsubscribed",
	)

	// NotifierPushed is emitted after data has been delivered to subscribers.
	NotifierPushed = capitan.NewSignal(
		"reactive.notifier.pushed",
		"Data pushed to subscribers",
	)

	// NotifierErrored is emitted after an error has been delivered to subscribers.
	NotifierErrored = capitan.NewSignal(
		"reactive.notifier.error",
		"Error pushed to subscribers",
	)

	// NotifierEnded is emitted once, when notifications end.
	NotifierEnded = capitan.NewSignal(
		"reactive.notifier.ended",
		"Notifications ended",
	)

	// NotifierCleared is emitted when all subscribers are dropped.
	NotifierCleared = capitan.NewSignal(
		"reactive.notifier.cleared",
		"All reactors unsubscribed",
	)

	// NotifierDisposed is emitted once, on the first Dispose.
	NotifierDisposed = capitan.NewSignal(
		"reactive.notifier.disposed",
		"Notifier disposed",
	)
)

// Feed signals.
var (
	// FeedStarted is emitted when a Feed begins watching its source.
	FeedStarted = capitan.NewSignal(
		"reactive.feed.started",
		"Feed watching started",
	)

	// FeedStopped is emitted when a Feed stops watching.
	FeedStopped = capitan.NewSignal(
		"reactive.feed.stopped",
		"Feed watching stopped",
	)

	// FeedStateChanged is emitted when a Feed transitions between states.
	FeedStateChanged = capitan.NewSignal(
		"reactive.feed.state.changed",
		"Feed state transition",
	)

	// FeedChangeReceived is emitted when raw data arrives from the watcher.
	FeedChangeReceived = capitan.NewSignal(
		"reactive.feed.change.received",
		"Raw change received from watcher",
	)

	// FeedDecodeFailed is emitted when raw data cannot be decoded.
	FeedDecodeFailed = capitan.NewSignal(
		"reactive.feed.decode.failed",
		"Decoding failed",
	)

	// FeedValidationFailed is emitted when a decoded value is rejected.
	FeedValidationFailed = capitan.NewSignal(
		"reactive.feed.validation.failed",
		"Validation failed",
	)

	// FeedResolved is emitted when a value has been pushed to the target.
	FeedResolved = capitan.NewSignal(
		"reactive.feed.resolved",
		"Value resolved and pushed",
	)
)
