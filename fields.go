package reactive

import "github.com/zoobzio/capitan"

// Field keys for notifier and feed events.
var (
	// KeyNotifier is the name of the notifier an event concerns.
	KeyNotifier = capitan.NewStringKey("notifier")

	// KeySubscribers is the subscriber count after the operation.
	KeySubscribers = capitan.NewIntKey("subscribers")

	// KeyDelivered is the number of reactors that were visited by a push.
	KeyDelivered = capitan.NewIntKey("delivered")

	// KeyState is the current state of a Feed.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDebounce is the configured debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeyContentType is the MIME type of the Feed's codec.
	KeyContentType = capitan.NewStringKey("content_type")
)
