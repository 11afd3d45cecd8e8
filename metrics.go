package reactive

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Attach one to a Notifier or a Feed to receive callbacks on key events.
type MetricsProvider interface {
	// OnPush is called after a notifier delivered data. Delivered is the
	// number of reactors that were still subscribed at their turn.
	OnPush(notifier string, delivered int)

	// OnSubscriberCount is called whenever a notifier's subscriber list changes size.
	OnSubscriberCount(notifier string, count int)

	// OnStateChange is called when a feed transitions between states.
	OnStateChange(from, to State)

	// OnResolved is called when a feed pushed a value.
	// Duration covers decode, validation and delivery.
	OnResolved(duration time.Duration)

	// OnRejected is called when a feed drops a change.
	// Stage is "decode" or "validate".
	OnRejected(stage string, duration time.Duration)

	// OnChangeReceived is called when a feed receives raw data from its watcher.
	OnChangeReceived()
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Embed it to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnPush(_ string, _ int) {}

func (NoOpMetricsProvider) OnSubscriberCount(_ string, _ int) {}

func (NoOpMetricsProvider) OnStateChange(_, _ State) {}

func (NoOpMetricsProvider) OnResolved(_ time.Duration) {}

func (NoOpMetricsProvider) OnRejected(_ string, _ time.Duration) {}

func (NoOpMetricsProvider) OnChangeReceived() {}
