package reactive

import (
	"testing"
	"time"
)

func TestNoOpMetricsProvider_DoesNotPanic(_ *testing.T) {
	var m NoOpMetricsProvider

	// These should not panic
	m.OnPush("build-info", 2)
	m.OnSubscriberCount("build-info", 1)
	m.OnStateChange(StateWaiting, StateResolved)
	m.OnResolved(100 * time.Millisecond)
	m.OnRejected("validate", 50*time.Millisecond)
	m.OnChangeReceived()
}

var _ MetricsProvider = NoOpMetricsProvider{}
