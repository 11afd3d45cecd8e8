package reactive

import "testing"

func TestSignalNames(t *testing.T) {
	cases := []struct {
		name string
		got  string
	}{
		{"reactive.notifier.subscribed", NotifierSubscribed.Name()},
		{"reactive.notifier.unsubscribed", NotifierUnsubscribed.Name()},
		{"reactive.notifier.pushed", NotifierPushed.Name()},
		{"reactive.notifier.error", NotifierErrored.Name()},
		{"reactive.notifier.ended", NotifierEnded.Name()},
		{"reactive.notifier.cleared", NotifierCleared.Name()},
		{"reactive.notifier.disposed", NotifierDisposed.Name()},
		{"reactive.feed.started", FeedStarted.Name()},
		{"reactive.feed.stopped", FeedStopped.Name()},
		{"reactive.feed.state.changed", FeedStateChanged.Name()},
		{"reactive.feed.change.received", FeedChangeReceived.Name()},
		{"reactive.feed.decode.failed", FeedDecodeFailed.Name()},
		{"reactive.feed.validation.failed", FeedValidationFailed.Name()},
		{"reactive.feed.resolved", FeedResolved.Name()},
	}
	for _, tc := range cases {
		if tc.got != tc.name {
			t.Errorf("expected name %q, got %q", tc.name, tc.got)
		}
	}
}
