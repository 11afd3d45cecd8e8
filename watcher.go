package reactive

import "context"

// Watcher observes a configuration source and emits its raw content.
//
// Watch must emit the current content first so a Feed can resolve its
// initial value, then emit again whenever the source changes. The channel
// is closed when ctx is canceled or the source is exhausted.
type Watcher interface {
	Watch(ctx context.Context) (<-chan []byte, error)
}
