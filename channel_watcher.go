package reactive

import "context"

// ChannelWatcher adapts an existing byte channel into a Watcher.
// Useful for tests and for producers that already compute their payloads.
type ChannelWatcher struct {
	src    <-chan []byte
	direct bool
}

// NewChannelWatcher creates a ChannelWatcher that relays values from src
// through its own goroutine, stopping when the Watch context ends.
func NewChannelWatcher(src <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{src: src}
}

// NewSyncChannelWatcher creates a ChannelWatcher that hands src to the
// Feed unchanged. Drive it with Feed.Process for deterministic tests.
func NewSyncChannelWatcher(src <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{src: src, direct: true}
}

// Watch returns the relay channel, or src itself for a sync watcher.
func (w *ChannelWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if w.direct {
		return w.src, nil
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			var (
				v  []byte
				ok bool
			)
			select {
			case <-ctx.Done():
				return
			case v, ok = <-w.src:
				if !ok {
					return
				}
			}
			if !send(ctx, out, v) {
				return
			}
		}
	}()
	return out, nil
}

// send delivers v on out unless ctx ends first.
func send(ctx context.Context, out chan<- []byte, v []byte) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
