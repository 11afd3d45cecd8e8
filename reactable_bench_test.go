package reactive

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type benchSettings struct {
	Value int    `yaml:"value" json:"value"`
	Name  string `yaml:"name" json:"name"`
}

// Validate implements the Validator interface.
func (s benchSettings) Validate() error {
	if s.Value < 0 {
		return fmt.Errorf("value must be >= 0, got %d", s.Value)
	}
	if s.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func benchNotifier(b *testing.B, subscribers int) *Notifier[int] {
	b.Helper()
	n := NewNotifier[int]("bench")
	for i := 0; i < subscribers; i++ {
		if _, err := n.Subscribe(NewReactor(func(int) {}, nil, nil)); err != nil {
			b.Fatalf("Subscribe() error = %v", err)
		}
	}
	return n
}

func BenchmarkNotifier_Push(b *testing.B) {
	for _, subs := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("subscribers=%d", subs), func(b *testing.B) {
			n := benchNotifier(b, subs)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				n.Push(i)
			}
		})
	}
}

func BenchmarkNotifier_SubscribeUnsubscribe(b *testing.B) {
	n := benchNotifier(b, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sub, _ := n.Subscribe(NewReactor(func(int) {}, nil, nil)) //nolint:errcheck // reactor is never nil
		sub.Dispose()
	}
}

func BenchmarkFeed_ProcessSingle(b *testing.B) {
	ch := make(chan []byte, b.N+1)
	ch <- []byte(`{"value": 0, "name": "initial"}`)
	for i := 1; i <= b.N; i++ {
		ch <- []byte(fmt.Sprintf(`{"value": %d, "name": "test"}`, i))
	}

	n := NewNotifier[benchSettings]("bench")
	feed := NewFeed[benchSettings](NewSyncChannelWatcher(ch), n)

	ctx := context.Background()
	if err := feed.Start(ctx); err != nil {
		b.Fatalf("Start() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		feed.Process(ctx)
	}
}
