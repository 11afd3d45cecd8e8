package reactive

// Lazy is a one-shot view over a Reactable. It subscribes when created,
// keeps the first value pushed, and releases its subscription when the
// reactable ends its notifications.
//
// Example:
//
//	solution, err := reactive.NewLazy[notify.Solution](hub.Solution())
//	...
//	if s, ok := solution.Value(); ok {
//	    build(s.Path)
//	}
type Lazy[T any] struct {
	value    T
	loaded   bool
	finished bool
	sub      *Unsubscriber[T]
}

// NewLazy subscribes to source and returns the accessor.
func NewLazy[T any](source Reactable[T]) (*Lazy[T], error) {
	if err := RequireNonNilValue("source", source); err != nil {
		return nil, err
	}

	l := &Lazy[T]{}
	sub, err := source.Subscribe(NewReactor(l.receive, l.finish, nil))
	if err != nil {
		return nil, err
	}
	l.sub = sub

	return l, nil
}

// Value returns the first value pushed and true, or the zero value and
// false if nothing has arrived.
func (l *Lazy[T]) Value() (T, bool) {
	return l.value, l.loaded
}

// Loaded reports whether a value has arrived.
func (l *Lazy[T]) Loaded() bool {
	return l.loaded
}

// Finished reports whether the source ended its notifications.
func (l *Lazy[T]) Finished() bool {
	return l.finished
}

// Dispose releases the subscription early. The cached value stays available.
func (l *Lazy[T]) Dispose() {
	l.sub.Dispose()
}

func (l *Lazy[T]) receive(v T) {
	if l.loaded {
		return
	}
	l.value = v
	l.loaded = true
}

func (l *Lazy[T]) finish() {
	l.finished = true
	l.sub.Dispose()
}
