package reactive

// Reactor holds one subscriber's callbacks. Any callback may be nil.
//
// Once OnCompleted has run, the reactor ignores further data. Errors are
// still delivered after completion.
type Reactor[T any] struct {
	onNext      func(T)
	onCompleted func()
	onError     func(error)
	completed   bool
}

// NewReactor creates a Reactor from the given callbacks.
//
// Example:
//
//	r := reactive.NewReactor(
//	    func(info notify.RepoInfo) { owner = info.Owner },
//	    func() { log.Println("repo info final") },
//	    nil,
//	)
func NewReactor[T any](onNext func(T), onCompleted func(), onError func(error)) *Reactor[T] {
	return &Reactor[T]{
		onNext:      onNext,
		onCompleted: onCompleted,
		onError:     onError,
	}
}

// OnNext delivers data unless the reactor has completed. A panic raised by
// the callback propagates to the caller.
func (r *Reactor[T]) OnNext(data T) {
	if r.completed || r.onNext == nil {
		return
	}
	r.onNext(data)
}

// OnCompleted runs the completion callback the first time it is called.
func (r *Reactor[T]) OnCompleted() {
	if r.completed {
		return
	}
	r.completed = true
	if r.onCompleted != nil {
		r.onCompleted()
	}
}

// OnError delivers err to the error callback, if any.
func (r *Reactor[T]) OnError(err error) {
	if r.onError != nil {
		r.onError(err)
	}
}

// Completed reports whether OnCompleted has been called.
func (r *Reactor[T]) Completed() bool {
	return r.completed
}
