package reactive

// Unsubscriber severs one subscription. It is returned by Notifier.Subscribe.
type Unsubscriber[T any] struct {
	owner   *Notifier[T]
	reactor *Reactor[T]
}

// Dispose removes the captured reactor from its notifier if it is still
// subscribed. It is safe to call repeatedly and after the notifier was
// disposed or cleared.
func (u *Unsubscriber[T]) Dispose() {
	if u == nil || u.owner == nil {
		return
	}
	if u.owner.remove(u.reactor) {
		u.owner.countChanged(NotifierUnsubscribed)
	}
}

// Reactor returns the reactor this handle refers to.
func (u *Unsubscriber[T]) Reactor() *Reactor[T] {
	return u.reactor
}
