/*
Package reactive provides synchronous push notifications for wiring build
pipeline components together without direct dependencies between them.

A Notifier delivers values of one type to every subscribed Reactor, in
reverse subscription order, on the goroutine that calls Push. Producers push
configuration once it is resolved; consumers subscribe whenever they are
constructed and never need to know who produces the value or when.

# Basic Usage

	builds := reactive.NewNotifier[BuildInfo]("build-info")

	unsub, err := builds.Subscribe(reactive.NewReactor(
	    func(info BuildInfo) { log.Println("building", info.ProjectName) },
	    func() { log.Println("no more build info") },
	    func(err error) { log.Println("build info rejected:", err) },
	))
	if err != nil {
	    return err
	}
	defer unsub.Dispose()

	builds.Push(info)
	builds.EndNotifications()

# Delivery Rules

  - Subscribing the same reactor twice has no effect.
  - Push visits subscribers last-subscribed-first. A reactor unsubscribed by
    an earlier callback in the same push receives nothing; reactors
    subscribed during a push are first visited by the next one.
  - EndNotifications completes each subscriber once. Later calls, and
    reactors subscribed after the end, are never completed.
  - Dispose clears the subscriber list and may be called repeatedly.
  - Panics raised by callbacks propagate to the caller.

A Notifier is not safe for concurrent use.

# One-shot Values

Lazy caches the first value pushed and releases its subscription when the
notifier ends:

	solution, err := reactive.NewLazy[Solution](solutions)

# Feeds

Feed resolves a payload from a Watcher, decodes it with a Codec, validates
it, and pushes it through a Reactable:

	feed := reactive.NewFeed[BuildInfo](
	    reactive.NewFileWatcher("/etc/cicd/build.yaml"),
	    builds,
	).Codec(reactive.YAMLCodec{})

	if err := feed.Start(ctx); err != nil {
	    return err
	}
	return feed.Run(ctx)

Start blocks for the first change. Run pushes later changes on the calling
goroutine, debounced with the configured clockz.Clock, so tests can drive it
with a fake clock.

# Observability

Notifiers and feeds emit capitan signals (see signals.go) carrying the
typed fields in fields.go. Hook them to route lifecycle events to a logger.
A MetricsProvider receives the same information as counters and durations.
*/
package reactive
