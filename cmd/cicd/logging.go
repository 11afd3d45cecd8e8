package main

import (
	"context"
	"time"

	"github.com/kinsondigital/reactive"
	"github.com/kinsondigital/reactive/pipeline"
	"github.com/kinsondigital/reactive/pkg/kubernetes"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/capitan"
)

type logRoute struct {
	signal  capitan.Signal
	level   logrus.Level
	message string
}

var logRoutes = []logRoute{
	{reactive.NotifierSubscribed, logrus.TraceLevel, "reactor subscribed"},
	{reactive.NotifierUnsubscribed, logrus.TraceLevel, "reactor unsubscribed"},
	{reactive.NotifierPushed, logrus.DebugLevel, "notification pushed"},
	{reactive.NotifierErrored, logrus.WarnLevel, "error pushed"},
	{reactive.NotifierEnded, logrus.DebugLevel, "notifications ended"},
	{reactive.NotifierCleared, logrus.DebugLevel, "subscribers cleared"},
	{reactive.NotifierDisposed, logrus.TraceLevel, "notifier disposed"},
	{reactive.FeedStarted, logrus.DebugLevel, "feed started"},
	{reactive.FeedStopped, logrus.DebugLevel, "feed stopped"},
	{reactive.FeedStateChanged, logrus.InfoLevel, "feed state changed"},
	{reactive.FeedDecodeFailed, logrus.ErrorLevel, "configuration could not be decoded"},
	{reactive.FeedValidationFailed, logrus.ErrorLevel, "configuration rejected"},
	{reactive.FeedResolved, logrus.DebugLevel, "configuration resolved"},
	{kubernetes.WatchFailed, logrus.WarnLevel, "kubernetes watch failed"},
	{pipeline.AnnouncementSent, logrus.InfoLevel, "release announced"},
	{pipeline.AnnouncementSkipped, logrus.InfoLevel, "release announcement skipped"},
}

// bridgeLogs routes capitan events to logger.
func bridgeLogs(logger *logrus.Logger) {
	for _, route := range logRoutes {
		capitan.Hook(route.signal, func(_ context.Context, e *capitan.Event) {
			logger.WithFields(eventFields(e)).Log(route.level, route.message)
		})
	}
}

func eventFields(e *capitan.Event) logrus.Fields {
	fields := logrus.Fields{}
	addField(fields, "notifier", e, reactive.KeyNotifier.From)
	addField(fields, "subscribers", e, reactive.KeySubscribers.From)
	addField(fields, "delivered", e, reactive.KeyDelivered.From)
	addField(fields, "state", e, reactive.KeyState.From)
	addField(fields, "old_state", e, reactive.KeyOldState.From)
	addField(fields, "new_state", e, reactive.KeyNewState.From)
	addField(fields, "content_type", e, reactive.KeyContentType.From)
	addField(fields, "debounce", e, reactive.KeyDebounce.From)
	addField(fields, "project", e, pipeline.KeyProject.From)
	addField(fields, "version", e, pipeline.KeyVersion.From)
	addField(fields, "reason", e, pipeline.KeyReason.From)
	addField(fields, logrus.ErrorKey, e, reactive.KeyError.From)
	return fields
}

func addField[V string | int | time.Duration](fields logrus.Fields, name string, e *capitan.Event, from func(*capitan.Event) (V, bool)) {
	if v, ok := from(e); ok {
		fields[name] = v
	}
}
