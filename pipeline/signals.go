package pipeline

import "github.com/zoobzio/capitan"

// Announcement signals.
var (
	AnnouncementSent = capitan.NewSignal(
		"pipeline.announcement.sent",
		"Release announcement sent",
	)
	AnnouncementSkipped = capitan.NewSignal(
		"pipeline.announcement.skipped",
		"Release announcement skipped",
	)
)

// Field keys for pipeline events.
var (
	KeyProject = capitan.NewStringKey("project")
	KeyVersion = capitan.NewStringKey("version")
	KeyReason  = capitan.NewStringKey("reason")
)
