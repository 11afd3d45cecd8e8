package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/kinsondigital/reactive"
	"github.com/kinsondigital/reactive/notify"
	"github.com/zoobzio/capitan"
)

var (
	// ErrBuildInfoMissing is returned by Announce when no build info was pushed.
	ErrBuildInfoMissing = errors.New("build info not received")

	// ErrSecretsMissing is returned by Announce when no secrets were pushed.
	ErrSecretsMissing = errors.New("announcement secrets not received")
)

// TweetSender posts a release announcement.
type TweetSender interface {
	SendTweet(ctx context.Context, secrets notify.Secrets, message string) error
}

// Announcer posts a release announcement once the build info and the
// credentials have been pushed, unless skipping was requested.
type Announcer struct {
	sender TweetSender

	build      notify.BuildInfo
	hasBuild   bool
	secrets    notify.Secrets
	hasSecrets bool
	secretsErr error
	skip       bool

	release []func()
}

// NewAnnouncer subscribes to the three reactables it needs.
func NewAnnouncer(
	sender TweetSender,
	builds reactive.Reactable[notify.BuildInfo],
	secrets reactive.Reactable[notify.Secrets],
	skip reactive.Reactable[bool],
) (*Announcer, error) {
	for _, arg := range []struct {
		param string
		value any
	}{
		{"sender", sender},
		{"builds", builds},
		{"secrets", secrets},
		{"skip", skip},
	} {
		if err := reactive.RequireNonNilValue(arg.param, arg.value); err != nil {
			return nil, err
		}
	}

	a := &Announcer{sender: sender}

	buildSub, err := builds.Subscribe(reactive.NewReactor(func(info notify.BuildInfo) {
		a.build = info
		a.hasBuild = true
	}, nil, nil))
	if err != nil {
		return nil, err
	}
	a.release = append(a.release, buildSub.Dispose)

	secretsSub, err := secrets.Subscribe(reactive.NewReactor(
		func(s notify.Secrets) {
			a.secrets = s
			a.hasSecrets = true
			a.secretsErr = nil
		},
		nil,
		func(err error) { a.secretsErr = err },
	))
	if err != nil {
		a.Dispose()
		return nil, err
	}
	a.release = append(a.release, secretsSub.Dispose)

	skipSub, err := skip.Subscribe(reactive.NewReactor(func(v bool) {
		a.skip = v
	}, nil, nil))
	if err != nil {
		a.Dispose()
		return nil, err
	}
	a.release = append(a.release, skipSub.Dispose)

	return a, nil
}

// Announce posts the release of version. It returns false without error when
// skipping was requested.
func (a *Announcer) Announce(ctx context.Context, version string) (bool, error) {
	if err := reactive.RequireNotEmpty("version", version); err != nil {
		return false, err
	}

	if a.skip {
		capitan.Emit(ctx, AnnouncementSkipped,
			KeyVersion.Field(version),
			KeyReason.Field("skip requested"),
		)
		return false, nil
	}

	if !a.hasBuild {
		return false, ErrBuildInfoMissing
	}
	if !a.hasSecrets {
		if a.secretsErr != nil {
			return false, fmt.Errorf("%w: %w", ErrSecretsMissing, a.secretsErr)
		}
		return false, ErrSecretsMissing
	}

	if err := a.sender.SendTweet(ctx, a.secrets, ReleaseMessage(a.build, version)); err != nil {
		return false, fmt.Errorf("send release announcement: %w", err)
	}

	capitan.Emit(ctx, AnnouncementSent,
		KeyProject.Field(a.build.ProjectName),
		KeyVersion.Field(version),
	)
	return true, nil
}

// Dispose releases every subscription.
func (a *Announcer) Dispose() {
	for _, release := range a.release {
		release()
	}
	a.release = nil
}

// ReleaseMessage renders the announcement text for version.
func ReleaseMessage(info notify.BuildInfo, version string) string {
	return fmt.Sprintf(
		"%s %s has been released!\nhttps://github.com/%s/%s/releases/tag/%s",
		info.ProjectName, version, info.RepoOwner, info.RepoName, version,
	)
}
