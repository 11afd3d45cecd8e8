package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kinsondigital/reactive"
	"github.com/kinsondigital/reactive/notify"
)

// Environment variables read by RepoInfoProducer. The explicit variables
// take precedence over GITHUB_REPOSITORY.
const (
	EnvRepoOwner        = "REPO_OWNER"
	EnvRepoName         = "REPO_NAME"
	EnvGitHubRepository = "GITHUB_REPOSITORY"
)

// RepoInfoProducer resolves the repository identity from the environment
// and pushes it.
type RepoInfoProducer struct {
	target reactive.Reactable[notify.RepoInfo]
	lookup func(string) (string, bool)
}

// NewRepoInfoProducer creates a producer pushing into target.
func NewRepoInfoProducer(target reactive.Reactable[notify.RepoInfo]) *RepoInfoProducer {
	return &RepoInfoProducer{target: target, lookup: os.LookupEnv}
}

// Lookup replaces os.LookupEnv, mainly for tests.
func (p *RepoInfoProducer) Lookup(fn func(string) (string, bool)) *RepoInfoProducer {
	p.lookup = fn
	return p
}

// Produce resolves the repository info and pushes it. Missing or malformed
// variables are returned as an error naming the missing field; subscribers
// receive the same error through their error callbacks.
func (p *RepoInfoProducer) Produce(ctx context.Context) (notify.RepoInfo, error) {
	watcher := reactive.NewEnvWatcher(map[string]string{
		"owner": EnvRepoOwner,
		"name":  EnvRepoName,
	}).Lookup(p.resolve)

	feed := reactive.NewFeed[notify.RepoInfo](watcher, p.target)
	if err := feed.Start(ctx); err != nil {
		return notify.RepoInfo{}, fmt.Errorf("resolve repository info: %w", err)
	}

	info, _ := feed.Current()
	return info, nil
}

// resolve falls back to splitting GITHUB_REPOSITORY when an explicit
// variable is unset.
func (p *RepoInfoProducer) resolve(name string) (string, bool) {
	if v, ok := p.lookup(name); ok && v != "" {
		return v, true
	}

	repo, ok := p.lookup(EnvGitHubRepository)
	if !ok {
		return "", false
	}
	owner, repoName, found := strings.Cut(repo, "/")
	if !found {
		return "", false
	}

	switch name {
	case EnvRepoOwner:
		return owner, owner != ""
	case EnvRepoName:
		return repoName, repoName != ""
	default:
		return "", false
	}
}
