package notify

import "github.com/samber/do/v2"

// Hub owns one instance of every typed reactable for the life of a process.
// Reactables are built on first use and disposed together by Close.
type Hub struct {
	injector do.Injector
}

// NewHub registers the reactables and any extra providers on a fresh
// injector. Providers run in order and may override earlier registrations.
func NewHub(providers ...func(do.Injector)) *Hub {
	injector := do.New()
	provideReactables(injector)
	for _, provide := range providers {
		provide(injector)
	}
	return &Hub{injector: injector}
}

// Injector exposes the underlying container so callers can register and
// resolve their own services next to the reactables.
func (h *Hub) Injector() do.Injector {
	return h.injector
}

// RepoInfo returns the repository info reactable.
func (h *Hub) RepoInfo() *RepoInfoReactable {
	return do.MustInvoke[*RepoInfoReactable](h.injector)
}

// BuildInfo returns the build info reactable.
func (h *Hub) BuildInfo() *BuildInfoReactable {
	return do.MustInvoke[*BuildInfoReactable](h.injector)
}

// ProductName returns the product name reactable.
func (h *Hub) ProductName() *ProductNameReactable {
	return do.MustInvoke[*ProductNameReactable](h.injector)
}

// PRNumber returns the pull request number reactable.
func (h *Hub) PRNumber() *PRNumberReactable {
	return do.MustInvoke[*PRNumberReactable](h.injector)
}

// Solution returns the solution reactable.
func (h *Hub) Solution() *SolutionReactable {
	return do.MustInvoke[*SolutionReactable](h.injector)
}

// Secrets returns the secrets reactable.
func (h *Hub) Secrets() *SecretsReactable {
	return do.MustInvoke[*SecretsReactable](h.injector)
}

// SkipTweet returns the skip-tweet reactable.
func (h *Hub) SkipTweet() *SkipTweetReactable {
	return do.MustInvoke[*SkipTweetReactable](h.injector)
}

// Close disposes every reactable that was built.
func (h *Hub) Close() {
	h.injector.Shutdown()
}

func provideReactables(i do.Injector) {
	do.Provide(i, func(do.Injector) (*RepoInfoReactable, error) {
		return NewRepoInfoReactable(), nil
	})
	do.Provide(i, func(do.Injector) (*BuildInfoReactable, error) {
		return NewBuildInfoReactable(), nil
	})
	do.Provide(i, func(do.Injector) (*ProductNameReactable, error) {
		return NewProductNameReactable(), nil
	})
	do.Provide(i, func(do.Injector) (*PRNumberReactable, error) {
		return NewPRNumberReactable(), nil
	})
	do.Provide(i, func(do.Injector) (*SolutionReactable, error) {
		return NewSolutionReactable(), nil
	})
	do.Provide(i, func(do.Injector) (*SecretsReactable, error) {
		return NewSecretsReactable(), nil
	})
	do.Provide(i, func(do.Injector) (*SkipTweetReactable, error) {
		return NewSkipTweetReactable(), nil
	})
}
