package notify

import "github.com/kinsondigital/reactive"

// Notifier names, used in capitan events and metrics.
const (
	RepoInfoName    = "repo-info"
	BuildInfoName   = "build-info"
	ProductNameName = "product-name"
	PRNumberName    = "pr-number"
	SolutionName    = "solution"
	SecretsName     = "secrets"
	SkipTweetName   = "skip-tweet"
)

// RepoInfoReactable pushes the repository identity.
type RepoInfoReactable struct {
	*reactive.Notifier[RepoInfo]
}

// NewRepoInfoReactable creates an empty RepoInfoReactable.
func NewRepoInfoReactable() *RepoInfoReactable {
	return &RepoInfoReactable{reactive.NewNotifier[RepoInfo](RepoInfoName)}
}

// BuildInfoReactable pushes project and repository metadata for a build.
type BuildInfoReactable struct {
	*reactive.Notifier[BuildInfo]
}

// NewBuildInfoReactable creates an empty BuildInfoReactable.
func NewBuildInfoReactable() *BuildInfoReactable {
	return &BuildInfoReactable{reactive.NewNotifier[BuildInfo](BuildInfoName)}
}

// ProductNameReactable pushes the product name.
type ProductNameReactable struct {
	*reactive.Notifier[string]
}

// NewProductNameReactable creates an empty ProductNameReactable.
func NewProductNameReactable() *ProductNameReactable {
	return &ProductNameReactable{reactive.NewNotifier[string](ProductNameName)}
}

// PRNumberReactable pushes the pull request number under build.
type PRNumberReactable struct {
	*reactive.Notifier[int]
}

// NewPRNumberReactable creates an empty PRNumberReactable.
func NewPRNumberReactable() *PRNumberReactable {
	return &PRNumberReactable{reactive.NewNotifier[int](PRNumberName)}
}

// SolutionReactable pushes the solution handle.
type SolutionReactable struct {
	*reactive.Notifier[Solution]
}

// NewSolutionReactable creates an empty SolutionReactable.
func NewSolutionReactable() *SolutionReactable {
	return &SolutionReactable{reactive.NewNotifier[Solution](SolutionName)}
}

// SecretsReactable pushes announcement credentials.
type SecretsReactable struct {
	*reactive.Notifier[Secrets]
}

// NewSecretsReactable creates an empty SecretsReactable.
func NewSecretsReactable() *SecretsReactable {
	return &SecretsReactable{reactive.NewNotifier[Secrets](SecretsName)}
}

// SkipTweetReactable pushes whether the release announcement is skipped.
type SkipTweetReactable struct {
	*reactive.Notifier[bool]
}

// NewSkipTweetReactable creates an empty SkipTweetReactable.
func NewSkipTweetReactable() *SkipTweetReactable {
	return &SkipTweetReactable{reactive.NewNotifier[bool](SkipTweetName)}
}

var (
	_ reactive.Reactable[RepoInfo]  = (*RepoInfoReactable)(nil)
	_ reactive.Reactable[BuildInfo] = (*BuildInfoReactable)(nil)
	_ reactive.Reactable[string]    = (*ProductNameReactable)(nil)
	_ reactive.Reactable[int]       = (*PRNumberReactable)(nil)
	_ reactive.Reactable[Solution]  = (*SolutionReactable)(nil)
	_ reactive.Reactable[Secrets]   = (*SecretsReactable)(nil)
	_ reactive.Reactable[bool]      = (*SkipTweetReactable)(nil)
)
