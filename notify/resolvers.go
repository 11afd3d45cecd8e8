package notify

import (
	"fmt"

	"github.com/samber/do/v2"
)

// Reactable resolvers, for code that is handed an injector rather than a Hub.

// ResolveRepoInfo retrieves the repository info reactable.
func ResolveRepoInfo(i do.Injector) (*RepoInfoReactable, error) {
	r, err := do.Invoke[*RepoInfoReactable](i)
	if err != nil {
		return nil, fmt.Errorf("resolve repo info reactable: %w", err)
	}
	return r, nil
}

// ResolveBuildInfo retrieves the build info reactable.
func ResolveBuildInfo(i do.Injector) (*BuildInfoReactable, error) {
	r, err := do.Invoke[*BuildInfoReactable](i)
	if err != nil {
		return nil, fmt.Errorf("resolve build info reactable: %w", err)
	}
	return r, nil
}

// ResolveSolution retrieves the solution reactable.
func ResolveSolution(i do.Injector) (*SolutionReactable, error) {
	r, err := do.Invoke[*SolutionReactable](i)
	if err != nil {
		return nil, fmt.Errorf("resolve solution reactable: %w", err)
	}
	return r, nil
}

// ResolveSecrets retrieves the secrets reactable.
func ResolveSecrets(i do.Injector) (*SecretsReactable, error) {
	r, err := do.Invoke[*SecretsReactable](i)
	if err != nil {
		return nil, fmt.Errorf("resolve secrets reactable: %w", err)
	}
	return r, nil
}

// ResolveSkipTweet retrieves the skip-tweet reactable.
func ResolveSkipTweet(i do.Injector) (*SkipTweetReactable, error) {
	r, err := do.Invoke[*SkipTweetReactable](i)
	if err != nil {
		return nil, fmt.Errorf("resolve skip-tweet reactable: %w", err)
	}
	return r, nil
}
