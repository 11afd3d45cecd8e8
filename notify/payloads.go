// Package notify defines the notification kinds exchanged by build pipeline
// components, one typed reactable per kind, and the Hub that owns them.
package notify

import (
	"fmt"

	"github.com/kinsondigital/reactive"
)

// RepoInfo identifies the GitHub repository being built.
type RepoInfo struct {
	Owner string `json:"owner" yaml:"owner" validate:"required"`
	Name  string `json:"name" yaml:"name" validate:"required"`
}

// NewRepoInfo returns a RepoInfo, or an ArgumentError naming the first empty
// field.
func NewRepoInfo(owner, name string) (RepoInfo, error) {
	if err := reactive.RequireNotEmpty("owner", owner); err != nil {
		return RepoInfo{}, err
	}
	if err := reactive.RequireNotEmpty("name", name); err != nil {
		return RepoInfo{}, err
	}
	return RepoInfo{Owner: owner, Name: name}, nil
}

// Validate reports the first empty field.
func (r RepoInfo) Validate() error {
	return reactive.ValidateStruct(r)
}

// FullName returns "owner/name".
func (r RepoInfo) FullName() string {
	return r.Owner + "/" + r.Name
}

// BuildInfo carries what a build needs to know about the project and the
// token used to reach the repository.
type BuildInfo struct {
	RepoOwner   string `json:"repoOwner" yaml:"repoOwner" validate:"required"`
	RepoName    string `json:"repoName" yaml:"repoName" validate:"required"`
	ProjectName string `json:"projectName" yaml:"projectName" validate:"required"`
	Token       string `json:"token" yaml:"token" validate:"required"`
}

// NewBuildInfo returns a BuildInfo, or an ArgumentError naming the first
// empty field.
func NewBuildInfo(repoOwner, repoName, projectName, token string) (BuildInfo, error) {
	for _, f := range []struct{ param, value string }{
		{"repoOwner", repoOwner},
		{"repoName", repoName},
		{"projectName", projectName},
		{"token", token},
	} {
		if err := reactive.RequireNotEmpty(f.param, f.value); err != nil {
			return BuildInfo{}, err
		}
	}
	return BuildInfo{
		RepoOwner:   repoOwner,
		RepoName:    repoName,
		ProjectName: projectName,
		Token:       token,
	}, nil
}

// Validate reports the first empty field.
func (b BuildInfo) Validate() error {
	return reactive.ValidateStruct(b)
}

// String omits the token.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s/%s (%s)", b.RepoOwner, b.RepoName, b.ProjectName)
}

// Secrets holds the credentials used to post release announcements.
type Secrets struct {
	ConsumerAPIKey    string `json:"consumerApiKey" yaml:"consumerApiKey" validate:"required"`
	ConsumerAPISecret string `json:"consumerApiSecret" yaml:"consumerApiSecret" validate:"required"`
	AccessToken       string `json:"accessToken" yaml:"accessToken" validate:"required"`
	AccessTokenSecret string `json:"accessTokenSecret" yaml:"accessTokenSecret" validate:"required"`
}

// NewSecrets returns a Secrets bundle, or an ArgumentError naming the first
// empty field.
func NewSecrets(consumerAPIKey, consumerAPISecret, accessToken, accessTokenSecret string) (Secrets, error) {
	for _, f := range []struct{ param, value string }{
		{"consumerApiKey", consumerAPIKey},
		{"consumerApiSecret", consumerAPISecret},
		{"accessToken", accessToken},
		{"accessTokenSecret", accessTokenSecret},
	} {
		if err := reactive.RequireNotEmpty(f.param, f.value); err != nil {
			return Secrets{}, err
		}
	}
	return Secrets{
		ConsumerAPIKey:    consumerAPIKey,
		ConsumerAPISecret: consumerAPISecret,
		AccessToken:       accessToken,
		AccessTokenSecret: accessTokenSecret,
	}, nil
}

// Validate reports the first empty field.
func (s Secrets) Validate() error {
	return reactive.ValidateStruct(s)
}

// String never prints credential values.
func (s Secrets) String() string {
	return "Secrets{redacted}"
}

// Solution is a handle to the solution being built.
type Solution struct {
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Path     string   `json:"path" yaml:"path" validate:"required"`
	Projects []string `json:"projects,omitempty" yaml:"projects,omitempty" validate:"dive,required"`
}

// NewSolution returns a Solution, or an ArgumentError naming the first empty
// field. The projects slice is copied.
func NewSolution(name, path string, projects ...string) (Solution, error) {
	s := Solution{Name: name, Path: path}
	if len(projects) > 0 {
		s.Projects = append([]string(nil), projects...)
	}
	if err := s.Validate(); err != nil {
		return Solution{}, err
	}
	return s, nil
}

// Validate reports the first empty field or project entry.
func (s Solution) Validate() error {
	return reactive.ValidateStruct(s)
}
