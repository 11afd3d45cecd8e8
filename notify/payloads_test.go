package notify_test

import (
	"errors"
	"testing"

	"github.com/kinsondigital/reactive"
	"github.com/kinsondigital/reactive/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireArgumentError(t *testing.T, err error, param string) {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, reactive.ErrInvalidArgument)

	var argErr *reactive.ArgumentError
	require.True(t, errors.As(err, &argErr), "expected *reactive.ArgumentError, got %T", err)
	assert.Equal(t, param, argErr.Param)
}

func TestNewRepoInfo(t *testing.T) {
	t.Parallel()

	info, err := notify.NewRepoInfo("KinsonDigital", "CICD")

	require.NoError(t, err)
	assert.Equal(t, "KinsonDigital", info.Owner)
	assert.Equal(t, "CICD", info.Name)
	assert.Equal(t, "KinsonDigital/CICD", info.FullName())
}

func TestNewRepoInfo_EmptyFields(t *testing.T) {
	t.Parallel()

	_, err := notify.NewRepoInfo("", "CICD")
	requireArgumentError(t, err, "owner")

	_, err = notify.NewRepoInfo("KinsonDigital", "")
	requireArgumentError(t, err, "name")
}

func TestNewBuildInfo_EmptyFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  [4]string
		param string
	}{
		{"owner", [4]string{"", "repo", "proj", "tok"}, "repoOwner"},
		{"repo", [4]string{"owner", "", "proj", "tok"}, "repoName"},
		{"project", [4]string{"owner", "repo", "", "tok"}, "projectName"},
		{"token", [4]string{"owner", "repo", "proj", ""}, "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := notify.NewBuildInfo(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			requireArgumentError(t, err, tt.param)
		})
	}
}

func TestBuildInfo_StringOmitsToken(t *testing.T) {
	t.Parallel()

	info, err := notify.NewBuildInfo("KinsonDigital", "Velaptor", "Velaptor", "ghp_secret")
	require.NoError(t, err)

	assert.NotContains(t, info.String(), "ghp_secret")
	assert.Contains(t, info.String(), "KinsonDigital/Velaptor")
}

func TestNewSecrets(t *testing.T) {
	t.Parallel()

	secrets, err := notify.NewSecrets("key", "secret", "token", "token-secret")
	require.NoError(t, err)
	assert.Equal(t, "token-secret", secrets.AccessTokenSecret)
	assert.NotContains(t, secrets.String(), "token-secret")

	_, err = notify.NewSecrets("key", "secret", "", "token-secret")
	requireArgumentError(t, err, "accessToken")
}

func TestSecrets_Validate(t *testing.T) {
	t.Parallel()

	err := notify.Secrets{ConsumerAPIKey: "key", ConsumerAPISecret: "secret", AccessToken: "token"}.Validate()
	requireArgumentError(t, err, "accessTokenSecret")
}

func TestNewSolution(t *testing.T) {
	t.Parallel()

	projects := []string{"Velaptor", "VelaptorTesting"}
	solution, err := notify.NewSolution("Velaptor", "/src/Velaptor.sln", projects...)
	require.NoError(t, err)

	projects[0] = "changed"
	assert.Equal(t, "Velaptor", solution.Projects[0], "constructor should copy projects")
}

func TestNewSolution_EmptyFields(t *testing.T) {
	t.Parallel()

	_, err := notify.NewSolution("", "/src/Velaptor.sln")
	requireArgumentError(t, err, "name")

	_, err = notify.NewSolution("Velaptor", "")
	requireArgumentError(t, err, "path")

	_, err = notify.NewSolution("Velaptor", "/src/Velaptor.sln", "Velaptor", "")
	require.ErrorIs(t, err, reactive.ErrInvalidArgument)
}

func TestRepoInfo_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, notify.RepoInfo{Owner: "a", Name: "b"}.Validate())
	requireArgumentError(t, notify.RepoInfo{Owner: "a"}.Validate(), "name")
}
