package kubernetes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/kinsondigital/reactive"
	"github.com/kinsondigital/reactive/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func announceSecret(data map[string][]byte) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "announce",
			Namespace: "ci",
		},
		Data: data,
	}
}

func fullSecretData() map[string][]byte {
	return map[string][]byte{
		"consumer-api-key":    []byte("key"),
		"consumer-api-secret": []byte("secret"),
		"access-token":        []byte("token"),
		"access-token-secret": []byte("token-secret"),
		"unrelated":           []byte("ignored"),
	}
}

func receive(t *testing.T, ch <-chan []byte) map[string]string {
	t.Helper()

	select {
	case data, ok := <-ch:
		require.True(t, ok, "channel closed before a value arrived")
		var obj map[string]string
		require.NoError(t, json.Unmarshal(data, &obj))
		return obj
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for value")
		return nil
	}
}

func TestWatcher_EmitsInitialSecretBundle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := fake.NewSimpleClientset(announceSecret(fullSecretData()))

	ch, err := NewSecretsWatcher(client, "ci", "announce").Watch(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"consumerApiKey":    "key",
		"consumerApiSecret": "secret",
		"accessToken":       "token",
		"accessTokenSecret": "token-secret",
	}, receive(t, ch))
}

func TestWatcher_EmitsInitialConfigMapBundle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := fake.NewSimpleClientset(&corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "repo", Namespace: "ci"},
		Data:       map[string]string{"owner": "KinsonDigital", "repo": "CICD"},
	})

	watcher := New(client, "ci", "repo",
		map[string]string{"owner": "owner", "name": "repo"},
		WithResourceType(ConfigMap),
	)
	ch, err := watcher.Watch(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"owner": "KinsonDigital", "name": "CICD"}, receive(t, ch))
}

func TestWatcher_ClosesOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

	client := fake.NewSimpleClientset(announceSecret(fullSecretData()))

	ch, err := NewSecretsWatcher(client, "ci", "announce").Watch(ctx)
	require.NoError(t, err)

	// Drain initial
	receive(t, ch)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "expected channel to close")
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}

func TestWatcher_RetriesUntilResourceExists(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := fake.NewSimpleClientset()

	ch, err := NewSecretsWatcher(client, "ci", "announce", WithRetryDelay(10*time.Millisecond)).Watch(ctx)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	_, err = client.CoreV1().Secrets("ci").Create(ctx, announceSecret(fullSecretData()), metav1.CreateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "token", receive(t, ch)["accessToken"])
}

func TestOptions(t *testing.T) {
	client := fake.NewSimpleClientset()

	watcher := New(client, "ci", "announce", SecretsKeys)
	assert.Equal(t, Secret, watcher.resourceType)
	assert.Equal(t, DefaultRetryDelay, watcher.retryDelay)

	watcher = New(client, "ci", "repo", nil, WithResourceType(ConfigMap), WithRetryDelay(time.Minute))
	assert.Equal(t, ConfigMap, watcher.resourceType)
	assert.Equal(t, time.Minute, watcher.retryDelay)
}

func TestExtractValue_OmitsMissingKeys(t *testing.T) {
	watcher := NewSecretsWatcher(fake.NewSimpleClientset(), "ci", "announce")

	value, ok := watcher.extractValue(announceSecret(map[string][]byte{
		"consumer-api-key": []byte("key"),
		"access-token":     []byte(""),
	}))

	require.True(t, ok)
	assert.JSONEq(t, `{"consumerApiKey": "key"}`, string(value))
}

func TestExtractValue_StringData(t *testing.T) {
	watcher := NewSecretsWatcher(fake.NewSimpleClientset(), "ci", "announce")

	secret := announceSecret(nil)
	secret.StringData = map[string]string{"access-token": "token"}

	value, ok := watcher.extractValue(secret)
	require.True(t, ok)
	assert.JSONEq(t, `{"accessToken": "token"}`, string(value))
}

func TestExtractValue_WrongType(t *testing.T) {
	secrets := NewSecretsWatcher(fake.NewSimpleClientset(), "ci", "announce")
	_, ok := secrets.extractValue(&corev1.ConfigMap{Data: map[string]string{"access-token": "x"}})
	assert.False(t, ok)

	configs := New(fake.NewSimpleClientset(), "ci", "repo", nil, WithResourceType(ConfigMap))
	_, ok = configs.extractValue(announceSecret(fullSecretData()))
	assert.False(t, ok)

	_, ok = secrets.extractValue("not a k8s object")
	assert.False(t, ok)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	client := fake.NewSimpleClientset()

	_, _, err := NewSecretsWatcher(client, "ci", "missing").get(ctx)
	require.Error(t, err)

	_, _, err = New(client, "ci", "missing", nil, WithResourceType(ConfigMap)).get(ctx)
	require.Error(t, err)
}

func TestGet_ResourceVersion(t *testing.T) {
	secret := announceSecret(fullSecretData())
	secret.ResourceVersion = "67890"
	client := fake.NewSimpleClientset(secret)

	_, rv, err := NewSecretsWatcher(client, "ci", "announce").get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "67890", rv)
}

func TestWatcher_FeedsSecretsReactable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := fake.NewSimpleClientset(announceSecret(fullSecretData()))
	target := notify.NewSecretsReactable()

	var got notify.Secrets
	_, err := target.Subscribe(reactive.NewReactor(func(s notify.Secrets) { got = s }, nil, nil))
	require.NoError(t, err)

	feed := reactive.NewFeed[notify.Secrets](NewSecretsWatcher(client, "ci", "announce"), target)
	require.NoError(t, feed.Start(ctx))

	assert.Equal(t, "token-secret", got.AccessTokenSecret)
	assert.Equal(t, reactive.StateResolved, feed.State())
}

func TestWatcher_FeedRejectsIncompleteSecret(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	data := fullSecretData()
	delete(data, "access-token")
	client := fake.NewSimpleClientset(announceSecret(data))

	feed := reactive.NewFeed[notify.Secrets](NewSecretsWatcher(client, "ci", "announce"), notify.NewSecretsReactable())
	err := feed.Start(ctx)

	require.ErrorIs(t, err, reactive.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"accessToken"`)
}
