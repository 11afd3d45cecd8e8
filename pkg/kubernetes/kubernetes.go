// Package kubernetes provides a reactive.Watcher that assembles a payload
// from the keys of a Kubernetes Secret or ConfigMap using the Watch API.
package kubernetes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kinsondigital/reactive"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
)

// ResourceType specifies the type of Kubernetes resource to watch.
type ResourceType int

const (
	// Secret watches a Secret resource.
	Secret ResourceType = iota
	// ConfigMap watches a ConfigMap resource.
	ConfigMap
)

// DefaultRetryDelay is how long the watcher waits before reconnecting.
const DefaultRetryDelay = time.Second

// SecretsKeys maps the fields of notify.Secrets to the data keys of the
// Secret holding the announcement credentials.
var SecretsKeys = map[string]string{
	"consumerApiKey":    "consumer-api-key",
	"consumerApiSecret": "consumer-api-secret",
	"accessToken":       "access-token",
	"accessTokenSecret": "access-token-secret",
}

// WatchFailed is emitted when the watch breaks and the watcher reconnects.
var WatchFailed = capitan.NewSignal(
	"reactive.kubernetes.watch.failed",
	"Kubernetes watch failed, reconnecting",
)

// Watcher watches a Kubernetes Secret or ConfigMap and emits a JSON object
// built from selected data keys.
type Watcher struct {
	client       kubernetes.Interface
	namespace    string
	name         string
	keys         map[string]string
	resourceType ResourceType
	retryDelay   time.Duration
	clock        clockz.Clock
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithResourceType sets the resource type to watch.
// Defaults to Secret.
func WithResourceType(rt ResourceType) Option {
	return func(w *Watcher) {
		w.resourceType = rt
	}
}

// WithRetryDelay sets the reconnect delay. Defaults to DefaultRetryDelay.
func WithRetryDelay(d time.Duration) Option {
	return func(w *Watcher) {
		w.retryDelay = d
	}
}

// WithClock sets the clock used for reconnect delays.
func WithClock(clock clockz.Clock) Option {
	return func(w *Watcher) {
		w.clock = clock
	}
}

// New creates a Watcher for the named resource. Keys maps each JSON field
// of the emitted object to the data key holding its value; keys absent
// from the resource are left out so validation can name them.
func New(client kubernetes.Interface, namespace, name string, keys map[string]string, opts ...Option) *Watcher {
	w := &Watcher{
		client:       client,
		namespace:    namespace,
		name:         name,
		keys:         keys,
		resourceType: Secret,
		retryDelay:   DefaultRetryDelay,
		clock:        clockz.RealClock,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewSecretsWatcher watches the Secret holding the announcement credentials
// using SecretsKeys.
func NewSecretsWatcher(client kubernetes.Interface, namespace, name string, opts ...Option) *Watcher {
	return New(client, namespace, name, SecretsKeys, opts...)
}

// Watch begins watching the resource and returns a channel that emits the
// assembled object whenever the resource changes. The current value is
// emitted immediately to support initial configuration loading.
func (w *Watcher) Watch(ctx context.Context) (<-chan []byte, error) {
	out := make(chan []byte)

	go func() {
		defer close(out)

		for {
			err := w.watchLoop(ctx, out)
			if ctx.Err() != nil {
				return
			}
			capitan.Emit(ctx, WatchFailed,
				reactive.KeyError.Field(err.Error()),
			)
			if !w.wait(ctx) {
				return
			}
		}
	}()

	return out, nil
}

func (w *Watcher) wait(ctx context.Context) bool {
	timer := w.clock.NewTimer(w.retryDelay)
	select {
	case <-timer.C():
		return true
	case <-ctx.Done():
		timer.Stop()
		return false
	}
}

func (w *Watcher) watchLoop(ctx context.Context, out chan<- []byte) error {
	obj, resourceVersion, err := w.get(ctx)
	if err != nil {
		return err
	}

	if value, ok := w.extractValue(obj); ok {
		select {
		case out <- value:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	opts := metav1.ListOptions{
		FieldSelector:   fmt.Sprintf("metadata.name=%s", w.name),
		ResourceVersion: resourceVersion,
		Watch:           true,
	}

	var watcher watch.Interface
	if w.resourceType == ConfigMap {
		watcher, err = w.client.CoreV1().ConfigMaps(w.namespace).Watch(ctx, opts)
	} else {
		watcher, err = w.client.CoreV1().Secrets(w.namespace).Watch(ctx, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to start watch: %w", err)
	}
	defer watcher.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.ResultChan():
			if !ok {
				return errors.New("watch channel closed")
			}

			switch event.Type {
			case watch.Error:
				return errors.New("watch error")
			case watch.Deleted:
				continue
			}

			value, ok := w.extractValue(event.Object)
			if !ok {
				continue
			}
			select {
			case out <- value:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (w *Watcher) get(ctx context.Context) (any, string, error) {
	if w.resourceType == ConfigMap {
		cm, err := w.client.CoreV1().ConfigMaps(w.namespace).Get(ctx, w.name, metav1.GetOptions{})
		if err != nil {
			return nil, "", err
		}
		return cm, cm.ResourceVersion, nil
	}

	secret, err := w.client.CoreV1().Secrets(w.namespace).Get(ctx, w.name, metav1.GetOptions{})
	if err != nil {
		return nil, "", err
	}
	return secret, secret.ResourceVersion, nil
}

// extractValue assembles the JSON object for obj. It returns false when obj
// is not the watched resource type.
func (w *Watcher) extractValue(obj any) ([]byte, bool) {
	var lookup func(string) (string, bool)

	switch res := obj.(type) {
	case *corev1.Secret:
		if w.resourceType != Secret {
			return nil, false
		}
		lookup = func(key string) (string, bool) {
			v, ok := res.Data[key]
			if !ok {
				if s, ok := res.StringData[key]; ok {
					return s, true
				}
			}
			return string(v), ok
		}
	case *corev1.ConfigMap:
		if w.resourceType != ConfigMap {
			return nil, false
		}
		lookup = func(key string) (string, bool) {
			v, ok := res.Data[key]
			return v, ok
		}
	default:
		return nil, false
	}

	bundle := make(map[string]string, len(w.keys))
	for field, key := range w.keys {
		if v, ok := lookup(key); ok && v != "" {
			bundle[field] = v
		}
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		return nil, false
	}
	return data, true
}

var _ reactive.Watcher = (*Watcher)(nil)
