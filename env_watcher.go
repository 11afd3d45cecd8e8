package reactive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// EnvWatcher reads payload fields from environment variables and emits
// them once, as a JSON object, before closing its channel. Pair it with
// JSONCodec.
type EnvWatcher struct {
	fields map[string]string
	lookup func(string) (string, bool)
}

// NewEnvWatcher creates an EnvWatcher. Fields maps each JSON field name of
// the payload to the environment variable holding its value. Unset
// variables are left out of the object so validation can name them.
func NewEnvWatcher(fields map[string]string) *EnvWatcher {
	return &EnvWatcher{fields: fields, lookup: os.LookupEnv}
}

// Lookup replaces os.LookupEnv, mainly for tests.
func (w *EnvWatcher) Lookup(fn func(string) (string, bool)) *EnvWatcher {
	w.lookup = fn
	return w
}

// Watch emits the current values and closes the channel.
func (w *EnvWatcher) Watch(_ context.Context) (<-chan []byte, error) {
	obj := make(map[string]string, len(w.fields))
	for field, name := range w.fields {
		if v, ok := w.lookup(name); ok && v != "" {
			obj[field] = v
		}
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode environment: %w", err)
	}

	out := make(chan []byte, 1)
	out <- data
	close(out)
	return out, nil
}
