package reactive

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// waitFor reads from ch until want arrives. Writers truncate before they
// write, so an empty read may come first.
func waitFor(ctx context.Context, t *testing.T, ch <-chan []byte, want string) {
	t.Helper()
	for {
		select {
		case data, ok := <-ch:
			if !ok {
				t.Fatalf("channel closed before %q arrived", want)
			}
			if string(data) == want {
				return
			}
		case <-ctx.Done():
			t.Fatalf("timeout waiting for %q", want)
		}
	}
}

func TestFileWatcher_CleansPath(t *testing.T) {
	w := NewFileWatcher("/ci/./release.yaml")
	if w.Path() != "/ci/release.yaml" {
		t.Errorf("expected cleaned path, got %q", w.Path())
	}
}

func TestFileWatcher_EmitsInitialContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.json")
	content := []byte(`{"projectName": "CICD"}`)
	writeSettings(t, path, string(content))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ch, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	select {
	case data := <-ch:
		if !bytes.Equal(data, content) {
			t.Errorf("expected %q, got %q", content, data)
		}
	case <-ctx.Done():
		t.Fatal("timeout waiting for initial content")
	}
}

func TestFileWatcher_MissingFile(t *testing.T) {
	_, err := NewFileWatcher(filepath.Join(t.TempDir(), "missing.json")).Watch(context.Background())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileWatcher_EmitsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.json")
	writeSettings(t, path, `{"v": 1}`)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ch, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	<-ch

	writeSettings(t, path, `{"v": 2}`)
	waitFor(ctx, t, ch, `{"v": 2}`)
}

func TestFileWatcher_EmitsOnRenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.json")
	writeSettings(t, path, `{"v": 1}`)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ch, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	<-ch

	tmp := filepath.Join(dir, "build.json.tmp")
	writeSettings(t, tmp, `{"v": 3}`)
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	waitFor(ctx, t, ch, `{"v": 3}`)
}

func TestFileWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.json")
	writeSettings(t, path, `{"v": 1}`)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ch, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	<-ch

	writeSettings(t, filepath.Join(dir, "other.json"), `{"v": 9}`)

	select {
	case data := <-ch:
		t.Errorf("unexpected emission %q", data)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFileWatcher_ClosesOnContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.json")
	writeSettings(t, path, `{}`)

	ctx, cancel := context.WithCancel(context.Background())

	ch, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	<-ch

	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected channel to close after context cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for channel to close")
	}
}
