package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherSignalsOnWrite(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "proj", "sess")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}

	svc, err := New(root, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer svc.Close()

	path := filepath.Join(dir, "chat.jsonl")
	if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-svc.Events():
		if ev.Type != EventChanged {
			t.Errorf("event type = %v, want EventChanged", ev.Type)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event after transcript write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	svc, err := New(root, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer svc.Close()

	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-svc.Events():
		t.Errorf("unexpected event %v for non-transcript file", ev.Type)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherPicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()
	svc, err := New(root, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer svc.Close()

	dir := filepath.Join(root, "new-project")
	if err := os.Mkdir(dir, 0o750); err != nil {
		t.Fatal(err)
	}
	// Give the watcher a moment to register the new directory.
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "chat.jsonl"), []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-svc.Events():
		if ev.Type != EventChanged {
			t.Errorf("event type = %v, want EventChanged", ev.Type)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event for transcript in new directory")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	svc, err := New(t.TempDir(), time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
