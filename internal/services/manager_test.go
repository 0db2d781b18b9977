package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvoss/ccdash/internal/config"
	"github.com/nvoss/ccdash/internal/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogRoot:       t.TempDir(),
		DefaultRange:  models.TimeRange30Days,
		WatchDebounce: 10 * time.Millisecond,
	}
}

func TestNewManager(t *testing.T) {
	cfg := testConfig(t)
	mgr, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	if mgr.LogRoot() != cfg.LogRoot {
		t.Errorf("LogRoot() = %q, want %q", mgr.LogRoot(), cfg.LogRoot)
	}
}

func TestManager_Load(t *testing.T) {
	cfg := testConfig(t)
	dir := filepath.Join(cfg.LogRoot, "-proj", "sess")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}
	line := `{"timestamp":"2025-08-01T10:00:00Z","sessionId":"s1",` +
		`"message":{"model":"claude-sonnet-4-5","usage":{"input_tokens":100,"output_tokens":50}}}` + "\n"
	if err := os.WriteFile(filepath.Join(dir, "chat.jsonl"), []byte(line), 0o600); err != nil {
		t.Fatal(err)
	}

	mgr, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	snap := mgr.Load(models.TimeRangeAllTime)
	if snap.Stats.TotalTokens != 150 {
		t.Errorf("TotalTokens = %d, want 150", snap.Stats.TotalTokens)
	}
	if snap.Range != models.TimeRangeAllTime {
		t.Errorf("Range = %v, want all time", snap.Range)
	}
}

func TestManager_Subscription(t *testing.T) {
	mgr, err := NewManager(testConfig(t))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	ch, cmd := mgr.Subscribe()
	if ch == nil {
		t.Error("Subscribe returned nil channel")
	}
	if cmd == nil {
		t.Error("Subscribe returned nil command")
	}

	// Unsubscribe
	mgr.Unsubscribe(ch)

	// Check if channel is closed
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("Channel should be closed")
		}
	default:
		// might block if not closed and empty, but Unsubscribe closes it
	}
}

func TestManager_Broadcast(t *testing.T) {
	mgr, err := NewManager(testConfig(t))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	ch, _ := mgr.Subscribe()
	defer mgr.Unsubscribe(ch)

	event := ErrorEvent{Service: "test"}
	mgr.broadcast(event)

	select {
	case e := <-ch:
		if e != event {
			t.Errorf("Got event %v, want %v", e, event)
		}
	case <-time.After(time.Second):
		t.Error("Timeout waiting for broadcast")
	}
}

func TestManager_RefreshBroadcasts(t *testing.T) {
	mgr, err := NewManager(testConfig(t))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	ch, _ := mgr.Subscribe()
	defer mgr.Unsubscribe(ch)

	mgr.Refresh(models.TimeRange7Days)

	select {
	case e := <-ch:
		update, ok := e.(UsageUpdatedEvent)
		if !ok {
			t.Fatalf("got %T, want UsageUpdatedEvent", e)
		}
		if update.Snapshot.Range != models.TimeRange7Days {
			t.Errorf("Range = %v, want 7 days", update.Snapshot.Range)
		}
	case <-time.After(time.Second):
		t.Error("Timeout waiting for refresh event")
	}
}

func TestManager_WatcherTriggersRefresh(t *testing.T) {
	cfg := testConfig(t)
	mgr, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	defer mgr.Close()

	ch, _ := mgr.Subscribe()
	defer mgr.Unsubscribe(ch)

	dir := filepath.Join(cfg.LogRoot, "proj")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)

	line := `{"timestamp":"2025-08-01T10:00:00Z","sessionId":"s1",` +
		`"message":{"model":"claude-sonnet-4-5","usage":{"input_tokens":1,"output_tokens":1}}}` + "\n"
	if err := os.WriteFile(filepath.Join(dir, "chat.jsonl"), []byte(line), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case e := <-ch:
			if _, ok := e.(UsageUpdatedEvent); ok {
				return
			}
		case <-deadline:
			t.Fatal("no usage update after transcript write")
		}
	}
}

func TestWaitForEvent(t *testing.T) {
	ch := make(chan ServiceEvent, 1)
	ch <- ErrorEvent{Service: "test"}

	cmd := WaitForEvent(ch)
	msg := cmd()
	if msg == nil {
		t.Error("WaitForEvent cmd returned nil msg")
	}
}

func TestServiceEvent_Interface(t *testing.T) {
	var _ ServiceEvent = UsageUpdatedEvent{}
	var _ ServiceEvent = ErrorEvent{}

	// Coverage for isServiceEvent methods
	UsageUpdatedEvent{}.isServiceEvent()
	ErrorEvent{}.isServiceEvent()
}
