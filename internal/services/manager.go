// Package services provides service orchestration for the TUI.
package services

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/nvoss/ccdash/internal/config"
	"github.com/nvoss/ccdash/internal/models"
	"github.com/nvoss/ccdash/internal/services/usage"
	"github.com/nvoss/ccdash/internal/services/watcher"
)

type (
	// UsageUpdatedEvent is emitted when a fresh snapshot of the logs is
	// available.
	UsageUpdatedEvent struct {
		Snapshot usage.Snapshot
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (UsageUpdatedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()        {}

// Manager orchestrates services and event routing.
type Manager struct {
	mu          sync.RWMutex
	usage       *usage.Service
	watcher     *watcher.Service
	alertAt     float64
	alerted     bool
	lastRange   models.TimeRange
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		usage:     usage.New(cfg.LogRoot),
		alertAt:   cfg.DailyCostAlert,
		lastRange: cfg.DefaultRange,
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	var err error
	m.watcher, err = watcher.New(cfg.LogRoot, cfg.WatchDebounce)
	if err != nil {
		return nil, fmt.Errorf("failed to start log watcher: %w", err)
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event, ok := <-m.watcher.Events():
			if !ok {
				return
			}
			m.handleWatcherEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

// handleWatcherEvent reloads the logs when they change on disk.
func (m *Manager) handleWatcherEvent(event watcher.Event) {
	switch event.Type {
	case watcher.EventChanged:
		m.mu.RLock()
		r := m.lastRange
		m.mu.RUnlock()
		m.Refresh(r)

	case watcher.EventError:
		m.broadcast(ErrorEvent{
			Service: "watcher",
			Error:   event.Error,
		})
	}
}

// Refresh reloads the logs for the given range and broadcasts the new
// snapshot.
func (m *Manager) Refresh(r models.TimeRange) {
	m.mu.Lock()
	m.lastRange = r
	m.mu.Unlock()

	snap := m.usage.Load(r)
	m.checkCostAlert(snap.Stats)
	m.broadcast(UsageUpdatedEvent{Snapshot: snap})
}

// Load reads the logs synchronously without broadcasting, for initial
// rendering before the event loop starts.
func (m *Manager) Load(r models.TimeRange) usage.Snapshot {
	m.mu.Lock()
	m.lastRange = r
	m.mu.Unlock()

	snap := m.usage.Load(r)
	m.checkCostAlert(snap.Stats)
	return snap
}

// checkCostAlert fires one desktop notification the first time today's
// spend crosses the configured threshold. The flag rearms when spend
// drops back under, which happens at midnight when a new day starts.
func (m *Manager) checkCostAlert(stats models.UsageStats) {
	if m.alertAt <= 0 {
		return
	}

	today := time.Now().UTC().Format("2006-01-02")
	var cost float64
	for _, d := range stats.ByDate {
		if d.Date == today {
			cost = d.TotalCost
			break
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if cost >= m.alertAt && !m.alerted {
		m.alerted = true
		title := "Claude Code daily cost alert"
		body := fmt.Sprintf("Today's usage has reached $%.2f (threshold $%.2f)", cost, m.alertAt)
		_ = beeep.Notify(title, body, "")
	} else if cost < m.alertAt {
		m.alerted = false
	}
}

// LogRoot returns the directory the manager reads logs from.
func (m *Manager) LogRoot() string {
	return m.usage.LogRoot()
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}
