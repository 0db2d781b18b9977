// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/nvoss/ccdash/internal/models"
	"github.com/nvoss/ccdash/internal/services/usage"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// State is the shared application state all tabs read from.
type State struct {
	mu sync.RWMutex

	snapshot usage.Snapshot
	loading  bool

	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates an empty application state.
func NewState(initialRange models.TimeRange) *State {
	return &State{
		snapshot:      usage.Snapshot{Range: initialRange},
		loading:       true,
		notifications: make([]Notification, 0),
	}
}

// SetSnapshot replaces the current usage snapshot.
func (s *State) SetSnapshot(snap usage.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	s.loading = false
	s.LastUpdated = time.Now()
}

// Snapshot returns the current usage snapshot.
func (s *State) Snapshot() usage.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Range returns the currently selected time range.
func (s *State) Range() models.TimeRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Range
}

// SetLoading marks a reload in flight.
func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// IsLoading returns true while a reload is in flight.
func (s *State) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Clear expired inline when reading
	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time the state was updated.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.LastUpdated)
}
