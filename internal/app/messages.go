package app

import (
	"time"

	"github.com/nvoss/ccdash/internal/models"
	"github.com/nvoss/ccdash/internal/services"
	"github.com/nvoss/ccdash/internal/services/usage"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// UsageLoadedMsg carries a freshly loaded snapshot.
type UsageLoadedMsg struct {
	Snapshot usage.Snapshot
}

// RefreshMsg requests a reload for the given time range.
type RefreshMsg struct {
	Range models.TimeRange
}

// TimeRangeChangedMsg signals that the reporting window changed.
type TimeRangeChangedMsg struct {
	Range models.TimeRange
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
