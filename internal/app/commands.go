package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoss/ccdash/internal/models"
	"github.com/nvoss/ccdash/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// loadUsageCmd returns a command that reads the logs for the given range.
func loadUsageCmd(mgr *services.Manager, r models.TimeRange) tea.Cmd {
	return func() tea.Msg {
		return UsageLoadedMsg{Snapshot: mgr.Load(r)}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}
