// Package watcher signals when the log tree changes on disk.
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nvoss/ccdash/internal/logger"
)

// EventType identifies the kind of watcher event.
type EventType int

const (
	// EventChanged means transcripts were written, created, or removed.
	EventChanged EventType = iota
	// EventError reports a watcher failure.
	EventError
)

// Event is a single watcher notification.
type Event struct {
	Type  EventType
	Error error
}

// Service watches a log root for transcript changes. fsnotify does not
// recurse, so the root and every directory under it are registered
// individually, with new directories added as they appear.
type Service struct {
	mu            sync.Mutex
	root          string
	debounce      time.Duration
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
	closeOnce     sync.Once
}

// New creates a watcher over the given log root and starts it. A root
// that does not exist yet is not an error; the watcher stays idle until
// Claude Code creates it and the service is restarted.
func New(root string, debounce time.Duration) (*Service, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	s := &Service{
		root:      root,
		debounce:  debounce,
		watcher:   w,
		eventChan: make(chan Event, 10),
		stopChan:  make(chan struct{}),
	}

	s.addTree(root)

	go s.watchLoop()
	return s, nil
}

// Events returns the channel watcher notifications arrive on.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// addTree registers a directory and everything below it.
func (s *Service) addTree(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := s.watcher.Add(path); err != nil {
			logger.Debug("cannot watch directory", "path", path, "error", err)
		}
		return nil
	})
}

// watchLoop folds bursts of filesystem events into single notifications.
func (s *Service) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handleEvent(event)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

func (s *Service) handleEvent(event fsnotify.Event) {
	// New session directories must be watched before their transcripts
	// start arriving.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			s.addTree(event.Name)
			return
		}
	}

	if !strings.HasSuffix(event.Name, ".jsonl") {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// Debounce rapid changes
	s.mu.Lock()
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(s.debounce, func() {
		s.sendEvent(Event{Type: EventChanged})
	})
	s.mu.Unlock()
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
	}
}

// Close stops the watcher and releases its resources.
func (s *Service) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.mu.Lock()
		if s.debounceTimer != nil {
			s.debounceTimer.Stop()
		}
		s.mu.Unlock()
		err = s.watcher.Close()
	})
	return err
}
