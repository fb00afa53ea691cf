package housekeeping

import (
	"log/slog"
	"sync"
	"time"
)

// NotificationPurger deletes read notifications created before cutoff
type NotificationPurger interface {
	PurgeReadNotifications(cutoff time.Time) (int64, error)
}

// ViewSweeper forgets recorded CV views that left the counting window
type ViewSweeper interface {
	CleanupExpired() int
}

// Worker periodically trims data that only grows: read notifications past
// the retention window and the in-memory CV view guard
type Worker struct {
	notifications NotificationPurger
	views         ViewSweeper
	retention     time.Duration
	logger        *slog.Logger
	now           func() time.Time

	baseInterval    time.Duration
	maxInterval     time.Duration
	currentInterval time.Duration
	running         bool
	mu              sync.Mutex
	stopChan        chan struct{}
	done            chan struct{}
}

// NewWorker creates a housekeeping worker. A nil views sweeper is allowed.
func NewWorker(notifications NotificationPurger, views ViewSweeper, retention time.Duration, logger *slog.Logger) *Worker {
	return &Worker{
		notifications:   notifications,
		views:           views,
		retention:       retention,
		logger:          logger,
		now:             time.Now,
		baseInterval:    10 * time.Minute,
		maxInterval:     time.Hour,
		currentInterval: 10 * time.Minute,
	}
}

// Start begins the background loop
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	w.logger.Info("housekeeping worker started", "interval", w.currentInterval, "retention", w.retention)

	go w.run(w.stopChan, w.done)
}

// Stop ends the background loop and waits for the current pass to finish
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	done := w.done
	w.mu.Unlock()

	<-done
	w.logger.Info("housekeeping worker stopped")
}

func (w *Worker) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	w.mu.Lock()
	ticker := time.NewTicker(w.currentInterval)
	w.mu.Unlock()
	defer ticker.Stop()

	w.RunOnce()

	for {
		select {
		case <-ticker.C:
			hadWork := w.RunOnce()

			// Back off while there is nothing to clean, tighten again once there is
			w.mu.Lock()
			next := w.maxInterval
			if hadWork {
				next = w.baseInterval
			}
			if next != w.currentInterval {
				w.currentInterval = next
				ticker.Reset(next)
				w.logger.Debug("housekeeping interval changed", "interval", next)
			}
			w.mu.Unlock()
		case <-stop:
			return
		}
	}
}

// RunOnce performs a single cleanup pass and reports whether anything was removed
func (w *Worker) RunOnce() bool {
	removed := int64(0)

	if w.notifications != nil && w.retention > 0 {
		purged, err := w.notifications.PurgeReadNotifications(w.now().Add(-w.retention))
		if err != nil {
			w.logger.Error("failed to purge notifications", "error", err)
		} else if purged > 0 {
			w.logger.Info("purged read notifications", "count", purged)
			removed += purged
		}
	}

	if w.views != nil {
		if swept := w.views.CleanupExpired(); swept > 0 {
			w.logger.Debug("expired cv views forgotten", "count", swept)
			removed += int64(swept)
		}
	}

	return removed > 0
}

// Interval returns the current tick interval
func (w *Worker) Interval() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentInterval
}
