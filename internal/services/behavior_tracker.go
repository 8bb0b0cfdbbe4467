package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
	"travelmate/internal/repositories"
	"travelmate/pkg/utils"
)

const behaviorFlushInterval = 5 * time.Second

// highPriorityActions flush out of band instead of waiting for the ticker.
var highPriorityActions = map[string]bool{
	"favorite": true,
	"rate":     true,
	"skip":     true,
}

// BehaviorTracker buffers behavior events and drains them on a fixed
// interval. A single busy flag prevents overlapping flushes; a failed batch
// is requeued at the front, so delivery is at-least-once and duplicates are
// possible on retry.
type BehaviorTracker struct {
	behaviorRepo repositories.BehaviorRepository
	location     LocationProviderInterface
	logger       *zap.SugaredLogger

	mu         sync.Mutex
	queue      []db_models.UserBehavior
	isFlushing bool

	stop chan struct{}
	done chan struct{}
}

func NewBehaviorTracker(behaviorRepo repositories.BehaviorRepository, location LocationProviderInterface, logger *zap.SugaredLogger) *BehaviorTracker {
	return &BehaviorTracker{
		behaviorRepo: behaviorRepo,
		location:     location,
		logger:       logger,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start launches the interval flush loop. Call once, from the fx lifecycle.
func (t *BehaviorTracker) Start() {
	go func() {
		defer close(t.done)
		ticker := time.NewTicker(behaviorFlushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.Flush(context.Background())
			case <-t.stop:
				// drain whatever is left before shutting down
				t.Flush(context.Background())
				return
			}
		}
	}()
}

func (t *BehaviorTracker) Stop() {
	close(t.stop)
	<-t.done
}

// Enqueue adds an event to the pending batch after enhancing it with ambient
// context. High-priority actions trigger an immediate flush.
func (t *BehaviorTracker) Enqueue(behavior db_models.UserBehavior) {
	t.enhance(&behavior)

	t.mu.Lock()
	t.queue = append(t.queue, behavior)
	t.mu.Unlock()

	if highPriorityActions[behavior.ActionType] {
		t.Flush(context.Background())
	}
}

// Flush drains the pending batch in one critical section. If another flush is
// running the call returns immediately; if persistence fails the batch goes
// back to the front of the queue.
func (t *BehaviorTracker) Flush(ctx context.Context) {
	t.mu.Lock()
	if t.isFlushing || len(t.queue) == 0 {
		t.mu.Unlock()
		return
	}
	t.isFlushing = true
	batch := t.queue
	t.queue = nil
	t.mu.Unlock()

	err := t.behaviorRepo.SaveBatch(ctx, batch)

	t.mu.Lock()
	if err != nil {
		t.logger.Warnw("behavior flush failed, requeueing batch", "count", len(batch), "error", err)
		t.queue = append(batch, t.queue...)
	}
	t.isFlushing = false
	t.mu.Unlock()
}

// PendingCount reports the queue depth, used by tests and the flush loop log.
func (t *BehaviorTracker) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.queue)
}

func (t *BehaviorTracker) enhance(behavior *db_models.UserBehavior) {
	if behavior.TimeOfDay == "" {
		behavior.TimeOfDay = utils.TimeOfDay(time.Now())
	}
	if behavior.Location == nil && t.location != nil {
		fix, err := t.location.CurrentPosition(context.Background(), behavior.UserID.String())
		if err == nil {
			behavior.Location = &db_models.GeoPoint{
				Latitude:  fix.Latitude,
				Longitude: fix.Longitude,
				City:      fix.City,
			}
		}
		// location unavailable: track without it
	}
}
