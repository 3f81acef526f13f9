package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cinesocial/pkg/logger"
	"cinesocial/pkg/queue"
	"cinesocial/services/social/internal/repo/persistent"
	"cinesocial/services/social/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrSnapshotsDisabled is returned when the service runs without a database.
var ErrSnapshotsDisabled = errors.New("snapshots disabled: no database configured")

var (
	storiesPurgedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinesocial_stories_purged_total",
		Help: "Expired stories removed by the sweeper.",
	})
	snapshotDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cinesocial_snapshot_duration_seconds",
		Help:    "Time spent saving a store snapshot.",
		Buckets: prometheus.DefBuckets,
	})
	snapshotFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinesocial_snapshot_failures_total",
		Help: "Snapshot saves that returned an error.",
	})
)

type MaintenanceUseCase interface {
	PurgeExpiredStories() int
	SaveSnapshot(ctx context.Context) error
	RestoreLatest(ctx context.Context) (bool, error)
	RunStorySweeper(ctx context.Context, interval time.Duration)
	RunAutosave(ctx context.Context, interval time.Duration)
}

type maintenanceUseCase struct {
	store     *store.Store
	snapshots persistent.SnapshotRepository
	publisher queue.Publisher
	logger    *logger.Logger
	now       func() time.Time
}

// NewMaintenanceUseCase wires the background jobs. snapshots may be nil, in
// which case saving and restoring report ErrSnapshotsDisabled.
func NewMaintenanceUseCase(s *store.Store, snapshots persistent.SnapshotRepository, publisher queue.Publisher, logger *logger.Logger) MaintenanceUseCase {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &maintenanceUseCase{
		store:     s,
		snapshots: snapshots,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *maintenanceUseCase) PurgeExpiredStories() int {
	n := uc.store.PurgeExpiredStories(uc.now())
	if n > 0 {
		storiesPurgedTotal.Add(float64(n))
		uc.logger.Info("Purged %d expired stories", n)
	}
	return n
}

func (uc *maintenanceUseCase) SaveSnapshot(ctx context.Context) error {
	if uc.snapshots == nil {
		return ErrSnapshotsDisabled
	}

	start := time.Now()
	snap := uc.store.Snapshot()
	if err := uc.snapshots.Save(ctx, snap); err != nil {
		snapshotFailuresTotal.Inc()
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	snapshotDuration.Observe(time.Since(start).Seconds())

	event := queue.NewEvent(queue.EventSnapshotSaved, "snapshot", 0, "").
		With("users", strconv.Itoa(len(snap.Users))).
		With("posts", strconv.Itoa(len(snap.Posts))).
		With("movies", strconv.Itoa(len(snap.Movies)))
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish snapshot event: %v", err)
	}
	return nil
}

// RestoreLatest loads the last saved snapshot into the store. It reports
// false when nothing was saved yet.
func (uc *maintenanceUseCase) RestoreLatest(ctx context.Context) (bool, error) {
	if uc.snapshots == nil {
		return false, ErrSnapshotsDisabled
	}

	snap, err := uc.snapshots.Load(ctx)
	if errors.Is(err, persistent.ErrNoSnapshot) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	uc.store.Restore(snap)
	uc.logger.Info("Restored snapshot: %d users, %d posts, %d movies", len(snap.Users), len(snap.Posts), len(snap.Movies))
	return true, nil
}

func (uc *maintenanceUseCase) RunStorySweeper(ctx context.Context, interval time.Duration) {
	every(ctx, interval, func() { uc.PurgeExpiredStories() })
}

func (uc *maintenanceUseCase) RunAutosave(ctx context.Context, interval time.Duration) {
	if uc.snapshots == nil {
		return
	}
	every(ctx, interval, func() {
		if err := uc.SaveSnapshot(ctx); err != nil {
			uc.logger.Error("Failed to autosave snapshot: %v", err)
		}
	})
}

// every calls fn on each tick until ctx is done. A non-positive interval
// disables the job.
func every(ctx context.Context, interval time.Duration, fn func()) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
