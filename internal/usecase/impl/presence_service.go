package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"parkpulse/config"
	"parkpulse/internal/domain/entity"
	domainerrors "parkpulse/internal/domain/errors"
	"parkpulse/internal/domain/repository"
	"parkpulse/internal/usecase"

	"github.com/pkg/errors"
)

// maxDogCount bounds how many dogs one check-in may declare.
const maxDogCount = 12

// presenceService implements the PresenceUsecase interface.
type presenceService struct {
	presenceRepo repository.PresenceRepository
	window       time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewPresenceService is the constructor for presenceService.
func NewPresenceService(
	presenceRepo repository.PresenceRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PresenceUsecase {
	window := entity.DefaultFreshnessWindow
	if cfg.Search != nil && cfg.Search.FreshnessWindow > 0 {
		window = cfg.Search.FreshnessWindow
	}

	return &presenceService{
		presenceRepo: presenceRepo,
		window:       window,
		logger:       logger,
		now:          time.Now,
	}
}

// CheckIn records the user's presence at a park. A repeat check-in for the
// same (user, park) overwrites the prior record, refreshing its timestamp.
func (srv *presenceService) CheckIn(ctx context.Context, parkID, userID, displayName string, dogCount int) error {
	if parkID == "" {
		return domainerrors.NewValidation("parkId", "must not be empty")
	}
	if dogCount < 1 || dogCount > maxDogCount {
		return domainerrors.NewValidation("dogCount", "must be between 1 and 12")
	}

	srv.logger.Info("Checking in", "parkID", parkID, "userID", userID, "dogCount", dogCount)

	checkIn := entity.NewCheckIn(userID, displayName, dogCount, srv.now())
	if err := srv.presenceRepo.CheckIn(ctx, parkID, checkIn); err != nil {
		return errors.Wrap(err, "failed to check in")
	}

	return nil
}

// CheckOut removes the user's check-in record. Checking out of a park the
// user is not checked into is a no-op.
func (srv *presenceService) CheckOut(ctx context.Context, parkID, userID string) error {
	srv.logger.Info("Checking out", "parkID", parkID, "userID", userID)

	if err := srv.presenceRepo.CheckOut(ctx, parkID, userID); err != nil {
		return errors.Wrap(err, "failed to check out")
	}

	return nil
}

// WatchPark opens a live presence subscription for one park.
func (srv *presenceService) WatchPark(ctx context.Context, parkID string) (usecase.ParkWatch, error) {
	updates, cancel, err := srv.presenceRepo.SubscribeCheckIns(ctx, parkID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to check-ins")
	}

	watch := &parkWatch{
		snapshots: make(chan usecase.PresenceSnapshot, 1),
		cancel:    cancel,
	}
	go watch.run(updates, srv.window, srv.now)

	return watch, nil
}

// UserIsCheckedIn reports whether userID appears in the set with a fresh
// timestamp. Staleness is evaluated at call time, never cached.
func (srv *presenceService) UserIsCheckedIn(checkIns []entity.CheckIn, userID string) bool {
	now := srv.now()
	for _, c := range checkIns {
		if c.UserID == userID && c.Active(now, srv.window) {
			return true
		}
	}

	return false
}

// parkWatch adapts the raw check-in stream into derived presence snapshots.
type parkWatch struct {
	snapshots chan usecase.PresenceSnapshot

	closeOnce sync.Once
	cancel    func()
}

func (w *parkWatch) Snapshots() <-chan usecase.PresenceSnapshot {
	return w.snapshots
}

func (w *parkWatch) Close() {
	w.closeOnce.Do(w.cancel)
}

// run consumes the repository stream until it closes. Each update is
// re-filtered by the freshness window, so the derived traffic count and
// busyness always reflect the wall clock at emission time. Errored updates
// surface on Err with the last good derived state carried alongside, never
// replacing it; whether the stream continues is the repository's call (a
// terminal failure closes the channel).
func (w *parkWatch) run(updates <-chan repository.CheckInUpdate, window time.Duration, now func() time.Time) {
	defer close(w.snapshots)

	lastGood := usecase.PresenceSnapshot{Busyness: entity.BusynessEmpty}
	for update := range updates {
		if update.Err != nil {
			errored := lastGood
			errored.Err = update.Err
			w.publish(errored)

			continue
		}

		active := entity.ActiveCheckIns(update.CheckIns, now(), window)
		traffic := 0
		for _, c := range active {
			traffic += c.DogCount
		}

		lastGood = usecase.PresenceSnapshot{
			CheckIns:     active,
			TrafficCount: traffic,
			Busyness:     entity.BusynessForCount(traffic),
		}

		w.publish(lastGood)
	}
}

// publish delivers a snapshot, dropping the stale pending one when the
// consumer lags. Only the latest state matters.
func (w *parkWatch) publish(snapshot usecase.PresenceSnapshot) {
	for {
		select {
		case w.snapshots <- snapshot:
			return
		default:
		}

		select {
		case <-w.snapshots:
		default:
		}
	}
}
