package firestore

import (
	"context"
	"log/slog"

	"parkpulse/config"
	"parkpulse/internal/domain/entity"
	"parkpulse/internal/domain/repository"
	"parkpulse/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// presenceRepository implements repository.PresenceRepository on Firestore.
type presenceRepository struct {
	client *firestore.Client
	appID  string
	logger *slog.Logger
}

// PresenceRepositoryParams holds dependencies for the presence repository.
type PresenceRepositoryParams struct {
	fx.In

	Client *firestore.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewPresenceRepository creates a Firestore-backed presence repository.
func NewPresenceRepository(params PresenceRepositoryParams) repository.PresenceRepository {
	return &presenceRepository{
		client: params.Client,
		appID:  params.Config.Firestore.AppID,
		logger: params.Logger,
	}
}

// CheckIn writes the record keyed by the user id, so a repeat check-in for
// the same (user, park) pair overwrites rather than duplicates. The server
// assigns the timestamp.
func (r *presenceRepository) CheckIn(ctx context.Context, parkID string, checkIn entity.CheckIn) error {
	doc := checkInDocument{
		UserID:          checkIn.UserID,
		UserDisplayName: checkIn.DisplayName,
		DogCount:        checkIn.DogCount,
	}

	col := checkInCollection(r.client, r.appID, parkID)
	if _, err := col.Doc(checkIn.UserID).Set(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to write check-in document")
	}

	return nil
}

// CheckOut deletes the user's record at the park. Firestore deletes of
// missing documents succeed, which matches the contract.
func (r *presenceRepository) CheckOut(ctx context.Context, parkID, userID string) error {
	col := checkInCollection(r.client, r.appID, parkID)
	if _, err := col.Doc(userID).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete check-in document")
	}

	return nil
}

// SubscribeCheckIns pumps the park's snapshot listener into a channel. Each
// remote change yields the full current check-in set. The stream ends when
// the cancel function runs, ctx is done, or the listener fails terminally;
// a terminal error is emitted before the channel closes.
func (r *presenceRepository) SubscribeCheckIns(ctx context.Context, parkID string) (<-chan repository.CheckInUpdate, func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	snapshots := checkInCollection(r.client, r.appID, parkID).Snapshots(ctx)
	updates := make(chan repository.CheckInUpdate, 1)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}

				r.logger.Warn("check-in listener failed",
					slog.String("park_id", parkID),
					slog.Any("error", err),
				)
				select {
				case updates <- repository.CheckInUpdate{Err: errors.Wrap(err, "check-in listener failed")}:
				case <-ctx.Done():
				}

				return
			}

			update := repository.CheckInUpdate{}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				update.Err = errors.Wrap(err, "failed to read check-in snapshot")
			} else {
				update.CheckIns = make([]entity.CheckIn, 0, len(docs))
				for _, docSnap := range docs {
					var doc checkInDocument
					if err := docSnap.DataTo(&doc); err != nil {
						// Skip records written by incompatible versions.
						r.logger.Warn("skipping undecodable check-in",
							slog.String("park_id", parkID),
							slog.String("doc_id", docSnap.Ref.ID),
						)

						continue
					}
					update.CheckIns = append(update.CheckIns, doc.toEntity())
				}
			}

			select {
			case updates <- update:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, cancel, nil
}
