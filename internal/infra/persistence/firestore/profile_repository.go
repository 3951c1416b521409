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

// profileRepository implements repository.ProfileRepository on Firestore.
type profileRepository struct {
	client *firestore.Client
	appID  string
	logger *slog.Logger
}

// ProfileRepositoryParams holds dependencies for the profile repository.
type ProfileRepositoryParams struct {
	fx.In

	Client *firestore.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewProfileRepository creates a Firestore-backed profile repository.
func NewProfileRepository(params ProfileRepositoryParams) repository.ProfileRepository {
	return &profileRepository{
		client: params.Client,
		appID:  params.Config.Firestore.AppID,
		logger: params.Logger,
	}
}

// GetProfile reads the profile document. A missing document maps to
// ErrProfileNotFound, which callers treat as a valid empty state.
func (r *profileRepository) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	snap, err := profileDoc(r.client, r.appID, userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	var doc profileDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return doc.toEntity(userID), nil
}

// UpsertProfile writes the aggregate with merge semantics: the document is
// created when absent, and fields outside the aggregate survive the write.
func (r *profileRepository) UpsertProfile(ctx context.Context, profile *entity.UserProfile) error {
	docRef := profileDoc(r.client, r.appID, profile.ID)

	r.logger.Debug("upserting profile",
		slog.String("user_id", profile.ID),
		slog.String("path", docRef.Path),
	)

	if _, err := docRef.Set(ctx, profileMergeData(profile), firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to upsert profile document")
	}

	return nil
}
