package impl

import (
	"context"
	"log/slog"
	"sync"

	"parkpulse/internal/domain/service"
	"parkpulse/internal/usecase"

	"github.com/pkg/errors"
)

// breedService implements the BreedUsecase interface. The directory is
// fetched once per process and memoized; a failed fetch is not cached, so
// the next call retries.
type breedService struct {
	directory service.BreedDirectory
	logger    *slog.Logger

	mu     sync.Mutex
	breeds []string
}

// NewBreedService is the constructor for breedService.
func NewBreedService(directory service.BreedDirectory, logger *slog.Logger) usecase.BreedUsecase {
	return &breedService{
		directory: directory,
		logger:    logger,
	}
}

// ListBreeds returns the memoized breed list, fetching it on first use.
func (srv *breedService) ListBreeds(ctx context.Context) ([]string, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.breeds != nil {
		return srv.breeds, nil
	}

	breeds, err := srv.directory.ListBreeds(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list breeds")
	}

	srv.logger.Debug("Loaded breed directory", "count", len(breeds))
	srv.breeds = breeds

	return breeds, nil
}
