package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"parkpulse/config"
	"parkpulse/internal/domain/entity"
	"parkpulse/internal/infra/auth"
	"parkpulse/internal/infra/breeds"
	logs "parkpulse/internal/infra/log"
	"parkpulse/internal/infra/persistence/firestore"
	"parkpulse/internal/infra/places"
	"parkpulse/internal/infra/storage"
	"parkpulse/internal/usecase"
	"parkpulse/internal/usecase/impl"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Shutdowner

	Logger   *slog.Logger
	Search   usecase.ParkSearchUsecase
	Presence usecase.PresenceUsecase
}

type cliFlags struct {
	search string
	near   string
	watch  string
}

func main() {
	flags := &cliFlags{}
	flag.StringVar(&flags.search, "search", "", "run a one-shot text search for dog parks")
	flag.StringVar(&flags.near, "near", "", "run a nearby search from \"lat,lng\"")
	flag.StringVar(&flags.watch, "watch", "", "stream live presence for a park id until interrupted")
	flag.Parse()

	if flags.search == "" && flags.near == "" && flags.watch == "" {
		flag.Usage()
		os.Exit(2)
	}

	fx.New(
		fx.Supply(flags),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			run,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.NewApp,
		firestore.NewClient,
		storage.OpenBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewProfileRepository,
			firestore.NewPresenceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			places.NewClient,
			breeds.NewClient,
			storage.NewPhotoStore,
			auth.NewVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewPresenceService,
			impl.NewBreedService,
			impl.NewSearchAggregator,
		),
	)
}

func run(ctx context.Context, flags *cliFlags, params runParams) {
	go func() {
		var err error
		switch {
		case flags.search != "":
			err = runTextSearch(params, flags.search)
		case flags.near != "":
			err = runNearbySearch(params, flags.near)
		case flags.watch != "":
			err = runWatch(ctx, params, flags.watch)
		}
		if err != nil {
			params.Logger.Error("Command failed", slog.Any("error", err))
			_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

			return
		}
		_ = params.Shutdowner.Shutdown()
	}()
}

func runTextSearch(params runParams, query string) error {
	done := make(chan usecase.SearchSnapshot, 1)
	unsubscribe := params.Search.Subscribe(func(snapshot usecase.SearchSnapshot) {
		if snapshot.Searching {
			return
		}
		select {
		case done <- snapshot:
		default:
		}
	})
	defer unsubscribe()
	defer params.Search.Close()

	params.Search.SetQuery(query)

	snapshot := <-done
	if snapshot.Err != nil {
		return snapshot.Err
	}
	printParks(snapshot.Nearby)

	return nil
}

func runNearbySearch(params runParams, near string) error {
	lat, lng, err := parseLatLng(near)
	if err != nil {
		return err
	}

	done := make(chan usecase.SearchSnapshot, 1)
	unsubscribe := params.Search.Subscribe(func(snapshot usecase.SearchSnapshot) {
		if snapshot.Searching {
			return
		}
		select {
		case done <- snapshot:
		default:
		}
	})
	defer unsubscribe()
	defer params.Search.Close()

	params.Search.UpdateLocation(lat, lng)

	snapshot := <-done
	if snapshot.Err != nil {
		return snapshot.Err
	}
	printParks(snapshot.Nearby)

	return nil
}

func runWatch(ctx context.Context, params runParams, parkID string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watch, err := params.Presence.WatchPark(ctx, parkID)
	if err != nil {
		return err
	}
	defer watch.Close()

	return watchLoop(ctx, watch, params.Logger, os.Stdout)
}

// watchLoop prints presence snapshots until the stream closes or ctx is
// done. Errored snapshots are logged and the loop keeps going; a terminal
// failure closes the channel, which ends the loop.
func watchLoop(ctx context.Context, watch usecase.ParkWatch, logger *slog.Logger, out io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-watch.Snapshots():
			if !ok {
				return nil
			}
			if snapshot.Err != nil {
				logger.Warn("Presence stream error", slog.Any("error", snapshot.Err))

				continue
			}
			fmt.Fprintf(out, "%d dogs (%s), %d checked in\n",
				snapshot.TrafficCount, snapshot.Busyness, len(snapshot.CheckIns))
		}
	}
}

func parseLatLng(raw string) (float64, float64, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"lat,lng\", got %q", raw)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	return lat, lng, nil
}

func printParks(parks []entity.Park) {
	if len(parks) == 0 {
		fmt.Println("no dog parks found")

		return
	}
	for _, park := range parks {
		line := park.Name
		if park.Address != "" {
			line += " - " + park.Address
		}
		if park.DistanceMeters > 0 {
			line += fmt.Sprintf(" (%.0fm)", park.DistanceMeters)
		}
		fmt.Println(line)
	}
}
