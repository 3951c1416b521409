package impl

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"

	"parkpulse/config"
	"parkpulse/internal/domain/entity"
	"parkpulse/internal/domain/service"
	"parkpulse/internal/usecase"
	"parkpulse/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// searchAggregator implements the ParkSearchUsecase interface. All state
// lives behind one mutex; network calls run in goroutines and re-enter
// through apply paths gated by issuance sequence numbers, so a slow response
// can never overwrite the result of a search issued after it.
type searchAggregator struct {
	places    service.PlacesService
	logger    *slog.Logger
	debouncer *util.Debouncer

	minQueryLength int
	radiusMeters   int

	ctx       context.Context
	cancelCtx context.CancelFunc

	mu           sync.Mutex
	closed       bool
	searchSeq    uint64 // issuance counter for nearby and text searches
	favoriteSeq  uint64 // issuance counter for favorite fan-outs
	query        string // committed query; empty when no text search is active
	lat, lng     float64
	hasLocation  bool
	textActive   bool // last applied search was a text search
	textParks    []entity.Park
	nearbyParks  []entity.Park
	favoriteIDs  []string
	favorites    []entity.Park // fetched favorite parks, sorted by name
	searching    bool
	err          error
	listeners    map[int]func(usecase.SearchSnapshot)
	nextListener int
}

// NewSearchAggregator is the constructor for searchAggregator.
func NewSearchAggregator(
	places service.PlacesService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ParkSearchUsecase {
	ctx, cancel := context.WithCancel(context.Background())

	return &searchAggregator{
		places:         places,
		logger:         logger,
		debouncer:      util.NewDebouncer(cfg.Search.DebounceInterval),
		minQueryLength: cfg.Search.MinQueryLength,
		radiusMeters:   cfg.Places.NearbyRadiusMeters,
		ctx:            ctx,
		cancelCtx:      cancel,
		listeners:      make(map[int]func(usecase.SearchSnapshot)),
	}
}

// UpdateLocation records a location fix. The first fix triggers a nearby
// search; later fixes only update the remembered location.
func (srv *searchAggregator) UpdateLocation(lat, lng float64) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.closed {
		return
	}

	first := !srv.hasLocation
	srv.lat, srv.lng = lat, lng
	srv.hasLocation = true

	if first {
		srv.issueNearbyLocked()
	}
}

// SetQuery records typed text. The debouncer restarts on every call, so only
// the final value of a typing burst is ever committed.
func (srv *searchAggregator) SetQuery(text string) {
	trimmed := strings.TrimSpace(text)
	srv.debouncer.Debounce(func() {
		srv.commitQuery(trimmed)
	})
}

// commitQuery runs after the debounce quiet period with the final text.
func (srv *searchAggregator) commitQuery(trimmed string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.closed {
		return
	}

	switch {
	case len(trimmed) >= srv.minQueryLength:
		srv.query = trimmed
		srv.issueTextLocked(trimmed)
	case trimmed == "":
		srv.query = ""
		srv.textActive = false
		srv.textParks = nil
		if srv.hasLocation {
			srv.issueNearbyLocked()
		} else {
			srv.publishLocked()
		}
	default:
		// Too short to search; fall back to the nearby view without a
		// fresh fetch.
		srv.query = ""
		srv.textActive = false
		srv.textParks = nil
		srv.publishLocked()
	}
}

// SetFavorites replaces the favorite park id list. Unchanged lists are
// ignored; changed lists are de-duplicated and resolved concurrently, one
// detail fetch per unique id, and published once the whole batch settles.
func (srv *searchAggregator) SetFavorites(ids []string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.closed || slices.Equal(ids, srv.favoriteIDs) {
		return
	}

	srv.favoriteIDs = slices.Clone(ids)
	srv.favoriteSeq++
	seq := srv.favoriteSeq

	unique := dedupIDs(ids)
	if len(unique) == 0 {
		srv.favorites = nil
		srv.publishLocked()

		return
	}

	go srv.fetchFavorites(seq, unique)
}

// fetchFavorites resolves every favorite id concurrently and applies the
// batch. Resolution is best-effort: parks that fetched successfully are
// published even when others failed, with the aggregate error alongside.
func (srv *searchAggregator) fetchFavorites(seq uint64, ids []string) {
	parks := make([]entity.Park, len(ids))
	failed := make([]error, len(ids))

	group, ctx := errgroup.WithContext(srv.ctx)
	for i, id := range ids {
		group.Go(func() error {
			park, err := srv.places.FetchDetails(ctx, id)
			if err != nil {
				failed[i] = err

				return nil
			}
			parks[i] = park

			return nil
		})
	}
	_ = group.Wait()

	resolved := make([]entity.Park, 0, len(ids))
	var firstErr error
	failures := 0
	for i := range ids {
		if failed[i] != nil {
			failures++
			if firstErr == nil {
				firstErr = failed[i]
			}

			continue
		}
		resolved = append(resolved, parks[i])
	}
	sort.Slice(resolved, func(i, j int) bool {
		return strings.ToLower(resolved[i].Name) < strings.ToLower(resolved[j].Name)
	})

	var batchErr error
	if failures > 0 {
		srv.logger.Warn("Some favorite parks failed to load",
			"failed", failures, "total", len(ids), "error", firstErr)
		batchErr = errors.Wrapf(firstErr, "failed to load %d of %d favorite parks", failures, len(ids))
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.closed || seq != srv.favoriteSeq {
		return
	}

	srv.favorites = resolved
	srv.err = batchErr
	srv.publishLocked()
}

// issueNearbyLocked starts a nearby search from the remembered location.
// Callers hold the mutex.
func (srv *searchAggregator) issueNearbyLocked() {
	srv.searchSeq++
	seq := srv.searchSeq
	srv.searching = true
	lat, lng := srv.lat, srv.lng
	srv.publishLocked()

	go func() {
		parks, err := srv.places.SearchNearby(srv.ctx, lat, lng, srv.radiusMeters)
		srv.applySearch(seq, parks, err, false)
	}()
}

// issueTextLocked starts a text search. Callers hold the mutex.
func (srv *searchAggregator) issueTextLocked(query string) {
	srv.searchSeq++
	seq := srv.searchSeq
	srv.searching = true
	srv.publishLocked()

	go func() {
		parks, err := srv.places.SearchByText(srv.ctx, query)
		srv.applySearch(seq, parks, err, true)
	}()
}

// applySearch is the single re-entry path for search responses. A response
// is applied only when no newer search of any kind has been issued since;
// stale responses are discarded whole, whatever order they completed in.
func (srv *searchAggregator) applySearch(seq uint64, parks []entity.Park, err error, isText bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.closed || seq != srv.searchSeq {
		return
	}

	srv.searching = false
	if err != nil {
		srv.err = err
		srv.publishLocked()

		return
	}

	srv.err = nil
	srv.textActive = isText
	if isText {
		srv.textParks = parks
	} else {
		srv.nearbyParks = parks
	}
	srv.publishLocked()
}

// Snapshot returns the current aggregated view.
func (srv *searchAggregator) Snapshot() usecase.SearchSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.snapshotLocked()
}

// Subscribe registers a listener for every published snapshot.
func (srv *searchAggregator) Subscribe(listener func(usecase.SearchSnapshot)) func() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	id := srv.nextListener
	srv.nextListener++
	srv.listeners[id] = listener

	return func() {
		srv.mu.Lock()
		defer srv.mu.Unlock()

		delete(srv.listeners, id)
	}
}

// Close stops the debouncer, aborts in-flight requests and drops listeners.
func (srv *searchAggregator) Close() {
	srv.debouncer.Cancel()
	srv.cancelCtx()

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.closed = true
	srv.listeners = make(map[int]func(usecase.SearchSnapshot))
}

// snapshotLocked builds the display-ready view. Callers hold the mutex.
func (srv *searchAggregator) snapshotLocked() usecase.SearchSnapshot {
	favoriteSet := make(map[string]struct{}, len(srv.favoriteIDs))
	for _, id := range srv.favoriteIDs {
		favoriteSet[id] = struct{}{}
	}

	primary := srv.nearbyParks
	if srv.textActive {
		primary = srv.textParks
	}

	query := strings.ToLower(srv.query)

	// Text results are shown as the provider ranked them; only the
	// favorite dedup applies.
	nearby := make([]entity.Park, 0, len(primary))
	for _, park := range primary {
		if _, ok := favoriteSet[park.ID]; ok {
			continue
		}
		nearby = append(nearby, park)
	}

	favorites := make([]entity.Park, 0, len(srv.favorites))
	for _, park := range srv.favorites {
		if query != "" && !strings.Contains(strings.ToLower(park.Name), query) {
			continue
		}
		favorites = append(favorites, park)
	}

	return usecase.SearchSnapshot{
		Query:     srv.query,
		Nearby:    nearby,
		Favorites: favorites,
		Searching: srv.searching,
		Err:       srv.err,
	}
}

// publishLocked sends the current snapshot to every listener. Callers hold
// the mutex; it is released while the listeners run, so a listener may
// safely call back into the aggregator.
func (srv *searchAggregator) publishLocked() {
	snapshot := srv.snapshotLocked()
	listeners := make([]func(usecase.SearchSnapshot), 0, len(srv.listeners))
	for _, listener := range srv.listeners {
		listeners = append(listeners, listener)
	}

	srv.mu.Unlock()
	for _, listener := range listeners {
		listener(snapshot)
	}
	srv.mu.Lock()
}

// dedupIDs returns ids with duplicates removed, first occurrence wins.
func dedupIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
