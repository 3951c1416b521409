package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"parkpulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubParkWatch struct {
	snapshots chan usecase.PresenceSnapshot
}

func (w *stubParkWatch) Snapshots() <-chan usecase.PresenceSnapshot { return w.snapshots }
func (w *stubParkWatch) Close()                                     {}

func TestWatchLoop_ContinuesPastStreamErrors(t *testing.T) {
	watch := &stubParkWatch{snapshots: make(chan usecase.PresenceSnapshot, 3)}
	watch.snapshots <- usecase.PresenceSnapshot{Err: errors.New("listener hiccup")}
	watch.snapshots <- usecase.PresenceSnapshot{TrafficCount: 3, Busyness: "quiet"}
	close(watch.snapshots)

	var out bytes.Buffer
	err := watchLoop(context.Background(), watch, newDiscardLogger(), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "3 dogs (quiet)")
}

func TestWatchLoop_StopsWhenContextDone(t *testing.T) {
	watch := &stubParkWatch{snapshots: make(chan usecase.PresenceSnapshot)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, watchLoop(ctx, watch, newDiscardLogger(), &bytes.Buffer{}))
}
