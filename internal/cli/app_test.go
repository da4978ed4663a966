package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/common"
)

func TestPrintEntryHeader_ReadyEntryIsSilent(t *testing.T) {
	var buf bytes.Buffer
	app := &App{out: &buf}

	app.printEntryHeader(cache.Entry{
		Key:       cache.KeyProjects,
		Status:    cache.StatusReady,
		FetchedAt: time.Now(),
	})

	require.Empty(t, buf.String())
}

func TestPrintEntryHeader_ErrorWithStaleData(t *testing.T) {
	var buf bytes.Buffer
	app := &App{out: &buf}

	app.printEntryHeader(cache.Entry{
		Key:    cache.KeyBookings,
		Status: cache.StatusError,
		Err:    errors.New("service unavailable"),
		Data:   []string{"stale"},
	})

	out := buf.String()
	require.Contains(t, out, "bookings unavailable")
	require.Contains(t, out, "last-known data")
}

func TestPrintEntryHeader_ErrorWithoutData(t *testing.T) {
	var buf bytes.Buffer
	app := &App{out: &buf}

	app.printEntryHeader(cache.Entry{
		Key:    cache.KeyFiles,
		Status: cache.StatusError,
		Err:    errors.New("service unavailable"),
	})

	require.NotContains(t, buf.String(), "last-known data")
}

func TestPrintMutationError_ShowsBackendDetail(t *testing.T) {
	var buf bytes.Buffer
	app := &App{out: &buf}

	app.printMutationError(&common.MutationError{Detail: "Slot already booked"})

	require.Contains(t, buf.String(), "Rejected: Slot already booked")
}

func TestPrintMutationError_FallsBackWithoutDetail(t *testing.T) {
	var buf bytes.Buffer
	app := &App{out: &buf}

	app.printMutationError(errors.New("connection reset"))

	require.Contains(t, buf.String(), "error: connection reset")
}
