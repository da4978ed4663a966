// Package pages holds one controller per portal view. A controller composes
// the session store, resource cache and mutation coordinator for its view's
// data needs; it owns no state of its own beyond those collaborators.
package pages

import (
	"context"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/models"
	"github.com/studioportal/portal-client/internal/transport"
)

func projectsFetcher(c transport.Client) cache.Fetcher {
	return func(ctx context.Context) (any, error) { return c.ListProjects(ctx) }
}

func bookingsFetcher(c transport.Client) cache.Fetcher {
	return func(ctx context.Context) (any, error) { return c.ListBookings(ctx) }
}

func slotsFetcher(c transport.Client) cache.Fetcher {
	return func(ctx context.Context) (any, error) { return c.ListSlots(ctx) }
}

func filesFetcher(c transport.Client) cache.Fetcher {
	return func(ctx context.Context) (any, error) { return c.ListFiles(ctx) }
}

func recordingsFetcher(c transport.Client) cache.Fetcher {
	return func(ctx context.Context) (any, error) { return c.ListRecordings(ctx) }
}

func requestsFetcher(c transport.Client) cache.Fetcher {
	return func(ctx context.Context) (any, error) { return c.ListRequests(ctx) }
}

// Typed accessors for entry payloads. Each returns nil when the entry never
// reached ready (the caller still sees Status/Err on the entry itself).

func Projects(e cache.Entry) []models.Project {
	v, _ := e.Data.([]models.Project)
	return v
}

func Bookings(e cache.Entry) []models.Booking {
	v, _ := e.Data.([]models.Booking)
	return v
}

func Slots(e cache.Entry) []models.AvailabilitySlot {
	v, _ := e.Data.([]models.AvailabilitySlot)
	return v
}

func Files(e cache.Entry) []models.File {
	v, _ := e.Data.([]models.File)
	return v
}

func Recordings(e cache.Entry) []models.Recording {
	v, _ := e.Data.([]models.Recording)
	return v
}

func Requests(e cache.Entry) []models.Request {
	v, _ := e.Data.([]models.Request)
	return v
}
