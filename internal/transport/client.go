// Package transport implements the REST client for the portal backend. The
// Client interface is the seam every other layer depends on; tests substitute
// fakes for it.
package transport

import (
	"context"

	"github.com/studioportal/portal-client/internal/models"
)

// DownloadKind selects which collection a download link is requested for.
type DownloadKind string

const (
	DownloadFile      DownloadKind = "files"
	DownloadRecording DownloadKind = "recordings"
)

// Client is the full call surface of the portal API.
type Client interface {
	Login(ctx context.Context, email, password string) (models.TokenPair, error)
	CurrentUser(ctx context.Context) (*models.User, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListSlots(ctx context.Context) ([]models.AvailabilitySlot, error)
	ListFiles(ctx context.Context) ([]models.File, error)
	ListRecordings(ctx context.Context) ([]models.Recording, error)
	ListRequests(ctx context.Context) ([]models.Request, error)

	CreateBooking(ctx context.Context, in models.BookingCreate) (*models.Booking, error)
	CancelBooking(ctx context.Context, id int64) error
	CreateRequest(ctx context.Context, in models.RequestCreate) (*models.Request, error)
	DownloadURL(ctx context.Context, kind DownloadKind, id int64) (string, error)
}

// TokenSource supplies the current access token for outbound requests.
// token.Store satisfies it; the transport never caches the pair itself.
type TokenSource interface {
	Load() (models.TokenPair, bool, error)
}
