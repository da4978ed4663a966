package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/common"
	"github.com/studioportal/portal-client/internal/logging"
	"github.com/studioportal/portal-client/internal/models"
	"github.com/studioportal/portal-client/internal/mutate"
	"github.com/studioportal/portal-client/internal/session"
	"github.com/studioportal/portal-client/internal/transport"
)

type stubSession struct{}

func (stubSession) State() session.State { return session.StateAuthenticated }

// fakeClient implements transport.Client with configurable list/write calls
// and per-call counters.
type fakeClient struct {
	transport.Client

	ProjectsRet []models.Project
	BookingsRet []models.Booking
	SlotsRet    []models.AvailabilitySlot
	RequestsRet []models.Request
	RequestsErr error

	ProjectsCalls int
	BookingsCalls int
	SlotsCalls    int
	RequestsCalls int

	CreateBookingFn func(ctx context.Context, in models.BookingCreate) (*models.Booking, error)
	CancelBookingFn func(ctx context.Context, id int64) error
	CreateRequestFn func(ctx context.Context, in models.RequestCreate) (*models.Request, error)
}

func (f *fakeClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	f.ProjectsCalls++
	return f.ProjectsRet, nil
}

func (f *fakeClient) ListBookings(ctx context.Context) ([]models.Booking, error) {
	f.BookingsCalls++
	return f.BookingsRet, nil
}

func (f *fakeClient) ListSlots(ctx context.Context) ([]models.AvailabilitySlot, error) {
	f.SlotsCalls++
	return f.SlotsRet, nil
}

func (f *fakeClient) ListRequests(ctx context.Context) ([]models.Request, error) {
	f.RequestsCalls++
	if f.RequestsErr != nil {
		return nil, f.RequestsErr
	}
	return f.RequestsRet, nil
}

func (f *fakeClient) CreateBooking(ctx context.Context, in models.BookingCreate) (*models.Booking, error) {
	return f.CreateBookingFn(ctx, in)
}

func (f *fakeClient) CancelBooking(ctx context.Context, id int64) error {
	return f.CancelBookingFn(ctx, id)
}

func (f *fakeClient) CreateRequest(ctx context.Context, in models.RequestCreate) (*models.Request, error) {
	return f.CreateRequestFn(ctx, in)
}

func newFixture() (*cache.Cache, *mutate.Coordinator) {
	resources := cache.New(stubSession{}, nil, logging.NopLogger{})
	return resources, mutate.New(resources, nil, logging.NopLogger{})
}

func TestDashboard_PartialFailureStillRenders(t *testing.T) {
	client := &fakeClient{
		ProjectsRet: []models.Project{{ID: 1, Name: "Album"}},
		BookingsRet: []models.Booking{{ID: 7}},
		RequestsErr: &common.APIError{StatusCode: 500, Detail: "internal error"},
	}
	resources, _ := newFixture()
	page := NewDashboard(resources, client)

	data := page.Load(context.Background())

	require.True(t, data.Loaded(), "aggregate loading clears even with one failure")
	require.Equal(t, cache.StatusReady, data.Projects.Status)
	require.Equal(t, cache.StatusReady, data.Bookings.Status)
	require.Equal(t, cache.StatusError, data.Requests.Status)

	require.Len(t, Projects(data.Projects), 1)
	require.Len(t, Bookings(data.Bookings), 1)
	require.Nil(t, Requests(data.Requests))

	// One attempt per key, no automatic retry on the failing one.
	require.Equal(t, 1, client.ProjectsCalls)
	require.Equal(t, 1, client.BookingsCalls)
	require.Equal(t, 1, client.RequestsCalls)
}

func TestDashboard_SecondLoadHitsCacheForReadyKeys(t *testing.T) {
	client := &fakeClient{
		ProjectsRet: []models.Project{{ID: 1}},
		BookingsRet: []models.Booking{{ID: 7}},
		RequestsRet: []models.Request{{ID: 2}},
	}
	resources, _ := newFixture()
	page := NewDashboard(resources, client)

	page.Load(context.Background())
	page.Load(context.Background())

	require.Equal(t, 1, client.ProjectsCalls)
	require.Equal(t, 1, client.BookingsCalls)
	require.Equal(t, 1, client.RequestsCalls)
}

func TestBookingsPage_BookInvalidatesBookingsAndSlots(t *testing.T) {
	client := &fakeClient{
		BookingsRet: []models.Booking{},
		SlotsRet:    []models.AvailabilitySlot{{ID: 3, IsAvailable: true}},
		CreateBookingFn: func(ctx context.Context, in models.BookingCreate) (*models.Booking, error) {
			require.Equal(t, int64(3), in.SlotID)
			require.Equal(t, "Mix review", in.Title)
			return &models.Booking{ID: 9, SlotID: &in.SlotID, Title: in.Title}, nil
		},
	}
	resources, mutations := newFixture()
	page := NewBookingsPage(resources, mutations, client)

	page.Load(context.Background())
	require.Equal(t, 1, client.BookingsCalls)
	require.Equal(t, 1, client.SlotsCalls)

	booking, err := page.Book(context.Background(), 3, "Mix review", "")
	require.NoError(t, err)
	require.Equal(t, int64(9), booking.ID)

	page.Load(context.Background())
	require.Equal(t, 2, client.BookingsCalls, "bookings must refetch after booking")
	require.Equal(t, 2, client.SlotsCalls, "slots must refetch after booking")
}

func TestBookingsPage_BookFailureLeavesSlotsUnchanged(t *testing.T) {
	client := &fakeClient{
		BookingsRet: []models.Booking{},
		SlotsRet:    []models.AvailabilitySlot{{ID: 3, IsAvailable: true}},
		CreateBookingFn: func(ctx context.Context, in models.BookingCreate) (*models.Booking, error) {
			return nil, &common.APIError{StatusCode: 400, Detail: "Slot already booked"}
		},
	}
	resources, mutations := newFixture()
	page := NewBookingsPage(resources, mutations, client)

	page.Load(context.Background())
	before, _ := resources.Read(cache.KeySlots)

	_, err := page.Book(context.Background(), 3, "Mix review", "")

	var mutErr *common.MutationError
	require.ErrorAs(t, err, &mutErr)
	require.Equal(t, "Slot already booked", mutErr.Detail)

	after, ok := resources.Read(cache.KeySlots)
	require.True(t, ok)
	require.Equal(t, before, after, "failed mutation must not invalidate")
}

func TestBookingsPage_CancelInvalidates(t *testing.T) {
	var cancelled int64
	client := &fakeClient{
		BookingsRet: []models.Booking{{ID: 7}},
		SlotsRet:    []models.AvailabilitySlot{},
		CancelBookingFn: func(ctx context.Context, id int64) error {
			cancelled = id
			return nil
		},
	}
	resources, mutations := newFixture()
	page := NewBookingsPage(resources, mutations, client)

	page.Load(context.Background())
	require.NoError(t, page.Cancel(context.Background(), 7))
	require.Equal(t, int64(7), cancelled)

	page.Load(context.Background())
	require.Equal(t, 2, client.BookingsCalls)
}

func TestRequestsPage_CreateInvalidatesRequestsOnly(t *testing.T) {
	client := &fakeClient{
		ProjectsRet: []models.Project{{ID: 1, Name: "Album"}},
		RequestsRet: []models.Request{},
		CreateRequestFn: func(ctx context.Context, in models.RequestCreate) (*models.Request, error) {
			require.Equal(t, models.RequestRevision, in.Type)
			return &models.Request{ID: 11, ProjectID: in.ProjectID, Title: in.Title, Type: in.Type}, nil
		},
	}
	resources, mutations := newFixture()
	page := NewRequestsPage(resources, mutations, client)

	page.Load(context.Background())
	created, err := page.Create(context.Background(), 1, "Tighten the low end", "Second chorus", models.RequestRevision)
	require.NoError(t, err)
	require.Equal(t, int64(11), created.ID)

	page.Load(context.Background())
	require.Equal(t, 2, client.RequestsCalls, "requests must refetch after create")
	require.Equal(t, 1, client.ProjectsCalls, "projects were not invalidated")
}
