package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/models"
	"github.com/studioportal/portal-client/internal/mutate"
	"github.com/studioportal/portal-client/internal/transport"
)

// BookingsPage lists the user's bookings next to the open availability slots
// and carries the book/cancel mutations.
type BookingsPage struct {
	cache     *cache.Cache
	mutations *mutate.Coordinator
	client    transport.Client
}

func NewBookingsPage(c *cache.Cache, m *mutate.Coordinator, client transport.Client) *BookingsPage {
	return &BookingsPage{cache: c, mutations: m, client: client}
}

type BookingsData struct {
	Bookings cache.Entry
	Slots    cache.Entry
}

func (d BookingsData) Loaded() bool {
	return d.Bookings.Terminal() && d.Slots.Terminal()
}

func (p *BookingsPage) Load(ctx context.Context) BookingsData {
	var data BookingsData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Bookings = p.cache.Ensure(ctx, cache.KeyBookings, bookingsFetcher(p.client))
		return nil
	})
	g.Go(func() error {
		data.Slots = p.cache.Ensure(ctx, cache.KeySlots, slotsFetcher(p.client))
		return nil
	})
	_ = g.Wait()

	return data
}

// Book reserves a slot. Both the booking list and the slot list change on
// the backend, so both keys are invalidated.
func (p *BookingsPage) Book(ctx context.Context, slotID int64, title, description string) (*models.Booking, error) {
	result, err := p.mutations.Perform(ctx, func(ctx context.Context) (any, error) {
		return p.client.CreateBooking(ctx, models.BookingCreate{
			SlotID:      slotID,
			Title:       title,
			Description: description,
		})
	}, cache.KeyBookings, cache.KeySlots)
	if err != nil {
		return nil, err
	}
	return result.(*models.Booking), nil
}

// Cancel deletes a booking, freeing its slot.
func (p *BookingsPage) Cancel(ctx context.Context, id int64) error {
	_, err := p.mutations.Perform(ctx, func(ctx context.Context) (any, error) {
		return nil, p.client.CancelBooking(ctx, id)
	}, cache.KeyBookings, cache.KeySlots)
	return err
}
