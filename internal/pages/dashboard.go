package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/transport"
)

// Dashboard aggregates the three collections shown on the landing view.
type Dashboard struct {
	cache  *cache.Cache
	client transport.Client
}

func NewDashboard(c *cache.Cache, client transport.Client) *Dashboard {
	return &Dashboard{cache: c, client: client}
}

// DashboardData carries one entry per requested key. Partial success is
// normal: a failing key renders as an error indicator while the others show
// their data.
type DashboardData struct {
	Projects cache.Entry
	Bookings cache.Entry
	Requests cache.Entry
}

// Loaded reports whether every requested key reached a terminal status.
// This is the page's aggregate loading flag.
func (d DashboardData) Loaded() bool {
	return d.Projects.Terminal() && d.Bookings.Terminal() && d.Requests.Terminal()
}

// Load ensures all three keys concurrently and waits for every one of them;
// completion order is not guaranteed and a single failing resource does not
// block the others.
func (d *Dashboard) Load(ctx context.Context) DashboardData {
	var data DashboardData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Projects = d.cache.Ensure(ctx, cache.KeyProjects, projectsFetcher(d.client))
		return nil
	})
	g.Go(func() error {
		data.Bookings = d.cache.Ensure(ctx, cache.KeyBookings, bookingsFetcher(d.client))
		return nil
	})
	g.Go(func() error {
		data.Requests = d.cache.Ensure(ctx, cache.KeyRequests, requestsFetcher(d.client))
		return nil
	})
	_ = g.Wait() // Ensure never returns an error; failures live on the entries

	return data
}
