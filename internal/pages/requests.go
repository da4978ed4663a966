package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/models"
	"github.com/studioportal/portal-client/internal/mutate"
	"github.com/studioportal/portal-client/internal/transport"
)

// RequestsPage lists the user's requests; the creation form also needs the
// project list, so both keys load together.
type RequestsPage struct {
	cache     *cache.Cache
	mutations *mutate.Coordinator
	client    transport.Client
}

func NewRequestsPage(c *cache.Cache, m *mutate.Coordinator, client transport.Client) *RequestsPage {
	return &RequestsPage{cache: c, mutations: m, client: client}
}

type RequestsData struct {
	Requests cache.Entry
	Projects cache.Entry
}

func (d RequestsData) Loaded() bool {
	return d.Requests.Terminal() && d.Projects.Terminal()
}

func (p *RequestsPage) Load(ctx context.Context) RequestsData {
	var data RequestsData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Requests = p.cache.Ensure(ctx, cache.KeyRequests, requestsFetcher(p.client))
		return nil
	})
	g.Go(func() error {
		data.Projects = p.cache.Ensure(ctx, cache.KeyProjects, projectsFetcher(p.client))
		return nil
	})
	_ = g.Wait()

	return data
}

// Create files a new request against a project.
func (p *RequestsPage) Create(ctx context.Context, projectID int64, title, description string, typ models.RequestType) (*models.Request, error) {
	result, err := p.mutations.Perform(ctx, func(ctx context.Context) (any, error) {
		return p.client.CreateRequest(ctx, models.RequestCreate{
			ProjectID:   projectID,
			Title:       title,
			Description: description,
			Type:        typ,
		})
	}, cache.KeyRequests)
	if err != nil {
		return nil, err
	}
	return result.(*models.Request), nil
}
