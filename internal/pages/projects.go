package pages

import (
	"context"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/transport"
)

// ProjectsPage is a plain list view.
type ProjectsPage struct {
	cache  *cache.Cache
	client transport.Client
}

func NewProjectsPage(c *cache.Cache, client transport.Client) *ProjectsPage {
	return &ProjectsPage{cache: c, client: client}
}

func (p *ProjectsPage) Load(ctx context.Context) cache.Entry {
	return p.cache.Ensure(ctx, cache.KeyProjects, projectsFetcher(p.client))
}
