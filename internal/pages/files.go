package pages

import (
	"context"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/transport"
)

// FilesPage lists project files and resolves their download links.
type FilesPage struct {
	cache  *cache.Cache
	client transport.Client
}

func NewFilesPage(c *cache.Cache, client transport.Client) *FilesPage {
	return &FilesPage{cache: c, client: client}
}

func (p *FilesPage) Load(ctx context.Context) cache.Entry {
	return p.cache.Ensure(ctx, cache.KeyFiles, filesFetcher(p.client))
}

// DownloadURL asks the backend to mint a presigned link. A read, not a
// mutation: no cached state depends on it.
func (p *FilesPage) DownloadURL(ctx context.Context, id int64) (string, error) {
	return p.client.DownloadURL(ctx, transport.DownloadFile, id)
}
