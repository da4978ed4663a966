package pages

import (
	"context"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/transport"
)

// RecordingsPage lists session recordings and resolves their download links.
type RecordingsPage struct {
	cache  *cache.Cache
	client transport.Client
}

func NewRecordingsPage(c *cache.Cache, client transport.Client) *RecordingsPage {
	return &RecordingsPage{cache: c, client: client}
}

func (p *RecordingsPage) Load(ctx context.Context) cache.Entry {
	return p.cache.Ensure(ctx, cache.KeyRecordings, recordingsFetcher(p.client))
}

func (p *RecordingsPage) DownloadURL(ctx context.Context, id int64) (string, error) {
	return p.client.DownloadURL(ctx, transport.DownloadRecording, id)
}
