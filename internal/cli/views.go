package cli

import (
	"context"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/pages"
)

func (a *App) printEntryHeader(e cache.Entry) {
	if e.Status == cache.StatusError {
		a.printf("! %s unavailable: %v\n", e.Key, e.Err)
		if e.Data != nil {
			a.printf("  showing last-known data\n")
		}
	}
}

func (a *App) Dashboard(ctx context.Context) error {
	data := a.dashboard.Load(ctx)

	a.printEntryHeader(data.Projects)
	a.printEntryHeader(data.Bookings)
	a.printEntryHeader(data.Requests)

	open := 0
	for _, r := range pages.Requests(data.Requests) {
		if r.Status == "open" {
			open++
		}
	}
	a.printf("Projects: %d  Bookings: %d  Open requests: %d\n",
		len(pages.Projects(data.Projects)),
		len(pages.Bookings(data.Bookings)),
		open)
	return nil
}

func (a *App) Projects(ctx context.Context) error {
	entry := a.projects.Load(ctx)
	a.printEntryHeader(entry)

	for _, p := range pages.Projects(entry) {
		a.printf("[%d] %-30s %s\n", p.ID, p.Name, p.Status)
	}
	return nil
}

func (a *App) Files(ctx context.Context) error {
	entry := a.files.Load(ctx)
	a.printEntryHeader(entry)

	for _, f := range pages.Files(entry) {
		a.printf("[%d] %-40s project=%d\n", f.ID, f.Name, f.ProjectID)
	}
	return nil
}

func (a *App) Recordings(ctx context.Context) error {
	entry := a.recordings.Load(ctx)
	a.printEntryHeader(entry)

	for _, r := range pages.Recordings(entry) {
		a.printf("[%d] %-40s project=%d\n", r.ID, r.Title, r.ProjectID)
	}
	return nil
}

func (a *App) Requests(ctx context.Context) error {
	data := a.requests.Load(ctx)
	a.printEntryHeader(data.Requests)

	for _, r := range pages.Requests(data.Requests) {
		a.printf("[%d] %-30s %s/%s\n", r.ID, r.Title, r.Type, r.Status)
	}
	return nil
}

// Download resolves a presigned link for a file or recording.
func (a *App) Download(ctx context.Context) error {
	kind, err := GetSimpleText(a.reader, "Download what? (file/recording)", a.out)
	if err != nil {
		return err
	}

	id, err := GetID(a.reader, "Enter id", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return err
	}

	var url string
	switch kind {
	case "file":
		url, err = a.files.DownloadURL(ctx, id)
	case "recording":
		url, err = a.recordings.DownloadURL(ctx, id)
	default:
		a.printf("Unknown kind %q, expected file or recording\n", kind)
		return nil
	}
	if err != nil {
		a.printf("error: %v\n", err)
		return err
	}

	a.printf("%s\n", url)
	return nil
}
