package cli

import (
	"context"
	"errors"
	"time"

	"github.com/studioportal/portal-client/internal/common"
	"github.com/studioportal/portal-client/internal/models"
	"github.com/studioportal/portal-client/internal/pages"
)

func (a *App) Bookings(ctx context.Context) error {
	data := a.bookings.Load(ctx)
	a.printEntryHeader(data.Bookings)

	for _, b := range pages.Bookings(data.Bookings) {
		a.printf("[%d] %-30s %s  %s\n", b.ID, b.Title, b.Status, b.StartTime.Format(time.RFC822))
	}
	return nil
}

func (a *App) Slots(ctx context.Context) error {
	data := a.bookings.Load(ctx)
	a.printEntryHeader(data.Slots)

	for _, s := range pages.Slots(data.Slots) {
		a.printf("[%d] %s – %s\n", s.ID, s.StartTime.Format(time.RFC822), s.EndTime.Format(time.Kitchen))
	}
	return nil
}

func (a *App) Book(ctx context.Context) error {
	slotID, err := GetID(a.reader, "Enter slot id", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return err
	}

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}

	booking, err := a.bookings.Book(ctx, slotID, title, description)
	if err != nil {
		a.printMutationError(err)
		return err
	}

	a.printf("Booked [%d] %s\n", booking.ID, booking.Title)
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter booking id", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return err
	}

	if err := a.bookings.Cancel(ctx, id); err != nil {
		a.printMutationError(err)
		return err
	}

	a.printf("Cancelled booking %d\n", id)
	return nil
}

func (a *App) NewRequest(ctx context.Context) error {
	projectID, err := GetID(a.reader, "Enter project id", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return err
	}

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}

	typ, err := GetSimpleText(a.reader, "Enter type (improvement/revision/bug/question)", a.out)
	if err != nil {
		return err
	}

	request, err := a.requests.Create(ctx, projectID, title, description, models.RequestType(typ))
	if err != nil {
		a.printMutationError(err)
		return err
	}

	a.printf("Created request [%d] %s\n", request.ID, request.Title)
	return nil
}

func (a *App) printMutationError(err error) {
	var mutErr *common.MutationError
	if errors.As(err, &mutErr) && mutErr.Detail != "" {
		a.printf("Rejected: %s\n", mutErr.Detail)
		return
	}
	a.printf("error: %v\n", err)
}
