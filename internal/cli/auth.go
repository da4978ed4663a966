package cli

import (
	"context"
	"errors"

	"github.com/studioportal/portal-client/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		var authErr *common.AuthenticationError
		if errors.As(err, &authErr) && authErr.Message != "" {
			a.printf("Login failed: %s\n", authErr.Message)
		} else {
			a.printf("Login failed: %v\n", err)
		}
		return err
	}

	if user, ok := a.session.CurrentUser(); ok {
		a.printf("Logged in as %s (%s)\n", user.FullName, user.Role)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.printf("Logged out\n")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.session.CurrentUser()
	if !ok {
		a.printf("Not logged in\n")
		return nil
	}
	a.printf("%s <%s> role=%s active=%t\n", user.FullName, user.Email, user.Role, user.IsActive)
	return nil
}
