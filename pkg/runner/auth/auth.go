// Package auth signs the user in and out of the external sync account.
package auth

import (
	"context"
	"errors"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/printers"
)

// Login obtains an opaque token from the identity provider and stores it
// so calendar sync activates.
type Login struct {
	App *app.App
}

func (n *Login) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not login, no app state")
	}
	user, err := n.App.Login(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Identity(user.DisplayName, user.Email)
	return nil
}

// Logout drops the stored token; sync attempts are skipped afterwards.
type Logout struct {
	App *app.App
}

func (n *Logout) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not logout, no app state")
	}
	if err := n.App.Logout(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Signed out")
	return nil
}
