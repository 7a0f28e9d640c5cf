package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/runner/auth"
)

func addAuth(topLevel *cobra.Command) {
	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in so tasks sync to your calendar",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := auth.Login{App: a}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(login)

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and stop syncing",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := auth.Logout{App: a}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(logout)
}
