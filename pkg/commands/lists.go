package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/runner/lists"
)

func addLists(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage task lists",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := lists.Show{App: a}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	var color string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a list",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a list name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := lists.Add{
				Name:  strings.Join(args, " "),
				Color: color,
				App:   a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	addCmd.Flags().StringVar(&color, "color", "#3b82f6", "Display color.")
	cmd.AddCommand(addCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a list; its tasks move to the inbox",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a list name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := lists.Delete{
				Name: strings.Join(args, " "),
				App:  a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	cmd.AddCommand(deleteCmd)

	topLevel.AddCommand(cmd)
}
