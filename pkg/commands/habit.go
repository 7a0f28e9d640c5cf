package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/runner/habit"
)

func addHabit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "habit",
		Aliases: []string{"habits"},
		Short:   "Track habits",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := habit.Show{App: a}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	var icon, habitColor string
	var remindersFlag []string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a daily habit",
		Example: `
tick habit add "Drink water" --remind 09:00 --remind 15:00
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := habit.Add{
				Name:      strings.Join(args, " "),
				Icon:      icon,
				Color:     habitColor,
				Reminders: remindersFlag,
				App:       a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	addCmd.Flags().StringVar(&icon, "icon", "", "Display icon name.")
	addCmd.Flags().StringVar(&habitColor, "color", "#10b981", "Display color.")
	addCmd.Flags().StringArrayVar(&remindersFlag, "remind", nil, "Reminder time HH:mm, repeatable.")
	cmd.AddCommand(addCmd)

	var onDate string
	checkCmd := &cobra.Command{
		Use:   "check <name>",
		Short: "Toggle today's completion",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := habit.Check{
				Name: strings.Join(args, " "),
				On:   onDate,
				App:  a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	checkCmd.Flags().StringVar(&onDate, "on", "", "Check a specific day, yyyy-MM-dd.")
	cmd.AddCommand(checkCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streaks and totals",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := habit.Stats{App: a}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	cmd.AddCommand(statsCmd)

	var restore bool
	archiveCmd := &cobra.Command{
		Use:   "archive <name>",
		Short: "Archive a habit (stops reminders)",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := habit.Archive{
				Name:    strings.Join(args, " "),
				Restore: restore,
				App:     a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	archiveCmd.Flags().BoolVar(&restore, "restore", false, "Restore instead of archive.")
	cmd.AddCommand(archiveCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a habit and its history",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := habit.Delete{
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
