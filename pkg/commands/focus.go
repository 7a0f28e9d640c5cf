package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/runner/focus"
)

func addFocus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Record and review focus sessions",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := focus.Categories{App: a}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	var mode, duration string
	categoryCmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Add a focus category",
		Example: `
tick focus category "Deep Work" --mode pomo --duration 25m
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a category name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := focus.AddCategory{
				Name:     strings.Join(args, " "),
				Mode:     mode,
				Duration: duration,
				App:      a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	categoryCmd.Flags().StringVar(&mode, "mode", "pomo", "Timer mode, 'pomo' or 'stopwatch'.")
	categoryCmd.Flags().StringVar(&duration, "duration", "", "Default session length, e.g. 25m.")
	cmd.AddCommand(categoryCmd)

	var taskID, category string
	recordCmd := &cobra.Command{
		Use:   "record <duration>",
		Short: "Log a completed focus session",
		Example: `
tick focus record 25m
tick focus record 1h30m --task <task id> --category "Deep Work"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a duration, like 25m")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := focus.Record{
				For:      args[0],
				TaskID:   taskID,
				Category: category,
				App:      a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	recordCmd.Flags().StringVar(&taskID, "task", "", "Task the session was spent on.")
	recordCmd.Flags().StringVar(&category, "category", "", "Focus category name or id.")
	cmd.AddCommand(recordCmd)

	window := "1w"
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent focus sessions",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := focus.Log{
				Window: window,
				App:    a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	logCmd.Flags().StringVar(&window, "for", "1w", "How far back to look, e.g. 1d, 1w.")
	cmd.AddCommand(logCmd)

	topLevel.AddCommand(cmd)
}
