package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/commands/options"
	"tableflip.dev/tick/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
tick add Buy milk
tick add --smart "pay rent tomorrow at 5pm !high #bills"
tick add -c Work --due "2026-09-02 09:00" standup prep
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := add.Add{
				Title:    strings.Join(args, " "),
				List:     ao.List,
				Priority: ao.Priority,
				Due:      ao.Due,
				Note:     ao.Note,
				Smart:    ao.Smart,
				App:      a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddAddArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
