package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/commands/options"
	"tableflip.dev/tick/pkg/runner/del"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm", "trash"},
		Short:   "Move a task to the trash",
		Example: `
tick delete <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := del.Delete{
				ID:  io.ID,
				App: a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(cmd)

	po := &options.IDOptions{}
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete a task permanently",
		Example: `
tick purge <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			po.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := del.Purge{
				ID:  po.ID,
				App: a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(purge)
}
