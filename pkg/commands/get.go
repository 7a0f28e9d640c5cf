package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/commands/options"
	"tableflip.dev/tick/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "Show a task view",
		Example: `
tick get
tick get -v today
tick get -v trash --ids
tick get -c Work
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := get.Get{
				View:   co.View,
				List:   co.List,
				ShowID: co.ShowID,
				JSON:   output.JSON,
				App:    a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddCollectionArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
