package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/runner/link"
)

func addLink(topLevel *cobra.Command) {
	var childID, parentID string

	cmd := &cobra.Command{
		Use:   "link <child id> <parent id>",
		Short: "Merge a task under another as a subtask",
		Long: "Merge a task under another as a subtask. The child task is removed\n" +
			"from the collection; the merge cannot be undone.",
		Example: `
tick link <child id> <parent id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a child id and a parent id")
			}
			childID = args[0]
			parentID = args[1]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := link.Link{
				ChildID:  childID,
				ParentID: parentID,
				App:      a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
