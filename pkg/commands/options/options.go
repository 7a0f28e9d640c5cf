// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// IDOptions captures a task id argument.
type IDOptions struct {
	ID string
}

// CollectionOptions captures common view/list selection flags.
type CollectionOptions struct {
	View   string
	List   string
	ShowID bool
}

// AddCollectionArgs wires view-related flags on the provided command.
func AddCollectionArgs(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().StringVarP(&o.View, "view", "v", "inbox",
		"Task view: inbox, today, completed, trash, or all.")
	cmd.Flags().StringVarP(&o.List, "collection", "c", "",
		"Show one list instead of a view.")
	cmd.Flags().BoolVar(&o.ShowID, "ids", false,
		"Show task ids.")
}

// AddOptions captures task creation flags.
type AddOptions struct {
	List     string
	Priority string
	Due      string
	Note     bool
	Smart    bool
}

// AddAddArgs wires task creation flags on the provided command.
func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.List, "collection", "c", "",
		"File the task under a list (default inbox).")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: none, low, medium, or high.")
	cmd.Flags().StringVar(&o.Due, "due", "",
		"Due date, '2006-01-02' or '2006-01-02 15:04'.")
	cmd.Flags().BoolVar(&o.Note, "note", false,
		"Create a note instead of a task.")
	cmd.Flags().BoolVar(&o.Smart, "smart", false,
		"Parse !priority, #tags, and dates out of the title.")
}
