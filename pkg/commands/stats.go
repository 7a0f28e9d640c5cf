package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show karma and focus totals",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := stats.Show{App: a}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	var name, theme string
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Update profile settings",
		Example: `
tick stats config --name Alex --theme "#3b82f6"
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			s := stats.Configure{
				UserName:   name,
				ThemeColor: theme,
				App:        a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	configCmd.Flags().StringVar(&name, "name", "", "Display name.")
	configCmd.Flags().StringVar(&theme, "theme", "", "Theme color hex.")
	cmd.AddCommand(configCmd)

	topLevel.AddCommand(cmd)
}
