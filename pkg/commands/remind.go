package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tick/pkg/runner/reminders"
)

func addRemind(topLevel *cobra.Command) {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Watch for due reminders and ring the terminal bell",
		Example: `
tick remind
tick remind --every 30s
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := reminders.Daemon{
				Interval: every,
				App:      a,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}
	cmd.Flags().DurationVar(&every, "every", 0, "Poll interval, defaults to 10s.")

	topLevel.AddCommand(cmd)
}
