package commands

import (
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tick/internal/logging"
	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/assist"
	"tableflip.dev/tick/pkg/commands/options"
	"tableflip.dev/tick/pkg/notify"
	"tableflip.dev/tick/pkg/store"
	"tableflip.dev/tick/pkg/sync"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tick",
		Short: base.Wrap80("Tasks, habits, and focus tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addDelete(topLevel)
	addLink(topLevel)
	addLists(topLevel)
	addHabit(topLevel)
	addFocus(topLevel)
	addSuggest(topLevel)
	addAuth(topLevel)
	addRemind(topLevel)
	addStats(topLevel)
	addVersion(topLevel)
	addCompletion(topLevel)
}

// loadApp wires the store and collaborators into an application state.
// The caller must Close the returned app so in-flight sync calls land.
func loadApp() (*app.App, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(os.Getenv("TICK_LOG"))
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg, log)
	if err != nil {
		return nil, err
	}

	var suggester assist.Suggester
	if cfg.AssistKey() != "" {
		suggester = assist.NewGemini(cfg.AssistAPI(), cfg.AssistKey())
	}

	return app.New(app.Options{
		Store:    kv,
		Log:      log,
		Notifier: notify.NewTerminal(),
		Calendar: sync.NewGoogleCalendar(cfg.CalendarAPI()),
		Identity: sync.NewHTTPIdentity(cfg.IdentityAPI()),
		Suggest:  suggester,
		Timeout:  cfg.SyncTimeout(),
	})
}
