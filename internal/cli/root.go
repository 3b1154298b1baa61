package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atomicstack/loandesk/internal/app"
	"github.com/atomicstack/loandesk/internal/config"
	"github.com/atomicstack/loandesk/internal/logging"
)

var runApp = app.Run

// Execute runs the command line. Configuration errors exit with status 2,
// everything else with 1.
func Execute() {
	cmd := newRootCmd(config.Environ(config.DotEnvFile))
	if err := cmd.Execute(); err != nil {
		logging.Error(err)
		if config.IsError(err) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(environ []string) *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "loandesk",
		Short:         "LoanPro loan management dashboard for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runApp(cfg.App)
		},
	}
	binding := config.Bind(cmd.PersistentFlags(), environ)
	cmd.PersistentPreRunE = func(_ *cobra.Command, args []string) error {
		loaded, err := binding.Config(args)
		if err != nil {
			return err
		}
		if err := config.Validate(loaded); err != nil {
			return err
		}
		cfg = loaded
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		traceStartup(cfg)
		return nil
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.Error{Err: err}
	})

	cmd.AddCommand(sectionsCmd(&cfg), showCmd(&cfg), seedCmd())
	return cmd
}
