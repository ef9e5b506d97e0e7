package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"numberfacts/internal/config"
	"numberfacts/internal/controllers"
	"numberfacts/internal/logger"
	"numberfacts/internal/models"
	"numberfacts/internal/services"
)

var errFetchFailed = errors.New("fetch failed")

// screen is the headless counterpart of the app's MVC wiring.
type screen struct {
	state      *models.FactsState
	controller *controllers.FactsController
	logger     logger.Logger
}

type options struct {
	configPath string
	logLevel   string
	baseURL    string
	timeout    time.Duration

	// now overrides the clock; tests only.
	now func() time.Time

	screen *screen
}

func Execute() error {
	return newRootCmd(&options{}).Execute()
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:          "numberfacts-cli",
		Short:        "Fetch number and date trivia from the Numbers API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
			}
			if opts.baseURL != "" {
				cfg.BaseURL = opts.baseURL
			}
			if opts.timeout > 0 {
				cfg.RequestTimeout = opts.timeout
			}
			cfg.ApplyDefaults()
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.New(cfg.Level(), cfg.LogJSON)
			state := models.NewFactsState()
			svc := services.NewFactsService(cfg.BaseURL, nil, cfg.RequestTimeout, log)

			var ctrlOpts []controllers.Option
			if opts.now != nil {
				ctrlOpts = append(ctrlOpts, controllers.WithClock(opts.now))
			}

			opts.screen = &screen{
				state:      state,
				controller: controllers.NewFactsController(state, svc, log, ctrlOpts...),
				logger:     log,
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.screen != nil {
				opts.screen.controller.Shutdown()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (default $"+config.EnvConfigPath+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "facts API base URL (default "+config.DefaultBaseURL+")")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "per-request timeout")

	root.AddCommand(numberCmd(opts), dateCmd(opts))
	return root
}

// printFact writes the fact and maps the screen's error text to an error.
func printFact(w io.Writer, fact, failureText string) error {
	fmt.Fprintln(w, fact)
	if fact == failureText {
		return errFetchFailed
	}
	return nil
}
