package commands

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"heroes/internal/app"
	"heroes/internal/logging"
)

var (
	configFile string
	apiURL     string
	appCtx     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "heroes",
		Short:         "Browse and edit heroes on a heroes API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load() // load .env if present

			var files []string
			if configFile != "" {
				files = append(files, configFile)
			}
			cfg, err := app.LoadConfig(files...)
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.Client.APIURL = apiURL
			}

			logger := logging.NewWithOutput(cmd.ErrOrStderr(), cfg.App.Name, cfg.App.Env, cfg.App.LogLevel)
			appCtx = app.NewWire(cfg, logger, nil)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "heroes API base URL (e.g. http://127.0.0.1:8080)")

	root.AddCommand(listCmd(), getCmd(), searchCmd(), addCmd(), updateCmd(), deleteCmd())
	return root
}
