package cmd

import (
	"fmt"
	"os"

	"github.com/meghashyamc/gridtimer/config"
	"github.com/meghashyamc/gridtimer/logger"
	"github.com/meghashyamc/gridtimer/ui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	env     string
)

// rootCmd opens the timer window when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "gridtimer",
	Short: "Countdown timer that fills a grid as time passes",
	Long: `gridtimer shows a countdown as a grid of cells that fill up as time
passes. The countdown can be paused, resumed and cleared.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Config environment (reads config/config.<env>.yaml, defaults to $ENV or local)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.New(cfg.GetLogLevel()), nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	app, err := ui.NewApp(cfg, log)
	if err != nil {
		return err
	}
	if err := app.Run(); err != nil {
		log.Error("error running timer", "err", err)
		return err
	}
	return nil
}
