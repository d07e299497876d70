package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meghashyamc/gridtimer/timer"
	"github.com/meghashyamc/gridtimer/watch"
	"github.com/spf13/cobra"
)

var (
	watchMinutes     string
	watchInteractive bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the countdown in the terminal",
	Long: `Run the countdown in the terminal instead of a window, drawing the grid
as a progress bar. Exits when the countdown finishes.`,
	Example: `  gridtimer watch --minutes 25
  gridtimer watch -m 0.5 --interactive`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchMinutes, "minutes", "m", "", "Countdown length in minutes (defaults to timer.default_minutes)")
	watchCmd.Flags().BoolVarP(&watchInteractive, "interactive", "i", false, "Read commands from stdin: "+watch.Help())
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gridCount := cfg.GetGridCount()
	w := watch.New(timer.SystemClock{}, watch.Options{
		Cells:           gridCount * gridCount,
		RefreshInterval: cfg.GetRefreshInterval(),
		DefaultMinutes:  cfg.GetDefaultMinutes(),
	}, cmd.OutOrStdout(), log)

	// the host loop only needs to wake often enough to catch each due poll
	ticker := time.NewTicker(cfg.GetRefreshInterval() / 2)
	defer ticker.Stop()

	var commands <-chan string
	if watchInteractive {
		commands = watch.ReadCommands(ctx, cmd.InOrStdin())
	}

	return w.Run(ctx, watchMinutes, ticker.C, commands)
}
