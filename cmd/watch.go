package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/log"
	"github.com/zjrosen/registrar/internal/ui/styles"
	"github.com/zjrosen/registrar/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <netid>",
	Short: "Watch the data files and re-print a student's schedule on change",
	Long: `Watch the data directory and re-print the student's schedule whenever a
roster file is rewritten. Rapid writes are coalesced by the configured
debounce interval. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		netID := args[0]
		out := cmd.OutOrStdout()

		reg, stores, err := openRegistry()
		if err != nil {
			return err
		}
		if err := renderSchedule(out, reg, netID); err != nil {
			return err
		}

		w, err := watcher.New(watcher.Config{
			Dir:         cfg.DataDir,
			Files:       cfg.DataFileNames(),
			DebounceDur: cfg.Watch.Debounce,
		})
		if err != nil {
			return err
		}
		onChange, err := w.Start()
		if err != nil {
			_ = w.Stop()
			return err
		}
		defer func() { _ = w.Stop() }()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		fmt.Fprintln(out, styles.Muted.Render("Watching "+cfg.DataDir+" (Ctrl+C to stop)"))

		for {
			select {
			case <-sig:
				return nil
			case <-onChange:
				log.Debug(log.CatWatcher, "Data files changed, refreshing schedule", "netID", netID)
				stores.invalidate()
				reg, _, err := openRegistry()
				if err != nil {
					fmt.Fprintln(out, styles.Error.Render(err.Error()))
					continue
				}
				fmt.Fprintln(out)
				if err := renderSchedule(out, reg, netID); err != nil {
					fmt.Fprintln(out, styles.Error.Render(err.Error()))
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
