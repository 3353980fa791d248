package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/age/engine"
	"github.com/spaghettifunk/age/testbed"
	"github.com/spf13/cobra"
)

var (
	title string
	watch bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Bootstrap the engine and run the testbed game",
	RunE:  runGame,
}

func init() {
	runCmd.Flags().StringVar(&title, "title", "", "window title")
	runCmd.Flags().BoolVar(&watch, "watch", false, "reload sounds when their files change")
}

func runGame(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("title") {
		cfg.Window.Title = title
	}
	if cmd.Flags().Changed("watch") {
		cfg.Assets.Watch = watch
	}

	b, err := newBackend(cfg.Window.Backend)
	if err != nil {
		return err
	}

	e, err := engine.Bootstrap(cfg, b)
	if err != nil {
		return err
	}
	defer e.Teardown()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	go func() {
		if _, ok := <-sigCh; ok {
			e.Stop()
		}
	}()

	return e.Run(testbed.NewTestGame().Game)
}
