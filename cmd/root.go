// Package cmd wires the age command line: configuration, backend selection
// and the run/check subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/age/engine"
	"github.com/spaghettifunk/age/engine/core"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	logLevel  string
	assetRoot string
	backend   string

	// cfg is populated by PersistentPreRunE and shared with all subcommands.
	cfg *engine.ApplicationConfig
)

var rootCmd = &cobra.Command{
	Use:   "age",
	Short: "age game engine",
	Long: `age boots an OpenGL 2.1 window with audio, a default UI font and the
sound bank listed in <assets>/age/assets/sound_list.docx.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&assetRoot, "assets", "", "asset root directory")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "windowing backend (sdl, glfw)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = engine.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// flags take precedence over values in the config file
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("assets") {
			cfg.Assets.Root = assetRoot
		}
		if cmd.Flags().Changed("backend") {
			cfg.Window.Backend = backend
		}

		if err := core.SetLogLevel(cfg.Log.Level); err != nil {
			return err
		}
		return cfg.Validate()
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		core.LogError(err.Error())
		os.Exit(1)
	}
}
