package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spaghettifunk/age/engine"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Bootstrap the engine, print the capability report and exit",
	Long: `Check runs the full bootstrap against the real platform, prints what the
hardware offers and tears everything down again. It exits non-zero when any
bootstrap step fails.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	b, err := newBackend(cfg.Window.Backend)
	if err != nil {
		return err
	}

	e, err := engine.Bootstrap(cfg, b)
	if err != nil {
		return err
	}
	defer e.Teardown()

	printReport(cmd.OutOrStdout(), e)
	return nil
}

func printReport(w io.Writer, e *engine.Engine) {
	caps := e.Capabilities()
	fmt.Fprintf(w, "session:          %s\n", e.SessionID())
	fmt.Fprintf(w, "backend:          %s\n", e.Config().Window.Backend)
	fmt.Fprintf(w, "opengl:           %s (%s)\n", caps.Version, caps.VersionString)
	fmt.Fprintf(w, "max texture size: %d\n", caps.MaxTextureSize)
	fmt.Fprintf(w, "image formats:    %04b\n", caps.ImageFormats)
	fmt.Fprintf(w, "audio devices:    %s\n", strings.Join(caps.AudioDevices, ", "))
	fmt.Fprintf(w, "default font:     %s\n", e.Font().Name())
	fmt.Fprintf(w, "sounds loaded:    %d (%s)\n", e.AudioManager().Loaded(), e.SoundDir())
}
