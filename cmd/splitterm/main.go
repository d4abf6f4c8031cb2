package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/splitterm/config"
	"github.com/lixenwraith/splitterm/core"
	"github.com/lixenwraith/splitterm/logging"
	"github.com/lixenwraith/splitterm/terminal"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "splitterm: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "splitterm",
		Short: "Split the terminal into a content area and a status bar",
		Long: `splitterm takes over the terminal, draws a content area above a one-row
status bar, and echoes key presses into the status bar until q or Ctrl-C.
The terminal is restored on every exit path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger, closer, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer closer.Close()

			factory := func() terminal.Backend {
				return terminal.NewUnix(terminal.Options{
					AltScreen:  cfg.Terminal.AltScreen,
					HideCursor: cfg.Terminal.HideCursor,
				})
			}

			defer func() {
				if r := recover(); r != nil {
					core.HandleCrash(r)
				}
			}()
			return run(cfg, logger, factory, os.Stdin)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (toml, yaml or json)")
	config.RegisterFlags(cmd.Flags())
	return cmd
}
