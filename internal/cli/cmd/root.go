// Package cmd provides Cobra CLI commands for keymapper.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keymapper-dev/keymapper/internal/cli"
	"github.com/keymapper-dev/keymapper/internal/domain/build"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "keymapper",
		Short: "Check and edit Key Mapper key maps against a device profile",
		Long: `Keymapper works on Key Mapper key maps outside the phone.

It loads key maps from a YAML document and answers every capability
question (permissions, keyboards, apps, flashlights, Shizuku, connected
input devices) from a device profile, so you can see which actions and
triggers would fail on that device and why.

Features:
  - Action errors in the same precedence order as on the device
  - Trigger errors (Do Not Disturb, screen off, phone calls, devices)
  - Interactive trigger editor with a recording countdown
  - Action catalog with fuzzy search
  - JSON schemas for the config file and the key map document

Use 'keymapper check' for a quick report or 'keymapper record <uid>' to
edit a trigger.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema", "export", "about":
				return nil
			}

			opts := appOpts
			opts.Interactive = cmd.Name() == recordCmd.Name()

			var err error
			app, err = cli.NewApp(opts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			logging.FromContext(app.Ctx()).Debug().Str("version", buildInfo.String()).Str("command", cmd.CommandPath()).Msg("starting")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&appOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/keymapper/config.toml)")
	flags.StringVar(&appOpts.ProfileFile, "profile", "", "device profile YAML (default: device.profile or the built-in profile)")
	flags.StringVar(&appOpts.KeyMapsFile, "keymaps", "", "key map document (default: keymaps.file or $XDG_DATA_HOME/keymapper/keymaps.yaml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}
